package services

import (
	"fmt"
	"sort"
	"time"

	"mccare_backend/internal/logger"
	"mccare_backend/internal/models"
	"mccare_backend/internal/repositories"
	"mccare_backend/internal/services/dto"
	"mccare_backend/pkg/apperrors"
)

// DocumentService owns candidate compliance documents: CRUD,
// verification, and the expiry report used by compliance officers.
type DocumentService interface {
	CreateDocument(req *dto.CreateDocumentRequest) (*models.Document, error)
	GetDocument(id string) (*models.Document, error)
	ListDocuments(criteria repositories.DocumentFilter) ([]models.Document, error)
	UpdateDocument(id string, req *dto.UpdateDocumentRequest) (*models.Document, error)
	DeleteDocument(id string) error
	VerifyDocument(id, verifierID string) (*models.Document, error)
	ExpiringReport(withinDays int) ([]dto.ExpiringDocument, error)
	DocumentTypes() []models.DocumentType
}

type DocumentServiceImpl struct {
	documentRepo  repositories.DocumentRepository
	candidateRepo repositories.CandidateRepository
	activityRepo  repositories.ActivityRepository

	// Now is the clock used for expiry math.
	Now func() time.Time
}

func NewDocumentService(
	documentRepo repositories.DocumentRepository,
	candidateRepo repositories.CandidateRepository,
	activityRepo repositories.ActivityRepository,
) *DocumentServiceImpl {
	return &DocumentServiceImpl{
		documentRepo:  documentRepo,
		candidateRepo: candidateRepo,
		activityRepo:  activityRepo,
		Now:           time.Now,
	}
}

func (s *DocumentServiceImpl) CreateDocument(req *dto.CreateDocumentRequest) (*models.Document, error) {
	if _, err := s.candidateRepo.FindByID(req.CandidateID); err != nil {
		if apperrors.Is(err, repositories.ErrCandidateNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	document := &models.Document{
		CandidateID:  req.CandidateID,
		DocumentType: req.DocumentType,
		FileURL:      req.FileURL,
		Notes:        req.Notes,
		Status:       models.DocumentStatusPending,
	}
	if req.IssueDate != "" {
		issue := req.IssueDate
		document.IssueDate = &issue
	}
	if req.ExpiryDate != "" {
		expiry := req.ExpiryDate
		document.ExpiryDate = &expiry
	}
	s.applyExpiryStatus(document)

	if err := s.documentRepo.Create(document); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.logActivity(document.ID, "uploaded",
		fmt.Sprintf("Document uploaded: %s", document.DocumentType))
	logger.Info("document created", "document_id", document.ID, "candidate_id", document.CandidateID)
	return document, nil
}

func (s *DocumentServiceImpl) GetDocument(id string) (*models.Document, error) {
	document, err := s.documentRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return document, nil
}

func (s *DocumentServiceImpl) ListDocuments(criteria repositories.DocumentFilter) ([]models.Document, error) {
	documents, err := s.documentRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return documents, nil
}

func (s *DocumentServiceImpl) UpdateDocument(id string, req *dto.UpdateDocumentRequest) (*models.Document, error) {
	document, err := s.GetDocument(id)
	if err != nil {
		return nil, err
	}

	if req.DocumentType != nil {
		document.DocumentType = *req.DocumentType
	}
	if req.FileURL != nil {
		document.FileURL = *req.FileURL
	}
	if req.IssueDate != nil {
		if *req.IssueDate == "" {
			document.IssueDate = nil
		} else {
			document.IssueDate = req.IssueDate
		}
	}
	if req.ExpiryDate != nil {
		if *req.ExpiryDate == "" {
			document.ExpiryDate = nil
		} else {
			document.ExpiryDate = req.ExpiryDate
		}
		// A renewed credential gets a fresh alert ledger.
		document.LastNotified = nil
	}
	if req.Status != nil {
		document.Status = models.DocumentStatus(*req.Status)
	}
	if req.Notes != nil {
		document.Notes = *req.Notes
	}

	if req.Status == nil {
		s.applyExpiryStatus(document)
	}

	if err := s.documentRepo.Update(document); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return document, nil
}

func (s *DocumentServiceImpl) DeleteDocument(id string) error {
	if err := s.documentRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrDocumentNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *DocumentServiceImpl) VerifyDocument(id, verifierID string) (*models.Document, error) {
	document, err := s.GetDocument(id)
	if err != nil {
		return nil, err
	}
	if document.Status == models.DocumentStatusExpired {
		return nil, apperrors.ErrInvalidOperation("documents", "Cannot verify an expired document")
	}

	document.Status = models.DocumentStatusVerified
	document.VerifiedBy = &verifierID

	if err := s.documentRepo.Update(document); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.logActivity(document.ID, "verified",
		fmt.Sprintf("Document verified: %s", document.DocumentType))
	return document, nil
}

// ExpiringReport lists documents expiring within the window, soonest
// first. Already expired documents are included with negative days.
func (s *DocumentServiceImpl) ExpiringReport(withinDays int) ([]dto.ExpiringDocument, error) {
	if withinDays <= 0 {
		withinDays = 60
	}

	documents, err := s.documentRepo.FindWithExpiry()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	now := s.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var report []dto.ExpiringDocument
	for i := range documents {
		doc := &documents[i]
		expiry, err := parseExpiryDate(*doc.ExpiryDate)
		if err != nil {
			continue
		}
		days := int(expiry.Sub(today).Hours() / 24)
		if days > withinDays {
			continue
		}

		name := "Unknown"
		if candidate, err := s.candidateRepo.FindByID(doc.CandidateID); err == nil {
			name = candidate.FirstName + " " + candidate.LastName
		}

		status := string(doc.Status)
		if days < 0 {
			status = string(models.DocumentStatusExpired)
		}

		report = append(report, dto.ExpiringDocument{
			DocumentID:      doc.ID,
			CandidateID:     doc.CandidateID,
			CandidateName:   name,
			DocumentType:    doc.DocumentType,
			ExpiryDate:      *doc.ExpiryDate,
			DaysUntilExpiry: days,
			Status:          status,
		})
	}

	sort.Slice(report, func(i, j int) bool {
		return report[i].DaysUntilExpiry < report[j].DaysUntilExpiry
	})
	return report, nil
}

func (s *DocumentServiceImpl) DocumentTypes() []models.DocumentType {
	return models.DocumentTypes
}

// applyExpiryStatus downgrades Pending documents whose expiry date is
// already near or past. Verified and Rejected stand as set.
func (s *DocumentServiceImpl) applyExpiryStatus(document *models.Document) {
	if document.ExpiryDate == nil || *document.ExpiryDate == "" {
		return
	}
	if document.Status != models.DocumentStatusPending {
		return
	}

	expiry, err := parseExpiryDate(*document.ExpiryDate)
	if err != nil {
		return
	}

	now := s.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(expiry.Sub(today).Hours() / 24)

	switch {
	case days < 0:
		document.Status = models.DocumentStatusExpired
	case days <= 30:
		document.Status = models.DocumentStatusExpiringSoon
	}
}

func (s *DocumentServiceImpl) logActivity(documentID, activityType, description string) {
	activity := &models.Activity{
		EntityType:   models.EntityDocument,
		EntityID:     documentID,
		ActivityType: activityType,
		Description:  description,
	}
	if err := s.activityRepo.Create(activity); err != nil {
		logger.WithError(err).Error("failed to log document activity", "document_id", documentID)
	}
}
