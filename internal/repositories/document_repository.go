package repositories

import (
	"errors"
	"time"

	"mccare_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentFilter struct {
	CandidateID string
	Status      models.DocumentStatus
	Type        string
}

type DocumentRepository interface {
	Create(document *models.Document) error
	FindByID(id string) (*models.Document, error)
	FindWithFilter(criteria DocumentFilter) ([]models.Document, error)
	FindWithExpiry() ([]models.Document, error)
	Update(document *models.Document) error
	Delete(id string) error
	SetLastNotified(documentID, thresholdKey string, at time.Time) error
}

type DocumentRepositoryImpl struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &DocumentRepositoryImpl{db: db}
}

func (r *DocumentRepositoryImpl) Create(document *models.Document) error {
	return r.db.Create(document).Error
}

func (r *DocumentRepositoryImpl) FindByID(id string) (*models.Document, error) {
	var document models.Document
	err := r.db.First(&document, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &document, nil
}

func (r *DocumentRepositoryImpl) FindWithFilter(criteria DocumentFilter) ([]models.Document, error) {
	query := r.db.Model(&models.Document{})

	if criteria.CandidateID != "" {
		query = query.Where("candidate_id = ?", criteria.CandidateID)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.Type != "" {
		query = query.Where("document_type = ?", criteria.Type)
	}

	var documents []models.Document
	err := query.Order("created_at DESC").Find(&documents).Error
	return documents, err
}

// FindWithExpiry returns every document carrying an expiry date,
// for the daily credential scan.
func (r *DocumentRepositoryImpl) FindWithExpiry() ([]models.Document, error) {
	var documents []models.Document
	err := r.db.Where("expiry_date IS NOT NULL AND expiry_date <> ''").Find(&documents).Error
	return documents, err
}

func (r *DocumentRepositoryImpl) Update(document *models.Document) error {
	return r.db.Save(document).Error
}

func (r *DocumentRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Document{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

// SetLastNotified records one sent alert in the document's ledger
// without touching other threshold keys.
func (r *DocumentRepositoryImpl) SetLastNotified(documentID, thresholdKey string, at time.Time) error {
	document, err := r.FindByID(documentID)
	if err != nil {
		return err
	}

	if document.LastNotified == nil {
		document.LastNotified = datatypes.JSONMap{}
	}
	document.LastNotified[thresholdKey] = at.UTC().Format(time.RFC3339)

	return r.db.Model(&models.Document{}).
		Where("id = ?", documentID).
		Update("last_notified", document.LastNotified).Error
}
