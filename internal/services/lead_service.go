package services

import (
	"fmt"

	"mccare_backend/internal/logger"
	"mccare_backend/internal/models"
	"mccare_backend/internal/repositories"
	"mccare_backend/internal/services/dto"
	"mccare_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// LeadService owns the recruiting pipeline: CRUD with filters, stage
// transitions, recruiter assignment, rejection, and conversion to a
// candidate record.
type LeadService interface {
	CreateLead(req *dto.CreateLeadRequest) (*models.Lead, error)
	GetLead(id string) (*models.Lead, error)
	ListLeads(criteria repositories.LeadFilter) ([]models.Lead, int64, error)
	UpdateLead(id string, req *dto.UpdateLeadRequest) (*models.Lead, error)
	DeleteLead(id string) error
	AssignRecruiter(id, recruiterID string) (*models.Lead, error)
	RejectLead(id string, req *dto.RejectLeadRequest) (*models.Lead, error)
	ConvertLead(id string, req *dto.ConvertLeadRequest) (*dto.ConversionResult, error)
	CheckDuplicate(id string) (*dto.DuplicateCheckResult, error)
	PipelineCounts() (map[models.LeadStage]int64, error)
}

type leadService struct {
	leadRepo      repositories.LeadRepository
	candidateRepo repositories.CandidateRepository
	userRepo      repositories.UserRepository
	activityRepo  repositories.ActivityRepository
	intake        LeadIntakeService
}

func NewLeadService(
	leadRepo repositories.LeadRepository,
	candidateRepo repositories.CandidateRepository,
	userRepo repositories.UserRepository,
	activityRepo repositories.ActivityRepository,
	intake LeadIntakeService,
) LeadService {
	return &leadService{
		leadRepo:      leadRepo,
		candidateRepo: candidateRepo,
		userRepo:      userRepo,
		activityRepo:  activityRepo,
		intake:        intake,
	}
}

// CreateLead is the authenticated creation path; it funnels through
// the same intake pipeline as the public producers so dedup and
// auditing behave identically.
func (s *leadService) CreateLead(req *dto.CreateLeadRequest) (*models.Lead, error) {
	source := req.Source
	if source == "" {
		source = SourceATSForm
	}
	result, err := s.intake.ProcessLeadIntake(NormalizeFormSubmission(req), source)
	if err != nil {
		return nil, err
	}

	// Manually entered tags are applied on top of the source tag.
	if len(req.Tags) > 0 && result.Lead != nil {
		for _, tag := range req.Tags {
			result.Lead.Tags = appendUnique(result.Lead.Tags, tag)
		}
		if err := s.leadRepo.Update(result.Lead); err != nil {
			return nil, apperrors.DatabaseError(err)
		}
	}
	return result.Lead, nil
}

func (s *leadService) GetLead(id string) (*models.Lead, error) {
	lead, err := s.leadRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLeadNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return lead, nil
}

func (s *leadService) ListLeads(criteria repositories.LeadFilter) ([]models.Lead, int64, error) {
	leads, total, err := s.leadRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	return leads, total, nil
}

func (s *leadService) UpdateLead(id string, req *dto.UpdateLeadRequest) (*models.Lead, error) {
	lead, err := s.GetLead(id)
	if err != nil {
		return nil, err
	}

	previousStage := lead.Stage

	if req.FirstName != nil {
		lead.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		lead.LastName = *req.LastName
	}
	if req.Email != nil {
		lead.Email = *req.Email
	}
	if req.Phone != nil {
		lead.Phone = *req.Phone
	}
	if req.Source != nil {
		lead.Source = *req.Source
	}
	if req.Specialty != nil {
		lead.Specialty = *req.Specialty
	}
	if req.ProvincePreference != nil {
		lead.ProvincePreference = *req.ProvincePreference
	}
	if req.Tags != nil {
		lead.Tags = datatypes.NewJSONSlice(req.Tags)
	}
	if req.Notes != nil {
		lead.Notes = *req.Notes
	}
	if req.RecruiterID != nil {
		if *req.RecruiterID == "" {
			lead.RecruiterID = nil
		} else {
			lead.RecruiterID = req.RecruiterID
		}
	}
	if req.Stage != nil {
		stage := models.LeadStage(*req.Stage)
		if !models.IsValidStage(stage) {
			return nil, apperrors.ErrInvalidPipelineStage
		}
		lead.Stage = stage
	}

	if err := s.leadRepo.Update(lead); err != nil {
		if apperrors.Is(err, repositories.ErrLeadEmailExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	if lead.Stage != previousStage {
		s.logActivity(lead.ID, "stage_changed",
			fmt.Sprintf("Stage changed from %s to %s", previousStage, lead.Stage))
	}
	return lead, nil
}

func (s *leadService) DeleteLead(id string) error {
	if err := s.leadRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrLeadNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *leadService) AssignRecruiter(id, recruiterID string) (*models.Lead, error) {
	lead, err := s.GetLead(id)
	if err != nil {
		return nil, err
	}

	recruiter, err := s.userRepo.FindByID(recruiterID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	lead.RecruiterID = &recruiter.ID
	if err := s.leadRepo.Update(lead); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.logActivity(lead.ID, "recruiter_assigned",
		fmt.Sprintf("Assigned to %s %s", recruiter.FirstName, recruiter.LastName))
	return lead, nil
}

func (s *leadService) RejectLead(id string, req *dto.RejectLeadRequest) (*models.Lead, error) {
	lead, err := s.GetLead(id)
	if err != nil {
		return nil, err
	}

	lead.Stage = models.LeadStageRejected
	if req.Reason != "" {
		reason := req.Reason
		lead.RejectionReason = &reason
	}

	if err := s.leadRepo.Update(lead); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.logActivity(lead.ID, "rejected", fmt.Sprintf("Lead rejected: %s", req.Reason))
	return lead, nil
}

// ConvertLead moves a lead into the candidate pool. Three outcomes:
// a fresh candidate is created, the lead is linked to an existing
// candidate the caller chose, or a candidate with the same email is
// found and returned for a human decision.
func (s *leadService) ConvertLead(id string, req *dto.ConvertLeadRequest) (*dto.ConversionResult, error) {
	lead, err := s.GetLead(id)
	if err != nil {
		return nil, err
	}
	if lead.CandidateID != nil {
		return nil, apperrors.ErrLeadAlreadyConverted
	}

	if req.LinkToExisting {
		return s.linkToExisting(lead, req)
	}

	existing, err := s.candidateRepo.FindByEmail(lead.Email)
	if err == nil {
		return &dto.ConversionResult{
			Status:            "duplicate_found",
			ExistingCandidate: existing,
		}, nil
	}
	if !apperrors.Is(err, repositories.ErrCandidateNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	stage, err := postConversionStage(req)
	if err != nil {
		return nil, err
	}

	candidate := candidateFromLead(lead)
	if err := s.candidateRepo.Create(candidate); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	lead.CandidateID = &candidate.ID
	lead.Stage = stage
	if err := s.leadRepo.Update(lead); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.logActivity(lead.ID, "converted",
		fmt.Sprintf("Lead converted to candidate: %s", candidate.ID))
	logger.Info("lead converted", "lead_id", lead.ID, "candidate_id", candidate.ID)

	return &dto.ConversionResult{
		Status:      "converted",
		CandidateID: candidate.ID,
		Candidate:   candidate,
	}, nil
}

func (s *leadService) linkToExisting(lead *models.Lead, req *dto.ConvertLeadRequest) (*dto.ConversionResult, error) {
	if req.ExistingCandidateID == nil || *req.ExistingCandidateID == "" {
		return nil, apperrors.NewBadRequestError("existing_candidate_id is required when linking")
	}

	candidate, err := s.candidateRepo.FindByID(*req.ExistingCandidateID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCandidateNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	stage, err := postConversionStage(req)
	if err != nil {
		return nil, err
	}

	lead.CandidateID = &candidate.ID
	lead.Stage = stage
	if err := s.leadRepo.Update(lead); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.logActivity(lead.ID, "linked",
		fmt.Sprintf("Lead linked to existing candidate: %s", candidate.ID))

	return &dto.ConversionResult{
		Status:      "linked",
		CandidateID: candidate.ID,
		Candidate:   candidate,
	}, nil
}

// postConversionStage resolves the stage a lead lands in after
// conversion. Only terminal stages are accepted; empty defaults to
// Converted.
func postConversionStage(req *dto.ConvertLeadRequest) (models.LeadStage, error) {
	if req.PostConversionStage == "" {
		return models.LeadStageConverted, nil
	}
	requested := models.LeadStage(req.PostConversionStage)
	if !models.IsTerminalStage(requested) {
		return "", apperrors.ErrInvalidPipelineStage
	}
	return requested, nil
}

// CheckDuplicate probes the candidate pool by email without mutating
// the lead; the UI calls it before offering conversion choices.
func (s *leadService) CheckDuplicate(id string) (*dto.DuplicateCheckResult, error) {
	lead, err := s.GetLead(id)
	if err != nil {
		return nil, err
	}

	existing, err := s.candidateRepo.FindByEmail(lead.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCandidateNotFound) {
			return &dto.DuplicateCheckResult{DuplicateFound: false}, nil
		}
		return nil, apperrors.DatabaseError(err)
	}
	return &dto.DuplicateCheckResult{DuplicateFound: true, ExistingCandidate: existing}, nil
}

func (s *leadService) PipelineCounts() (map[models.LeadStage]int64, error) {
	counts, err := s.leadRepo.CountByStage()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return counts, nil
}

func (s *leadService) logActivity(leadID, activityType, description string) {
	activity := &models.Activity{
		EntityType:   models.EntityLead,
		EntityID:     leadID,
		ActivityType: activityType,
		Description:  description,
	}
	if err := s.activityRepo.Create(activity); err != nil {
		logger.WithError(err).Error("failed to log lead activity", "lead_id", leadID)
	}
}
