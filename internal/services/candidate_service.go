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

type CandidateService interface {
	CreateCandidate(req *dto.CreateCandidateRequest) (*models.Candidate, error)
	GetCandidate(id string) (*models.Candidate, error)
	ListCandidates(criteria repositories.CandidateFilter) ([]models.Candidate, int64, error)
	UpdateCandidate(id string, req *dto.UpdateCandidateRequest) (*models.Candidate, error)
	DeleteCandidate(id string) error
}

type candidateService struct {
	candidateRepo repositories.CandidateRepository
	activityRepo  repositories.ActivityRepository
}

func NewCandidateService(
	candidateRepo repositories.CandidateRepository,
	activityRepo repositories.ActivityRepository,
) CandidateService {
	return &candidateService{candidateRepo: candidateRepo, activityRepo: activityRepo}
}

func (s *candidateService) CreateCandidate(req *dto.CreateCandidateRequest) (*models.Candidate, error) {
	candidate := &models.Candidate{
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		PreferredName:         req.PreferredName,
		Email:                 req.Email,
		Phone:                 req.Phone,
		Address:               req.Address,
		City:                  req.City,
		Province:              req.Province,
		PostalCode:            req.PostalCode,
		Country:               req.Country,
		WorkEligibility:       req.WorkEligibility,
		NurseType:             req.NurseType,
		PrimarySpecialty:      req.PrimarySpecialty,
		YearsOfExperience:     req.YearsOfExperience,
		DesiredLocations:      datatypes.NewJSONSlice(emptyIfNil(req.DesiredLocations)),
		TravelWillingness:     true,
		StartDateAvailability: req.StartDateAvailability,
		Status:                models.CandidateStatusActive,
		Tags:                  datatypes.NewJSONSlice(emptyIfNil(req.Tags)),
		Notes:                 req.Notes,
	}
	if candidate.Country == "" {
		candidate.Country = "Canada"
	}
	if req.TravelWillingness != nil {
		candidate.TravelWillingness = *req.TravelWillingness
	}
	if req.Status != "" {
		candidate.Status = models.CandidateStatus(req.Status)
	}

	if err := s.candidateRepo.Create(candidate); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.logActivity(candidate.ID, "created",
		fmt.Sprintf("Candidate profile created: %s %s", candidate.FirstName, candidate.LastName))
	logger.Info("candidate created", "candidate_id", candidate.ID)
	return candidate, nil
}

func (s *candidateService) GetCandidate(id string) (*models.Candidate, error) {
	candidate, err := s.candidateRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCandidateNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return candidate, nil
}

func (s *candidateService) ListCandidates(criteria repositories.CandidateFilter) ([]models.Candidate, int64, error) {
	candidates, total, err := s.candidateRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	return candidates, total, nil
}

func (s *candidateService) UpdateCandidate(id string, req *dto.UpdateCandidateRequest) (*models.Candidate, error) {
	candidate, err := s.GetCandidate(id)
	if err != nil {
		return nil, err
	}

	previousStatus := candidate.Status

	if req.FirstName != nil {
		candidate.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		candidate.LastName = *req.LastName
	}
	if req.PreferredName != nil {
		candidate.PreferredName = *req.PreferredName
	}
	if req.Email != nil {
		candidate.Email = *req.Email
	}
	if req.Phone != nil {
		candidate.Phone = *req.Phone
	}
	if req.Address != nil {
		candidate.Address = *req.Address
	}
	if req.City != nil {
		candidate.City = *req.City
	}
	if req.Province != nil {
		candidate.Province = *req.Province
	}
	if req.PostalCode != nil {
		candidate.PostalCode = *req.PostalCode
	}
	if req.Country != nil {
		candidate.Country = *req.Country
	}
	if req.WorkEligibility != nil {
		candidate.WorkEligibility = *req.WorkEligibility
	}
	if req.NurseType != nil {
		candidate.NurseType = *req.NurseType
	}
	if req.PrimarySpecialty != nil {
		candidate.PrimarySpecialty = *req.PrimarySpecialty
	}
	if req.YearsOfExperience != nil {
		candidate.YearsOfExperience = req.YearsOfExperience
	}
	if req.DesiredLocations != nil {
		candidate.DesiredLocations = datatypes.NewJSONSlice(req.DesiredLocations)
	}
	if req.TravelWillingness != nil {
		candidate.TravelWillingness = *req.TravelWillingness
	}
	if req.StartDateAvailability != nil {
		candidate.StartDateAvailability = *req.StartDateAvailability
	}
	if req.Status != nil {
		candidate.Status = models.CandidateStatus(*req.Status)
	}
	if req.Tags != nil {
		candidate.Tags = datatypes.NewJSONSlice(req.Tags)
	}
	if req.Notes != nil {
		candidate.Notes = *req.Notes
	}

	if err := s.candidateRepo.Update(candidate); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if candidate.Status != previousStatus {
		s.logActivity(candidate.ID, "status_changed",
			fmt.Sprintf("Status changed from %s to %s", previousStatus, candidate.Status))
	}
	return candidate, nil
}

func (s *candidateService) DeleteCandidate(id string) error {
	if err := s.candidateRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrCandidateNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *candidateService) logActivity(candidateID, activityType, description string) {
	activity := &models.Activity{
		EntityType:   models.EntityCandidate,
		EntityID:     candidateID,
		ActivityType: activityType,
		Description:  description,
	}
	if err := s.activityRepo.Create(activity); err != nil {
		logger.WithError(err).Error("failed to log candidate activity", "candidate_id", candidateID)
	}
}
