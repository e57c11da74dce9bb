package services

import (
	"fmt"

	"mccare_backend/internal/logger"
	"mccare_backend/internal/models"
	"mccare_backend/internal/repositories"
	"mccare_backend/internal/services/dto"
	"mccare_backend/pkg/apperrors"
)

// AssignmentService books candidates onto job orders. Creating an
// assignment places the candidate On Assignment; completing or
// cancelling it returns them to the Active pool.
type AssignmentService interface {
	CreateAssignment(req *dto.CreateAssignmentRequest) (*models.Assignment, error)
	GetAssignment(id string) (*models.Assignment, error)
	ListAssignments(criteria repositories.AssignmentFilter) ([]models.Assignment, error)
	UpdateAssignment(id string, req *dto.UpdateAssignmentRequest) (*models.Assignment, error)
	DeleteAssignment(id string) error
}

type assignmentService struct {
	assignmentRepo repositories.AssignmentRepository
	candidateRepo  repositories.CandidateRepository
	jobOrderRepo   repositories.JobOrderRepository
	facilityRepo   repositories.FacilityRepository
	activityRepo   repositories.ActivityRepository
}

func NewAssignmentService(
	assignmentRepo repositories.AssignmentRepository,
	candidateRepo repositories.CandidateRepository,
	jobOrderRepo repositories.JobOrderRepository,
	facilityRepo repositories.FacilityRepository,
	activityRepo repositories.ActivityRepository,
) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		candidateRepo:  candidateRepo,
		jobOrderRepo:   jobOrderRepo,
		facilityRepo:   facilityRepo,
		activityRepo:   activityRepo,
	}
}

func (s *assignmentService) CreateAssignment(req *dto.CreateAssignmentRequest) (*models.Assignment, error) {
	candidate, err := s.candidateRepo.FindByID(req.CandidateID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCandidateNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	if _, err := s.jobOrderRepo.FindByID(req.JobOrderID); err != nil {
		if apperrors.Is(err, repositories.ErrJobOrderNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	if _, err := s.facilityRepo.FindByID(req.FacilityID); err != nil {
		if apperrors.Is(err, repositories.ErrFacilityNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	assignment := &models.Assignment{
		CandidateID:    req.CandidateID,
		JobOrderID:     req.JobOrderID,
		FacilityID:     req.FacilityID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		ShiftPattern:   req.ShiftPattern,
		ContractType:   req.ContractType,
		PayRateRegular: req.PayRateRegular,
		PayRateOT:      req.PayRateOT,
		PayRateHoliday: req.PayRateHoliday,
		BillRate:       req.BillRate,
		WeeklyHours:    36,
		Status:         models.AssignmentStatusScheduled,
		Notes:          req.Notes,
	}
	if assignment.ContractType == "" {
		assignment.ContractType = "Travel"
	}
	if req.WeeklyHours != nil {
		assignment.WeeklyHours = *req.WeeklyHours
	}

	if err := s.assignmentRepo.Create(assignment); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	candidate.Status = models.CandidateStatusOnAssignment
	if err := s.candidateRepo.Update(candidate); err != nil {
		logger.WithError(err).Error("failed to move candidate on assignment", "candidate_id", candidate.ID)
	}

	s.logActivity(assignment.ID, "created",
		fmt.Sprintf("Assignment scheduled for %s %s", candidate.FirstName, candidate.LastName))
	logger.Info("assignment created", "assignment_id", assignment.ID, "candidate_id", candidate.ID)
	return assignment, nil
}

func (s *assignmentService) GetAssignment(id string) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAssignmentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return assignment, nil
}

func (s *assignmentService) ListAssignments(criteria repositories.AssignmentFilter) ([]models.Assignment, error) {
	assignments, err := s.assignmentRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return assignments, nil
}

func (s *assignmentService) UpdateAssignment(id string, req *dto.UpdateAssignmentRequest) (*models.Assignment, error) {
	assignment, err := s.GetAssignment(id)
	if err != nil {
		return nil, err
	}

	previousStatus := assignment.Status

	if req.StartDate != nil {
		assignment.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		assignment.EndDate = *req.EndDate
	}
	if req.ShiftPattern != nil {
		assignment.ShiftPattern = *req.ShiftPattern
	}
	if req.ContractType != nil {
		assignment.ContractType = *req.ContractType
	}
	if req.PayRateRegular != nil {
		assignment.PayRateRegular = req.PayRateRegular
	}
	if req.PayRateOT != nil {
		assignment.PayRateOT = req.PayRateOT
	}
	if req.PayRateHoliday != nil {
		assignment.PayRateHoliday = req.PayRateHoliday
	}
	if req.BillRate != nil {
		assignment.BillRate = req.BillRate
	}
	if req.WeeklyHours != nil {
		assignment.WeeklyHours = *req.WeeklyHours
	}
	if req.Status != nil {
		assignment.Status = models.AssignmentStatus(*req.Status)
	}
	if req.Notes != nil {
		assignment.Notes = *req.Notes
	}

	if err := s.assignmentRepo.Update(assignment); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if assignment.Status != previousStatus {
		s.logActivity(assignment.ID, "status_changed",
			fmt.Sprintf("Status changed from %s to %s", previousStatus, assignment.Status))
		s.releaseCandidateIfDone(assignment)
	}
	return assignment, nil
}

func (s *assignmentService) DeleteAssignment(id string) error {
	if err := s.assignmentRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrAssignmentNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *assignmentService) releaseCandidateIfDone(assignment *models.Assignment) {
	if assignment.Status != models.AssignmentStatusCompleted &&
		assignment.Status != models.AssignmentStatusCancelled {
		return
	}
	candidate, err := s.candidateRepo.FindByID(assignment.CandidateID)
	if err != nil {
		return
	}
	candidate.Status = models.CandidateStatusActive
	if err := s.candidateRepo.Update(candidate); err != nil {
		logger.WithError(err).Error("failed to release candidate", "candidate_id", candidate.ID)
	}
}

func (s *assignmentService) logActivity(assignmentID, activityType, description string) {
	activity := &models.Activity{
		EntityType:   models.EntityAssignment,
		EntityID:     assignmentID,
		ActivityType: activityType,
		Description:  description,
	}
	if err := s.activityRepo.Create(activity); err != nil {
		logger.WithError(err).Error("failed to log assignment activity", "assignment_id", assignmentID)
	}
}
