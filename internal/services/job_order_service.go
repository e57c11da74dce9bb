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

type JobOrderService interface {
	CreateJobOrder(req *dto.CreateJobOrderRequest) (*models.JobOrder, error)
	GetJobOrder(id string) (*dto.JobOrderResponse, error)
	ListJobOrders(criteria repositories.JobOrderFilter) ([]dto.JobOrderResponse, error)
	UpdateJobOrder(id string, req *dto.UpdateJobOrderRequest) (*models.JobOrder, error)
	DeleteJobOrder(id string) error
	Shortlist(jobOrderID, candidateID string) (*models.JobOrder, error)
	RemoveFromShortlist(jobOrderID, candidateID string) (*models.JobOrder, error)
}

type jobOrderService struct {
	jobOrderRepo  repositories.JobOrderRepository
	facilityRepo  repositories.FacilityRepository
	candidateRepo repositories.CandidateRepository
	activityRepo  repositories.ActivityRepository
}

func NewJobOrderService(
	jobOrderRepo repositories.JobOrderRepository,
	facilityRepo repositories.FacilityRepository,
	candidateRepo repositories.CandidateRepository,
	activityRepo repositories.ActivityRepository,
) JobOrderService {
	return &jobOrderService{
		jobOrderRepo:  jobOrderRepo,
		facilityRepo:  facilityRepo,
		candidateRepo: candidateRepo,
		activityRepo:  activityRepo,
	}
}

func (s *jobOrderService) CreateJobOrder(req *dto.CreateJobOrderRequest) (*models.JobOrder, error) {
	if _, err := s.facilityRepo.FindByID(req.FacilityID); err != nil {
		if apperrors.Is(err, repositories.ErrFacilityNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	jobOrder := &models.JobOrder{
		FacilityID:            req.FacilityID,
		Role:                  req.Role,
		Specialty:             req.Specialty,
		Openings:              req.Openings,
		ShiftType:             req.ShiftType,
		RequiredExperience:    req.RequiredExperience,
		RequiredCredentials:   datatypes.NewJSONSlice(emptyIfNil(req.RequiredCredentials)),
		PayRate:               req.PayRate,
		BillRate:              req.BillRate,
		Status:                models.JobOrderStatusOpen,
		ShortlistedCandidates: datatypes.NewJSONSlice([]string{}),
		Notes:                 req.Notes,
	}
	if jobOrder.Openings <= 0 {
		jobOrder.Openings = 1
	}
	if jobOrder.ShiftType == "" {
		jobOrder.ShiftType = "Days"
	}
	if req.StartDate != "" {
		start := req.StartDate
		jobOrder.StartDate = &start
	}
	if req.EndDate != "" {
		end := req.EndDate
		jobOrder.EndDate = &end
	}

	if err := s.jobOrderRepo.Create(jobOrder); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.logActivity(jobOrder.ID, "created",
		fmt.Sprintf("Job order created: %s (%s)", jobOrder.Role, jobOrder.Specialty))
	logger.Info("job order created", "job_order_id", jobOrder.ID, "facility_id", jobOrder.FacilityID)
	return jobOrder, nil
}

func (s *jobOrderService) GetJobOrder(id string) (*dto.JobOrderResponse, error) {
	jobOrder, err := s.findJobOrder(id)
	if err != nil {
		return nil, err
	}
	resp := s.enrich(jobOrder)
	return &resp, nil
}

func (s *jobOrderService) ListJobOrders(criteria repositories.JobOrderFilter) ([]dto.JobOrderResponse, error) {
	jobOrders, err := s.jobOrderRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]dto.JobOrderResponse, 0, len(jobOrders))
	for i := range jobOrders {
		responses = append(responses, s.enrich(&jobOrders[i]))
	}
	return responses, nil
}

func (s *jobOrderService) UpdateJobOrder(id string, req *dto.UpdateJobOrderRequest) (*models.JobOrder, error) {
	jobOrder, err := s.findJobOrder(id)
	if err != nil {
		return nil, err
	}

	previousStatus := jobOrder.Status

	if req.FacilityID != nil {
		jobOrder.FacilityID = *req.FacilityID
	}
	if req.Role != nil {
		jobOrder.Role = *req.Role
	}
	if req.Specialty != nil {
		jobOrder.Specialty = *req.Specialty
	}
	if req.Openings != nil {
		jobOrder.Openings = *req.Openings
	}
	if req.ShiftType != nil {
		jobOrder.ShiftType = *req.ShiftType
	}
	if req.StartDate != nil {
		if *req.StartDate == "" {
			jobOrder.StartDate = nil
		} else {
			jobOrder.StartDate = req.StartDate
		}
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			jobOrder.EndDate = nil
		} else {
			jobOrder.EndDate = req.EndDate
		}
	}
	if req.RequiredExperience != nil {
		jobOrder.RequiredExperience = req.RequiredExperience
	}
	if req.RequiredCredentials != nil {
		jobOrder.RequiredCredentials = datatypes.NewJSONSlice(req.RequiredCredentials)
	}
	if req.PayRate != nil {
		jobOrder.PayRate = req.PayRate
	}
	if req.BillRate != nil {
		jobOrder.BillRate = req.BillRate
	}
	if req.Status != nil {
		jobOrder.Status = models.JobOrderStatus(*req.Status)
	}
	if req.Notes != nil {
		jobOrder.Notes = *req.Notes
	}

	if err := s.jobOrderRepo.Update(jobOrder); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if jobOrder.Status != previousStatus {
		s.logActivity(jobOrder.ID, "status_changed",
			fmt.Sprintf("Status changed from %s to %s", previousStatus, jobOrder.Status))
	}
	return jobOrder, nil
}

func (s *jobOrderService) DeleteJobOrder(id string) error {
	if err := s.jobOrderRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrJobOrderNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

// Shortlist adds a candidate to a job order; re-adding the same
// candidate is a no-op.
func (s *jobOrderService) Shortlist(jobOrderID, candidateID string) (*models.JobOrder, error) {
	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCandidateNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	if err := s.jobOrderRepo.AddToShortlist(jobOrderID, candidateID); err != nil {
		if apperrors.Is(err, repositories.ErrJobOrderNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	s.logActivity(jobOrderID, "shortlisted",
		fmt.Sprintf("Candidate shortlisted: %s %s", candidate.FirstName, candidate.LastName))
	return s.findJobOrder(jobOrderID)
}

func (s *jobOrderService) RemoveFromShortlist(jobOrderID, candidateID string) (*models.JobOrder, error) {
	if err := s.jobOrderRepo.RemoveFromShortlist(jobOrderID, candidateID); err != nil {
		if apperrors.Is(err, repositories.ErrJobOrderNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return s.findJobOrder(jobOrderID)
}

func (s *jobOrderService) findJobOrder(id string) (*models.JobOrder, error) {
	jobOrder, err := s.jobOrderRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobOrderNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return jobOrder, nil
}

func (s *jobOrderService) enrich(jobOrder *models.JobOrder) dto.JobOrderResponse {
	resp := dto.JobOrderResponse{JobOrder: *jobOrder, FacilityName: "Unknown"}
	if facility, err := s.facilityRepo.FindByID(jobOrder.FacilityID); err == nil {
		resp.FacilityName = facility.Name
	}
	return resp
}

func (s *jobOrderService) logActivity(jobOrderID, activityType, description string) {
	activity := &models.Activity{
		EntityType:   models.EntityJobOrder,
		EntityID:     jobOrderID,
		ActivityType: activityType,
		Description:  description,
	}
	if err := s.activityRepo.Create(activity); err != nil {
		logger.WithError(err).Error("failed to log job order activity", "job_order_id", jobOrderID)
	}
}
