package services

import (
	"time"

	"mccare_backend/internal/logger"
	"mccare_backend/internal/models"
	"mccare_backend/internal/repositories"
	"mccare_backend/internal/services/dto"
	"mccare_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// TimesheetService tracks weekly worked hours per assignment. Totals
// and billable amounts are recomputed on every entry change, never
// accepted from the client.
type TimesheetService interface {
	CreateTimesheet(req *dto.CreateTimesheetRequest) (*models.Timesheet, error)
	GetTimesheet(id string) (*dto.TimesheetResponse, error)
	ListTimesheets(criteria repositories.TimesheetFilter) ([]dto.TimesheetResponse, error)
	UpdateTimesheet(id string, req *dto.UpdateTimesheetRequest) (*models.Timesheet, error)
	DeleteTimesheet(id string) error
	SubmitTimesheet(id string) (*models.Timesheet, error)
	ApproveTimesheet(id, approverID string) (*models.Timesheet, error)
	RejectTimesheet(id string) (*models.Timesheet, error)
}

type TimesheetServiceImpl struct {
	timesheetRepo  repositories.TimesheetRepository
	assignmentRepo repositories.AssignmentRepository
	candidateRepo  repositories.CandidateRepository
	facilityRepo   repositories.FacilityRepository

	Now func() time.Time
}

func NewTimesheetService(
	timesheetRepo repositories.TimesheetRepository,
	assignmentRepo repositories.AssignmentRepository,
	candidateRepo repositories.CandidateRepository,
	facilityRepo repositories.FacilityRepository,
) *TimesheetServiceImpl {
	return &TimesheetServiceImpl{
		timesheetRepo:  timesheetRepo,
		assignmentRepo: assignmentRepo,
		candidateRepo:  candidateRepo,
		facilityRepo:   facilityRepo,
		Now:            time.Now,
	}
}

func (s *TimesheetServiceImpl) CreateTimesheet(req *dto.CreateTimesheetRequest) (*models.Timesheet, error) {
	assignment, err := s.assignmentRepo.FindByID(req.AssignmentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAssignmentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	timesheet := &models.Timesheet{
		AssignmentID: req.AssignmentID,
		CandidateID:  req.CandidateID,
		WeekStart:    req.WeekStart,
		WeekEnd:      req.WeekEnd,
		Entries:      datatypes.NewJSONSlice(entriesFromRequest(req.Entries)),
		Status:       models.TimesheetStatusDraft,
		Notes:        req.Notes,
	}
	timesheet.RecalculateTotals(billRateOf(assignment))

	if err := s.timesheetRepo.Create(timesheet); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.Info("timesheet created", "timesheet_id", timesheet.ID, "assignment_id", timesheet.AssignmentID)
	return timesheet, nil
}

func (s *TimesheetServiceImpl) GetTimesheet(id string) (*dto.TimesheetResponse, error) {
	timesheet, err := s.findTimesheet(id)
	if err != nil {
		return nil, err
	}
	resp := s.enrich(timesheet)
	return &resp, nil
}

func (s *TimesheetServiceImpl) ListTimesheets(criteria repositories.TimesheetFilter) ([]dto.TimesheetResponse, error) {
	timesheets, err := s.timesheetRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]dto.TimesheetResponse, 0, len(timesheets))
	for i := range timesheets {
		responses = append(responses, s.enrich(&timesheets[i]))
	}
	return responses, nil
}

func (s *TimesheetServiceImpl) UpdateTimesheet(id string, req *dto.UpdateTimesheetRequest) (*models.Timesheet, error) {
	timesheet, err := s.findTimesheet(id)
	if err != nil {
		return nil, err
	}
	if timesheet.Status == models.TimesheetStatusApproved {
		return nil, apperrors.ErrInvalidOperation("timesheets", "Approved timesheets cannot be edited")
	}

	if req.Entries != nil {
		timesheet.Entries = datatypes.NewJSONSlice(entriesFromRequest(req.Entries))
		timesheet.RecalculateTotals(s.assignmentBillRate(timesheet.AssignmentID))
	}
	if req.Status != nil {
		timesheet.Status = models.TimesheetStatus(*req.Status)
	}
	if req.Notes != nil {
		timesheet.Notes = *req.Notes
	}

	if err := s.timesheetRepo.Update(timesheet); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return timesheet, nil
}

func (s *TimesheetServiceImpl) DeleteTimesheet(id string) error {
	if err := s.timesheetRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrTimesheetNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *TimesheetServiceImpl) SubmitTimesheet(id string) (*models.Timesheet, error) {
	timesheet, err := s.findTimesheet(id)
	if err != nil {
		return nil, err
	}
	if timesheet.Status != models.TimesheetStatusDraft && timesheet.Status != models.TimesheetStatusRejected {
		return nil, apperrors.ErrInvalidStatus("timesheets", "Only draft or rejected timesheets can be submitted")
	}

	now := s.Now().UTC()
	timesheet.Status = models.TimesheetStatusSubmitted
	timesheet.SubmittedAt = &now

	if err := s.timesheetRepo.Update(timesheet); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return timesheet, nil
}

func (s *TimesheetServiceImpl) ApproveTimesheet(id, approverID string) (*models.Timesheet, error) {
	timesheet, err := s.findTimesheet(id)
	if err != nil {
		return nil, err
	}
	if timesheet.Status != models.TimesheetStatusSubmitted {
		return nil, apperrors.ErrInvalidStatus("timesheets", "Only submitted timesheets can be approved")
	}

	now := s.Now().UTC()
	timesheet.Status = models.TimesheetStatusApproved
	timesheet.ApprovedAt = &now
	timesheet.ApprovedBy = &approverID

	if err := s.timesheetRepo.Update(timesheet); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.Info("timesheet approved", "timesheet_id", timesheet.ID, "approved_by", approverID)
	return timesheet, nil
}

func (s *TimesheetServiceImpl) RejectTimesheet(id string) (*models.Timesheet, error) {
	timesheet, err := s.findTimesheet(id)
	if err != nil {
		return nil, err
	}
	if timesheet.Status != models.TimesheetStatusSubmitted {
		return nil, apperrors.ErrInvalidStatus("timesheets", "Only submitted timesheets can be rejected")
	}

	timesheet.Status = models.TimesheetStatusRejected
	if err := s.timesheetRepo.Update(timesheet); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return timesheet, nil
}

func (s *TimesheetServiceImpl) findTimesheet(id string) (*models.Timesheet, error) {
	timesheet, err := s.timesheetRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTimesheetNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return timesheet, nil
}

func (s *TimesheetServiceImpl) assignmentBillRate(assignmentID string) float64 {
	assignment, err := s.assignmentRepo.FindByID(assignmentID)
	if err != nil {
		return 0
	}
	return billRateOf(assignment)
}

func (s *TimesheetServiceImpl) enrich(timesheet *models.Timesheet) dto.TimesheetResponse {
	resp := dto.TimesheetResponse{Timesheet: *timesheet}

	if candidate, err := s.candidateRepo.FindByID(timesheet.CandidateID); err == nil {
		resp.CandidateName = candidate.FirstName + " " + candidate.LastName
	}
	if assignment, err := s.assignmentRepo.FindByID(timesheet.AssignmentID); err == nil {
		resp.BillRate = billRateOf(assignment)
		if assignment.PayRateRegular != nil {
			resp.PayRateRegular = *assignment.PayRateRegular
		}
		if assignment.PayRateOT != nil {
			resp.PayRateOT = *assignment.PayRateOT
		}
		if facility, err := s.facilityRepo.FindByID(assignment.FacilityID); err == nil {
			resp.FacilityName = facility.Name
		}
	}
	return resp
}

func entriesFromRequest(entries []dto.TimesheetEntryRequest) []models.TimesheetEntry {
	result := make([]models.TimesheetEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, models.TimesheetEntry{
			Day:          e.Day,
			RegularHours: e.RegularHours,
			OTHours:      e.OTHours,
		})
	}
	return result
}

func billRateOf(assignment *models.Assignment) float64 {
	if assignment.BillRate == nil {
		return 0
	}
	return *assignment.BillRate
}
