package services

import (
	"sort"
	"time"

	"mccare_backend/internal/models"
	"mccare_backend/internal/repositories"
	"mccare_backend/internal/services/dto"
	"mccare_backend/pkg/apperrors"
)

// DashboardService aggregates pipeline, staffing and billing numbers
// for the operations dashboard.
type DashboardService interface {
	GetStats() (*dto.DashboardStats, error)
	GetInvoiceSummaries(period string) ([]dto.InvoiceSummary, error)
}

type DashboardServiceImpl struct {
	leadRepo       repositories.LeadRepository
	candidateRepo  repositories.CandidateRepository
	facilityRepo   repositories.FacilityRepository
	jobOrderRepo   repositories.JobOrderRepository
	assignmentRepo repositories.AssignmentRepository
	timesheetRepo  repositories.TimesheetRepository
	documentRepo   repositories.DocumentRepository

	Now func() time.Time
}

func NewDashboardService(
	leadRepo repositories.LeadRepository,
	candidateRepo repositories.CandidateRepository,
	facilityRepo repositories.FacilityRepository,
	jobOrderRepo repositories.JobOrderRepository,
	assignmentRepo repositories.AssignmentRepository,
	timesheetRepo repositories.TimesheetRepository,
	documentRepo repositories.DocumentRepository,
) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		leadRepo:       leadRepo,
		candidateRepo:  candidateRepo,
		facilityRepo:   facilityRepo,
		jobOrderRepo:   jobOrderRepo,
		assignmentRepo: assignmentRepo,
		timesheetRepo:  timesheetRepo,
		documentRepo:   documentRepo,
		Now:            time.Now,
	}
}

func (s *DashboardServiceImpl) GetStats() (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}

	var err error
	if stats.LeadsByStage, err = s.leadRepo.CountByStage(); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if stats.CandidatesBySpecialty, err = s.candidateRepo.CountBySpecialty(models.CandidateStatusActive); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if stats.OpenJobOrders, err = s.jobOrderRepo.CountByStatus(models.JobOrderStatusOpen); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if stats.TotalLeads, err = s.leadRepo.Count(); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if stats.TotalCandidates, err = s.candidateRepo.Count(); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if stats.ActiveCandidates, err = s.candidateRepo.CountByStatus(models.CandidateStatusActive); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if stats.TotalJobOrders, err = s.jobOrderRepo.Count(); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if stats.ActiveAssignments, err = s.assignmentRepo.CountByStatus(models.AssignmentStatusActive); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if stats.PendingTimesheets, err = s.timesheetRepo.CountByStatus(models.TimesheetStatusSubmitted); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	facilities, err := s.facilityRepo.FindAll("")
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	stats.TotalFacilities = int64(len(facilities))

	now := s.Now().UTC()
	today := now.Format("2006-01-02")
	in14 := now.AddDate(0, 0, 14).Format("2006-01-02")
	in30 := now.AddDate(0, 0, 30).Format("2006-01-02")

	if stats.AssignmentsStarting14Days, err = s.assignmentRepo.CountStartingBetween(today, in14); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if stats.AssignmentsStarting30Days, err = s.assignmentRepo.CountStartingBetween(today, in30); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	stats.CredentialsExpiring30Days, err = s.countCredentialsExpiring(30)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *DashboardServiceImpl) countCredentialsExpiring(withinDays int) (int64, error) {
	documents, err := s.documentRepo.FindWithExpiry()
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}

	now := s.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var count int64
	for i := range documents {
		expiry, err := parseExpiryDate(*documents[i].ExpiryDate)
		if err != nil {
			continue
		}
		days := int(expiry.Sub(today).Hours() / 24)
		if days >= 0 && days <= withinDays {
			count++
		}
	}
	return count, nil
}

// GetInvoiceSummaries rolls approved timesheets up per facility per
// month. Period filters on YYYY-MM of the week start; empty means all.
func (s *DashboardServiceImpl) GetInvoiceSummaries(period string) ([]dto.InvoiceSummary, error) {
	timesheets, err := s.timesheetRepo.FindWithFilter(repositories.TimesheetFilter{
		Status: models.TimesheetStatusApproved,
	})
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	type key struct {
		facilityID string
		period     string
	}
	groups := make(map[key]*dto.InvoiceSummary)

	for i := range timesheets {
		ts := &timesheets[i]
		if len(ts.WeekStart) < 7 {
			continue
		}
		month := ts.WeekStart[:7]
		if period != "" && month != period {
			continue
		}

		assignment, err := s.assignmentRepo.FindByID(ts.AssignmentID)
		if err != nil {
			continue
		}

		k := key{facilityID: assignment.FacilityID, period: month}
		summary, ok := groups[k]
		if !ok {
			name := "Unknown"
			if facility, err := s.facilityRepo.FindByID(assignment.FacilityID); err == nil {
				name = facility.Name
			}
			summary = &dto.InvoiceSummary{
				FacilityID:   assignment.FacilityID,
				FacilityName: name,
				Period:       month,
				Timesheets:   []string{},
			}
			groups[k] = summary
		}

		summary.TotalHours += ts.TotalHours
		summary.TotalAmount += ts.TotalBillable
		summary.Timesheets = append(summary.Timesheets, ts.ID)
	}

	summaries := make([]dto.InvoiceSummary, 0, len(groups))
	for _, summary := range groups {
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Period != summaries[j].Period {
			return summaries[i].Period < summaries[j].Period
		}
		return summaries[i].FacilityName < summaries[j].FacilityName
	})
	return summaries, nil
}
