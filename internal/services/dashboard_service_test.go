package services

import (
	"testing"
	"time"

	"mccare_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

type dashboardFixture struct {
	service     *DashboardServiceImpl
	leads       *fakeLeadRepo
	candidates  *fakeCandidateRepo
	facilities  *fakeFacilityRepo
	jobOrders   *fakeJobOrderRepo
	assignments *fakeAssignmentRepo
	timesheets  *fakeTimesheetRepo
	documents   *fakeDocumentRepo
	now         time.Time
}

func newDashboardFixture() *dashboardFixture {
	f := &dashboardFixture{
		leads:       newFakeLeadRepo(),
		candidates:  newFakeCandidateRepo(),
		facilities:  newFakeFacilityRepo(),
		jobOrders:   newFakeJobOrderRepo(),
		assignments: newFakeAssignmentRepo(),
		timesheets:  newFakeTimesheetRepo(),
		documents:   newFakeDocumentRepo(),
		now:         time.Date(2025, time.May, 1, 8, 0, 0, 0, time.UTC),
	}
	f.service = NewDashboardService(f.leads, f.candidates, f.facilities, f.jobOrders, f.assignments, f.timesheets, f.documents)
	f.service.Now = func() time.Time { return f.now }
	return f
}

func TestGetStatsAggregates(t *testing.T) {
	t.Parallel()
	f := newDashboardFixture()

	assert.NoError(t, f.leads.Create(&models.Lead{Email: "a@example.com", Stage: models.LeadStageNew}))
	assert.NoError(t, f.leads.Create(&models.Lead{Email: "b@example.com", Stage: models.LeadStageNew}))
	assert.NoError(t, f.leads.Create(&models.Lead{Email: "c@example.com", Stage: models.LeadStageOffer}))

	assert.NoError(t, f.candidates.Create(&models.Candidate{Email: "icu@example.com", PrimarySpecialty: "ICU", Status: models.CandidateStatusActive}))
	assert.NoError(t, f.candidates.Create(&models.Candidate{Email: "er@example.com", PrimarySpecialty: "ER", Status: models.CandidateStatusOnAssignment}))

	assert.NoError(t, f.facilities.Create(&models.Facility{Name: "Lakeshore Regional"}))
	assert.NoError(t, f.jobOrders.Create(&models.JobOrder{Role: "RN", Status: models.JobOrderStatusOpen}))
	assert.NoError(t, f.jobOrders.Create(&models.JobOrder{Role: "RN", Status: models.JobOrderStatusClosed}))

	assert.NoError(t, f.assignments.Create(&models.Assignment{StartDate: "2025-05-10", Status: models.AssignmentStatusActive}))
	assert.NoError(t, f.assignments.Create(&models.Assignment{StartDate: "2025-05-25", Status: models.AssignmentStatusScheduled}))
	assert.NoError(t, f.assignments.Create(&models.Assignment{StartDate: "2025-07-01", Status: models.AssignmentStatusScheduled}))

	assert.NoError(t, f.timesheets.Create(&models.Timesheet{Status: models.TimesheetStatusSubmitted}))

	soon := "2025-05-15"
	far := "2025-08-01"
	assert.NoError(t, f.documents.Create(&models.Document{CandidateID: "cand-x", DocumentType: "License", ExpiryDate: &soon}))
	assert.NoError(t, f.documents.Create(&models.Document{CandidateID: "cand-x", DocumentType: "CRC", ExpiryDate: &far}))

	stats, err := f.service.GetStats()
	assert.NoError(t, err)

	assert.Equal(t, int64(2), stats.LeadsByStage[models.LeadStageNew])
	assert.Equal(t, int64(1), stats.LeadsByStage[models.LeadStageOffer])
	assert.Equal(t, int64(3), stats.TotalLeads)

	assert.Equal(t, int64(1), stats.CandidatesBySpecialty["ICU"])
	assert.Zero(t, stats.CandidatesBySpecialty["ER"], "only active candidates count per specialty")
	assert.Equal(t, int64(2), stats.TotalCandidates)
	assert.Equal(t, int64(1), stats.ActiveCandidates)

	assert.Equal(t, int64(1), stats.OpenJobOrders)
	assert.Equal(t, int64(2), stats.TotalJobOrders)
	assert.Equal(t, int64(1), stats.TotalFacilities)

	assert.Equal(t, int64(1), stats.ActiveAssignments)
	assert.Equal(t, int64(1), stats.AssignmentsStarting14Days)
	assert.Equal(t, int64(2), stats.AssignmentsStarting30Days)

	assert.Equal(t, int64(1), stats.PendingTimesheets)
	assert.Equal(t, int64(1), stats.CredentialsExpiring30Days)
}

func TestInvoiceSummariesGroupByFacilityAndMonth(t *testing.T) {
	t.Parallel()
	f := newDashboardFixture()

	facilityA := &models.Facility{Name: "Lakeshore Regional"}
	facilityB := &models.Facility{Name: "St. Joseph General"}
	assert.NoError(t, f.facilities.Create(facilityA))
	assert.NoError(t, f.facilities.Create(facilityB))

	asgA := &models.Assignment{FacilityID: facilityA.ID, StartDate: "2025-04-01"}
	asgB := &models.Assignment{FacilityID: facilityB.ID, StartDate: "2025-04-01"}
	assert.NoError(t, f.assignments.Create(asgA))
	assert.NoError(t, f.assignments.Create(asgB))

	add := func(assignmentID, weekStart string, hours, billable float64, status models.TimesheetStatus) {
		assert.NoError(t, f.timesheets.Create(&models.Timesheet{
			AssignmentID:  assignmentID,
			CandidateID:   "cand-x",
			WeekStart:     weekStart,
			WeekEnd:       weekStart,
			Entries:       datatypes.NewJSONSlice([]models.TimesheetEntry{}),
			Status:        status,
			TotalHours:    hours,
			TotalBillable: billable,
		}))
	}

	add(asgA.ID, "2025-04-07", 36, 2880, models.TimesheetStatusApproved)
	add(asgA.ID, "2025-04-14", 40, 3280, models.TimesheetStatusApproved)
	add(asgA.ID, "2025-05-05", 36, 2880, models.TimesheetStatusApproved)
	add(asgB.ID, "2025-04-07", 24, 1680, models.TimesheetStatusApproved)
	add(asgA.ID, "2025-04-21", 36, 2880, models.TimesheetStatusDraft) // not yet billable

	summaries, err := f.service.GetInvoiceSummaries("")
	assert.NoError(t, err)
	if assert.Len(t, summaries, 3) {
		assert.Equal(t, "2025-04", summaries[0].Period)
		assert.Equal(t, "Lakeshore Regional", summaries[0].FacilityName)
		assert.Equal(t, 76.0, summaries[0].TotalHours)
		assert.Equal(t, 6160.0, summaries[0].TotalAmount)
		assert.Len(t, summaries[0].Timesheets, 2)

		assert.Equal(t, "2025-04", summaries[1].Period)
		assert.Equal(t, "St. Joseph General", summaries[1].FacilityName)

		assert.Equal(t, "2025-05", summaries[2].Period)
	}

	april, err := f.service.GetInvoiceSummaries("2025-04")
	assert.NoError(t, err)
	assert.Len(t, april, 2)
}
