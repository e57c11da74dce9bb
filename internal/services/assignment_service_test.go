package services

import (
	"testing"

	"mccare_backend/internal/models"
	"mccare_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
)

type assignmentFixture struct {
	service     AssignmentService
	assignments *fakeAssignmentRepo
	candidates  *fakeCandidateRepo
	candidate   *models.Candidate
	jobOrder    *models.JobOrder
	facility    *models.Facility
}

func newAssignmentFixture(t *testing.T) *assignmentFixture {
	t.Helper()
	f := &assignmentFixture{
		assignments: newFakeAssignmentRepo(),
		candidates:  newFakeCandidateRepo(),
	}
	jobOrders := newFakeJobOrderRepo()
	facilities := newFakeFacilityRepo()
	f.service = NewAssignmentService(f.assignments, f.candidates, jobOrders, facilities, newFakeActivityRepo())

	f.candidate = &models.Candidate{FirstName: "Tomas", LastName: "Gruber", Email: "tomas@example.com", Status: models.CandidateStatusActive}
	assert.NoError(t, f.candidates.Create(f.candidate))

	f.facility = &models.Facility{Name: "Lakeshore Regional"}
	assert.NoError(t, facilities.Create(f.facility))

	f.jobOrder = &models.JobOrder{FacilityID: f.facility.ID, Role: "RN", Specialty: "ICU", Status: models.JobOrderStatusOpen}
	assert.NoError(t, jobOrders.Create(f.jobOrder))
	return f
}

func (f *assignmentFixture) createAssignment(t *testing.T) *models.Assignment {
	t.Helper()
	assignment, err := f.service.CreateAssignment(&dto.CreateAssignmentRequest{
		CandidateID: f.candidate.ID,
		JobOrderID:  f.jobOrder.ID,
		FacilityID:  f.facility.ID,
		StartDate:   "2025-07-07",
		EndDate:     "2025-09-28",
	})
	assert.NoError(t, err)
	return assignment
}

func TestCreateAssignmentBooksCandidate(t *testing.T) {
	t.Parallel()
	f := newAssignmentFixture(t)

	assignment := f.createAssignment(t)
	assert.Equal(t, models.AssignmentStatusScheduled, assignment.Status)
	assert.Equal(t, "Travel", assignment.ContractType)
	assert.Equal(t, 36.0, assignment.WeeklyHours)

	candidate, _ := f.candidates.FindByID(f.candidate.ID)
	assert.Equal(t, models.CandidateStatusOnAssignment, candidate.Status)
}

func TestCreateAssignmentValidatesReferences(t *testing.T) {
	t.Parallel()
	f := newAssignmentFixture(t)

	_, err := f.service.CreateAssignment(&dto.CreateAssignmentRequest{
		CandidateID: "missing",
		JobOrderID:  f.jobOrder.ID,
		FacilityID:  f.facility.ID,
		StartDate:   "2025-07-07",
		EndDate:     "2025-09-28",
	})
	assert.Error(t, err)

	_, err = f.service.CreateAssignment(&dto.CreateAssignmentRequest{
		CandidateID: f.candidate.ID,
		JobOrderID:  "missing",
		FacilityID:  f.facility.ID,
		StartDate:   "2025-07-07",
		EndDate:     "2025-09-28",
	})
	assert.Error(t, err)
}

func TestCompletingAssignmentReleasesCandidate(t *testing.T) {
	t.Parallel()
	f := newAssignmentFixture(t)
	assignment := f.createAssignment(t)

	status := string(models.AssignmentStatusActive)
	_, err := f.service.UpdateAssignment(assignment.ID, &dto.UpdateAssignmentRequest{Status: &status})
	assert.NoError(t, err)

	candidate, _ := f.candidates.FindByID(f.candidate.ID)
	assert.Equal(t, models.CandidateStatusOnAssignment, candidate.Status, "still booked while active")

	status = string(models.AssignmentStatusCompleted)
	updated, err := f.service.UpdateAssignment(assignment.ID, &dto.UpdateAssignmentRequest{Status: &status})
	assert.NoError(t, err)
	assert.Equal(t, models.AssignmentStatusCompleted, updated.Status)

	candidate, _ = f.candidates.FindByID(f.candidate.ID)
	assert.Equal(t, models.CandidateStatusActive, candidate.Status)
}

func TestCancellingAssignmentReleasesCandidate(t *testing.T) {
	t.Parallel()
	f := newAssignmentFixture(t)
	assignment := f.createAssignment(t)

	status := string(models.AssignmentStatusCancelled)
	_, err := f.service.UpdateAssignment(assignment.ID, &dto.UpdateAssignmentRequest{Status: &status})
	assert.NoError(t, err)

	candidate, _ := f.candidates.FindByID(f.candidate.ID)
	assert.Equal(t, models.CandidateStatusActive, candidate.Status)
}
