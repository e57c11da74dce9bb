package services

import (
	"net/http"
	"testing"

	"mccare_backend/internal/models"
	"mccare_backend/internal/services/dto"
	"mccare_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

type leadFixture struct {
	service    LeadService
	leads      *fakeLeadRepo
	candidates *fakeCandidateRepo
	users      *fakeUserRepo
	activities *fakeActivityRepo
}

func newLeadFixture() *leadFixture {
	f := &leadFixture{
		leads:      newFakeLeadRepo(),
		candidates: newFakeCandidateRepo(),
		users:      newFakeUserRepo(),
		activities: newFakeActivityRepo(),
	}
	settings := newFakeSettingsRepo()
	notifications := NewNotificationService(newFakeNotificationRepo(), settings, f.users, &fakeEmailProvider{}, "http://localhost:3000")
	intake := NewLeadIntakeService(f.leads, f.candidates, newFakeAuditRepo(), f.activities, settings, notifications)
	f.service = NewLeadService(f.leads, f.candidates, f.users, f.activities, intake)
	return f
}

func (f *leadFixture) seedLead(t *testing.T, email string) *models.Lead {
	t.Helper()
	lead := &models.Lead{
		FirstName: "Maya",
		LastName:  "Osei",
		Email:     email,
		Specialty: "ER",
		Stage:     models.LeadStageInterview,
	}
	assert.NoError(t, f.leads.Create(lead))
	return lead
}

func TestCreateLeadRunsThroughIntake(t *testing.T) {
	t.Parallel()
	f := newLeadFixture()

	lead, err := f.service.CreateLead(&dto.CreateLeadRequest{
		FirstName: "Maya",
		LastName:  "Osei",
		Email:     "maya@example.com",
		Tags:      []string{"referral"},
	})
	assert.NoError(t, err)
	assert.Equal(t, models.LeadStageNew, lead.Stage)
	assert.Contains(t, []string(lead.Tags), "ats-form", "default source tag")
	assert.Contains(t, []string(lead.Tags), "referral", "manual tags applied on top")
}

func TestConvertLeadCreatesCandidate(t *testing.T) {
	t.Parallel()
	f := newLeadFixture()
	lead := f.seedLead(t, "maya@example.com")

	result, err := f.service.ConvertLead(lead.ID, &dto.ConvertLeadRequest{})
	assert.NoError(t, err)
	assert.Equal(t, "converted", result.Status)
	assert.NotEmpty(t, result.CandidateID)

	candidate, err := f.candidates.FindByID(result.CandidateID)
	assert.NoError(t, err)
	assert.Equal(t, "maya@example.com", candidate.Email)
	assert.Equal(t, "ER", candidate.PrimarySpecialty)
	assert.Equal(t, "Canada", candidate.Country)
	if assert.NotNil(t, candidate.SourceLeadID) {
		assert.Equal(t, lead.ID, *candidate.SourceLeadID)
	}

	updated, _ := f.leads.FindByID(lead.ID)
	assert.Equal(t, models.LeadStageConverted, updated.Stage)
	if assert.NotNil(t, updated.CandidateID) {
		assert.Equal(t, result.CandidateID, *updated.CandidateID)
	}
}

func TestConvertLeadHonorsPostConversionStage(t *testing.T) {
	t.Parallel()
	f := newLeadFixture()
	lead := f.seedLead(t, "maya@example.com")

	result, err := f.service.ConvertLead(lead.ID, &dto.ConvertLeadRequest{
		PostConversionStage: string(models.LeadStageHired),
	})
	assert.NoError(t, err)
	assert.Equal(t, "converted", result.Status)

	updated, _ := f.leads.FindByID(lead.ID)
	assert.Equal(t, models.LeadStageHired, updated.Stage)
}

func TestConvertLeadRejectsNonTerminalPostConversionStage(t *testing.T) {
	t.Parallel()
	f := newLeadFixture()
	lead := f.seedLead(t, "maya@example.com")

	_, err := f.service.ConvertLead(lead.ID, &dto.ConvertLeadRequest{
		PostConversionStage: string(models.LeadStageInterview),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPipelineStage)

	// Nothing converted; the lead stays in its pre-conversion stage.
	updated, _ := f.leads.FindByID(lead.ID)
	assert.Nil(t, updated.CandidateID)
	assert.Equal(t, models.LeadStageInterview, updated.Stage)
	total, _ := f.candidates.Count()
	assert.Zero(t, total)
}

func TestConvertLeadTwiceFails(t *testing.T) {
	t.Parallel()
	f := newLeadFixture()
	lead := f.seedLead(t, "maya@example.com")

	_, err := f.service.ConvertLead(lead.ID, &dto.ConvertLeadRequest{})
	assert.NoError(t, err)

	_, err = f.service.ConvertLead(lead.ID, &dto.ConvertLeadRequest{})
	assert.ErrorIs(t, err, apperrors.ErrLeadAlreadyConverted)

	// The guard is a conflict at the HTTP layer too, not a bad request.
	var appErr *apperrors.AppError
	if assert.True(t, apperrors.As(err, &appErr)) {
		assert.Equal(t, apperrors.CodeConflict, appErr.Code)
		assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
	}
}

func TestConvertLeadReportsDuplicate(t *testing.T) {
	t.Parallel()
	f := newLeadFixture()
	lead := f.seedLead(t, "maya@example.com")

	existing := &models.Candidate{FirstName: "Maya", LastName: "Osei", Email: "MAYA@example.com"}
	assert.NoError(t, f.candidates.Create(existing))

	result, err := f.service.ConvertLead(lead.ID, &dto.ConvertLeadRequest{})
	assert.NoError(t, err)
	assert.Equal(t, "duplicate_found", result.Status)
	if assert.NotNil(t, result.ExistingCandidate) {
		assert.Equal(t, existing.ID, result.ExistingCandidate.ID)
	}

	// The lead is untouched until a human decides.
	unchanged, _ := f.leads.FindByID(lead.ID)
	assert.Nil(t, unchanged.CandidateID)
	assert.Equal(t, models.LeadStageInterview, unchanged.Stage)
}

func TestConvertLeadLinksToExisting(t *testing.T) {
	t.Parallel()
	f := newLeadFixture()
	lead := f.seedLead(t, "maya@example.com")

	existing := &models.Candidate{FirstName: "Maya", LastName: "Osei", Email: "maya@example.com"}
	assert.NoError(t, f.candidates.Create(existing))

	result, err := f.service.ConvertLead(lead.ID, &dto.ConvertLeadRequest{
		LinkToExisting:      true,
		ExistingCandidateID: &existing.ID,
		PostConversionStage: string(models.LeadStageHired),
	})
	assert.NoError(t, err)
	assert.Equal(t, "linked", result.Status)
	assert.Equal(t, existing.ID, result.CandidateID)

	updated, _ := f.leads.FindByID(lead.ID)
	assert.Equal(t, models.LeadStageHired, updated.Stage)
}

func TestConvertLeadLinkRejectsNonTerminalStage(t *testing.T) {
	t.Parallel()
	f := newLeadFixture()
	lead := f.seedLead(t, "maya@example.com")

	existing := &models.Candidate{Email: "maya@example.com"}
	assert.NoError(t, f.candidates.Create(existing))

	_, err := f.service.ConvertLead(lead.ID, &dto.ConvertLeadRequest{
		LinkToExisting:      true,
		ExistingCandidateID: &existing.ID,
		PostConversionStage: string(models.LeadStageInterview),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPipelineStage)
}

func TestCheckDuplicateDoesNotMutate(t *testing.T) {
	t.Parallel()
	f := newLeadFixture()
	lead := f.seedLead(t, "maya@example.com")

	result, err := f.service.CheckDuplicate(lead.ID)
	assert.NoError(t, err)
	assert.False(t, result.DuplicateFound)

	assert.NoError(t, f.candidates.Create(&models.Candidate{Email: "maya@example.com"}))

	result, err = f.service.CheckDuplicate(lead.ID)
	assert.NoError(t, err)
	assert.True(t, result.DuplicateFound)
	assert.NotNil(t, result.ExistingCandidate)

	unchanged, _ := f.leads.FindByID(lead.ID)
	assert.Nil(t, unchanged.CandidateID)
}

func TestUpdateLeadValidatesStage(t *testing.T) {
	t.Parallel()
	f := newLeadFixture()
	lead := f.seedLead(t, "maya@example.com")

	bad := "Limbo"
	_, err := f.service.UpdateLead(lead.ID, &dto.UpdateLeadRequest{Stage: &bad})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPipelineStage)

	good := string(models.LeadStageOffer)
	updated, err := f.service.UpdateLead(lead.ID, &dto.UpdateLeadRequest{Stage: &good})
	assert.NoError(t, err)
	assert.Equal(t, models.LeadStageOffer, updated.Stage)

	changes := f.activities.byType("stage_changed")
	assert.Len(t, changes, 1)
}

func TestRejectLeadRecordsReason(t *testing.T) {
	t.Parallel()
	f := newLeadFixture()
	lead := f.seedLead(t, "maya@example.com")

	rejected, err := f.service.RejectLead(lead.ID, &dto.RejectLeadRequest{Reason: "Not licensed in Ontario"})
	assert.NoError(t, err)
	assert.Equal(t, models.LeadStageRejected, rejected.Stage)
	if assert.NotNil(t, rejected.RejectionReason) {
		assert.Equal(t, "Not licensed in Ontario", *rejected.RejectionReason)
	}
}

func TestAssignRecruiterRequiresExistingUser(t *testing.T) {
	t.Parallel()
	f := newLeadFixture()
	lead := f.seedLead(t, "maya@example.com")

	_, err := f.service.AssignRecruiter(lead.ID, "missing-user")
	assert.Error(t, err)

	recruiter := &models.User{FirstName: "Jon", LastName: "Park", Email: "jon@mccare.example", Role: models.UserRoleRecruiter}
	assert.NoError(t, f.users.Create(recruiter))

	assigned, err := f.service.AssignRecruiter(lead.ID, recruiter.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, assigned.RecruiterID) {
		assert.Equal(t, recruiter.ID, *assigned.RecruiterID)
	}
}

func TestPipelineStageRules(t *testing.T) {
	t.Parallel()

	for _, stage := range models.PipelineStages {
		assert.True(t, models.IsValidStage(stage))
	}
	assert.False(t, models.IsValidStage("Limbo"))

	assert.True(t, models.IsTerminalStage(models.LeadStageHired))
	assert.True(t, models.IsTerminalStage(models.LeadStageConverted))
	assert.True(t, models.IsTerminalStage(models.LeadStageRejected))
	assert.False(t, models.IsTerminalStage(models.LeadStageOffer))
}
