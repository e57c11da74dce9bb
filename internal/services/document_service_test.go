package services

import (
	"testing"
	"time"

	"mccare_backend/internal/models"
	"mccare_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
)

type documentFixture struct {
	service    *DocumentServiceImpl
	documents  *fakeDocumentRepo
	candidates *fakeCandidateRepo
	candidate  *models.Candidate
	now        time.Time
}

func newDocumentFixture(t *testing.T) *documentFixture {
	t.Helper()
	f := &documentFixture{
		documents:  newFakeDocumentRepo(),
		candidates: newFakeCandidateRepo(),
		now:        time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC),
	}
	f.service = NewDocumentService(f.documents, f.candidates, newFakeActivityRepo())
	f.service.Now = func() time.Time { return f.now }

	f.candidate = &models.Candidate{FirstName: "Leila", LastName: "Haddad", Email: "leila@example.com"}
	assert.NoError(t, f.candidates.Create(f.candidate))
	return f
}

func (f *documentFixture) create(t *testing.T, documentType, expiryDate string) *models.Document {
	t.Helper()
	document, err := f.service.CreateDocument(&dto.CreateDocumentRequest{
		CandidateID:  f.candidate.ID,
		DocumentType: documentType,
		FileURL:      "https://files.example/doc.pdf",
		ExpiryDate:   expiryDate,
	})
	assert.NoError(t, err)
	return document
}

func TestCreateDocumentDerivesStatusFromExpiry(t *testing.T) {
	t.Parallel()
	f := newDocumentFixture(t)

	fresh := f.create(t, "Nursing License", "2026-09-01")
	assert.Equal(t, models.DocumentStatusPending, fresh.Status)

	closing := f.create(t, "BLS/ACLS Certification", "2025-09-20")
	assert.Equal(t, models.DocumentStatusExpiringSoon, closing.Status)

	lapsed := f.create(t, "Criminal Record Check", "2025-08-15")
	assert.Equal(t, models.DocumentStatusExpired, lapsed.Status)
}

func TestCreateDocumentRequiresCandidate(t *testing.T) {
	t.Parallel()
	f := newDocumentFixture(t)

	_, err := f.service.CreateDocument(&dto.CreateDocumentRequest{
		CandidateID:  "missing",
		DocumentType: "Resume",
		FileURL:      "https://files.example/resume.pdf",
	})
	assert.Error(t, err)
}

func TestUpdateDocumentExpiryResetsAlertLedger(t *testing.T) {
	t.Parallel()
	f := newDocumentFixture(t)
	document := f.create(t, "Nursing License", "2025-09-20")

	assert.NoError(t, f.documents.SetLastNotified(document.ID, "threshold_30", f.now))

	renewed := "2026-09-20"
	updated, err := f.service.UpdateDocument(document.ID, &dto.UpdateDocumentRequest{ExpiryDate: &renewed})
	assert.NoError(t, err)
	assert.Empty(t, updated.LastNotified, "a renewed credential alerts again from scratch")
	assert.Equal(t, models.DocumentStatusExpiringSoon, updated.Status,
		"status was already downgraded and only Pending documents are re-derived")
}

func TestVerifyDocumentRejectsExpired(t *testing.T) {
	t.Parallel()
	f := newDocumentFixture(t)

	document := f.create(t, "Immunization Records", "2025-01-01")
	assert.Equal(t, models.DocumentStatusExpired, document.Status)

	_, err := f.service.VerifyDocument(document.ID, "verifier-1")
	assert.Error(t, err)

	valid := f.create(t, "Nursing License", "2026-09-01")
	verified, err := f.service.VerifyDocument(valid.ID, "verifier-1")
	assert.NoError(t, err)
	assert.Equal(t, models.DocumentStatusVerified, verified.Status)
	if assert.NotNil(t, verified.VerifiedBy) {
		assert.Equal(t, "verifier-1", *verified.VerifiedBy)
	}
}

func TestExpiringReportSortsAndFilters(t *testing.T) {
	t.Parallel()
	f := newDocumentFixture(t)

	f.create(t, "Nursing License", "2025-09-25")              // 24 days out
	f.create(t, "BLS/ACLS Certification", "2025-09-05")       // 4 days out
	f.create(t, "Criminal Record Check", "2025-08-20")        // already expired
	f.create(t, "Professional References", "2026-05-01")      // outside window

	report, err := f.service.ExpiringReport(60)
	assert.NoError(t, err)
	if assert.Len(t, report, 3) {
		assert.Equal(t, "Criminal Record Check", report[0].DocumentType)
		assert.Negative(t, report[0].DaysUntilExpiry)
		assert.Equal(t, string(models.DocumentStatusExpired), report[0].Status)
		assert.Equal(t, "BLS/ACLS Certification", report[1].DocumentType)
		assert.Equal(t, "Nursing License", report[2].DocumentType)
		assert.Equal(t, "Leila Haddad", report[0].CandidateName)
	}
}

func TestExpiringReportDefaultWindow(t *testing.T) {
	t.Parallel()
	f := newDocumentFixture(t)

	f.create(t, "Nursing License", "2025-10-15") // 44 days out
	f.create(t, "Resume", "2025-12-01")          // 91 days out

	report, err := f.service.ExpiringReport(0)
	assert.NoError(t, err)
	if assert.Len(t, report, 1) {
		assert.Equal(t, "Nursing License", report[0].DocumentType)
	}
}
