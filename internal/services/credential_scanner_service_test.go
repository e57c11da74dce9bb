package services

import (
	"testing"
	"time"

	"mccare_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

type scannerFixture struct {
	service       *CredentialScannerServiceImpl
	documents     *fakeDocumentRepo
	candidates    *fakeCandidateRepo
	users         *fakeUserRepo
	settings      *fakeSettingsRepo
	notifications *fakeNotificationRepo
	emails        *fakeEmailProvider
	now           time.Time
}

func newScannerFixture(t *testing.T) *scannerFixture {
	t.Helper()
	f := &scannerFixture{
		documents:     newFakeDocumentRepo(),
		candidates:    newFakeCandidateRepo(),
		users:         newFakeUserRepo(),
		settings:      newFakeSettingsRepo(),
		notifications: newFakeNotificationRepo(),
		emails:        &fakeEmailProvider{},
		now:           time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC),
	}
	notificationService := NewNotificationService(f.notifications, f.settings, f.users, f.emails, "http://localhost:3000")
	f.service = NewCredentialScannerService(f.documents, f.candidates, f.users, f.settings, notificationService, "http://localhost:3000")
	f.service.Now = func() time.Time { return f.now }

	// One compliance officer so alerts have a recipient.
	assert.NoError(t, f.users.Create(&models.User{
		FirstName: "Nadia",
		LastName:  "Villanueva",
		Email:     "nadia@mccare.example",
		Role:      models.UserRoleCompliance,
	}))
	return f
}

func (f *scannerFixture) seedDocument(t *testing.T, expiryDate string) *models.Document {
	t.Helper()
	candidate := &models.Candidate{FirstName: "Omar", LastName: "Reyes", Email: "omar@example.com"}
	assert.NoError(t, f.candidates.Create(candidate))

	doc := &models.Document{
		CandidateID:  candidate.ID,
		DocumentType: "Nursing License",
		FileURL:      "https://files.example/license.pdf",
		ExpiryDate:   &expiryDate,
		Status:       models.DocumentStatusVerified,
	}
	assert.NoError(t, f.documents.Create(doc))
	return doc
}

func (f *scannerFixture) expiryInDays(days int) string {
	return f.now.AddDate(0, 0, days).Format("2006-01-02")
}

func TestScannerAlertsNearestThresholdOnly(t *testing.T) {
	t.Parallel()
	f := newScannerFixture(t)
	doc := f.seedDocument(t, f.expiryInDays(12))

	summary, err := f.service.CheckExpiringCredentials()
	assert.NoError(t, err)
	assert.Equal(t, "completed", summary.Status)
	assert.Equal(t, 1, summary.DocumentsChecked)
	assert.Equal(t, 1, summary.NotificationsSent)
	assert.Equal(t, 1, summary.ByThreshold["14"], "12 days out lands in the 14-day bucket, not 30 or 60")
	assert.Zero(t, summary.ByThreshold["30"])
	assert.Zero(t, summary.ByThreshold["60"])

	stored, _ := f.documents.FindByID(doc.ID)
	assert.Contains(t, stored.LastNotified, "threshold_14")
	assert.NotContains(t, stored.LastNotified, "threshold_30")
}

func TestScannerIsIdempotentPerThreshold(t *testing.T) {
	t.Parallel()
	f := newScannerFixture(t)
	f.seedDocument(t, f.expiryInDays(25))

	first, err := f.service.CheckExpiringCredentials()
	assert.NoError(t, err)
	assert.Equal(t, 1, first.NotificationsSent)

	// Same day, same threshold: the ledger suppresses a repeat.
	second, err := f.service.CheckExpiringCredentials()
	assert.NoError(t, err)
	assert.Zero(t, second.NotificationsSent)
}

func TestScannerFiresAgainAtNextThreshold(t *testing.T) {
	t.Parallel()
	f := newScannerFixture(t)
	doc := f.seedDocument(t, f.expiryInDays(25))

	_, err := f.service.CheckExpiringCredentials()
	assert.NoError(t, err)

	// Twelve days later the document crosses into the 14-day window.
	f.now = f.now.AddDate(0, 0, 12)
	summary, err := f.service.CheckExpiringCredentials()
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.NotificationsSent)
	assert.Equal(t, 1, summary.ByThreshold["14"])

	stored, _ := f.documents.FindByID(doc.ID)
	assert.Contains(t, stored.LastNotified, "threshold_30")
	assert.Contains(t, stored.LastNotified, "threshold_14")
}

func TestScannerExpiredAlertsEveryRun(t *testing.T) {
	t.Parallel()
	f := newScannerFixture(t)
	doc := f.seedDocument(t, f.expiryInDays(-3))

	for run := 0; run < 2; run++ {
		summary, err := f.service.CheckExpiringCredentials()
		assert.NoError(t, err)
		assert.Equal(t, 1, summary.NotificationsSent, "run %d", run)
	}

	// Expired alerts never enter the ledger.
	stored, _ := f.documents.FindByID(doc.ID)
	assert.Empty(t, stored.LastNotified)
}

func TestScannerSkipsWithoutRecipients(t *testing.T) {
	t.Parallel()
	f := newScannerFixture(t)
	doc := f.seedDocument(t, f.expiryInDays(5))

	// Remove the compliance officer; nobody is left to notify.
	for id := range f.users.users {
		delete(f.users.users, id)
	}

	summary, err := f.service.CheckExpiringCredentials()
	assert.NoError(t, err)
	assert.Zero(t, summary.NotificationsSent)

	// No ledger entry either; a later run with recipients still fires.
	stored, _ := f.documents.FindByID(doc.ID)
	assert.Empty(t, stored.LastNotified)

	assert.NoError(t, f.users.Create(&models.User{Email: "admin@mccare.example", Role: models.UserRoleAdmin}))
	summary, err = f.service.CheckExpiringCredentials()
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.NotificationsSent)
}

func TestScannerRoutingFlagsOffSkipAlert(t *testing.T) {
	t.Parallel()
	f := newScannerFixture(t)
	doc := f.seedDocument(t, f.expiryInDays(5))

	// Compliance officer exists, but every routing flag is off.
	f.settings.notification.ExpiringNotifyCompliance = false
	f.settings.notification.ExpiringNotifyCandidate = false
	f.settings.notification.ComplianceEmails = nil

	summary, err := f.service.CheckExpiringCredentials()
	assert.NoError(t, err)
	assert.Zero(t, summary.NotificationsSent)
	assert.Empty(t, f.emails.sent)

	stored, _ := f.documents.FindByID(doc.ID)
	assert.Empty(t, stored.LastNotified)
}

func TestScannerDisabledShortCircuits(t *testing.T) {
	t.Parallel()
	f := newScannerFixture(t)
	f.seedDocument(t, f.expiryInDays(5))
	f.settings.notification.ExpiringCredentialEnabled = false

	summary, err := f.service.CheckExpiringCredentials()
	assert.NoError(t, err)
	assert.Equal(t, "disabled", summary.Status)
	assert.Zero(t, summary.DocumentsChecked)
}

func TestScannerSurvivesEmailFailure(t *testing.T) {
	t.Parallel()
	f := newScannerFixture(t)
	doc := f.seedDocument(t, f.expiryInDays(5))
	f.emails.fail = true

	summary, err := f.service.CheckExpiringCredentials()
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.NotificationsSent, "in-app notification still lands")
	assert.Zero(t, summary.EmailsSent)

	// The failed send is still ledgered; email delivery is best-effort.
	stored, _ := f.documents.FindByID(doc.ID)
	assert.Contains(t, stored.LastNotified, "threshold_7")

	logs, _ := f.notifications.FindLogs("", 10)
	if assert.Len(t, logs, 1) {
		assert.False(t, logs[0].Success)
		assert.NotEmpty(t, logs[0].Error)
	}
}

func TestScannerAcceptsTimestampExpiry(t *testing.T) {
	t.Parallel()
	f := newScannerFixture(t)
	f.seedDocument(t, f.now.AddDate(0, 0, 6).Format(time.RFC3339))

	summary, err := f.service.CheckExpiringCredentials()
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.ByThreshold["7"])
}

func TestScannerNotifiesCandidateWhenEnabled(t *testing.T) {
	t.Parallel()
	f := newScannerFixture(t)
	f.seedDocument(t, f.expiryInDays(5))
	f.settings.notification.ExpiringNotifyCandidate = true

	_, err := f.service.CheckExpiringCredentials()
	assert.NoError(t, err)

	if assert.Len(t, f.emails.sent, 1) {
		assert.Contains(t, f.emails.sent[0].To, "nadia@mccare.example")
		assert.Contains(t, f.emails.sent[0].To, "omar@example.com")
	}
}

func TestScannerHonorsCustomThresholds(t *testing.T) {
	t.Parallel()
	f := newScannerFixture(t)
	f.seedDocument(t, f.expiryInDays(40))
	f.settings.notification.ExpiringThresholds = datatypes.NewJSONSlice([]int{90, 45})

	summary, err := f.service.CheckExpiringCredentials()
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.ByThreshold["45"])
	assert.Zero(t, summary.ByThreshold["90"])
}
