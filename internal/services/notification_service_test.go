package services

import (
	"testing"

	"mccare_backend/internal/models"
	"mccare_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

type notificationFixture struct {
	service  NotificationService
	repo     *fakeNotificationRepo
	settings *fakeSettingsRepo
	users    *fakeUserRepo
	emails   *fakeEmailProvider
}

func newNotificationFixture() *notificationFixture {
	f := &notificationFixture{
		repo:     newFakeNotificationRepo(),
		settings: newFakeSettingsRepo(),
		users:    newFakeUserRepo(),
		emails:   &fakeEmailProvider{},
	}
	f.service = NewNotificationService(f.repo, f.settings, f.users, f.emails, "http://localhost:3000")
	return f
}

func (f *notificationFixture) seedAdmin(t *testing.T) *models.User {
	t.Helper()
	admin := &models.User{FirstName: "Ana", LastName: "Silva", Email: "ana@mccare.example", Role: models.UserRoleAdmin}
	assert.NoError(t, f.users.Create(admin))
	return admin
}

func TestNotifyNewLeadPrefersRecruiter(t *testing.T) {
	t.Parallel()
	f := newNotificationFixture()
	f.seedAdmin(t)

	recruiter := &models.User{FirstName: "Jon", LastName: "Park", Email: "jon@mccare.example", Role: models.UserRoleRecruiter}
	assert.NoError(t, f.users.Create(recruiter))

	lead := &models.Lead{FirstName: "Sam", LastName: "Lee", Email: "sam@example.com", Source: "Website", RecruiterID: &recruiter.ID}
	lead.ID = "lead-recruiter"

	assert.True(t, f.service.NotifyNewLead(lead))

	notifications, err := f.repo.FindForUser(recruiter.ID, false, 10)
	assert.NoError(t, err)
	assert.Len(t, notifications, 1)
	assert.Equal(t, repositories.NotificationTypeNewLead, notifications[0].Type)

	if assert.Len(t, f.emails.sent, 1) {
		assert.Equal(t, []string{"jon@mccare.example"}, f.emails.sent[0].To)
	}
}

func TestNotifyNewLeadFallsBackToAdmins(t *testing.T) {
	t.Parallel()
	f := newNotificationFixture()
	admin := f.seedAdmin(t)

	lead := &models.Lead{FirstName: "Sam", LastName: "Lee", Email: "sam@example.com", Source: "Website"}
	lead.ID = "lead-unassigned"

	assert.True(t, f.service.NotifyNewLead(lead))

	notifications, err := f.repo.FindForUser(admin.ID, false, 10)
	assert.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestNotifyNewLeadDisabled(t *testing.T) {
	t.Parallel()
	f := newNotificationFixture()
	f.seedAdmin(t)
	f.settings.notification.NewLeadEnabled = false

	lead := &models.Lead{FirstName: "Sam", LastName: "Lee", Email: "sam@example.com"}
	lead.ID = "lead-quiet"

	assert.False(t, f.service.NotifyNewLead(lead))
	assert.Empty(t, f.emails.sent)
	assert.Empty(t, f.repo.notifications)
}

func TestNotifyNewLeadIncludesFallbackEmails(t *testing.T) {
	t.Parallel()
	f := newNotificationFixture()
	f.seedAdmin(t)
	f.settings.notification.NewLeadFallbackEmails = datatypes.NewJSONSlice([]string{"intake@mccare.example"})

	lead := &models.Lead{FirstName: "Sam", LastName: "Lee", Email: "sam@example.com"}
	lead.ID = "lead-fallback"

	assert.True(t, f.service.NotifyNewLead(lead))
	if assert.Len(t, f.emails.sent, 1) {
		assert.Contains(t, f.emails.sent[0].To, "ana@mccare.example")
		assert.Contains(t, f.emails.sent[0].To, "intake@mccare.example")
	}
}

func TestMarkReadIsPerUser(t *testing.T) {
	t.Parallel()
	f := newNotificationFixture()

	notification, err := f.service.CreateNotification(CreateNotificationParams{
		Type:    repositories.NotificationTypeNewLead,
		Title:   "New Lead: Sam Lee",
		Message: "A new lead has been submitted",
		UserIDs: []string{"user-a", "user-b"},
	})
	assert.NoError(t, err)

	assert.NoError(t, f.service.MarkRead(notification.ID, "user-a"))

	forA, err := f.service.GetUserNotifications("user-a", false, 10)
	assert.NoError(t, err)
	assert.Zero(t, forA.UnreadCount)
	if assert.Len(t, forA.Notifications, 1) {
		assert.True(t, forA.Notifications[0].IsRead)
	}

	forB, err := f.service.GetUserNotifications("user-b", true, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), forB.UnreadCount)
	assert.Len(t, forB.Notifications, 1)

	countA, err := f.service.UnreadCount("user-a")
	assert.NoError(t, err)
	assert.Zero(t, countA)

	countB, err := f.service.UnreadCount("user-b")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), countB)
}

func TestMarkAllRead(t *testing.T) {
	t.Parallel()
	f := newNotificationFixture()

	for i := 0; i < 3; i++ {
		_, err := f.service.CreateNotification(CreateNotificationParams{
			Type:    repositories.NotificationTypeNewLead,
			Title:   "New Lead",
			Message: "A new lead has been submitted",
			UserIDs: []string{"user-a"},
		})
		assert.NoError(t, err)
	}

	assert.NoError(t, f.service.MarkAllRead("user-a"))

	resp, err := f.service.GetUserNotifications("user-a", true, 10)
	assert.NoError(t, err)
	assert.Zero(t, resp.UnreadCount)
	assert.Empty(t, resp.Notifications)
}

func TestMarkReadUnknownNotification(t *testing.T) {
	t.Parallel()
	f := newNotificationFixture()

	err := f.service.MarkRead("missing", "user-a")
	assert.Error(t, err)
}

func TestSendAlertLogsFailure(t *testing.T) {
	t.Parallel()
	f := newNotificationFixture()
	f.emails.fail = true

	ok := f.service.SendAlert([]string{"ops@mccare.example"}, "Test Alert", "new_lead", nil,
		repositories.NotificationTypeNewLead, map[string]interface{}{"probe": true})
	assert.False(t, ok)

	logs, err := f.service.GetLogs("", 10)
	assert.NoError(t, err)
	if assert.Len(t, logs, 1) {
		assert.False(t, logs[0].Success)
		assert.Equal(t, "Test Alert", logs[0].Subject)
		assert.NotEmpty(t, logs[0].Error)
	}
}

func TestSendAlertNoRecipients(t *testing.T) {
	t.Parallel()
	f := newNotificationFixture()

	ok := f.service.SendAlert(nil, "Test Alert", "new_lead", nil, repositories.NotificationTypeNewLead, nil)
	assert.False(t, ok)
	assert.Empty(t, f.repo.logs)
}
