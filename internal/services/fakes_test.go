package services

import (
	"fmt"
	"strings"
	"time"

	"mccare_backend/internal/email"
	"mccare_backend/internal/models"
	"mccare_backend/internal/repositories"

	"gorm.io/datatypes"
)

// In-memory repository fakes for service tests. They mirror the
// postgres-backed behavior closely enough for the business rules under
// test: sentinel errors, email uniqueness, stable IDs.

var fakeIDCounter int

func nextID(prefix string) string {
	fakeIDCounter++
	return fmt.Sprintf("%s-%04d", prefix, fakeIDCounter)
}

type fakeLeadRepo struct {
	leads map[string]*models.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[string]*models.Lead)}
}

func (r *fakeLeadRepo) Create(lead *models.Lead) error {
	for _, l := range r.leads {
		if strings.EqualFold(l.Email, lead.Email) {
			return repositories.ErrLeadEmailExists
		}
	}
	if lead.ID == "" {
		lead.ID = nextID("lead")
	}
	lead.CreatedAt = time.Now()
	copied := *lead
	r.leads[lead.ID] = &copied
	return nil
}

func (r *fakeLeadRepo) FindByID(id string) (*models.Lead, error) {
	lead, ok := r.leads[id]
	if !ok {
		return nil, repositories.ErrLeadNotFound
	}
	copied := *lead
	return &copied, nil
}

func (r *fakeLeadRepo) FindByEmail(email string) (*models.Lead, error) {
	for _, lead := range r.leads {
		if strings.EqualFold(lead.Email, email) {
			copied := *lead
			return &copied, nil
		}
	}
	return nil, repositories.ErrLeadNotFound
}

func (r *fakeLeadRepo) FindWithFilter(criteria repositories.LeadFilter) ([]models.Lead, int64, error) {
	var result []models.Lead
	for _, lead := range r.leads {
		if criteria.Stage != "" && lead.Stage != criteria.Stage {
			continue
		}
		result = append(result, *lead)
	}
	return result, int64(len(result)), nil
}

func (r *fakeLeadRepo) Update(lead *models.Lead) error {
	if _, ok := r.leads[lead.ID]; !ok {
		return repositories.ErrLeadNotFound
	}
	copied := *lead
	r.leads[lead.ID] = &copied
	return nil
}

func (r *fakeLeadRepo) Delete(id string) error {
	if _, ok := r.leads[id]; !ok {
		return repositories.ErrLeadNotFound
	}
	delete(r.leads, id)
	return nil
}

func (r *fakeLeadRepo) CountByStage() (map[models.LeadStage]int64, error) {
	counts := make(map[models.LeadStage]int64)
	for _, lead := range r.leads {
		counts[lead.Stage]++
	}
	return counts, nil
}

func (r *fakeLeadRepo) CountCreatedToday() (int64, error) {
	return int64(len(r.leads)), nil
}

func (r *fakeLeadRepo) Count() (int64, error) {
	return int64(len(r.leads)), nil
}

type fakeCandidateRepo struct {
	candidates map[string]*models.Candidate
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{candidates: make(map[string]*models.Candidate)}
}

func (r *fakeCandidateRepo) Create(candidate *models.Candidate) error {
	if candidate.ID == "" {
		candidate.ID = nextID("cand")
	}
	copied := *candidate
	r.candidates[candidate.ID] = &copied
	return nil
}

func (r *fakeCandidateRepo) FindByID(id string) (*models.Candidate, error) {
	candidate, ok := r.candidates[id]
	if !ok {
		return nil, repositories.ErrCandidateNotFound
	}
	copied := *candidate
	return &copied, nil
}

func (r *fakeCandidateRepo) FindByEmail(email string) (*models.Candidate, error) {
	for _, candidate := range r.candidates {
		if strings.EqualFold(candidate.Email, email) {
			copied := *candidate
			return &copied, nil
		}
	}
	return nil, repositories.ErrCandidateNotFound
}

func (r *fakeCandidateRepo) FindWithFilter(criteria repositories.CandidateFilter) ([]models.Candidate, int64, error) {
	var result []models.Candidate
	for _, candidate := range r.candidates {
		result = append(result, *candidate)
	}
	return result, int64(len(result)), nil
}

func (r *fakeCandidateRepo) Update(candidate *models.Candidate) error {
	if _, ok := r.candidates[candidate.ID]; !ok {
		return repositories.ErrCandidateNotFound
	}
	copied := *candidate
	r.candidates[candidate.ID] = &copied
	return nil
}

func (r *fakeCandidateRepo) Delete(id string) error {
	if _, ok := r.candidates[id]; !ok {
		return repositories.ErrCandidateNotFound
	}
	delete(r.candidates, id)
	return nil
}

func (r *fakeCandidateRepo) CountBySpecialty(status models.CandidateStatus) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, candidate := range r.candidates {
		if candidate.Status != status {
			continue
		}
		key := candidate.PrimarySpecialty
		if key == "" {
			key = "Unspecified"
		}
		counts[key]++
	}
	return counts, nil
}

func (r *fakeCandidateRepo) CountByStatus(status models.CandidateStatus) (int64, error) {
	var count int64
	for _, candidate := range r.candidates {
		if candidate.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeCandidateRepo) Count() (int64, error) {
	return int64(len(r.candidates)), nil
}

type fakeDocumentRepo struct {
	documents map[string]*models.Document
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{documents: make(map[string]*models.Document)}
}

func (r *fakeDocumentRepo) Create(document *models.Document) error {
	if document.ID == "" {
		document.ID = nextID("doc")
	}
	copied := *document
	r.documents[document.ID] = &copied
	return nil
}

func (r *fakeDocumentRepo) FindByID(id string) (*models.Document, error) {
	document, ok := r.documents[id]
	if !ok {
		return nil, repositories.ErrDocumentNotFound
	}
	copied := *document
	return &copied, nil
}

func (r *fakeDocumentRepo) FindWithFilter(criteria repositories.DocumentFilter) ([]models.Document, error) {
	var result []models.Document
	for _, document := range r.documents {
		if criteria.CandidateID != "" && document.CandidateID != criteria.CandidateID {
			continue
		}
		if criteria.Status != "" && document.Status != criteria.Status {
			continue
		}
		result = append(result, *document)
	}
	return result, nil
}

func (r *fakeDocumentRepo) FindWithExpiry() ([]models.Document, error) {
	var result []models.Document
	for _, document := range r.documents {
		if document.ExpiryDate != nil && *document.ExpiryDate != "" {
			result = append(result, *document)
		}
	}
	return result, nil
}

func (r *fakeDocumentRepo) Update(document *models.Document) error {
	if _, ok := r.documents[document.ID]; !ok {
		return repositories.ErrDocumentNotFound
	}
	copied := *document
	r.documents[document.ID] = &copied
	return nil
}

func (r *fakeDocumentRepo) Delete(id string) error {
	if _, ok := r.documents[id]; !ok {
		return repositories.ErrDocumentNotFound
	}
	delete(r.documents, id)
	return nil
}

func (r *fakeDocumentRepo) SetLastNotified(documentID, thresholdKey string, at time.Time) error {
	document, ok := r.documents[documentID]
	if !ok {
		return repositories.ErrDocumentNotFound
	}
	if document.LastNotified == nil {
		document.LastNotified = map[string]interface{}{}
	}
	document.LastNotified[thresholdKey] = at.UTC().Format(time.RFC3339)
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = nextID("user")
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByRoles(roles ...models.UserRole) ([]models.User, error) {
	roleSet := make(map[models.UserRole]bool)
	for _, role := range roles {
		roleSet[role] = true
	}
	var result []models.User
	for _, user := range r.users {
		if roleSet[user.Role] {
			result = append(result, *user)
		}
	}
	return result, nil
}

func (r *fakeUserRepo) FindAll() ([]models.User, error) {
	var result []models.User
	for _, user := range r.users {
		result = append(result, *user)
	}
	return result, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeSettingsRepo struct {
	capture      *models.LeadCaptureSettings
	notification *models.NotificationSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{
		capture:      models.DefaultLeadCaptureSettings(),
		notification: models.DefaultNotificationSettings(),
	}
}

func (r *fakeSettingsRepo) GetLeadCaptureSettings() (*models.LeadCaptureSettings, error) {
	copied := *r.capture
	return &copied, nil
}

func (r *fakeSettingsRepo) UpdateLeadCaptureSettings(settings *models.LeadCaptureSettings) error {
	copied := *settings
	r.capture = &copied
	return nil
}

func (r *fakeSettingsRepo) GetNotificationSettings() (*models.NotificationSettings, error) {
	copied := *r.notification
	return &copied, nil
}

func (r *fakeSettingsRepo) UpdateNotificationSettings(settings *models.NotificationSettings) error {
	copied := *settings
	r.notification = &copied
	return nil
}

type fakeActivityRepo struct {
	activities []models.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{}
}

func (r *fakeActivityRepo) Create(activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = nextID("act")
	}
	r.activities = append(r.activities, *activity)
	return nil
}

func (r *fakeActivityRepo) FindByEntity(entityType models.EntityKind, entityID string) ([]models.Activity, error) {
	var result []models.Activity
	for _, activity := range r.activities {
		if activity.EntityType == entityType && activity.EntityID == entityID {
			result = append(result, activity)
		}
	}
	return result, nil
}

func (r *fakeActivityRepo) FindRecent(limit int) ([]models.Activity, error) {
	if limit <= 0 || limit > len(r.activities) {
		limit = len(r.activities)
	}
	return r.activities[len(r.activities)-limit:], nil
}

func (r *fakeActivityRepo) byType(activityType string) []models.Activity {
	var result []models.Activity
	for _, activity := range r.activities {
		if activity.ActivityType == activityType {
			result = append(result, activity)
		}
	}
	return result
}

type fakeAuditRepo struct {
	entries []models.LeadAuditLog
}

func newFakeAuditRepo() *fakeAuditRepo {
	return &fakeAuditRepo{}
}

func (r *fakeAuditRepo) Create(entry *models.LeadAuditLog) error {
	if entry.ID == "" {
		entry.ID = nextID("audit")
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeAuditRepo) FindByLead(leadID string) ([]models.LeadAuditLog, error) {
	var result []models.LeadAuditLog
	for _, entry := range r.entries {
		if entry.LeadID == leadID {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (r *fakeAuditRepo) FindRecent(limit int) ([]models.LeadAuditLog, error) {
	if limit <= 0 || limit > len(r.entries) {
		limit = len(r.entries)
	}
	return r.entries[len(r.entries)-limit:], nil
}

type fakeNotificationRepo struct {
	notifications map[string]*models.Notification
	logs          []models.NotificationLog
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[string]*models.Notification)}
}

func (r *fakeNotificationRepo) Create(notification *models.Notification) error {
	if notification.ID == "" {
		notification.ID = nextID("notif")
	}
	copied := *notification
	r.notifications[notification.ID] = &copied
	return nil
}

func (r *fakeNotificationRepo) FindByID(id string) (*models.Notification, error) {
	notification, ok := r.notifications[id]
	if !ok {
		return nil, repositories.ErrNotificationNotFound
	}
	copied := *notification
	return &copied, nil
}

func (r *fakeNotificationRepo) FindForUser(userID string, unreadOnly bool, limit int) ([]models.Notification, error) {
	var result []models.Notification
	for _, notification := range r.notifications {
		if !containsString(notification.UserIDs, userID) {
			continue
		}
		if unreadOnly && notification.IsReadBy(userID) {
			continue
		}
		result = append(result, *notification)
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeNotificationRepo) UnreadCount(userID string) (int64, error) {
	var count int64
	for _, notification := range r.notifications {
		if containsString(notification.UserIDs, userID) && !notification.IsReadBy(userID) {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkRead(notificationID, userID string) error {
	notification, ok := r.notifications[notificationID]
	if !ok {
		return repositories.ErrNotificationNotFound
	}
	if !notification.IsReadBy(userID) {
		notification.ReadBy = append(notification.ReadBy, userID)
	}
	return nil
}

func (r *fakeNotificationRepo) MarkAllRead(userID string) error {
	for _, notification := range r.notifications {
		if containsString(notification.UserIDs, userID) && !notification.IsReadBy(userID) {
			notification.ReadBy = append(notification.ReadBy, userID)
		}
	}
	return nil
}

func (r *fakeNotificationRepo) CreateLog(log *models.NotificationLog) error {
	if log.ID == "" {
		log.ID = nextID("nlog")
	}
	r.logs = append(r.logs, *log)
	return nil
}

func (r *fakeNotificationRepo) FindLogs(notificationType string, limit int) ([]models.NotificationLog, error) {
	var result []models.NotificationLog
	for _, log := range r.logs {
		if notificationType != "" && log.Type != notificationType {
			continue
		}
		result = append(result, log)
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

type fakeFacilityRepo struct {
	facilities map[string]*models.Facility
}

func newFakeFacilityRepo() *fakeFacilityRepo {
	return &fakeFacilityRepo{facilities: make(map[string]*models.Facility)}
}

func (r *fakeFacilityRepo) Create(facility *models.Facility) error {
	if facility.ID == "" {
		facility.ID = nextID("fac")
	}
	copied := *facility
	r.facilities[facility.ID] = &copied
	return nil
}

func (r *fakeFacilityRepo) FindByID(id string) (*models.Facility, error) {
	facility, ok := r.facilities[id]
	if !ok {
		return nil, repositories.ErrFacilityNotFound
	}
	copied := *facility
	return &copied, nil
}

func (r *fakeFacilityRepo) FindAll(search string) ([]models.Facility, error) {
	var result []models.Facility
	for _, facility := range r.facilities {
		if search != "" && !strings.Contains(strings.ToLower(facility.Name), strings.ToLower(search)) {
			continue
		}
		result = append(result, *facility)
	}
	return result, nil
}

func (r *fakeFacilityRepo) Update(facility *models.Facility) error {
	if _, ok := r.facilities[facility.ID]; !ok {
		return repositories.ErrFacilityNotFound
	}
	copied := *facility
	r.facilities[facility.ID] = &copied
	return nil
}

func (r *fakeFacilityRepo) Delete(id string) error {
	if _, ok := r.facilities[id]; !ok {
		return repositories.ErrFacilityNotFound
	}
	delete(r.facilities, id)
	return nil
}

type fakeAssignmentRepo struct {
	assignments map[string]*models.Assignment
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{assignments: make(map[string]*models.Assignment)}
}

func (r *fakeAssignmentRepo) Create(assignment *models.Assignment) error {
	if assignment.ID == "" {
		assignment.ID = nextID("asg")
	}
	copied := *assignment
	r.assignments[assignment.ID] = &copied
	return nil
}

func (r *fakeAssignmentRepo) FindByID(id string) (*models.Assignment, error) {
	assignment, ok := r.assignments[id]
	if !ok {
		return nil, repositories.ErrAssignmentNotFound
	}
	copied := *assignment
	return &copied, nil
}

func (r *fakeAssignmentRepo) FindWithFilter(criteria repositories.AssignmentFilter) ([]models.Assignment, error) {
	var result []models.Assignment
	for _, assignment := range r.assignments {
		result = append(result, *assignment)
	}
	return result, nil
}

func (r *fakeAssignmentRepo) Update(assignment *models.Assignment) error {
	if _, ok := r.assignments[assignment.ID]; !ok {
		return repositories.ErrAssignmentNotFound
	}
	copied := *assignment
	r.assignments[assignment.ID] = &copied
	return nil
}

func (r *fakeAssignmentRepo) Delete(id string) error {
	if _, ok := r.assignments[id]; !ok {
		return repositories.ErrAssignmentNotFound
	}
	delete(r.assignments, id)
	return nil
}

func (r *fakeAssignmentRepo) CountByStatus(status models.AssignmentStatus) (int64, error) {
	var count int64
	for _, assignment := range r.assignments {
		if assignment.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeAssignmentRepo) CountStartingBetween(from, to string) (int64, error) {
	var count int64
	for _, assignment := range r.assignments {
		if assignment.StartDate >= from && assignment.StartDate <= to {
			count++
		}
	}
	return count, nil
}

type fakeJobOrderRepo struct {
	jobOrders map[string]*models.JobOrder
}

func newFakeJobOrderRepo() *fakeJobOrderRepo {
	return &fakeJobOrderRepo{jobOrders: make(map[string]*models.JobOrder)}
}

func (r *fakeJobOrderRepo) Create(jobOrder *models.JobOrder) error {
	if jobOrder.ID == "" {
		jobOrder.ID = nextID("job")
	}
	copied := *jobOrder
	r.jobOrders[jobOrder.ID] = &copied
	return nil
}

func (r *fakeJobOrderRepo) FindByID(id string) (*models.JobOrder, error) {
	jobOrder, ok := r.jobOrders[id]
	if !ok {
		return nil, repositories.ErrJobOrderNotFound
	}
	copied := *jobOrder
	return &copied, nil
}

func (r *fakeJobOrderRepo) FindWithFilter(criteria repositories.JobOrderFilter) ([]models.JobOrder, error) {
	var result []models.JobOrder
	for _, jobOrder := range r.jobOrders {
		if criteria.Status != "" && jobOrder.Status != criteria.Status {
			continue
		}
		result = append(result, *jobOrder)
	}
	return result, nil
}

func (r *fakeJobOrderRepo) Update(jobOrder *models.JobOrder) error {
	if _, ok := r.jobOrders[jobOrder.ID]; !ok {
		return repositories.ErrJobOrderNotFound
	}
	copied := *jobOrder
	r.jobOrders[jobOrder.ID] = &copied
	return nil
}

func (r *fakeJobOrderRepo) Delete(id string) error {
	if _, ok := r.jobOrders[id]; !ok {
		return repositories.ErrJobOrderNotFound
	}
	delete(r.jobOrders, id)
	return nil
}

func (r *fakeJobOrderRepo) AddToShortlist(jobOrderID, candidateID string) error {
	jobOrder, ok := r.jobOrders[jobOrderID]
	if !ok {
		return repositories.ErrJobOrderNotFound
	}
	if !containsString(jobOrder.ShortlistedCandidates, candidateID) {
		jobOrder.ShortlistedCandidates = append(jobOrder.ShortlistedCandidates, candidateID)
	}
	return nil
}

func (r *fakeJobOrderRepo) RemoveFromShortlist(jobOrderID, candidateID string) error {
	jobOrder, ok := r.jobOrders[jobOrderID]
	if !ok {
		return repositories.ErrJobOrderNotFound
	}
	var kept datatypes.JSONSlice[string]
	for _, id := range jobOrder.ShortlistedCandidates {
		if id != candidateID {
			kept = append(kept, id)
		}
	}
	jobOrder.ShortlistedCandidates = kept
	return nil
}

func (r *fakeJobOrderRepo) CountByStatus(status models.JobOrderStatus) (int64, error) {
	var count int64
	for _, jobOrder := range r.jobOrders {
		if jobOrder.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeJobOrderRepo) Count() (int64, error) {
	return int64(len(r.jobOrders)), nil
}

type fakeTimesheetRepo struct {
	timesheets map[string]*models.Timesheet
}

func newFakeTimesheetRepo() *fakeTimesheetRepo {
	return &fakeTimesheetRepo{timesheets: make(map[string]*models.Timesheet)}
}

func (r *fakeTimesheetRepo) Create(timesheet *models.Timesheet) error {
	if timesheet.ID == "" {
		timesheet.ID = nextID("ts")
	}
	copied := *timesheet
	r.timesheets[timesheet.ID] = &copied
	return nil
}

func (r *fakeTimesheetRepo) FindByID(id string) (*models.Timesheet, error) {
	timesheet, ok := r.timesheets[id]
	if !ok {
		return nil, repositories.ErrTimesheetNotFound
	}
	copied := *timesheet
	return &copied, nil
}

func (r *fakeTimesheetRepo) FindWithFilter(criteria repositories.TimesheetFilter) ([]models.Timesheet, error) {
	var result []models.Timesheet
	for _, timesheet := range r.timesheets {
		if criteria.Status != "" && timesheet.Status != criteria.Status {
			continue
		}
		result = append(result, *timesheet)
	}
	return result, nil
}

func (r *fakeTimesheetRepo) Update(timesheet *models.Timesheet) error {
	if _, ok := r.timesheets[timesheet.ID]; !ok {
		return repositories.ErrTimesheetNotFound
	}
	copied := *timesheet
	r.timesheets[timesheet.ID] = &copied
	return nil
}

func (r *fakeTimesheetRepo) Delete(id string) error {
	if _, ok := r.timesheets[id]; !ok {
		return repositories.ErrTimesheetNotFound
	}
	delete(r.timesheets, id)
	return nil
}

func (r *fakeTimesheetRepo) CountByStatus(status models.TimesheetStatus) (int64, error) {
	var count int64
	for _, timesheet := range r.timesheets {
		if timesheet.Status == status {
			count++
		}
	}
	return count, nil
}

// fakeEmailProvider records sent emails and can be told to fail.
type fakeEmailProvider struct {
	sent []email.Email
	fail bool
}

func (p *fakeEmailProvider) Send(msg *email.Email) error {
	if p.fail {
		return fmt.Errorf("smtp connection refused")
	}
	p.sent = append(p.sent, *msg)
	return nil
}

func (p *fakeEmailProvider) SendWithTemplate(templateName string, data email.TemplateData, msg *email.Email) error {
	if p.fail {
		return fmt.Errorf("smtp connection refused")
	}
	msg.HTMLBody = "rendered:" + templateName
	p.sent = append(p.sent, *msg)
	return nil
}

func (p *fakeEmailProvider) Validate() error {
	return nil
}
