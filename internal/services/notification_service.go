package services

import (
	"fmt"
	"time"

	"mccare_backend/internal/email"
	"mccare_backend/internal/logger"
	"mccare_backend/internal/models"
	"mccare_backend/internal/repositories"
	"mccare_backend/internal/services/dto"
	"mccare_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// NotificationService is the outbound alert dispatcher. Every alert is
// one in-app notification plus one email; email failure never fails
// the in-app write.
type NotificationService interface {
	GetSettings() (*models.NotificationSettings, error)
	UpdateSettings(req *dto.UpdateNotificationSettingsRequest) (*models.NotificationSettings, error)

	CreateNotification(params CreateNotificationParams) (*models.Notification, error)
	GetUserNotifications(userID string, unreadOnly bool, limit int) (*dto.NotificationListResponse, error)
	UnreadCount(userID string) (int64, error)
	MarkRead(notificationID, userID string) error
	MarkAllRead(userID string) error
	GetLogs(notificationType string, limit int) ([]models.NotificationLog, error)

	// SendAlert renders and sends one email. It never returns an
	// error: provider failures are logged and reported as false.
	SendAlert(recipients []string, subject, templateName string, data email.TemplateData, logType string, metadata map[string]interface{}) bool

	NotifyNewLead(lead *models.Lead) bool
}

type CreateNotificationParams struct {
	Type       string
	Title      string
	Message    string
	UserIDs    []string
	EntityType models.EntityKind
	EntityID   string
	Priority   models.NotificationPriority
	Metadata   map[string]interface{}
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	settingsRepo     repositories.SettingsRepository
	userRepo         repositories.UserRepository
	emailProvider    email.Provider
	baseURL          string
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	settingsRepo repositories.SettingsRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	baseURL string,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		settingsRepo:     settingsRepo,
		userRepo:         userRepo,
		emailProvider:    emailProvider,
		baseURL:          baseURL,
	}
}

func (s *notificationService) GetSettings() (*models.NotificationSettings, error) {
	settings, err := s.settingsRepo.GetNotificationSettings()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return settings, nil
}

func (s *notificationService) UpdateSettings(req *dto.UpdateNotificationSettingsRequest) (*models.NotificationSettings, error) {
	settings, err := s.settingsRepo.GetNotificationSettings()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if req.Enabled != nil {
		settings.Enabled = *req.Enabled
	}
	if req.SenderName != nil {
		settings.SenderName = *req.SenderName
	}
	if req.SenderEmail != nil {
		settings.SenderEmail = *req.SenderEmail
	}
	if req.NewLeadEnabled != nil {
		settings.NewLeadEnabled = *req.NewLeadEnabled
	}
	if req.NewLeadNotifyOwner != nil {
		settings.NewLeadNotifyOwner = *req.NewLeadNotifyOwner
	}
	if req.NewLeadFallbackEmails != nil {
		settings.NewLeadFallbackEmails = datatypes.NewJSONSlice(req.NewLeadFallbackEmails)
	}
	if req.ExpiringCredentialEnabled != nil {
		settings.ExpiringCredentialEnabled = *req.ExpiringCredentialEnabled
	}
	if req.ExpiringThresholds != nil {
		for _, t := range req.ExpiringThresholds {
			if t <= 0 {
				return nil, apperrors.ValidationError(
					fmt.Sprintf("expiry threshold must be a positive number of days, got %d", t))
			}
		}
		settings.ExpiringThresholds = datatypes.NewJSONSlice(req.ExpiringThresholds)
	}
	if req.ExpiredAlertEnabled != nil {
		settings.ExpiredAlertEnabled = *req.ExpiredAlertEnabled
	}
	if req.ExpiringNotifyCompliance != nil {
		settings.ExpiringNotifyCompliance = *req.ExpiringNotifyCompliance
	}
	if req.ExpiringNotifyRecruiter != nil {
		settings.ExpiringNotifyRecruiter = *req.ExpiringNotifyRecruiter
	}
	if req.ExpiringNotifyCandidate != nil {
		settings.ExpiringNotifyCandidate = *req.ExpiringNotifyCandidate
	}
	if req.ComplianceEmails != nil {
		settings.ComplianceEmails = datatypes.NewJSONSlice(req.ComplianceEmails)
	}
	if req.QuietHoursEnabled != nil {
		settings.QuietHoursEnabled = *req.QuietHoursEnabled
	}
	if req.QuietHoursStart != nil {
		settings.QuietHoursStart = *req.QuietHoursStart
	}
	if req.QuietHoursEnd != nil {
		settings.QuietHoursEnd = *req.QuietHoursEnd
	}

	if err := s.settingsRepo.UpdateNotificationSettings(settings); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return settings, nil
}

func (s *notificationService) CreateNotification(params CreateNotificationParams) (*models.Notification, error) {
	priority := params.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}

	metadata := datatypes.JSONMap{}
	for k, v := range params.Metadata {
		metadata[k] = v
	}

	notification := &models.Notification{
		Type:       params.Type,
		Title:      params.Title,
		Message:    params.Message,
		UserIDs:    datatypes.NewJSONSlice(params.UserIDs),
		EntityType: params.EntityType,
		EntityID:   params.EntityID,
		Priority:   priority,
		Metadata:   metadata,
		ReadBy:     datatypes.NewJSONSlice([]string{}),
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.Info("created notification", "id", notification.ID, "type", notification.Type, "title", notification.Title)
	return notification, nil
}

func (s *notificationService) GetUserNotifications(userID string, unreadOnly bool, limit int) (*dto.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.FindForUser(userID, unreadOnly, limit)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	unread, err := s.notificationRepo.UnreadCount(userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	items := make([]dto.NotificationItem, 0, len(notifications))
	for i := range notifications {
		items = append(items, dto.NotificationItem{
			Notification: notifications[i],
			IsRead:       notifications[i].IsReadBy(userID),
		})
	}

	return &dto.NotificationListResponse{
		Notifications: items,
		UnreadCount:   unread,
	}, nil
}

func (s *notificationService) UnreadCount(userID string) (int64, error) {
	unread, err := s.notificationRepo.UnreadCount(userID)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return unread, nil
}

func (s *notificationService) MarkRead(notificationID, userID string) error {
	err := s.notificationRepo.MarkRead(notificationID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *notificationService) MarkAllRead(userID string) error {
	if err := s.notificationRepo.MarkAllRead(userID); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *notificationService) GetLogs(notificationType string, limit int) ([]models.NotificationLog, error) {
	logs, err := s.notificationRepo.FindLogs(notificationType, limit)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return logs, nil
}

// SendAlert is best-effort: the caller decides what a false return
// means, nothing is retried here.
func (s *notificationService) SendAlert(recipients []string, subject, templateName string, data email.TemplateData, logType string, metadata map[string]interface{}) bool {
	if len(recipients) == 0 {
		return false
	}

	settings, err := s.settingsRepo.GetNotificationSettings()
	if err != nil {
		logger.WithError(err).Error("failed to load notification settings for alert")
		return false
	}

	msg := &email.Email{
		FromName:  settings.SenderName,
		FromEmail: settings.SenderEmail,
		To:        recipients,
		Subject:   subject,
	}

	sendErr := s.emailProvider.SendWithTemplate(templateName, data, msg)

	log := &models.NotificationLog{
		Type:       logType,
		Recipients: datatypes.NewJSONSlice(recipients),
		Subject:    subject,
		Success:    sendErr == nil,
	}
	if sendErr != nil {
		log.Error = sendErr.Error()
	}
	if metadata != nil {
		m := datatypes.JSONMap{}
		for k, v := range metadata {
			m[k] = v
		}
		log.Metadata = m
	}
	if err := s.notificationRepo.CreateLog(log); err != nil {
		logger.WithError(err).Error("failed to write notification log")
	}

	if sendErr != nil {
		logger.WithError(sendErr).Error("email send failed", "subject", subject, "recipients", len(recipients))
		return false
	}
	return true
}

// NotifyNewLead alerts the lead's recruiter (falling back to admins)
// that a lead arrived. Returns whether the email went out; the in-app
// notification is written regardless.
func (s *notificationService) NotifyNewLead(lead *models.Lead) bool {
	settings, err := s.settingsRepo.GetNotificationSettings()
	if err != nil {
		logger.WithError(err).Error("failed to load notification settings")
		return false
	}

	if !settings.Enabled || !settings.NewLeadEnabled {
		logger.Info("new lead notifications disabled")
		return false
	}

	var recipients []string
	var recipientEmails []string
	ownerName := "Unassigned"

	if lead.RecruiterID != nil && settings.NewLeadNotifyOwner {
		owner, err := s.userRepo.FindByID(*lead.RecruiterID)
		if err == nil {
			recipients = append(recipients, owner.ID)
			recipientEmails = append(recipientEmails, owner.Email)
			ownerName = owner.FirstName + " " + owner.LastName
		}
	}

	if len(recipients) == 0 || len(settings.NewLeadFallbackEmails) > 0 {
		admins, err := s.userRepo.FindByRoles(models.UserRoleAdmin)
		if err != nil {
			logger.WithError(err).Error("failed to load admin users for lead notification")
		}
		for _, admin := range admins {
			if !containsString(recipients, admin.ID) {
				recipients = append(recipients, admin.ID)
			}
			if !containsString(recipientEmails, admin.Email) {
				recipientEmails = append(recipientEmails, admin.Email)
			}
		}
		for _, fallback := range settings.NewLeadFallbackEmails {
			if !containsString(recipientEmails, fallback) {
				recipientEmails = append(recipientEmails, fallback)
			}
		}
	}

	if len(recipients) == 0 {
		logger.Warn("no recipients for new lead notification", "lead_id", lead.ID)
		return false
	}

	specialty := lead.Specialty
	if specialty == "" {
		specialty = "Not specified"
	}

	_, err = s.CreateNotification(CreateNotificationParams{
		Type:       repositories.NotificationTypeNewLead,
		Title:      fmt.Sprintf("New Lead: %s %s", lead.FirstName, lead.LastName),
		Message:    fmt.Sprintf("A new lead has been submitted from %s. Specialty: %s", lead.Source, specialty),
		UserIDs:    recipients,
		EntityType: models.EntityLead,
		EntityID:   lead.ID,
		Priority:   models.PriorityNormal,
		Metadata: map[string]interface{}{
			"source":    lead.Source,
			"specialty": lead.Specialty,
			"email":     lead.Email,
		},
	})
	if err != nil {
		logger.WithError(err).Error("failed to create new lead notification", "lead_id", lead.ID)
	}

	if len(recipientEmails) == 0 {
		return true
	}

	subjectSpecialty := lead.Specialty
	if subjectSpecialty == "" {
		subjectSpecialty = "Healthcare"
	}

	data := email.TemplateData{
		"FirstName": lead.FirstName,
		"LastName":  lead.LastName,
		"Email":     valueOr(lead.Email, "N/A"),
		"Phone":     valueOr(lead.Phone, "N/A"),
		"Specialty": valueOr(lead.Specialty, "Not specified"),
		"Province":  valueOr(lead.ProvincePreference, "Not specified"),
		"Source":    valueOr(lead.Source, "Direct"),
		"OwnerName": ownerName,
		"LeadURL":   s.baseURL + "/leads",
		"Year":      time.Now().Year(),
	}

	return s.SendAlert(
		recipientEmails,
		fmt.Sprintf("New Lead: %s %s – %s", lead.FirstName, lead.LastName, subjectSpecialty),
		email.TemplateNewLead,
		data,
		repositories.NotificationTypeNewLead,
		map[string]interface{}{"notification_type": "new_lead", "lead_id": lead.ID},
	)
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
