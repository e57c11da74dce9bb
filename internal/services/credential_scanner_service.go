package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"mccare_backend/internal/email"
	"mccare_backend/internal/logger"
	"mccare_backend/internal/models"
	"mccare_backend/internal/repositories"
	"mccare_backend/internal/services/dto"
)

// thresholdExpired marks the past-expiry state in alert bookkeeping.
// Expired alerts re-fire every run on purpose; they never enter the
// last_notified ledger.
const thresholdExpired = "expired"

// CredentialScannerService runs the daily credential expiry scan.
type CredentialScannerService interface {
	CheckExpiringCredentials() (*dto.ScanSummary, error)
}

type CredentialScannerServiceImpl struct {
	documentRepo  repositories.DocumentRepository
	candidateRepo repositories.CandidateRepository
	userRepo      repositories.UserRepository
	settingsRepo  repositories.SettingsRepository
	notifications NotificationService
	baseURL       string

	// Now is replaceable in tests; threshold math and the ledger
	// both depend on it.
	Now func() time.Time
}

func NewCredentialScannerService(
	documentRepo repositories.DocumentRepository,
	candidateRepo repositories.CandidateRepository,
	userRepo repositories.UserRepository,
	settingsRepo repositories.SettingsRepository,
	notifications NotificationService,
	baseURL string,
) *CredentialScannerServiceImpl {
	return &CredentialScannerServiceImpl{
		documentRepo:  documentRepo,
		candidateRepo: candidateRepo,
		userRepo:      userRepo,
		settingsRepo:  settingsRepo,
		notifications: notifications,
		baseURL:       baseURL,
		Now:           time.Now,
	}
}

// CheckExpiringCredentials walks every document with an expiry date.
// Expired documents always alert; future expiries alert once per
// threshold, nearest threshold only, tracked in the document's
// last_notified ledger. One bad document never aborts the scan.
func (s *CredentialScannerServiceImpl) CheckExpiringCredentials() (*dto.ScanSummary, error) {
	settings, err := s.settingsRepo.GetNotificationSettings()
	if err != nil {
		return nil, err
	}

	if !settings.Enabled || !settings.ExpiringCredentialEnabled {
		logger.Info("expiring credential notifications disabled")
		return &dto.ScanSummary{Status: "disabled", ByThreshold: map[string]int{}}, nil
	}

	thresholds := []int(settings.ExpiringThresholds)
	if len(thresholds) == 0 {
		thresholds = []int{60, 30, 14, 7}
	}
	sort.Ints(thresholds)

	now := s.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	summary := &dto.ScanSummary{
		Status:      "completed",
		CheckedAt:   now.Format(time.RFC3339),
		ByThreshold: map[string]int{},
	}

	documents, err := s.documentRepo.FindWithExpiry()
	if err != nil {
		return nil, err
	}
	summary.DocumentsChecked = len(documents)

	for i := range documents {
		doc := &documents[i]
		if err := s.processDocument(doc, thresholds, today, settings, summary); err != nil {
			logger.WithError(err).Error("error processing document", "document_id", doc.ID)
		}
	}

	logger.Info("credential check complete",
		"documents_checked", summary.DocumentsChecked,
		"notifications_sent", summary.NotificationsSent,
		"emails_sent", summary.EmailsSent,
	)
	return summary, nil
}

func (s *CredentialScannerServiceImpl) processDocument(
	doc *models.Document,
	thresholds []int,
	today time.Time,
	settings *models.NotificationSettings,
	summary *dto.ScanSummary,
) error {
	if doc.ExpiryDate == nil || *doc.ExpiryDate == "" {
		return nil
	}

	expiryDate, err := parseExpiryDate(*doc.ExpiryDate)
	if err != nil {
		return fmt.Errorf("unparseable expiry date %q: %w", *doc.ExpiryDate, err)
	}

	daysUntilExpiry := int(expiryDate.Sub(today).Hours() / 24)

	if daysUntilExpiry < 0 {
		if settings.ExpiredAlertEnabled {
			sent, emailed := s.sendCredentialAlert(doc, daysUntilExpiry, thresholdExpired, settings)
			if sent {
				summary.NotificationsSent++
			}
			if emailed {
				summary.EmailsSent++
			}
		}
		return nil
	}

	// Smallest-first scan; only the nearest satisfied threshold counts.
	for _, threshold := range thresholds {
		if daysUntilExpiry > threshold {
			continue
		}

		thresholdKey := fmt.Sprintf("threshold_%d", threshold)
		if doc.LastNotified != nil {
			if _, already := doc.LastNotified[thresholdKey]; already {
				break
			}
		}

		sent, emailed := s.sendCredentialAlert(doc, daysUntilExpiry, fmt.Sprintf("%d", threshold), settings)
		if sent {
			if err := s.documentRepo.SetLastNotified(doc.ID, thresholdKey, s.Now()); err != nil {
				return fmt.Errorf("recording alert ledger entry: %w", err)
			}
			summary.NotificationsSent++
			summary.ByThreshold[fmt.Sprintf("%d", threshold)]++
		}
		if emailed {
			summary.EmailsSent++
		}
		break
	}

	return nil
}

// parseExpiryDate accepts a bare date or a full timestamp; timestamps
// are truncated to date granularity.
func parseExpiryDate(value string) (time.Time, error) {
	if strings.Contains(value, "T") {
		ts, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, err
		}
		ts = ts.UTC()
		return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", value)
}

// alertStyle holds severity-driven presentation for one alert.
type alertStyle struct {
	Title       string
	DaysText    string
	HeaderColor string
	AlertBg     string
	AlertBorder string
	DaysColor   string
	Priority    models.NotificationPriority
}

func classifyAlert(daysUntilExpiry int, expired bool) alertStyle {
	switch {
	case expired:
		return alertStyle{
			Title:       "EXPIRED Credential Alert",
			DaysText:    fmt.Sprintf("EXPIRED %d days ago", -daysUntilExpiry),
			HeaderColor: "#991b1b",
			AlertBg:     "#fef2f2",
			AlertBorder: "#dc2626",
			DaysColor:   "#dc2626",
			Priority:    models.PriorityUrgent,
		}
	case daysUntilExpiry <= 7:
		return alertStyle{
			Title:       "URGENT: Credential Expiring Soon",
			DaysText:    fmt.Sprintf("%d days remaining", daysUntilExpiry),
			HeaderColor: "#dc2626",
			AlertBg:     "#fef2f2",
			AlertBorder: "#dc2626",
			DaysColor:   "#dc2626",
			Priority:    models.PriorityHigh,
		}
	case daysUntilExpiry <= 14:
		return alertStyle{
			Title:       "Credential Expiring Soon",
			DaysText:    fmt.Sprintf("%d days remaining", daysUntilExpiry),
			HeaderColor: "#d97706",
			AlertBg:     "#fffbeb",
			AlertBorder: "#f59e0b",
			DaysColor:   "#d97706",
			Priority:    models.PriorityHigh,
		}
	case daysUntilExpiry <= 30:
		return alertStyle{
			Title:       "Credential Expiring",
			DaysText:    fmt.Sprintf("%d days remaining", daysUntilExpiry),
			HeaderColor: "#d97706",
			AlertBg:     "#fffbeb",
			AlertBorder: "#f59e0b",
			DaysColor:   "#d97706",
			Priority:    models.PriorityNormal,
		}
	default:
		return alertStyle{
			Title:       "Credential Expiry Notice",
			DaysText:    fmt.Sprintf("%d days remaining", daysUntilExpiry),
			HeaderColor: "#0284c7",
			AlertBg:     "#f0f9ff",
			AlertBorder: "#0ea5e9",
			DaysColor:   "#0284c7",
			Priority:    models.PriorityLow,
		}
	}
}

// sendCredentialAlert resolves recipients, writes the in-app
// notification and attempts the email. First return reports whether
// the in-app notification was created (drives the idempotency ledger),
// second whether the email went out.
func (s *CredentialScannerServiceImpl) sendCredentialAlert(
	doc *models.Document,
	daysUntilExpiry int,
	threshold string,
	settings *models.NotificationSettings,
) (bool, bool) {
	candidate, err := s.candidateRepo.FindByID(doc.CandidateID)
	if err != nil {
		logger.Warn("candidate not found for document", "document_id", doc.ID, "candidate_id", doc.CandidateID)
		return false, false
	}

	candidateName := candidate.FirstName + " " + candidate.LastName

	var recipients []string
	var recipientEmails []string

	if settings.ExpiringNotifyCompliance {
		complianceUsers, err := s.userRepo.FindByRoles(models.UserRoleAdmin, models.UserRoleCompliance)
		if err != nil {
			logger.WithError(err).Error("failed to load compliance users")
		}
		for _, user := range complianceUsers {
			recipients = append(recipients, user.ID)
			recipientEmails = append(recipientEmails, user.Email)
		}
		for _, extra := range settings.ComplianceEmails {
			if !containsString(recipientEmails, extra) {
				recipientEmails = append(recipientEmails, extra)
			}
		}
	}

	if settings.ExpiringNotifyCandidate && candidate.Email != "" {
		if !containsString(recipientEmails, candidate.Email) {
			recipientEmails = append(recipientEmails, candidate.Email)
		}
	}

	// Skipped alerts leave no ledger entry; a later run with
	// recipients configured can still fire.
	if len(recipients) == 0 {
		logger.Warn("no recipients for credential alert", "document_id", doc.ID)
		return false, false
	}

	isExpired := threshold == thresholdExpired
	style := classifyAlert(daysUntilExpiry, isExpired)

	notificationType := repositories.NotificationTypeExpiringCredential
	if isExpired {
		notificationType = repositories.NotificationTypeExpiredCredential
	}

	expiryDate := ""
	if doc.ExpiryDate != nil {
		expiryDate = *doc.ExpiryDate
	}

	_, err = s.notifications.CreateNotification(CreateNotificationParams{
		Type:       notificationType,
		Title:      fmt.Sprintf("%s - %s", doc.DocumentType, candidateName),
		Message:    fmt.Sprintf("%s: %s expires on %s. %s.", style.Title, doc.DocumentType, expiryDate, style.DaysText),
		UserIDs:    recipients,
		EntityType: models.EntityDocument,
		EntityID:   doc.ID,
		Priority:   style.Priority,
		Metadata: map[string]interface{}{
			"candidate_id":   candidate.ID,
			"candidate_name": candidateName,
			"document_type":  doc.DocumentType,
			"expiry_date":    expiryDate,
			"days_remaining": daysUntilExpiry,
		},
	})
	if err != nil {
		logger.WithError(err).Error("failed to create credential notification", "document_id", doc.ID)
		return false, false
	}

	data := email.TemplateData{
		"AlertTitle":    style.Title,
		"DocumentType":  valueOr(doc.DocumentType, "Document"),
		"CandidateName": candidateName,
		"ExpiryDate":    valueOr(expiryDate, "N/A"),
		"DaysText":      style.DaysText,
		"CurrentStatus": string(doc.Status),
		"CandidateURL":  fmt.Sprintf("%s/candidates/%s", s.baseURL, candidate.ID),
		"HeaderColor":   style.HeaderColor,
		"AlertBg":       style.AlertBg,
		"AlertBorder":   style.AlertBorder,
		"DaysColor":     style.DaysColor,
		"Year":          s.Now().Year(),
	}

	emailed := s.notifications.SendAlert(
		recipientEmails,
		fmt.Sprintf("%s: %s - %s", style.Title, doc.DocumentType, candidateName),
		email.TemplateExpiringCredential,
		data,
		repositories.NotificationTypeExpiringCredential,
		map[string]interface{}{
			"notification_type": "expiring_credential",
			"document_id":       doc.ID,
			"candidate_id":      candidate.ID,
			"threshold":         threshold,
		},
	)

	return true, emailed
}
