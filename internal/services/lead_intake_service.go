package services

import (
	"fmt"
	"strings"

	"mccare_backend/internal/logger"
	"mccare_backend/internal/models"
	"mccare_backend/internal/repositories"
	"mccare_backend/internal/services/dto"
	"mccare_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// LeadIntakeService is the shared intake path behind all four lead
// producers. Dedup-by-email happens before creation; every intake call
// writes exactly one audit entry.
type LeadIntakeService interface {
	ProcessLeadIntake(fields map[string]string, source string) (*dto.IntakeResult, error)
	GetCaptureSettings() (*models.LeadCaptureSettings, error)
	UpdateCaptureSettings(req *dto.UpdateLeadCaptureSettingsRequest) (*models.LeadCaptureSettings, error)
	GetAuditLogs(leadID string, limit int) ([]models.LeadAuditLog, error)
}

type leadIntakeService struct {
	leadRepo      repositories.LeadRepository
	candidateRepo repositories.CandidateRepository
	auditRepo     repositories.LeadAuditRepository
	activityRepo  repositories.ActivityRepository
	settingsRepo  repositories.SettingsRepository
	notifications NotificationService
}

func NewLeadIntakeService(
	leadRepo repositories.LeadRepository,
	candidateRepo repositories.CandidateRepository,
	auditRepo repositories.LeadAuditRepository,
	activityRepo repositories.ActivityRepository,
	settingsRepo repositories.SettingsRepository,
	notifications NotificationService,
) LeadIntakeService {
	return &leadIntakeService{
		leadRepo:      leadRepo,
		candidateRepo: candidateRepo,
		auditRepo:     auditRepo,
		activityRepo:  activityRepo,
		settingsRepo:  settingsRepo,
		notifications: notifications,
	}
}

func (s *leadIntakeService) GetCaptureSettings() (*models.LeadCaptureSettings, error) {
	settings, err := s.settingsRepo.GetLeadCaptureSettings()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return settings, nil
}

func (s *leadIntakeService) UpdateCaptureSettings(req *dto.UpdateLeadCaptureSettingsRequest) (*models.LeadCaptureSettings, error) {
	settings, err := s.settingsRepo.GetLeadCaptureSettings()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if req.RequiredFields != nil {
		settings.RequiredFields = datatypes.NewJSONSlice(req.RequiredFields)
	}
	if req.OptionalFields != nil {
		settings.OptionalFields = datatypes.NewJSONSlice(req.OptionalFields)
	}
	if req.DefaultPipelineStage != nil {
		stage := models.LeadStage(*req.DefaultPipelineStage)
		if !models.IsValidStage(stage) {
			return nil, apperrors.ErrInvalidPipelineStage
		}
		settings.DefaultPipelineStage = stage
	}
	if req.DefaultRecruiterID != nil {
		if *req.DefaultRecruiterID == "" {
			settings.DefaultRecruiterID = nil
		} else {
			settings.DefaultRecruiterID = req.DefaultRecruiterID
		}
	}
	if req.AutoTagRules != nil {
		settings.AutoTagRules = datatypes.NewJSONSlice(req.AutoTagRules)
	}
	if req.AutoConvertToCandidate != nil {
		settings.AutoConvertToCandidate = *req.AutoConvertToCandidate
	}
	if req.NotifyOnNewLead != nil {
		settings.NotifyOnNewLead = *req.NotifyOnNewLead
	}
	if req.AllowedSources != nil {
		settings.AllowedSources = datatypes.NewJSONSlice(req.AllowedSources)
	}

	if err := s.settingsRepo.UpdateLeadCaptureSettings(settings); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return settings, nil
}

func (s *leadIntakeService) GetAuditLogs(leadID string, limit int) ([]models.LeadAuditLog, error) {
	var (
		entries []models.LeadAuditLog
		err     error
	)
	if leadID != "" {
		entries, err = s.auditRepo.FindByLead(leadID)
	} else {
		entries, err = s.auditRepo.FindRecent(limit)
	}
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return entries, nil
}

// ProcessLeadIntake runs the shared intake path on an already
// normalized field bag. A missing email rejects before any
// persistence; everything else degrades to empty rather than failing,
// a staffing lead is never dropped for a cosmetic field.
func (s *leadIntakeService) ProcessLeadIntake(fields map[string]string, source string) (*dto.IntakeResult, error) {
	settings, err := s.settingsRepo.GetLeadCaptureSettings()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if source == "" {
		source = "Direct"
	}
	if len(settings.AllowedSources) > 0 && !containsString(settings.AllowedSources, source) {
		return nil, apperrors.ErrSourceNotAllowed
	}

	if fields[FieldEmail] == "" {
		return nil, apperrors.ValidationError(map[string]string{FieldEmail: "This field is required"})
	}

	existing, err := s.leadRepo.FindByEmail(fields[FieldEmail])
	if err == nil {
		return s.mergeIntoExisting(existing, fields, source)
	}
	if !apperrors.Is(err, repositories.ErrLeadNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	return s.createLead(fields, source, settings)
}

// mergeIntoExisting handles a repeat submission for a known email:
// only non-empty incoming fields overwrite, previously known data is
// never nulled out, and the audit source carries an "(Update)" marker.
func (s *leadIntakeService) mergeIntoExisting(lead *models.Lead, fields map[string]string, source string) (*dto.IntakeResult, error) {
	merge := func(dst *string, key string) {
		if v := fields[key]; v != "" {
			*dst = v
		}
	}
	merge(&lead.FirstName, FieldFirstName)
	merge(&lead.LastName, FieldLastName)
	merge(&lead.Phone, FieldPhone)
	merge(&lead.Specialty, FieldSpecialty)
	merge(&lead.ProvincePreference, FieldProvincePreference)
	merge(&lead.Notes, FieldNotes)
	merge(&lead.UTMSource, FieldUTMSource)
	merge(&lead.UTMMedium, FieldUTMMedium)
	merge(&lead.UTMCampaign, FieldUTMCampaign)
	merge(&lead.UTMTerm, FieldUTMTerm)
	merge(&lead.UTMContent, FieldUTMContent)
	merge(&lead.FormID, FieldFormID)
	merge(&lead.LandingPageURL, FieldLandingPageURL)
	merge(&lead.ReferrerURL, FieldReferrerURL)

	updateSource := source + " (Update)"
	lead.Tags = appendUnique(lead.Tags, sourceSlug(source))

	if err := s.leadRepo.Update(lead); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.writeAuditEntry(lead, updateSource, fields, nil, nil, false)

	logger.Info("lead updated from repeat submission", "lead_id", lead.ID, "source", updateSource)
	return &dto.IntakeResult{Status: "updated", LeadID: lead.ID, Lead: lead}, nil
}

func (s *leadIntakeService) createLead(fields map[string]string, source string, settings *models.LeadCaptureSettings) (*dto.IntakeResult, error) {
	lead := &models.Lead{
		FirstName:          fields[FieldFirstName],
		LastName:           fields[FieldLastName],
		Email:              fields[FieldEmail],
		Phone:              fields[FieldPhone],
		Source:             source,
		Specialty:          fields[FieldSpecialty],
		ProvincePreference: fields[FieldProvincePreference],
		Notes:              fields[FieldNotes],
		UTMSource:          fields[FieldUTMSource],
		UTMMedium:          fields[FieldUTMMedium],
		UTMCampaign:        fields[FieldUTMCampaign],
		UTMTerm:            fields[FieldUTMTerm],
		UTMContent:         fields[FieldUTMContent],
		FormID:             fields[FieldFormID],
		LandingPageURL:     fields[FieldLandingPageURL],
		ReferrerURL:        fields[FieldReferrerURL],
	}

	// Tag assembly: source slug first, then auto-tag rules in order.
	tags := []string{sourceSlug(source)}
	var autoTags []string
	for _, rule := range settings.AutoTagRules {
		if rule.Field == "" || rule.Tag == "" {
			continue
		}
		if strings.EqualFold(leadFieldValue(lead, rule.Field), rule.Value) {
			if !containsString(tags, rule.Tag) {
				tags = append(tags, rule.Tag)
				autoTags = append(autoTags, rule.Tag)
			}
		}
	}
	lead.Tags = datatypes.NewJSONSlice(tags)

	var autoPopulated []string
	lead.Stage = settings.DefaultPipelineStage
	if lead.Stage == "" {
		lead.Stage = models.LeadStageNew
	}
	autoPopulated = append(autoPopulated, "stage")

	if settings.DefaultRecruiterID != nil && *settings.DefaultRecruiterID != "" {
		recruiterID := *settings.DefaultRecruiterID
		lead.RecruiterID = &recruiterID
		autoPopulated = append(autoPopulated, "recruiter_id")
	}

	if err := s.leadRepo.Create(lead); err != nil {
		if apperrors.Is(err, repositories.ErrLeadEmailExists) {
			// Lost the race to a concurrent submission; merge instead.
			existing, findErr := s.leadRepo.FindByEmail(lead.Email)
			if findErr == nil {
				return s.mergeIntoExisting(existing, fields, source)
			}
		}
		return nil, apperrors.DatabaseError(err)
	}

	s.logActivity(lead.ID, "created", fmt.Sprintf("Lead created from %s: %s %s", source, lead.FirstName, lead.LastName))

	autoConverted := false
	if settings.AutoConvertToCandidate && s.requiredFieldsPresent(lead, settings.RequiredFields) {
		if err := s.autoConvert(lead); err != nil {
			logger.WithError(err).Error("auto-conversion failed", "lead_id", lead.ID)
		} else {
			autoConverted = true
		}
	}

	s.writeAuditEntry(lead, source, fields, autoPopulated, autoTags, autoConverted)

	if settings.NotifyOnNewLead {
		s.notifications.NotifyNewLead(lead)
	}

	logger.Info("lead created", "lead_id", lead.ID, "source", source, "auto_converted", autoConverted)
	return &dto.IntakeResult{Status: "created", LeadID: lead.ID, Lead: lead}, nil
}

func (s *leadIntakeService) requiredFieldsPresent(lead *models.Lead, required []string) bool {
	for _, field := range required {
		if leadFieldValue(lead, field) == "" {
			return false
		}
	}
	return true
}

// autoConvert synthesizes a candidate from the lead and marks the lead
// converted.
func (s *leadIntakeService) autoConvert(lead *models.Lead) error {
	candidate := candidateFromLead(lead)
	if err := s.candidateRepo.Create(candidate); err != nil {
		return err
	}

	lead.CandidateID = &candidate.ID
	lead.Stage = models.LeadStageConverted
	if err := s.leadRepo.Update(lead); err != nil {
		return err
	}

	s.logActivity(lead.ID, "auto_converted", fmt.Sprintf("Lead auto-converted to candidate: %s", candidate.ID))
	return nil
}

// writeAuditEntry records the intake event. The payload summary is
// redacted to contact and campaign fields only, never the raw payload.
func (s *leadIntakeService) writeAuditEntry(lead *models.Lead, source string, fields map[string]string, autoPopulated, autoTags []string, autoConverted bool) {
	summary := datatypes.JSONMap{}
	for _, key := range []string{
		FieldFirstName, FieldLastName, FieldEmail, FieldPhone,
		FieldSpecialty, FieldProvincePreference,
		FieldUTMSource, FieldUTMMedium, FieldUTMCampaign, FieldUTMTerm, FieldUTMContent,
		FieldFormID,
	} {
		if v := fields[key]; v != "" {
			summary[key] = v
		}
	}

	entry := &models.LeadAuditLog{
		LeadID:              lead.ID,
		Source:              source,
		PayloadSummary:      summary,
		AutoPopulatedFields: datatypes.NewJSONSlice(emptyIfNil(autoPopulated)),
		AutoTagsApplied:     datatypes.NewJSONSlice(emptyIfNil(autoTags)),
		RecruiterAssigned:   lead.RecruiterID,
		AutoConverted:       autoConverted,
	}

	if err := s.auditRepo.Create(entry); err != nil {
		logger.WithError(err).Error("failed to write lead audit entry", "lead_id", lead.ID)
	}
}

func (s *leadIntakeService) logActivity(leadID, activityType, description string) {
	activity := &models.Activity{
		EntityType:   models.EntityLead,
		EntityID:     leadID,
		ActivityType: activityType,
		Description:  description,
	}
	if err := s.activityRepo.Create(activity); err != nil {
		logger.WithError(err).Error("failed to log lead activity", "lead_id", leadID)
	}
}

// candidateFromLead maps lead fields onto a new candidate record.
func candidateFromLead(lead *models.Lead) *models.Candidate {
	leadID := lead.ID
	return &models.Candidate{
		FirstName:         lead.FirstName,
		LastName:          lead.LastName,
		Email:             lead.Email,
		Phone:             lead.Phone,
		PrimarySpecialty:  lead.Specialty,
		Province:          lead.ProvincePreference,
		Country:           "Canada",
		Status:            models.CandidateStatusActive,
		TravelWillingness: true,
		Tags:              datatypes.NewJSONSlice(append([]string{}, lead.Tags...)),
		Notes:             lead.Notes,
		DesiredLocations:  datatypes.NewJSONSlice([]string{}),
		SourceLeadID:      &leadID,
	}
}

// leadFieldValue resolves a canonical field name against a lead.
func leadFieldValue(lead *models.Lead, field string) string {
	switch field {
	case FieldFirstName:
		return lead.FirstName
	case FieldLastName:
		return lead.LastName
	case FieldEmail:
		return lead.Email
	case FieldPhone:
		return lead.Phone
	case FieldSpecialty:
		return lead.Specialty
	case FieldProvincePreference:
		return lead.ProvincePreference
	case FieldNotes:
		return lead.Notes
	case "source":
		return lead.Source
	case FieldUTMSource:
		return lead.UTMSource
	case FieldUTMMedium:
		return lead.UTMMedium
	case FieldUTMCampaign:
		return lead.UTMCampaign
	default:
		return ""
	}
}

// sourceSlug lower-kebabs a source tag: "ATS Form" -> "ats-form".
func sourceSlug(source string) string {
	slug := strings.ToLower(strings.TrimSpace(source))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}

func appendUnique(tags datatypes.JSONSlice[string], tag string) datatypes.JSONSlice[string] {
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(tags, tag)
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
