package dto

import "mccare_backend/internal/models"

type UpdateLeadCaptureSettingsRequest struct {
	RequiredFields         []string             `json:"required_fields,omitempty"`
	OptionalFields         []string             `json:"optional_fields,omitempty"`
	DefaultPipelineStage   *string              `json:"default_pipeline_stage,omitempty"`
	DefaultRecruiterID     *string              `json:"default_recruiter_id,omitempty"`
	AutoTagRules           []models.AutoTagRule `json:"auto_tag_rules,omitempty"`
	AutoConvertToCandidate *bool                `json:"auto_convert_to_candidate,omitempty"`
	NotifyOnNewLead        *bool                `json:"notify_on_new_lead,omitempty"`
	AllowedSources         []string             `json:"allowed_sources,omitempty"`
}

type UpdateNotificationSettingsRequest struct {
	Enabled     *bool   `json:"enabled,omitempty"`
	SenderName  *string `json:"sender_name,omitempty"`
	SenderEmail *string `json:"sender_email,omitempty" validate:"omitempty,email"`

	NewLeadEnabled        *bool    `json:"new_lead_enabled,omitempty"`
	NewLeadNotifyOwner    *bool    `json:"new_lead_notify_owner,omitempty"`
	NewLeadFallbackEmails []string `json:"new_lead_fallback_emails,omitempty"`

	ExpiringCredentialEnabled *bool    `json:"expiring_credential_enabled,omitempty"`
	ExpiringThresholds        []int    `json:"expiring_thresholds,omitempty"`
	ExpiredAlertEnabled       *bool    `json:"expired_alert_enabled,omitempty"`
	ExpiringNotifyCompliance  *bool    `json:"expiring_notify_compliance,omitempty"`
	ExpiringNotifyRecruiter   *bool    `json:"expiring_notify_recruiter,omitempty"`
	ExpiringNotifyCandidate   *bool    `json:"expiring_notify_candidate,omitempty"`
	ComplianceEmails          []string `json:"compliance_emails,omitempty"`

	QuietHoursEnabled *bool   `json:"quiet_hours_enabled,omitempty"`
	QuietHoursStart   *string `json:"quiet_hours_start,omitempty"`
	QuietHoursEnd     *string `json:"quiet_hours_end,omitempty"`
}
