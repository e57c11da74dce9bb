package models

import "gorm.io/datatypes"

// AutoTagRule appends the tag when the named lead field equals the value.
type AutoTagRule struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Tag   string `json:"tag"`
}

// LeadCaptureSettings is a singleton row governing lead intake.
type LeadCaptureSettings struct {
	BaseModel
	RequiredFields         datatypes.JSONSlice[string]      `gorm:"type:jsonb" json:"required_fields"`
	OptionalFields         datatypes.JSONSlice[string]      `gorm:"type:jsonb" json:"optional_fields"`
	DefaultPipelineStage   LeadStage                        `gorm:"type:varchar(30);default:'New Lead'" json:"default_pipeline_stage"`
	DefaultRecruiterID     *string                          `gorm:"type:uuid" json:"default_recruiter_id,omitempty"`
	AutoTagRules           datatypes.JSONSlice[AutoTagRule] `gorm:"type:jsonb" json:"auto_tag_rules"`
	AutoConvertToCandidate bool                             `gorm:"default:false" json:"auto_convert_to_candidate"`
	NotifyOnNewLead        bool                             `gorm:"default:true" json:"notify_on_new_lead"`
	AllowedSources         datatypes.JSONSlice[string]      `gorm:"type:jsonb" json:"allowed_sources"`
}

// DefaultLeadCaptureSettings returns the singleton's initial values.
func DefaultLeadCaptureSettings() *LeadCaptureSettings {
	return &LeadCaptureSettings{
		RequiredFields:         datatypes.NewJSONSlice([]string{"first_name", "last_name", "email"}),
		OptionalFields:         datatypes.NewJSONSlice([]string{"phone", "specialty", "province_preference", "notes"}),
		DefaultPipelineStage:   LeadStageNew,
		AutoTagRules:           datatypes.NewJSONSlice([]AutoTagRule{}),
		AutoConvertToCandidate: false,
		NotifyOnNewLead:        true,
		AllowedSources:         datatypes.NewJSONSlice([]string{"ATS Form", "API", "HubSpot", "Website", "Landing Page"}),
	}
}

// NotificationSettings is a singleton row governing outbound alerts.
type NotificationSettings struct {
	BaseModel
	Enabled     bool   `gorm:"default:true" json:"enabled"`
	SenderName  string `gorm:"default:'McCare Global ATS'" json:"sender_name"`
	SenderEmail string `gorm:"default:'noreply@mccareglobal.com'" json:"sender_email"`

	NewLeadEnabled        bool                        `gorm:"default:true" json:"new_lead_enabled"`
	NewLeadNotifyOwner    bool                        `gorm:"default:true" json:"new_lead_notify_owner"`
	NewLeadFallbackEmails datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"new_lead_fallback_emails"`

	ExpiringCredentialEnabled bool                     `gorm:"default:true" json:"expiring_credential_enabled"`
	ExpiringThresholds        datatypes.JSONSlice[int] `gorm:"type:jsonb" json:"expiring_thresholds"`
	ExpiredAlertEnabled       bool                     `gorm:"default:true" json:"expired_alert_enabled"`
	ExpiringNotifyCompliance  bool                     `gorm:"default:true" json:"expiring_notify_compliance"`
	// Accepted for forward compatibility; per-recruiter routing of
	// credential alerts is not implemented.
	ExpiringNotifyRecruiter bool                        `gorm:"default:true" json:"expiring_notify_recruiter"`
	ExpiringNotifyCandidate bool                        `gorm:"default:false" json:"expiring_notify_candidate"`
	ComplianceEmails        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"compliance_emails"`

	QuietHoursEnabled bool   `gorm:"default:false" json:"quiet_hours_enabled"`
	QuietHoursStart   string `gorm:"default:'22:00'" json:"quiet_hours_start"`
	QuietHoursEnd     string `gorm:"default:'07:00'" json:"quiet_hours_end"`
}

// DefaultNotificationSettings returns the singleton's initial values.
func DefaultNotificationSettings() *NotificationSettings {
	return &NotificationSettings{
		Enabled:                   true,
		SenderName:                "McCare Global ATS",
		SenderEmail:               "noreply@mccareglobal.com",
		NewLeadEnabled:            true,
		NewLeadNotifyOwner:        true,
		NewLeadFallbackEmails:     datatypes.NewJSONSlice([]string{}),
		ExpiringCredentialEnabled: true,
		ExpiringThresholds:        datatypes.NewJSONSlice([]int{60, 30, 14, 7}),
		ExpiredAlertEnabled:       true,
		ExpiringNotifyCompliance:  true,
		ExpiringNotifyRecruiter:   true,
		ExpiringNotifyCandidate:   false,
		ComplianceEmails:          datatypes.NewJSONSlice([]string{}),
		QuietHoursEnabled:         false,
		QuietHoursStart:           "22:00",
		QuietHoursEnd:             "07:00",
	}
}
