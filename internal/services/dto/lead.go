package dto

import "mccare_backend/internal/models"

type CreateLeadRequest struct {
	FirstName          string   `json:"first_name" validate:"required"`
	LastName           string   `json:"last_name" validate:"required"`
	Email              string   `json:"email" validate:"required,email"`
	Phone              string   `json:"phone"`
	Source             string   `json:"source"`
	Specialty          string   `json:"specialty"`
	ProvincePreference string   `json:"province_preference"`
	Tags               []string `json:"tags"`
	Notes              string   `json:"notes"`
}

type UpdateLeadRequest struct {
	FirstName          *string  `json:"first_name,omitempty"`
	LastName           *string  `json:"last_name,omitempty"`
	Email              *string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone              *string  `json:"phone,omitempty"`
	Source             *string  `json:"source,omitempty"`
	Specialty          *string  `json:"specialty,omitempty"`
	ProvincePreference *string  `json:"province_preference,omitempty"`
	Tags               []string `json:"tags,omitempty"`
	Notes              *string  `json:"notes,omitempty"`
	Stage              *string  `json:"stage,omitempty"`
	RecruiterID        *string  `json:"recruiter_id,omitempty"`
}

// PublicLeadSubmission is the unauthenticated intake payload used by
// the website form and landing pages.
type PublicLeadSubmission struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	// Name is accepted from forms that collect a single full-name
	// field; it is split into first/last during normalization.
	Name string `json:"name"`

	Email              string `json:"email" validate:"required,email"`
	Phone              string `json:"phone"`
	Specialty          string `json:"specialty"`
	ProvincePreference string `json:"province_preference"`
	Notes              string `json:"notes"`

	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
	UTMTerm     string `json:"utm_term"`
	UTMContent  string `json:"utm_content"`

	FormID         string `json:"form_id"`
	LandingPageURL string `json:"landing_page_url"`
	ReferrerURL    string `json:"referrer_url"`
}

// HubSpotWebhookPayload is the third-party webhook shape; field names
// follow HubSpot's contact property conventions.
type HubSpotWebhookPayload struct {
	Properties   map[string]interface{} `json:"properties"`
	FormID       string                 `json:"form_id"`
	PortalID     string                 `json:"portal_id"`
	CampaignName string                 `json:"campaign_name"`
	UTMSource    string                 `json:"utm_source"`
	UTMMedium    string                 `json:"utm_medium"`
	UTMCampaign  string                 `json:"utm_campaign"`
}

// IntakeResult reports whether intake created a new lead or merged
// into an existing one.
type IntakeResult struct {
	Status string       `json:"status"` // "created" or "updated"
	LeadID string       `json:"lead_id"`
	Lead   *models.Lead `json:"lead,omitempty"`
}

type ConvertLeadRequest struct {
	LinkToExisting      bool    `json:"link_to_existing"`
	ExistingCandidateID *string `json:"existing_candidate_id,omitempty"`
	PostConversionStage string  `json:"post_conversion_stage"`
}

// ConversionResult carries one of three outcomes: a fresh conversion,
// a link to an existing candidate, or a duplicate that needs a human
// decision.
type ConversionResult struct {
	Status            string            `json:"status"` // "converted", "linked", "duplicate_found"
	CandidateID       string            `json:"candidate_id,omitempty"`
	Candidate         *models.Candidate `json:"candidate,omitempty"`
	ExistingCandidate *models.Candidate `json:"existing_candidate,omitempty"`
}

type DuplicateCheckResult struct {
	DuplicateFound    bool              `json:"duplicate_found"`
	ExistingCandidate *models.Candidate `json:"existing_candidate,omitempty"`
}

type RejectLeadRequest struct {
	Reason string `json:"reason"`
}

type AssignRecruiterRequest struct {
	RecruiterID string `json:"recruiter_id" validate:"required"`
}
