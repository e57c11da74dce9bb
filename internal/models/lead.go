package models

import "gorm.io/datatypes"

// Lead is an inbound prospect moving through the recruiting pipeline.
// Email is the natural dedup key; once CandidateID is set the lead is
// converted and cannot be converted again.
type Lead struct {
	BaseModel
	FirstName          string                      `gorm:"not null" json:"first_name"`
	LastName           string                      `gorm:"not null" json:"last_name"`
	Email              string                      `gorm:"uniqueIndex;not null" json:"email"`
	Phone              string                      `json:"phone,omitempty"`
	Source             string                      `gorm:"default:'Direct'" json:"source"`
	Specialty          string                      `json:"specialty,omitempty"`
	ProvincePreference string                      `json:"province_preference,omitempty"`
	Stage              LeadStage                   `gorm:"type:varchar(30);not null;default:'New Lead'" json:"stage"`
	RecruiterID        *string                     `gorm:"type:uuid" json:"recruiter_id,omitempty"`
	Tags               datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	Notes              string                      `json:"notes,omitempty"`

	// Campaign attribution
	UTMSource      string `json:"utm_source,omitempty"`
	UTMMedium      string `json:"utm_medium,omitempty"`
	UTMCampaign    string `json:"utm_campaign,omitempty"`
	UTMTerm        string `json:"utm_term,omitempty"`
	UTMContent     string `json:"utm_content,omitempty"`
	FormID         string `json:"form_id,omitempty"`
	LandingPageURL string `json:"landing_page_url,omitempty"`
	ReferrerURL    string `json:"referrer_url,omitempty"`

	CandidateID     *string `gorm:"type:uuid" json:"candidateId,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}
