package models

import "gorm.io/datatypes"

// Document is a compliance credential attached to a candidate.
// Dates are stored as ISO strings the way intake forms submit them;
// the expiry scanner parses the date portion only.
type Document struct {
	BaseModel
	CandidateID  string         `gorm:"type:uuid;not null;index" json:"candidate_id"`
	DocumentType string         `gorm:"not null" json:"document_type"`
	FileURL      string         `gorm:"not null" json:"file_url"`
	IssueDate    *string        `json:"issue_date,omitempty"`
	ExpiryDate   *string        `json:"expiry_date,omitempty"`
	Status       DocumentStatus `gorm:"type:varchar(20);default:'Pending'" json:"status"`
	VerifiedBy   *string        `gorm:"type:uuid" json:"verified_by,omitempty"`
	Notes        string         `json:"notes,omitempty"`

	// Ledger of expiry alerts already sent, keyed "threshold_N".
	LastNotified datatypes.JSONMap `gorm:"type:jsonb" json:"last_notified,omitempty"`
}

// DocumentType describes one entry of the credential catalogue.
type DocumentType struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// DocumentTypes is the credential catalogue served to intake forms.
var DocumentTypes = []DocumentType{
	{ID: "nursing_license", Name: "Nursing License", Required: true},
	{ID: "crc", Name: "Criminal Record Check", Required: true},
	{ID: "immunization", Name: "Immunization Records", Required: true},
	{ID: "bls_acls", Name: "BLS/ACLS Certification", Required: true},
	{ID: "references", Name: "Professional References", Required: false},
	{ID: "resume", Name: "Resume", Required: false},
}
