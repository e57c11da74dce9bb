package models

import "gorm.io/datatypes"

// LeadAuditLog records one intake event: where the lead came from,
// which fields were defaulted rather than supplied, which tags the
// auto-tag rules applied, and whether the auto-convert rule fired.
type LeadAuditLog struct {
	BaseModel
	LeadID              string                      `gorm:"type:uuid;not null;index" json:"lead_id"`
	Source              string                      `gorm:"not null" json:"source"`
	PayloadSummary      datatypes.JSONMap           `gorm:"type:jsonb" json:"payload_summary"`
	AutoPopulatedFields datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"auto_populated_fields"`
	AutoTagsApplied     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"auto_tags_applied"`
	RecruiterAssigned   *string                     `gorm:"type:uuid" json:"recruiter_assigned,omitempty"`
	AutoConverted       bool                        `gorm:"default:false" json:"auto_converted"`
}
