package models

import "gorm.io/datatypes"

// NotificationLog records one outbound email attempt.
type NotificationLog struct {
	BaseModel
	Type       string                      `gorm:"not null;index" json:"type"`
	Recipients datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"recipients"`
	Subject    string                      `json:"subject"`
	Success    bool                        `gorm:"default:false" json:"success"`
	Error      string                      `json:"error,omitempty"`
	Metadata   datatypes.JSONMap           `gorm:"type:jsonb" json:"metadata,omitempty"`
}
