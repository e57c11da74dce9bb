package models

import "gorm.io/datatypes"

type JobOrder struct {
	BaseModel
	FacilityID            string                      `gorm:"type:uuid;not null;index" json:"facility_id"`
	Role                  string                      `gorm:"not null" json:"role"`
	Specialty             string                      `gorm:"not null" json:"specialty"`
	Openings              int                         `gorm:"default:1" json:"openings"`
	ShiftType             string                      `gorm:"default:'Days'" json:"shift_type"`
	StartDate             *string                     `json:"start_date,omitempty"`
	EndDate               *string                     `json:"end_date,omitempty"`
	RequiredExperience    *int                        `json:"required_experience,omitempty"`
	RequiredCredentials   datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"required_credentials"`
	PayRate               *float64                    `json:"pay_rate,omitempty"`
	BillRate              *float64                    `json:"bill_rate,omitempty"`
	Status                JobOrderStatus              `gorm:"type:varchar(20);default:'Open'" json:"status"`
	ShortlistedCandidates datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"shortlisted_candidates"`
	Notes                 string                      `json:"notes,omitempty"`
}
