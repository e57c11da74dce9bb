package models

import "gorm.io/datatypes"

type Candidate struct {
	BaseModel
	FirstName             string                      `gorm:"not null" json:"first_name"`
	LastName              string                      `gorm:"not null" json:"last_name"`
	PreferredName         string                      `json:"preferred_name,omitempty"`
	Email                 string                      `gorm:"index;not null" json:"email"`
	Phone                 string                      `json:"phone,omitempty"`
	Address               string                      `json:"address,omitempty"`
	City                  string                      `json:"city,omitempty"`
	Province              string                      `json:"province,omitempty"`
	PostalCode            string                      `json:"postal_code,omitempty"`
	Country               string                      `gorm:"default:'Canada'" json:"country"`
	WorkEligibility       string                      `json:"work_eligibility,omitempty"`
	NurseType             string                      `json:"nurse_type,omitempty"`
	PrimarySpecialty      string                      `json:"primary_specialty,omitempty"`
	YearsOfExperience     *int                        `json:"years_of_experience,omitempty"`
	DesiredLocations      datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"desired_locations"`
	TravelWillingness     bool                        `gorm:"default:true" json:"travel_willingness"`
	StartDateAvailability string                      `json:"start_date_availability,omitempty"`
	Status                CandidateStatus             `gorm:"type:varchar(20);default:'Active'" json:"status"`
	Tags                  datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	Notes                 string                      `json:"notes,omitempty"`

	// Back-reference to the lead this candidate was converted from.
	SourceLeadID *string `gorm:"type:uuid" json:"sourceLeadId,omitempty"`
}
