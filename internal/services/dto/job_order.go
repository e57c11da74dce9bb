package dto

import "mccare_backend/internal/models"

type CreateJobOrderRequest struct {
	FacilityID          string   `json:"facility_id" validate:"required"`
	Role                string   `json:"role" validate:"required"`
	Specialty           string   `json:"specialty" validate:"required"`
	Openings            int      `json:"openings"`
	ShiftType           string   `json:"shift_type"`
	StartDate           string   `json:"start_date"`
	EndDate             string   `json:"end_date"`
	RequiredExperience  *int     `json:"required_experience,omitempty"`
	RequiredCredentials []string `json:"required_credentials"`
	PayRate             *float64 `json:"pay_rate,omitempty"`
	BillRate            *float64 `json:"bill_rate,omitempty"`
	Notes               string   `json:"notes"`
}

type UpdateJobOrderRequest struct {
	FacilityID          *string  `json:"facility_id,omitempty"`
	Role                *string  `json:"role,omitempty"`
	Specialty           *string  `json:"specialty,omitempty"`
	Openings            *int     `json:"openings,omitempty"`
	ShiftType           *string  `json:"shift_type,omitempty"`
	StartDate           *string  `json:"start_date,omitempty"`
	EndDate             *string  `json:"end_date,omitempty"`
	RequiredExperience  *int     `json:"required_experience,omitempty"`
	RequiredCredentials []string `json:"required_credentials,omitempty"`
	PayRate             *float64 `json:"pay_rate,omitempty"`
	BillRate            *float64 `json:"bill_rate,omitempty"`
	Status              *string  `json:"status,omitempty"`
	Notes               *string  `json:"notes,omitempty"`
}

// JobOrderResponse enriches a job order with its facility name.
type JobOrderResponse struct {
	models.JobOrder
	FacilityName string `json:"facility_name"`
}
