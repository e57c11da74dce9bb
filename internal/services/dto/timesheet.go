package dto

import "mccare_backend/internal/models"

type TimesheetEntryRequest struct {
	Day          string  `json:"day" validate:"required"`
	RegularHours float64 `json:"regular_hours"`
	OTHours      float64 `json:"ot_hours"`
}

type CreateTimesheetRequest struct {
	AssignmentID string                  `json:"assignment_id" validate:"required"`
	CandidateID  string                  `json:"candidate_id" validate:"required"`
	WeekStart    string                  `json:"week_start" validate:"required"`
	WeekEnd      string                  `json:"week_end" validate:"required"`
	Entries      []TimesheetEntryRequest `json:"entries"`
	Notes        string                  `json:"notes"`
}

type UpdateTimesheetRequest struct {
	Entries []TimesheetEntryRequest `json:"entries,omitempty"`
	Status  *string                 `json:"status,omitempty"`
	Notes   *string                 `json:"notes,omitempty"`
}

// TimesheetResponse enriches a timesheet with candidate, facility and
// rate context from its assignment.
type TimesheetResponse struct {
	models.Timesheet
	CandidateName  string  `json:"candidate_name,omitempty"`
	FacilityName   string  `json:"facility_name,omitempty"`
	BillRate       float64 `json:"bill_rate,omitempty"`
	PayRateRegular float64 `json:"pay_rate_regular,omitempty"`
	PayRateOT      float64 `json:"pay_rate_ot,omitempty"`
}
