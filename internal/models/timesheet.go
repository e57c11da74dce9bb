package models

import (
	"time"

	"gorm.io/datatypes"
)

// TimesheetEntry is one worked day inside a weekly timesheet.
type TimesheetEntry struct {
	Day          string  `json:"day"`
	RegularHours float64 `json:"regular_hours"`
	OTHours      float64 `json:"ot_hours"`
}

type Timesheet struct {
	BaseModel
	AssignmentID string                              `gorm:"type:uuid;not null;index" json:"assignment_id"`
	CandidateID  string                              `gorm:"type:uuid;not null;index" json:"candidate_id"`
	WeekStart    string                              `gorm:"not null" json:"week_start"`
	WeekEnd      string                              `gorm:"not null" json:"week_end"`
	Entries      datatypes.JSONSlice[TimesheetEntry] `gorm:"type:jsonb" json:"entries"`
	Status       TimesheetStatus                     `gorm:"type:varchar(20);default:'Draft'" json:"status"`
	Notes        string                              `json:"notes,omitempty"`

	TotalRegularHours float64 `json:"total_regular_hours"`
	TotalOTHours      float64 `json:"total_ot_hours"`
	TotalHours        float64 `json:"total_hours"`
	TotalBillable     float64 `json:"total_billable"`

	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	ApprovedBy  *string    `gorm:"type:uuid" json:"approved_by,omitempty"`
}

// RecalculateTotals recomputes hour totals from the entries, and the
// billable amount from the assignment bill rate (overtime bills at 1.5x).
func (t *Timesheet) RecalculateTotals(billRate float64) {
	var regular, ot float64
	for _, e := range t.Entries {
		regular += e.RegularHours
		ot += e.OTHours
	}
	t.TotalRegularHours = regular
	t.TotalOTHours = ot
	t.TotalHours = regular + ot
	t.TotalBillable = regular*billRate + ot*billRate*1.5
}
