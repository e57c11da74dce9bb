package dto

type CreateAssignmentRequest struct {
	CandidateID    string   `json:"candidate_id" validate:"required"`
	JobOrderID     string   `json:"job_order_id" validate:"required"`
	FacilityID     string   `json:"facility_id" validate:"required"`
	StartDate      string   `json:"start_date" validate:"required"`
	EndDate        string   `json:"end_date" validate:"required"`
	ShiftPattern   string   `json:"shift_pattern"`
	ContractType   string   `json:"contract_type"`
	PayRateRegular *float64 `json:"pay_rate_regular,omitempty"`
	PayRateOT      *float64 `json:"pay_rate_ot,omitempty"`
	PayRateHoliday *float64 `json:"pay_rate_holiday,omitempty"`
	BillRate       *float64 `json:"bill_rate,omitempty"`
	WeeklyHours    *float64 `json:"weekly_hours,omitempty"`
	Notes          string   `json:"notes"`
}

type UpdateAssignmentRequest struct {
	StartDate      *string  `json:"start_date,omitempty"`
	EndDate        *string  `json:"end_date,omitempty"`
	ShiftPattern   *string  `json:"shift_pattern,omitempty"`
	ContractType   *string  `json:"contract_type,omitempty"`
	PayRateRegular *float64 `json:"pay_rate_regular,omitempty"`
	PayRateOT      *float64 `json:"pay_rate_ot,omitempty"`
	PayRateHoliday *float64 `json:"pay_rate_holiday,omitempty"`
	BillRate       *float64 `json:"bill_rate,omitempty"`
	WeeklyHours    *float64 `json:"weekly_hours,omitempty"`
	Status         *string  `json:"status,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}
