package models

type Assignment struct {
	BaseModel
	CandidateID    string           `gorm:"type:uuid;not null;index" json:"candidate_id"`
	JobOrderID     string           `gorm:"type:uuid;not null;index" json:"job_order_id"`
	FacilityID     string           `gorm:"type:uuid;not null;index" json:"facility_id"`
	StartDate      string           `gorm:"not null" json:"start_date"`
	EndDate        string           `gorm:"not null" json:"end_date"`
	ShiftPattern   string           `json:"shift_pattern,omitempty"`
	ContractType   string           `gorm:"default:'Travel'" json:"contract_type"`
	PayRateRegular *float64         `json:"pay_rate_regular,omitempty"`
	PayRateOT      *float64         `json:"pay_rate_ot,omitempty"`
	PayRateHoliday *float64         `json:"pay_rate_holiday,omitempty"`
	BillRate       *float64         `json:"bill_rate,omitempty"`
	WeeklyHours    float64          `gorm:"default:36" json:"weekly_hours"`
	Status         AssignmentStatus `gorm:"type:varchar(20);default:'Scheduled'" json:"status"`
	Notes          string           `json:"notes,omitempty"`
}
