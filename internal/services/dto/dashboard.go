package dto

import "mccare_backend/internal/models"

type DashboardStats struct {
	LeadsByStage              map[models.LeadStage]int64 `json:"leads_by_stage"`
	CandidatesBySpecialty     map[string]int64           `json:"candidates_by_specialty"`
	OpenJobOrders             int64                      `json:"open_job_orders"`
	AssignmentsStarting14Days int64                      `json:"assignments_starting_14_days"`
	AssignmentsStarting30Days int64                      `json:"assignments_starting_30_days"`
	CredentialsExpiring30Days int64                      `json:"credentials_expiring_30_days"`
	TotalLeads                int64                      `json:"total_leads"`
	TotalCandidates           int64                      `json:"total_candidates"`
	ActiveCandidates          int64                      `json:"active_candidates"`
	TotalFacilities           int64                      `json:"total_facilities"`
	TotalJobOrders            int64                      `json:"total_job_orders"`
	ActiveAssignments         int64                      `json:"active_assignments"`
	PendingTimesheets         int64                      `json:"pending_timesheets"`
}

// InvoiceSummary aggregates approved timesheets per facility per month.
type InvoiceSummary struct {
	FacilityID   string   `json:"facility_id"`
	FacilityName string   `json:"facility_name"`
	Period       string   `json:"period"` // YYYY-MM
	TotalHours   float64  `json:"total_hours"`
	TotalAmount  float64  `json:"total_amount"`
	Timesheets   []string `json:"timesheets"`
}
