package models

type UserRole string
type LeadStage string
type CandidateStatus string
type DocumentStatus string
type JobOrderStatus string
type AssignmentStatus string
type TimesheetStatus string
type NotificationPriority string
type EntityKind string

const (
	UserRoleAdmin      UserRole = "Admin"
	UserRoleRecruiter  UserRole = "Recruiter"
	UserRoleCompliance UserRole = "Compliance Officer"
	UserRoleScheduler  UserRole = "Scheduler"
	UserRoleFinance    UserRole = "Finance"
	UserRoleNurse      UserRole = "Nurse"

	LeadStageNew          LeadStage = "New Lead"
	LeadStageContacted    LeadStage = "Contacted"
	LeadStageScreening    LeadStage = "Screening Scheduled"
	LeadStageApplication  LeadStage = "Application Submitted"
	LeadStageInterview    LeadStage = "Interview"
	LeadStageOffer        LeadStage = "Offer"
	LeadStageHired        LeadStage = "Hired"
	LeadStageConverted    LeadStage = "Converted"
	LeadStageRejected     LeadStage = "Rejected"

	CandidateStatusActive       CandidateStatus = "Active"
	CandidateStatusOnAssignment CandidateStatus = "On Assignment"
	CandidateStatusInactive     CandidateStatus = "Inactive"

	DocumentStatusPending      DocumentStatus = "Pending"
	DocumentStatusVerified     DocumentStatus = "Verified"
	DocumentStatusExpiringSoon DocumentStatus = "Expiring Soon"
	DocumentStatusExpired      DocumentStatus = "Expired"
	DocumentStatusRejected     DocumentStatus = "Rejected"

	JobOrderStatusOpen       JobOrderStatus = "Open"
	JobOrderStatusInProgress JobOrderStatus = "In Progress"
	JobOrderStatusFilled     JobOrderStatus = "Filled"
	JobOrderStatusClosed     JobOrderStatus = "Closed"

	AssignmentStatusScheduled AssignmentStatus = "Scheduled"
	AssignmentStatusActive    AssignmentStatus = "Active"
	AssignmentStatusCompleted AssignmentStatus = "Completed"
	AssignmentStatusCancelled AssignmentStatus = "Cancelled"

	TimesheetStatusDraft     TimesheetStatus = "Draft"
	TimesheetStatusSubmitted TimesheetStatus = "Submitted"
	TimesheetStatusApproved  TimesheetStatus = "Approved"
	TimesheetStatusRejected  TimesheetStatus = "Rejected"

	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"

	EntityLead       EntityKind = "lead"
	EntityCandidate  EntityKind = "candidate"
	EntityDocument   EntityKind = "document"
	EntityFacility   EntityKind = "facility"
	EntityJobOrder   EntityKind = "job_order"
	EntityAssignment EntityKind = "assignment"
	EntityTimesheet  EntityKind = "timesheet"
	EntitySystem     EntityKind = "system"
)

// PipelineStages lists every valid lead stage in funnel order.
// Hired and Converted are terminal; Rejected absorbs from any
// non-terminal stage.
var PipelineStages = []LeadStage{
	LeadStageNew,
	LeadStageContacted,
	LeadStageScreening,
	LeadStageApplication,
	LeadStageInterview,
	LeadStageOffer,
	LeadStageHired,
	LeadStageConverted,
	LeadStageRejected,
}

var terminalStages = map[LeadStage]bool{
	LeadStageHired:     true,
	LeadStageConverted: true,
	LeadStageRejected:  true,
}

// IsValidStage reports whether s is one of the enumerated pipeline stages.
func IsValidStage(s LeadStage) bool {
	for _, stage := range PipelineStages {
		if stage == s {
			return true
		}
	}
	return false
}

// IsTerminalStage reports whether s ends the pipeline.
func IsTerminalStage(s LeadStage) bool {
	return terminalStages[s]
}
