package services

import (
	"mccare_backend/internal/email"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService         AuthService
	LeadService         LeadService
	LeadIntakeService   LeadIntakeService
	CandidateService    CandidateService
	DocumentService     DocumentService
	FacilityService     FacilityService
	JobOrderService     JobOrderService
	AssignmentService   AssignmentService
	TimesheetService    TimesheetService
	ActivityService     ActivityService
	DashboardService    DashboardService
	NotificationService NotificationService
	ScannerService      CredentialScannerService
	EmailService        email.Provider
}
