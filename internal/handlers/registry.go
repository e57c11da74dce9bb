package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	LeadHandler         *LeadHandler
	CandidateHandler    *CandidateHandler
	DocumentHandler     *DocumentHandler
	FacilityHandler     *FacilityHandler
	JobOrderHandler     *JobOrderHandler
	AssignmentHandler   *AssignmentHandler
	TimesheetHandler    *TimesheetHandler
	DashboardHandler    *DashboardHandler
	NotificationHandler *NotificationHandler
	HealthHandler       *HealthHandler
}
