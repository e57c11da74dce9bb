package routes

import (
	"mccare_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every HTTP route under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.LeadHandler.RegisterRoutes(api)
		appHandlers.CandidateHandler.RegisterRoutes(api)
		appHandlers.DocumentHandler.RegisterRoutes(api)
		appHandlers.FacilityHandler.RegisterRoutes(api)
		appHandlers.JobOrderHandler.RegisterRoutes(api)
		appHandlers.AssignmentHandler.RegisterRoutes(api)
		appHandlers.TimesheetHandler.RegisterRoutes(api)
		appHandlers.DashboardHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
	}
}
