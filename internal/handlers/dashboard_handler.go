package handlers

import (
	"net/http"

	"mccare_backend/internal/middleware"
	"mccare_backend/internal/models"
	"mccare_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
	activityService  services.ActivityService
}

func NewDashboardHandler(
	base *BaseHandler,
	dashboardService services.DashboardService,
	activityService services.ActivityService,
) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
		activityService:  activityService,
	}
}

func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	{
		dashboard.GET("/stats", h.GetStats)
		dashboard.GET("/activities", h.GetRecentActivities)
	}

	activities := r.Group("/activities")
	activities.Use(middleware.AuthMiddleware())
	{
		activities.GET("/:entityType/:entityId", h.GetEntityActivities)
	}

	invoices := r.Group("/invoices")
	invoices.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleFinance))
	{
		invoices.GET("/summary", h.GetInvoiceSummaries)
	}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) GetRecentActivities(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 20)
	activities, err := h.activityService.GetRecentActivities(limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (h *DashboardHandler) GetEntityActivities(c *gin.Context) {
	activities, err := h.activityService.GetEntityActivities(
		models.EntityKind(c.Param("entityType")),
		c.Param("entityId"),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (h *DashboardHandler) GetInvoiceSummaries(c *gin.Context) {
	summaries, err := h.dashboardService.GetInvoiceSummaries(c.Query("period"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}
