package handlers

import (
	"net/http"

	"mccare_backend/internal/middleware"
	"mccare_backend/internal/models"
	"mccare_backend/internal/repositories"
	"mccare_backend/internal/services"
	"mccare_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type TimesheetHandler struct {
	*BaseHandler
	timesheetService services.TimesheetService
}

func NewTimesheetHandler(base *BaseHandler, timesheetService services.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{BaseHandler: base, timesheetService: timesheetService}
}

func (h *TimesheetHandler) RegisterRoutes(r *gin.RouterGroup) {
	timesheets := r.Group("/timesheets")
	timesheets.Use(middleware.AuthMiddleware())
	{
		timesheets.POST("", h.CreateTimesheet)
		timesheets.GET("", h.ListTimesheets)
		timesheets.GET("/:timesheetId", h.GetTimesheet)
		timesheets.PUT("/:timesheetId", h.UpdateTimesheet)
		timesheets.DELETE("/:timesheetId", h.DeleteTimesheet)
		timesheets.POST("/:timesheetId/submit", h.SubmitTimesheet)
	}

	finance := r.Group("/timesheets")
	finance.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleFinance))
	{
		finance.POST("/:timesheetId/approve", h.ApproveTimesheet)
		finance.POST("/:timesheetId/reject", h.RejectTimesheet)
	}
}

func (h *TimesheetHandler) CreateTimesheet(c *gin.Context) {
	var req dto.CreateTimesheetRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	timesheet, err := h.timesheetService.CreateTimesheet(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, timesheet)
}

func (h *TimesheetHandler) ListTimesheets(c *gin.Context) {
	timesheets, err := h.timesheetService.ListTimesheets(repositories.TimesheetFilter{
		Status:       models.TimesheetStatus(c.Query("status")),
		CandidateID:  c.Query("candidate_id"),
		AssignmentID: c.Query("assignment_id"),
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, timesheets)
}

func (h *TimesheetHandler) GetTimesheet(c *gin.Context) {
	timesheet, err := h.timesheetService.GetTimesheet(c.Param("timesheetId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, timesheet)
}

func (h *TimesheetHandler) UpdateTimesheet(c *gin.Context) {
	var req dto.UpdateTimesheetRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	timesheet, err := h.timesheetService.UpdateTimesheet(c.Param("timesheetId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, timesheet)
}

func (h *TimesheetHandler) DeleteTimesheet(c *gin.Context) {
	if err := h.timesheetService.DeleteTimesheet(c.Param("timesheetId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Timesheet deleted"})
}

func (h *TimesheetHandler) SubmitTimesheet(c *gin.Context) {
	timesheet, err := h.timesheetService.SubmitTimesheet(c.Param("timesheetId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, timesheet)
}

func (h *TimesheetHandler) ApproveTimesheet(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	timesheet, err := h.timesheetService.ApproveTimesheet(c.Param("timesheetId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, timesheet)
}

func (h *TimesheetHandler) RejectTimesheet(c *gin.Context) {
	timesheet, err := h.timesheetService.RejectTimesheet(c.Param("timesheetId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, timesheet)
}
