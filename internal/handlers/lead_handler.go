package handlers

import (
	"net/http"

	"mccare_backend/internal/middleware"
	"mccare_backend/internal/models"
	"mccare_backend/internal/repositories"
	"mccare_backend/internal/services"
	"mccare_backend/internal/services/dto"
	"mccare_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type LeadHandler struct {
	*BaseHandler
	leadService   services.LeadService
	intakeService services.LeadIntakeService
}

func NewLeadHandler(base *BaseHandler, leadService services.LeadService, intakeService services.LeadIntakeService) *LeadHandler {
	return &LeadHandler{
		BaseHandler:   base,
		leadService:   leadService,
		intakeService: intakeService,
	}
}

func (h *LeadHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Unauthenticated intake endpoints for external producers.
	public := r.Group("/public")
	{
		public.POST("/leads", h.SubmitPublicLead)
	}
	webhooks := r.Group("/webhooks")
	{
		webhooks.POST("/hubspot", h.HubSpotWebhook)
	}

	leads := r.Group("/leads")
	leads.Use(middleware.AuthMiddleware())
	{
		leads.POST("", h.CreateLead)
		leads.POST("/intake", h.IntakeLead)
		leads.GET("", h.ListLeads)
		leads.GET("/pipeline", h.Pipeline)
		leads.GET("/audit-logs", h.AuditLogs)
		leads.GET("/:leadId", h.GetLead)
		leads.PUT("/:leadId", h.UpdateLead)
		leads.DELETE("/:leadId", h.DeleteLead)
		leads.PUT("/:leadId/assign", h.AssignRecruiter)
		leads.POST("/:leadId/reject", h.RejectLead)
		leads.POST("/:leadId/convert", h.ConvertLead)
		leads.GET("/:leadId/check-duplicate", h.CheckDuplicate)
		leads.GET("/:leadId/audit-logs", h.LeadAuditLogs)
	}

	settings := r.Group("/settings/lead-capture")
	settings.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		settings.GET("", h.GetCaptureSettings)
		settings.PUT("", h.UpdateCaptureSettings)
	}
}

// SubmitPublicLead accepts website and landing page form posts.
func (h *LeadHandler) SubmitPublicLead(c *gin.Context) {
	var req dto.PublicLeadSubmission
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	source := services.SourceWebsite
	if req.LandingPageURL != "" || req.FormID != "" {
		source = services.SourceLandingPage
	}

	result, err := h.intakeService.ProcessLeadIntake(services.NormalizePublicSubmission(&req), source)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// HubSpotWebhook ingests HubSpot contact property payloads.
func (h *LeadHandler) HubSpotWebhook(c *gin.Context) {
	var payload dto.HubSpotWebhookPayload
	if err := c.ShouldBind(&payload); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid webhook payload: "+err.Error()))
		return
	}

	result, err := h.intakeService.ProcessLeadIntake(services.NormalizeHubSpotPayload(&payload), services.SourceHubSpot)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// IntakeLead accepts an arbitrary field bag from API integrations and
// normalizes synonym field names.
func (h *LeadHandler) IntakeLead(c *gin.Context) {
	var raw map[string]interface{}
	if err := c.ShouldBind(&raw); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	result, err := h.intakeService.ProcessLeadIntake(services.NormalizeAPIPayload(raw), services.SourceAPI)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req dto.CreateLeadRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	lead, err := h.leadService.CreateLead(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

func (h *LeadHandler) ListLeads(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	criteria := repositories.LeadFilter{
		Stage:       models.LeadStage(c.Query("stage")),
		Specialty:   c.Query("specialty"),
		Province:    c.Query("province"),
		RecruiterID: c.Query("recruiter_id"),
		Source:      c.Query("source"),
		Search:      c.Query("search"),
		Page:        page,
		PageSize:    pageSize,
	}

	leads, total, err := h.leadService.ListLeads(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"leads":     leads,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *LeadHandler) Pipeline(c *gin.Context) {
	counts, err := h.leadService.PipelineCounts()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	stages := make([]gin.H, 0, len(models.PipelineStages))
	for _, stage := range models.PipelineStages {
		stages = append(stages, gin.H{"stage": stage, "count": counts[stage]})
	}
	c.JSON(http.StatusOK, gin.H{"stages": stages})
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.leadService.GetLead(c.Param("leadId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) UpdateLead(c *gin.Context) {
	var req dto.UpdateLeadRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	lead, err := h.leadService.UpdateLead(c.Param("leadId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) DeleteLead(c *gin.Context) {
	if err := h.leadService.DeleteLead(c.Param("leadId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted"})
}

func (h *LeadHandler) AssignRecruiter(c *gin.Context) {
	var req dto.AssignRecruiterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	lead, err := h.leadService.AssignRecruiter(c.Param("leadId"), req.RecruiterID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) RejectLead(c *gin.Context) {
	var req dto.RejectLeadRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	lead, err := h.leadService.RejectLead(c.Param("leadId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) ConvertLead(c *gin.Context) {
	var req dto.ConvertLeadRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.leadService.ConvertLead(c.Param("leadId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *LeadHandler) CheckDuplicate(c *gin.Context) {
	result, err := h.leadService.CheckDuplicate(c.Param("leadId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *LeadHandler) AuditLogs(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 50)
	entries, err := h.intakeService.GetAuditLogs("", limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *LeadHandler) LeadAuditLogs(c *gin.Context) {
	entries, err := h.intakeService.GetAuditLogs(c.Param("leadId"), 0)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *LeadHandler) GetCaptureSettings(c *gin.Context) {
	settings, err := h.intakeService.GetCaptureSettings()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *LeadHandler) UpdateCaptureSettings(c *gin.Context) {
	var req dto.UpdateLeadCaptureSettingsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	settings, err := h.intakeService.UpdateCaptureSettings(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
