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

type AssignmentHandler struct {
	*BaseHandler
	assignmentService services.AssignmentService
}

func NewAssignmentHandler(base *BaseHandler, assignmentService services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{BaseHandler: base, assignmentService: assignmentService}
}

func (h *AssignmentHandler) RegisterRoutes(r *gin.RouterGroup) {
	assignments := r.Group("/assignments")
	assignments.Use(middleware.AuthMiddleware())
	{
		assignments.POST("", h.CreateAssignment)
		assignments.GET("", h.ListAssignments)
		assignments.GET("/:assignmentId", h.GetAssignment)
		assignments.PUT("/:assignmentId", h.UpdateAssignment)
		assignments.DELETE("/:assignmentId", h.DeleteAssignment)
	}
}

func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	assignment, err := h.assignmentService.CreateAssignment(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.assignmentService.ListAssignments(repositories.AssignmentFilter{
		Status:      models.AssignmentStatus(c.Query("status")),
		CandidateID: c.Query("candidate_id"),
		FacilityID:  c.Query("facility_id"),
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	assignment, err := h.assignmentService.GetAssignment(c.Param("assignmentId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	var req dto.UpdateAssignmentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	assignment, err := h.assignmentService.UpdateAssignment(c.Param("assignmentId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	if err := h.assignmentService.DeleteAssignment(c.Param("assignmentId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assignment deleted"})
}
