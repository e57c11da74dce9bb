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

type CandidateHandler struct {
	*BaseHandler
	candidateService services.CandidateService
	documentService  services.DocumentService
	activityService  services.ActivityService
}

func NewCandidateHandler(
	base *BaseHandler,
	candidateService services.CandidateService,
	documentService services.DocumentService,
	activityService services.ActivityService,
) *CandidateHandler {
	return &CandidateHandler{
		BaseHandler:      base,
		candidateService: candidateService,
		documentService:  documentService,
		activityService:  activityService,
	}
}

func (h *CandidateHandler) RegisterRoutes(r *gin.RouterGroup) {
	candidates := r.Group("/candidates")
	candidates.Use(middleware.AuthMiddleware())
	{
		candidates.POST("", h.CreateCandidate)
		candidates.GET("", h.ListCandidates)
		candidates.GET("/:candidateId", h.GetCandidate)
		candidates.PUT("/:candidateId", h.UpdateCandidate)
		candidates.DELETE("/:candidateId", h.DeleteCandidate)
		candidates.GET("/:candidateId/documents", h.ListCandidateDocuments)
		candidates.GET("/:candidateId/activities", h.ListCandidateActivities)
	}
}

func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	var req dto.CreateCandidateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	candidate, err := h.candidateService.CreateCandidate(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	criteria := repositories.CandidateFilter{
		Status:    models.CandidateStatus(c.Query("status")),
		Specialty: c.Query("specialty"),
		Province:  c.Query("province"),
		Search:    c.Query("search"),
		Page:      page,
		PageSize:  pageSize,
	}

	candidates, total, err := h.candidateService.ListCandidates(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"candidates": candidates,
		"total":      total,
		"page":       page,
		"page_size":  pageSize,
	})
}

func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	candidate, err := h.candidateService.GetCandidate(c.Param("candidateId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	var req dto.UpdateCandidateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	candidate, err := h.candidateService.UpdateCandidate(c.Param("candidateId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

func (h *CandidateHandler) DeleteCandidate(c *gin.Context) {
	if err := h.candidateService.DeleteCandidate(c.Param("candidateId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Candidate deleted"})
}

func (h *CandidateHandler) ListCandidateDocuments(c *gin.Context) {
	documents, err := h.documentService.ListDocuments(repositories.DocumentFilter{
		CandidateID: c.Param("candidateId"),
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, documents)
}

func (h *CandidateHandler) ListCandidateActivities(c *gin.Context) {
	activities, err := h.activityService.GetEntityActivities(models.EntityCandidate, c.Param("candidateId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}
