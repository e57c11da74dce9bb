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

type DocumentHandler struct {
	*BaseHandler
	documentService services.DocumentService
}

func NewDocumentHandler(base *BaseHandler, documentService services.DocumentService) *DocumentHandler {
	return &DocumentHandler{BaseHandler: base, documentService: documentService}
}

func (h *DocumentHandler) RegisterRoutes(r *gin.RouterGroup) {
	documents := r.Group("/documents")
	documents.Use(middleware.AuthMiddleware())
	{
		documents.POST("", h.CreateDocument)
		documents.GET("", h.ListDocuments)
		documents.GET("/types", h.DocumentTypes)
		documents.GET("/expiring", h.ExpiringReport)
		documents.GET("/:documentId", h.GetDocument)
		documents.PUT("/:documentId", h.UpdateDocument)
		documents.DELETE("/:documentId", h.DeleteDocument)
	}

	verify := r.Group("/documents")
	verify.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCompliance))
	{
		verify.POST("/:documentId/verify", h.VerifyDocument)
	}
}

func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var req dto.CreateDocumentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	document, err := h.documentService.CreateDocument(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, document)
}

func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	documents, err := h.documentService.ListDocuments(repositories.DocumentFilter{
		CandidateID: c.Query("candidate_id"),
		Status:      models.DocumentStatus(c.Query("status")),
		Type:        c.Query("type"),
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, documents)
}

func (h *DocumentHandler) DocumentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.documentService.DocumentTypes())
}

func (h *DocumentHandler) ExpiringReport(c *gin.Context) {
	withinDays := ParseQueryInt(c, "days", 60)
	report, err := h.documentService.ExpiringReport(withinDays)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *DocumentHandler) GetDocument(c *gin.Context) {
	document, err := h.documentService.GetDocument(c.Param("documentId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, document)
}

func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	var req dto.UpdateDocumentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	document, err := h.documentService.UpdateDocument(c.Param("documentId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, document)
}

func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.documentService.DeleteDocument(c.Param("documentId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

func (h *DocumentHandler) VerifyDocument(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	document, err := h.documentService.VerifyDocument(c.Param("documentId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, document)
}
