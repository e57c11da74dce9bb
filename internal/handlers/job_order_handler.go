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

type JobOrderHandler struct {
	*BaseHandler
	jobOrderService services.JobOrderService
}

func NewJobOrderHandler(base *BaseHandler, jobOrderService services.JobOrderService) *JobOrderHandler {
	return &JobOrderHandler{BaseHandler: base, jobOrderService: jobOrderService}
}

func (h *JobOrderHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobOrders := r.Group("/job-orders")
	jobOrders.Use(middleware.AuthMiddleware())
	{
		jobOrders.POST("", h.CreateJobOrder)
		jobOrders.GET("", h.ListJobOrders)
		jobOrders.GET("/:jobOrderId", h.GetJobOrder)
		jobOrders.PUT("/:jobOrderId", h.UpdateJobOrder)
		jobOrders.DELETE("/:jobOrderId", h.DeleteJobOrder)
		jobOrders.POST("/:jobOrderId/shortlist/:candidateId", h.Shortlist)
		jobOrders.DELETE("/:jobOrderId/shortlist/:candidateId", h.RemoveFromShortlist)
	}
}

func (h *JobOrderHandler) CreateJobOrder(c *gin.Context) {
	var req dto.CreateJobOrderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	jobOrder, err := h.jobOrderService.CreateJobOrder(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, jobOrder)
}

func (h *JobOrderHandler) ListJobOrders(c *gin.Context) {
	jobOrders, err := h.jobOrderService.ListJobOrders(repositories.JobOrderFilter{
		Status:     models.JobOrderStatus(c.Query("status")),
		FacilityID: c.Query("facility_id"),
		Specialty:  c.Query("specialty"),
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobOrders)
}

func (h *JobOrderHandler) GetJobOrder(c *gin.Context) {
	jobOrder, err := h.jobOrderService.GetJobOrder(c.Param("jobOrderId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobOrder)
}

func (h *JobOrderHandler) UpdateJobOrder(c *gin.Context) {
	var req dto.UpdateJobOrderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	jobOrder, err := h.jobOrderService.UpdateJobOrder(c.Param("jobOrderId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobOrder)
}

func (h *JobOrderHandler) DeleteJobOrder(c *gin.Context) {
	if err := h.jobOrderService.DeleteJobOrder(c.Param("jobOrderId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job order deleted"})
}

func (h *JobOrderHandler) Shortlist(c *gin.Context) {
	jobOrder, err := h.jobOrderService.Shortlist(c.Param("jobOrderId"), c.Param("candidateId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobOrder)
}

func (h *JobOrderHandler) RemoveFromShortlist(c *gin.Context) {
	jobOrder, err := h.jobOrderService.RemoveFromShortlist(c.Param("jobOrderId"), c.Param("candidateId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobOrder)
}
