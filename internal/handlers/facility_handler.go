package handlers

import (
	"net/http"

	"mccare_backend/internal/middleware"
	"mccare_backend/internal/services"
	"mccare_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FacilityHandler struct {
	*BaseHandler
	facilityService services.FacilityService
}

func NewFacilityHandler(base *BaseHandler, facilityService services.FacilityService) *FacilityHandler {
	return &FacilityHandler{BaseHandler: base, facilityService: facilityService}
}

func (h *FacilityHandler) RegisterRoutes(r *gin.RouterGroup) {
	facilities := r.Group("/facilities")
	facilities.Use(middleware.AuthMiddleware())
	{
		facilities.POST("", h.CreateFacility)
		facilities.GET("", h.ListFacilities)
		facilities.GET("/:facilityId", h.GetFacility)
		facilities.PUT("/:facilityId", h.UpdateFacility)
		facilities.DELETE("/:facilityId", h.DeleteFacility)
	}
}

func (h *FacilityHandler) CreateFacility(c *gin.Context) {
	var req dto.CreateFacilityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	facility, err := h.facilityService.CreateFacility(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, facility)
}

func (h *FacilityHandler) ListFacilities(c *gin.Context) {
	facilities, err := h.facilityService.ListFacilities(c.Query("search"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, facilities)
}

func (h *FacilityHandler) GetFacility(c *gin.Context) {
	facility, err := h.facilityService.GetFacility(c.Param("facilityId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, facility)
}

func (h *FacilityHandler) UpdateFacility(c *gin.Context) {
	var req dto.UpdateFacilityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	facility, err := h.facilityService.UpdateFacility(c.Param("facilityId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, facility)
}

func (h *FacilityHandler) DeleteFacility(c *gin.Context) {
	if err := h.facilityService.DeleteFacility(c.Param("facilityId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Facility deleted"})
}
