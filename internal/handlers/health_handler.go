package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	*BaseHandler
}

func NewHealthHandler(base *BaseHandler) *HealthHandler {
	return &HealthHandler{BaseHandler: base}
}

func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", h.Health)
}

func (h *HealthHandler) Health(c *gin.Context) {
	db := h.GetDB(c)

	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
}
