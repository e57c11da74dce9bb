package handlers

import (
	"net/http"

	"mccare_backend/internal/middleware"
	"mccare_backend/internal/models"
	"mccare_backend/internal/services"
	"mccare_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
	scannerService      services.CredentialScannerService
}

func NewNotificationHandler(
	base *BaseHandler,
	notificationService services.NotificationService,
	scannerService services.CredentialScannerService,
) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
		scannerService:      scannerService,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", h.GetUserNotifications)
		notifications.GET("/unread-count", h.UnreadCount)
		notifications.PUT("/:notificationId/read", h.MarkRead)
		notifications.PUT("/read-all", h.MarkAllRead)
	}

	admin := r.Group("/notifications")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCompliance))
	{
		admin.GET("/logs", h.GetLogs)
		admin.POST("/scan-credentials", h.ScanCredentials)
	}

	settings := r.Group("/settings/notifications")
	settings.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCompliance))
	{
		settings.GET("", h.GetSettings)
		settings.PUT("", h.UpdateSettings)
	}
}

func (h *NotificationHandler) GetUserNotifications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	unreadOnly := c.Query("unread_only") == "true"
	limit := ParseQueryInt(c, "limit", 50)

	list, err := h.notificationService.GetUserNotifications(userID, unreadOnly, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(c.Param("notificationId"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllRead(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

func (h *NotificationHandler) GetLogs(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 50)
	logs, err := h.notificationService.GetLogs(c.Query("type"), limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// ScanCredentials triggers the credential expiry scan on demand; the
// worker runs the same scan daily.
func (h *NotificationHandler) ScanCredentials(c *gin.Context) {
	summary, err := h.scannerService.CheckExpiringCredentials()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *NotificationHandler) GetSettings(c *gin.Context) {
	settings, err := h.notificationService.GetSettings()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *NotificationHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateNotificationSettingsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	settings, err := h.notificationService.UpdateSettings(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
