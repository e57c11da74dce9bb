package dto

import "mccare_backend/internal/models"

type NotificationListResponse struct {
	Notifications []NotificationItem `json:"notifications"`
	UnreadCount   int64              `json:"unread_count"`
}

// NotificationItem is a notification with per-user read state resolved.
type NotificationItem struct {
	models.Notification
	IsRead bool `json:"is_read"`
}

// ScanSummary reports the outcome of one credential expiry scan.
type ScanSummary struct {
	Status            string         `json:"status"` // "completed" or "disabled"
	CheckedAt         string         `json:"checked_at,omitempty"`
	DocumentsChecked  int            `json:"documents_checked"`
	NotificationsSent int            `json:"notifications_sent"`
	EmailsSent        int            `json:"emails_sent"`
	ByThreshold       map[string]int `json:"by_threshold"`
}
