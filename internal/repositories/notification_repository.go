package repositories

import (
	"errors"

	"mccare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification type tags
const (
	NotificationTypeNewLead            = "new_lead"
	NotificationTypeExpiringCredential = "expiring_credential"
	NotificationTypeExpiredCredential  = "expired_credential"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByID(id string) (*models.Notification, error)
	FindForUser(userID string, unreadOnly bool, limit int) ([]models.Notification, error)
	UnreadCount(userID string) (int64, error)
	MarkRead(notificationID, userID string) error
	MarkAllRead(userID string) error

	CreateLog(log *models.NotificationLog) error
	FindLogs(notificationType string, limit int) ([]models.NotificationLog, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByID(id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

// FindForUser matches on jsonb containment: user_ids must contain the
// user, and for unreadOnly read_by must not.
func (r *NotificationRepositoryImpl) FindForUser(userID string, unreadOnly bool, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 50
	}

	query := r.db.Where("user_ids @> to_jsonb(?::text)", userID)
	if unreadOnly {
		query = query.Where("NOT (read_by @> to_jsonb(?::text))", userID)
	}

	var notifications []models.Notification
	err := query.Order("created_at DESC").Limit(limit).Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepositoryImpl) UnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_ids @> to_jsonb(?::text)", userID).
		Where("NOT (read_by @> to_jsonb(?::text))", userID).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) MarkRead(notificationID, userID string) error {
	notification, err := r.FindByID(notificationID)
	if err != nil {
		return err
	}

	if notification.IsReadBy(userID) {
		return nil
	}

	notification.ReadBy = append(notification.ReadBy, userID)
	return r.db.Model(&models.Notification{}).
		Where("id = ?", notificationID).
		Update("read_by", notification.ReadBy).Error
}

func (r *NotificationRepositoryImpl) MarkAllRead(userID string) error {
	notifications, err := r.FindForUser(userID, true, 1000)
	if err != nil {
		return err
	}

	for i := range notifications {
		if err := r.MarkRead(notifications[i].ID, userID); err != nil {
			return err
		}
	}
	return nil
}

func (r *NotificationRepositoryImpl) CreateLog(log *models.NotificationLog) error {
	return r.db.Create(log).Error
}

func (r *NotificationRepositoryImpl) FindLogs(notificationType string, limit int) ([]models.NotificationLog, error) {
	if limit <= 0 {
		limit = 100
	}

	query := r.db.Model(&models.NotificationLog{})
	if notificationType != "" {
		query = query.Where("type = ?", notificationType)
	}

	var logs []models.NotificationLog
	err := query.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
