package repositories

import (
	"errors"

	"mccare_backend/internal/models"

	"gorm.io/gorm"
)

// SettingsRepository manages the two singleton configuration rows.
// Get* creates the row with defaults when it does not exist yet.
type SettingsRepository interface {
	GetLeadCaptureSettings() (*models.LeadCaptureSettings, error)
	UpdateLeadCaptureSettings(settings *models.LeadCaptureSettings) error
	GetNotificationSettings() (*models.NotificationSettings, error)
	UpdateNotificationSettings(settings *models.NotificationSettings) error
}

type SettingsRepositoryImpl struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &SettingsRepositoryImpl{db: db}
}

func (r *SettingsRepositoryImpl) GetLeadCaptureSettings() (*models.LeadCaptureSettings, error) {
	var settings models.LeadCaptureSettings
	err := r.db.First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	defaults := models.DefaultLeadCaptureSettings()
	if err := r.db.Create(defaults).Error; err != nil {
		return nil, err
	}
	return defaults, nil
}

func (r *SettingsRepositoryImpl) UpdateLeadCaptureSettings(settings *models.LeadCaptureSettings) error {
	current, err := r.GetLeadCaptureSettings()
	if err != nil {
		return err
	}
	settings.ID = current.ID
	settings.CreatedAt = current.CreatedAt
	return r.db.Save(settings).Error
}

func (r *SettingsRepositoryImpl) GetNotificationSettings() (*models.NotificationSettings, error) {
	var settings models.NotificationSettings
	err := r.db.First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	defaults := models.DefaultNotificationSettings()
	if err := r.db.Create(defaults).Error; err != nil {
		return nil, err
	}
	return defaults, nil
}

func (r *SettingsRepositoryImpl) UpdateNotificationSettings(settings *models.NotificationSettings) error {
	current, err := r.GetNotificationSettings()
	if err != nil {
		return err
	}
	settings.ID = current.ID
	settings.CreatedAt = current.CreatedAt
	return r.db.Save(settings).Error
}
