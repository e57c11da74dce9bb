package database

import (
	"fmt"

	"mccare_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate migrates every model on the given connection.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Lead{},
		&models.Candidate{},
		&models.Document{},
		&models.Facility{},
		&models.JobOrder{},
		&models.Assignment{},
		&models.Timesheet{},
		&models.Activity{},
		&models.Notification{},
		&models.NotificationLog{},
		&models.LeadAuditLog{},
		&models.LeadCaptureSettings{},
		&models.NotificationSettings{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}
	return nil
}
