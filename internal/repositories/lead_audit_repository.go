package repositories

import (
	"mccare_backend/internal/models"

	"gorm.io/gorm"
)

type LeadAuditRepository interface {
	Create(entry *models.LeadAuditLog) error
	FindByLead(leadID string) ([]models.LeadAuditLog, error)
	FindRecent(limit int) ([]models.LeadAuditLog, error)
}

type LeadAuditRepositoryImpl struct {
	db *gorm.DB
}

func NewLeadAuditRepository(db *gorm.DB) LeadAuditRepository {
	return &LeadAuditRepositoryImpl{db: db}
}

func (r *LeadAuditRepositoryImpl) Create(entry *models.LeadAuditLog) error {
	return r.db.Create(entry).Error
}

func (r *LeadAuditRepositoryImpl) FindByLead(leadID string) ([]models.LeadAuditLog, error) {
	var entries []models.LeadAuditLog
	err := r.db.Where("lead_id = ?", leadID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *LeadAuditRepositoryImpl) FindRecent(limit int) ([]models.LeadAuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var entries []models.LeadAuditLog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
