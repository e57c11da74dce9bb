package repositories

import (
	"mccare_backend/internal/models"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(activity *models.Activity) error
	FindByEntity(entityType models.EntityKind, entityID string) ([]models.Activity, error)
	FindRecent(limit int) ([]models.Activity, error)
}

type ActivityRepositoryImpl struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &ActivityRepositoryImpl{db: db}
}

func (r *ActivityRepositoryImpl) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

func (r *ActivityRepositoryImpl) FindByEntity(entityType models.EntityKind, entityID string) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").
		Find(&activities).Error
	return activities, err
}

func (r *ActivityRepositoryImpl) FindRecent(limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = 50
	}
	var activities []models.Activity
	err := r.db.Order("created_at DESC").Limit(limit).Find(&activities).Error
	return activities, err
}
