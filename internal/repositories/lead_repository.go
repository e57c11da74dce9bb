package repositories

import (
	"errors"
	"strings"

	"mccare_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrLeadNotFound    = errors.New("lead not found")
	ErrLeadEmailExists = errors.New("lead with this email already exists")
)

type LeadFilter struct {
	Stage       models.LeadStage
	Specialty   string
	Province    string
	RecruiterID string
	Source      string
	Search      string
	Page        int
	PageSize    int
}

type LeadRepository interface {
	Create(lead *models.Lead) error
	FindByID(id string) (*models.Lead, error)
	FindByEmail(email string) (*models.Lead, error)
	FindWithFilter(criteria LeadFilter) ([]models.Lead, int64, error)
	Update(lead *models.Lead) error
	Delete(id string) error
	CountByStage() (map[models.LeadStage]int64, error)
	Count() (int64, error)
	CountCreatedToday() (int64, error)
}

type LeadRepositoryImpl struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &LeadRepositoryImpl{db: db}
}

func (r *LeadRepositoryImpl) Create(lead *models.Lead) error {
	err := r.db.Create(lead).Error
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return ErrLeadEmailExists
	}
	return err
}

func (r *LeadRepositoryImpl) FindByID(id string) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &lead, nil
}

func (r *LeadRepositoryImpl) FindByEmail(email string) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &lead, nil
}

func (r *LeadRepositoryImpl) FindWithFilter(criteria LeadFilter) ([]models.Lead, int64, error) {
	query := r.db.Model(&models.Lead{})

	if criteria.Stage != "" {
		query = query.Where("stage = ?", criteria.Stage)
	}
	if criteria.Specialty != "" {
		query = query.Where("specialty = ?", criteria.Specialty)
	}
	if criteria.Province != "" {
		query = query.Where("province_preference = ?", criteria.Province)
	}
	if criteria.RecruiterID != "" {
		query = query.Where("recruiter_id = ?", criteria.RecruiterID)
	}
	if criteria.Source != "" {
		query = query.Where("source = ?", criteria.Source)
	}
	if criteria.Search != "" {
		like := "%" + strings.ToLower(criteria.Search) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if criteria.Page > 0 && criteria.PageSize > 0 {
		query = query.Limit(criteria.PageSize).Offset((criteria.Page - 1) * criteria.PageSize)
	}

	var leads []models.Lead
	err := query.Order("created_at DESC").Find(&leads).Error
	return leads, total, err
}

func (r *LeadRepositoryImpl) Update(lead *models.Lead) error {
	return r.db.Save(lead).Error
}

func (r *LeadRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Lead{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepositoryImpl) CountByStage() (map[models.LeadStage]int64, error) {
	type row struct {
		Stage models.LeadStage
		Count int64
	}
	var rows []row
	err := r.db.Model(&models.Lead{}).
		Select("stage, COUNT(*) as count").
		Group("stage").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.LeadStage]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Stage] = rw.Count
	}
	return counts, nil
}

func (r *LeadRepositoryImpl) CountCreatedToday() (int64, error) {
	var count int64
	err := r.db.Model(&models.Lead{}).
		Where("created_at >= CURRENT_DATE").
		Count(&count).Error
	return count, err
}

func (r *LeadRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Lead{}).Count(&count).Error
	return count, err
}
