package repositories

import (
	"errors"
	"strings"

	"mccare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateFilter struct {
	Status    models.CandidateStatus
	Specialty string
	Province  string
	Search    string
	Page      int
	PageSize  int
}

type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	FindByID(id string) (*models.Candidate, error)
	FindByEmail(email string) (*models.Candidate, error)
	FindWithFilter(criteria CandidateFilter) ([]models.Candidate, int64, error)
	Update(candidate *models.Candidate) error
	Delete(id string) error
	CountBySpecialty(status models.CandidateStatus) (map[string]int64, error)
	Count() (int64, error)
	CountByStatus(status models.CandidateStatus) (int64, error)
}

type CandidateRepositoryImpl struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &CandidateRepositoryImpl{db: db}
}

func (r *CandidateRepositoryImpl) Create(candidate *models.Candidate) error {
	return r.db.Create(candidate).Error
}

func (r *CandidateRepositoryImpl) FindByID(id string) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.db.First(&candidate, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

func (r *CandidateRepositoryImpl) FindByEmail(email string) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.db.First(&candidate, "LOWER(email) = LOWER(?)", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

func (r *CandidateRepositoryImpl) FindWithFilter(criteria CandidateFilter) ([]models.Candidate, int64, error) {
	query := r.db.Model(&models.Candidate{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.Specialty != "" {
		query = query.Where("primary_specialty = ?", criteria.Specialty)
	}
	if criteria.Province != "" {
		query = query.Where("province = ?", criteria.Province)
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

	var candidates []models.Candidate
	err := query.Order("created_at DESC").Find(&candidates).Error
	return candidates, total, err
}

func (r *CandidateRepositoryImpl) Update(candidate *models.Candidate) error {
	return r.db.Save(candidate).Error
}

func (r *CandidateRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Candidate{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCandidateNotFound
	}
	return nil
}

func (r *CandidateRepositoryImpl) CountBySpecialty(status models.CandidateStatus) (map[string]int64, error) {
	type row struct {
		Specialty string
		Count     int64
	}
	var rows []row
	err := r.db.Model(&models.Candidate{}).
		Select("primary_specialty as specialty, COUNT(*) as count").
		Where("status = ?", status).
		Group("primary_specialty").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		key := rw.Specialty
		if key == "" {
			key = "Unspecified"
		}
		counts[key] += rw.Count
	}
	return counts, nil
}

func (r *CandidateRepositoryImpl) CountByStatus(status models.CandidateStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Candidate{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *CandidateRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Candidate{}).Count(&count).Error
	return count, err
}
