package repositories

import (
	"errors"

	"mccare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAssignmentNotFound = errors.New("assignment not found")

type AssignmentFilter struct {
	Status      models.AssignmentStatus
	CandidateID string
	FacilityID  string
}

type AssignmentRepository interface {
	Create(assignment *models.Assignment) error
	FindByID(id string) (*models.Assignment, error)
	FindWithFilter(criteria AssignmentFilter) ([]models.Assignment, error)
	Update(assignment *models.Assignment) error
	Delete(id string) error
	CountByStatus(status models.AssignmentStatus) (int64, error)
	CountStartingBetween(from, to string) (int64, error)
}

type AssignmentRepositoryImpl struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &AssignmentRepositoryImpl{db: db}
}

func (r *AssignmentRepositoryImpl) Create(assignment *models.Assignment) error {
	return r.db.Create(assignment).Error
}

func (r *AssignmentRepositoryImpl) FindByID(id string) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *AssignmentRepositoryImpl) FindWithFilter(criteria AssignmentFilter) ([]models.Assignment, error) {
	query := r.db.Model(&models.Assignment{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.CandidateID != "" {
		query = query.Where("candidate_id = ?", criteria.CandidateID)
	}
	if criteria.FacilityID != "" {
		query = query.Where("facility_id = ?", criteria.FacilityID)
	}

	var assignments []models.Assignment
	err := query.Order("start_date DESC").Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepositoryImpl) Update(assignment *models.Assignment) error {
	return r.db.Save(assignment).Error
}

func (r *AssignmentRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Assignment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

func (r *AssignmentRepositoryImpl) CountByStatus(status models.AssignmentStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Assignment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// Dates are ISO strings, so lexicographic comparison matches
// chronological order.
func (r *AssignmentRepositoryImpl) CountStartingBetween(from, to string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Assignment{}).
		Where("start_date >= ? AND start_date <= ?", from, to).
		Where("status = ?", models.AssignmentStatusScheduled).
		Count(&count).Error
	return count, err
}
