package repositories

import (
	"errors"

	"mccare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobOrderNotFound = errors.New("job order not found")

type JobOrderFilter struct {
	Status     models.JobOrderStatus
	FacilityID string
	Specialty  string
}

type JobOrderRepository interface {
	Create(jobOrder *models.JobOrder) error
	FindByID(id string) (*models.JobOrder, error)
	FindWithFilter(criteria JobOrderFilter) ([]models.JobOrder, error)
	Update(jobOrder *models.JobOrder) error
	Delete(id string) error
	AddToShortlist(jobOrderID, candidateID string) error
	RemoveFromShortlist(jobOrderID, candidateID string) error
	CountByStatus(status models.JobOrderStatus) (int64, error)
	Count() (int64, error)
}

type JobOrderRepositoryImpl struct {
	db *gorm.DB
}

func NewJobOrderRepository(db *gorm.DB) JobOrderRepository {
	return &JobOrderRepositoryImpl{db: db}
}

func (r *JobOrderRepositoryImpl) Create(jobOrder *models.JobOrder) error {
	return r.db.Create(jobOrder).Error
}

func (r *JobOrderRepositoryImpl) FindByID(id string) (*models.JobOrder, error) {
	var jobOrder models.JobOrder
	err := r.db.First(&jobOrder, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobOrderNotFound
		}
		return nil, err
	}
	return &jobOrder, nil
}

func (r *JobOrderRepositoryImpl) FindWithFilter(criteria JobOrderFilter) ([]models.JobOrder, error) {
	query := r.db.Model(&models.JobOrder{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.FacilityID != "" {
		query = query.Where("facility_id = ?", criteria.FacilityID)
	}
	if criteria.Specialty != "" {
		query = query.Where("specialty = ?", criteria.Specialty)
	}

	var jobOrders []models.JobOrder
	err := query.Order("created_at DESC").Find(&jobOrders).Error
	return jobOrders, err
}

func (r *JobOrderRepositoryImpl) Update(jobOrder *models.JobOrder) error {
	return r.db.Save(jobOrder).Error
}

func (r *JobOrderRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.JobOrder{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobOrderNotFound
	}
	return nil
}

// AddToShortlist is idempotent; adding a candidate twice keeps one entry.
func (r *JobOrderRepositoryImpl) AddToShortlist(jobOrderID, candidateID string) error {
	jobOrder, err := r.FindByID(jobOrderID)
	if err != nil {
		return err
	}

	for _, id := range jobOrder.ShortlistedCandidates {
		if id == candidateID {
			return nil
		}
	}

	jobOrder.ShortlistedCandidates = append(jobOrder.ShortlistedCandidates, candidateID)
	return r.db.Model(&models.JobOrder{}).
		Where("id = ?", jobOrderID).
		Update("shortlisted_candidates", jobOrder.ShortlistedCandidates).Error
}

func (r *JobOrderRepositoryImpl) RemoveFromShortlist(jobOrderID, candidateID string) error {
	jobOrder, err := r.FindByID(jobOrderID)
	if err != nil {
		return err
	}

	kept := jobOrder.ShortlistedCandidates[:0]
	for _, id := range jobOrder.ShortlistedCandidates {
		if id != candidateID {
			kept = append(kept, id)
		}
	}

	jobOrder.ShortlistedCandidates = kept
	return r.db.Model(&models.JobOrder{}).
		Where("id = ?", jobOrderID).
		Update("shortlisted_candidates", jobOrder.ShortlistedCandidates).Error
}

func (r *JobOrderRepositoryImpl) CountByStatus(status models.JobOrderStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.JobOrder{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *JobOrderRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.JobOrder{}).Count(&count).Error
	return count, err
}
