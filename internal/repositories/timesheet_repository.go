package repositories

import (
	"errors"

	"mccare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTimesheetNotFound = errors.New("timesheet not found")

type TimesheetFilter struct {
	Status       models.TimesheetStatus
	CandidateID  string
	AssignmentID string
}

type TimesheetRepository interface {
	Create(timesheet *models.Timesheet) error
	FindByID(id string) (*models.Timesheet, error)
	FindWithFilter(criteria TimesheetFilter) ([]models.Timesheet, error)
	Update(timesheet *models.Timesheet) error
	Delete(id string) error
	CountByStatus(status models.TimesheetStatus) (int64, error)
}

type TimesheetRepositoryImpl struct {
	db *gorm.DB
}

func NewTimesheetRepository(db *gorm.DB) TimesheetRepository {
	return &TimesheetRepositoryImpl{db: db}
}

func (r *TimesheetRepositoryImpl) Create(timesheet *models.Timesheet) error {
	return r.db.Create(timesheet).Error
}

func (r *TimesheetRepositoryImpl) FindByID(id string) (*models.Timesheet, error) {
	var timesheet models.Timesheet
	err := r.db.First(&timesheet, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimesheetNotFound
		}
		return nil, err
	}
	return &timesheet, nil
}

func (r *TimesheetRepositoryImpl) FindWithFilter(criteria TimesheetFilter) ([]models.Timesheet, error) {
	query := r.db.Model(&models.Timesheet{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.CandidateID != "" {
		query = query.Where("candidate_id = ?", criteria.CandidateID)
	}
	if criteria.AssignmentID != "" {
		query = query.Where("assignment_id = ?", criteria.AssignmentID)
	}

	var timesheets []models.Timesheet
	err := query.Order("week_start DESC").Find(&timesheets).Error
	return timesheets, err
}

func (r *TimesheetRepositoryImpl) Update(timesheet *models.Timesheet) error {
	return r.db.Save(timesheet).Error
}

func (r *TimesheetRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Timesheet{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTimesheetNotFound
	}
	return nil
}

func (r *TimesheetRepositoryImpl) CountByStatus(status models.TimesheetStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Timesheet{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
