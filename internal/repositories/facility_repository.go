package repositories

import (
	"errors"
	"strings"

	"mccare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrFacilityNotFound = errors.New("facility not found")

type FacilityRepository interface {
	Create(facility *models.Facility) error
	FindByID(id string) (*models.Facility, error)
	FindAll(search string) ([]models.Facility, error)
	Update(facility *models.Facility) error
	Delete(id string) error
}

type FacilityRepositoryImpl struct {
	db *gorm.DB
}

func NewFacilityRepository(db *gorm.DB) FacilityRepository {
	return &FacilityRepositoryImpl{db: db}
}

func (r *FacilityRepositoryImpl) Create(facility *models.Facility) error {
	return r.db.Create(facility).Error
}

func (r *FacilityRepositoryImpl) FindByID(id string) (*models.Facility, error) {
	var facility models.Facility
	err := r.db.First(&facility, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacilityNotFound
		}
		return nil, err
	}
	return &facility, nil
}

func (r *FacilityRepositoryImpl) FindAll(search string) ([]models.Facility, error) {
	query := r.db.Model(&models.Facility{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(city) LIKE ?", like, like)
	}

	var facilities []models.Facility
	err := query.Order("name ASC").Find(&facilities).Error
	return facilities, err
}

func (r *FacilityRepositoryImpl) Update(facility *models.Facility) error {
	return r.db.Save(facility).Error
}

func (r *FacilityRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Facility{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFacilityNotFound
	}
	return nil
}
