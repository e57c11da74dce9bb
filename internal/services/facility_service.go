package services

import (
	"mccare_backend/internal/models"
	"mccare_backend/internal/repositories"
	"mccare_backend/internal/services/dto"
	"mccare_backend/pkg/apperrors"
)

type FacilityService interface {
	CreateFacility(req *dto.CreateFacilityRequest) (*models.Facility, error)
	GetFacility(id string) (*models.Facility, error)
	ListFacilities(search string) ([]models.Facility, error)
	UpdateFacility(id string, req *dto.UpdateFacilityRequest) (*models.Facility, error)
	DeleteFacility(id string) error
}

type facilityService struct {
	facilityRepo repositories.FacilityRepository
}

func NewFacilityService(facilityRepo repositories.FacilityRepository) FacilityService {
	return &facilityService{facilityRepo: facilityRepo}
}

func (s *facilityService) CreateFacility(req *dto.CreateFacilityRequest) (*models.Facility, error) {
	facility := &models.Facility{
		Name:             req.Name,
		Address:          req.Address,
		City:             req.City,
		Province:         req.Province,
		FacilityType:     req.FacilityType,
		MainContactName:  req.MainContactName,
		MainContactEmail: req.MainContactEmail,
		MainContactPhone: req.MainContactPhone,
		BillingNotes:     req.BillingNotes,
	}
	if facility.FacilityType == "" {
		facility.FacilityType = "Hospital"
	}

	if err := s.facilityRepo.Create(facility); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return facility, nil
}

func (s *facilityService) GetFacility(id string) (*models.Facility, error) {
	facility, err := s.facilityRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrFacilityNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return facility, nil
}

func (s *facilityService) ListFacilities(search string) ([]models.Facility, error) {
	facilities, err := s.facilityRepo.FindAll(search)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return facilities, nil
}

func (s *facilityService) UpdateFacility(id string, req *dto.UpdateFacilityRequest) (*models.Facility, error) {
	facility, err := s.GetFacility(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		facility.Name = *req.Name
	}
	if req.Address != nil {
		facility.Address = *req.Address
	}
	if req.City != nil {
		facility.City = *req.City
	}
	if req.Province != nil {
		facility.Province = *req.Province
	}
	if req.FacilityType != nil {
		facility.FacilityType = *req.FacilityType
	}
	if req.MainContactName != nil {
		facility.MainContactName = *req.MainContactName
	}
	if req.MainContactEmail != nil {
		facility.MainContactEmail = *req.MainContactEmail
	}
	if req.MainContactPhone != nil {
		facility.MainContactPhone = *req.MainContactPhone
	}
	if req.BillingNotes != nil {
		facility.BillingNotes = *req.BillingNotes
	}

	if err := s.facilityRepo.Update(facility); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return facility, nil
}

func (s *facilityService) DeleteFacility(id string) error {
	if err := s.facilityRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrFacilityNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}
