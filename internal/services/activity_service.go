package services

import (
	"mccare_backend/internal/models"
	"mccare_backend/internal/repositories"
	"mccare_backend/internal/services/dto"
	"mccare_backend/pkg/apperrors"
)

type ActivityService interface {
	RecordActivity(req *dto.CreateActivityRequest) (*models.Activity, error)
	GetEntityActivities(entityType models.EntityKind, entityID string) ([]models.Activity, error)
	GetRecentActivities(limit int) ([]models.Activity, error)
}

type activityService struct {
	activityRepo repositories.ActivityRepository
}

func NewActivityService(activityRepo repositories.ActivityRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

func (s *activityService) RecordActivity(req *dto.CreateActivityRequest) (*models.Activity, error) {
	activity := &models.Activity{
		EntityType:   models.EntityKind(req.EntityType),
		EntityID:     req.EntityID,
		ActivityType: req.ActivityType,
		Description:  req.Description,
	}
	if req.UserID != "" {
		userID := req.UserID
		activity.UserID = &userID
	}

	if err := s.activityRepo.Create(activity); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return activity, nil
}

func (s *activityService) GetEntityActivities(entityType models.EntityKind, entityID string) ([]models.Activity, error) {
	activities, err := s.activityRepo.FindByEntity(entityType, entityID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return activities, nil
}

func (s *activityService) GetRecentActivities(limit int) ([]models.Activity, error) {
	activities, err := s.activityRepo.FindRecent(limit)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return activities, nil
}
