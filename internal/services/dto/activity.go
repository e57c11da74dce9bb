package dto

type CreateActivityRequest struct {
	EntityType   string `json:"entity_type" validate:"required"`
	EntityID     string `json:"entity_id" validate:"required"`
	ActivityType string `json:"activity_type" validate:"required"`
	Description  string `json:"description" validate:"required"`
	UserID       string `json:"user_id"`
}
