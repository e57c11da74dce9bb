package models

// Activity is an append-only timeline entry attached to an entity.
type Activity struct {
	BaseModel
	EntityType   EntityKind `gorm:"type:varchar(20);not null;index:idx_activities_entity" json:"entity_type"`
	EntityID     string     `gorm:"not null;index:idx_activities_entity" json:"entity_id"`
	ActivityType string     `gorm:"not null" json:"activity_type"`
	Description  string     `gorm:"not null" json:"description"`
	UserID       *string    `gorm:"type:uuid" json:"user_id,omitempty"`
}
