package models

import "gorm.io/datatypes"

// Notification is an in-app alert addressed to one or more users.
// ReadBy tracks per-user read state.
type Notification struct {
	BaseModel
	Type       string                      `gorm:"not null" json:"type"` // "new_lead", "expiring_credential", "expired_credential"
	Title      string                      `gorm:"not null" json:"title"`
	Message    string                      `json:"message"`
	UserIDs    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"user_ids"`
	EntityType EntityKind                  `gorm:"type:varchar(20)" json:"entity_type,omitempty"`
	EntityID   string                      `json:"entity_id,omitempty"`
	Priority   NotificationPriority        `gorm:"type:varchar(10);default:'normal'" json:"priority"`
	Metadata   datatypes.JSONMap           `gorm:"type:jsonb" json:"metadata,omitempty"`
	ReadBy     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"read_by"`
}

// IsReadBy reports whether the given user has read the notification.
func (n *Notification) IsReadBy(userID string) bool {
	for _, id := range n.ReadBy {
		if id == userID {
			return true
		}
	}
	return false
}
