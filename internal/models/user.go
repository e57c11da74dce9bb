package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	FirstName    string   `gorm:"not null" json:"first_name"`
	LastName     string   `gorm:"not null" json:"last_name"`
	Role         UserRole `gorm:"type:varchar(30);not null;default:'Nurse'" json:"role"`
}
