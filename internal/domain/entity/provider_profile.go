package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderProfile holds provider-specific profile data, created by the
// profile completion flow.
type ProviderProfile struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization  string    `gorm:"type:varchar(100);not null" json:"specialization"`
	YearsExperience int       `gorm:"not null;default:0" json:"years_experience"`
	Biography       string    `gorm:"type:text" json:"biography,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ProviderProfile) TableName() string {
	return "provider_profiles"
}
