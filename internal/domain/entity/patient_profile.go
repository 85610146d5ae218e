package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile holds patient-specific profile data. The row is created by
// the profile completion flow, not at registration, so a user may exist
// without one.
type PatientProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender      string    `gorm:"type:char(1);not null" json:"gender"`
	PhoneNumber string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Address     string    `gorm:"type:text" json:"address,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
