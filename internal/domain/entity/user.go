package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the centralized account table. A user is either a patient or a
// provider; the role never changes after registration.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Role      string    `gorm:"type:varchar(20);not null;index" json:"role"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"last_name"`
	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	PatientProfile  *PatientProfile  `gorm:"foreignKey:UserID" json:"patient_profile,omitempty"`
	ProviderProfile *ProviderProfile `gorm:"foreignKey:UserID" json:"provider_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Role constants
const (
	RolePatient  = "patient"
	RoleProvider = "provider"
)

// IsProvider checks if the user holds the provider role
func (u *User) IsProvider() bool {
	return u.Role == RoleProvider
}

// IsPatient checks if the user holds the patient role
func (u *User) IsPatient() bool {
	return u.Role == RolePatient
}

// FullName returns the display name used in listings
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
