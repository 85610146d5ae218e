package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TeamPermissions is what a provider on the team may see or do for the
// patient. Stored as jsonb.
type TeamPermissions struct {
	ViewRecords          bool `json:"view_records"`
	ScheduleAppointments bool `json:"schedule_appointments"`
	ViewAppointments     bool `json:"view_appointments"`
	ViewImmunizations    bool `json:"view_immunizations"`
}

// DefaultTeamPermissions grants everything; matches what the product assigns
// when a provider is added.
func DefaultTeamPermissions() TeamPermissions {
	return TeamPermissions{
		ViewRecords:          true,
		ScheduleAppointments: true,
		ViewAppointments:     true,
		ViewImmunizations:    true,
	}
}

// Value implements driver.Valuer
func (p TeamPermissions) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner
func (p *TeamPermissions) Scan(value interface{}) error {
	if value == nil {
		*p = TeamPermissions{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("failed to unmarshal jsonb value:", value))
	}
	return json.Unmarshal(bytes, p)
}

// HealthcareTeamMember links a patient to a provider they trust. Team
// membership is the source of bookable providers: patients can only schedule
// with providers on their active team. Removal deactivates the row instead
// of deleting it.
type HealthcareTeamMember struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	ProviderID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"provider_id"`
	RelationshipType string          `gorm:"type:varchar(50);not null;default:'primary'" json:"relationship_type"`
	Permissions      TeamPermissions `gorm:"type:jsonb" json:"permissions"`
	IsActive         *bool           `gorm:"not null;default:true;index" json:"is_active"`
	AddedDate        time.Time       `gorm:"autoCreateTime" json:"added_date"`

	// Relationships
	Provider User `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}

func (HealthcareTeamMember) TableName() string {
	return "healthcare_team"
}
