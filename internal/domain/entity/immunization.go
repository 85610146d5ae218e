package entity

import (
	"time"

	"github.com/google/uuid"
)

// ImmunizationStatus classifies a record against its next due date
type ImmunizationStatus string

const (
	ImmunizationUpToDate ImmunizationStatus = "up_to_date"
	ImmunizationDue      ImmunizationStatus = "due"
	ImmunizationOverdue  ImmunizationStatus = "overdue"
)

// immunizationDueWindow is how far ahead of the next due date a record is
// reported as due.
const immunizationDueWindow = 30 * 24 * time.Hour

// ImmunizationStatusAt derives the record status from its next due date.
// Records with no next dose are always up to date.
func ImmunizationStatusAt(nextDue *time.Time, now time.Time) ImmunizationStatus {
	if nextDue == nil {
		return ImmunizationUpToDate
	}
	if nextDue.Before(now) {
		return ImmunizationOverdue
	}
	if nextDue.Sub(now) <= immunizationDueWindow {
		return ImmunizationDue
	}
	return ImmunizationUpToDate
}

// Immunization is one vaccination record owned by a patient. The document,
// if any, lives in external storage; only its URL is kept here.
type Immunization struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"patient_id"`
	ProviderID   *uuid.UUID         `gorm:"type:uuid;index" json:"provider_id,omitempty"`
	Name         string             `gorm:"type:varchar(255);not null" json:"name"`
	DateReceived time.Time          `gorm:"type:date;not null" json:"date_received"`
	NextDueDate  *time.Time         `gorm:"type:date" json:"next_due_date,omitempty"`
	Status       ImmunizationStatus `gorm:"type:varchar(20);not null;default:'up_to_date'" json:"status"`
	Notes        string             `gorm:"type:text" json:"notes,omitempty"`
	DocumentURL  string             `gorm:"type:text" json:"document_url,omitempty"`
	CreatedAt    time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Provider *User `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}

func (Immunization) TableName() string {
	return "immunizations"
}
