package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusAccepted  AppointmentStatus = "accepted"
	AppointmentStatusDeclined  AppointmentStatus = "declined"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Valid reports whether s is one of the known statuses
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusAccepted, AppointmentStatusDeclined,
		AppointmentStatusCancelled, AppointmentStatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted from s
func (s AppointmentStatus) IsTerminal() bool {
	switch s {
	case AppointmentStatusDeclined, AppointmentStatusCancelled, AppointmentStatusCompleted:
		return true
	}
	return false
}

// Blocks reports whether an appointment in this status keeps its slot
// unavailable. Cancelled and declined appointments free the slot.
func (s AppointmentStatus) Blocks() bool {
	return s != AppointmentStatusCancelled && s != AppointmentStatusDeclined
}

// Appointment types offered at booking time
var AppointmentTypes = []string{
	"Initial Consultation",
	"Follow-up",
	"Physical Therapy",
	"Assessment",
	"Treatment",
	"Review",
}

// Consultation type constants
const (
	ConsultationInPerson = "In-person"
	ConsultationVirtual  = "Virtual"
)

// Transition is one permitted status change and who may trigger it.
type Transition struct {
	From             AppointmentStatus
	To               AppointmentStatus
	Actor            string // user role allowed to trigger the change
	RequiresUpcoming bool   // appointment date must still be in the future
}

// Transitions is the complete set of permitted status changes. Anything not
// listed here is rejected.
//
// TODO: completing requires the appointment to still be upcoming, same as
// cancelling. That mirrors the current product behavior, but completion
// should arguably be allowed once the scheduled time has passed.
var Transitions = []Transition{
	{From: AppointmentStatusPending, To: AppointmentStatusAccepted, Actor: RoleProvider},
	{From: AppointmentStatusPending, To: AppointmentStatusDeclined, Actor: RoleProvider},
	{From: AppointmentStatusAccepted, To: AppointmentStatusCancelled, Actor: RolePatient, RequiresUpcoming: true},
	{From: AppointmentStatusAccepted, To: AppointmentStatusCompleted, Actor: RoleProvider, RequiresUpcoming: true},
}

// FindTransition looks up the rule for a from→to pair.
func FindTransition(from, to AppointmentStatus) (Transition, bool) {
	for _, t := range Transitions {
		if t.From == from && t.To == to {
			return t, true
		}
	}
	return Transition{}, false
}

// Appointment represents one scheduled interaction between exactly one
// patient and one provider. Rows are never deleted; cancellation and decline
// are status changes.
type Appointment struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	ProviderID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"provider_id"`
	AppointmentDate  time.Time         `gorm:"not null;index" json:"appointment_date"`
	AppointmentType  string            `gorm:"type:varchar(50);not null" json:"appointment_type"`
	ConsultationType string            `gorm:"type:varchar(20);not null" json:"consultation_type"`
	Status           AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Notes            string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient  User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Provider User `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsUpcoming checks if the appointment date is still in the future
func (a *Appointment) IsUpcoming() bool {
	return a.AppointmentDate.After(time.Now())
}

// IsPending checks if the appointment awaits a provider decision
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}
