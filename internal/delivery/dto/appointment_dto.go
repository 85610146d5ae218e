package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	ProviderID       uuid.UUID `json:"provider_id" validate:"required"`
	Date             string    `json:"date" validate:"required,datetime=2006-01-02"`
	Time             string    `json:"time" validate:"required"`
	AppointmentType  string    `json:"appointment_type" validate:"required,oneof='Initial Consultation' 'Follow-up' 'Physical Therapy' 'Assessment' 'Treatment' 'Review'"`
	ConsultationType string    `json:"consultation_type" validate:"required,oneof=In-person Virtual"`
	Notes            string    `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted declined cancelled completed"`
}

// Response DTOs

type AppointmentResponse struct {
	ID               uuid.UUID `json:"id"`
	PatientID        uuid.UUID `json:"patient_id"`
	ProviderID       uuid.UUID `json:"provider_id"`
	PatientName      string    `json:"patient_name,omitempty"`
	ProviderName     string    `json:"provider_name,omitempty"`
	AppointmentDate  time.Time `json:"appointment_date"`
	AppointmentType  string    `json:"appointment_type"`
	ConsultationType string    `json:"consultation_type"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
