package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type AddTeamMemberRequest struct {
	ProviderID       uuid.UUID `json:"provider_id" validate:"required"`
	RelationshipType string    `json:"relationship_type" validate:"omitempty,oneof=primary specialist therapist other"`
}

// Response DTOs

type TeamPermissionsResponse struct {
	ViewRecords          bool `json:"view_records"`
	ScheduleAppointments bool `json:"schedule_appointments"`
	ViewAppointments     bool `json:"view_appointments"`
	ViewImmunizations    bool `json:"view_immunizations"`
}

type TeamMemberResponse struct {
	ID               uuid.UUID               `json:"id"`
	ProviderID       uuid.UUID               `json:"provider_id"`
	ProviderName     string                  `json:"provider_name,omitempty"`
	Specialization   string                  `json:"specialization,omitempty"`
	RelationshipType string                  `json:"relationship_type"`
	Permissions      TeamPermissionsResponse `json:"permissions"`
	AddedDate        time.Time               `json:"added_date"`
}

type TeamListResponse struct {
	Members []TeamMemberResponse `json:"members"`
	Total   int                  `json:"total"`
}
