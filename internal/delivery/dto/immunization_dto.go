package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateImmunizationRequest struct {
	Name         string     `json:"name" validate:"required,min=2,max=255"`
	DateReceived string     `json:"date_received" validate:"required,datetime=2006-01-02"`
	NextDueDate  string     `json:"next_due_date" validate:"omitempty,datetime=2006-01-02"`
	ProviderID   *uuid.UUID `json:"provider_id" validate:"omitempty"`
	Notes        string     `json:"notes" validate:"omitempty,max=2000"`
	DocumentURL  string     `json:"document_url" validate:"omitempty,url"`
}

// Response DTOs

type ImmunizationResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	DateReceived string     `json:"date_received"`
	NextDueDate  string     `json:"next_due_date,omitempty"`
	Status       string     `json:"status"`
	ProviderID   *uuid.UUID `json:"provider_id,omitempty"`
	ProviderName string     `json:"provider_name,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	DocumentURL  string     `json:"document_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ImmunizationListResponse struct {
	Immunizations []ImmunizationResponse `json:"immunizations"`
	Total         int                    `json:"total"`
}
