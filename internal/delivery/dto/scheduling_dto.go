package dto

import "github.com/google/uuid"

// Response DTOs

type AvailableSlotsResponse struct {
	ProviderID uuid.UUID `json:"provider_id"`
	Date       string    `json:"date"`
	Slots      []string  `json:"slots"`
}

// MonthRef identifies a calendar month for navigation.
type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type BookableDatesResponse struct {
	Year          int      `json:"year"`
	Month         int      `json:"month"`
	Dates         []string `json:"dates"`
	PreviousMonth MonthRef `json:"previous_month"`
	NextMonth     MonthRef `json:"next_month"`
}
