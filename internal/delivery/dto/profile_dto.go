package dto

// Request DTOs

type CompletePatientProfileRequest struct {
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"required,oneof=M F"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Address     string `json:"address" validate:"omitempty"`
}

type CompleteProviderProfileRequest struct {
	Specialization  string `json:"specialization" validate:"required"`
	YearsExperience int    `json:"years_experience" validate:"omitempty,min=0,max=80"`
	Biography       string `json:"biography" validate:"omitempty"`
}

// Response DTOs

type PatientProfileResponse struct {
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Address     string `json:"address,omitempty"`
}

type ProviderProfileResponse struct {
	Specialization  string `json:"specialization"`
	YearsExperience int    `json:"years_experience"`
	Biography       string `json:"biography,omitempty"`
}

// ProfileCompletionResponse reports whether the logged-in user still has to
// finish the profile wizard, and which part is missing.
type ProfileCompletionResponse struct {
	Complete bool   `json:"complete"`
	Role     string `json:"role"`
	Missing  string `json:"missing,omitempty"`
}
