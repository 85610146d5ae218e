package converter

import (
	"careconnect-server/internal/delivery/dto"
	"careconnect-server/internal/domain/entity"
)

// UserToResponse converts a User entity to its response DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.PatientProfile != nil {
		response.PatientProfile = PatientProfileToResponse(user.PatientProfile)
	}
	if user.ProviderProfile != nil {
		response.ProviderProfile = ProviderProfileToResponse(user.ProviderProfile)
	}

	return response
}

// PatientProfileToResponse converts a PatientProfile entity
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	if profile == nil {
		return nil
	}
	return &dto.PatientProfileResponse{
		DateOfBirth: profile.DateOfBirth.Format(entity.SlotDateLayout),
		Gender:      profile.Gender,
		PhoneNumber: profile.PhoneNumber,
		Address:     profile.Address,
	}
}

// ProviderProfileToResponse converts a ProviderProfile entity
func ProviderProfileToResponse(profile *entity.ProviderProfile) *dto.ProviderProfileResponse {
	if profile == nil {
		return nil
	}
	return &dto.ProviderProfileResponse{
		Specialization:  profile.Specialization,
		YearsExperience: profile.YearsExperience,
		Biography:       profile.Biography,
	}
}
