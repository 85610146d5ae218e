package usecase

import (
	"context"
	"errors"
	"time"

	"careconnect-server/internal/converter"
	"careconnect-server/internal/delivery/dto"
	"careconnect-server/internal/delivery/http/middleware"
	"careconnect-server/internal/domain/entity"
	"careconnect-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrProfileExists   = errors.New("profile is already complete")
	ErrWrongRole       = errors.New("this profile type does not match your role")
	ErrInvalidBirthday = errors.New("invalid date of birth")
)

type ProfileUsecase interface {
	// CompletionStatus reports whether the logged-in user still needs to
	// finish the profile wizard.
	CompletionStatus(ctx context.Context) (*dto.ProfileCompletionResponse, error)

	CompletePatientProfile(ctx context.Context, req *dto.CompletePatientProfileRequest) (*dto.PatientProfileResponse, error)
	CompleteProviderProfile(ctx context.Context, req *dto.CompleteProviderProfileRequest) (*dto.ProviderProfileResponse, error)
}

type profileUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	patientRepo  repository.PatientProfileRepository
	providerRepo repository.ProviderProfileRepository
}

func NewProfileUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientProfileRepository,
	providerRepo repository.ProviderProfileRepository,
) ProfileUsecase {
	return &profileUsecase{
		log:          log,
		userRepo:     userRepo,
		patientRepo:  patientRepo,
		providerRepo: providerRepo,
	}
}

// CompletionStatus checks for the role-specific profile row. Accounts are
// created without one, so a fresh login lands on the completion wizard until
// this returns complete.
func (u *profileUsecase) CompletionStatus(ctx context.Context) (*dto.ProfileCompletionResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	role, _ := middleware.GetUserRoleFromContext(ctx)

	response := &dto.ProfileCompletionResponse{Role: role}

	switch role {
	case entity.RolePatient:
		profile, err := u.patientRepo.FindByUserID(ctx, userID)
		if err != nil {
			u.log.Warnf("Failed to check patient profile for %s: %+v", userID, err)
			return nil, err
		}
		if profile == nil {
			response.Missing = "patient_profile"
			return response, nil
		}
	case entity.RoleProvider:
		profile, err := u.providerRepo.FindByUserID(ctx, userID)
		if err != nil {
			u.log.Warnf("Failed to check provider profile for %s: %+v", userID, err)
			return nil, err
		}
		if profile == nil {
			response.Missing = "provider_profile"
			return response, nil
		}
	default:
		return nil, ErrUserNotFound
	}

	response.Complete = true
	return response, nil
}

func (u *profileUsecase) CompletePatientProfile(ctx context.Context, req *dto.CompletePatientProfileRequest) (*dto.PatientProfileResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	role, _ := middleware.GetUserRoleFromContext(ctx)
	if role != entity.RolePatient {
		return nil, ErrWrongRole
	}

	existing, err := u.patientRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to check patient profile for %s: %+v", userID, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExists
	}

	dateOfBirth, err := time.ParseInLocation(entity.SlotDateLayout, req.DateOfBirth, time.Local)
	if err != nil || dateOfBirth.After(time.Now()) {
		return nil, ErrInvalidBirthday
	}

	profile := &entity.PatientProfile{
		UserID:      userID,
		DateOfBirth: dateOfBirth,
		Gender:      req.Gender,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}

	if err := u.patientRepo.Create(ctx, profile); err != nil {
		u.log.Warnf("Failed to create patient profile for %s: %+v", userID, err)
		return nil, err
	}

	u.log.Infof("Patient profile completed: user=%s", userID)
	return converter.PatientProfileToResponse(profile), nil
}

func (u *profileUsecase) CompleteProviderProfile(ctx context.Context, req *dto.CompleteProviderProfileRequest) (*dto.ProviderProfileResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	role, _ := middleware.GetUserRoleFromContext(ctx)
	if role != entity.RoleProvider {
		return nil, ErrWrongRole
	}

	existing, err := u.providerRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to check provider profile for %s: %+v", userID, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExists
	}

	profile := &entity.ProviderProfile{
		UserID:          userID,
		Specialization:  req.Specialization,
		YearsExperience: req.YearsExperience,
		Biography:       req.Biography,
	}

	if err := u.providerRepo.Create(ctx, profile); err != nil {
		u.log.Warnf("Failed to create provider profile for %s: %+v", userID, err)
		return nil, err
	}

	u.log.Infof("Provider profile completed: user=%s", userID)
	return converter.ProviderProfileToResponse(profile), nil
}
