package repository

import (
	"context"
	"errors"

	"careconnect-server/internal/domain/entity"
	domainRepo "careconnect-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientProfileRepository struct {
	db *gorm.DB
}

func NewPatientProfileRepository(db *gorm.DB) domainRepo.PatientProfileRepository {
	return &patientProfileRepository{db: db}
}

func (r *patientProfileRepository) Create(ctx context.Context, profile *entity.PatientProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *patientProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

type providerProfileRepository struct {
	db *gorm.DB
}

func NewProviderProfileRepository(db *gorm.DB) domainRepo.ProviderProfileRepository {
	return &providerProfileRepository{db: db}
}

func (r *providerProfileRepository) Create(ctx context.Context, profile *entity.ProviderProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *providerProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ProviderProfile, error) {
	var profile entity.ProviderProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
