package repository

import (
	"context"
	"errors"

	"careconnect-server/internal/domain/entity"
	domainRepo "careconnect-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type healthcareTeamRepository struct {
	db *gorm.DB
}

func NewHealthcareTeamRepository(db *gorm.DB) domainRepo.HealthcareTeamRepository {
	return &healthcareTeamRepository{db: db}
}

func (r *healthcareTeamRepository) Create(ctx context.Context, member *entity.HealthcareTeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *healthcareTeamRepository) FindActiveByPatient(ctx context.Context, patientID uuid.UUID) ([]entity.HealthcareTeamMember, error) {
	var members []entity.HealthcareTeamMember
	err := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("Provider.ProviderProfile").
		Where("patient_id = ? AND is_active = ?", patientID, true).
		Order("added_date DESC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *healthcareTeamRepository) FindActiveMembership(ctx context.Context, patientID, providerID uuid.UUID) (*entity.HealthcareTeamMember, error) {
	var member entity.HealthcareTeamMember
	err := r.db.WithContext(ctx).
		Where("patient_id = ? AND provider_id = ? AND is_active = ?", patientID, providerID, true).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *healthcareTeamRepository) Deactivate(ctx context.Context, patientID, providerID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.HealthcareTeamMember{}).
		Where("patient_id = ? AND provider_id = ? AND is_active = ?", patientID, providerID, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
