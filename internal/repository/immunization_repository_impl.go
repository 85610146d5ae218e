package repository

import (
	"context"
	"errors"

	"careconnect-server/internal/domain/entity"
	domainRepo "careconnect-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type immunizationRepository struct {
	db *gorm.DB
}

func NewImmunizationRepository(db *gorm.DB) domainRepo.ImmunizationRepository {
	return &immunizationRepository{db: db}
}

func (r *immunizationRepository) Create(ctx context.Context, record *entity.Immunization) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *immunizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Immunization, error) {
	var record entity.Immunization
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *immunizationRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Immunization, error) {
	var records []entity.Immunization
	err := r.db.WithContext(ctx).
		Preload("Provider").
		Where("patient_id = ?", patientID).
		Order("date_received DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *immunizationRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Immunization{})
	return result.RowsAffected, result.Error
}
