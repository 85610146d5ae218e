package repository

import (
	"context"

	"careconnect-server/internal/domain/entity"

	"github.com/google/uuid"
)

type ImmunizationRepository interface {
	Create(ctx context.Context, record *entity.Immunization) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Immunization, error)
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Immunization, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
