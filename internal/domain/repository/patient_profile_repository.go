package repository

import (
	"context"

	"careconnect-server/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientProfileRepository interface {
	Create(ctx context.Context, profile *entity.PatientProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error)
}
