package repository

import (
	"context"

	"careconnect-server/internal/domain/entity"

	"github.com/google/uuid"
)

type ProviderProfileRepository interface {
	Create(ctx context.Context, profile *entity.ProviderProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ProviderProfile, error)
}
