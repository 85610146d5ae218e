package repository

import (
	"context"

	"careconnect-server/internal/domain/entity"

	"github.com/google/uuid"
)

type HealthcareTeamRepository interface {
	Create(ctx context.Context, member *entity.HealthcareTeamMember) error
	FindActiveByPatient(ctx context.Context, patientID uuid.UUID) ([]entity.HealthcareTeamMember, error)
	FindActiveMembership(ctx context.Context, patientID, providerID uuid.UUID) (*entity.HealthcareTeamMember, error)

	// Deactivate clears is_active on the membership and returns affected rows.
	Deactivate(ctx context.Context, patientID, providerID uuid.UUID) (int64, error)
}
