package repository

import (
	"context"
	"time"

	"careconnect-server/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentRepository is the appointment store. "Active" everywhere means
// status not in {cancelled, declined} — the statuses that keep a slot
// blocked.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)

	// FindActiveInRange returns active appointments for a provider with
	// appointment_date in [from, to), ordered by date ascending.
	FindActiveInRange(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]entity.Appointment, error)

	// ExistsActiveAt checks for an active appointment at the exact timestamp.
	ExistsActiveAt(ctx context.Context, providerID uuid.UUID, at time.Time) (bool, error)

	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]entity.Appointment, error)

	// UpdateStatus sets the status of one appointment and returns affected
	// rows (0 = no such appointment).
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) (int64, error)
}
