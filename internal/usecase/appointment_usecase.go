package usecase

import (
	"context"
	"errors"

	"careconnect-server/internal/converter"
	"careconnect-server/internal/delivery/dto"
	"careconnect-server/internal/delivery/http/middleware"
	"careconnect-server/internal/domain/entity"
	"careconnect-server/internal/domain/repository"
	"careconnect-server/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrUnknownStatus          = errors.New("unknown appointment status")
	ErrInvalidTransition      = errors.New("status change is not permitted from the current status")
	ErrNotAppointmentActor    = errors.New("you are not allowed to perform this status change")
	ErrAppointmentNotUpcoming = errors.New("the appointment time has already passed")
)

type AppointmentUsecase interface {
	// ListForCurrentUser returns the logged-in user's appointments, as
	// patient or provider depending on their role.
	ListForCurrentUser(ctx context.Context) (*dto.AppointmentListResponse, error)

	// GetByID returns one appointment the current user participates in.
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)

	// UpdateStatus applies one permitted lifecycle transition.
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	audit           service.AuditService
}

func NewAppointmentUsecase(log *logrus.Logger, appointmentRepo repository.AppointmentRepository, audit service.AuditService) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		audit:           audit,
	}
}

func (u *appointmentUsecase) ListForCurrentUser(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	role, _ := middleware.GetUserRoleFromContext(ctx)

	var (
		appointments []entity.Appointment
		err          error
	)
	if role == entity.RoleProvider {
		appointments, err = u.appointmentRepo.FindByProviderID(ctx, userID)
	} else {
		appointments, err = u.appointmentRepo.FindByPatientID(ctx, userID)
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	// Participants only; everyone else sees not found rather than forbidden
	if appointment.PatientID != userID && appointment.ProviderID != userID {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateStatus applies a lifecycle transition. The permitted changes, the
// role that may trigger each one, and whether the appointment must still be
// upcoming all come from the entity.Transitions table.
//
// Ordering of checks matters for the errors callers see: existence, then
// status validity, then transition legality, then actor, then timing.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	role, _ := middleware.GetUserRoleFromContext(ctx)

	target := entity.AppointmentStatus(req.Status)
	if !target.Valid() {
		return nil, ErrUnknownStatus
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.PatientID != userID && appointment.ProviderID != userID {
		return nil, ErrAppointmentNotFound
	}

	transition, allowed := entity.FindTransition(appointment.Status, target)
	if !allowed {
		return nil, ErrInvalidTransition
	}
	if role != transition.Actor {
		return nil, ErrNotAppointmentActor
	}
	// The actor must also be the matching participant, not just hold the role
	if transition.Actor == entity.RolePatient && appointment.PatientID != userID {
		return nil, ErrNotAppointmentActor
	}
	if transition.Actor == entity.RoleProvider && appointment.ProviderID != userID {
		return nil, ErrNotAppointmentActor
	}
	if transition.RequiresUpcoming && !appointment.IsUpcoming() {
		return nil, ErrAppointmentNotUpcoming
	}

	rows, err := u.appointmentRepo.UpdateStatus(ctx, id, target)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s status: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAppointmentNotFound
	}

	previous := appointment.Status
	appointment.Status = target

	u.audit.Record(ctx, &userID, entity.AuditActionAppointmentStatus, entity.JSON{
		"appointment_id": id.String(),
		"from":           string(previous),
		"to":             string(target),
	})

	u.log.Infof("Appointment %s status changed: %s -> %s by %s", id, previous, target, userID)
	return converter.AppointmentToResponse(appointment), nil
}
