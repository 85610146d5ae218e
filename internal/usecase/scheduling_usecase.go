package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"careconnect-server/internal/converter"
	"careconnect-server/internal/delivery/dto"
	"careconnect-server/internal/delivery/http/middleware"
	"careconnect-server/internal/domain/entity"
	"careconnect-server/internal/domain/repository"
	"careconnect-server/internal/service"
	"careconnect-server/pkg/calendar"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingBookingFields = errors.New("provider, date, time, appointment type and consultation type are required")
	ErrInvalidDate          = errors.New("invalid date, use YYYY-MM-DD")
	ErrInvalidSlot          = errors.New("time is not a bookable slot")
	ErrProviderNotFound     = errors.New("provider not found")
	ErrProviderNotOnTeam    = errors.New("provider is not on your healthcare team")
	ErrSchedulingNotAllowed = errors.New("scheduling with this provider is not permitted")
	ErrSlotTaken            = errors.New("this time slot is no longer available")
)

type SchedulingUsecase interface {
	// GetAvailableSlots returns the free slot times for a provider on a
	// calendar day, in template order.
	GetAvailableSlots(ctx context.Context, providerID uuid.UUID, date string) ([]string, error)

	// BookAppointment re-validates the slot and creates a pending
	// appointment for the logged-in patient.
	BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)

	// BookableDates lists the weekdays of a month that are open for
	// booking, with previous/next month navigation.
	BookableDates(year int, month time.Month) *dto.BookableDatesResponse
}

type schedulingUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	userRepo        repository.UserRepository
	teamRepo        repository.HealthcareTeamRepository
	audit           service.AuditService
}

func NewSchedulingUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	teamRepo repository.HealthcareTeamRepository,
	audit service.AuditService,
) SchedulingUsecase {
	return &schedulingUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		teamRepo:        teamRepo,
		audit:           audit,
	}
}

// GetAvailableSlots computes the free slots by subtracting the day's live
// appointments from the fixed template.
//
// A storage failure fails open: the full template is returned with a logged
// warning, because under-restricting availability is less harmful than
// blocking all bookings. The booking path re-checks the slot anyway.
func (u *schedulingUsecase) GetAvailableSlots(ctx context.Context, providerID uuid.UUID, date string) ([]string, error) {
	dayStart, dayEnd, err := entity.DayBounds(date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	appointments, err := u.appointmentRepo.FindActiveInRange(ctx, providerID, dayStart, dayEnd)
	if err != nil {
		u.log.Warnf("Availability lookup failed for provider %s on %s, showing full day: %+v", providerID, date, err)
		return entity.SlotTemplate(), nil
	}

	if len(appointments) == 0 {
		return entity.SlotTemplate(), nil
	}

	taken := make(map[string]struct{}, len(appointments))
	for _, appointment := range appointments {
		taken[entity.SlotOf(appointment.AppointmentDate)] = struct{}{}
	}

	slots := make([]string, 0, len(entity.SlotTemplate()))
	for _, slot := range entity.SlotTemplate() {
		if _, booked := taken[slot]; !booked {
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

// BookAppointment creates a pending appointment for the logged-in patient.
//
// Flow:
//  1. Validate required fields and parse date+time into one timestamp
//  2. Validate the provider exists and is on the patient's active team
//  3. Re-check the slot against the store — availability was computed
//     earlier and another patient may have claimed the slot since
//  4. Insert with status pending; a unique-index violation from a racing
//     insert maps to the same slot-taken error as the explicit check
func (u *schedulingUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	if req.ProviderID == uuid.Nil || req.Date == "" || req.Time == "" ||
		req.AppointmentType == "" || req.ConsultationType == "" {
		return nil, ErrMissingBookingFields
	}

	if !entity.IsTemplateSlot(req.Time) {
		return nil, ErrInvalidSlot
	}

	appointmentDate, err := entity.CombineDateTime(req.Date, req.Time)
	if err != nil {
		return nil, ErrInvalidDate
	}

	// Step 2: provider must exist, hold the provider role, and be on the
	// patient's healthcare team with scheduling permission
	provider, err := u.userRepo.FindByID(ctx, req.ProviderID)
	if err != nil {
		u.log.Warnf("Failed to find provider %s: %+v", req.ProviderID, err)
		return nil, err
	}
	if provider == nil || !provider.IsProvider() {
		return nil, ErrProviderNotFound
	}

	membership, err := u.teamRepo.FindActiveMembership(ctx, patientID, req.ProviderID)
	if err != nil {
		u.log.Warnf("Failed to check team membership: %+v", err)
		return nil, err
	}
	if membership == nil {
		return nil, ErrProviderNotOnTeam
	}
	if !membership.Permissions.ScheduleAppointments {
		return nil, ErrSchedulingNotAllowed
	}

	// Step 3: mandatory conflict re-check. Time has passed since the slots
	// were displayed; a concurrent booking may have claimed this one.
	exists, err := u.appointmentRepo.ExistsActiveAt(ctx, req.ProviderID, appointmentDate)
	if err != nil {
		u.log.Warnf("Failed conflict check for provider %s at %s: %+v", req.ProviderID, appointmentDate, err)
		return nil, err
	}
	if exists {
		return nil, ErrSlotTaken
	}

	appointment := &entity.Appointment{
		PatientID:        patientID,
		ProviderID:       req.ProviderID,
		AppointmentDate:  appointmentDate,
		AppointmentType:  req.AppointmentType,
		ConsultationType: req.ConsultationType,
		Notes:            req.Notes,
		Status:           entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		// Two requests can both pass the check above before either insert
		// lands; the partial unique index catches the loser here.
		if isUniqueViolation(err, "appointments_provider_slot_active") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.audit.Record(ctx, &patientID, entity.AuditActionAppointmentBooked, entity.JSON{
		"appointment_id":   appointment.ID.String(),
		"provider_id":      req.ProviderID.String(),
		"appointment_date": appointmentDate,
	})

	u.log.Infof("Appointment booked: id=%s, patient=%s, provider=%s, at=%s",
		appointment.ID, patientID, req.ProviderID, appointmentDate.Format(time.RFC3339))
	return converter.AppointmentToResponse(appointment), nil
}

func (u *schedulingUsecase) BookableDates(year int, month time.Month) *dto.BookableDatesResponse {
	eligible := calendar.EligibleDates(year, month)

	dates := make([]string, len(eligible))
	for i, d := range eligible {
		dates[i] = d.Format(entity.SlotDateLayout)
	}

	prevYear, prevMonth := calendar.PreviousMonth(year, month)
	nextYear, nextMonth := calendar.NextMonth(year, month)

	return &dto.BookableDatesResponse{
		Year:          year,
		Month:         int(month),
		Dates:         dates,
		PreviousMonth: dto.MonthRef{Year: prevYear, Month: int(prevMonth)},
		NextMonth:     dto.MonthRef{Year: nextYear, Month: int(nextMonth)},
	}
}

// isUniqueViolation checks for a PostgreSQL unique constraint violation on
// the named constraint
func isUniqueViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
