package usecase

import (
	"errors"
	"testing"
	"time"

	"careconnect-server/internal/delivery/dto"
	"careconnect-server/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

func newSchedulingFixture() (*schedulingUsecase, *fakeAppointmentRepo, *fakeUserRepo, *fakeTeamRepo, *fakeAudit) {
	appointments := newFakeAppointmentRepo()
	users := newFakeUserRepo()
	team := &fakeTeamRepo{}
	audit := &fakeAudit{}
	u := NewSchedulingUsecase(testLogger(), appointments, users, team, audit).(*schedulingUsecase)
	return u, appointments, users, team, audit
}

func mustCombine(t *testing.T, date, slot string) time.Time {
	t.Helper()
	at, err := entity.CombineDateTime(date, slot)
	if err != nil {
		t.Fatalf("combine %s %s: %v", date, slot, err)
	}
	return at
}

func TestGetAvailableSlotsEmptyDay(t *testing.T) {
	u, _, users, _, _ := newSchedulingFixture()
	provider := users.addProvider()

	slots, err := u.GetAvailableSlots(authedContext(uuid.New(), entity.RolePatient), provider.ID, "2026-09-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 8 {
		t.Errorf("expected full template on an empty day, got %v", slots)
	}
}

func TestGetAvailableSlotsSubtractsActiveAppointments(t *testing.T) {
	u, appointments, users, _, _ := newSchedulingFixture()
	provider := users.addProvider()

	appointments.add(&entity.Appointment{
		ProviderID:      provider.ID,
		PatientID:       uuid.New(),
		AppointmentDate: mustCombine(t, "2026-09-14", "10:00"),
		Status:          entity.AppointmentStatusAccepted,
	})
	appointments.add(&entity.Appointment{
		ProviderID:      provider.ID,
		PatientID:       uuid.New(),
		AppointmentDate: mustCombine(t, "2026-09-14", "14:00"),
		Status:          entity.AppointmentStatusPending,
	})
	// cancelled bookings free their slot
	appointments.add(&entity.Appointment{
		ProviderID:      provider.ID,
		PatientID:       uuid.New(),
		AppointmentDate: mustCombine(t, "2026-09-14", "11:00"),
		Status:          entity.AppointmentStatusCancelled,
	})
	// other days do not leak in
	appointments.add(&entity.Appointment{
		ProviderID:      provider.ID,
		PatientID:       uuid.New(),
		AppointmentDate: mustCombine(t, "2026-09-15", "09:00"),
		Status:          entity.AppointmentStatusAccepted,
	})

	slots, err := u.GetAvailableSlots(authedContext(uuid.New(), entity.RolePatient), provider.ID, "2026-09-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 6 {
		t.Fatalf("expected 6 free slots, got %v", slots)
	}
	for _, s := range slots {
		if s == "10:00" || s == "14:00" {
			t.Errorf("booked slot %s should not be available", s)
		}
	}
	if slots[0] != "09:00" {
		t.Errorf("slots must keep template order, got %v", slots)
	}
}

func TestGetAvailableSlotsFailsOpen(t *testing.T) {
	u, appointments, users, _, _ := newSchedulingFixture()
	provider := users.addProvider()
	appointments.failAll = true

	slots, err := u.GetAvailableSlots(authedContext(uuid.New(), entity.RolePatient), provider.ID, "2026-09-14")
	if err != nil {
		t.Fatalf("storage failure must not surface: %v", err)
	}
	if len(slots) != 8 {
		t.Errorf("expected full template on storage failure, got %v", slots)
	}
}

func TestGetAvailableSlotsRejectsBadDate(t *testing.T) {
	u, _, users, _, _ := newSchedulingFixture()
	provider := users.addProvider()

	if _, err := u.GetAvailableSlots(authedContext(uuid.New(), entity.RolePatient), provider.ID, "14/09/2026"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func bookingRequest(providerID uuid.UUID) *dto.BookAppointmentRequest {
	return &dto.BookAppointmentRequest{
		ProviderID:       providerID,
		Date:             "2026-09-14",
		Time:             "10:00",
		AppointmentType:  "Follow-up",
		ConsultationType: entity.ConsultationInPerson,
	}
}

func TestBookAppointmentHappyPath(t *testing.T) {
	u, appointments, users, team, audit := newSchedulingFixture()
	provider := users.addProvider()
	patient := users.addPatient()
	team.addMembership(patient.ID, provider.ID, entity.DefaultTeamPermissions())

	got, err := u.BookAppointment(authedContext(patient.ID, entity.RolePatient), bookingRequest(provider.ID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != string(entity.AppointmentStatusPending) {
		t.Errorf("new appointments start pending, got %s", got.Status)
	}
	if got.PatientID != patient.ID || got.ProviderID != provider.ID {
		t.Error("participants not recorded")
	}
	if len(appointments.appointments) != 1 {
		t.Errorf("expected 1 stored appointment, got %d", len(appointments.appointments))
	}
	if len(audit.actions) != 1 || audit.actions[0] != entity.AuditActionAppointmentBooked {
		t.Errorf("expected booking audit entry, got %v", audit.actions)
	}
}

func TestBookAppointmentSlotAlreadyTaken(t *testing.T) {
	u, appointments, users, team, _ := newSchedulingFixture()
	provider := users.addProvider()
	patient := users.addPatient()
	team.addMembership(patient.ID, provider.ID, entity.DefaultTeamPermissions())

	appointments.add(&entity.Appointment{
		ProviderID:      provider.ID,
		PatientID:       uuid.New(),
		AppointmentDate: mustCombine(t, "2026-09-14", "10:00"),
		Status:          entity.AppointmentStatusAccepted,
	})

	if _, err := u.BookAppointment(authedContext(patient.ID, entity.RolePatient), bookingRequest(provider.ID)); !errors.Is(err, ErrSlotTaken) {
		t.Errorf("expected ErrSlotTaken, got %v", err)
	}
}

func TestBookAppointmentFreedSlotIsBookable(t *testing.T) {
	u, appointments, users, team, _ := newSchedulingFixture()
	provider := users.addProvider()
	patient := users.addPatient()
	team.addMembership(patient.ID, provider.ID, entity.DefaultTeamPermissions())

	appointments.add(&entity.Appointment{
		ProviderID:      provider.ID,
		PatientID:       uuid.New(),
		AppointmentDate: mustCombine(t, "2026-09-14", "10:00"),
		Status:          entity.AppointmentStatusCancelled,
	})

	if _, err := u.BookAppointment(authedContext(patient.ID, entity.RolePatient), bookingRequest(provider.ID)); err != nil {
		t.Errorf("cancelled appointment must free its slot: %v", err)
	}
}

func TestBookAppointmentRaceLoserMapsUniqueViolation(t *testing.T) {
	u, appointments, users, team, _ := newSchedulingFixture()
	provider := users.addProvider()
	patient := users.addPatient()
	team.addMembership(patient.ID, provider.ID, entity.DefaultTeamPermissions())

	// The explicit check passes but the insert collides, as happens when two
	// requests race between check and insert.
	appointments.createErr = &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "appointments_provider_slot_active",
	}

	if _, err := u.BookAppointment(authedContext(patient.ID, entity.RolePatient), bookingRequest(provider.ID)); !errors.Is(err, ErrSlotTaken) {
		t.Errorf("expected ErrSlotTaken, got %v", err)
	}
}

func TestBookAppointmentValidation(t *testing.T) {
	u, _, users, team, _ := newSchedulingFixture()
	provider := users.addProvider()
	patient := users.addPatient()
	team.addMembership(patient.ID, provider.ID, entity.DefaultTeamPermissions())
	ctx := authedContext(patient.ID, entity.RolePatient)

	tests := []struct {
		name    string
		mutate  func(*dto.BookAppointmentRequest)
		wantErr error
	}{
		{"missing time", func(r *dto.BookAppointmentRequest) { r.Time = "" }, ErrMissingBookingFields},
		{"missing type", func(r *dto.BookAppointmentRequest) { r.AppointmentType = "" }, ErrMissingBookingFields},
		{"off grid slot", func(r *dto.BookAppointmentRequest) { r.Time = "09:30" }, ErrInvalidSlot},
		{"before opening", func(r *dto.BookAppointmentRequest) { r.Time = "08:00" }, ErrInvalidSlot},
		{"bad date", func(r *dto.BookAppointmentRequest) { r.Date = "2026-13-40" }, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := bookingRequest(provider.ID)
			tt.mutate(req)
			if _, err := u.BookAppointment(ctx, req); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestBookAppointmentTeamGate(t *testing.T) {
	u, _, users, team, _ := newSchedulingFixture()
	provider := users.addProvider()
	patient := users.addPatient()
	ctx := authedContext(patient.ID, entity.RolePatient)

	// not on team at all
	if _, err := u.BookAppointment(ctx, bookingRequest(provider.ID)); !errors.Is(err, ErrProviderNotOnTeam) {
		t.Errorf("expected ErrProviderNotOnTeam, got %v", err)
	}

	// on team but scheduling permission withheld
	perms := entity.DefaultTeamPermissions()
	perms.ScheduleAppointments = false
	team.addMembership(patient.ID, provider.ID, perms)

	if _, err := u.BookAppointment(ctx, bookingRequest(provider.ID)); !errors.Is(err, ErrSchedulingNotAllowed) {
		t.Errorf("expected ErrSchedulingNotAllowed, got %v", err)
	}
}

func TestBookAppointmentUnknownProvider(t *testing.T) {
	u, _, users, _, _ := newSchedulingFixture()
	patient := users.addPatient()

	if _, err := u.BookAppointment(authedContext(patient.ID, entity.RolePatient), bookingRequest(uuid.New())); !errors.Is(err, ErrProviderNotFound) {
		t.Errorf("expected ErrProviderNotFound, got %v", err)
	}

	// a patient id is not a provider id
	other := users.addPatient()
	if _, err := u.BookAppointment(authedContext(patient.ID, entity.RolePatient), bookingRequest(other.ID)); !errors.Is(err, ErrProviderNotFound) {
		t.Errorf("expected ErrProviderNotFound for non-provider target, got %v", err)
	}
}

func TestBookableDates(t *testing.T) {
	u, _, _, _, _ := newSchedulingFixture()

	// a month far in the future is returned in full
	future := time.Now().AddDate(1, 0, 0)
	resp := u.BookableDates(future.Year(), future.Month())

	if len(resp.Dates) == 0 {
		t.Fatal("expected dates for a future month")
	}
	if resp.Year != future.Year() || resp.Month != int(future.Month()) {
		t.Errorf("month echo mismatch: %d-%d", resp.Year, resp.Month)
	}

	prev := resp.PreviousMonth
	next := resp.NextMonth
	if prev.Year == 0 || next.Year == 0 {
		t.Error("navigation refs must be populated")
	}
	if prev.Month < 1 || prev.Month > 12 || next.Month < 1 || next.Month > 12 {
		t.Errorf("navigation months out of range: prev=%d next=%d", prev.Month, next.Month)
	}
}
