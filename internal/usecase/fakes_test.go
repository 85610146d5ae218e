package usecase

import (
	"context"
	"errors"
	"io"
	"time"

	"careconnect-server/internal/delivery/http/middleware"
	"careconnect-server/internal/domain/entity"
	"careconnect-server/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// errStorage stands in for any database failure in tests.
var errStorage = errors.New("storage unavailable")

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// authedContext builds a request context the way AuthMiddleware does after a
// successful token check.
func authedContext(userID uuid.UUID, role string) context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.UserRoleKey, role)
	ctx = context.WithValue(ctx, middleware.UserEmailKey, "test@example.com")
	ctx = context.WithValue(ctx, middleware.TokenIDKey, uuid.New().String())
	return ctx
}

// fakeAppointmentRepo is an in-memory AppointmentRepository. Setting failAll
// makes every method return errStorage.
type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*entity.Appointment
	failAll      bool
	createErr    error
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uuid.UUID]*entity.Appointment)}
}

func (f *fakeAppointmentRepo) add(a *entity.Appointment) *entity.Appointment {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	f.appointments[a.ID] = a
	return a
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	if f.failAll {
		return errStorage
	}
	if f.createErr != nil {
		return f.createErr
	}
	f.add(appointment)
	return nil
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if f.failAll {
		return nil, errStorage
	}
	a, ok := f.appointments[id]
	if !ok {
		return nil, nil
	}
	clone := *a
	return &clone, nil
}

func (f *fakeAppointmentRepo) FindActiveInRange(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	if f.failAll {
		return nil, errStorage
	}
	var out []entity.Appointment
	for _, a := range f.appointments {
		if a.ProviderID != providerID || !a.Status.Blocks() {
			continue
		}
		if a.AppointmentDate.Before(from) || !a.AppointmentDate.Before(to) {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ExistsActiveAt(ctx context.Context, providerID uuid.UUID, at time.Time) (bool, error) {
	if f.failAll {
		return false, errStorage
	}
	for _, a := range f.appointments {
		if a.ProviderID == providerID && a.Status.Blocks() && a.AppointmentDate.Equal(at) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAppointmentRepo) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	if f.failAll {
		return nil, errStorage
	}
	var out []entity.Appointment
	for _, a := range f.appointments {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]entity.Appointment, error) {
	if f.failAll {
		return nil, errStorage
	}
	var out []entity.Appointment
	for _, a := range f.appointments {
		if a.ProviderID == providerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	if f.failAll {
		return 0, errStorage
	}
	a, ok := f.appointments[id]
	if !ok {
		return 0, nil
	}
	a.Status = status
	return 1, nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) addProvider() *entity.User {
	u := &entity.User{ID: uuid.New(), Role: entity.RoleProvider, FirstName: "Dana", LastName: "Reed"}
	f.users[u.ID] = u
	return u
}

func (f *fakeUserRepo) addPatient() *entity.User {
	u := &entity.User{ID: uuid.New(), Role: entity.RolePatient, FirstName: "Sam", LastName: "Hill"}
	f.users[u.ID] = u
	return u
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

// fakeTeamRepo is an in-memory HealthcareTeamRepository.
type fakeTeamRepo struct {
	members []*entity.HealthcareTeamMember
}

func (f *fakeTeamRepo) addMembership(patientID, providerID uuid.UUID, perms entity.TeamPermissions) {
	active := true
	f.members = append(f.members, &entity.HealthcareTeamMember{
		ID:          uuid.New(),
		PatientID:   patientID,
		ProviderID:  providerID,
		Permissions: perms,
		IsActive:    &active,
	})
}

func (f *fakeTeamRepo) Create(ctx context.Context, member *entity.HealthcareTeamMember) error {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	active := true
	member.IsActive = &active
	f.members = append(f.members, member)
	return nil
}

func (f *fakeTeamRepo) FindActiveByPatient(ctx context.Context, patientID uuid.UUID) ([]entity.HealthcareTeamMember, error) {
	var out []entity.HealthcareTeamMember
	for _, m := range f.members {
		if m.PatientID == patientID && m.IsActive != nil && *m.IsActive {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeTeamRepo) FindActiveMembership(ctx context.Context, patientID, providerID uuid.UUID) (*entity.HealthcareTeamMember, error) {
	for _, m := range f.members {
		if m.PatientID == patientID && m.ProviderID == providerID && m.IsActive != nil && *m.IsActive {
			clone := *m
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeTeamRepo) Deactivate(ctx context.Context, patientID, providerID uuid.UUID) (int64, error) {
	var rows int64
	for _, m := range f.members {
		if m.PatientID == patientID && m.ProviderID == providerID && m.IsActive != nil && *m.IsActive {
			inactive := false
			m.IsActive = &inactive
			rows++
		}
	}
	return rows, nil
}

// fakeAudit records audit calls for assertions.
type fakeAudit struct {
	actions []string
}

func (f *fakeAudit) Record(ctx context.Context, userID *uuid.UUID, action string, metadata entity.JSON) {
	f.actions = append(f.actions, action)
}

var _ service.AuditService = (*fakeAudit)(nil)
