package usecase

import (
	"errors"
	"testing"
	"time"

	"careconnect-server/internal/delivery/dto"
	"careconnect-server/internal/domain/entity"

	"github.com/google/uuid"
)

func newAppointmentFixture() (*appointmentUsecase, *fakeAppointmentRepo, *fakeAudit) {
	appointments := newFakeAppointmentRepo()
	audit := &fakeAudit{}
	u := NewAppointmentUsecase(testLogger(), appointments, audit).(*appointmentUsecase)
	return u, appointments, audit
}

func seedAppointment(repo *fakeAppointmentRepo, status entity.AppointmentStatus, at time.Time) *entity.Appointment {
	return repo.add(&entity.Appointment{
		PatientID:       uuid.New(),
		ProviderID:      uuid.New(),
		AppointmentDate: at,
		Status:          status,
	})
}

func statusReq(status entity.AppointmentStatus) *dto.UpdateAppointmentStatusRequest {
	return &dto.UpdateAppointmentStatusRequest{Status: string(status)}
}

func TestUpdateStatusProviderAcceptsPending(t *testing.T) {
	u, repo, audit := newAppointmentFixture()
	a := seedAppointment(repo, entity.AppointmentStatusPending, time.Now().Add(48*time.Hour))

	got, err := u.UpdateStatus(authedContext(a.ProviderID, entity.RoleProvider), a.ID, statusReq(entity.AppointmentStatusAccepted))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != string(entity.AppointmentStatusAccepted) {
		t.Errorf("status = %s, want accepted", got.Status)
	}
	if repo.appointments[a.ID].Status != entity.AppointmentStatusAccepted {
		t.Error("status change not persisted")
	}
	if len(audit.actions) != 1 || audit.actions[0] != entity.AuditActionAppointmentStatus {
		t.Errorf("expected status-change audit entry, got %v", audit.actions)
	}
}

func TestUpdateStatusProviderDeclinesPending(t *testing.T) {
	u, repo, _ := newAppointmentFixture()
	a := seedAppointment(repo, entity.AppointmentStatusPending, time.Now().Add(48*time.Hour))

	if _, err := u.UpdateStatus(authedContext(a.ProviderID, entity.RoleProvider), a.ID, statusReq(entity.AppointmentStatusDeclined)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateStatusPatientCancelsAccepted(t *testing.T) {
	u, repo, _ := newAppointmentFixture()
	a := seedAppointment(repo, entity.AppointmentStatusAccepted, time.Now().Add(48*time.Hour))

	if _, err := u.UpdateStatus(authedContext(a.PatientID, entity.RolePatient), a.ID, statusReq(entity.AppointmentStatusCancelled)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateStatusActorEnforcement(t *testing.T) {
	u, repo, _ := newAppointmentFixture()

	t.Run("patient cannot accept", func(t *testing.T) {
		a := seedAppointment(repo, entity.AppointmentStatusPending, time.Now().Add(48*time.Hour))
		if _, err := u.UpdateStatus(authedContext(a.PatientID, entity.RolePatient), a.ID, statusReq(entity.AppointmentStatusAccepted)); !errors.Is(err, ErrNotAppointmentActor) {
			t.Errorf("expected ErrNotAppointmentActor, got %v", err)
		}
	})

	t.Run("provider cannot cancel", func(t *testing.T) {
		a := seedAppointment(repo, entity.AppointmentStatusAccepted, time.Now().Add(48*time.Hour))
		if _, err := u.UpdateStatus(authedContext(a.ProviderID, entity.RoleProvider), a.ID, statusReq(entity.AppointmentStatusCancelled)); !errors.Is(err, ErrNotAppointmentActor) {
			t.Errorf("expected ErrNotAppointmentActor, got %v", err)
		}
	})
}

func TestUpdateStatusStrangerSeesNotFound(t *testing.T) {
	u, repo, _ := newAppointmentFixture()
	a := seedAppointment(repo, entity.AppointmentStatusPending, time.Now().Add(48*time.Hour))

	// an unrelated provider must not learn the appointment exists
	if _, err := u.UpdateStatus(authedContext(uuid.New(), entity.RoleProvider), a.ID, statusReq(entity.AppointmentStatusAccepted)); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestUpdateStatusInvalidTransitions(t *testing.T) {
	u, repo, _ := newAppointmentFixture()

	tests := []struct {
		name string
		from entity.AppointmentStatus
		to   entity.AppointmentStatus
	}{
		{"pending to completed", entity.AppointmentStatusPending, entity.AppointmentStatusCompleted},
		{"pending to cancelled", entity.AppointmentStatusPending, entity.AppointmentStatusCancelled},
		{"declined to accepted", entity.AppointmentStatusDeclined, entity.AppointmentStatusAccepted},
		{"cancelled to completed", entity.AppointmentStatusCancelled, entity.AppointmentStatusCompleted},
		{"completed to cancelled", entity.AppointmentStatusCompleted, entity.AppointmentStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := seedAppointment(repo, tt.from, time.Now().Add(48*time.Hour))
			_, err := u.UpdateStatus(authedContext(a.ProviderID, entity.RoleProvider), a.ID, statusReq(tt.to))
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("expected ErrInvalidTransition, got %v", err)
			}
		})
	}
}

func TestUpdateStatusRequiresUpcoming(t *testing.T) {
	u, repo, _ := newAppointmentFixture()

	t.Run("cancel after the fact", func(t *testing.T) {
		a := seedAppointment(repo, entity.AppointmentStatusAccepted, time.Now().Add(-time.Hour))
		if _, err := u.UpdateStatus(authedContext(a.PatientID, entity.RolePatient), a.ID, statusReq(entity.AppointmentStatusCancelled)); !errors.Is(err, ErrAppointmentNotUpcoming) {
			t.Errorf("expected ErrAppointmentNotUpcoming, got %v", err)
		}
	})

	t.Run("accept has no timing gate", func(t *testing.T) {
		a := seedAppointment(repo, entity.AppointmentStatusPending, time.Now().Add(-time.Hour))
		if _, err := u.UpdateStatus(authedContext(a.ProviderID, entity.RoleProvider), a.ID, statusReq(entity.AppointmentStatusAccepted)); err != nil {
			t.Errorf("accepting a past pending appointment should work: %v", err)
		}
	})
}

func TestUpdateStatusUnknownTarget(t *testing.T) {
	u, repo, _ := newAppointmentFixture()
	a := seedAppointment(repo, entity.AppointmentStatusPending, time.Now().Add(48*time.Hour))

	if _, err := u.UpdateStatus(authedContext(a.ProviderID, entity.RoleProvider), a.ID, &dto.UpdateAppointmentStatusRequest{Status: "confirmed"}); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestUpdateStatusMissingAppointment(t *testing.T) {
	u, _, _ := newAppointmentFixture()

	if _, err := u.UpdateStatus(authedContext(uuid.New(), entity.RoleProvider), uuid.New(), statusReq(entity.AppointmentStatusAccepted)); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestListForCurrentUserScopesByRole(t *testing.T) {
	u, repo, _ := newAppointmentFixture()

	patientID := uuid.New()
	providerID := uuid.New()
	repo.add(&entity.Appointment{PatientID: patientID, ProviderID: providerID, Status: entity.AppointmentStatusPending, AppointmentDate: time.Now().Add(time.Hour)})
	repo.add(&entity.Appointment{PatientID: patientID, ProviderID: uuid.New(), Status: entity.AppointmentStatusAccepted, AppointmentDate: time.Now().Add(2 * time.Hour)})
	repo.add(&entity.Appointment{PatientID: uuid.New(), ProviderID: providerID, Status: entity.AppointmentStatusAccepted, AppointmentDate: time.Now().Add(3 * time.Hour)})

	asPatient, err := u.ListForCurrentUser(authedContext(patientID, entity.RolePatient))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asPatient.Total != 2 {
		t.Errorf("patient should see 2 appointments, got %d", asPatient.Total)
	}

	asProvider, err := u.ListForCurrentUser(authedContext(providerID, entity.RoleProvider))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asProvider.Total != 2 {
		t.Errorf("provider should see 2 appointments, got %d", asProvider.Total)
	}
}

func TestGetByIDParticipantsOnly(t *testing.T) {
	u, repo, _ := newAppointmentFixture()
	a := seedAppointment(repo, entity.AppointmentStatusAccepted, time.Now().Add(time.Hour))

	if _, err := u.GetByID(authedContext(a.PatientID, entity.RolePatient), a.ID); err != nil {
		t.Errorf("patient participant should see the appointment: %v", err)
	}
	if _, err := u.GetByID(authedContext(a.ProviderID, entity.RoleProvider), a.ID); err != nil {
		t.Errorf("provider participant should see the appointment: %v", err)
	}
	if _, err := u.GetByID(authedContext(uuid.New(), entity.RolePatient), a.ID); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("stranger should get not found, got %v", err)
	}
}
