package repository

import (
	"context"
	"errors"
	"time"

	"careconnect-server/internal/domain/entity"
	domainRepo "careconnect-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// slotFreeingStatuses release a slot; every other status keeps it occupied
var slotFreeingStatuses = []entity.AppointmentStatus{
	entity.AppointmentStatusCancelled,
	entity.AppointmentStatusDeclined,
}

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Provider").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindActiveInRange(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND appointment_date >= ? AND appointment_date < ? AND status NOT IN ?",
			providerID, from, to, slotFreeingStatuses).
		Order("appointment_date ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) ExistsActiveAt(ctx context.Context, providerID uuid.UUID, at time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Appointment{}).
		Where("provider_id = ? AND appointment_date = ? AND status NOT IN ?", providerID, at, slotFreeingStatuses).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Provider").
		Where("patient_id = ?", patientID).
		Order("appointment_date ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("provider_id = ?", providerID).
		Order("appointment_date ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
