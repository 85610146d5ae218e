package usecase

import (
	"context"
	"errors"
	"time"

	"careconnect-server/internal/converter"
	"careconnect-server/internal/delivery/dto"
	"careconnect-server/internal/delivery/http/middleware"
	"careconnect-server/internal/domain/entity"
	"careconnect-server/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrImmunizationNotFound = errors.New("immunization record not found")

type ImmunizationUsecase interface {
	List(ctx context.Context) (*dto.ImmunizationListResponse, error)
	Create(ctx context.Context, req *dto.CreateImmunizationRequest) (*dto.ImmunizationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type immunizationUsecase struct {
	log              *logrus.Logger
	immunizationRepo repository.ImmunizationRepository
}

func NewImmunizationUsecase(log *logrus.Logger, immunizationRepo repository.ImmunizationRepository) ImmunizationUsecase {
	return &immunizationUsecase{
		log:              log,
		immunizationRepo: immunizationRepo,
	}
}

// List returns the patient's records with the status recomputed against
// today, so a record saved as up to date shows as due once its window opens.
func (u *immunizationUsecase) List(ctx context.Context) (*dto.ImmunizationListResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	records, err := u.immunizationRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to list immunizations for patient %s: %+v", patientID, err)
		return nil, err
	}

	now := time.Now()
	for i := range records {
		records[i].Status = entity.ImmunizationStatusAt(records[i].NextDueDate, now)
	}

	return &dto.ImmunizationListResponse{
		Immunizations: converter.ImmunizationsToResponses(records),
		Total:         len(records),
	}, nil
}

func (u *immunizationUsecase) Create(ctx context.Context, req *dto.CreateImmunizationRequest) (*dto.ImmunizationResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	dateReceived, err := time.ParseInLocation(entity.SlotDateLayout, req.DateReceived, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}

	var nextDue *time.Time
	if req.NextDueDate != "" {
		parsed, err := time.ParseInLocation(entity.SlotDateLayout, req.NextDueDate, time.Local)
		if err != nil {
			return nil, ErrInvalidDate
		}
		nextDue = &parsed
	}

	record := &entity.Immunization{
		PatientID:    patientID,
		ProviderID:   req.ProviderID,
		Name:         req.Name,
		DateReceived: dateReceived,
		NextDueDate:  nextDue,
		Status:       entity.ImmunizationStatusAt(nextDue, time.Now()),
		Notes:        req.Notes,
		DocumentURL:  req.DocumentURL,
	}

	if err := u.immunizationRepo.Create(ctx, record); err != nil {
		u.log.Warnf("Failed to create immunization for patient %s: %+v", patientID, err)
		return nil, err
	}

	u.log.Infof("Immunization recorded: id=%s, patient=%s", record.ID, patientID)
	return converter.ImmunizationToResponse(record), nil
}

func (u *immunizationUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	record, err := u.immunizationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find immunization %s: %+v", id, err)
		return err
	}
	// Ownership gate: non-owners get not found, never forbidden
	if record == nil || record.PatientID != patientID {
		return ErrImmunizationNotFound
	}

	rows, err := u.immunizationRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete immunization %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrImmunizationNotFound
	}

	u.log.Infof("Immunization deleted: id=%s, patient=%s", id, patientID)
	return nil
}
