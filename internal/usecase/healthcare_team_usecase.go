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

	"github.com/sirupsen/logrus"
)

var (
	ErrAlreadyOnTeam  = errors.New("provider is already on your healthcare team")
	ErrMemberNotFound = errors.New("provider is not on your healthcare team")
)

type HealthcareTeamUsecase interface {
	ListTeam(ctx context.Context) (*dto.TeamListResponse, error)
	AddProvider(ctx context.Context, req *dto.AddTeamMemberRequest) (*dto.TeamMemberResponse, error)
	RemoveProvider(ctx context.Context, req *dto.AddTeamMemberRequest) error
}

type healthcareTeamUsecase struct {
	log      *logrus.Logger
	teamRepo repository.HealthcareTeamRepository
	userRepo repository.UserRepository
	audit    service.AuditService
}

func NewHealthcareTeamUsecase(
	log *logrus.Logger,
	teamRepo repository.HealthcareTeamRepository,
	userRepo repository.UserRepository,
	audit service.AuditService,
) HealthcareTeamUsecase {
	return &healthcareTeamUsecase{
		log:      log,
		teamRepo: teamRepo,
		userRepo: userRepo,
		audit:    audit,
	}
}

func (u *healthcareTeamUsecase) ListTeam(ctx context.Context) (*dto.TeamListResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	members, err := u.teamRepo.FindActiveByPatient(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to list team for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.TeamListResponse{
		Members: converter.TeamMembersToResponses(members),
		Total:   len(members),
	}, nil
}

// AddProvider puts a provider on the patient's team with full default
// permissions. Re-adding a previously removed provider creates a fresh
// membership row; the old deactivated one stays for history.
func (u *healthcareTeamUsecase) AddProvider(ctx context.Context, req *dto.AddTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	provider, err := u.userRepo.FindByID(ctx, req.ProviderID)
	if err != nil {
		u.log.Warnf("Failed to find provider %s: %+v", req.ProviderID, err)
		return nil, err
	}
	if provider == nil || !provider.IsProvider() {
		return nil, ErrProviderNotFound
	}

	existing, err := u.teamRepo.FindActiveMembership(ctx, patientID, req.ProviderID)
	if err != nil {
		u.log.Warnf("Failed to check team membership: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyOnTeam
	}

	relationship := req.RelationshipType
	if relationship == "" {
		relationship = "primary"
	}

	member := &entity.HealthcareTeamMember{
		PatientID:        patientID,
		ProviderID:       req.ProviderID,
		RelationshipType: relationship,
		Permissions:      entity.DefaultTeamPermissions(),
	}

	if err := u.teamRepo.Create(ctx, member); err != nil {
		if isUniqueViolation(err, "healthcare_team_active_membership") {
			return nil, ErrAlreadyOnTeam
		}
		u.log.Warnf("Failed to add team member: %+v", err)
		return nil, err
	}

	member.Provider = *provider

	u.audit.Record(ctx, &patientID, entity.AuditActionTeamProviderAdded, entity.JSON{
		"provider_id": req.ProviderID.String(),
	})

	u.log.Infof("Provider %s added to team of patient %s", req.ProviderID, patientID)
	return converter.TeamMemberToResponse(member), nil
}

// RemoveProvider deactivates the membership. Existing appointments with the
// provider are untouched; only future booking is affected.
func (u *healthcareTeamUsecase) RemoveProvider(ctx context.Context, req *dto.AddTeamMemberRequest) error {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	rows, err := u.teamRepo.Deactivate(ctx, patientID, req.ProviderID)
	if err != nil {
		u.log.Warnf("Failed to remove team member: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrMemberNotFound
	}

	u.audit.Record(ctx, &patientID, entity.AuditActionTeamProviderRemoved, entity.JSON{
		"provider_id": req.ProviderID.String(),
	})

	u.log.Infof("Provider %s removed from team of patient %s", req.ProviderID, patientID)
	return nil
}
