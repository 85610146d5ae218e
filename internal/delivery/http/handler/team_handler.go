package handler

import (
	"encoding/json"
	"net/http"

	"careconnect-server/internal/delivery/dto"
	"careconnect-server/internal/usecase"
	"careconnect-server/pkg/response"
	"careconnect-server/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TeamHandler struct {
	teamUsecase usecase.HealthcareTeamUsecase
	validator   *validator.CustomValidator
}

func NewTeamHandler(teamUsecase usecase.HealthcareTeamUsecase, validator *validator.CustomValidator) *TeamHandler {
	return &TeamHandler{
		teamUsecase: teamUsecase,
		validator:   validator,
	}
}

// List returns the patient's active healthcare team
// @Summary List my healthcare team
// @Tags Team
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /healthcare-team [get]
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	team, err := h.teamUsecase.ListTeam(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list healthcare team")
		return
	}

	response.Success(w, http.StatusOK, "Healthcare team retrieved successfully", team)
}

// Add puts a provider on the patient's team
// @Summary Add a provider to my team
// @Tags Team
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AddTeamMemberRequest true "Team Member Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /healthcare-team [post]
func (h *TeamHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	member, err := h.teamUsecase.AddProvider(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrAlreadyOnTeam:
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to add team member")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Provider added to team successfully", member)
}

// Remove deactivates a provider's team membership
// @Summary Remove a provider from my team
// @Tags Team
// @Security BearerAuth
// @Produce json
// @Param providerId path string true "Provider ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /healthcare-team/{providerId} [delete]
func (h *TeamHandler) Remove(w http.ResponseWriter, r *http.Request) {
	providerID, err := uuid.Parse(mux.Vars(r)["providerId"])
	if err != nil {
		response.BadRequest(w, "Invalid provider id")
		return
	}

	if err := h.teamUsecase.RemoveProvider(r.Context(), &dto.AddTeamMemberRequest{ProviderID: providerID}); err != nil {
		switch err {
		case usecase.ErrMemberNotFound:
			response.NotFound(w, "Provider is not on your healthcare team")
		default:
			response.InternalServerError(w, "Failed to remove team member")
		}
		return
	}

	response.Success(w, http.StatusOK, "Provider removed from team successfully", nil)
}
