package handler

import (
	"encoding/json"
	"net/http"

	"careconnect-server/internal/delivery/dto"
	"careconnect-server/internal/usecase"
	"careconnect-server/pkg/response"
	"careconnect-server/pkg/validator"
)

type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validator.CustomValidator
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase, validator *validator.CustomValidator) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

// CompletionStatus reports whether the profile wizard is still pending
// @Summary Profile completion status
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /profile/completion [get]
func (h *ProfileHandler) CompletionStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.profileUsecase.CompletionStatus(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to check profile status")
		return
	}

	response.Success(w, http.StatusOK, "Profile status retrieved successfully", status)
}

// CompletePatientProfile finishes the patient profile wizard
// @Summary Complete patient profile
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CompletePatientProfileRequest true "Patient Profile"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /profile/patient [post]
func (h *ProfileHandler) CompletePatientProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.CompletePatientProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.CompletePatientProfile(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidBirthday:
			response.BadRequest(w, err.Error())
		case usecase.ErrWrongRole:
			response.Forbidden(w, err.Error())
		case usecase.ErrProfileExists:
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to complete profile")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Profile completed successfully", profile)
}

// CompleteProviderProfile finishes the provider profile wizard
// @Summary Complete provider profile
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CompleteProviderProfileRequest true "Provider Profile"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /profile/provider [post]
func (h *ProfileHandler) CompleteProviderProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.CompleteProviderProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.CompleteProviderProfile(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrWrongRole:
			response.Forbidden(w, err.Error())
		case usecase.ErrProfileExists:
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to complete profile")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Profile completed successfully", profile)
}
