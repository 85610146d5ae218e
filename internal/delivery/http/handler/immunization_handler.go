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

type ImmunizationHandler struct {
	immunizationUsecase usecase.ImmunizationUsecase
	validator           *validator.CustomValidator
}

func NewImmunizationHandler(immunizationUsecase usecase.ImmunizationUsecase, validator *validator.CustomValidator) *ImmunizationHandler {
	return &ImmunizationHandler{
		immunizationUsecase: immunizationUsecase,
		validator:           validator,
	}
}

// List returns the patient's immunization records
// @Summary List my immunizations
// @Tags Immunizations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /immunizations [get]
func (h *ImmunizationHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.immunizationUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list immunizations")
		return
	}

	response.Success(w, http.StatusOK, "Immunizations retrieved successfully", records)
}

// Create records a new immunization
// @Summary Record an immunization
// @Tags Immunizations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateImmunizationRequest true "Immunization Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /immunizations [post]
func (h *ImmunizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateImmunizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.immunizationUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDate:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to record immunization")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Immunization recorded successfully", record)
}

// Delete removes an immunization record
// @Summary Delete an immunization
// @Tags Immunizations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Immunization ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /immunizations/{id} [delete]
func (h *ImmunizationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid immunization id")
		return
	}

	if err := h.immunizationUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrImmunizationNotFound:
			response.NotFound(w, "Immunization record not found")
		default:
			response.InternalServerError(w, "Failed to delete immunization")
		}
		return
	}

	response.Success(w, http.StatusOK, "Immunization deleted successfully", nil)
}
