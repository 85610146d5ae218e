package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"careconnect-server/internal/delivery/dto"
	"careconnect-server/internal/usecase"
	"careconnect-server/pkg/response"
	"careconnect-server/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type SchedulingHandler struct {
	schedulingUsecase usecase.SchedulingUsecase
	validator         *validator.CustomValidator
}

func NewSchedulingHandler(schedulingUsecase usecase.SchedulingUsecase, validator *validator.CustomValidator) *SchedulingHandler {
	return &SchedulingHandler{
		schedulingUsecase: schedulingUsecase,
		validator:         validator,
	}
}

// GetAvailableSlots returns the free slots for a provider on a date
// @Summary Provider availability for one day
// @Tags Scheduling
// @Security BearerAuth
// @Produce json
// @Param providerId path string true "Provider ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /scheduling/providers/{providerId}/slots [get]
func (h *SchedulingHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	providerID, err := uuid.Parse(mux.Vars(r)["providerId"])
	if err != nil {
		response.BadRequest(w, "Invalid provider id")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required")
		return
	}

	slots, err := h.schedulingUsecase.GetAvailableSlots(r.Context(), providerID, date)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDate:
			response.BadRequest(w, "Invalid date, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to load availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", &dto.AvailableSlotsResponse{
		ProviderID: providerID,
		Date:       date,
		Slots:      slots,
	})
}

// BookAppointment books a slot for the logged-in patient
// @Summary Book an appointment
// @Description Creates a pending appointment. On a slot collision the 409 response carries the refreshed availability for the day.
// @Tags Scheduling
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Booking Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments [post]
func (h *SchedulingHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.schedulingUsecase.BookAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrMissingBookingFields, usecase.ErrInvalidDate, usecase.ErrInvalidSlot:
			response.BadRequest(w, err.Error())
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrProviderNotOnTeam, usecase.ErrSchedulingNotAllowed:
			response.Forbidden(w, err.Error())
		case usecase.ErrSlotTaken:
			// Include the day's current availability so the client can
			// immediately offer an alternative slot.
			slots, slotsErr := h.schedulingUsecase.GetAvailableSlots(r.Context(), req.ProviderID, req.Date)
			if slotsErr != nil {
				slots = nil
			}
			response.Conflict(w, "This time slot is no longer available", &dto.AvailableSlotsResponse{
				ProviderID: req.ProviderID,
				Date:       req.Date,
				Slots:      slots,
			})
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

// GetBookableDates lists the open weekdays of a month
// @Summary Bookable dates for a month
// @Tags Scheduling
// @Security BearerAuth
// @Produce json
// @Param year query int false "Year (defaults to current)"
// @Param month query int false "Month 1-12 (defaults to current)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /scheduling/dates [get]
func (h *SchedulingHandler) GetBookableDates(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1970 || parsed > 9999 {
			response.BadRequest(w, "Invalid year")
			return
		}
		year = parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(w, "Invalid month, use 1-12")
			return
		}
		month = time.Month(parsed)
	}

	dates := h.schedulingUsecase.BookableDates(year, month)
	response.Success(w, http.StatusOK, "Bookable dates retrieved successfully", dates)
}
