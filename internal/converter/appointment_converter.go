package converter

import (
	"careconnect-server/internal/delivery/dto"
	"careconnect-server/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:               appointment.ID,
		PatientID:        appointment.PatientID,
		ProviderID:       appointment.ProviderID,
		AppointmentDate:  appointment.AppointmentDate,
		AppointmentType:  appointment.AppointmentType,
		ConsultationType: appointment.ConsultationType,
		Status:           string(appointment.Status),
		Notes:            appointment.Notes,
		CreatedAt:        appointment.CreatedAt,
		UpdatedAt:        appointment.UpdatedAt,
	}

	if appointment.Patient.ID != uuid.Nil {
		response.PatientName = appointment.Patient.FullName()
	}
	if appointment.Provider.ID != uuid.Nil {
		response.ProviderName = appointment.Provider.FullName()
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
