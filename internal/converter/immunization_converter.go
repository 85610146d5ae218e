package converter

import (
	"careconnect-server/internal/delivery/dto"
	"careconnect-server/internal/domain/entity"
)

// ImmunizationToResponse converts an Immunization entity
func ImmunizationToResponse(record *entity.Immunization) *dto.ImmunizationResponse {
	if record == nil {
		return nil
	}

	response := &dto.ImmunizationResponse{
		ID:           record.ID,
		Name:         record.Name,
		DateReceived: record.DateReceived.Format(entity.SlotDateLayout),
		Status:       string(record.Status),
		ProviderID:   record.ProviderID,
		Notes:        record.Notes,
		DocumentURL:  record.DocumentURL,
		CreatedAt:    record.CreatedAt,
	}

	if record.NextDueDate != nil {
		response.NextDueDate = record.NextDueDate.Format(entity.SlotDateLayout)
	}
	if record.Provider != nil {
		response.ProviderName = record.Provider.FullName()
	}

	return response
}

// ImmunizationsToResponses converts a slice of Immunization entities
func ImmunizationsToResponses(records []entity.Immunization) []dto.ImmunizationResponse {
	responses := make([]dto.ImmunizationResponse, len(records))
	for i := range records {
		responses[i] = *ImmunizationToResponse(&records[i])
	}
	return responses
}
