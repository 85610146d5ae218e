package converter

import (
	"careconnect-server/internal/delivery/dto"
	"careconnect-server/internal/domain/entity"

	"github.com/google/uuid"
)

// TeamMemberToResponse converts a HealthcareTeamMember entity
func TeamMemberToResponse(member *entity.HealthcareTeamMember) *dto.TeamMemberResponse {
	if member == nil {
		return nil
	}

	response := &dto.TeamMemberResponse{
		ID:               member.ID,
		ProviderID:       member.ProviderID,
		RelationshipType: member.RelationshipType,
		Permissions: dto.TeamPermissionsResponse{
			ViewRecords:          member.Permissions.ViewRecords,
			ScheduleAppointments: member.Permissions.ScheduleAppointments,
			ViewAppointments:     member.Permissions.ViewAppointments,
			ViewImmunizations:    member.Permissions.ViewImmunizations,
		},
		AddedDate: member.AddedDate,
	}

	if member.Provider.ID != uuid.Nil {
		response.ProviderName = member.Provider.FullName()
		if member.Provider.ProviderProfile != nil {
			response.Specialization = member.Provider.ProviderProfile.Specialization
		}
	}

	return response
}

// TeamMembersToResponses converts a slice of HealthcareTeamMember entities
func TeamMembersToResponses(members []entity.HealthcareTeamMember) []dto.TeamMemberResponse {
	responses := make([]dto.TeamMemberResponse, len(members))
	for i := range members {
		responses[i] = *TeamMemberToResponse(&members[i])
	}
	return responses
}
