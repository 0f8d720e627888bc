package response

import (
	"time"

	"video-catalog/internal/domain"
)

type CastMemberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      int       `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func CastMemberToResponse(member *domain.CastMember) CastMemberResponse {
	return CastMemberResponse{
		ID:        member.ID().String(),
		Name:      member.Name(),
		Type:      int(member.Type()),
		CreatedAt: member.CreatedAt(),
		UpdatedAt: member.UpdatedAt(),
	}
}
