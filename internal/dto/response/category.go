package response

import (
	"time"

	"video-catalog/internal/domain"
)

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Helper converter
func CategoryToResponse(category *domain.Category) CategoryResponse {
	var description *string
	if d := category.Description(); d != "" {
		description = &d
	}

	return CategoryResponse{
		ID:          category.ID().String(),
		Name:        category.Name(),
		Description: description,
		IsActive:    category.IsActive(),
		CreatedAt:   category.CreatedAt(),
		UpdatedAt:   category.UpdatedAt(),
	}
}
