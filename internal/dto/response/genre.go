package response

import (
	"time"

	"video-catalog/internal/domain"
)

type GenreResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	IsActive     bool      `json:"is_active"`
	CategoriesID []string  `json:"categories_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Helper converter
func GenreToResponse(genre *domain.Genre) GenreResponse {
	return GenreResponse{
		ID:           genre.ID().String(),
		Name:         genre.Name(),
		IsActive:     genre.IsActive(),
		CategoriesID: genre.CategoryIDs(),
		CreatedAt:    genre.CreatedAt(),
		UpdatedAt:    genre.UpdatedAt(),
	}
}
