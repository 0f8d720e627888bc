package request

type GenreRequest struct {
	Name         string   `json:"name" validate:"required,min=3,max=255"`
	IsActive     *bool    `json:"is_active,omitempty"`
	CategoriesID []string `json:"categories_id" validate:"dive,uuid"`
}
