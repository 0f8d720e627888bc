package request

type CategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=3,max=255"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
