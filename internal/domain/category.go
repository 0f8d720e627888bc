package domain

import (
	"time"
)

type CategoryParams struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Category struct {
	id          UUID
	name        string
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCategory(p CategoryParams) (*Category, error) {
	id, err := idOrRandom(p.ID)
	if err != nil {
		return nil, err
	}
	createdAt, updatedAt := timestamps(p.CreatedAt, p.UpdatedAt)

	c := &Category{
		id:          id,
		name:        p.Name,
		description: p.Description,
		isActive:    p.IsActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
	if err := newValidationError("category", validateCategory(c)); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Category) Update(name, description string) error {
	next := *c
	next.name, next.description = name, description
	if err := newValidationError("category", validateCategory(&next)); err != nil {
		return err
	}
	c.name, c.description = name, description
	c.updatedAt = time.Now()
	return nil
}

func validateCategory(c *Category) []FieldError {
	var checks fieldChecks
	checks.length("name", c.name, 3, 255)
	if c.description != "" {
		checks.length("description", c.description, 3, 255)
	}
	return checks
}

func (c *Category) Activate() {
	c.isActive = true
	c.updatedAt = time.Now()
}

func (c *Category) Deactivate() {
	c.isActive = false
	c.updatedAt = time.Now()
}

func (c *Category) ID() UUID { return c.id }
func (c *Category) Name() string { return c.name }
func (c *Category) Description() string { return c.description }
func (c *Category) IsActive() bool { return c.isActive }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

func idOrRandom(raw string) (UUID, error) {
	if raw == "" {
		return RandomUUID(), nil
	}
	return NewUUID(raw)
}

func timestamps(createdAt, updatedAt time.Time) (time.Time, time.Time) {
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	return createdAt, updatedAt
}
