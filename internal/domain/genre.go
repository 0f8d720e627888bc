package domain

import (
	"time"
)

type GenreParams struct {
	ID          string
	Name        string
	IsActive    bool
	CategoryIDs []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Genre groups videos and references the categories it belongs to.
type Genre struct {
	id         UUID
	name       string
	isActive   bool
	categories IDSet
	createdAt  time.Time
	updatedAt  time.Time
}

func NewGenre(p GenreParams) (*Genre, error) {
	id, err := idOrRandom(p.ID)
	if err != nil {
		return nil, err
	}
	createdAt, updatedAt := timestamps(p.CreatedAt, p.UpdatedAt)

	g := &Genre{
		id:         id,
		name:       p.Name,
		isActive:   p.IsActive,
		categories: NewIDSet(p.CategoryIDs...),
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
	if err := newValidationError("genre", validateGenre(g)); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Genre) Update(name string) error {
	next := *g
	next.name = name
	if err := newValidationError("genre", validateGenre(&next)); err != nil {
		return err
	}
	g.name = name
	g.updatedAt = time.Now()
	return nil
}

func validateGenre(g *Genre) []FieldError {
	var checks fieldChecks
	checks.length("name", g.name, 3, 255)
	return checks
}

func (g *Genre) Activate() {
	g.isActive = true
	g.updatedAt = time.Now()
}

func (g *Genre) Deactivate() {
	g.isActive = false
	g.updatedAt = time.Now()
}

func (g *Genre) AddCategory(id string) {
	g.categories.Add(id)
	g.updatedAt = time.Now()
}

func (g *Genre) RemoveCategory(id string) {
	g.categories.Remove(id)
	g.updatedAt = time.Now()
}

func (g *Genre) ReplaceCategories(ids []string) {
	g.categories.Replace(ids)
	g.updatedAt = time.Now()
}

func (g *Genre) ID() UUID { return g.id }
func (g *Genre) Name() string { return g.name }
func (g *Genre) IsActive() bool { return g.isActive }
func (g *Genre) CategoryIDs() []string { return g.categories.Values() }
func (g *Genre) CreatedAt() time.Time { return g.createdAt }
func (g *Genre) UpdatedAt() time.Time { return g.updatedAt }
