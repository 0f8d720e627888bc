package entity

type Genre struct {
	Base
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
}
