package entity

import (
	"time"

	"github.com/google/uuid"
)

type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Relation is one row of a many-to-many bridge table.
type Relation struct {
	OwnerID uuid.UUID `db:"owner_id"`
	RefID   uuid.UUID `db:"ref_id"`
}
