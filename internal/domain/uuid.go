package domain

import (
	"github.com/google/uuid"
)

// UUID is a validated identifier value object.
type UUID struct {
	value string
}

func NewUUID(value string) (UUID, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return UUID{}, &ValidationError{
			Entity: "uuid",
			Errors: []FieldError{{Field: "id", Message: "value " + value + " is not a valid uuid"}},
		}
	}
	return UUID{value: parsed.String()}, nil
}

// MustUUID panics on malformed input. Only for ids that already came out of storage.
func MustUUID(value string) UUID {
	id, err := NewUUID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func RandomUUID() UUID {
	return UUID{value: uuid.NewString()}
}

func (u UUID) String() string {
	return u.value
}

func (u UUID) IsZero() bool {
	return u.value == ""
}
