package domain

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError is one failed invariant on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned by entity constructors and Update methods.
type ValidationError struct {
	Entity string
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(msgs, "; "))
}

// Fields returns the errors as a field -> message map, the shape the HTTP
// layer already uses for request validation.
func (e *ValidationError) Fields() map[string]string {
	out := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

func newValidationError(entity string, errs []FieldError) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Entity: entity, Errors: errs}
}

// fieldChecks accumulates FieldErrors for one validation pass.
type fieldChecks []FieldError

func (c *fieldChecks) add(field, message string) {
	*c = append(*c, FieldError{Field: field, Message: message})
}

func (c *fieldChecks) length(field, value string, min, max int) {
	n := len([]rune(strings.TrimSpace(value)))
	switch {
	case n == 0 && min > 0:
		c.add(field, "is required")
	case n < min:
		c.add(field, fmt.Sprintf("must be at least %d characters", min))
	case max > 0 && n > max:
		c.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}
