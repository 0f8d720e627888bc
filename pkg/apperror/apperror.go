package apperror

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"
	ErrorTypeBadRequest ErrorType = "BAD_REQUEST"
	ErrorTypeConflict   ErrorType = "CONFLICT"
	ErrorTypeInternal   ErrorType = "INTERNAL"
)

// AppError is an error with a type the HTTP layer can map to a status code
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(errorType ErrorType, message string) error {
	return &AppError{Type: errorType, Message: message}
}

func Wrap(errorType ErrorType, message string, err error) error {
	return &AppError{Type: errorType, Message: message, Err: err}
}

func NotFound(message string) error {
	return New(ErrorTypeNotFound, message)
}

func BadRequest(message string) error {
	return New(ErrorTypeBadRequest, message)
}

func Conflict(message string) error {
	return New(ErrorTypeConflict, message)
}

func Internal(message string, err error) error {
	return Wrap(ErrorTypeInternal, message, err)
}

func IsNotFound(err error) bool {
	return is(err, ErrorTypeNotFound)
}

func IsBadRequest(err error) bool {
	return is(err, ErrorTypeBadRequest)
}

func IsConflict(err error) bool {
	return is(err, ErrorTypeConflict)
}

func is(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}
