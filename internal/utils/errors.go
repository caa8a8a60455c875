package utils

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	KindValidation ErrorKind = "VALIDATION_ERROR"
	KindInternal   ErrorKind = "INTERNAL_ERROR"
)

const InternalErrorMessage = "Internal Server Error"

// AppError carries the client-facing message and status for a failed request.
// Err is the underlying cause and is never written to the response.
type AppError struct {
	Kind    ErrorKind
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ValidationError(message string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

func InternalError(err error) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Message: InternalErrorMessage,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// AsAppError unwraps err to an *AppError, treating anything else as internal.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return InternalError(err)
}

func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == KindValidation
}
