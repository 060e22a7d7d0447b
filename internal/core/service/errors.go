package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/gommon/log"

	"github.com/martijn/bizdesk/internal/core/repository"
)

// ServiceError carries the HTTP status a failure maps to and a message safe
// to show to API and CLI users.
type ServiceError struct {
	Code    int
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NewServiceError(code int, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

func newValidationError(message string) *ServiceError {
	return NewServiceError(http.StatusBadRequest, message)
}

// fromRepoError translates repository sentinels into ServiceErrors. what
// names the record in user-facing messages, e.g. "invoice 42".
func fromRepoError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return &ServiceError{Code: http.StatusNotFound, Message: fmt.Sprintf("%s not found", what), Err: err}
	case errors.Is(err, repository.ErrConflict):
		return &ServiceError{Code: http.StatusConflict, Message: fmt.Sprintf("%s already exists", what), Err: err}
	case errors.Is(err, repository.ErrUnavailable):
		log.Errorf("store unavailable: %v", err)
		return &ServiceError{Code: http.StatusServiceUnavailable, Message: "database unavailable", Err: err}
	default:
		log.Errorf("unexpected store error: %v", err)
		return &ServiceError{Code: http.StatusInternalServerError, Message: "internal error", Err: err}
	}
}
