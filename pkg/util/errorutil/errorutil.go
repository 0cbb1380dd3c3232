package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

// NewMissingField signals a required payload field was absent. Planning
// aborts before any send is attempted.
func NewMissingField(field string) error {
	return NewDomainError("MISSING_FIELD", fmt.Sprintf("missing required field %s", field),
		http.StatusBadRequest, map[string]any{"field": field})
}

// NewMissingAssignments signals an event kind that requires at least
// one assignment received none.
func NewMissingAssignments() error {
	return NewDomainError("MISSING_ASSIGNMENTS", "at least one assignment required",
		http.StatusBadRequest, nil)
}

// NewUnknownBarber signals an assignment referencing a staff id that is
// not on the roster. Fatal for the whole event, never silently dropped.
func NewUnknownBarber(barberID string) error {
	return NewDomainError("UNKNOWN_BARBER", fmt.Sprintf("unknown barber %s", barberID),
		http.StatusUnprocessableEntity, map[string]any{"barber_id": barberID})
}

// NewUnknownEventKind signals a dispatch failure for an unrecognized
// event kind.
func NewUnknownEventKind(kind string) error {
	return NewDomainError("UNKNOWN_EVENT_KIND", fmt.Sprintf("unknown event kind %s", kind),
		http.StatusBadRequest, map[string]any{"kind": kind})
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	if err == nil {
		return nil
	}
	return ToDomainError(err)
}
