package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/loketh/ledger/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
)

// APIError represents a structured API error that carries error code and details.
// Ledger failures use the stable domain code.
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// StatusOf returns the HTTP status for an error kind
func StatusOf(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuthorization:
		return http.StatusForbidden
	case domain.KindStateConflict:
		return http.StatusConflict
	case domain.KindPayment:
		return http.StatusPaymentRequired
	case domain.KindExternalCall:
		return http.StatusBadGateway
	case domain.KindPending:
		return http.StatusAccepted
	default:
		return http.StatusInternalServerError
	}
}

// FromDomain converts a ledger error to its HTTP status and body.
// Unknown errors become a generic internal error without details.
func FromDomain(err error) (int, *APIError) {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		return http.StatusInternalServerError, NewInternalError("Internal server error")
	}

	apiErr := &APIError{
		Code:    ErrorCode(derr.Code),
		Message: derr.Message,
	}
	// wrapped causes, e.g. the reason of a failed transfer
	if msg := err.Error(); msg != derr.Message {
		apiErr.Details = msg
	}
	return StatusOf(derr.Kind), apiErr
}
