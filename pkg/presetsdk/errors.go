package presetsdk

import (
	"fmt"
	"net/http"

	"github.com/padlockhq/padlock/pkg/httpx"
)

// Error codes returned inside the failure envelope.
const (
	ErrorCodeUnauthorized = "UNAUTHORIZED"
	ErrorCodeForbidden    = "FORBIDDEN"
	ErrorCodeNotFound     = "NOT_FOUND"
	ErrorCodeValidation   = "VALIDATION_ERROR"
	ErrorCodeServerError  = "SERVER_ERROR"
	ErrorCodeRateLimited  = "RATE_LIMITED"
)

// APIError is a coded failure. The server uses it to write error envelopes
// and the SDK client rehydrates responses back into it, so both sides of
// the wire share one error type.
type APIError struct {
	// StatusCode is the HTTP status for this error, not serialized.
	StatusCode int `json:"-"`

	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this error as a failure envelope.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, Envelope{
		Success: false,
		Err:     &APIErr{Code: e.Code, Message: e.Message},
	})
}

// WithMessage returns a copy of e carrying a more specific message.
func (e *APIError) WithMessage(msg string) *APIError {
	return &APIError{StatusCode: e.StatusCode, Code: e.Code, Message: msg}
}

var (
	// ErrUnauthorized is returned when no authenticated user is present.
	ErrUnauthorized = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeUnauthorized,
		Message:    "authentication required",
	}

	// ErrNotFound is returned when a record is missing or owned by another
	// user. The two cases are indistinguishable on purpose.
	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "record not found",
	}

	// ErrValidation is returned on schema violations; handlers usually
	// attach a field-specific message via WithMessage.
	ErrValidation = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeValidation,
		Message:    "invalid request",
	}

	// ErrServerError is returned when an unexpected condition prevented
	// the request from completing.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "internal server error",
	}
)
