package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/doorman/pkg/httpx"
)

// Error names carried in the "name" field of the error envelope.
const (
	ErrorNameBadRequest         = "BadRequestError"
	ErrorNameValidation         = "ValidationError"
	ErrorNameNotFound           = "NotFoundError"
	ErrorNameInvalidCredentials = "InvalidCredentialsError"
	ErrorNameEmailAlreadyTaken  = "EmailAlreadyTakenError"
	ErrorNameUnauthorized       = "UnauthorizedError"
	ErrorNameRateLimit          = "RateLimitError"
	ErrorNameHashing            = "HashingError"
	ErrorNameSigning            = "SigningError"
	ErrorNameInternal           = "Error"
)

// APIError is the typed form of the error envelope. The server uses it to
// write responses and the client returns it for any non-2xx status.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	Name    string            `json:"name"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Name, e.StatusCode, e.Message)
}

// Is matches another *APIError with the same status and name, so callers can
// write errors.Is(err, authsdk.ErrInvalidCredentials).
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode && e.Name == t.Name
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteError(w, e.StatusCode, e.Name, e.Message, e.Details)
}

// WithDetails returns a copy of e carrying details.
func (e *APIError) WithDetails(details map[string]string) *APIError {
	cp := *e
	cp.Details = details
	return &cp
}

// ============================================================================
// Predefined Errors
// ============================================================================

var (
	// ErrBadRequest is returned when the body is not a single JSON object.
	ErrBadRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Name:       ErrorNameBadRequest,
		Message:    "Request body must be valid JSON",
	}

	// ErrValidation is raised by the client before sending when a request
	// cannot succeed. Details maps each field to the reason.
	ErrValidation = &APIError{
		StatusCode: http.StatusBadRequest,
		Name:       ErrorNameValidation,
		Message:    "validation failed for some fields",
	}

	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Name:       ErrorNameInvalidCredentials,
		Message:    "Password is not correct!",
	}

	// ErrEmailAlreadyTaken is returned when registering an email already on file.
	ErrEmailAlreadyTaken = &APIError{
		StatusCode: http.StatusUnprocessableEntity,
		Name:       ErrorNameEmailAlreadyTaken,
		Message:    "Email already taken",
	}

	// ErrUnauthorized is returned when the bearer token is missing or invalid.
	ErrUnauthorized = &APIError{
		StatusCode: http.StatusUnauthorized,
		Name:       ErrorNameUnauthorized,
		Message:    "the access token is missing, invalid or expired",
	}
)

// NewNotFoundError builds the 404 returned when email is not registered.
func NewNotFoundError(email string) *APIError {
	return &APIError{
		StatusCode: http.StatusNotFound,
		Name:       ErrorNameNotFound,
		Message:    email + " is not registered!",
		Details:    map[string]string{"email": email},
	}
}

// NewInternalError builds a 500 that surfaces the failure's name and message.
func NewInternalError(name string, err error) *APIError {
	if name == "" {
		name = ErrorNameInternal
	}
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Name:       name,
		Message:    err.Error(),
	}
}

// ============================================================================
// Error Parsing Helpers
// ============================================================================

// parseErrorResponse turns a non-2xx response into an *APIError.
// Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var env ErrorResponse
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Name != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Name:       env.Error.Name,
			Message:    env.Error.Message,
			Details:    env.Error.Details,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Name:       ErrorNameInternal,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
