package authsdk

import (
	"github.com/aussiebroadwan/doorman/pkg/httpx"
)

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the body of every non-2xx response:
//
//	{"error": {"name": "...", "message": "...", "details": {...}}}
//
// Client code should use the APIError type from errors.go instead.
type ErrorResponse = httpx.ErrorEnvelope

// ============================================================================
// Authentication Types
// ============================================================================

// LoginRequest is the body of POST /v1/auth/login.
// The server decides the outcome from the lookup and password check alone.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /v1/auth/register.
type RegisterRequest struct {
	// Name is the display name of the new user
	Name string `json:"name"`

	// Email must not already be registered. Matching is case-sensitive.
	Email string `json:"email"`

	// Password is hashed with bcrypt, which refuses more than 72 bytes. The
	// server answers such a password with a 500 HashingError.
	Password string `json:"password" validate:"bcryptlen"`
}

// TokenResponse is returned with 201 Created by both login and register.
type TokenResponse struct {
	// AccessToken is an HS256 JWT valid for one hour
	AccessToken string `json:"accessToken"`
}

// MeResponse is returned from GET /v1/auth/me.
type MeResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
// Used in the /readyz endpoint to indicate the status of each component.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Signer indicates the JWT signing capability status
	Signer string `json:"signer"`
}
