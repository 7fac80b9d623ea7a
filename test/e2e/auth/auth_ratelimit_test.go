//go:build e2e

package auth_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/doorman/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLoginEndpoint verifies that /v1/auth/login is rate limited.
// The strict profile allows a burst of 10 per minute per IP.
func TestRateLimitLoginEndpoint(t *testing.T) {
	client := setupAuthContainerWithDefaultRateLimits(t)

	var lastErr error
	for i := range 11 {
		_, err := client.Login(t.Context(), authsdk.LoginRequest{Email: "ghost@example.com", Password: "wrong"})
		require.Error(t, err)
		if i < 10 {
			var apiErr *authsdk.APIError
			require.True(t, errors.As(err, &apiErr))
			require.NotEqual(t, http.StatusTooManyRequests, apiErr.StatusCode, "request %d should not be limited yet", i+1)
		}
		lastErr = err
	}

	var apiErr *authsdk.APIError
	require.True(t, errors.As(lastErr, &apiErr))
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	require.Equal(t, authsdk.ErrorNameRateLimit, apiErr.Name)
}
