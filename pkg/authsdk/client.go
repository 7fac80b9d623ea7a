package authsdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the doorman authentication service.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// ValidateRequests rejects registrations the server would fail on
	// (passwords over bcrypt's 72 bytes) without a round trip. Disable it
	// to see the server's own answer.
	// Default: true
	ValidateRequests bool
}

// NewSDKClient creates a new auth service client with local validation enabled.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		ValidateRequests: true,
	}
}
