package authsdk

import (
	"context"
	"net/http"
)

// Login exchanges email and password for an access token.
func (c *SDKClient) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.postJSON(ctx, "/v1/auth/login", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns an access token for it.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	if c.ValidateRequests {
		if errs := req.Validate(); errs != nil {
			return nil, ErrValidation.WithDetails(errs)
		}
	}

	var out TokenResponse
	if err := c.postJSON(ctx, "/v1/auth/register", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the profile of the user the access token was issued to.
func (c *SDKClient) Me(ctx context.Context, accessToken string) (*MeResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/auth/me", nil, accessToken)
	if err != nil {
		return nil, err
	}

	var out MeResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
