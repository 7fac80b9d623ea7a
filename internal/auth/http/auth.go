package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/doorman/internal/auth/service"
	"github.com/aussiebroadwan/doorman/pkg/authsdk"
	"github.com/aussiebroadwan/doorman/pkg/cryptox"
	"github.com/aussiebroadwan/doorman/pkg/httpx"
	"github.com/aussiebroadwan/doorman/pkg/jwtx"
	"github.com/aussiebroadwan/doorman/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleLogin exchanges email and password for an access token.
//
//	@Summary		Log in
//	@Description	Verifies the password of a registered email and returns a signed access token valid for one hour.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LoginRequest	true	"Credentials"
//	@Success		201		{object}	authsdk.TokenResponse	"Access token"
//	@Failure		400		{object}	authsdk.ErrorResponse	"Body is not valid JSON"
//	@Failure		401		{object}	authsdk.ErrorResponse	"Password is not correct"
//	@Failure		404		{object}	authsdk.ErrorResponse	"Email is not registered"
//	@Failure		429		{object}	authsdk.ErrorResponse	"Rate limit exceeded"
//	@Failure		500		{object}	authsdk.ErrorResponse	"HashingError, SigningError or Error"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req authsdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			authsdk.NewNotFoundError(req.Email).WriteError(w)
		case errors.Is(err, service.ErrInvalidCredentials):
			authsdk.ErrInvalidCredentials.WriteError(w)
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, authsdk.TokenResponse{AccessToken: token})
}

// HandleRegister creates an account and returns an access token for it.
//
//	@Summary		Register
//	@Description	Creates a user with the default role and returns a signed access token valid for one hour.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.RegisterRequest	true	"New account"
//	@Success		201		{object}	authsdk.TokenResponse	"Access token"
//	@Failure		400		{object}	authsdk.ErrorResponse	"Body is not valid JSON"
//	@Failure		422		{object}	authsdk.ErrorResponse	"Email already taken"
//	@Failure		429		{object}	authsdk.ErrorResponse	"Rate limit exceeded"
//	@Failure		500		{object}	authsdk.ErrorResponse	"HashingError, SigningError or Error"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req authsdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := h.AuthService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyTaken) {
			authsdk.ErrEmailAlreadyTaken.WriteError(w)
			return
		}
		writeInternalError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, authsdk.TokenResponse{AccessToken: token})
}

// decodeBody reads the JSON body into dst. Field values are not checked;
// the store lookup and bcrypt decide the outcome. It writes the 400 itself
// and reports false when the request should stop.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(w, r, dst); err != nil {
		slogx.FromContext(r.Context()).Debug("bad request body", slog.Any("error", err))
		authsdk.ErrBadRequest.WriteError(w)
		return false
	}
	return true
}

// writeInternalError surfaces err as a 500 named after its failure class.
func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))

	name := authsdk.ErrorNameInternal
	switch {
	case errors.Is(err, cryptox.ErrHashing):
		name = authsdk.ErrorNameHashing
	case errors.Is(err, jwtx.ErrSigning):
		name = authsdk.ErrorNameSigning
	}
	authsdk.NewInternalError(name, err).WriteError(w)
}
