package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/doorman/internal/auth/service"
	"github.com/aussiebroadwan/doorman/pkg/authsdk"
	"github.com/aussiebroadwan/doorman/pkg/httpx"
	"github.com/aussiebroadwan/doorman/pkg/slogx"
)

type MeHandler struct {
	UserService *service.UserService
}

// ServeHTTP returns the profile of the authenticated user.
//
//	@Summary		Current user
//	@Description	Returns the profile of the user the bearer token was issued to.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authsdk.MeResponse		"id, name, email, role"
//	@Failure		401	{object}	authsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		500	{object}	authsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		authsdk.ErrUnauthorized.WriteError(w)
		return
	}

	p, err := h.UserService.GetProfile(ctx, userID)
	if err != nil {
		// A valid token for a user that no longer exists is treated as invalid.
		if errors.Is(err, service.ErrUserNotFound) {
			authsdk.ErrUnauthorized.WriteError(w)
			return
		}
		log.Warn("failed to load profile", "user_id", userID, "err", err)
		writeInternalError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.MeResponse{
		ID:    p.User.ID.String(),
		Name:  p.User.Name,
		Email: p.User.Email,
		Role:  p.Role.Name,
	})
}
