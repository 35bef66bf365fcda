package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/artistportal/internal/portal/service"
	"github.com/aussiebroadwan/artistportal/pkg/httpx"
	"github.com/aussiebroadwan/artistportal/pkg/portalsdk"
	"github.com/aussiebroadwan/artistportal/pkg/slogx"
)

type SessionHandler struct {
	ProfileService *service.ProfileService
}

// ServeHTTP godoc
//
//	@Summary		Current session
//	@Description	Describes the caller's session and returns the signed-in user as currently stored.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	portalsdk.SessionResponse	"user, sessionId, expiresAt, scopes"
//	@Failure		401	{object}	portalsdk.ErrorResponse		"Authentication required"
//	@Failure		500	{object}	portalsdk.ErrorResponse		"Database error"
//	@Router			/api/session [get].
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := httpx.ClaimsFromCtx(ctx)
	if !ok {
		errUnauthorized.write(w)
		return
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		errUnauthorized.write(w)
		return
	}

	user, err := h.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			errUnauthorized.write(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to load session user", "err", err)
		errDatabase.write(w)
		return
	}

	resp := portalsdk.SessionResponse{
		User:      toUserResponse(user),
		SessionID: claims.SID,
		Scopes:    claims.Scopes,
	}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Unix()
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
