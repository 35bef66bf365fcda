package http

import (
	"net/http"

	"github.com/aussiebroadwan/artistportal/internal/portal/service"
	"github.com/aussiebroadwan/artistportal/pkg/httpx"
	"github.com/aussiebroadwan/artistportal/pkg/portalsdk"
	"github.com/aussiebroadwan/artistportal/pkg/slogx"
)

type LogoutHandler struct {
	SessionService *service.SessionService
	Cookie         httpx.SessionCookie
}

// ServeHTTP godoc
//
//	@Summary		Log out
//	@Description	Revokes the current session and clears the session cookie.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	portalsdk.MessageResponse	"Logged out"
//	@Failure		401	{object}	portalsdk.ErrorResponse		"Authentication required"
//	@Failure		500	{object}	portalsdk.ErrorResponse		"Database error"
//	@Router			/api/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := httpx.ClaimsFromCtx(ctx)
	if !ok {
		errUnauthorized.write(w)
		return
	}

	if err := h.SessionService.Revoke(ctx, claims); err != nil {
		slogx.FromContext(ctx).Error("failed to revoke session", "sid", claims.SID, "err", err)
		errDatabase.write(w)
		return
	}

	h.Cookie.Clear(w)
	httpx.WriteJSON(w, http.StatusOK, portalsdk.MessageResponse{Message: "Logged out"})
}
