package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/artistportal/internal/portal/observability"
	"github.com/aussiebroadwan/artistportal/internal/portal/service"
	"github.com/aussiebroadwan/artistportal/pkg/httpx"
	"github.com/aussiebroadwan/artistportal/pkg/portalsdk"
	"github.com/aussiebroadwan/artistportal/pkg/slogx"
)

type LoginHandler struct {
	AuthService    *service.AuthService
	SessionService *service.SessionService
	Cookie         httpx.SessionCookie
	Metrics        *observability.Metrics
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Verifies an email and password and starts a session. The session token is returned in the body
//	@Description	and as an HttpOnly cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	portalsdk.LoginResponse		"user, token, expiresAt"
//	@Failure		400		{object}	portalsdk.ErrorResponse		"Email and password are required"
//	@Failure		401		{object}	portalsdk.ErrorResponse		"Invalid credentials"
//	@Failure		429		{object}	portalsdk.ErrorResponse		"Too many attempts"
//	@Failure		500		{object}	portalsdk.ErrorResponse		"Database error"
//	@Router			/api/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.LoginRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.Metrics.RecordLogin(observability.OutcomeBadRequest)
		errInvalidBody.write(w)
		return
	}

	if errs := req.Validate(); errs != nil {
		h.Metrics.RecordLogin(observability.OutcomeBadRequest)
		errLoginFields.writeWithDetails(w, errs)
		return
	}

	user, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			h.Metrics.RecordLogin(observability.OutcomeInvalid)
			errInvalidCredentials.write(w)
		default:
			h.Metrics.RecordLogin(observability.OutcomeError)
			log.Error("login failed", "err", err)
			errDatabase.write(w)
		}
		return
	}

	sess, err := h.SessionService.Issue(ctx, user)
	if err != nil {
		h.Metrics.RecordLogin(observability.OutcomeError)
		log.Error("failed to issue session", "user_id", user.ID, "err", err)
		errInternal.write(w)
		return
	}

	h.Metrics.RecordLogin(observability.OutcomeSuccess)
	h.Cookie.Set(w, sess.Token, sess.ExpiresAt)
	httpx.WriteJSON(w, http.StatusOK, portalsdk.LoginResponse{
		User:      toUserResponse(sess.User),
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt.Unix(),
	})
}
