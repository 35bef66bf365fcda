package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/artistportal/internal/portal/observability"
	"github.com/aussiebroadwan/artistportal/internal/portal/service"
	"github.com/aussiebroadwan/artistportal/pkg/httpx"
	"github.com/aussiebroadwan/artistportal/pkg/portalsdk"
	"github.com/aussiebroadwan/artistportal/pkg/slogx"
)

type ChangePasswordHandler struct {
	AuthService *service.AuthService
	Metrics     *observability.Metrics
}

// ServeHTTP godoc
//
//	@Summary		Change password
//	@Description	Replaces the caller's password after checking the current one. userId must be the caller.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.ChangePasswordRequest	true	"userId, currentPassword, newPassword"
//	@Success		200		{object}	portalsdk.MessageResponse		"Password updated successfully"
//	@Failure		400		{object}	portalsdk.ErrorResponse			"All fields are required"
//	@Failure		401		{object}	portalsdk.ErrorResponse			"Current password is incorrect"
//	@Failure		403		{object}	portalsdk.ErrorResponse			"Access denied"
//	@Failure		404		{object}	portalsdk.ErrorResponse			"User not found"
//	@Failure		500		{object}	portalsdk.ErrorResponse			"Database error"
//	@Router			/api/change-password [post].
func (h *ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.ChangePasswordRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.Metrics.RecordPasswordChange(observability.OutcomeBadRequest)
		errInvalidBody.write(w)
		return
	}

	if errs := req.Validate(); errs != nil {
		h.Metrics.RecordPasswordChange(observability.OutcomeBadRequest)
		fieldsError(errs).writeWithDetails(w, errs)
		return
	}

	if httpx.UserIDFromCtx(ctx) != strconv.FormatInt(req.UserID, 10) {
		errForbidden.write(w)
		return
	}

	err := h.AuthService.ChangePassword(ctx, req.UserID, req.CurrentPassword, req.NewPassword)
	switch {
	case err == nil:
		h.Metrics.RecordPasswordChange(observability.OutcomeSuccess)
		httpx.WriteJSON(w, http.StatusOK, portalsdk.MessageResponse{Message: "Password updated successfully"})
	case errors.Is(err, service.ErrPasswordPolicy):
		h.Metrics.RecordPasswordChange(observability.OutcomeBadRequest)
		errInvalidFields.writeWithDetails(w, map[string]string{"newPassword": "must be 6-128 characters"})
	case errors.Is(err, service.ErrInvalidCredentials):
		h.Metrics.RecordPasswordChange(observability.OutcomeInvalid)
		errCurrentPassword.write(w)
	case errors.Is(err, service.ErrUserNotFound):
		h.Metrics.RecordPasswordChange(observability.OutcomeNotFound)
		errUserNotFound.write(w)
	default:
		h.Metrics.RecordPasswordChange(observability.OutcomeError)
		log.Error("failed to change password", "user_id", req.UserID, "err", err)
		errDatabase.write(w)
	}
}
