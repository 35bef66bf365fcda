package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/artistportal/internal/portal/domain"
	"github.com/aussiebroadwan/artistportal/internal/portal/observability"
	"github.com/aussiebroadwan/artistportal/internal/portal/service"
	"github.com/aussiebroadwan/artistportal/pkg/httpx"
	"github.com/aussiebroadwan/artistportal/pkg/portalsdk"
	"github.com/aussiebroadwan/artistportal/pkg/slogx"
)

type UserHandler struct {
	ProfileService *service.ProfileService
	Metrics        *observability.Metrics
}

// HandleGet godoc
//
//	@Summary		Get profile
//	@Description	Returns the caller's own profile.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"User ID"
//	@Success		200	{object}	portalsdk.GetUserResponse	"user: id, username, email, name, artistName, avatar"
//	@Failure		401	{object}	portalsdk.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	portalsdk.ErrorResponse	"Access denied"
//	@Failure		404	{object}	portalsdk.ErrorResponse	"User not found"
//	@Failure		500	{object}	portalsdk.ErrorResponse	"Database error"
//	@Router			/api/user/{id} [get].
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathUserID(r)
	if !ok {
		errInvalidID.write(w)
		return
	}

	user, err := h.ProfileService.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			errUserNotFound.write(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to load profile", "user_id", id, "err", err)
		errDatabase.write(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.GetUserResponse{User: toUserResponse(user)})
}

// HandleUpdate godoc
//
//	@Summary		Update profile
//	@Description	Overwrites name, artistName and avatar on the caller's own profile.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int									true	"User ID"
//	@Param			request	body		portalsdk.UpdateProfileRequest		true	"name, artistName, avatar"
//	@Success		200		{object}	portalsdk.UpdateProfileResponse		"Profile updated successfully"
//	@Failure		400		{object}	portalsdk.ErrorResponse				"Validation failed"
//	@Failure		401		{object}	portalsdk.ErrorResponse				"Authentication required"
//	@Failure		403		{object}	portalsdk.ErrorResponse				"Access denied"
//	@Failure		404		{object}	portalsdk.ErrorResponse				"User not found"
//	@Failure		500		{object}	portalsdk.ErrorResponse				"Database error"
//	@Router			/api/user/{id} [put].
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathUserID(r)
	if !ok {
		errInvalidID.write(w)
		return
	}

	var req portalsdk.UpdateProfileRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.Metrics.RecordProfileUpdate(observability.OutcomeBadRequest)
		errInvalidBody.write(w)
		return
	}

	if errs := req.Validate(); errs != nil {
		h.Metrics.RecordProfileUpdate(observability.OutcomeBadRequest)
		fieldsError(errs).writeWithDetails(w, errs)
		return
	}

	user, err := h.ProfileService.UpdateProfile(ctx, id, domain.ProfileUpdate{
		Name:       req.Name,
		ArtistName: req.ArtistName,
		Avatar:     req.Avatar,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			h.Metrics.RecordProfileUpdate(observability.OutcomeNotFound)
			errUserNotFound.write(w)
			return
		}
		h.Metrics.RecordProfileUpdate(observability.OutcomeError)
		slogx.FromContext(ctx).Error("failed to update profile", "user_id", id, "err", err)
		errDatabase.write(w)
		return
	}

	h.Metrics.RecordProfileUpdate(observability.OutcomeSuccess)
	httpx.WriteJSON(w, http.StatusOK, portalsdk.UpdateProfileResponse{
		Message: "Profile updated successfully",
		User:    toUserResponse(user),
	})
}

func pathUserID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
