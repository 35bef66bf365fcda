package portalsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ChangePassword changes the signed-in user's password. confirm may be
// empty; when set it must equal next.
func (s *Session) ChangePassword(ctx context.Context, current, next, confirm string) error {
	u, err := s.Require()
	if err != nil {
		return err
	}

	req := ChangePasswordRequest{
		UserID:          u.ID,
		CurrentPassword: current,
		NewPassword:     next,
		ConfirmPassword: confirm,
	}
	if errs := req.Validate(); errs != nil {
		return ValidationError(errs)
	}

	var out MessageResponse
	return s.do(ctx, http.MethodPost, "/api/change-password", req, &out)
}

// GetProfile fetches the signed-in user's profile from the server.
func (s *Session) GetProfile(ctx context.Context) (*UserResponse, error) {
	u, err := s.Require()
	if err != nil {
		return nil, err
	}

	var out GetUserResponse
	if err := s.do(ctx, http.MethodGet, userPath(u.ID), nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// UpdateProfile overwrites the profile and refreshes the cached user.
func (s *Session) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*UserResponse, error) {
	u, err := s.Require()
	if err != nil {
		return nil, err
	}
	if errs := req.Validate(); errs != nil {
		return nil, ValidationError(errs)
	}

	var out UpdateProfileResponse
	if err := s.do(ctx, http.MethodPut, userPath(u.ID), req, &out); err != nil {
		return nil, err
	}

	if err := s.setUser(ctx, out.User); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Current asks the server to describe the held session.
func (s *Session) Current(ctx context.Context) (*SessionResponse, error) {
	var out SessionResponse
	if err := s.do(ctx, http.MethodGet, "/api/session", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Royalties lists royalty records. Empty period or platform means all.
func (s *Session) Royalties(ctx context.Context, period, platform string) (*RoyaltiesResponse, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	if platform != "" {
		q.Set("platform", platform)
	}

	path := "/api/royalties"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out RoyaltiesResponse
	if err := s.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Payments lists royalty payouts.
func (s *Session) Payments(ctx context.Context) (*PaymentsResponse, error) {
	var out PaymentsResponse
	if err := s.do(ctx, http.MethodGet, "/api/royalties/payments", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dashboard fetches the dashboard figures.
func (s *Session) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	var out DashboardResponse
	if err := s.do(ctx, http.MethodGet, "/api/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func userPath(id int64) string {
	return "/api/user/" + strconv.FormatInt(id, 10)
}
