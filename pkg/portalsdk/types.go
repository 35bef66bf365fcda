package portalsdk

import "github.com/aussiebroadwan/artistportal/pkg/jwtx"

// ============================================================================
// Users and sessions
// ============================================================================

// UserResponse is an artist account as returned by the API. It never
// carries the password hash.
type UserResponse struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	ArtistName string `json:"artistName"`
	Avatar     string `json:"avatar,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	User UserResponse `json:"user"`

	// Token is the signed session token. Send it as a Bearer token or rely
	// on the portal_session cookie set alongside it.
	Token string `json:"token"`

	// ExpiresAt is the token expiry in epoch seconds.
	ExpiresAt int64 `json:"expiresAt"`
}

// SessionResponse describes the caller's current session.
type SessionResponse struct {
	User      UserResponse `json:"user"`
	SessionID string       `json:"sessionId"`
	ExpiresAt int64        `json:"expiresAt"`
	Scopes    []string     `json:"scopes"`
}

// ChangePasswordRequest is the body of POST /api/change-password.
type ChangePasswordRequest struct {
	UserID          int64  `json:"userId"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`

	// ConfirmPassword is optional; when sent it must equal NewPassword.
	ConfirmPassword string `json:"confirmPassword,omitempty"`
}

// GetUserResponse is returned by GET /api/user/{id}.
type GetUserResponse struct {
	User UserResponse `json:"user"`
}

// UpdateProfileRequest is the body of PUT /api/user/{id}. All fields are
// written on every update exactly as sent, surrounding whitespace included.
// Name and ArtistName must contain a non-space character.
type UpdateProfileRequest struct {
	Name       string `json:"name"`
	ArtistName string `json:"artistName"`
	Avatar     string `json:"avatar"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// UpdateProfileResponse acknowledges a profile update and returns the
// stored profile.
type UpdateProfileResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// ============================================================================
// Royalties and dashboard
// ============================================================================

type RoyaltyRecordResponse struct {
	ID        int64   `json:"id"`
	Track     string  `json:"track"`
	Platform  string  `json:"platform"`
	Streams   int64   `json:"streams"`
	Downloads int64   `json:"downloads"`
	Revenue   float64 `json:"revenue"`
	Period    string  `json:"period"`
	Status    string  `json:"status"`
}

type RoyaltyTotalsResponse struct {
	Revenue   float64 `json:"revenue"`
	Streams   int64   `json:"streams"`
	Downloads int64   `json:"downloads"`
}

// RoyaltiesResponse is returned by GET /api/royalties.
type RoyaltiesResponse struct {
	Records []RoyaltyRecordResponse `json:"records"`
	Totals  RoyaltyTotalsResponse   `json:"totals"`
}

type PaymentResponse struct {
	ID     int64   `json:"id"`
	Period string  `json:"period"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"` // YYYY-MM-DD
	Status string  `json:"status"`
	Method string  `json:"method"`
}

// PaymentsResponse is returned by GET /api/royalties/payments.
type PaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

type DashboardStatResponse struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
}

type ActivityResponse struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // YYYY-MM-DD
}

// DashboardResponse is returned by GET /api/dashboard.
type DashboardResponse struct {
	Stats          []DashboardStatResponse `json:"stats"`
	RecentActivity []ActivityResponse      `json:"recentActivity"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the readiness of each dependency.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// JWKSResponse is the public key set used to verify session tokens.
type JWKSResponse jwtx.JWKS

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}
