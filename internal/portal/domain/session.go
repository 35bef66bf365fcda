package domain

import "time"

// Session scopes granted to every signed-in artist.
const (
	ScopeProfileRead   = "profile:read"
	ScopeProfileWrite  = "profile:write"
	ScopeRoyaltiesRead = "royalties:read"
)

// DefaultScopes are attached to each session token at login.
var DefaultScopes = []string{ScopeProfileRead, ScopeProfileWrite, ScopeRoyaltiesRead}

// Session is an issued capability token and the user it belongs to.
type Session struct {
	Token     string
	ID        string // sid claim
	User      User
	ExpiresAt time.Time
}

// RevokedSession marks a session ID as logged out until its token would
// have expired anyway.
type RevokedSession struct {
	SessionID string
	UserID    int64
	ExpiresAt time.Time
	RevokedAt time.Time
}
