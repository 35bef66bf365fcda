package httpx

import (
	"net/http"
	"time"
)

// SessionCookie describes the HttpOnly cookie that carries the session token
// for browser clients.
type SessionCookie struct {
	Name   string
	Secure bool
}

// Set writes the session token cookie, expiring with the token.
func (c SessionCookie) Set(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   c.Secure,
		Expires:  expiresAt,
	})
}

// Clear expires the session cookie.
func (c SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   c.Secure,
		MaxAge:   -1,
	})
}

// Read returns the cookie value, or "" when the cookie is absent.
func (c SessionCookie) Read(r *http.Request) string {
	if c.Name == "" {
		return ""
	}
	ck, err := r.Cookie(c.Name)
	if err != nil {
		return ""
	}
	return ck.Value
}
