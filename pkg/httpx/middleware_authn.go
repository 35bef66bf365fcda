package httpx

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/artistportal/pkg/jwtx"
	"github.com/aussiebroadwan/artistportal/pkg/slogx"
)

// SessionCheck confirms a cryptographically valid session is still live,
// for example that it was not revoked and its user still exists.
type SessionCheck func(ctx context.Context, c jwtx.Claims) error

// AuthnOptions configures AuthnMiddleware.
type AuthnOptions struct {
	// Cookie is consulted when no Authorization header is present.
	Cookie SessionCookie

	// Check runs after signature and expiry validation. Optional.
	Check SessionCheck
}

// AuthnMiddleware requires a valid session token, taken from a Bearer
// Authorization header or the session cookie.
func AuthnMiddleware(v jwtx.Verifier, opts AuthnOptions) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := BearerToken(r)
			if raw == "" {
				raw = opts.Cookie.Read(r)
			}
			if raw == "" {
				writeBearerError(w, "missing session token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				writeBearerError(w, "token verification failed")
				log.Warn("jwt verify failed", "err", err)
				return
			}

			if err := claims.CheckTime(time.Now(), 0); err != nil {
				writeBearerError(w, "token expired")
				return
			}

			if opts.Check != nil {
				if err := opts.Check(ctx, claims); err != nil {
					writeBearerError(w, "session is no longer valid")
					log.Info("session rejected", "sid", claims.SID, "err", err)
					return
				}
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from an "Authorization: Bearer" header.
func BearerToken(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return slogx.WithUserID(ctx, c.Subject)
}

// RFC 6750-compliant error response for bearer auth, with a JSON body.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
}
