package httpx

import (
	"net/http"
)

// RequireScope rejects sessions whose token does not grant scope. It must
// run after AuthnMiddleware.
func RequireScope(scope string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, ok := ClaimsFromCtx(r.Context())
			if !ok || !c.HasScope(scope) {
				w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_scope", scope="`+scope+`"`)
				WriteError(w, http.StatusForbidden, "insufficient_scope", "Access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSelf restricts a route to the user named by the path parameter,
// e.g. RequireSelf("id") on "GET /api/user/{id}".
func RequireSelf(param string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject := UserIDFromCtx(r.Context())
			if subject == "" || subject != r.PathValue(param) {
				WriteError(w, http.StatusForbidden, "forbidden", "Access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
