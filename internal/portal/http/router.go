package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/artistportal/internal/portal/domain"
	"github.com/aussiebroadwan/artistportal/internal/portal/observability"
	"github.com/aussiebroadwan/artistportal/internal/portal/service"
	"github.com/aussiebroadwan/artistportal/internal/portal/store"
	"github.com/aussiebroadwan/artistportal/pkg/httpx"
	"github.com/aussiebroadwan/artistportal/pkg/jwtx"
	"github.com/aussiebroadwan/artistportal/pkg/slogx"

	_ "github.com/aussiebroadwan/artistportal/api/portal" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// SessionCookieName is the HttpOnly cookie carrying the session token.
const SessionCookieName = "portal_session"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *observability.Metrics
	store        store.Store

	// Cookie names the browser session cookie. Defaults to SessionCookieName.
	Cookie httpx.SessionCookie

	// StaticDir holds the built single page app. Empty serves the embedded shell.
	StaticDir string

	AuthService    *service.AuthService
	SessionService *service.SessionService
	ProfileService *service.ProfileService
	CatalogService *service.CatalogService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	metrics *observability.Metrics,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		metrics:      metrics,
		store:        st,
		Cookie:       httpx.SessionCookie{Name: SessionCookieName},
	}

	// Metrics must sit directly on the mux to see the matched pattern.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		r.metrics.HTTPMiddleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerRoyalties()
	r.registerSystem()

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())

	// Everything else is the single page app.
	r.Mux.Handle("GET /", SPAHandler(r.StaticDir))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title						Artist Portal API
//	@version					0.1.0
//	@description				Login, profile and royalty endpoints for the artist portal.
//	@description
//	@description				Session tokens are EdDSA signed JWTs and can be verified using the JWKS endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/artistportal
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:3001
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authn verifies the session token and that the session is still live.
func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.verifier, httpx.AuthnOptions{
		Cookie: r.Cookie,
		Check:  r.SessionService.Check,
	})
}

func (r *Router) registerAuth() {
	login := &LoginHandler{
		AuthService:    r.AuthService,
		SessionService: r.SessionService,
		Cookie:         r.Cookie,
		Metrics:        r.metrics,
	}

	// POST /api/login - strict rate limit by IP + email to prevent brute force
	r.Mux.Handle("POST /api/login",
		httpx.Chain(login,
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	logout := &LogoutHandler{SessionService: r.SessionService, Cookie: r.Cookie}
	r.Mux.Handle("POST /api/logout",
		httpx.Chain(logout,
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	session := &SessionHandler{ProfileService: r.ProfileService}
	r.Mux.Handle("GET /api/session",
		httpx.Chain(session,
			r.authn(),
			httpx.RequireScope(domain.ScopeProfileRead),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UserHandler{ProfileService: r.ProfileService, Metrics: r.metrics}

	securedGet := httpx.Chain(http.HandlerFunc(h.HandleGet),
		r.authn(),
		httpx.RequireScope(domain.ScopeProfileRead),
		httpx.RequireSelf("id"),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	securedUpdate := httpx.Chain(http.HandlerFunc(h.HandleUpdate),
		r.authn(),
		httpx.RequireScope(domain.ScopeProfileWrite),
		httpx.RequireSelf("id"),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	// The handler checks the body's userId against the token subject.
	changePassword := &ChangePasswordHandler{AuthService: r.AuthService, Metrics: r.metrics}
	securedChangePassword := httpx.Chain(changePassword,
		r.authn(),
		httpx.RequireScope(domain.ScopeProfileWrite),
		httpx.RateLimitByUser(httpx.StrictLimit),
	)

	r.Mux.Handle("GET /api/user/{id}", securedGet)
	r.Mux.Handle("PUT /api/user/{id}", securedUpdate)
	r.Mux.Handle("POST /api/change-password", securedChangePassword)
}

func (r *Router) registerRoyalties() {
	h := &CatalogHandler{CatalogService: r.CatalogService}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			r.authn(),
			httpx.RequireScope(domain.ScopeRoyaltiesRead),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /api/royalties", secured(h.HandleRoyalties))
	r.Mux.Handle("GET /api/royalties/payments", secured(h.HandlePayments))
	r.Mux.Handle("GET /api/dashboard", secured(h.HandleDashboard))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /metrics", r.metrics.Handler())
}
