package rest

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/didivui/phongnha-backend/internal/config"
	"github.com/didivui/phongnha-backend/internal/domain"
	"github.com/didivui/phongnha-backend/internal/transport/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Guestbook *GuestbookHandler
	Business  *BusinessHandler
	Category  *CategoryHandler
	User      *UserHandler
	Health    *HealthHandler
}

// NewRouter builds the HTTP routing table and wraps it in the standard
// middleware chain. authMW resolves bearer tokens into principals; the
// services behind the handlers make the actual authorization decisions,
// the router only keeps anonymous and non-admin traffic off the admin
// prefix. limiter and metrics may be nil, for tests and for deployments
// that disable them.
func NewRouter(cfg *config.Config, log *slog.Logger, h Handlers, authMW middleware.Middleware, limiter *middleware.RateLimiter, metrics *middleware.Metrics) http.Handler {
	mux := http.NewServeMux()

	route := func(pattern string, fn http.HandlerFunc, mws ...middleware.Middleware) {
		var handler http.Handler = fn
		if len(mws) > 0 {
			handler = middleware.Chain(mws...)(handler)
		}
		if metrics != nil {
			_, path, _ := strings.Cut(pattern, " ")
			handler = metrics.Instrument(path)(handler)
		}
		mux.Handle(pattern, handler)
	}

	// Probes and metrics stay outside the API prefix.
	mux.HandleFunc("GET /livez", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)
	mux.HandleFunc("GET /healthz", h.Health.Health)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics.Handler())
	}

	route("POST /api/v1/auth/register", h.Auth.Register)
	route("POST /api/v1/auth/login", h.Auth.Login)
	route("POST /api/v1/auth/refresh", h.Auth.Refresh)
	route("POST /api/v1/auth/logout", h.Auth.Logout)

	route("GET /api/v1/me", h.User.Me)
	route("PATCH /api/v1/me", h.User.UpdateProfile)

	// The public guestbook submission gets its own tighter budget.
	var submitMWs []middleware.Middleware
	if limiter != nil {
		submitMWs = append(submitMWs, limiter.Limit(cfg.RateLimit.SubmitPerMinute))
	}
	route("POST /api/v1/guestbook", h.Guestbook.Submit, submitMWs...)
	route("GET /api/v1/guestbook", h.Guestbook.ListApproved)

	route("GET /api/v1/categories", h.Category.List)
	route("GET /api/v1/categories/{id}", h.Category.Get)

	route("GET /api/v1/businesses", h.Business.List)
	route("GET /api/v1/businesses/{id}", h.Business.Get)
	route("POST /api/v1/businesses", h.Business.Create)
	route("PUT /api/v1/businesses/{id}", h.Business.Update)
	route("DELETE /api/v1/businesses/{id}", h.Business.Delete)
	route("POST /api/v1/businesses/{id}/like", h.Business.Like)
	route("DELETE /api/v1/businesses/{id}/like", h.Business.Unlike)

	// Admin prefix. Every operation below is admin-only in its service;
	// the role gate here just rejects the obvious cases early.
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	route("GET /api/v1/admin/guestbook", h.Guestbook.Queue, adminOnly)
	route("GET /api/v1/admin/guestbook/{id}", h.Guestbook.Get, adminOnly)
	route("POST /api/v1/admin/guestbook/{id}/moderate", h.Guestbook.Moderate, adminOnly)
	route("PATCH /api/v1/admin/guestbook/{id}", h.Guestbook.Edit, adminOnly)

	route("POST /api/v1/admin/businesses/{id}/verify", h.Business.Verify, adminOnly)

	route("POST /api/v1/admin/categories", h.Category.Create, adminOnly)
	route("PUT /api/v1/admin/categories/{id}", h.Category.Update, adminOnly)
	route("DELETE /api/v1/admin/categories/{id}", h.Category.Delete, adminOnly)

	route("GET /api/v1/admin/users", h.User.List, adminOnly)
	route("PUT /api/v1/admin/users/{id}/role", h.User.SetRole, adminOnly)
	route("PUT /api/v1/admin/users/{id}/active", h.User.SetActive, adminOnly)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.CORS(cfg.CORS),
	}
	if limiter != nil {
		mws = append(mws, limiter.Limit(cfg.RateLimit.PerMinute))
	}
	if authMW != nil {
		mws = append(mws, authMW)
	}

	return middleware.Chain(mws...)(mux)
}
