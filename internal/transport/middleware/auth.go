package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/didivui/phongnha-backend/internal/domain"
	"github.com/didivui/phongnha-backend/pkg/ctxutil"
)

type principalResolver interface {
	ResolvePrincipal(ctx context.Context, accessToken string) (*domain.Principal, error)
}

// Auth returns middleware that resolves the caller's principal from a
// Bearer token and stores it in the request context. Requests without a
// token pass through anonymously; handlers decide whether anonymous
// access is acceptable. A present but invalid token is rejected with
// 401 so a client with an expired token learns to refresh instead of
// silently losing its role.
func Auth(resolver principalResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			principal, err := resolver.ResolvePrincipal(r.Context(), token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithPrincipal(r.Context(), *principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
