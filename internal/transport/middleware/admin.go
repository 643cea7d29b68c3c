package middleware

import (
	"net/http"

	"github.com/didivui/phongnha-backend/internal/authz"
	"github.com/didivui/phongnha-backend/internal/domain"
	"github.com/didivui/phongnha-backend/pkg/ctxutil"
)

// RequireRole returns middleware that refuses requests whose principal
// does not hold at least the given role. Anonymous requests get 401,
// authenticated but underprivileged ones 403. Services still run their
// own capability checks; this only keeps obvious non-admin traffic off
// the admin routes.
func RequireRole(role domain.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := ctxutil.PrincipalFromCtx(r.Context())
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !authz.HasRole(principal, role) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
