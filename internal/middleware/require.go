package middleware

import (
	"net/http"

	"github.com/jymtan/contact-manager-be/internal/auth"
	"github.com/jymtan/contact-manager-be/internal/http/respond"
)

// RequireAuth rejects requests that carry no principal with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.PrincipalFrom(r.Context()); !ok {
			respond.Error(w, http.StatusUnauthorized, respond.CategoryUnauthenticated, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects requests without a principal with 401, and requests
// whose principal lacks the given role with 403.
func RequireRole(role string) func(http.Handler) http.Handler {
	want := auth.NormalizeRole(role)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := auth.PrincipalFrom(r.Context())
			if !ok {
				respond.Error(w, http.StatusUnauthorized, respond.CategoryUnauthenticated, "authentication required")
				return
			}
			if auth.NormalizeRole(principal.Role) != want {
				respond.Error(w, http.StatusForbidden, respond.CategoryForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
