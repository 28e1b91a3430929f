package middleware

import (
	"net/http"
	"strings"

	"github.com/jymtan/contact-manager-be/internal/auth"
	"github.com/jymtan/contact-manager-be/internal/logging"
)

const bearerPrefix = "Bearer "

// Authenticate inspects the Authorization header once per request and, when
// it carries a valid token, attaches a Principal to the request context.
// It never rejects a request: a missing or invalid token just means no
// principal, and the authorization layer decides downstream. This keeps
// public and protected routes on one pipeline.
func Authenticate(tokens *auth.TokenManager, log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Preflight requests carry no credentials.
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Decode(strings.TrimSpace(header[len(bearerPrefix):]))
			if err != nil {
				log.Warn(r.Context(), "discarding invalid bearer token", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			// Guard against duplicate invocation in the chain.
			if _, ok := auth.PrincipalFrom(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			principal := &auth.Principal{
				Email:  claims.Subject,
				Role:   auth.NormalizeRole(claims.Role),
				UserID: claims.UserID,
			}
			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		})
	}
}
