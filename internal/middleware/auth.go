package middleware

import (
	"net/http"
	"strings"

	"plotline/internal/auth"
	"plotline/internal/httputil"
)

// Auth is the Identity Gate. It extracts the bearer token, verifies it, and
// stores the subject claim in the request context for handlers to read.
// Requests without a resolvable identity are rejected before any route or
// storage code runs. The health endpoint and the static suggestion catalog
// are exempt; neither touches user data.
func Auth(verifier auth.JWTVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" || strings.HasPrefix(r.URL.Path, "/api/catalog/") {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, httputil.WithUserID(r, claims.Subject))
		})
	}
}
