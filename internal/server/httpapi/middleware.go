package httpapi

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mkravets/tasklist/internal/server/auth"
)

// RequireAuth validates the bearer token and injects the resolved identity
// into the request context. A missing or malformed Authorization header is
// rejected with 401; a present but invalid or expired token with 403. Every
// request re-verifies its token; no session state is held between requests.
func RequireAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				writeError(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			claims, err := auth.ParseToken(strings.TrimSpace(parts[1]), secret)
			if err != nil {
				writeError(w, http.StatusForbidden, "invalid token")
				return
			}

			ctx := WithIdentity(r.Context(), &Identity{ID: claims.UserID, Email: claims.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// logRequests tags every request with a generated id, echoes it in the
// X-Request-Id header, and logs the request line.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New().String()
		w.Header().Set("X-Request-Id", reqID)
		s.logger.With("request_id", reqID).Info(r.Context(), "request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
