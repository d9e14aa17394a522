package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aishnar/aishnar-leads/internal/auth"
)

type contextKey string

const sessionKey contextKey = "session"

// RequireSession gates the review surface: every request re-checks the
// bearer token against the session manager, so a revoked or expired session
// is rejected on its very next request.
func RequireSession(sessions *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w)
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			session, err := sessions.Current(token)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFrom returns the session the guard attached, or nil outside guarded
// routes.
func SessionFrom(ctx context.Context) *auth.Session {
	session, _ := ctx.Value(sessionKey).(*auth.Session)
	return session
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
