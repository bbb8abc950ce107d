package auth

import (
	"context"
	"net/http"
	"strings"

	"cambio/internal/api/response"
	"cambio/internal/domain"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionVerifier resolves a bearer token into a session.
type SessionVerifier interface {
	Session(token string) (domain.Session, error)
}

func WithSession(ctx context.Context, s domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

func SessionFrom(ctx context.Context) (domain.Session, bool) {
	s, ok := ctx.Value(sessionKey).(domain.Session)
	return s, ok && s.UserID != ""
}

func extractToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

// Middleware rejects requests without a valid session token and stores the
// session in the request context for handlers to pass on explicitly.
func Middleware(v SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				response.Error(w, http.StatusUnauthorized, "no token provided")
				return
			}
			session, err := v.Session(token)
			if err != nil {
				response.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// RequireSession returns the request session or writes 401.
func RequireSession(w http.ResponseWriter, r *http.Request) (domain.Session, bool) {
	s, ok := SessionFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "authentication required")
	}
	return s, ok
}
