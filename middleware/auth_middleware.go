package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"notes_share_go/auth"

	"github.com/rs/zerolog"
)

type contextKey string

// UserIDKey holds the authenticated user's ID in the request context.
const UserIDKey contextKey = "userID"

// UsernameKey holds the authenticated username in the request context.
const UsernameKey contextKey = "username"

// IsGuestKey holds the guest flag in the request context.
const IsGuestKey contextKey = "isGuest"

// JWT checks the Authorization bearer header and, on success, stores the
// resolved identity in the request context for the handlers downstream.
func JWT(svc *auth.Service, log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "Missing Authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				unauthorized(w, "Invalid Authorization header (expected Bearer {token})")
				return
			}

			claims, err := svc.ValidateToken(parts[1])
			if err != nil {
				log.Debug().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("rejected credential")
				unauthorized(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, UsernameKey, claims.Username)
			ctx = context.WithValue(ctx, IsGuestKey, claims.IsGuest)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID extracts the authenticated user's ID from the context; ok is false
// outside the JWT middleware.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDKey).(int64)
	return id, ok
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
