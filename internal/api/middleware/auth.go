package middleware

import (
	"context"
	"net/http"

	"github.com/schedfy/dashboard-service/internal/api/handlers"
)

type contextKey string

// userIDKey context key under which the authenticated user id is stored
const userIDKey contextKey = "userID"

// UserIDHeader header carrying the authenticated user id, set by the
// API gateway in front of this service
const UserIDHeader = "X-User-ID"

// Auth rejects requests without an X-User-ID header and stores the id
// in the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(UserIDHeader)
		if userID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing X-User-ID header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID extracts the authenticated user id from the context; empty on
// unauthenticated routes.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
