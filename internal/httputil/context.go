package httputil

import (
	"context"
	"net/http"
)

// ctxKey is unexported so no other package can collide with these keys
type ctxKey int

const userIDKey ctxKey = iota

// WithUserID returns a request whose context carries the authenticated user
// id. The auth middleware is the only production writer; tests use it to
// simulate an authenticated request.
func WithUserID(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
}

// GetUserID returns the authenticated user id, or "" when the request never
// passed the auth middleware
func GetUserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}
