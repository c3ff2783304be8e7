package handler

import (
	"fmt"
	"net/http"
	"time"

	"plotline/internal/domain"
	"plotline/internal/httputil"
)

// requireUser extracts the authenticated user id from the request context.
// Every operation calls this first and propagates its failure verbatim.
func requireUser(r *http.Request) (string, error) {
	userID := httputil.GetUserID(r)
	if userID == "" {
		return "", fmt.Errorf("%w: no authenticated user", domain.ErrUnauthorized)
	}
	return userID, nil
}

// listPayload is the uniform list response body
type listPayload struct {
	Items interface{} `json:"items"`
	Total int         `json:"total"`
}

// deletePayload acknowledges a completed delete
type deletePayload struct {
	Deleted bool `json:"deleted"`
}

// optionalQuery returns a pointer to a query parameter, or nil if absent
func optionalQuery(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

// Health is a simple liveness endpoint
// GET /health
func Health(w http.ResponseWriter, _ *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now(),
	})
}
