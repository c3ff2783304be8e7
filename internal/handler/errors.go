package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"plotline/internal/domain"
	"plotline/internal/httputil"
)

// writeError maps domain errors to HTTP responses.
// Not-found deliberately carries a generic message: whether the resource is
// missing or owned by someone else must stay indistinguishable.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, "unauthorized")
	default:
		logger.Error("unexpected error", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
