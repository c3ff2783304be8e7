package handler

import (
	"log/slog"
	"net/http"

	"plotline/internal/catalog"
	"plotline/internal/httputil"
)

// CatalogHandler serves the embedded outline suggestion catalog
type CatalogHandler struct {
	registry *catalog.Registry
	logger   *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(registry *catalog.Registry, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		registry: registry,
		logger:   logger,
	}
}

// GetOutlineCatalog returns status and beat type suggestions
// GET /api/catalog/outline
func (h *CatalogHandler) GetOutlineCatalog(w http.ResponseWriter, r *http.Request) {
	httputil.RespondData(w, http.StatusOK, h.registry.Outline())
}
