package handler

import (
	"log/slog"
	"net/http"

	"plotline/internal/httputil"

	outlineSvc "plotline/internal/domain/services/outline"
)

// PartHandler handles part HTTP requests
type PartHandler struct {
	partService outlineSvc.PartService
	logger      *slog.Logger
}

// NewPartHandler creates a new part handler
func NewPartHandler(partService outlineSvc.PartService, logger *slog.Logger) *PartHandler {
	return &PartHandler{
		partService: partService,
		logger:      logger,
	}
}

// CreatePart creates a new part under a novel
// POST /api/novels/{novelID}/parts
func (h *PartHandler) CreatePart(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req outlineSvc.CreatePartRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.UserID = userID
	req.NovelID = r.PathValue("novelID")

	part, err := h.partService.CreatePart(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusCreated, part)
}

// ListParts retrieves all parts under a novel
// GET /api/novels/{novelID}/parts
func (h *PartHandler) ListParts(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	parts, err := h.partService.ListParts(r.Context(), r.PathValue("novelID"), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, listPayload{Items: parts, Total: len(parts)})
}

// GetPart retrieves a part by ID
// GET /api/novels/{novelID}/parts/{id}
func (h *PartHandler) GetPart(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	part, err := h.partService.GetPart(r.Context(), r.PathValue("id"), r.PathValue("novelID"), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, part)
}

// UpdatePart applies a partial patch to a part
// PATCH /api/novels/{novelID}/parts/{id}
func (h *PartHandler) UpdatePart(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req outlineSvc.UpdatePartRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	part, err := h.partService.UpdatePart(r.Context(), r.PathValue("id"), r.PathValue("novelID"), userID, &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, part)
}

// DeletePart deletes a part; its chapters are orphaned, not removed
// DELETE /api/novels/{novelID}/parts/{id}
func (h *PartHandler) DeletePart(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.partService.DeletePart(r.Context(), r.PathValue("id"), r.PathValue("novelID"), userID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, deletePayload{Deleted: true})
}
