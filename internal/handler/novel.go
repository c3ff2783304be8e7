package handler

import (
	"log/slog"
	"net/http"

	"plotline/internal/httputil"

	outlineSvc "plotline/internal/domain/services/outline"
)

// NovelHandler handles novel HTTP requests
type NovelHandler struct {
	novelService outlineSvc.NovelService
	logger       *slog.Logger
}

// NewNovelHandler creates a new novel handler
func NewNovelHandler(novelService outlineSvc.NovelService, logger *slog.Logger) *NovelHandler {
	return &NovelHandler{
		novelService: novelService,
		logger:       logger,
	}
}

// CreateNovel creates a new novel
// POST /api/novels
func (h *NovelHandler) CreateNovel(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req outlineSvc.CreateNovelRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.UserID = userID

	novel, err := h.novelService.CreateNovel(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusCreated, novel)
}

// ListNovels retrieves all novels owned by the caller
// GET /api/novels
func (h *NovelHandler) ListNovels(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	novels, err := h.novelService.ListNovels(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, listPayload{Items: novels, Total: len(novels)})
}

// GetNovel retrieves a novel by ID
// GET /api/novels/{id}
func (h *NovelHandler) GetNovel(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	novel, err := h.novelService.GetNovel(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, novel)
}

// UpdateNovel applies a partial patch to a novel
// PATCH /api/novels/{id}
func (h *NovelHandler) UpdateNovel(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req outlineSvc.UpdateNovelRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	novel, err := h.novelService.UpdateNovel(r.Context(), r.PathValue("id"), userID, &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, novel)
}
