package handler

import (
	"log/slog"
	"net/http"

	"plotline/internal/httputil"

	outlineSvc "plotline/internal/domain/services/outline"
)

// ChapterHandler handles chapter HTTP requests
type ChapterHandler struct {
	chapterService outlineSvc.ChapterService
	logger         *slog.Logger
}

// NewChapterHandler creates a new chapter handler
func NewChapterHandler(chapterService outlineSvc.ChapterService, logger *slog.Logger) *ChapterHandler {
	return &ChapterHandler{
		chapterService: chapterService,
		logger:         logger,
	}
}

// CreateChapter creates a new chapter under a novel
// POST /api/novels/{novelID}/chapters
func (h *ChapterHandler) CreateChapter(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req outlineSvc.CreateChapterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.UserID = userID
	req.NovelID = r.PathValue("novelID")

	chapter, err := h.chapterService.CreateChapter(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusCreated, chapter)
}

// ListChapters retrieves chapters under a novel, optionally filtered by part
// GET /api/novels/{novelID}/chapters?part_id={partID}
func (h *ChapterHandler) ListChapters(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	chapters, err := h.chapterService.ListChapters(r.Context(), r.PathValue("novelID"), userID, optionalQuery(r, "part_id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, listPayload{Items: chapters, Total: len(chapters)})
}

// GetChapter retrieves a chapter by ID
// GET /api/novels/{novelID}/chapters/{id}
func (h *ChapterHandler) GetChapter(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	chapter, err := h.chapterService.GetChapter(r.Context(), r.PathValue("id"), r.PathValue("novelID"), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, chapter)
}

// UpdateChapter applies a partial patch to a chapter
// PATCH /api/novels/{novelID}/chapters/{id}
func (h *ChapterHandler) UpdateChapter(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req outlineSvc.UpdateChapterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	chapter, err := h.chapterService.UpdateChapter(r.Context(), r.PathValue("id"), r.PathValue("novelID"), userID, &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, chapter)
}

// DeleteChapter deletes a chapter and all of its beats
// DELETE /api/novels/{novelID}/chapters/{id}
func (h *ChapterHandler) DeleteChapter(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.chapterService.DeleteChapter(r.Context(), r.PathValue("id"), r.PathValue("novelID"), userID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, deletePayload{Deleted: true})
}
