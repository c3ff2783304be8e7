package handler

import (
	"log/slog"
	"net/http"

	"plotline/internal/httputil"

	outlineSvc "plotline/internal/domain/services/outline"
)

// BeatHandler handles beat HTTP requests
type BeatHandler struct {
	beatService outlineSvc.BeatService
	logger      *slog.Logger
}

// NewBeatHandler creates a new beat handler
func NewBeatHandler(beatService outlineSvc.BeatService, logger *slog.Logger) *BeatHandler {
	return &BeatHandler{
		beatService: beatService,
		logger:      logger,
	}
}

// CreateBeat creates a new beat under a novel
// POST /api/novels/{novelID}/beats
func (h *BeatHandler) CreateBeat(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req outlineSvc.CreateBeatRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.UserID = userID
	req.NovelID = r.PathValue("novelID")

	beat, err := h.beatService.CreateBeat(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusCreated, beat)
}

// ListBeats retrieves beats under a novel, optionally filtered by chapter
// GET /api/novels/{novelID}/beats?chapter_id={chapterID}
func (h *BeatHandler) ListBeats(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	beats, err := h.beatService.ListBeats(r.Context(), r.PathValue("novelID"), userID, optionalQuery(r, "chapter_id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, listPayload{Items: beats, Total: len(beats)})
}

// GetBeat retrieves a beat by ID
// GET /api/novels/{novelID}/beats/{id}
func (h *BeatHandler) GetBeat(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	beat, err := h.beatService.GetBeat(r.Context(), r.PathValue("id"), r.PathValue("novelID"), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, beat)
}

// UpdateBeat applies a partial patch to a beat
// PATCH /api/novels/{novelID}/beats/{id}
func (h *BeatHandler) UpdateBeat(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req outlineSvc.UpdateBeatRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	beat, err := h.beatService.UpdateBeat(r.Context(), r.PathValue("id"), r.PathValue("novelID"), userID, &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, beat)
}

// DeleteBeat deletes a single beat
// DELETE /api/novels/{novelID}/beats/{id}
func (h *BeatHandler) DeleteBeat(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.beatService.DeleteBeat(r.Context(), r.PathValue("id"), r.PathValue("novelID"), userID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, deletePayload{Deleted: true})
}
