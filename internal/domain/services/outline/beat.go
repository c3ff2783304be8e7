package outline

import (
	"context"

	"plotline/internal/domain/models/outline"
	"plotline/internal/httputil"
)

// BeatService handles beat business logic
type BeatService interface {
	// CreateBeat creates a new beat. A supplied chapter id is validated
	// against the same novel before anything is written.
	CreateBeat(ctx context.Context, req *CreateBeatRequest) (*outline.Beat, error)

	// GetBeat retrieves a beat after resolving novel ownership
	GetBeat(ctx context.Context, id, novelID, userID string) (*outline.Beat, error)

	// ListBeats retrieves beats under a novel, optionally narrowed to one
	// validated chapter.
	ListBeats(ctx context.Context, novelID, userID string, chapterID *string) ([]outline.Beat, error)

	// UpdateBeat applies a partial patch. A present non-null chapter_id is
	// re-validated; cross-novel reassignment is rejected.
	UpdateBeat(ctx context.Context, id, novelID, userID string, req *UpdateBeatRequest) (*outline.Beat, error)

	// DeleteBeat removes a beat
	DeleteBeat(ctx context.Context, id, novelID, userID string) error
}

// CreateBeatRequest represents a beat creation request
type CreateBeatRequest struct {
	UserID      string  `json:"-"`
	NovelID     string  `json:"-"`
	ChapterID   *string `json:"chapter_id,omitempty"`
	OrderIndex  *int    `json:"order_index,omitempty"` // defaults to 1
	BeatType    *string `json:"beat_type,omitempty"`
	Description string  `json:"description"`
	Viewpoint   *string `json:"viewpoint,omitempty"`
}

// UpdateBeatRequest represents a partial beat patch
type UpdateBeatRequest struct {
	ChapterID   httputil.OptionalString `json:"chapter_id"`
	OrderIndex  httputil.OptionalInt    `json:"order_index"`
	BeatType    httputil.OptionalString `json:"beat_type"`
	Description httputil.OptionalString `json:"description"`
	Viewpoint   httputil.OptionalString `json:"viewpoint"`
}

// FieldsPresent counts how many patch fields were supplied
func (r *UpdateBeatRequest) FieldsPresent() int {
	n := 0
	if r.ChapterID.Present {
		n++
	}
	if r.OrderIndex.Present {
		n++
	}
	for _, f := range []httputil.OptionalString{r.BeatType, r.Description, r.Viewpoint} {
		if f.Present {
			n++
		}
	}
	return n
}
