package outline

import (
	"context"

	"plotline/internal/domain/models/outline"
	"plotline/internal/httputil"
)

// ChapterService handles chapter business logic
type ChapterService interface {
	// CreateChapter creates a new chapter. A supplied part id is validated
	// against the same novel before anything is written.
	CreateChapter(ctx context.Context, req *CreateChapterRequest) (*outline.Chapter, error)

	// GetChapter retrieves a chapter after resolving novel ownership
	GetChapter(ctx context.Context, id, novelID, userID string) (*outline.Chapter, error)

	// ListChapters retrieves chapters under a novel, optionally narrowed to
	// one validated part.
	ListChapters(ctx context.Context, novelID, userID string, partID *string) ([]outline.Chapter, error)

	// UpdateChapter applies a partial patch. A present non-null part_id is
	// re-validated; cross-novel reassignment is rejected.
	UpdateChapter(ctx context.Context, id, novelID, userID string, req *UpdateChapterRequest) (*outline.Chapter, error)

	// DeleteChapter removes a chapter and all beats attached to it, inside
	// a single transaction.
	DeleteChapter(ctx context.Context, id, novelID, userID string) error
}

// CreateChapterRequest represents a chapter creation request
type CreateChapterRequest struct {
	UserID        string  `json:"-"`
	NovelID       string  `json:"-"`
	PartID        *string `json:"part_id,omitempty"`
	OrderIndex    *int    `json:"order_index,omitempty"` // defaults to 1
	Title         *string `json:"title,omitempty"`
	POVCharacter  *string `json:"pov_character,omitempty"`
	Summary       *string `json:"summary,omitempty"`
	WordCountGoal *int    `json:"word_count_goal,omitempty"`
}

// UpdateChapterRequest represents a partial chapter patch
type UpdateChapterRequest struct {
	PartID        httputil.OptionalString `json:"part_id"`
	OrderIndex    httputil.OptionalInt    `json:"order_index"`
	Title         httputil.OptionalString `json:"title"`
	POVCharacter  httputil.OptionalString `json:"pov_character"`
	Summary       httputil.OptionalString `json:"summary"`
	WordCountGoal httputil.OptionalInt    `json:"word_count_goal"`
}

// FieldsPresent counts how many patch fields were supplied
func (r *UpdateChapterRequest) FieldsPresent() int {
	n := 0
	if r.PartID.Present {
		n++
	}
	if r.OrderIndex.Present {
		n++
	}
	for _, f := range []httputil.OptionalString{r.Title, r.POVCharacter, r.Summary} {
		if f.Present {
			n++
		}
	}
	if r.WordCountGoal.Present {
		n++
	}
	return n
}
