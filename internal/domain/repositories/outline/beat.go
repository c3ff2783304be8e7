package outline

import (
	"context"

	"plotline/internal/domain/models/outline"
)

// BeatRepository defines data access operations for beats
type BeatRepository interface {
	// Create inserts a new beat row
	Create(ctx context.Context, beat *outline.Beat) error

	// GetByID retrieves a beat matching both id and novel
	GetByID(ctx context.Context, id, novelID string) (*outline.Beat, error)

	// ListByNovel retrieves all beats under a novel
	ListByNovel(ctx context.Context, novelID string) ([]outline.Beat, error)

	// ListByChapter retrieves the beats of a novel attached to one chapter
	ListByChapter(ctx context.Context, chapterID, novelID string) ([]outline.Beat, error)

	// Update writes the full beat row back
	Update(ctx context.Context, beat *outline.Beat) error

	// Delete removes a beat row
	Delete(ctx context.Context, id, novelID string) error

	// DeleteByChapter removes every beat attached to a chapter.
	// Used by the chapter-delete cascade.
	DeleteByChapter(ctx context.Context, chapterID, novelID string) error
}
