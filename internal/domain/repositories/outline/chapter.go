package outline

import (
	"context"

	"plotline/internal/domain/models/outline"
)

// ChapterRepository defines data access operations for chapters
type ChapterRepository interface {
	// Create inserts a new chapter row
	Create(ctx context.Context, chapter *outline.Chapter) error

	// GetByID retrieves a chapter matching both id and novel
	GetByID(ctx context.Context, id, novelID string) (*outline.Chapter, error)

	// ListByNovel retrieves all chapters under a novel
	ListByNovel(ctx context.Context, novelID string) ([]outline.Chapter, error)

	// ListByPart retrieves the chapters of a novel that sit inside one part
	ListByPart(ctx context.Context, partID, novelID string) ([]outline.Chapter, error)

	// Update writes the full chapter row back
	Update(ctx context.Context, chapter *outline.Chapter) error

	// Delete removes a chapter row. Cascading its beats is the service's
	// responsibility, inside a transaction.
	Delete(ctx context.Context, id, novelID string) error
}
