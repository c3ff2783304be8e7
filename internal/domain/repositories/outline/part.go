package outline

import (
	"context"

	"plotline/internal/domain/models/outline"
)

// PartRepository defines data access operations for parts
type PartRepository interface {
	// Create inserts a new part row
	Create(ctx context.Context, part *outline.Part) error

	// GetByID retrieves a part matching both id and novel
	GetByID(ctx context.Context, id, novelID string) (*outline.Part, error)

	// ListByNovel retrieves all parts under a novel
	ListByNovel(ctx context.Context, novelID string) ([]outline.Part, error)

	// Update writes the full part row back
	Update(ctx context.Context, part *outline.Part) error

	// Delete removes a part. Chapters referencing it are left untouched;
	// their part_id dangles, which is a tolerated state.
	Delete(ctx context.Context, id, novelID string) error
}
