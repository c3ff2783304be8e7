package outline

import (
	"context"

	"plotline/internal/domain/models/outline"
)

// NovelRepository defines data access operations for novels
type NovelRepository interface {
	// Create inserts a new novel row
	Create(ctx context.Context, novel *outline.Novel) error

	// GetByID retrieves a novel matching both id and owner.
	// Zero rows is reported as domain.ErrNotFound regardless of whether the
	// novel is missing or owned by someone else.
	GetByID(ctx context.Context, id, userID string) (*outline.Novel, error)

	// List retrieves all novels owned by a user, ordered by updated_at DESC
	List(ctx context.Context, userID string) ([]outline.Novel, error)

	// Update writes the full novel row back
	Update(ctx context.Context, novel *outline.Novel) error
}
