package outline

import (
	"context"

	"plotline/internal/domain/models/outline"
	"plotline/internal/httputil"
)

// PartService handles part business logic
type PartService interface {
	// CreatePart creates a new part under a novel the user owns
	CreatePart(ctx context.Context, req *CreatePartRequest) (*outline.Part, error)

	// GetPart retrieves a part after resolving novel ownership
	GetPart(ctx context.Context, id, novelID, userID string) (*outline.Part, error)

	// ListParts retrieves all parts under a novel the user owns
	ListParts(ctx context.Context, novelID, userID string) ([]outline.Part, error)

	// UpdatePart applies a partial patch to a part
	UpdatePart(ctx context.Context, id, novelID, userID string, req *UpdatePartRequest) (*outline.Part, error)

	// DeletePart removes a part. Its chapters are orphaned, not deleted.
	DeletePart(ctx context.Context, id, novelID, userID string) error
}

// CreatePartRequest represents a part creation request
type CreatePartRequest struct {
	UserID     string  `json:"-"`
	NovelID    string  `json:"-"` // From the route, not the body
	OrderIndex *int    `json:"order_index,omitempty"` // defaults to 1
	Title      *string `json:"title,omitempty"`
	Summary    *string `json:"summary,omitempty"`
}

// UpdatePartRequest represents a partial part patch
type UpdatePartRequest struct {
	OrderIndex httputil.OptionalInt    `json:"order_index"`
	Title      httputil.OptionalString `json:"title"`
	Summary    httputil.OptionalString `json:"summary"`
}

// FieldsPresent counts how many patch fields were supplied
func (r *UpdatePartRequest) FieldsPresent() int {
	n := 0
	if r.OrderIndex.Present {
		n++
	}
	if r.Title.Present {
		n++
	}
	if r.Summary.Present {
		n++
	}
	return n
}
