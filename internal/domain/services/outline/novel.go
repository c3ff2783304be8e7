package outline

import (
	"context"

	"plotline/internal/domain/models/outline"
	"plotline/internal/httputil"
)

// NovelService handles novel business logic
type NovelService interface {
	// CreateNovel creates a new novel owned by the requesting user
	CreateNovel(ctx context.Context, req *CreateNovelRequest) (*outline.Novel, error)

	// GetNovel retrieves a novel the user owns
	GetNovel(ctx context.Context, id, userID string) (*outline.Novel, error)

	// ListNovels retrieves all novels owned by the user
	ListNovels(ctx context.Context, userID string) ([]outline.Novel, error)

	// UpdateNovel applies a partial patch to a novel. At least one field
	// must be present in the request.
	UpdateNovel(ctx context.Context, id, userID string, req *UpdateNovelRequest) (*outline.Novel, error)
}

// CreateNovelRequest represents a novel creation request
type CreateNovelRequest struct {
	UserID         string  `json:"-"` // Set by handler from auth context, not from request body
	Title          string  `json:"title"`
	Subtitle       *string `json:"subtitle,omitempty"`
	Genre          *string `json:"genre,omitempty"`
	TargetAudience *string `json:"target_audience,omitempty"`
	Status         *string `json:"status,omitempty"`
	Logline        *string `json:"logline,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// UpdateNovelRequest represents a partial novel patch. Only fields present
// in the JSON body are applied; absent and explicit-null are distinct.
type UpdateNovelRequest struct {
	Title          httputil.OptionalString `json:"title"`
	Subtitle       httputil.OptionalString `json:"subtitle"`
	Genre          httputil.OptionalString `json:"genre"`
	TargetAudience httputil.OptionalString `json:"target_audience"`
	Status         httputil.OptionalString `json:"status"`
	Logline        httputil.OptionalString `json:"logline"`
	Notes          httputil.OptionalString `json:"notes"`
}

// FieldsPresent counts how many patch fields were supplied
func (r *UpdateNovelRequest) FieldsPresent() int {
	n := 0
	for _, f := range []httputil.OptionalString{
		r.Title, r.Subtitle, r.Genre, r.TargetAudience, r.Status, r.Logline, r.Notes,
	} {
		if f.Present {
			n++
		}
	}
	return n
}
