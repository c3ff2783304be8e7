package outline

import (
	"context"
	"fmt"

	models "plotline/internal/domain/models/outline"
	outlineRepo "plotline/internal/domain/repositories/outline"
)

// Resolver is the single point where cross-entity integrity is enforced.
// Every resolution walks the chain from the novel down, scoping each lookup
// by its parent, so an entity that exists under a different novel is
// indistinguishable from a missing one. Resolutions are re-executed on every
// call; nothing is cached.
type Resolver struct {
	novelRepo   outlineRepo.NovelRepository
	partRepo    outlineRepo.PartRepository
	chapterRepo outlineRepo.ChapterRepository
	beatRepo    outlineRepo.BeatRepository
}

// NewResolver creates a new ownership resolver
func NewResolver(
	novelRepo outlineRepo.NovelRepository,
	partRepo outlineRepo.PartRepository,
	chapterRepo outlineRepo.ChapterRepository,
	beatRepo outlineRepo.BeatRepository,
) *Resolver {
	return &Resolver{
		novelRepo:   novelRepo,
		partRepo:    partRepo,
		chapterRepo: chapterRepo,
		beatRepo:    beatRepo,
	}
}

// ResolveNovel confirms the novel exists and belongs to the user.
// A novel owned by someone else resolves to domain.ErrNotFound.
func (r *Resolver) ResolveNovel(ctx context.Context, novelID, userID string) (*models.Novel, error) {
	novel, err := r.novelRepo.GetByID(ctx, novelID, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve novel: %w", err)
	}
	return novel, nil
}

// ResolvePart confirms the part exists under a novel the user owns
func (r *Resolver) ResolvePart(ctx context.Context, partID, novelID, userID string) (*models.Part, error) {
	if _, err := r.ResolveNovel(ctx, novelID, userID); err != nil {
		return nil, err
	}

	part, err := r.partRepo.GetByID(ctx, partID, novelID)
	if err != nil {
		return nil, fmt.Errorf("resolve part: %w", err)
	}
	return part, nil
}

// ResolveChapter confirms the chapter exists under a novel the user owns
func (r *Resolver) ResolveChapter(ctx context.Context, chapterID, novelID, userID string) (*models.Chapter, error) {
	if _, err := r.ResolveNovel(ctx, novelID, userID); err != nil {
		return nil, err
	}

	chapter, err := r.chapterRepo.GetByID(ctx, chapterID, novelID)
	if err != nil {
		return nil, fmt.Errorf("resolve chapter: %w", err)
	}
	return chapter, nil
}

// ResolveBeat confirms the beat exists under a novel the user owns
func (r *Resolver) ResolveBeat(ctx context.Context, beatID, novelID, userID string) (*models.Beat, error) {
	if _, err := r.ResolveNovel(ctx, novelID, userID); err != nil {
		return nil, err
	}

	beat, err := r.beatRepo.GetByID(ctx, beatID, novelID)
	if err != nil {
		return nil, fmt.Errorf("resolve beat: %w", err)
	}
	return beat, nil
}
