package outline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"plotline/internal/config"
	"plotline/internal/domain"
	models "plotline/internal/domain/models/outline"
	"plotline/internal/domain/repositories"
	outlineRepo "plotline/internal/domain/repositories/outline"
	outlineSvc "plotline/internal/domain/services/outline"
)

// chapterService implements the ChapterService interface
type chapterService struct {
	chapterRepo outlineRepo.ChapterRepository
	beatRepo    outlineRepo.BeatRepository
	resolver    *Resolver
	txManager   repositories.TransactionManager
	logger      *slog.Logger
}

// NewChapterService creates a new chapter service
func NewChapterService(
	chapterRepo outlineRepo.ChapterRepository,
	beatRepo outlineRepo.BeatRepository,
	resolver *Resolver,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) outlineSvc.ChapterService {
	return &chapterService{
		chapterRepo: chapterRepo,
		beatRepo:    beatRepo,
		resolver:    resolver,
		txManager:   txManager,
		logger:      logger,
	}
}

// CreateChapter creates a new chapter. A supplied part id must belong to the
// same novel; anything else resolves to not-found before the insert.
func (s *chapterService) CreateChapter(ctx context.Context, req *outlineSvc.CreateChapterRequest) (*models.Chapter, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.resolver.ResolveNovel(ctx, req.NovelID, req.UserID); err != nil {
		return nil, err
	}

	if req.PartID != nil {
		if _, err := s.resolver.ResolvePart(ctx, *req.PartID, req.NovelID, req.UserID); err != nil {
			return nil, err
		}
	}

	orderIndex := 1
	if req.OrderIndex != nil {
		orderIndex = *req.OrderIndex
	}

	now := time.Now()
	chapter := &models.Chapter{
		ID:            uuid.NewString(),
		NovelID:       req.NovelID,
		PartID:        req.PartID,
		OrderIndex:    orderIndex,
		Title:         req.Title,
		POVCharacter:  req.POVCharacter,
		Summary:       req.Summary,
		WordCountGoal: req.WordCountGoal,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.chapterRepo.Create(ctx, chapter); err != nil {
		return nil, err
	}

	s.logger.Info("chapter created",
		"id", chapter.ID,
		"novel_id", chapter.NovelID,
		"user_id", req.UserID,
	)

	return chapter, nil
}

// GetChapter retrieves a chapter after resolving novel ownership
func (s *chapterService) GetChapter(ctx context.Context, id, novelID, userID string) (*models.Chapter, error) {
	return s.resolver.ResolveChapter(ctx, id, novelID, userID)
}

// ListChapters retrieves chapters under a novel, optionally narrowed to one
// validated part
func (s *chapterService) ListChapters(ctx context.Context, novelID, userID string, partID *string) ([]models.Chapter, error) {
	if _, err := s.resolver.ResolveNovel(ctx, novelID, userID); err != nil {
		return nil, err
	}

	if partID != nil {
		if _, err := s.resolver.ResolvePart(ctx, *partID, novelID, userID); err != nil {
			return nil, err
		}
		return s.chapterRepo.ListByPart(ctx, *partID, novelID)
	}

	return s.chapterRepo.ListByNovel(ctx, novelID)
}

// UpdateChapter applies a partial patch to a chapter
func (s *chapterService) UpdateChapter(ctx context.Context, id, novelID, userID string, req *outlineSvc.UpdateChapterRequest) (*models.Chapter, error) {
	if req.FieldsPresent() == 0 {
		return nil, fmt.Errorf("%w: at least one field must be provided", domain.ErrValidation)
	}
	if req.OrderIndex.Present && req.OrderIndex.Value == nil {
		return nil, fmt.Errorf("%w: order_index cannot be null", domain.ErrValidation)
	}
	if err := firstError(
		validatePatchString("title", req.Title, config.MaxTitleLength),
		validatePatchString("pov_character", req.POVCharacter, config.MaxLabelLength),
		validatePatchString("summary", req.Summary, config.MaxTextLength),
		validatePatchMin("word_count_goal", req.WordCountGoal, 0),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	chapter, err := s.resolver.ResolveChapter(ctx, id, novelID, userID)
	if err != nil {
		return nil, err
	}

	// A non-null part reference is re-validated exactly as in create;
	// cross-novel reassignment resolves to not-found.
	if req.PartID.Present && req.PartID.Value != nil {
		if _, err := s.resolver.ResolvePart(ctx, *req.PartID.Value, novelID, userID); err != nil {
			return nil, err
		}
	}

	applyString(&chapter.PartID, req.PartID)
	if req.OrderIndex.Present {
		chapter.OrderIndex = *req.OrderIndex.Value
	}
	applyString(&chapter.Title, req.Title)
	applyString(&chapter.POVCharacter, req.POVCharacter)
	applyString(&chapter.Summary, req.Summary)
	applyInt(&chapter.WordCountGoal, req.WordCountGoal)
	chapter.UpdatedAt = time.Now()

	if err := s.chapterRepo.Update(ctx, chapter); err != nil {
		return nil, err
	}

	s.logger.Info("chapter updated",
		"id", chapter.ID,
		"novel_id", novelID,
		"user_id", userID,
	)

	return chapter, nil
}

// DeleteChapter removes a chapter and every beat attached to it. Both
// deletes run inside one transaction so no reader can observe a deleted
// chapter with its beats still present.
func (s *chapterService) DeleteChapter(ctx context.Context, id, novelID, userID string) error {
	if _, err := s.resolver.ResolveChapter(ctx, id, novelID, userID); err != nil {
		return err
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.chapterRepo.Delete(txCtx, id, novelID); err != nil {
			return err
		}
		return s.beatRepo.DeleteByChapter(txCtx, id, novelID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("chapter deleted",
		"id", id,
		"novel_id", novelID,
		"user_id", userID,
	)

	return nil
}

// validateCreateRequest validates a create chapter request
func (s *chapterService) validateCreateRequest(req *outlineSvc.CreateChapterRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.NovelID, validation.Required),
		validation.Field(&req.Title, validation.Length(0, config.MaxTitleLength)),
		validation.Field(&req.POVCharacter, validation.Length(0, config.MaxLabelLength)),
		validation.Field(&req.Summary, validation.Length(0, config.MaxTextLength)),
		validation.Field(&req.WordCountGoal, validation.Min(0)),
	)
}
