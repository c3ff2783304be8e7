package outline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"plotline/internal/config"
	"plotline/internal/domain"
	models "plotline/internal/domain/models/outline"
	outlineRepo "plotline/internal/domain/repositories/outline"
	outlineSvc "plotline/internal/domain/services/outline"
)

// beatService implements the BeatService interface
type beatService struct {
	beatRepo outlineRepo.BeatRepository
	resolver *Resolver
	logger   *slog.Logger
}

// NewBeatService creates a new beat service
func NewBeatService(
	beatRepo outlineRepo.BeatRepository,
	resolver *Resolver,
	logger *slog.Logger,
) outlineSvc.BeatService {
	return &beatService{
		beatRepo: beatRepo,
		resolver: resolver,
		logger:   logger,
	}
}

// CreateBeat creates a new beat. A supplied chapter id must belong to the
// same novel; anything else resolves to not-found before the insert.
func (s *beatService) CreateBeat(ctx context.Context, req *outlineSvc.CreateBeatRequest) (*models.Beat, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.resolver.ResolveNovel(ctx, req.NovelID, req.UserID); err != nil {
		return nil, err
	}

	if req.ChapterID != nil {
		if _, err := s.resolver.ResolveChapter(ctx, *req.ChapterID, req.NovelID, req.UserID); err != nil {
			return nil, err
		}
	}

	orderIndex := 1
	if req.OrderIndex != nil {
		orderIndex = *req.OrderIndex
	}

	beat := &models.Beat{
		ID:          uuid.NewString(),
		NovelID:     req.NovelID,
		ChapterID:   req.ChapterID,
		OrderIndex:  orderIndex,
		BeatType:    req.BeatType,
		Description: strings.TrimSpace(req.Description),
		Viewpoint:   req.Viewpoint,
		CreatedAt:   time.Now(),
	}

	if err := s.beatRepo.Create(ctx, beat); err != nil {
		return nil, err
	}

	s.logger.Info("beat created",
		"id", beat.ID,
		"novel_id", beat.NovelID,
		"user_id", req.UserID,
	)

	return beat, nil
}

// GetBeat retrieves a beat after resolving novel ownership
func (s *beatService) GetBeat(ctx context.Context, id, novelID, userID string) (*models.Beat, error) {
	return s.resolver.ResolveBeat(ctx, id, novelID, userID)
}

// ListBeats retrieves beats under a novel, optionally narrowed to one
// validated chapter
func (s *beatService) ListBeats(ctx context.Context, novelID, userID string, chapterID *string) ([]models.Beat, error) {
	if _, err := s.resolver.ResolveNovel(ctx, novelID, userID); err != nil {
		return nil, err
	}

	if chapterID != nil {
		if _, err := s.resolver.ResolveChapter(ctx, *chapterID, novelID, userID); err != nil {
			return nil, err
		}
		return s.beatRepo.ListByChapter(ctx, *chapterID, novelID)
	}

	return s.beatRepo.ListByNovel(ctx, novelID)
}

// UpdateBeat applies a partial patch to a beat.
// Beats carry no updated_at column, so none is refreshed.
func (s *beatService) UpdateBeat(ctx context.Context, id, novelID, userID string, req *outlineSvc.UpdateBeatRequest) (*models.Beat, error) {
	if req.FieldsPresent() == 0 {
		return nil, fmt.Errorf("%w: at least one field must be provided", domain.ErrValidation)
	}
	if req.OrderIndex.Present && req.OrderIndex.Value == nil {
		return nil, fmt.Errorf("%w: order_index cannot be null", domain.ErrValidation)
	}
	if req.Description.Present && (req.Description.Value == nil || strings.TrimSpace(*req.Description.Value) == "") {
		return nil, fmt.Errorf("%w: description cannot be empty", domain.ErrValidation)
	}
	if err := firstError(
		validatePatchString("description", req.Description, config.MaxTextLength),
		validatePatchString("beat_type", req.BeatType, config.MaxLabelLength),
		validatePatchString("viewpoint", req.Viewpoint, config.MaxLabelLength),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	beat, err := s.resolver.ResolveBeat(ctx, id, novelID, userID)
	if err != nil {
		return nil, err
	}

	// A non-null chapter reference is re-validated exactly as in create;
	// cross-novel reassignment resolves to not-found.
	if req.ChapterID.Present && req.ChapterID.Value != nil {
		if _, err := s.resolver.ResolveChapter(ctx, *req.ChapterID.Value, novelID, userID); err != nil {
			return nil, err
		}
	}

	applyString(&beat.ChapterID, req.ChapterID)
	if req.OrderIndex.Present {
		beat.OrderIndex = *req.OrderIndex.Value
	}
	applyString(&beat.BeatType, req.BeatType)
	if req.Description.Present {
		beat.Description = strings.TrimSpace(*req.Description.Value)
	}
	applyString(&beat.Viewpoint, req.Viewpoint)

	if err := s.beatRepo.Update(ctx, beat); err != nil {
		return nil, err
	}

	s.logger.Info("beat updated",
		"id", beat.ID,
		"novel_id", novelID,
		"user_id", userID,
	)

	return beat, nil
}

// DeleteBeat removes a beat
func (s *beatService) DeleteBeat(ctx context.Context, id, novelID, userID string) error {
	if _, err := s.resolver.ResolveBeat(ctx, id, novelID, userID); err != nil {
		return err
	}

	if err := s.beatRepo.Delete(ctx, id, novelID); err != nil {
		return err
	}

	s.logger.Info("beat deleted",
		"id", id,
		"novel_id", novelID,
		"user_id", userID,
	)

	return nil
}

// validateCreateRequest validates a create beat request
func (s *beatService) validateCreateRequest(req *outlineSvc.CreateBeatRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.NovelID, validation.Required),
		validation.Field(&req.Description,
			validation.Required,
			validation.Length(1, config.MaxTextLength),
			validation.By(validateNotBlank("description")),
		),
		validation.Field(&req.BeatType, validation.Length(0, config.MaxLabelLength)),
		validation.Field(&req.Viewpoint, validation.Length(0, config.MaxLabelLength)),
	)
}
