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

// novelService implements the NovelService interface
type novelService struct {
	novelRepo outlineRepo.NovelRepository
	resolver  *Resolver
	logger    *slog.Logger
}

// NewNovelService creates a new novel service
func NewNovelService(
	novelRepo outlineRepo.NovelRepository,
	resolver *Resolver,
	logger *slog.Logger,
) outlineSvc.NovelService {
	return &novelService{
		novelRepo: novelRepo,
		resolver:  resolver,
		logger:    logger,
	}
}

// CreateNovel creates a new novel owned by the requesting user
func (s *novelService) CreateNovel(ctx context.Context, req *outlineSvc.CreateNovelRequest) (*models.Novel, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	novel := &models.Novel{
		ID:             uuid.NewString(),
		UserID:         req.UserID,
		Title:          strings.TrimSpace(req.Title),
		Subtitle:       req.Subtitle,
		Genre:          req.Genre,
		TargetAudience: req.TargetAudience,
		Status:         req.Status,
		Logline:        req.Logline,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.novelRepo.Create(ctx, novel); err != nil {
		return nil, err
	}

	s.logger.Info("novel created",
		"id", novel.ID,
		"title", novel.Title,
		"user_id", req.UserID,
	)

	return novel, nil
}

// GetNovel retrieves a novel the user owns
func (s *novelService) GetNovel(ctx context.Context, id, userID string) (*models.Novel, error) {
	return s.resolver.ResolveNovel(ctx, id, userID)
}

// ListNovels retrieves all novels owned by the user
func (s *novelService) ListNovels(ctx context.Context, userID string) ([]models.Novel, error) {
	return s.novelRepo.List(ctx, userID)
}

// UpdateNovel applies a partial patch to a novel
func (s *novelService) UpdateNovel(ctx context.Context, id, userID string, req *outlineSvc.UpdateNovelRequest) (*models.Novel, error) {
	// Reject empty patches before any storage access
	if req.FieldsPresent() == 0 {
		return nil, fmt.Errorf("%w: at least one field must be provided", domain.ErrValidation)
	}
	if req.Title.Present && (req.Title.Value == nil || strings.TrimSpace(*req.Title.Value) == "") {
		return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrValidation)
	}
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	novel, err := s.resolver.ResolveNovel(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	// Apply only fields present in the patch
	if req.Title.Present {
		novel.Title = strings.TrimSpace(*req.Title.Value)
	}
	applyString(&novel.Subtitle, req.Subtitle)
	applyString(&novel.Genre, req.Genre)
	applyString(&novel.TargetAudience, req.TargetAudience)
	applyString(&novel.Status, req.Status)
	applyString(&novel.Logline, req.Logline)
	applyString(&novel.Notes, req.Notes)
	novel.UpdatedAt = time.Now()

	if err := s.novelRepo.Update(ctx, novel); err != nil {
		return nil, err
	}

	s.logger.Info("novel updated",
		"id", novel.ID,
		"user_id", userID,
	)

	return novel, nil
}

// validateCreateRequest validates a create novel request
func (s *novelService) validateCreateRequest(req *outlineSvc.CreateNovelRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxTitleLength),
			validation.By(validateNotBlank("title")),
		),
		validation.Field(&req.Subtitle, validation.Length(0, config.MaxTitleLength)),
		validation.Field(&req.Status, validation.Length(0, config.MaxLabelLength)),
		validation.Field(&req.Genre, validation.Length(0, config.MaxLabelLength)),
		validation.Field(&req.TargetAudience, validation.Length(0, config.MaxLabelLength)),
		validation.Field(&req.Logline, validation.Length(0, config.MaxTextLength)),
		validation.Field(&req.Notes, validation.Length(0, config.MaxTextLength)),
	)
}

// validateUpdateRequest applies the same length caps as create to every
// present non-null patch field
func (s *novelService) validateUpdateRequest(req *outlineSvc.UpdateNovelRequest) error {
	return firstError(
		validatePatchString("title", req.Title, config.MaxTitleLength),
		validatePatchString("subtitle", req.Subtitle, config.MaxTitleLength),
		validatePatchString("genre", req.Genre, config.MaxLabelLength),
		validatePatchString("target_audience", req.TargetAudience, config.MaxLabelLength),
		validatePatchString("status", req.Status, config.MaxLabelLength),
		validatePatchString("logline", req.Logline, config.MaxTextLength),
		validatePatchString("notes", req.Notes, config.MaxTextLength),
	)
}

// validateNotBlank rejects values that are empty after trimming
func validateNotBlank(field string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s must be a string", field)
		}
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}
