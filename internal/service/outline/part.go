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
	outlineRepo "plotline/internal/domain/repositories/outline"
	outlineSvc "plotline/internal/domain/services/outline"
)

// partService implements the PartService interface
type partService struct {
	partRepo outlineRepo.PartRepository
	resolver *Resolver
	logger   *slog.Logger
}

// NewPartService creates a new part service
func NewPartService(
	partRepo outlineRepo.PartRepository,
	resolver *Resolver,
	logger *slog.Logger,
) outlineSvc.PartService {
	return &partService{
		partRepo: partRepo,
		resolver: resolver,
		logger:   logger,
	}
}

// CreatePart creates a new part under a novel the user owns
func (s *partService) CreatePart(ctx context.Context, req *outlineSvc.CreatePartRequest) (*models.Part, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.resolver.ResolveNovel(ctx, req.NovelID, req.UserID); err != nil {
		return nil, err
	}

	orderIndex := 1
	if req.OrderIndex != nil {
		orderIndex = *req.OrderIndex
	}

	part := &models.Part{
		ID:         uuid.NewString(),
		NovelID:    req.NovelID,
		OrderIndex: orderIndex,
		Title:      req.Title,
		Summary:    req.Summary,
		CreatedAt:  time.Now(),
	}

	if err := s.partRepo.Create(ctx, part); err != nil {
		return nil, err
	}

	s.logger.Info("part created",
		"id", part.ID,
		"novel_id", part.NovelID,
		"user_id", req.UserID,
	)

	return part, nil
}

// GetPart retrieves a part after resolving novel ownership
func (s *partService) GetPart(ctx context.Context, id, novelID, userID string) (*models.Part, error) {
	return s.resolver.ResolvePart(ctx, id, novelID, userID)
}

// ListParts retrieves all parts under a novel the user owns
func (s *partService) ListParts(ctx context.Context, novelID, userID string) ([]models.Part, error) {
	if _, err := s.resolver.ResolveNovel(ctx, novelID, userID); err != nil {
		return nil, err
	}

	return s.partRepo.ListByNovel(ctx, novelID)
}

// UpdatePart applies a partial patch to a part.
// Parts carry no updated_at column, so none is refreshed.
func (s *partService) UpdatePart(ctx context.Context, id, novelID, userID string, req *outlineSvc.UpdatePartRequest) (*models.Part, error) {
	if req.FieldsPresent() == 0 {
		return nil, fmt.Errorf("%w: at least one field must be provided", domain.ErrValidation)
	}
	if req.OrderIndex.Present && req.OrderIndex.Value == nil {
		return nil, fmt.Errorf("%w: order_index cannot be null", domain.ErrValidation)
	}
	if err := firstError(
		validatePatchString("title", req.Title, config.MaxTitleLength),
		validatePatchString("summary", req.Summary, config.MaxTextLength),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	part, err := s.resolver.ResolvePart(ctx, id, novelID, userID)
	if err != nil {
		return nil, err
	}

	if req.OrderIndex.Present {
		part.OrderIndex = *req.OrderIndex.Value
	}
	applyString(&part.Title, req.Title)
	applyString(&part.Summary, req.Summary)

	if err := s.partRepo.Update(ctx, part); err != nil {
		return nil, err
	}

	s.logger.Info("part updated",
		"id", part.ID,
		"novel_id", novelID,
		"user_id", userID,
	)

	return part, nil
}

// DeletePart removes a part. Its chapters are orphaned, not deleted: they
// keep a dangling part_id, which readers treat as "outside any part".
func (s *partService) DeletePart(ctx context.Context, id, novelID, userID string) error {
	if _, err := s.resolver.ResolvePart(ctx, id, novelID, userID); err != nil {
		return err
	}

	if err := s.partRepo.Delete(ctx, id, novelID); err != nil {
		return err
	}

	s.logger.Info("part deleted",
		"id", id,
		"novel_id", novelID,
		"user_id", userID,
	)

	return nil
}

// validateCreateRequest validates a create part request
func (s *partService) validateCreateRequest(req *outlineSvc.CreatePartRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.NovelID, validation.Required),
		validation.Field(&req.Title, validation.Length(0, config.MaxTitleLength)),
		validation.Field(&req.Summary, validation.Length(0, config.MaxTextLength)),
	)
}
