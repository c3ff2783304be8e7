package outline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"plotline/internal/domain"
	models "plotline/internal/domain/models/outline"
	outlineSvc "plotline/internal/domain/services/outline"
	"plotline/internal/httputil"
)

func createTestNovel(t *testing.T, env *testEnv, userID string) *models.Novel {
	t.Helper()
	novel, err := env.novels.CreateNovel(context.Background(), &outlineSvc.CreateNovelRequest{
		UserID: userID,
		Title:  "Test Novel",
	})
	if err != nil {
		t.Fatalf("CreateNovel failed: %v", err)
	}
	return novel
}

func TestCreatePart_Defaults(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	novel := createTestNovel(t, env, "user-1")

	part, err := env.parts.CreatePart(ctx, &outlineSvc.CreatePartRequest{
		UserID:  "user-1",
		NovelID: novel.ID,
		Title:   stringPtr("Part I"),
	})
	if err != nil {
		t.Fatalf("CreatePart failed: %v", err)
	}

	if part.OrderIndex != 1 {
		t.Errorf("expected default order_index 1, got %d", part.OrderIndex)
	}
	if part.NovelID != novel.ID {
		t.Errorf("expected novel_id %s, got %s", novel.ID, part.NovelID)
	}
	if part.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestCreatePart_DuplicateOrderIndexAllowed(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	novel := createTestNovel(t, env, "user-1")

	for i := 0; i < 2; i++ {
		if _, err := env.parts.CreatePart(ctx, &outlineSvc.CreatePartRequest{
			UserID:     "user-1",
			NovelID:    novel.ID,
			OrderIndex: intPtr(3),
		}); err != nil {
			t.Fatalf("CreatePart %d failed: %v", i, err)
		}
	}

	parts, err := env.parts.ListParts(ctx, novel.ID, "user-1")
	if err != nil {
		t.Fatalf("ListParts failed: %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
}

func TestCreatePart_ForeignNovel(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	novel := createTestNovel(t, env, "user-1")

	_, err := env.parts.CreatePart(ctx, &outlineSvc.CreatePartRequest{
		UserID:  "user-2",
		NovelID: novel.ID,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected not-found for foreign novel, got %v", err)
	}
}

func TestUpdatePart_NullOrderIndexRejected(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	novel := createTestNovel(t, env, "user-1")

	part, err := env.parts.CreatePart(ctx, &outlineSvc.CreatePartRequest{
		UserID:  "user-1",
		NovelID: novel.ID,
	})
	if err != nil {
		t.Fatalf("CreatePart failed: %v", err)
	}

	_, err = env.parts.UpdatePart(ctx, part.ID, novel.ID, "user-1", &outlineSvc.UpdatePartRequest{
		OrderIndex: httputil.OptionalInt{Present: true, Value: nil},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error for null order_index, got %v", err)
	}
}

func TestUpdatePart_Patch(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	novel := createTestNovel(t, env, "user-1")

	part, err := env.parts.CreatePart(ctx, &outlineSvc.CreatePartRequest{
		UserID:  "user-1",
		NovelID: novel.ID,
		Title:   stringPtr("Part I"),
		Summary: stringPtr("the beginning"),
	})
	if err != nil {
		t.Fatalf("CreatePart failed: %v", err)
	}

	updated, err := env.parts.UpdatePart(ctx, part.ID, novel.ID, "user-1", &outlineSvc.UpdatePartRequest{
		OrderIndex: httputil.OptionalInt{Present: true, Value: intPtr(5)},
		Summary:    httputil.OptionalString{Present: true, Value: nil},
	})
	if err != nil {
		t.Fatalf("UpdatePart failed: %v", err)
	}

	if updated.OrderIndex != 5 {
		t.Errorf("expected order_index 5, got %d", updated.OrderIndex)
	}
	if updated.Title == nil || *updated.Title != "Part I" {
		t.Error("absent title was changed")
	}
	if updated.Summary != nil {
		t.Error("explicit-null summary was not cleared")
	}
}

func TestUpdatePart_LengthCaps(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	novel := createTestNovel(t, env, "user-1")

	part, err := env.parts.CreatePart(ctx, &outlineSvc.CreatePartRequest{
		UserID:  "user-1",
		NovelID: novel.ID,
		Title:   stringPtr("Part I"),
	})
	if err != nil {
		t.Fatalf("CreatePart failed: %v", err)
	}

	for name, req := range map[string]*outlineSvc.UpdatePartRequest{
		"title over cap": {
			Title: httputil.OptionalString{Present: true, Value: stringPtr(strings.Repeat("x", 256))},
		},
		"summary over cap": {
			Summary: httputil.OptionalString{Present: true, Value: stringPtr(strings.Repeat("x", 5001))},
		},
	} {
		if _, err := env.parts.UpdatePart(ctx, part.ID, novel.ID, "user-1", req); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestDeletePart_OrphansChapters(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	novel := createTestNovel(t, env, "user-1")

	part, err := env.parts.CreatePart(ctx, &outlineSvc.CreatePartRequest{
		UserID:  "user-1",
		NovelID: novel.ID,
	})
	if err != nil {
		t.Fatalf("CreatePart failed: %v", err)
	}

	chapter, err := env.chapters.CreateChapter(ctx, &outlineSvc.CreateChapterRequest{
		UserID:  "user-1",
		NovelID: novel.ID,
		PartID:  &part.ID,
		Title:   stringPtr("Chapter 1"),
	})
	if err != nil {
		t.Fatalf("CreateChapter failed: %v", err)
	}

	if err := env.parts.DeletePart(ctx, part.ID, novel.ID, "user-1"); err != nil {
		t.Fatalf("DeletePart failed: %v", err)
	}

	// The chapter survives with a dangling part reference
	got, err := env.chapters.GetChapter(ctx, chapter.ID, novel.ID, "user-1")
	if err != nil {
		t.Fatalf("chapter disappeared with its part: %v", err)
	}
	if got.PartID == nil || *got.PartID != part.ID {
		t.Error("expected dangling part_id to be preserved")
	}

	if _, err := env.parts.GetPart(ctx, part.ID, novel.ID, "user-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected deleted part to be not-found, got %v", err)
	}
}

func TestDeletePart_ForeignNovel(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	novel := createTestNovel(t, env, "user-1")

	part, err := env.parts.CreatePart(ctx, &outlineSvc.CreatePartRequest{
		UserID:  "user-1",
		NovelID: novel.ID,
	})
	if err != nil {
		t.Fatalf("CreatePart failed: %v", err)
	}

	if err := env.parts.DeletePart(ctx, part.ID, novel.ID, "user-2"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected not-found for foreign user, got %v", err)
	}

	// Still there for the owner
	if _, err := env.parts.GetPart(ctx, part.ID, novel.ID, "user-1"); err != nil {
		t.Errorf("part was deleted by a foreign user: %v", err)
	}
}
