package outline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"plotline/internal/domain"
	outlineSvc "plotline/internal/domain/services/outline"
	"plotline/internal/httputil"
)

func TestCreateNovel(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	novel, err := env.novels.CreateNovel(ctx, &outlineSvc.CreateNovelRequest{
		UserID: "user-1",
		Title:  "  Dune Redux  ",
		Genre:  stringPtr("science fiction"),
	})
	if err != nil {
		t.Fatalf("CreateNovel failed: %v", err)
	}

	if novel.ID == "" {
		t.Error("expected generated ID")
	}
	if novel.Title != "Dune Redux" {
		t.Errorf("expected trimmed title, got %q", novel.Title)
	}
	if novel.UserID != "user-1" {
		t.Errorf("expected owner user-1, got %q", novel.UserID)
	}
	if novel.CreatedAt.IsZero() || novel.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
	if novel.Subtitle != nil {
		t.Error("expected absent subtitle to stay nil")
	}
}

func TestCreateNovel_Validation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	cases := []struct {
		name string
		req  *outlineSvc.CreateNovelRequest
	}{
		{"missing title", &outlineSvc.CreateNovelRequest{UserID: "user-1"}},
		{"blank title", &outlineSvc.CreateNovelRequest{UserID: "user-1", Title: "   "}},
		{"missing user", &outlineSvc.CreateNovelRequest{Title: "Untitled"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := env.novels.CreateNovel(ctx, tc.req); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestGetNovel_OwnershipIsolation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	novel, err := env.novels.CreateNovel(ctx, &outlineSvc.CreateNovelRequest{
		UserID: "user-1",
		Title:  "Private Manuscript",
	})
	if err != nil {
		t.Fatalf("CreateNovel failed: %v", err)
	}

	// Another user asking for the same id must see not-found, not forbidden
	if _, err := env.novels.GetNovel(ctx, novel.ID, "user-2"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected not-found for foreign novel, got %v", err)
	}

	got, err := env.novels.GetNovel(ctx, novel.ID, "user-1")
	if err != nil {
		t.Fatalf("owner GetNovel failed: %v", err)
	}
	if got.ID != novel.ID {
		t.Errorf("expected novel %s, got %s", novel.ID, got.ID)
	}
}

func TestListNovels_OnlyOwn(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	for _, setup := range []struct{ user, title string }{
		{"user-1", "Mine"},
		{"user-1", "Also Mine"},
		{"user-2", "Theirs"},
	} {
		if _, err := env.novels.CreateNovel(ctx, &outlineSvc.CreateNovelRequest{
			UserID: setup.user,
			Title:  setup.title,
		}); err != nil {
			t.Fatalf("CreateNovel failed: %v", err)
		}
	}

	novels, err := env.novels.ListNovels(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListNovels failed: %v", err)
	}
	if len(novels) != 2 {
		t.Fatalf("expected 2 novels, got %d", len(novels))
	}
	for _, n := range novels {
		if n.UserID != "user-1" {
			t.Errorf("foreign novel %q leaked into listing", n.Title)
		}
	}
}

func TestUpdateNovel_PartialPatch(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	novel, err := env.novels.CreateNovel(ctx, &outlineSvc.CreateNovelRequest{
		UserID:   "user-1",
		Title:    "Working Title",
		Subtitle: stringPtr("a subtitle"),
		Genre:    stringPtr("fantasy"),
	})
	if err != nil {
		t.Fatalf("CreateNovel failed: %v", err)
	}

	updated, err := env.novels.UpdateNovel(ctx, novel.ID, "user-1", &outlineSvc.UpdateNovelRequest{
		Status:   httputil.OptionalString{Present: true, Value: stringPtr("drafting")},
		Subtitle: httputil.OptionalString{Present: true, Value: nil}, // explicit null clears
	})
	if err != nil {
		t.Fatalf("UpdateNovel failed: %v", err)
	}

	if updated.Title != "Working Title" {
		t.Errorf("absent title was changed to %q", updated.Title)
	}
	if updated.Genre == nil || *updated.Genre != "fantasy" {
		t.Error("absent genre was changed")
	}
	if updated.Status == nil || *updated.Status != "drafting" {
		t.Error("present status was not applied")
	}
	if updated.Subtitle != nil {
		t.Error("explicit-null subtitle was not cleared")
	}
	if !updated.CreatedAt.Equal(novel.CreatedAt) {
		t.Error("created_at changed on update")
	}
	if updated.UpdatedAt.Before(novel.UpdatedAt) {
		t.Error("updated_at moved backwards")
	}
}

func TestUpdateNovel_EmptyPatchRejected(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	novel, err := env.novels.CreateNovel(ctx, &outlineSvc.CreateNovelRequest{
		UserID: "user-1",
		Title:  "Working Title",
	})
	if err != nil {
		t.Fatalf("CreateNovel failed: %v", err)
	}

	before := env.novelRepo.getCalls
	_, err = env.novels.UpdateNovel(ctx, novel.ID, "user-1", &outlineSvc.UpdateNovelRequest{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if env.novelRepo.getCalls != before || env.novelRepo.updateCalls != 0 {
		t.Error("empty patch reached storage")
	}
}

func TestUpdateNovel_BlankTitleRejected(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	novel, err := env.novels.CreateNovel(ctx, &outlineSvc.CreateNovelRequest{
		UserID: "user-1",
		Title:  "Working Title",
	})
	if err != nil {
		t.Fatalf("CreateNovel failed: %v", err)
	}

	for _, value := range []*string{nil, stringPtr("   ")} {
		_, err := env.novels.UpdateNovel(ctx, novel.ID, "user-1", &outlineSvc.UpdateNovelRequest{
			Title: httputil.OptionalString{Present: true, Value: value},
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("expected validation error for title %v, got %v", value, err)
		}
	}
}

func TestUpdateNovel_LengthCaps(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	novel, err := env.novels.CreateNovel(ctx, &outlineSvc.CreateNovelRequest{
		UserID: "user-1",
		Title:  "Working Title",
	})
	if err != nil {
		t.Fatalf("CreateNovel failed: %v", err)
	}

	cases := []struct {
		name string
		req  *outlineSvc.UpdateNovelRequest
	}{
		{"title over cap", &outlineSvc.UpdateNovelRequest{
			Title: httputil.OptionalString{Present: true, Value: stringPtr(strings.Repeat("x", 256))},
		}},
		{"genre over cap", &outlineSvc.UpdateNovelRequest{
			Genre: httputil.OptionalString{Present: true, Value: stringPtr(strings.Repeat("x", 101))},
		}},
		{"notes over cap", &outlineSvc.UpdateNovelRequest{
			Notes: httputil.OptionalString{Present: true, Value: stringPtr(strings.Repeat("x", 5001))},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := env.novels.UpdateNovel(ctx, novel.ID, "user-1", tc.req); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}

	got, err := env.novels.GetNovel(ctx, novel.ID, "user-1")
	if err != nil {
		t.Fatalf("GetNovel failed: %v", err)
	}
	if got.Title != "Working Title" {
		t.Error("rejected patch modified the novel")
	}
}

func TestUpdateNovel_ForeignNovel(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	novel, err := env.novels.CreateNovel(ctx, &outlineSvc.CreateNovelRequest{
		UserID: "user-1",
		Title:  "Working Title",
	})
	if err != nil {
		t.Fatalf("CreateNovel failed: %v", err)
	}

	_, err = env.novels.UpdateNovel(ctx, novel.ID, "user-2", &outlineSvc.UpdateNovelRequest{
		Status: httputil.OptionalString{Present: true, Value: stringPtr("drafting")},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected not-found for foreign novel, got %v", err)
	}
}
