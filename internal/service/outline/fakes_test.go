package outline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"plotline/internal/domain"
	models "plotline/internal/domain/models/outline"
	"plotline/internal/domain/repositories"
	outlineSvc "plotline/internal/domain/services/outline"
)

// In-memory repositories backing the service tests. Slices keep insertion
// order so list assertions are deterministic. GetByID returns copies; a
// caller must go through Update to persist a mutation, same as with rows.

type fakeNovelRepo struct {
	mu          sync.Mutex
	novels      []models.Novel
	getCalls    int
	updateCalls int
}

func (r *fakeNovelRepo) Create(_ context.Context, novel *models.Novel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.novels = append(r.novels, *novel)
	return nil
}

func (r *fakeNovelRepo) GetByID(_ context.Context, id, userID string) (*models.Novel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getCalls++
	for i := range r.novels {
		if r.novels[i].ID == id && r.novels[i].UserID == userID {
			n := r.novels[i]
			return &n, nil
		}
	}
	return nil, fmt.Errorf("novel %s: %w", id, domain.ErrNotFound)
}

func (r *fakeNovelRepo) List(_ context.Context, userID string) ([]models.Novel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Novel{}
	for i := range r.novels {
		if r.novels[i].UserID == userID {
			out = append(out, r.novels[i])
		}
	}
	return out, nil
}

func (r *fakeNovelRepo) Update(_ context.Context, novel *models.Novel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	for i := range r.novels {
		if r.novels[i].ID == novel.ID && r.novels[i].UserID == novel.UserID {
			r.novels[i] = *novel
			return nil
		}
	}
	return fmt.Errorf("novel %s: %w", novel.ID, domain.ErrNotFound)
}

type fakePartRepo struct {
	mu    sync.Mutex
	parts []models.Part
}

func (r *fakePartRepo) Create(_ context.Context, part *models.Part) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parts = append(r.parts, *part)
	return nil
}

func (r *fakePartRepo) GetByID(_ context.Context, id, novelID string) (*models.Part, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.parts {
		if r.parts[i].ID == id && r.parts[i].NovelID == novelID {
			p := r.parts[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("part %s: %w", id, domain.ErrNotFound)
}

func (r *fakePartRepo) ListByNovel(_ context.Context, novelID string) ([]models.Part, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Part{}
	for i := range r.parts {
		if r.parts[i].NovelID == novelID {
			out = append(out, r.parts[i])
		}
	}
	return out, nil
}

func (r *fakePartRepo) Update(_ context.Context, part *models.Part) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.parts {
		if r.parts[i].ID == part.ID && r.parts[i].NovelID == part.NovelID {
			r.parts[i] = *part
			return nil
		}
	}
	return fmt.Errorf("part %s: %w", part.ID, domain.ErrNotFound)
}

func (r *fakePartRepo) Delete(_ context.Context, id, novelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.parts {
		if r.parts[i].ID == id && r.parts[i].NovelID == novelID {
			r.parts = append(r.parts[:i], r.parts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("part %s: %w", id, domain.ErrNotFound)
}

type fakeChapterRepo struct {
	mu       sync.Mutex
	chapters []models.Chapter
}

func (r *fakeChapterRepo) Create(_ context.Context, chapter *models.Chapter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chapters = append(r.chapters, *chapter)
	return nil
}

func (r *fakeChapterRepo) GetByID(_ context.Context, id, novelID string) (*models.Chapter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.chapters {
		if r.chapters[i].ID == id && r.chapters[i].NovelID == novelID {
			c := r.chapters[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("chapter %s: %w", id, domain.ErrNotFound)
}

func (r *fakeChapterRepo) ListByNovel(_ context.Context, novelID string) ([]models.Chapter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Chapter{}
	for i := range r.chapters {
		if r.chapters[i].NovelID == novelID {
			out = append(out, r.chapters[i])
		}
	}
	return out, nil
}

func (r *fakeChapterRepo) ListByPart(_ context.Context, partID, novelID string) ([]models.Chapter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Chapter{}
	for i := range r.chapters {
		c := r.chapters[i]
		if c.NovelID == novelID && c.PartID != nil && *c.PartID == partID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeChapterRepo) Update(_ context.Context, chapter *models.Chapter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.chapters {
		if r.chapters[i].ID == chapter.ID && r.chapters[i].NovelID == chapter.NovelID {
			r.chapters[i] = *chapter
			return nil
		}
	}
	return fmt.Errorf("chapter %s: %w", chapter.ID, domain.ErrNotFound)
}

func (r *fakeChapterRepo) Delete(_ context.Context, id, novelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.chapters {
		if r.chapters[i].ID == id && r.chapters[i].NovelID == novelID {
			r.chapters = append(r.chapters[:i], r.chapters[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("chapter %s: %w", id, domain.ErrNotFound)
}

type fakeBeatRepo struct {
	mu    sync.Mutex
	beats []models.Beat
}

func (r *fakeBeatRepo) Create(_ context.Context, beat *models.Beat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.beats = append(r.beats, *beat)
	return nil
}

func (r *fakeBeatRepo) GetByID(_ context.Context, id, novelID string) (*models.Beat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.beats {
		if r.beats[i].ID == id && r.beats[i].NovelID == novelID {
			b := r.beats[i]
			return &b, nil
		}
	}
	return nil, fmt.Errorf("beat %s: %w", id, domain.ErrNotFound)
}

func (r *fakeBeatRepo) ListByNovel(_ context.Context, novelID string) ([]models.Beat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Beat{}
	for i := range r.beats {
		if r.beats[i].NovelID == novelID {
			out = append(out, r.beats[i])
		}
	}
	return out, nil
}

func (r *fakeBeatRepo) ListByChapter(_ context.Context, chapterID, novelID string) ([]models.Beat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Beat{}
	for i := range r.beats {
		b := r.beats[i]
		if b.NovelID == novelID && b.ChapterID != nil && *b.ChapterID == chapterID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBeatRepo) Update(_ context.Context, beat *models.Beat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.beats {
		if r.beats[i].ID == beat.ID && r.beats[i].NovelID == beat.NovelID {
			r.beats[i] = *beat
			return nil
		}
	}
	return fmt.Errorf("beat %s: %w", beat.ID, domain.ErrNotFound)
}

func (r *fakeBeatRepo) Delete(_ context.Context, id, novelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.beats {
		if r.beats[i].ID == id && r.beats[i].NovelID == novelID {
			r.beats = append(r.beats[:i], r.beats[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("beat %s: %w", id, domain.ErrNotFound)
}

func (r *fakeBeatRepo) DeleteByChapter(_ context.Context, chapterID, novelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.beats[:0]
	for i := range r.beats {
		b := r.beats[i]
		if b.NovelID == novelID && b.ChapterID != nil && *b.ChapterID == chapterID {
			continue
		}
		kept = append(kept, b)
	}
	r.beats = kept
	return nil
}

// fakeTxManager runs the function directly and counts invocations
type fakeTxManager struct {
	mu    sync.Mutex
	calls int
}

func (m *fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return fn(ctx)
}

func (m *fakeTxManager) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// testEnv wires fakes, resolver and all four services together
type testEnv struct {
	novelRepo   *fakeNovelRepo
	partRepo    *fakePartRepo
	chapterRepo *fakeChapterRepo
	beatRepo    *fakeBeatRepo
	txManager   *fakeTxManager

	novels   outlineSvc.NovelService
	parts    outlineSvc.PartService
	chapters outlineSvc.ChapterService
	beats    outlineSvc.BeatService
}

func newTestEnv() *testEnv {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	env := &testEnv{
		novelRepo:   &fakeNovelRepo{},
		partRepo:    &fakePartRepo{},
		chapterRepo: &fakeChapterRepo{},
		beatRepo:    &fakeBeatRepo{},
		txManager:   &fakeTxManager{},
	}

	resolver := NewResolver(env.novelRepo, env.partRepo, env.chapterRepo, env.beatRepo)
	env.novels = NewNovelService(env.novelRepo, resolver, logger)
	env.parts = NewPartService(env.partRepo, resolver, logger)
	env.chapters = NewChapterService(env.chapterRepo, env.beatRepo, resolver, env.txManager, logger)
	env.beats = NewBeatService(env.beatRepo, resolver, logger)

	return env
}

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}
