package outline

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"plotline/internal/domain"
	models "plotline/internal/domain/models/outline"
	outlineRepo "plotline/internal/domain/repositories/outline"
	"plotline/internal/repository/postgres"
)

// PostgresBeatRepository implements the BeatRepository interface
type PostgresBeatRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewBeatRepository creates a new beat repository
func NewBeatRepository(config *postgres.RepositoryConfig) outlineRepo.BeatRepository {
	return &PostgresBeatRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new beat row
func (r *PostgresBeatRepository) Create(ctx context.Context, beat *models.Beat) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, novel_id, chapter_id, order_index, beat_type, description, viewpoint, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.tables.Beats)

	executor := postgres.GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		beat.ID,
		beat.NovelID,
		beat.ChapterID,
		beat.OrderIndex,
		beat.BeatType,
		beat.Description,
		beat.Viewpoint,
		beat.CreatedAt,
	)
	if err != nil {
		// novel_id carries a REFERENCES constraint; a violation means the
		// parent novel vanished between resolution and insert
		if postgres.IsPgForeignKeyError(err) {
			return fmt.Errorf("novel %s: %w", beat.NovelID, domain.ErrNotFound)
		}
		return fmt.Errorf("create beat: %w", err)
	}

	return nil
}

// GetByID retrieves a beat matching both id and novel
func (r *PostgresBeatRepository) GetByID(ctx context.Context, id, novelID string) (*models.Beat, error) {
	query := fmt.Sprintf(`
		SELECT id, novel_id, chapter_id, order_index, beat_type, description, viewpoint, created_at
		FROM %s
		WHERE id = $1 AND novel_id = $2
	`, r.tables.Beats)

	var beat models.Beat
	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, novelID).Scan(
		&beat.ID,
		&beat.NovelID,
		&beat.ChapterID,
		&beat.OrderIndex,
		&beat.BeatType,
		&beat.Description,
		&beat.Viewpoint,
		&beat.CreatedAt,
	)

	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("beat %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get beat: %w", err)
	}

	return &beat, nil
}

// ListByNovel retrieves all beats under a novel
func (r *PostgresBeatRepository) ListByNovel(ctx context.Context, novelID string) ([]models.Beat, error) {
	query := fmt.Sprintf(`
		SELECT id, novel_id, chapter_id, order_index, beat_type, description, viewpoint, created_at
		FROM %s
		WHERE novel_id = $1
	`, r.tables.Beats)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, novelID)
	if err != nil {
		return nil, fmt.Errorf("list beats: %w", err)
	}
	defer rows.Close()

	return scanBeats(rows)
}

// ListByChapter retrieves the beats of a novel attached to one chapter
func (r *PostgresBeatRepository) ListByChapter(ctx context.Context, chapterID, novelID string) ([]models.Beat, error) {
	query := fmt.Sprintf(`
		SELECT id, novel_id, chapter_id, order_index, beat_type, description, viewpoint, created_at
		FROM %s
		WHERE novel_id = $1 AND chapter_id = $2
	`, r.tables.Beats)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, novelID, chapterID)
	if err != nil {
		return nil, fmt.Errorf("list beats by chapter: %w", err)
	}
	defer rows.Close()

	return scanBeats(rows)
}

// Update writes the full beat row back
func (r *PostgresBeatRepository) Update(ctx context.Context, beat *models.Beat) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET chapter_id = $1, order_index = $2, beat_type = $3, description = $4, viewpoint = $5
		WHERE id = $6 AND novel_id = $7
	`, r.tables.Beats)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		beat.ChapterID,
		beat.OrderIndex,
		beat.BeatType,
		beat.Description,
		beat.Viewpoint,
		beat.ID,
		beat.NovelID,
	)
	if err != nil {
		return fmt.Errorf("update beat: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("beat %s: %w", beat.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a beat row
func (r *PostgresBeatRepository) Delete(ctx context.Context, id, novelID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND novel_id = $2
	`, r.tables.Beats)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, novelID)
	if err != nil {
		return fmt.Errorf("delete beat: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("beat %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByChapter removes every beat attached to a chapter.
// Zero affected rows is fine; a chapter may have no beats.
func (r *PostgresBeatRepository) DeleteByChapter(ctx context.Context, chapterID, novelID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE chapter_id = $1 AND novel_id = $2
	`, r.tables.Beats)

	executor := postgres.GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, chapterID, novelID); err != nil {
		return fmt.Errorf("delete beats by chapter: %w", err)
	}

	return nil
}

// scanBeats drains a beat result set
func scanBeats(rows pgx.Rows) ([]models.Beat, error) {
	var beats []models.Beat
	for rows.Next() {
		var beat models.Beat
		err := rows.Scan(
			&beat.ID,
			&beat.NovelID,
			&beat.ChapterID,
			&beat.OrderIndex,
			&beat.BeatType,
			&beat.Description,
			&beat.Viewpoint,
			&beat.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan beat: %w", err)
		}
		beats = append(beats, beat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate beats: %w", err)
	}

	if beats == nil {
		beats = []models.Beat{}
	}

	return beats, nil
}
