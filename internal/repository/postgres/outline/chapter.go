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

// PostgresChapterRepository implements the ChapterRepository interface
type PostgresChapterRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewChapterRepository creates a new chapter repository
func NewChapterRepository(config *postgres.RepositoryConfig) outlineRepo.ChapterRepository {
	return &PostgresChapterRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new chapter row
func (r *PostgresChapterRepository) Create(ctx context.Context, chapter *models.Chapter) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, novel_id, part_id, order_index, title, pov_character, summary, word_count_goal, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, r.tables.Chapters)

	executor := postgres.GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		chapter.ID,
		chapter.NovelID,
		chapter.PartID,
		chapter.OrderIndex,
		chapter.Title,
		chapter.POVCharacter,
		chapter.Summary,
		chapter.WordCountGoal,
		chapter.CreatedAt,
		chapter.UpdatedAt,
	)
	if err != nil {
		// novel_id carries a REFERENCES constraint; a violation means the
		// parent novel vanished between resolution and insert
		if postgres.IsPgForeignKeyError(err) {
			return fmt.Errorf("novel %s: %w", chapter.NovelID, domain.ErrNotFound)
		}
		return fmt.Errorf("create chapter: %w", err)
	}

	return nil
}

// GetByID retrieves a chapter matching both id and novel
func (r *PostgresChapterRepository) GetByID(ctx context.Context, id, novelID string) (*models.Chapter, error) {
	query := fmt.Sprintf(`
		SELECT id, novel_id, part_id, order_index, title, pov_character, summary, word_count_goal, created_at, updated_at
		FROM %s
		WHERE id = $1 AND novel_id = $2
	`, r.tables.Chapters)

	var chapter models.Chapter
	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, novelID).Scan(
		&chapter.ID,
		&chapter.NovelID,
		&chapter.PartID,
		&chapter.OrderIndex,
		&chapter.Title,
		&chapter.POVCharacter,
		&chapter.Summary,
		&chapter.WordCountGoal,
		&chapter.CreatedAt,
		&chapter.UpdatedAt,
	)

	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("chapter %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get chapter: %w", err)
	}

	return &chapter, nil
}

// ListByNovel retrieves all chapters under a novel
func (r *PostgresChapterRepository) ListByNovel(ctx context.Context, novelID string) ([]models.Chapter, error) {
	query := fmt.Sprintf(`
		SELECT id, novel_id, part_id, order_index, title, pov_character, summary, word_count_goal, created_at, updated_at
		FROM %s
		WHERE novel_id = $1
	`, r.tables.Chapters)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, novelID)
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	defer rows.Close()

	return scanChapters(rows)
}

// ListByPart retrieves the chapters of a novel that sit inside one part
func (r *PostgresChapterRepository) ListByPart(ctx context.Context, partID, novelID string) ([]models.Chapter, error) {
	query := fmt.Sprintf(`
		SELECT id, novel_id, part_id, order_index, title, pov_character, summary, word_count_goal, created_at, updated_at
		FROM %s
		WHERE novel_id = $1 AND part_id = $2
	`, r.tables.Chapters)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, novelID, partID)
	if err != nil {
		return nil, fmt.Errorf("list chapters by part: %w", err)
	}
	defer rows.Close()

	return scanChapters(rows)
}

// Update writes the full chapter row back
func (r *PostgresChapterRepository) Update(ctx context.Context, chapter *models.Chapter) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET part_id = $1, order_index = $2, title = $3, pov_character = $4, summary = $5, word_count_goal = $6, updated_at = $7
		WHERE id = $8 AND novel_id = $9
	`, r.tables.Chapters)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		chapter.PartID,
		chapter.OrderIndex,
		chapter.Title,
		chapter.POVCharacter,
		chapter.Summary,
		chapter.WordCountGoal,
		chapter.UpdatedAt,
		chapter.ID,
		chapter.NovelID,
	)
	if err != nil {
		return fmt.Errorf("update chapter: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("chapter %s: %w", chapter.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a chapter row
func (r *PostgresChapterRepository) Delete(ctx context.Context, id, novelID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND novel_id = $2
	`, r.tables.Chapters)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, novelID)
	if err != nil {
		return fmt.Errorf("delete chapter: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("chapter %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// scanChapters drains a chapter result set
func scanChapters(rows pgx.Rows) ([]models.Chapter, error) {
	var chapters []models.Chapter
	for rows.Next() {
		var chapter models.Chapter
		err := rows.Scan(
			&chapter.ID,
			&chapter.NovelID,
			&chapter.PartID,
			&chapter.OrderIndex,
			&chapter.Title,
			&chapter.POVCharacter,
			&chapter.Summary,
			&chapter.WordCountGoal,
			&chapter.CreatedAt,
			&chapter.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan chapter: %w", err)
		}
		chapters = append(chapters, chapter)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chapters: %w", err)
	}

	if chapters == nil {
		chapters = []models.Chapter{}
	}

	return chapters, nil
}
