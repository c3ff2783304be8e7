package outline

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"plotline/internal/domain"
	models "plotline/internal/domain/models/outline"
	outlineRepo "plotline/internal/domain/repositories/outline"
	"plotline/internal/repository/postgres"
)

// PostgresNovelRepository implements the NovelRepository interface
type PostgresNovelRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewNovelRepository creates a new novel repository
func NewNovelRepository(config *postgres.RepositoryConfig) outlineRepo.NovelRepository {
	return &PostgresNovelRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new novel row
func (r *PostgresNovelRepository) Create(ctx context.Context, novel *models.Novel) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, title, subtitle, genre, target_audience, status, logline, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, r.tables.Novels)

	executor := postgres.GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		novel.ID,
		novel.UserID,
		novel.Title,
		novel.Subtitle,
		novel.Genre,
		novel.TargetAudience,
		novel.Status,
		novel.Logline,
		novel.Notes,
		novel.CreatedAt,
		novel.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create novel: %w", err)
	}

	return nil
}

// GetByID retrieves a novel matching both id and owner
func (r *PostgresNovelRepository) GetByID(ctx context.Context, id, userID string) (*models.Novel, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, subtitle, genre, target_audience, status, logline, notes, created_at, updated_at
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Novels)

	var novel models.Novel
	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, userID).Scan(
		&novel.ID,
		&novel.UserID,
		&novel.Title,
		&novel.Subtitle,
		&novel.Genre,
		&novel.TargetAudience,
		&novel.Status,
		&novel.Logline,
		&novel.Notes,
		&novel.CreatedAt,
		&novel.UpdatedAt,
	)

	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("novel %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get novel: %w", err)
	}

	return &novel, nil
}

// List retrieves all novels owned by a user, ordered by updated_at DESC
func (r *PostgresNovelRepository) List(ctx context.Context, userID string) ([]models.Novel, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, subtitle, genre, target_audience, status, logline, notes, created_at, updated_at
		FROM %s
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`, r.tables.Novels)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list novels: %w", err)
	}
	defer rows.Close()

	var novels []models.Novel
	for rows.Next() {
		var novel models.Novel
		err := rows.Scan(
			&novel.ID,
			&novel.UserID,
			&novel.Title,
			&novel.Subtitle,
			&novel.Genre,
			&novel.TargetAudience,
			&novel.Status,
			&novel.Logline,
			&novel.Notes,
			&novel.CreatedAt,
			&novel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan novel: %w", err)
		}
		novels = append(novels, novel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate novels: %w", err)
	}

	// Return empty slice instead of nil if no novels
	if novels == nil {
		novels = []models.Novel{}
	}

	return novels, nil
}

// Update writes the full novel row back
func (r *PostgresNovelRepository) Update(ctx context.Context, novel *models.Novel) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, subtitle = $2, genre = $3, target_audience = $4, status = $5, logline = $6, notes = $7, updated_at = $8
		WHERE id = $9 AND user_id = $10
	`, r.tables.Novels)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		novel.Title,
		novel.Subtitle,
		novel.Genre,
		novel.TargetAudience,
		novel.Status,
		novel.Logline,
		novel.Notes,
		novel.UpdatedAt,
		novel.ID,
		novel.UserID,
	)
	if err != nil {
		return fmt.Errorf("update novel: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("novel %s: %w", novel.ID, domain.ErrNotFound)
	}

	return nil
}
