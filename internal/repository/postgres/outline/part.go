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

// PostgresPartRepository implements the PartRepository interface
type PostgresPartRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewPartRepository creates a new part repository
func NewPartRepository(config *postgres.RepositoryConfig) outlineRepo.PartRepository {
	return &PostgresPartRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new part row
func (r *PostgresPartRepository) Create(ctx context.Context, part *models.Part) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, novel_id, order_index, title, summary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.tables.Parts)

	executor := postgres.GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		part.ID,
		part.NovelID,
		part.OrderIndex,
		part.Title,
		part.Summary,
		part.CreatedAt,
	)
	if err != nil {
		// novel_id carries a REFERENCES constraint; a violation means the
		// parent novel vanished between resolution and insert
		if postgres.IsPgForeignKeyError(err) {
			return fmt.Errorf("novel %s: %w", part.NovelID, domain.ErrNotFound)
		}
		return fmt.Errorf("create part: %w", err)
	}

	return nil
}

// GetByID retrieves a part matching both id and novel
func (r *PostgresPartRepository) GetByID(ctx context.Context, id, novelID string) (*models.Part, error) {
	query := fmt.Sprintf(`
		SELECT id, novel_id, order_index, title, summary, created_at
		FROM %s
		WHERE id = $1 AND novel_id = $2
	`, r.tables.Parts)

	var part models.Part
	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, novelID).Scan(
		&part.ID,
		&part.NovelID,
		&part.OrderIndex,
		&part.Title,
		&part.Summary,
		&part.CreatedAt,
	)

	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("part %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get part: %w", err)
	}

	return &part, nil
}

// ListByNovel retrieves all parts under a novel
func (r *PostgresPartRepository) ListByNovel(ctx context.Context, novelID string) ([]models.Part, error) {
	query := fmt.Sprintf(`
		SELECT id, novel_id, order_index, title, summary, created_at
		FROM %s
		WHERE novel_id = $1
	`, r.tables.Parts)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, novelID)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()

	var parts []models.Part
	for rows.Next() {
		var part models.Part
		err := rows.Scan(
			&part.ID,
			&part.NovelID,
			&part.OrderIndex,
			&part.Title,
			&part.Summary,
			&part.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		parts = append(parts, part)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate parts: %w", err)
	}

	if parts == nil {
		parts = []models.Part{}
	}

	return parts, nil
}

// Update writes the full part row back
func (r *PostgresPartRepository) Update(ctx context.Context, part *models.Part) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET order_index = $1, title = $2, summary = $3
		WHERE id = $4 AND novel_id = $5
	`, r.tables.Parts)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		part.OrderIndex,
		part.Title,
		part.Summary,
		part.ID,
		part.NovelID,
	)
	if err != nil {
		return fmt.Errorf("update part: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("part %s: %w", part.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a part row. Chapters keep their now-dangling part_id.
func (r *PostgresPartRepository) Delete(ctx context.Context, id, novelID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND novel_id = $2
	`, r.tables.Parts)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, novelID)
	if err != nil {
		return fmt.Errorf("delete part: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("part %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
