package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/promptforge/promptforge/internal/domain"
	"github.com/promptforge/promptforge/internal/pkg/database"
	apperrors "github.com/promptforge/promptforge/internal/pkg/errors"
)

// PromptRepository handles prompt library operations in PostgreSQL
type PromptRepository struct {
	db *database.PostgresDB
}

// NewPromptRepository creates a new prompt repository
func NewPromptRepository(db *database.PostgresDB) *PromptRepository {
	return &PromptRepository{db: db}
}

// Create persists a refinement run
func (r *PromptRepository) Create(ctx context.Context, record *domain.PromptRecord) error {
	query := `
		INSERT INTO refined_prompts (
			id, raw_text, refined_text, domain, template,
			clarity, specificity, structure, completeness, overall,
			tags, visibility, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		record.ID,
		record.RawText,
		record.RefinedText,
		record.Domain,
		record.Template,
		record.Score.Clarity,
		record.Score.Specificity,
		record.Score.Structure,
		record.Score.Completeness,
		record.Score.Overall,
		record.Tags,
		record.Visibility,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create prompt record: %w", err)
	}

	return nil
}

// GetByID retrieves a stored refinement run by ID
func (r *PromptRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PromptRecord, error) {
	query := selectColumns + `
		FROM refined_prompts
		WHERE id = $1
	`

	var record domain.PromptRecord
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(scanTargets(&record)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("prompt")
		}
		return nil, fmt.Errorf("failed to get prompt record: %w", err)
	}

	return &record, nil
}

// List retrieves stored refinement runs with filtering
func (r *PromptRepository) List(ctx context.Context, filter *domain.PromptFilter, limit, offset int) (*domain.PromptList, error) {
	baseQuery := `FROM refined_prompts WHERE 1=1`
	args := []interface{}{}
	argIndex := 1

	if filter.Domain != nil {
		baseQuery += fmt.Sprintf(" AND domain = $%d", argIndex)
		args = append(args, *filter.Domain)
		argIndex++
	}

	if len(filter.Tags) > 0 {
		baseQuery += fmt.Sprintf(" AND tags @> $%d", argIndex)
		args = append(args, filter.Tags)
		argIndex++
	}

	if filter.MinScore != nil {
		baseQuery += fmt.Sprintf(" AND overall >= $%d", argIndex)
		args = append(args, *filter.MinScore)
		argIndex++
	}

	return r.page(ctx, baseQuery, args, argIndex, limit, offset)
}

// Search retrieves stored refinement runs matching a text query against
// both the raw and the refined text.
func (r *PromptRepository) Search(ctx context.Context, query string, filter *domain.PromptFilter, limit, offset int) (*domain.PromptList, error) {
	baseQuery := `FROM refined_prompts WHERE (raw_text ILIKE $1 OR refined_text ILIKE $1)`
	args := []interface{}{"%" + query + "%"}
	argIndex := 2

	if filter != nil && filter.Domain != nil {
		baseQuery += fmt.Sprintf(" AND domain = $%d", argIndex)
		args = append(args, *filter.Domain)
		argIndex++
	}

	return r.page(ctx, baseQuery, args, argIndex, limit, offset)
}

// Delete removes a stored refinement run
func (r *PromptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM refined_prompts WHERE id = $1`

	tag, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete prompt record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("prompt")
	}

	return nil
}

// AddTags appends tags to a stored refinement run, deduplicating against
// the tags already present.
func (r *PromptRepository) AddTags(ctx context.Context, id uuid.UUID, tags []string) (*domain.PromptRecord, error) {
	query := `
		UPDATE refined_prompts
		SET tags = (
			SELECT ARRAY(SELECT DISTINCT unnest(tags || $2::text[]) ORDER BY 1)
		), updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Pool.Exec(ctx, query, id, tags)
	if err != nil {
		return nil, fmt.Errorf("failed to add tags: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.NotFound("prompt")
	}

	return r.GetByID(ctx, id)
}

// Stats returns per-domain aggregate score statistics for the library
func (r *PromptRepository) Stats(ctx context.Context) ([]domain.DomainStats, error) {
	query := `
		SELECT domain, COUNT(*), AVG(overall), MIN(overall), MAX(overall)
		FROM refined_prompts
		GROUP BY domain
		ORDER BY COUNT(*) DESC, domain ASC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query prompt stats: %w", err)
	}
	defer rows.Close()

	var stats []domain.DomainStats
	for rows.Next() {
		var s domain.DomainStats
		if err := rows.Scan(&s.Domain, &s.Count, &s.AvgOverall, &s.MinOverall, &s.MaxOverall); err != nil {
			return nil, fmt.Errorf("failed to scan prompt stats: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read prompt stats: %w", err)
	}

	return stats, nil
}

func (r *PromptRepository) page(ctx context.Context, baseQuery string, args []interface{}, argIndex, limit, offset int) (*domain.PromptList, error) {
	countQuery := "SELECT COUNT(*) " + baseQuery
	var totalCount int64
	err := r.db.Pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count prompt records: %w", err)
	}

	query := fmt.Sprintf(`
		%s
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, selectColumns, baseQuery, argIndex, argIndex+1)

	args = append(args, limit, offset)

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list prompt records: %w", err)
	}
	defer rows.Close()

	var records []domain.PromptRecord
	for rows.Next() {
		var record domain.PromptRecord
		if err := rows.Scan(scanTargets(&record)...); err != nil {
			return nil, fmt.Errorf("failed to scan prompt record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read prompt records: %w", err)
	}

	return &domain.PromptList{
		Records:    records,
		TotalCount: totalCount,
		HasMore:    int64(offset+len(records)) < totalCount,
	}, nil
}

const selectColumns = `
		SELECT id, raw_text, refined_text, domain, template,
			clarity, specificity, structure, completeness, overall,
			tags, visibility, created_at, updated_at`

func scanTargets(record *domain.PromptRecord) []interface{} {
	return []interface{}{
		&record.ID,
		&record.RawText,
		&record.RefinedText,
		&record.Domain,
		&record.Template,
		&record.Score.Clarity,
		&record.Score.Specificity,
		&record.Score.Structure,
		&record.Score.Completeness,
		&record.Score.Overall,
		&record.Tags,
		&record.Visibility,
		&record.CreatedAt,
		&record.UpdatedAt,
	}
}
