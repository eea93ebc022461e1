package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/domain"
	apperrors "github.com/promptforge/promptforge/internal/pkg/errors"
)

// PromptRepository defines prompt library repository operations
type PromptRepository interface {
	Create(ctx context.Context, record *domain.PromptRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PromptRecord, error)
	List(ctx context.Context, filter *domain.PromptFilter, limit, offset int) (*domain.PromptList, error)
	Search(ctx context.Context, query string, filter *domain.PromptFilter, limit, offset int) (*domain.PromptList, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddTags(ctx context.Context, id uuid.UUID, tags []string) (*domain.PromptRecord, error)
	Stats(ctx context.Context) ([]domain.DomainStats, error)
}

// LibraryService handles the stored prompt library
type LibraryService struct {
	repo   PromptRepository
	logger *zap.Logger
}

// NewLibraryService creates a new library service
func NewLibraryService(repo PromptRepository, logger *zap.Logger) *LibraryService {
	return &LibraryService{
		repo:   repo,
		logger: logger,
	}
}

// Get retrieves a stored refinement run by ID
func (s *LibraryService) Get(ctx context.Context, id uuid.UUID) (*domain.PromptRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves stored refinement runs with filtering
func (s *LibraryService) List(ctx context.Context, filter *domain.PromptFilter, limit, offset int) (*domain.PromptList, error) {
	if filter == nil {
		filter = &domain.PromptFilter{}
	}
	filter.Tags = normalizeTags(filter.Tags)

	return s.repo.List(ctx, filter, limit, offset)
}

// Search retrieves stored refinement runs matching a text query
func (s *LibraryService) Search(ctx context.Context, query string, filter *domain.PromptFilter, limit, offset int) (*domain.PromptList, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.InvalidInput("q", "must not be empty")
	}

	return s.repo.Search(ctx, query, filter, limit, offset)
}

// Delete removes a stored refinement run
func (s *LibraryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("deleted prompt record", zap.String("promptId", id.String()))
	return nil
}

// AddTags appends tags to a stored refinement run
func (s *LibraryService) AddTags(ctx context.Context, id uuid.UUID, tags []string) (*domain.PromptRecord, error) {
	tags = normalizeTags(tags)
	if len(tags) == 0 {
		return nil, apperrors.InvalidInput("tags", "must contain at least one non-empty tag")
	}

	record, err := s.repo.AddTags(ctx, id, tags)
	if err != nil {
		return nil, fmt.Errorf("failed to add tags: %w", err)
	}

	return record, nil
}

// Stats returns per-domain aggregate score statistics
func (s *LibraryService) Stats(ctx context.Context) ([]domain.DomainStats, error) {
	return s.repo.Stats(ctx)
}

// normalizeTags lowercases, trims and deduplicates tags, preserving
// first-seen order
func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		normalized = append(normalized, tag)
	}
	return normalized
}
