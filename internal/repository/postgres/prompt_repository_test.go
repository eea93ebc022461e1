package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptforge/promptforge/internal/domain"
	apperrors "github.com/promptforge/promptforge/internal/pkg/errors"
)

// createTestRecord creates a prompt record with test data
func createTestRecord(rawText string, d domain.Domain, overall float64) *domain.PromptRecord {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.PromptRecord{
		ID:          uuid.New(),
		RawText:     rawText,
		RefinedText: "Refined: " + rawText,
		Domain:      d,
		Template:    domain.TemplateBasic,
		Score: domain.QualityScore{
			Clarity:      overall,
			Specificity:  overall,
			Structure:    overall,
			Completeness: overall,
			Overall:      overall,
		},
		Tags:       []string{"test"},
		Visibility: "private",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestPromptRepository_CreateAndGet(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	repo := NewPromptRepository(db)
	ctx := context.Background()

	rawText := "test raw prompt for create"
	cleanupPrompts(t, db, rawText)
	defer cleanupPrompts(t, db, rawText)

	record := createTestRecord(rawText, domain.DomainSQL, 0.85)
	err := repo.Create(ctx, record)
	require.NoError(t, err)

	t.Run("existing record", func(t *testing.T) {
		fetched, err := repo.GetByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.ID, fetched.ID)
		assert.Equal(t, record.RawText, fetched.RawText)
		assert.Equal(t, record.RefinedText, fetched.RefinedText)
		assert.Equal(t, domain.DomainSQL, fetched.Domain)
		assert.InDelta(t, 0.85, fetched.Score.Overall, 1e-9)
		assert.Equal(t, []string{"test"}, fetched.Tags)
	})

	t.Run("non-existent record", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestPromptRepository_List(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	repo := NewPromptRepository(db)
	ctx := context.Background()

	raws := []string{
		"test list sql prompt",
		"test list branding prompt",
		"test list low score prompt",
	}
	cleanupPrompts(t, db, raws...)
	defer cleanupPrompts(t, db, raws...)

	require.NoError(t, repo.Create(ctx, createTestRecord(raws[0], domain.DomainSQL, 0.9)))
	require.NoError(t, repo.Create(ctx, createTestRecord(raws[1], domain.DomainBranding, 0.8)))
	require.NoError(t, repo.Create(ctx, createTestRecord(raws[2], domain.DomainSQL, 0.3)))

	t.Run("filter by domain", func(t *testing.T) {
		d := domain.DomainSQL
		list, err := repo.List(ctx, &domain.PromptFilter{Domain: &d}, 50, 0)
		require.NoError(t, err)
		for _, r := range list.Records {
			assert.Equal(t, domain.DomainSQL, r.Domain)
		}
	})

	t.Run("filter by min score", func(t *testing.T) {
		min := 0.75
		list, err := repo.List(ctx, &domain.PromptFilter{MinScore: &min}, 50, 0)
		require.NoError(t, err)
		for _, r := range list.Records {
			assert.GreaterOrEqual(t, r.Score.Overall, min)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		list, err := repo.List(ctx, &domain.PromptFilter{}, 1, 0)
		require.NoError(t, err)
		require.Len(t, list.Records, 1)
		assert.True(t, list.HasMore)
		assert.GreaterOrEqual(t, list.TotalCount, int64(3))
	})
}

func TestPromptRepository_Search(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	repo := NewPromptRepository(db)
	ctx := context.Background()

	rawText := "test search kubernetes deployment prompt"
	cleanupPrompts(t, db, rawText)
	defer cleanupPrompts(t, db, rawText)

	require.NoError(t, repo.Create(ctx, createTestRecord(rawText, domain.DomainDevOps, 0.7)))

	list, err := repo.Search(ctx, "kubernetes deployment", nil, 50, 0)
	require.NoError(t, err)
	require.NotEmpty(t, list.Records)

	found := false
	for _, r := range list.Records {
		if r.RawText == rawText {
			found = true
		}
	}
	assert.True(t, found)

	empty, err := repo.Search(ctx, "no-such-text-anywhere-zzz", nil, 50, 0)
	require.NoError(t, err)
	assert.Empty(t, empty.Records)
}

func TestPromptRepository_Delete(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	repo := NewPromptRepository(db)
	ctx := context.Background()

	rawText := "test delete prompt"
	cleanupPrompts(t, db, rawText)
	defer cleanupPrompts(t, db, rawText)

	record := createTestRecord(rawText, domain.DomainGeneral, 0.5)
	require.NoError(t, repo.Create(ctx, record))

	err := repo.Delete(ctx, record.ID)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, record.ID)
	assert.True(t, apperrors.IsNotFound(err))

	err = repo.Delete(ctx, record.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPromptRepository_AddTags(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	repo := NewPromptRepository(db)
	ctx := context.Background()

	rawText := "test add tags prompt"
	cleanupPrompts(t, db, rawText)
	defer cleanupPrompts(t, db, rawText)

	record := createTestRecord(rawText, domain.DomainGeneral, 0.5)
	require.NoError(t, repo.Create(ctx, record))

	updated, err := repo.AddTags(ctx, record.ID, []string{"alpha", "test"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alpha", "test"}, updated.Tags)

	_, err = repo.AddTags(ctx, uuid.New(), []string{"alpha"})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPromptRepository_Stats(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	repo := NewPromptRepository(db)
	ctx := context.Background()

	rawText := "test stats prompt"
	cleanupPrompts(t, db, rawText)
	defer cleanupPrompts(t, db, rawText)

	require.NoError(t, repo.Create(ctx, createTestRecord(rawText, domain.DomainFinance, 0.6)))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, stats)

	for _, s := range stats {
		assert.Greater(t, s.Count, int64(0))
		assert.LessOrEqual(t, s.MinOverall, s.AvgOverall)
		assert.LessOrEqual(t, s.AvgOverall, s.MaxOverall)
	}
}
