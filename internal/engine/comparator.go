package engine

import (
	"context"
	"sort"

	"github.com/promptforge/promptforge/internal/domain"
	apperrors "github.com/promptforge/promptforge/internal/pkg/errors"
)

// Compare refines and scores every variant and ranks them by overall
// score, descending. Exact ties resolve to the lowest original index.
// When d is empty each variant is classified individually; a non-empty d
// is authoritative and must be a member of the closed set.
func (e *Engine) Compare(ctx context.Context, variants []domain.RawPrompt, d domain.Domain) (*domain.ComparisonResult, error) {
	if len(variants) == 0 {
		return nil, apperrors.InvalidInput("variants", "at least one variant is required")
	}
	if d != "" && !d.IsValid() {
		return nil, apperrors.InvalidInput("domain", "not a member of the closed domain set")
	}

	ranked := make([]domain.RankedVariant, 0, len(variants))
	for i, v := range variants {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		vd := d
		if vd == "" {
			vd = e.Classify(v.Text, v.DomainHint)
		}
		t := e.SelectTemplate(vd, v.StyleHint)
		refined := e.Refine(v, vd, t, 1, nil)

		ranked = append(ranked, domain.RankedVariant{
			Index:       i,
			RawText:     v.Text,
			RefinedText: refined,
			Domain:      vd,
			Score:       e.Score(v.Text, refined, vd),
		})
	}

	// Stable sort preserves input order on exact ties, so the earliest
	// variant wins.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.Overall > ranked[j].Score.Overall
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	ranked[0].Winner = true

	return &domain.ComparisonResult{
		Variants: ranked,
		Winner:   ranked[0],
	}, nil
}
