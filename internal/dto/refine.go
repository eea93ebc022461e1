package dto

import (
	"github.com/promptforge/promptforge/internal/domain"
)

// RefineRequest represents the request to refine a raw prompt
type RefineRequest struct {
	Text          string   `json:"text" validate:"required,min=1,max=20000"`
	Domain        string   `json:"domain,omitempty" validate:"omitempty,prompt_domain"`
	Style         string   `json:"style,omitempty" validate:"omitempty,max=200"`
	TargetScore   *float64 `json:"targetScore,omitempty" validate:"omitempty,gte=0,lte=1"`
	MaxIterations *int     `json:"maxIterations,omitempty" validate:"omitempty,gte=1,lte=10"`
	ForceBoost    bool     `json:"forceBoost,omitempty"`
	Save          bool     `json:"save,omitempty"`
	Tags          []string `json:"tags,omitempty" validate:"omitempty,max=16,dive,min=1,max=64"`
}

// EvaluateRequest represents the request to score an existing pair.
// Unlike refine hints, the domain here is authoritative and required.
type EvaluateRequest struct {
	Raw     string `json:"raw,omitempty" validate:"omitempty,max=20000"`
	Refined string `json:"refined" validate:"required,min=1,max=40000"`
	Domain  string `json:"domain" validate:"required,prompt_domain"`
}

// ValidateRequest represents the request to run anti-pattern checks
type ValidateRequest struct {
	Text   string `json:"text" validate:"required,min=1,max=40000"`
	Domain string `json:"domain,omitempty" validate:"omitempty,prompt_domain"`
}

// CompareRequest represents the request to rank prompt variants
type CompareRequest struct {
	Variants []string `json:"variants" validate:"required,min=1,max=20,dive,min=1,max=20000"`
	Domain   string   `json:"domain,omitempty" validate:"omitempty,prompt_domain"`
}

// ScoreResponse represents a quality score in API responses
type ScoreResponse struct {
	Clarity      float64 `json:"clarity"`
	Specificity  float64 `json:"specificity"`
	Structure    float64 `json:"structure"`
	Completeness float64 `json:"completeness"`
	Overall      float64 `json:"overall"`
}

// FindingResponse represents one validator finding
type FindingResponse struct {
	Severity string `json:"severity"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// RefineMetadataResponse carries processing metadata for a refinement
type RefineMetadataResponse struct {
	ElapsedMs       int64 `json:"elapsedMs"`
	Iterations      int   `json:"iterations"`
	ScoreOverridden bool  `json:"scoreOverridden,omitempty"`
	CacheHit        bool  `json:"cacheHit,omitempty"`
}

// RefineResponse represents a refined prompt
type RefineResponse struct {
	ID       string                 `json:"id,omitempty"`
	Raw      string                 `json:"raw"`
	Refined  string                 `json:"refined"`
	Domain   string                 `json:"domain"`
	Template string                 `json:"template"`
	Score    ScoreResponse          `json:"score"`
	Findings []FindingResponse      `json:"findings"`
	Metadata RefineMetadataResponse `json:"metadata"`
}

// ValidateResponse represents the findings for a validation request.
// Domain is the resolved domain the checks ran under. Valid means no
// error-severity findings.
type ValidateResponse struct {
	Domain   string            `json:"domain"`
	Findings []FindingResponse `json:"findings"`
	Valid    bool              `json:"valid"`
}

// RankedVariantResponse represents one ranked comparison entry
type RankedVariantResponse struct {
	Index   int           `json:"index"`
	Raw     string        `json:"raw"`
	Refined string        `json:"refined"`
	Domain  string        `json:"domain"`
	Score   ScoreResponse `json:"score"`
	Rank    int           `json:"rank"`
	Winner  bool          `json:"winner"`
}

// CompareResponse represents a full comparison result
type CompareResponse struct {
	Variants []RankedVariantResponse `json:"variants"`
	Winner   RankedVariantResponse   `json:"winner"`
}

// NewScoreResponse maps a domain quality score
func NewScoreResponse(s domain.QualityScore) ScoreResponse {
	return ScoreResponse{
		Clarity:      s.Clarity,
		Specificity:  s.Specificity,
		Structure:    s.Structure,
		Completeness: s.Completeness,
		Overall:      s.Overall,
	}
}

// NewFindingResponses maps domain findings, never returning nil so the
// JSON field stays an array
func NewFindingResponses(findings []domain.Finding) []FindingResponse {
	out := make([]FindingResponse, 0, len(findings))
	for _, f := range findings {
		out = append(out, FindingResponse{
			Severity: string(f.Severity),
			Category: string(f.Category),
			Message:  f.Message,
		})
	}
	return out
}

// NewRefineResponse maps a refined prompt
func NewRefineResponse(p *domain.RefinedPrompt) RefineResponse {
	return RefineResponse{
		Raw:      p.RawText,
		Refined:  p.Text,
		Domain:   string(p.Domain),
		Template: string(p.Template),
		Score:    NewScoreResponse(p.Score),
		Findings: NewFindingResponses(p.Findings),
		Metadata: RefineMetadataResponse{
			ElapsedMs:       p.Metadata.ElapsedMs,
			Iterations:      p.Metadata.Iterations,
			ScoreOverridden: p.Metadata.ScoreOverridden,
			CacheHit:        p.Metadata.CacheHit,
		},
	}
}

// NewCompareResponse maps a comparison result
func NewCompareResponse(r *domain.ComparisonResult) CompareResponse {
	variants := make([]RankedVariantResponse, 0, len(r.Variants))
	for _, v := range r.Variants {
		variants = append(variants, newRankedVariantResponse(v))
	}
	return CompareResponse{
		Variants: variants,
		Winner:   newRankedVariantResponse(r.Winner),
	}
}

func newRankedVariantResponse(v domain.RankedVariant) RankedVariantResponse {
	return RankedVariantResponse{
		Index:   v.Index,
		Raw:     v.RawText,
		Refined: v.RefinedText,
		Domain:  string(v.Domain),
		Score:   NewScoreResponse(v.Score),
		Rank:    v.Rank,
		Winner:  v.Winner,
	}
}
