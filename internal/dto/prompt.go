package dto

import (
	"time"

	"github.com/promptforge/promptforge/internal/domain"
)

// ListPromptsRequest represents query parameters for listing stored
// prompts. Pagination is parsed separately.
type ListPromptsRequest struct {
	Domain   string   `query:"domain" validate:"omitempty,prompt_domain"`
	Tags     []string `query:"tags" validate:"omitempty,max=16,dive,max=64"`
	MinScore *float64 `query:"minScore" validate:"omitempty,gte=0,lte=1"`
}

// SearchPromptsRequest represents query parameters for full-text search
// over stored prompts.
type SearchPromptsRequest struct {
	Query  string `query:"q" validate:"required,max=500"`
	Domain string `query:"domain" validate:"omitempty,prompt_domain"`
}

// AddTagsRequest represents the request to attach tags to a stored prompt
type AddTagsRequest struct {
	Tags []string `json:"tags" validate:"required,min=1,max=16,dive,required,max=64"`
}

// PromptRecordResponse represents a stored refinement run
type PromptRecordResponse struct {
	ID          string        `json:"id"`
	RawText     string        `json:"rawText"`
	RefinedText string        `json:"refinedText"`
	Domain      string        `json:"domain"`
	Template    string        `json:"template"`
	Score       ScoreResponse `json:"score"`
	Tags        []string      `json:"tags"`
	Visibility  string        `json:"visibility"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// PromptListResponse represents a paginated page of stored prompts
type PromptListResponse struct {
	Records    []PromptRecordResponse `json:"records"`
	TotalCount int64                  `json:"totalCount"`
	HasMore    bool                   `json:"hasMore"`
}

// DomainStatsResponse represents aggregate score statistics for one domain
type DomainStatsResponse struct {
	Domain     string  `json:"domain"`
	Count      int64   `json:"count"`
	AvgOverall float64 `json:"avgOverall"`
	MinOverall float64 `json:"minOverall"`
	MaxOverall float64 `json:"maxOverall"`
}

// StatsResponse represents per-domain statistics over the whole library
type StatsResponse struct {
	Domains []DomainStatsResponse `json:"domains"`
	Total   int64                 `json:"total"`
}

// NewPromptRecordResponse converts a domain prompt record to its response DTO
func NewPromptRecordResponse(r domain.PromptRecord) PromptRecordResponse {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return PromptRecordResponse{
		ID:          r.ID.String(),
		RawText:     r.RawText,
		RefinedText: r.RefinedText,
		Domain:      string(r.Domain),
		Template:    string(r.Template),
		Score:       NewScoreResponse(r.Score),
		Tags:        tags,
		Visibility:  r.Visibility,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// NewPromptListResponse converts a domain prompt list to its response DTO
func NewPromptListResponse(l domain.PromptList) PromptListResponse {
	records := make([]PromptRecordResponse, 0, len(l.Records))
	for _, r := range l.Records {
		records = append(records, NewPromptRecordResponse(r))
	}
	return PromptListResponse{
		Records:    records,
		TotalCount: l.TotalCount,
		HasMore:    l.HasMore,
	}
}

// NewStatsResponse converts per-domain statistics to the response DTO
func NewStatsResponse(stats []domain.DomainStats) StatsResponse {
	domains := make([]DomainStatsResponse, 0, len(stats))
	var total int64
	for _, s := range stats {
		domains = append(domains, DomainStatsResponse{
			Domain:     string(s.Domain),
			Count:      s.Count,
			AvgOverall: s.AvgOverall,
			MinOverall: s.MinOverall,
			MaxOverall: s.MaxOverall,
		})
		total += s.Count
	}
	return StatsResponse{Domains: domains, Total: total}
}
