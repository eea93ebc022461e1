package domain

import (
	"time"

	"github.com/google/uuid"
)

// RawPrompt is the original input text plus optional hints. Immutable
// once received.
type RawPrompt struct {
	Text       string `json:"text"`
	DomainHint string `json:"domainHint,omitempty"`
	StyleHint  string `json:"styleHint,omitempty"`
}

// RefineMetadata carries processing metadata for one refinement run
type RefineMetadata struct {
	ElapsedMs       int64 `json:"elapsedMs"`
	Iterations      int   `json:"iterations"`
	ScoreOverridden bool  `json:"scoreOverridden"`
	CacheHit        bool  `json:"cacheHit,omitempty"`
}

// RefinedPrompt is the output of one refinement run: the structured text,
// the resolved domain and template, the quality score, validator findings
// and processing metadata. Never mutated after creation; a new refinement
// produces a new RefinedPrompt.
type RefinedPrompt struct {
	RawText  string         `json:"rawText"`
	Text     string         `json:"text"`
	Domain   Domain         `json:"domain"`
	Template Template       `json:"template"`
	Score    QualityScore   `json:"score"`
	Findings []Finding      `json:"findings,omitempty"`
	Metadata RefineMetadata `json:"metadata"`
}

// PromptRecord is the persisted representation of a refinement run.
// Ids, timestamps and visibility belong here, not to the engine output.
type PromptRecord struct {
	ID          uuid.UUID    `json:"id"`
	RawText     string       `json:"rawText"`
	RefinedText string       `json:"refinedText"`
	Domain      Domain       `json:"domain"`
	Template    Template     `json:"template"`
	Score       QualityScore `json:"score"`
	Tags        []string     `json:"tags"`
	Visibility  string       `json:"visibility"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// PromptFilter represents filter options for searching stored prompts
type PromptFilter struct {
	Query    *string
	Domain   *Domain
	Tags     []string
	MinScore *float64
}

// PromptList represents a paginated list of prompt records
type PromptList struct {
	Records    []PromptRecord `json:"records"`
	TotalCount int64          `json:"totalCount"`
	HasMore    bool           `json:"hasMore"`
}

// DomainStats represents aggregate score statistics for one domain
type DomainStats struct {
	Domain     Domain  `json:"domain"`
	Count      int64   `json:"count"`
	AvgOverall float64 `json:"avgOverall"`
	MinOverall float64 `json:"minOverall"`
	MaxOverall float64 `json:"maxOverall"`
}

// RefineJob represents a queued asynchronous refinement. The ID is an
// opaque job identifier, not a UUID.
type RefineJob struct {
	ID          string     `json:"id"`
	Status      JobStatus  `json:"status"`
	Raw         RawPrompt  `json:"raw"`
	RecordID    *uuid.UUID `json:"recordId,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
