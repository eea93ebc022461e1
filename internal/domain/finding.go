package domain

// Finding is a single anti-pattern detection emitted by the validator.
// A refinement run produces zero or more findings, independent of the
// quality score.
type Finding struct {
	Severity Severity        `json:"severity"`
	Category FindingCategory `json:"category"`
	Message  string          `json:"message"`
}

// RankedVariant is one entry of a comparison result
type RankedVariant struct {
	Index       int          `json:"index"`
	RawText     string       `json:"rawText"`
	RefinedText string       `json:"refinedText"`
	Domain      Domain       `json:"domain"`
	Score       QualityScore `json:"score"`
	Rank        int          `json:"rank"`
	Winner      bool         `json:"winner"`
}

// ComparisonResult is the ordered ranking of prompt variants by overall
// score. The first entry is the winner; exact ties resolve to the lowest
// original index.
type ComparisonResult struct {
	Variants []RankedVariant `json:"variants"`
	Winner   RankedVariant   `json:"winner"`
}
