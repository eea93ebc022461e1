package domain

// Sub-score weights for the overall quality score. Domain-independent,
// must sum to 1.
const (
	WeightClarity      = 0.25
	WeightSpecificity  = 0.25
	WeightStructure    = 0.25
	WeightCompleteness = 0.25
)

// QualityScore is the four-dimensional quality rubric for a refined
// prompt. Every sub-score and the overall lie in [0,1].
type QualityScore struct {
	Clarity      float64 `json:"clarity"`
	Specificity  float64 `json:"specificity"`
	Structure    float64 `json:"structure"`
	Completeness float64 `json:"completeness"`
	Overall      float64 `json:"overall"`
}

// ComputeOverall returns the weighted combination of the four sub-scores,
// clamped to [0,1]. It is a pure function of the sub-scores.
func (s QualityScore) ComputeOverall() float64 {
	overall := s.Clarity*WeightClarity +
		s.Specificity*WeightSpecificity +
		s.Structure*WeightStructure +
		s.Completeness*WeightCompleteness
	return Clamp01(overall)
}

// InRange checks that every sub-score and the overall are within [0,1]
func (s QualityScore) InRange() bool {
	for _, v := range []float64{s.Clarity, s.Specificity, s.Structure, s.Completeness, s.Overall} {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// Clamp01 clamps v to the [0,1] interval
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
