package engine

import (
	"strings"

	"github.com/promptforge/promptforge/internal/domain"
)

// Score computes the quality rubric for a (raw, refined, domain) triple.
// Each sub-score is an independent, named pure function; two evaluations
// of the same arguments return bit-identical scores. The scorer never
// mutates anything and is safe for unbounded concurrency.
func (e *Engine) Score(raw, refined string, d domain.Domain) domain.QualityScore {
	s := domain.QualityScore{
		Clarity:      scoreClarity(refined),
		Specificity:  e.scoreSpecificity(refined, d),
		Structure:    e.scoreStructure(refined, d),
		Completeness: e.scoreCompleteness(refined, d),
	}
	s.Overall = s.ComputeOverall()
	return s
}

// scoreClarity rates sentence-length distribution, the absence of
// ambiguous pronouns and the presence of a clear primary action verb.
func scoreClarity(refined string) float64 {
	sents := sentences(refined)
	if len(sents) == 0 {
		return 0
	}

	score := 1.0

	totalWords := 0
	longest := 0
	hasAction := false
	for _, s := range sents {
		tokens := tokenize(s)
		totalWords += len(tokens)
		if len(tokens) > longest {
			longest = len(tokens)
		}
		if len(tokens) > 0 {
			if _, ok := actionVerbs[tokens[0]]; ok {
				hasAction = true
			}
		}
	}

	if avg := float64(totalWords) / float64(len(sents)); avg > 25 {
		score -= 0.25
	}
	if longest > 40 {
		score -= 0.15
	}

	for _, tok := range tokenize(refined) {
		if _, ok := ambiguousPronouns[tok]; ok {
			score -= 0.3
			break
		}
	}

	if !hasAction {
		score -= 0.4
	}

	return domain.Clamp01(score)
}

// specificityScale converts the concrete-token ratio to a [0,1] score;
// one concrete token in two saturates the scale.
const specificityScale = 2.0

// technicalTermLen is the length at which a word counts as a technical
// term for specificity purposes. A crude proxy, but deterministic and
// language-independent: "authentication" and "provisioning" are
// concrete, "form" and "thing" are not.
const technicalTermLen = 8

// scoreSpecificity rates the ratio of concrete tokens, i.e. numbers,
// technical acronyms, long technical terms, constraint markers and
// domain vocabulary terms, to total tokens.
func (e *Engine) scoreSpecificity(refined string, d domain.Domain) float64 {
	tokens := wordRe.FindAllString(refined, -1)
	if len(tokens) == 0 {
		return 0
	}

	concrete := 0
	for _, tok := range tokens {
		lower := strings.ToLower(tok)
		switch {
		case hasDigit(tok):
			concrete++
		case isAcronym(tok):
			concrete++
		case len(tok) >= technicalTermLen:
			concrete++
		default:
			if _, ok := constraintTokens[lower]; ok {
				concrete++
			}
		}
	}

	for _, re := range e.rules.Vocabulary(d) {
		concrete += len(re.FindAllStringIndex(refined, -1))
	}

	ratio := float64(concrete) / float64(len(tokens))
	return domain.Clamp01(ratio * specificityScale)
}

// scoreStructure rates presence and relative ordering of the sections
// the active template requires. The template is inferred from the shape
// of the refined text, so stored prompts can be re-evaluated without
// carrying their template alongside.
func (e *Engine) scoreStructure(refined string, d domain.Domain) float64 {
	markers := e.requiredMarkers(refined, d)

	present := make([]int, 0, len(markers))
	lower := strings.ToLower(refined)
	for _, m := range markers {
		if i := strings.Index(lower, strings.ToLower(m)); i >= 0 {
			present = append(present, i)
		}
	}

	if len(present) == 0 {
		return 0
	}
	presentFrac := float64(len(present)) / float64(len(markers))

	orderedPairs, totalPairs := 0, 0
	for i := 1; i < len(present); i++ {
		totalPairs++
		if present[i] >= present[i-1] {
			orderedPairs++
		}
	}
	orderFrac := 1.0
	if totalPairs > 0 {
		orderFrac = float64(orderedPairs) / float64(totalPairs)
	}

	return domain.Clamp01(0.85*presentFrac + 0.15*orderFrac)
}

// requiredMarkers returns the ordered structural markers expected of the
// refined text: role statement, requirement list, template-specific
// blocks and the domain's section headings.
func (e *Engine) requiredMarkers(refined string, d domain.Domain) []string {
	table := e.rules.ForDomain(d)
	lower := strings.ToLower(refined)

	role := "you are "
	if strings.Contains(lower, "act as ") {
		role = "act as "
	}

	markers := []string{role, "requirements:"}
	if strings.Contains(lower, "reasoning steps:") {
		markers = append(markers, "reasoning steps:")
	}
	for _, sec := range table.Sections {
		markers = append(markers, sec.Heading+":")
	}
	if strings.Contains(lower, "examples:") {
		markers = append(markers, "examples:")
	}
	return markers
}

// scoreCompleteness rates the fraction of the domain's required-field
// checklist the refined text satisfies
func (e *Engine) scoreCompleteness(refined string, d domain.Domain) float64 {
	checklist := e.rules.ForDomain(d).Checklist
	if len(checklist) == 0 {
		return 0
	}

	satisfied := 0
	for i := range checklist {
		if checklist[i].Satisfied(refined) {
			satisfied++
		}
	}
	return domain.Clamp01(float64(satisfied) / float64(len(checklist)))
}
