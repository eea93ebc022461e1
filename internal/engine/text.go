package engine

import (
	"regexp"
	"strings"
	"unicode"
)

// Shared text analysis helpers. All are pure and operate on plain
// strings; no rule-table access happens here.

var (
	wordRe     = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9'/.-]*`)
	sentenceRe = regexp.MustCompile(`[.!?]+\s+|\n+`)

	// Pronouns with no in-text referent when they stand alone
	ambiguousPronouns = map[string]struct{}{
		"it": {}, "this": {}, "that": {}, "they": {}, "them": {},
	}

	// Leading verbs treated as a clear primary action
	actionVerbs = map[string]struct{}{
		"create": {}, "build": {}, "write": {}, "design": {}, "implement": {},
		"generate": {}, "make": {}, "develop": {}, "analyze": {}, "explain": {},
		"summarize": {}, "translate": {}, "refactor": {}, "review": {},
		"draft": {}, "plan": {}, "compare": {}, "list": {}, "describe": {},
		"produce": {}, "define": {}, "act": {}, "state": {}, "optimize": {},
	}

	// Tokens that make an instruction concrete
	constraintTokens = map[string]struct{}{
		"must": {}, "should": {}, "exactly": {}, "minimum": {}, "maximum": {},
		"within": {}, "least": {}, "most": {}, "required": {}, "only": {},
	}
)

// tokenize splits text into lowercase word tokens
func tokenize(text string) []string {
	raw := wordRe.FindAllString(text, -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		tokens = append(tokens, strings.ToLower(strings.Trim(t, ".'-/")))
	}
	return tokens
}

// sentences splits text into trimmed, non-empty sentences
func sentences(text string) []string {
	parts := sentenceRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// hasDigit reports whether the token contains a decimal digit
func hasDigit(token string) bool {
	for _, r := range token {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// isAcronym reports whether the token is an all-caps technical term of
// at least two letters (SQL, WCAG, API)
func isAcronym(token string) bool {
	if len(token) < 2 {
		return false
	}
	for _, r := range token {
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// capitalize upper-cases the first rune of s
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// decapitalize lowers the first rune of a string
func decapitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// collapseSpaces squeezes runs of spaces and trims the result
var multiSpaceRe = regexp.MustCompile(`[ \t]{2,}`)

func collapseSpaces(s string) string {
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(s, " "))
}
