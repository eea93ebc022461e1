package engine

import "github.com/promptforge/promptforge/internal/domain"

// SelectTemplate resolves the structural template for a domain. An
// explicit style hint overrides the domain default when it unambiguously
// matches a template identifier or a known synonym; anything else falls
// back to the default. Pure lookup, no side effects.
func (e *Engine) SelectTemplate(d domain.Domain, styleHint string) domain.Template {
	if t, ok := e.rules.StyleTemplate(styleHint); ok {
		return t
	}
	return e.rules.ForDomain(d).DefaultTemplate
}
