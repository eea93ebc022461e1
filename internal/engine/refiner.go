package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/promptforge/promptforge/internal/domain"
	"github.com/promptforge/promptforge/internal/rules"
)

// Refine produces structured text from a raw prompt, a resolved domain
// and a template. Rules apply in a fixed order: generic normalization,
// generic structure, the domain overlay from the rule table, then
// template shaping.
//
// pass and findings are the improver's explicit feedback inputs: higher
// passes widen the overlay rule set, and findings from the previous
// iteration pull in targeted sections, e.g. success criteria. Output is
// deterministic in all five arguments.
func (e *Engine) Refine(raw domain.RawPrompt, d domain.Domain, t domain.Template, pass int, findings []domain.Finding) string {
	table := e.rules.ForDomain(d)

	instruction := normalizeInstruction(raw.Text)
	requirements := extractRequirements(instruction)

	var b strings.Builder

	switch {
	case t == domain.TemplateRoleBased:
		fmt.Fprintf(&b, "Act as %s %s. Respond with the judgment and rigor of a seasoned professional.\n\n", article(table.Role), table.Role)
	case !hasRoleStatement(instruction):
		fmt.Fprintf(&b, "You are %s %s.\n\n", article(table.Role), table.Role)
	}

	b.WriteString(instruction)
	b.WriteString("\n\nRequirements:\n")
	for i, req := range requirements {
		fmt.Fprintf(&b, "%d. %s\n", i+1, req)
	}

	if t == domain.TemplateChainOfThought {
		b.WriteString("\nReasoning steps:\n")
		for i, step := range reasoningSteps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	}

	for _, sec := range table.Sections {
		writeSection(&b, sec)
	}
	if pass >= 2 {
		for _, sec := range table.ExtendedSections {
			writeSection(&b, sec)
		}
		writeSection(&b, e.rules.Constraints())
	}
	if pass >= 2 || hasCategory(findings, domain.CategoryMissingCriteria) {
		writeSection(&b, e.rules.SuccessCriteria())
	}

	if t == domain.TemplateFewShot {
		writeExamples(&b, instruction, table)
	}

	return strings.TrimRight(b.String(), "\n")
}

// reasoningSteps is the fixed chain-of-thought scaffold
var reasoningSteps = []string{
	"Restate the objective in one sentence.",
	"List the inputs, constraints and unknowns.",
	"Work through the solution before writing the final answer.",
	"Verify the result against each requirement.",
}

func writeSection(b *strings.Builder, sec rules.Section) {
	fmt.Fprintf(b, "\n%s:\n- %s\n", sec.Heading, sec.Guidance)
}

// writeExamples appends 1-2 synthesized input/output pairs drawn from
// the domain vocabulary
func writeExamples(b *strings.Builder, instruction string, table *rules.DomainRules) {
	subject := strings.TrimSuffix(instruction, ".")
	b.WriteString("\nExamples:\n")
	n := 2
	if len(table.Vocabulary) < n {
		n = len(table.Vocabulary)
	}
	if n == 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		term := "the stated requirements"
		if i < len(table.Vocabulary) {
			term = table.Vocabulary[i]
		}
		fmt.Fprintf(b, "\nExample %d:\nInput: %s, with emphasis on %s.\nOutput: A complete response satisfying every requirement above.\n", i+1, subject, term)
	}
}

var (
	politePrefixes = []string{
		"please ", "kindly ", "hey ", "hi ", "hello ",
		"could you please ", "could you ", "can you please ", "can you ",
		"would you please ", "would you ", "will you ",
		"i want you to ", "i need you to ", "i would like you to ",
		"i want to ", "i need to ", "i'd like you to ", "i'd like to ",
		"help me to ", "help me ",
	}

	fillerRe = regexp.MustCompile(`(?i)\b(just|really|very|basically|actually|perhaps|maybe|kind of|sort of|pretty much)\b`)

	roleStatementRe = regexp.MustCompile(`(?i)\b(you are|act as|as a|as an)\b`)
)

// normalizeInstruction converts raw text to a single imperative
// instruction: politeness and filler stripped, first letter capitalized,
// terminal period ensured. Total over all strings; empty input yields a
// neutral instruction so downstream phases still produce structure.
func normalizeInstruction(text string) string {
	s := collapseSpaces(text)
	if s == "" {
		return "State the task to perform."
	}

	lowered := strings.ToLower(s)
	for changed := true; changed; {
		changed = false
		for _, prefix := range politePrefixes {
			if strings.HasPrefix(lowered, prefix) {
				s = s[len(prefix):]
				lowered = lowered[len(prefix):]
				changed = true
			}
		}
	}

	s = collapseSpaces(fillerRe.ReplaceAllString(s, ""))
	s = strings.TrimLeft(s, ",;: ")
	if s == "" {
		return "State the task to perform."
	}

	s = capitalize(s)
	if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "!") && !strings.HasSuffix(s, "?") {
		s += "."
	}
	return s
}

// hasRoleStatement reports whether the instruction already frames an
// audience or persona
func hasRoleStatement(instruction string) bool {
	return roleStatementRe.MatchString(instruction)
}

// extractRequirements itemizes the implicit requirements of an
// instruction: the main clause plus any "with x, y and z" enumeration.
func extractRequirements(instruction string) []string {
	body := strings.TrimSuffix(instruction, ".")

	main := body
	var items []string
	if idx := strings.Index(strings.ToLower(body), " with "); idx >= 0 {
		main = strings.TrimSpace(body[:idx])
		tail := body[idx+len(" with "):]
		for _, part := range splitList(tail) {
			items = append(items, capitalize(part))
		}
	}

	reqs := []string{capitalize(main)}
	for _, item := range items {
		reqs = append(reqs, "Include "+decapitalize(item))
	}
	return reqs
}

// splitList splits a comma/and separated enumeration into its parts
func splitList(s string) []string {
	replaced := strings.NewReplacer(", and ", ", ", " and ", ", ").Replace(s)
	parts := strings.Split(replaced, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// article returns the indefinite article for a noun phrase
func article(noun string) string {
	if noun == "" {
		return "a"
	}
	switch noun[0] {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return "an"
	}
	return "a"
}
