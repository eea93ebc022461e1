// Package engine implements the domain-aware prompt refinement and
// scoring engine for PromptForge.
//
// The engine turns an unstructured natural-language prompt into a
// structured, domain-optimized instruction together with a reproducible
// four-dimensional quality score. Components:
//
//   - Classifier: maps raw text (plus an optional hint) to one domain
//     from the closed set
//   - Template selector: maps (domain, style hint) to a structural template
//   - Refiner: applies generic and domain-specific rules to produce
//     structured text
//   - Scorer: computes clarity, specificity, structure and completeness
//     sub-scores plus a weighted overall
//   - Improver: drives refiner and scorer in a bounded loop toward a
//     target score
//   - Validator: runs anti-pattern checks independent of scoring
//   - Comparator: ranks candidate prompts with deterministic tie-breaks
//
// # Determinism
//
// Every operation is a pure function of its arguments and the rule
// tables loaded at startup. Repeated calls with identical arguments
// return identical results; the improver relies on this and varies its
// pass number and validator feedback explicitly between iterations.
//
// # Thread Safety
//
// The engine holds only the read-only rule set. Arbitrarily many
// concurrent invocations are safe without locking.
package engine
