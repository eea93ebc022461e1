// Package domain contains the core business entities and types for PromptForge.
//
// This package defines:
//   - Value objects produced by the refinement engine (RefinedPrompt, QualityScore, Finding)
//   - Closed enumerations (Domain, Template, Severity)
//   - Input/output types for service operations
//   - Persistence-facing record and filter types
//
// # Design Philosophy
//
// Domain types are persistence-agnostic and represent the core
// business concepts independent of how they are stored or transmitted.
// Engine outputs are value objects: created fresh per request and never
// mutated afterwards. The Domain and Template enumerations are closed at
// build time; extending them means shipping new rule tables, never a
// runtime mutation.
//
// # Naming Conventions
//
// Types ending in "Input" are used for create/update operations.
// Types ending in "Filter" are used for query operations.
package domain
