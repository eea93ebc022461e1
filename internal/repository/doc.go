// Package repository contains data access implementations for PromptForge.
//
// Repositories provide persistence operations for domain entities,
// abstracting the underlying data stores (PostgreSQL, Redis).
//
// # Architecture
//
// Repository interfaces are defined at the service layer (consumer-defined
// interfaces) following Go's dependency inversion best practices.
// This package contains the concrete implementations.
//
// # Data Stores
//
// The system uses two specialized data stores:
//   - PostgreSQL: The prompt library (stored refinement runs, tags, stats)
//   - Redis: Refinement result cache and async job state
//
// # Thread Safety
//
// All repository implementations are safe for concurrent use.
// Connection pools are managed at the database layer.
package repository
