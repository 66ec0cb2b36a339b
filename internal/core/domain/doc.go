// Package domain defines the core business entities for yCard.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Node: the typed shape of a parsed value (missing, null, scalar, sequence, mapping)
//   - Document: a parsed yCard text and its typed PersonRecord view
//   - Violation / ValidationResult: the first failing structural rule
//   - LogEntry: one activity log record
//   - DiffOutcome, SaveResult, Outcome: results handed back to hosts
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
