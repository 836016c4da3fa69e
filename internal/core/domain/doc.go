// Package domain defines the core business entities for Collegedex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Entity: A college or course record from the directory
//   - MatchResult: The outcome of a fuzzy match between query and field
//   - Suggestion: A ranked search suggestion
//   - FilterSelection: The active filter dimensions with cascade rules
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
