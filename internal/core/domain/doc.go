// Package domain defines the core business entities for docspace.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A short text document held in the workspace
//   - Table: The full document set as one snapshot
//   - Candidate: An import batch item with an optional client-supplied ID
//   - ScoreResult: A ranked retrieval hit with its snippet
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
