// Package textkit groups small, dependency-light packages for turning
// arbitrary Unicode text into safe identifiers.
//
// Packages:
//
//   - pkg/normalize: strips combining marks (é → e) via canonical decomposition
//   - pkg/slug: builds URL-safe slugs with configurable separators and limits
//   - pkg/strutil: rune-indexed search and substring helpers
//   - pkg/config: environment and .env configuration loading
//   - pkg/logger: slog logger factory
//
// The cmd/slugify command exposes the slug builder on the command line.
//
// Basic Usage:
//
//	s, err := slug.Make("ÉÀÈ test ÂÄÔÖ")
//	// s == "eae-test-aaoo"
//
//	i := strutil.IndexOf("abcabc", "b", 0)
//	// i == 1
package textkit
