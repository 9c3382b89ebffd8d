// Package normalize strips combining marks from Unicode text.
//
// Text is decomposed canonically (NFD) so that accented letters split into a base
// letter followed by one or more combining marks. The marks are removed and the
// remainder is recomposed (NFC). Runes without a canonical decomposition, such as
// CJK ideographs, emoji or punctuation, pass through unchanged.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/textkit/pkg/normalize"
//
//	s, err := normalize.String("Crème Brûlée")
//	// s == "Creme Brulee"
//
// Streaming usage:
//
//	r := normalize.Reader(file)
//	// reads from r yield mark-free text
//
// The output never contains more runes than the input.
package normalize
