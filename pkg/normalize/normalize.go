package normalize

import (
	"errors"
	"io"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// graphemeJoiner is U+034F. NFC inserts it into long runs of non-starters.
const graphemeJoiner = '\u034f'

// Transformer returns a new transformer that decomposes text, drops combining
// marks and recomposes what is left.
// Transformers keep internal state, so each caller gets its own instance.
func Transformer() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.Predicate(IsMark)),
		norm.NFC,
		// Input joiners are marks and are gone by now; only NFC-inserted ones remain.
		runes.Remove(runes.Predicate(isGraphemeJoiner)),
	)
}

func isGraphemeJoiner(r rune) bool {
	return r == graphemeJoiner
}

// String returns s with every combining mark removed.
// Empty input yields an empty string and a nil error.
func String(s string) (string, error) {
	if s == "" {
		return "", nil
	}

	result, _, err := transform.String(Transformer(), s)
	if err != nil {
		return "", errors.Join(ErrNormalization, err)
	}

	return result, nil
}

// Reader wraps r so that everything read from it has combining marks removed.
func Reader(r io.Reader) io.Reader {
	return transform.NewReader(r, Transformer())
}

// IsMark reports whether r is a combining mark (categories Mn, Mc and Me).
func IsMark(r rune) bool {
	return unicode.Is(unicode.M, r)
}
