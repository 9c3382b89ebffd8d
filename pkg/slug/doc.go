// Package slug turns arbitrary Unicode text into URL-safe slugs.
//
// A slug is made of lowercase ASCII letters and digits joined by a separator,
// which makes it usable in URL paths, file names and identifiers. Accented
// letters keep their base letter, everything else becomes a separator.
//
// # Usage
//
//	import "github.com/dmitrymomot/textkit/pkg/slug"
//
//	s, err := slug.Make("Hello World!")
//	// s == "hello-world"
//
//	s, err = slug.Make("ÉÀÈTESTÂÄÔÖ")
//	// s == "eaetestaaoo"
//
//	s, err = slug.Make("chinese 中文測試 text")
//	// s == "chinese-text"
//
//	s, err = slug.Make("abc-1-2-3", slug.Separator(""))
//	// s == "abc123"
//
// # Pipeline
//
// Make processes the whole string in order:
//
//  1. Combining marks are stripped (see package normalize).
//  2. Each maximal run of characters outside [A-Za-z0-9] becomes one separator.
//  3. With a non-empty separator, repeated separators are collapsed and leading
//     or trailing ones are trimmed.
//  4. The result is lowercased.
//
// The separator is inserted literally and never interpreted as a pattern, so any
// string works, including ".*" or "+". A separator made of letters or digits
// cannot be told apart from content afterwards and takes part in collapsing.
//
// # Configuration Options
//
//   - Separator: string placed between words (default: "-", empty deletes)
//   - MaxLength: maximum slug length in runes, cut without dangling separators
//   - StripChars: characters removed before processing
//   - CustomReplace: replacements applied before processing
//   - WithSuffix: random [a-z0-9] suffix to reduce collisions
//   - Reserved: slugs that get a random suffix instead of being returned as-is
//
// Without WithSuffix or Reserved, Make is deterministic and idempotent:
// Make(Make(s)) == Make(s).
//
// # Validation
//
//	slug.IsValid("hello-world", "-") // true
//	slug.IsValid("Hello--World", "-") // false
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The random suffix
// generation uses crypto/rand.
package slug
