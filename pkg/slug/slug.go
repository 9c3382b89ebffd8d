package slug

import (
	"cmp"
	"crypto/rand"
	"errors"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/textkit/pkg/normalize"
	"github.com/dmitrymomot/textkit/pkg/strutil"
)

// DefaultSeparator is placed between words when no Separator option is given.
const DefaultSeparator = "-"

// reservedSuffixLength is the random suffix length appended to reserved slugs.
const reservedSuffixLength = 6

// Option configures the slug generation behavior.
type Option func(*config)

// config holds the configuration for slug generation.
type config struct {
	separator     string
	maxLength     int
	stripChars    string
	customReplace map[string]string
	suffixLength  int
	reserved      map[string]struct{}
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		separator: DefaultSeparator,
	}
}

// Separator sets the string placed between words.
// An empty separator deletes disallowed characters instead of replacing them.
// Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// MaxLength sets the maximum length of the slug in runes.
// The slug is cut on a rune boundary and never ends with a separator.
// Zero or a negative value disables the limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = max(n, 0)
	}
}

// StripChars removes every listed character before the slug is built.
func StripChars(chars string) Option {
	return func(c *config) {
		c.stripChars = chars
	}
}

// CustomReplace sets string replacements applied before the slug is built.
// For example: {"&": "and", "@": "at"}
// Longer keys win over shorter ones that share a prefix.
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.customReplace = replacements
	}
}

// WithSuffix appends a random [a-z0-9] suffix of the given length to reduce collisions.
// Example: "hello-world-x7g3k2" (with length=6)
func WithSuffix(length int) Option {
	return func(c *config) {
		c.suffixLength = max(length, 0)
	}
}

// Reserved lists slugs that must not be produced as-is. A result matching one of
// them (case-insensitive) gets a random suffix appended.
func Reserved(words ...string) Option {
	return func(c *config) {
		if c.reserved == nil {
			c.reserved = make(map[string]struct{}, len(words))
		}
		for _, w := range words {
			if w != "" {
				c.reserved[strings.ToLower(w)] = struct{}{}
			}
		}
	}
}

// Make creates a URL-safe slug from the input string.
//
// Combining marks are stripped (é → e), every run of characters outside
// [A-Za-z0-9] becomes a single separator, repeated separators are collapsed,
// leading and trailing separators are trimmed and the result is lowercased.
// Characters without an ASCII base letter, such as CJK ideographs, act as separators.
func Make(s string, opts ...Option) (string, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if len(cfg.customReplace) > 0 {
		s = replacer(cfg.customReplace).Replace(s)
	}

	if cfg.stripChars != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(cfg.stripChars, r) {
				return -1
			}
			return r
		}, s)
	}

	normalized, err := normalize.String(s)
	if err != nil {
		return "", errors.Join(ErrBuildFailed, err)
	}

	result := replaceDisallowed(normalized, cfg.separator)
	if cfg.separator != "" {
		result = collapseSeparators(result, cfg.separator)
		result = trimSeparators(result, cfg.separator)
	}
	result = strings.ToLower(result)

	if cfg.maxLength > 0 {
		result = truncate(result, strings.ToLower(cfg.separator), cfg.maxLength)
	}

	suffixLength := cfg.suffixLength
	if suffixLength == 0 && result != "" {
		if _, ok := cfg.reserved[result]; ok {
			suffixLength = reservedSuffixLength
		}
	}
	if suffixLength > 0 {
		result = appendSuffix(result, strings.ToLower(cfg.separator), suffixLength, cfg.maxLength)
	}

	return result, nil
}

// MustMake works like Make but panics if the slug cannot be built.
func MustMake(s string, opts ...Option) string {
	result, err := Make(s, opts...)
	if err != nil {
		panic(err)
	}
	return result
}

// Slugify is shorthand for Make(s, Separator(separator)).
func Slugify(s, separator string) (string, error) {
	return Make(s, Separator(separator))
}

// isAllowed reports whether r may appear in a slug unchanged.
func isAllowed(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// replaceDisallowed replaces every maximal run of disallowed runes with one separator.
func replaceDisallowed(s, sep string) string {
	var b strings.Builder
	b.Grow(len(s))

	inRun := false
	for _, r := range s {
		if isAllowed(r) {
			b.WriteRune(r)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteString(sep)
			inRun = true
		}
	}

	return b.String()
}

// collapseSeparators reduces consecutive occurrences of sep to a single one.
func collapseSeparators(s, sep string) string {
	if !strings.Contains(s, sep+sep) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for len(s) > 0 {
		if strings.HasPrefix(s, sep) {
			b.WriteString(sep)
			for strings.HasPrefix(s, sep) {
				s = s[len(sep):]
			}
			continue
		}
		_, size := utf8.DecodeRuneInString(s)
		b.WriteString(s[:size])
		s = s[size:]
	}

	return b.String()
}

// trimSeparators removes leading and trailing occurrences of sep.
func trimSeparators(s, sep string) string {
	for strings.HasPrefix(s, sep) {
		s = s[len(sep):]
	}
	for strings.HasSuffix(s, sep) {
		s = s[:len(s)-len(sep)]
	}
	return s
}

// truncate cuts s to at most n runes. A separator split by the cut, or left
// dangling at the end, is removed.
func truncate(s, sep string, n int) string {
	if strutil.RuneLen(s) <= n {
		return s
	}

	cut := len(strutil.Substring(s, 0, n))
	if sep == "" {
		return s[:cut]
	}

	// Find the separator occurrence the cut falls into or right after.
	for i := 0; i < cut; {
		j := strings.Index(s[i:], sep)
		if j < 0 {
			break
		}
		start := i + j
		if start >= cut {
			break
		}
		if start+len(sep) >= cut {
			cut = start
			break
		}
		i = start + len(sep)
	}

	return trimSeparators(s[:cut], sep)
}

// appendSuffix joins body and a random suffix with sep, shrinking body so the
// whole result stays within maxLength runes when a limit is set.
func appendSuffix(body, sep string, length, maxLength int) string {
	if maxLength > 0 && length > maxLength {
		length = maxLength
	}
	suffix := generateSuffix(length)

	if maxLength > 0 {
		room := maxLength - strutil.RuneLen(sep) - length
		if room > 0 {
			body = truncate(body, sep, room)
		} else {
			body = ""
		}
	}

	if body == "" {
		return suffix
	}
	return body + sep + suffix
}

// generateSuffix creates a random lowercase alphanumeric suffix of the specified length.
func generateSuffix(length int) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"

	b := make([]byte, length)
	// rand.Read never returns an error as of Go 1.24.
	_, _ = rand.Read(b)

	for i := range b {
		b[i] = chars[int(b[i])%len(chars)]
	}

	return string(b)
}

// replacer builds a single-pass replacer with longer keys tried first.
func replacer(replacements map[string]string) *strings.Replacer {
	keys := slices.SortedFunc(maps.Keys(replacements), func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		if k == "" {
			continue
		}
		pairs = append(pairs, k, replacements[k])
	}

	return strings.NewReplacer(pairs...)
}
