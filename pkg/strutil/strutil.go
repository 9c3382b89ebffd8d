package strutil

import (
	"strings"
	"unicode/utf8"
)

// NotFound is returned by IndexOf and LastIndexOf when there is no match.
const NotFound = -1

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// StartsWith reports whether text begins with search.
// An empty search string returns false.
func StartsWith(text, search string) bool {
	return IndexOf(text, search, 0) == 0
}

// EndsWith reports whether text ends with search.
// An empty search string returns false.
func EndsWith(text, search string) bool {
	if search == "" || len(search) > len(text) {
		return false
	}
	return LastIndexOf(text, search) == RuneLen(text)-RuneLen(search)
}

// IndexOf returns the rune index of the first occurrence of search in text
// at or after rune index from, or NotFound.
// A negative from is treated as zero. A search that is not valid UTF-8 is never found.
func IndexOf(text, search string, from int) int {
	if search == "" || !utf8.ValidString(search) {
		return NotFound
	}
	from = max(from, 0)

	offset, ok := byteOffset(text, from)
	if !ok {
		return NotFound
	}

	i := strings.Index(text[offset:], search)
	if i < 0 {
		return NotFound
	}
	return from + RuneLen(text[offset:offset+i])
}

// LastIndexOf returns the rune index of the last occurrence of search in text, or NotFound.
// A search that is not valid UTF-8 is never found.
func LastIndexOf(text, search string) int {
	if search == "" || !utf8.ValidString(search) {
		return NotFound
	}

	i := strings.LastIndex(text, search)
	if i < 0 {
		return NotFound
	}
	return RuneLen(text[:i])
}

// Substring returns up to length runes of text starting at rune index start.
// A negative start is treated as zero. A start past the end or a negative
// length yields an empty string. A length running past the end is cut at the end.
func Substring(text string, start, length int) string {
	if length <= 0 {
		return ""
	}
	start = max(start, 0)

	from, ok := byteOffset(text, start)
	if !ok {
		return ""
	}

	rest := text[from:]
	to, ok := byteOffset(rest, length)
	if !ok {
		return rest
	}
	return rest[:to]
}

// SubstringFrom returns text from rune index start to the end.
// A negative start is treated as zero; a start past the end yields an empty string.
func SubstringFrom(text string, start int) string {
	start = max(start, 0)

	from, ok := byteOffset(text, start)
	if !ok {
		return ""
	}
	return text[from:]
}

// byteOffset converts a non-negative rune index into a byte offset of s.
// The index equal to the rune count maps to len(s); anything beyond reports false.
func byteOffset(s string, runeIndex int) (int, bool) {
	if runeIndex == 0 {
		return 0, true
	}

	n := 0
	for i := range s {
		if n == runeIndex {
			return i, true
		}
		n++
	}
	if n == runeIndex {
		return len(s), true
	}
	return 0, false
}
