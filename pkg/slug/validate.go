package slug

import "strings"

// IsValid reports whether s is a well-formed slug for the given separator: non-empty,
// lowercase ASCII letters and digits only, words joined by single separators, and no
// separator at either end. The separator is compared in lowercase, as Make emits it.
func IsValid(s, separator string) bool {
	if s == "" {
		return false
	}

	if separator == "" {
		return isLowerWord(s)
	}

	for _, word := range strings.Split(s, strings.ToLower(separator)) {
		if !isLowerWord(word) {
			return false
		}
	}
	return true
}

// isLowerWord reports whether w is a non-empty run of [a-z0-9].
func isLowerWord(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
