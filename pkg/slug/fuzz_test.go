package slug_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/textkit/pkg/slug"
)

func FuzzMake(f *testing.F) {
	for _, seed := range []string{
		"abc-1-2-3",
		"ÉÀÈTESTÂÄÔÖ",
		"?;::test++-__!!",
		"chinese 中文測試 text",
		" test   \n tip   \t top ",
		"----test------",
		"",
		"\xff\xfe",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, in string) {
		out, err := slug.Make(in)
		if err != nil {
			t.Fatalf("Make(%q): %v", in, err)
		}

		for _, r := range out {
			if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '-' {
				t.Fatalf("Make(%q) = %q: unexpected rune %q", in, out, r)
			}
		}
		if strings.Contains(out, "--") || strings.HasPrefix(out, "-") || strings.HasSuffix(out, "-") {
			t.Fatalf("Make(%q) = %q: malformed separators", in, out)
		}

		again, err := slug.Make(out)
		if err != nil || again != out {
			t.Fatalf("Make is not idempotent: %q -> %q -> %q (%v)", in, out, again, err)
		}

		bare, err := slug.Make(in, slug.Separator(""))
		if err != nil {
			t.Fatalf("Make(%q, empty separator): %v", in, err)
		}
		if bare != strings.ReplaceAll(out, "-", "") {
			t.Fatalf("empty separator result %q does not match %q without separators", bare, out)
		}
	})
}
