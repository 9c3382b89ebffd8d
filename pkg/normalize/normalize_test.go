package normalize_test

import (
	"io"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/normalize"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "plain ascii", input: "Hello World", expected: "Hello World"},
		{name: "uppercase accents", input: "ÉÀÈTESTÂÄÔÖ", expected: "EAETESTAAOO"},
		{name: "baltic accents", input: "āčēģīķļņūö", expected: "acegiklnuo"},
		{name: "french", input: "Crème Brûlée", expected: "Creme Brulee"},
		{name: "polish", input: "Zażółć gęślą", expected: "Zazołc gesla"},
		{name: "already decomposed", input: "e\u0301le\u0300ve", expected: "eleve"},
		{name: "enclosing mark", input: "a\u20dd", expected: "a"},
		{name: "lone combining mark", input: "\u0301", expected: ""},
		{name: "cjk passes through", input: "中文測試", expected: "中文測試"},
		{name: "hangul recomposes", input: "한국어", expected: "한국어"},
		{name: "punctuation passes through", input: "?;::++!!", expected: "?;::++!!"},
		{name: "whitespace kept", input: " a\tb\nc ", expected: " a\tb\nc "},
		{name: "emoji kept", input: "hi 😀", expected: "hi 😀"},
		{name: "angstrom sign", input: "\u212b", expected: "A"},
		{name: "grapheme joiner removed", input: "a\u034fb", expected: "ab"},
		{name: "long vowel jamo run", input: strings.Repeat("\u1161", 40), expected: strings.Repeat("\u1161", 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := normalize.String(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestStringNeverGrows(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"ÉÀÈTESTÂÄÔÖ",
		"āčēģīķļņūö",
		"한국어 텍스트",
		"Ǆemal ǅ ǆ",
		"ﬁ ﬂ ﬃ",
		"Ω Å K",
		"क़ ख़ ग़",
		"ἀἁἂἃ ᾀᾁ",
		strings.Repeat("\u1161", 40),
		strings.Repeat("a\u0301\u1161", 20),
	}

	for _, in := range inputs {
		out, err := normalize.String(in)
		require.NoError(t, err)
		assert.LessOrEqual(t, utf8.RuneCountInString(out), utf8.RuneCountInString(in), in)
	}
}

func TestStringNoInsertedJoiner(t *testing.T) {
	t.Parallel()

	inputs := []string{
		strings.Repeat("\u1161", 31),
		strings.Repeat("\u1161", 100),
		"x" + strings.Repeat("\u0301", 50) + strings.Repeat("\u1162", 35),
	}

	for _, in := range inputs {
		out, err := normalize.String(in)
		require.NoError(t, err)
		assert.NotContains(t, out, "\u034f")

		streamed, err := io.ReadAll(normalize.Reader(strings.NewReader(in)))
		require.NoError(t, err)
		assert.Equal(t, out, string(streamed))
	}
}

func TestReader(t *testing.T) {
	t.Parallel()

	r := normalize.Reader(strings.NewReader("Ça va très bien"))
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Ca va tres bien", string(out))
}

func TestIsMark(t *testing.T) {
	t.Parallel()

	assert.True(t, normalize.IsMark('\u0301')) // combining acute, Mn
	assert.True(t, normalize.IsMark('\u0903')) // devanagari visarga, Mc
	assert.True(t, normalize.IsMark('\u20dd')) // enclosing circle, Me
	assert.False(t, normalize.IsMark('a'))
	assert.False(t, normalize.IsMark('é'))
	assert.False(t, normalize.IsMark('中'))
}

func TestStringConcurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				out, err := normalize.String("Château façade élève")
				assert.NoError(t, err)
				assert.Equal(t, "Chateau facade eleve", out)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkString(b *testing.B) {
	input := "Ñoño español año château façade über größe"

	b.ReportAllocs()
	for b.Loop() {
		_, _ = normalize.String(input)
	}
}
