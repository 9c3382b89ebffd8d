package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/config"
)

func TestLoadReplacements(t *testing.T) {
	t.Parallel()

	t.Run("reads yaml mapping", func(t *testing.T) {
		t.Parallel()

		table, err := config.LoadReplacements("testdata/replacements.yaml")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"&": "and",
			"@": "at",
			"ß": "ss",
			"+": "plus",
		}, table)
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		table, err := config.LoadReplacements("")
		require.NoError(t, err)
		assert.Nil(t, table)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadReplacements("testdata/missing.yaml")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrReadingReplacements)
	})

	t.Run("not a mapping", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadReplacements("testdata/invalid.yaml")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrReadingReplacements)
	})
}
