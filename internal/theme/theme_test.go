package theme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galleria-app/galleria/internal/theme"
)

func TestAll(t *testing.T) {
	themes := theme.All()
	require.Len(t, themes, 3)

	slugs := make(map[string]bool)
	for _, th := range themes {
		assert.NotEmpty(t, th.Name)
		assert.NotEmpty(t, th.Palette.Primary)
		assert.NotEmpty(t, th.DeletePrompt)
		slugs[th.Slug] = true
	}
	assert.True(t, slugs[theme.DefaultSlug])
}

func TestBySlug(t *testing.T) {
	waifu, ok := theme.BySlug("waifu")
	require.True(t, ok)
	assert.Equal(t, "Waifu Gallery", waifu.Name)

	_, ok = theme.BySlug("cyberpunk")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	themes := theme.All()
	themes[0].Name = "mutated"

	fresh, ok := theme.BySlug(themes[0].Slug)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", fresh.Name)
}
