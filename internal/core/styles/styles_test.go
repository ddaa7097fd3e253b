package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	assert.Equal(t, []string{"catppuccin", "gruvbox", "kanagawa", "onedark", "tokyo-night"}, names)

	for _, n := range names {
		_, ok := GetPalette(n)
		assert.True(t, ok, n)
	}

	_, ok := GetPalette("solarized")
	assert.False(t, ok)
}

func TestSetTheme_RebuildsColors(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("gruvbox")
	require.True(t, ok)

	SetTheme(p)
	assert.Equal(t, p, CurrentPalette)
	assert.Equal(t, p.Primary, ColorPrimary)
	assert.Equal(t, p.Error, ColorError)
}

func TestBlend(t *testing.T) {
	a := lipgloss.Color("#000000")
	b := lipgloss.Color("#ffffff")

	assert.Equal(t, lipgloss.Color("#000000"), Blend(a, b, 0))
	assert.Equal(t, lipgloss.Color("#ffffff"), Blend(a, b, 1))
	assert.Equal(t, lipgloss.Color("#ffffff"), Blend(a, b, 5), "t is clamped")
	assert.Equal(t, lipgloss.Color("12"), Blend("12", b, 0.5), "ansi colors pass through")
}

func TestGlamourStyle_UsesPalette(t *testing.T) {
	cfg := GlamourStyle()

	require.NotNil(t, cfg.H2.Color)
	assert.Equal(t, "#7aa2f7", *cfg.H2.Color)
	require.NotNil(t, cfg.Document.Color)
	assert.Equal(t, "#c0caf5", *cfg.Document.Color)
}

func TestColorHexPtr_NonHex(t *testing.T) {
	assert.Nil(t, colorHexPtr("212"))
}
