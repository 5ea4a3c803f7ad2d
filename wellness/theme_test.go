package wellness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTheme(t *testing.T) {
	tests := []struct {
		mood string
		want Theme
	}{
		{"great", ThemeJoyful},
		{"joyful", ThemeJoyful},
		{"happy", ThemeJoyful},
		{"good", ThemePeaceful},
		{"peaceful", ThemePeaceful},
		{"calm", ThemePeaceful},
		{"okay", ThemeNeutral},
		{"neutral", ThemeNeutral},
		{"difficult", ThemeStressed},
		{"stressed", ThemeStressed},
		{"angry", ThemeStressed},
		{"low", ThemeLow},
		{"sad", ThemeLow},
		{"depressed", ThemeLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveTheme(tt.mood), "mood %q", tt.mood)
	}
}

func TestResolveThemeCaseInsensitive(t *testing.T) {
	assert.Equal(t, ThemeJoyful, ResolveTheme("Great"))
	assert.Equal(t, ThemeStressed, ResolveTheme("DIFFICULT"))
	assert.Equal(t, ThemeLow, ResolveTheme("sAd"))
}

func TestResolveThemeFallsBackToNeutral(t *testing.T) {
	for _, mood := range []string{"", "ecstatic", "great ", "so-so", "😊"} {
		assert.Equal(t, ThemeNeutral, ResolveTheme(mood), "mood %q", mood)
	}
}

func TestThemePaletteComplete(t *testing.T) {
	for _, theme := range []Theme{ThemeJoyful, ThemePeaceful, ThemeNeutral, ThemeStressed, ThemeLow} {
		p := ThemePalette(theme)
		assert.NotEmpty(t, p.Primary, "%s primary", theme)
		assert.NotEmpty(t, p.Secondary, "%s secondary", theme)
		assert.NotEmpty(t, p.Background, "%s background", theme)
		assert.NotEmpty(t, p.Accent, "%s accent", theme)
		assert.NotEmpty(t, p.Foreground, "%s foreground", theme)
	}
}

func TestThemePaletteUnknownTheme(t *testing.T) {
	assert.Equal(t, ThemePalette(ThemeNeutral), ThemePalette(Theme("Unmapped")))
}
