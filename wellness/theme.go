package wellness

import "strings"

// Theme is the visual mood theme applied across the app.
type Theme string

const (
	ThemeJoyful   Theme = "Joyful"
	ThemePeaceful Theme = "Peaceful"
	ThemeNeutral  Theme = "Neutral"
	ThemeStressed Theme = "Stressed"
	ThemeLow      Theme = "Low"
)

// Palette holds the HSL color tokens for a theme.
type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Accent     string `json:"accent"`
	Foreground string `json:"foreground"`
}

var palettes = map[Theme]Palette{
	ThemeJoyful: {
		Primary:    "45 100% 50%",
		Secondary:  "40 100% 45%",
		Background: "45 100% 98%",
		Accent:     "45 100% 94%",
		Foreground: "25 50% 20%",
	},
	ThemePeaceful: {
		Primary:    "158 35% 45%",
		Secondary:  "165 35% 40%",
		Background: "165 100% 98%",
		Accent:     "165 84% 94%",
		Foreground: "165 50% 20%",
	},
	ThemeNeutral: {
		Primary:    "196 100% 46%",
		Secondary:  "175 84% 38%",
		Background: "190 100% 98%",
		Accent:     "175 84% 94%",
		Foreground: "200 50% 20%",
	},
	ThemeStressed: {
		Primary:    "10 80% 60%",
		Secondary:  "0 70% 50%",
		Background: "10 100% 98%",
		Accent:     "10 80% 94%",
		Foreground: "0 50% 20%",
	},
	ThemeLow: {
		Primary:    "245 60% 65%",
		Secondary:  "260 60% 60%",
		Background: "245 100% 99%",
		Accent:     "245 60% 94%",
		Foreground: "245 40% 30%",
	},
}

// ResolveTheme maps a mood label to its theme. The match is case-insensitive
// and exact; anything outside the table resolves to Neutral.
func ResolveTheme(moodLabel string) Theme {
	switch strings.ToLower(moodLabel) {
	case "great", "joyful", "happy":
		return ThemeJoyful
	case "good", "peaceful", "calm":
		return ThemePeaceful
	case "okay", "neutral":
		return ThemeNeutral
	case "difficult", "stressed", "angry":
		return ThemeStressed
	case "low", "sad", "depressed":
		return ThemeLow
	default:
		return ThemeNeutral
	}
}

// ThemePalette returns the color tokens for a theme. Unknown themes get the
// Neutral palette.
func ThemePalette(t Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[ThemeNeutral]
}
