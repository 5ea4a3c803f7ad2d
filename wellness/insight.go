package wellness

// LevelName maps a 1-10 mood score to the granulated status label shown on
// the dashboard and used as the plan regeneration key.
func LevelName(score int) string {
	switch {
	case score <= 2:
		return "Deep Recovery"
	case score <= 4:
		return "Quiet"
	case score <= 6:
		return "Steady"
	case score <= 7:
		return "Balanced"
	case score <= 9:
		return "Active"
	default:
		return "Peak"
	}
}

// Insight is the mood-dependent advice and recommended tool for a level.
type Insight struct {
	Advice     string `json:"advice"`
	ToolTitle  string `json:"toolTitle"`
	ToolDesc   string `json:"toolDesc"`
	ButtonText string `json:"buttonText"`
	Link       string `json:"link"`
}

// InsightFor returns the insight configuration for a level name. Unknown
// levels get the Balanced defaults.
func InsightFor(levelName string) Insight {
	switch levelName {
	case "Deep Recovery":
		return Insight{
			Advice:     "Peace above everything. Take a total reset day.",
			ToolTitle:  "Breathing Session",
			ToolDesc:   "Gentle 4-7-8 breathing to calm your system.",
			ButtonText: "Start Breathing",
			Link:       "/breathing",
		}
	case "Quiet":
		return Insight{
			Advice:     "Low power mode is okay. Slow gestures only.",
			ToolTitle:  "Breathing Session",
			ToolDesc:   "Lower your stress with a quick break.",
			ButtonText: "Start Breathing",
			Link:       "/breathing",
		}
	case "Steady":
		return Insight{
			Advice:     "Found your rhythm. Keep the pace consistent.",
			ToolTitle:  "Focus Journal",
			ToolDesc:   "Document your steady progress.",
			ButtonText: "Open Journal",
			Link:       "/journal",
		}
	case "Active":
		return Insight{
			Advice:     "Energy is rising. Time for some dynamic work.",
			ToolTitle:  "Mind Game",
			ToolDesc:   "Sharpen your focus while energy is high.",
			ButtonText: "Play Now",
			Link:       "/mindgame",
		}
	case "Peak":
		return Insight{
			Advice:     "You're in flow! Make the most of this energy.",
			ToolTitle:  "Mind Game",
			ToolDesc:   "Test your peak focus and agility.",
			ButtonText: "Play Now",
			Link:       "/mindgame",
		}
	default:
		return Insight{
			Advice:     "Trust the process. You're doing great.",
			ToolTitle:  "Gratitude Journal",
			ToolDesc:   "Focus on the small wins of today.",
			ButtonText: "Open Journal",
			Link:       "/journal",
		}
	}
}
