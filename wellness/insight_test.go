package wellness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelName(t *testing.T) {
	for score, want := range map[int]string{
		1:  "Deep Recovery",
		2:  "Deep Recovery",
		3:  "Quiet",
		4:  "Quiet",
		5:  "Steady",
		6:  "Steady",
		7:  "Balanced",
		8:  "Active",
		9:  "Active",
		10: "Peak",
	} {
		assert.Equal(t, want, LevelName(score), "score %d", score)
	}
}

func TestInsightForRecommendsTools(t *testing.T) {
	assert.Equal(t, "/breathing", InsightFor("Deep Recovery").Link)
	assert.Equal(t, "/breathing", InsightFor("Quiet").Link)
	assert.Equal(t, "/journal", InsightFor("Steady").Link)
	assert.Equal(t, "/journal", InsightFor("Balanced").Link)
	assert.Equal(t, "/mindgame", InsightFor("Active").Link)
	assert.Equal(t, "/mindgame", InsightFor("Peak").Link)
}

func TestInsightForUnknownLevelUsesDefaults(t *testing.T) {
	got := InsightFor("Sideways")
	assert.Equal(t, "Gratitude Journal", got.ToolTitle)
	assert.Equal(t, "/journal", got.Link)
}
