package wellness

import (
	"math/rand"
	"time"
)

// TaskStatus tracks completion of a single plan task.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

// Task is one scheduled item on the daily wellness plan.
type Task struct {
	ID     int        `json:"id"`
	Task   string     `json:"task"`
	Time   string     `json:"time"`
	Status TaskStatus `json:"status"`
}

// Mood bands derived from a 1-10 mood score.
const (
	BandLow      = "low"
	BandBalanced = "balanced"
	BandHigh     = "high"
)

// Band classifies a mood score into low (<=4), balanced (5-7) or high (>=8).
func Band(score int) string {
	switch {
	case score >= 8:
		return BandHigh
	case score <= 4:
		return BandLow
	default:
		return BandBalanced
	}
}

var morningPools = map[string][]string{
	BandLow:      {"Slow Stretching", "Hydration + Lemon", "Morning Light (2m)"},
	BandBalanced: {"Mindful Coffee", "Goal Alignment", "10m Reading"},
	BandHigh:     {"Power Workout", "Cold Exposure", "Strategy Planning"},
}

var focusPools = map[string][]string{
	"Student":      {"Active Recall Session", "Note Synthesis", "Flashcard Review"},
	"Professional": {"Priority Matrix Build", "Deep Work Sprint", "Client Sync Prep"},
	"Caregiver":    {"Empathy Practice", "Needs Assessment", "Organization Buffer"},
	"Exploring":    {"Creative Brainstorm", "Market Research", "Skill Tutorial"},
}

var eveningPools = map[string][]string{
	BandLow:      {"Cozy Reading", "Warm Bath", "Phone-free Zone"},
	BandBalanced: {"Progress Log", "Tomorrow's Prep", "Light Stretching"},
	BandHigh:     {"Network Outreach", "Future Planning", "Skill Mastery"},
}

// GeneratePlan builds a daily plan of four fixed slots, with extra tasks for
// specific challenge tags. Selection is randomized on every call so the same
// inputs can yield different task text. Pass a nil rng to use an unseeded
// source; tests inject a seeded one.
func GeneratePlan(moodScore int, challenges []string, role string, rng *rand.Rand) []Task {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	band := Band(moodScore)
	pick := func(pool []string) string {
		return pool[rng.Intn(len(pool))]
	}

	focusPool := focusPools[role]
	if len(focusPool) == 0 {
		focusPool = []string{"Main Task"}
	}

	midday := "Peak Performance: Bonus Challenge"
	if band == BandLow {
		midday = "Battery Re-charge: 10m Nap"
	}

	plan := []Task{
		{ID: 1, Task: "Morning: " + pick(morningPools[band]), Time: "08:30 AM", Status: TaskPending},
		{ID: 2, Task: "Focus: " + pick(focusPool), Time: "11:00 AM", Status: TaskPending},
		{ID: 3, Task: midday, Time: "03:30 PM", Status: TaskPending},
		{ID: 4, Task: "Downtime: " + pick(eveningPools[band]), Time: "09:00 PM", Status: TaskPending},
	}

	if containsTag(challenges, "Anxiety") {
		rescue := Task{ID: 5, Task: "Anxiety Rescue: 4-4-4 Breathing", Time: "As Needed", Status: TaskPending}
		plan = append(plan[:2], append([]Task{rescue}, plan[2:]...)...)
	}
	if containsTag(challenges, "Sleep") {
		plan = append(plan, Task{ID: 6, Task: "Sleep Optimization: Relaxing Soak", Time: "10:00 PM", Status: TaskPending})
	}

	return plan
}

// NextTaskID returns an id one past the highest id in the plan.
func NextTaskID(plan []Task) int {
	max := 0
	for _, t := range plan {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
