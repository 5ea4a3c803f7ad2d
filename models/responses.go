package models

import (
	"time"

	"github.com/sarthak-bhuptani/MindCare/wellness"
)

// UserResponse is the public user shape.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// JournalEntryResponse is a journal entry with its sentiment reassembled.
type JournalEntryResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Date      time.Time `json:"date"`
	Mood      string    `json:"mood"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Sentiment Sentiment `json:"sentiment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToResponse converts a stored entry to its API shape.
func (e *JournalEntry) ToResponse() JournalEntryResponse {
	return JournalEntryResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		Date:      e.Date,
		Mood:      e.Mood,
		Content:   e.Content,
		Tags:      e.Tags,
		Sentiment: e.Sentiment(),
		CreatedAt: e.CreatedAt,
	}
}

// Recommendation is the suggested tool card on the dashboard.
type Recommendation struct {
	Title      string `json:"title"`
	Desc       string `json:"desc"`
	Link       string `json:"link"`
	ButtonText string `json:"buttonText"`
}

// DashboardResponse is the composed view-model for the dashboard.
type DashboardResponse struct {
	Greeting       string           `json:"greeting"`
	Nickname       string           `json:"nickname"`
	Role           string           `json:"role"`
	Mood           string           `json:"mood"`
	Score          int              `json:"score"`
	Streak         int              `json:"streak"`
	Advice         string           `json:"advice"`
	Theme          wellness.Theme   `json:"theme"`
	Palette        wellness.Palette `json:"palette"`
	Recommendation Recommendation   `json:"recommendation"`
	Plan           []wellness.Task  `json:"plan"`
}

// CheckInSession is the per-day check-in state kept in Redis.
type CheckInSession struct {
	MoodScore  int       `json:"moodScore"`
	Note       string    `json:"note,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}
