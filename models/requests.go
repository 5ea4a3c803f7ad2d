package models

import (
	"fmt"
	"time"

	"github.com/sarthak-bhuptani/MindCare/wellness"
)

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateJournalRequest submits a new journal entry.
type CreateJournalRequest struct {
	Date    *time.Time `json:"date"`
	Mood    string     `json:"mood" binding:"required"` // Great, Good, Okay, Low, Difficult
	Content string     `json:"content" binding:"required"`
	Tags    []string   `json:"tags"`
}

// UpdateJournalRequest edits entry content only.
type UpdateJournalRequest struct {
	Content string `json:"content" binding:"required"`
}

// CheckInRequest records the daily mood check-in.
type CheckInRequest struct {
	MoodScore int    `json:"moodScore" binding:"required,min=1,max=10"`
	Mood      string `json:"mood"` // optional label, drives the theme re-skin
	Note      string `json:"note"`
}

// UpdatePlanRequest replaces the persisted plan's task list in place.
type UpdatePlanRequest struct {
	Tasks []wellness.Task `json:"tasks" binding:"required"`
}

// Validate rejects duplicate task ids and empty descriptions. A zero id
// means "assign one for me" and is exempt from the duplicate check.
func (r *UpdatePlanRequest) Validate() error {
	seen := make(map[int]bool)
	for _, task := range r.Tasks {
		if task.Task == "" {
			return fmt.Errorf("task %d has an empty description", task.ID)
		}
		if task.ID == 0 {
			continue
		}
		if seen[task.ID] {
			return fmt.Errorf("duplicate task id %d", task.ID)
		}
		seen[task.ID] = true
	}
	return nil
}

// UpdateProfileRequest saves the onboarding answers.
type UpdateProfileRequest struct {
	Nickname      string   `json:"nickname"`
	Role          string   `json:"role"`
	AgeGroup      string   `json:"ageGroup"`
	Challenges    []string `json:"challenges"`
	Motivation    string   `json:"motivation"`
	Commitment    string   `json:"commitment"`
	Notifications string   `json:"notifications"`
	MorningPerson bool     `json:"morningPerson"`
	Relaxation    string   `json:"relaxation"`
}

// ChatMessage is one turn of a conversation transcript.
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

// ChatRequest forwards a full transcript to the completion service.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1,dive"`
}
