package models

import "time"

// Sentiment is the classifier-derived triple attached to a journal entry.
type Sentiment struct {
	Score    float64 `json:"score"`
	Label    string  `json:"label"`
	Analysis string  `json:"analysis"`
}

// JournalEntry is one journal record, owned by a single user.
type JournalEntry struct {
	ID                string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID            string    `gorm:"type:varchar(50);index" json:"userId"`
	Date              time.Time `json:"date"`
	Mood              string    `gorm:"type:varchar(50)" json:"mood"`
	Content           string    `gorm:"type:text" json:"content"`
	Tags              []string  `gorm:"serializer:json" json:"tags"`
	SentimentScore    float64   `json:"-"`
	SentimentLabel    string    `gorm:"type:varchar(50)" json:"-"`
	SentimentAnalysis string    `gorm:"type:text" json:"-"`
	CreatedAt         time.Time `json:"createdAt"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}

// Sentiment reassembles the embedded sentiment columns.
func (e *JournalEntry) Sentiment() Sentiment {
	return Sentiment{
		Score:    e.SentimentScore,
		Label:    e.SentimentLabel,
		Analysis: e.SentimentAnalysis,
	}
}

// SetSentiment stores the triple into the entry columns.
func (e *JournalEntry) SetSentiment(s Sentiment) {
	e.SentimentScore = s.Score
	e.SentimentLabel = s.Label
	e.SentimentAnalysis = s.Analysis
}
