package models

import (
	"time"

	"github.com/sarthak-bhuptani/MindCare/wellness"
)

// DailyPlanRecord is the persisted daily plan, one row per user. A plan is
// regenerated only when the stored date or mood level no longer matches;
// otherwise it is returned verbatim so task completions survive reloads.
type DailyPlanRecord struct {
	UserID       string          `gorm:"type:varchar(50);primaryKey" json:"userId"`
	Date         string          `gorm:"type:varchar(20)" json:"date"`
	Mood         string          `gorm:"type:varchar(30)" json:"mood"`
	Tasks        []wellness.Task `gorm:"serializer:json" json:"tasks"`
	LastModified time.Time       `json:"lastModified"`
}

func (DailyPlanRecord) TableName() string {
	return "daily_plans"
}
