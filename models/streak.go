package models

// Streak is the persisted engagement counter, one row per user.
type Streak struct {
	UserID   string `gorm:"type:varchar(50);primaryKey" json:"userId"`
	Count    int    `gorm:"default:0" json:"count"`
	LastDate string `gorm:"type:varchar(20)" json:"lastDate"`
}

func (Streak) TableName() string {
	return "streaks"
}
