package models

import "time"

// UserProfile is the onboarding record consumed read-only by plan
// generation. All fields are optional; defaults are applied at read time.
type UserProfile struct {
	UserID        string    `gorm:"type:varchar(50);primaryKey" json:"userId"`
	Nickname      string    `gorm:"type:varchar(100)" json:"nickname"`
	Role          string    `gorm:"type:varchar(50)" json:"role"`     // Student, Professional, Caregiver, Exploring
	AgeGroup      string    `gorm:"type:varchar(20)" json:"ageGroup"`
	Challenges    []string  `gorm:"serializer:json" json:"challenges"`
	Motivation    string    `gorm:"type:varchar(50)" json:"motivation"`
	Commitment    string    `gorm:"type:varchar(50)" json:"commitment"`
	Notifications string    `gorm:"type:varchar(20);default:moderate" json:"notifications"`
	MorningPerson bool      `gorm:"default:true" json:"morningPerson"`
	Relaxation    string    `gorm:"type:varchar(50)" json:"relaxation"`
	LastModified  time.Time `json:"lastModified"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// RoleOrDefault falls back to "Friend" when no role was chosen.
func (p *UserProfile) RoleOrDefault() string {
	if p.Role != "" {
		return p.Role
	}
	return "Friend"
}

// NicknameOr falls back to the given display name, then "Friend".
func (p *UserProfile) NicknameOr(fallback string) string {
	if p.Nickname != "" {
		return p.Nickname
	}
	if fallback != "" {
		return fallback
	}
	return "Friend"
}
