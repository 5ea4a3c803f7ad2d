package models

import (
	"time"
)

// User is an account holder. Authentication is email + password.
type User struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100)" json:"name"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	Password  string    `gorm:"type:varchar(100)" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) GetDisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
