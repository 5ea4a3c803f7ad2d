package repositories

import (
	"context"
	"errors"

	"github.com/sarthak-bhuptani/MindCare/models"
	"github.com/sarthak-bhuptani/MindCare/wellness"
)

// ErrNotFound is returned when a per-user record does not exist yet.
var ErrNotFound = errors.New("record not found")

// PlanRepository stores one daily plan per user.
type PlanRepository interface {
	Get(ctx context.Context, userID string) (*models.DailyPlanRecord, error)
	Save(ctx context.Context, rec *models.DailyPlanRecord) error
}

// StreakRepository stores the engagement counter per user.
type StreakRepository interface {
	Get(ctx context.Context, userID string) (wellness.StreakRecord, error)
	Save(ctx context.Context, userID string, rec wellness.StreakRecord) error
}

// ProfileRepository stores the onboarding profile per user.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*models.UserProfile, error)
	Save(ctx context.Context, profile *models.UserProfile) error
}

// SessionStore keeps the current check-in state per user.
type SessionStore interface {
	Get(ctx context.Context, userID string) (*models.CheckInSession, error)
	Save(ctx context.Context, userID string, session *models.CheckInSession) error
}

// ThemeStore keeps the persisted mood theme per user.
type ThemeStore interface {
	Get(ctx context.Context, userID string) (wellness.Theme, error)
	Save(ctx context.Context, userID string, theme wellness.Theme) error
}
