package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sarthak-bhuptani/MindCare/config"
	"github.com/sarthak-bhuptani/MindCare/models"
	"github.com/sarthak-bhuptani/MindCare/repositories"
	"github.com/sarthak-bhuptani/MindCare/wellness"
)

const defaultMoodScore = 5

// DashboardService composes the dashboard view-model from the injected
// per-user stores: check-in session, profile, plan, streak and theme.
type DashboardService struct {
	plans    repositories.PlanRepository
	streaks  repositories.StreakRepository
	profiles repositories.ProfileRepository
	sessions repositories.SessionStore
	themes   repositories.ThemeStore

	rng *rand.Rand
	now func() time.Time
}

func NewDashboardService(
	plans repositories.PlanRepository,
	streaks repositories.StreakRepository,
	profiles repositories.ProfileRepository,
	sessions repositories.SessionStore,
	themes repositories.ThemeStore,
) *DashboardService {
	return &DashboardService{
		plans:    plans,
		streaks:  streaks,
		profiles: profiles,
		sessions: sessions,
		themes:   themes,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// Compose builds the full dashboard for a user. displayName is the account
// name used when the profile has no nickname.
//
// Concurrent loads for the same user can both read the streak before either
// write lands; within a single calendar day the bump is idempotent, so the
// count cannot run ahead by more than the unsynchronized reload itself.
func (s *DashboardService) Compose(ctx context.Context, userID, displayName string) (*models.DashboardResponse, error) {
	now := s.now()
	profile := s.loadProfile(ctx, userID)
	score := s.loadMoodScore(ctx, userID)

	level := wellness.LevelName(score)
	insight := wellness.InsightFor(level)

	plan, err := s.currentPlan(ctx, userID, score, level, profile)
	if err != nil {
		return nil, err
	}

	streak := s.bumpStreak(ctx, userID, now)
	theme := s.currentTheme(ctx, userID)

	return &models.DashboardResponse{
		Greeting: greeting(now.Hour()),
		Nickname: profile.NicknameOr(displayName),
		Role:     profile.Role,
		Mood:     level,
		Score:    score,
		Streak:   streak,
		Advice:   insight.Advice,
		Theme:    theme,
		Palette:  wellness.ThemePalette(theme),
		Recommendation: models.Recommendation{
			Title:      insight.ToolTitle,
			Desc:       insight.ToolDesc,
			Link:       insight.Link,
			ButtonText: insight.ButtonText,
		},
		Plan: plan,
	}, nil
}

// RefreshPlan discards the persisted plan and generates a fresh one for the
// current mood level ("AI Refresh").
func (s *DashboardService) RefreshPlan(ctx context.Context, userID string) ([]wellness.Task, error) {
	profile := s.loadProfile(ctx, userID)
	score := s.loadMoodScore(ctx, userID)
	level := wellness.LevelName(score)

	plan := wellness.GeneratePlan(score, profile.Challenges, profile.RoleOrDefault(), s.rng)
	rec := &models.DailyPlanRecord{
		UserID: userID,
		Date:   wellness.DayString(s.now()),
		Mood:   level,
		Tasks:  plan,
	}
	if err := s.plans.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save regenerated plan: %w", err)
	}
	return plan, nil
}

// UpdateTasks replaces the persisted plan's task list in place, keeping the
// stored date and mood key so the edit survives same-day reloads. Tasks
// submitted with a zero id get the next free id.
func (s *DashboardService) UpdateTasks(ctx context.Context, userID string, tasks []wellness.Task) (*models.DailyPlanRecord, error) {
	for i := range tasks {
		if tasks[i].ID == 0 {
			tasks[i].ID = wellness.NextTaskID(tasks)
		}
	}

	rec, err := s.plans.Get(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		score := s.loadMoodScore(ctx, userID)
		rec = &models.DailyPlanRecord{
			UserID: userID,
			Date:   wellness.DayString(s.now()),
			Mood:   wellness.LevelName(score),
		}
	} else if err != nil {
		return nil, err
	}

	rec.Tasks = tasks
	if err := s.plans.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}
	return rec, nil
}

// currentPlan reuses the persisted plan when it matches today's date and
// mood level, otherwise generates and persists a new one.
func (s *DashboardService) currentPlan(ctx context.Context, userID string, score int, level string, profile *models.UserProfile) ([]wellness.Task, error) {
	today := wellness.DayString(s.now())

	rec, err := s.plans.Get(ctx, userID)
	if err == nil && rec.Date == today && rec.Mood == level {
		return rec.Tasks, nil
	}
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	plan := wellness.GeneratePlan(score, profile.Challenges, profile.RoleOrDefault(), s.rng)
	newRec := &models.DailyPlanRecord{
		UserID: userID,
		Date:   today,
		Mood:   level,
		Tasks:  plan,
	}
	if err := s.plans.Save(ctx, newRec); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}
	return plan, nil
}

// bumpStreak advances the streak and returns the new count, degrading to 0
// when the store is unavailable rather than failing the dashboard.
func (s *DashboardService) bumpStreak(ctx context.Context, userID string, now time.Time) int {
	rec, err := s.streaks.Get(ctx, userID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		config.Logger.Errorw("failed to read streak", "error", err, "uid", userID)
		return 0
	}

	next := wellness.BumpStreak(rec, now)
	if next != rec {
		if err := s.streaks.Save(ctx, userID, next); err != nil {
			config.Logger.Errorw("failed to save streak", "error", err, "uid", userID)
		}
	}
	return next.Count
}

func (s *DashboardService) currentTheme(ctx context.Context, userID string) wellness.Theme {
	theme, err := s.themes.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			config.Logger.Errorw("failed to read theme", "error", err, "uid", userID)
		}
		return wellness.ThemeNeutral
	}
	return theme
}

func (s *DashboardService) loadProfile(ctx context.Context, userID string) *models.UserProfile {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			config.Logger.Errorw("failed to read profile", "error", err, "uid", userID)
		}
		return &models.UserProfile{UserID: userID}
	}
	return profile
}

// loadMoodScore reads today's check-in score, defaulting when the user has
// not checked in.
func (s *DashboardService) loadMoodScore(ctx context.Context, userID string) int {
	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			config.Logger.Errorw("failed to read check-in session", "error", err, "uid", userID)
		}
		return defaultMoodScore
	}
	if session.MoodScore < 1 || session.MoodScore > 10 {
		return defaultMoodScore
	}
	return session.MoodScore
}

func greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good Morning"
	case hour < 18:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}
