package services

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sarthak-bhuptani/MindCare/config"
	"github.com/sarthak-bhuptani/MindCare/models"
	"github.com/sarthak-bhuptani/MindCare/repositories"
	"github.com/sarthak-bhuptani/MindCare/wellness"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop().Sugar()
	os.Exit(m.Run())
}

// In-memory fakes for the injected stores.

type fakePlanRepo struct {
	rec *models.DailyPlanRecord
	err error
}

func (f *fakePlanRepo) Get(ctx context.Context, userID string) (*models.DailyPlanRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.rec == nil {
		return nil, repositories.ErrNotFound
	}
	cp := *f.rec
	return &cp, nil
}

func (f *fakePlanRepo) Save(ctx context.Context, rec *models.DailyPlanRecord) error {
	if f.err != nil {
		return f.err
	}
	cp := *rec
	f.rec = &cp
	return nil
}

type fakeStreakRepo struct {
	rec    wellness.StreakRecord
	exists bool
	getErr error
	saves  int
}

func (f *fakeStreakRepo) Get(ctx context.Context, userID string) (wellness.StreakRecord, error) {
	if f.getErr != nil {
		return wellness.StreakRecord{}, f.getErr
	}
	if !f.exists {
		return wellness.StreakRecord{}, repositories.ErrNotFound
	}
	return f.rec, nil
}

func (f *fakeStreakRepo) Save(ctx context.Context, userID string, rec wellness.StreakRecord) error {
	f.rec = rec
	f.exists = true
	f.saves++
	return nil
}

type fakeProfileRepo struct {
	profile *models.UserProfile
}

func (f *fakeProfileRepo) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	if f.profile == nil {
		return nil, repositories.ErrNotFound
	}
	return f.profile, nil
}

func (f *fakeProfileRepo) Save(ctx context.Context, profile *models.UserProfile) error {
	f.profile = profile
	return nil
}

type fakeSessionStore struct {
	session *models.CheckInSession
}

func (f *fakeSessionStore) Get(ctx context.Context, userID string) (*models.CheckInSession, error) {
	if f.session == nil {
		return nil, repositories.ErrNotFound
	}
	return f.session, nil
}

func (f *fakeSessionStore) Save(ctx context.Context, userID string, session *models.CheckInSession) error {
	f.session = session
	return nil
}

type fakeThemeStore struct {
	theme wellness.Theme
	set   bool
}

func (f *fakeThemeStore) Get(ctx context.Context, userID string) (wellness.Theme, error) {
	if !f.set {
		return wellness.ThemeNeutral, repositories.ErrNotFound
	}
	return f.theme, nil
}

func (f *fakeThemeStore) Save(ctx context.Context, userID string, theme wellness.Theme) error {
	f.theme = theme
	f.set = true
	return nil
}

type dashFixture struct {
	svc      *DashboardService
	plans    *fakePlanRepo
	streaks  *fakeStreakRepo
	profiles *fakeProfileRepo
	sessions *fakeSessionStore
	themes   *fakeThemeStore
	now      time.Time
}

func newDashFixture() *dashFixture {
	f := &dashFixture{
		plans:    &fakePlanRepo{},
		streaks:  &fakeStreakRepo{},
		profiles: &fakeProfileRepo{},
		sessions: &fakeSessionStore{},
		themes:   &fakeThemeStore{},
		now:      time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
	}
	f.svc = NewDashboardService(f.plans, f.streaks, f.profiles, f.sessions, f.themes)
	f.svc.now = func() time.Time { return f.now }
	f.svc.rng = rand.New(rand.NewSource(1))
	return f
}

func TestComposeGeneratesAndPersistsPlan(t *testing.T) {
	f := newDashFixture()
	f.sessions.session = &models.CheckInSession{MoodScore: 6}
	f.profiles.profile = &models.UserProfile{UserID: "u1", Nickname: "Sam", Role: "Student", Challenges: []string{"Anxiety"}}

	got, err := f.svc.Compose(context.Background(), "u1", "Samuel")
	require.NoError(t, err)

	assert.Equal(t, "Good Morning", got.Greeting)
	assert.Equal(t, "Sam", got.Nickname)
	assert.Equal(t, "Steady", got.Mood)
	assert.Equal(t, 6, got.Score)
	assert.Len(t, got.Plan, 5) // 4 slots + anxiety rescue

	// The plan was persisted keyed on today's date and mood level.
	require.NotNil(t, f.plans.rec)
	assert.Equal(t, "2025-03-14", f.plans.rec.Date)
	assert.Equal(t, "Steady", f.plans.rec.Mood)
	assert.Equal(t, got.Plan, f.plans.rec.Tasks)
}

func TestComposeReusesSameDaySameLevelPlan(t *testing.T) {
	f := newDashFixture()
	f.sessions.session = &models.CheckInSession{MoodScore: 6}

	stored := []wellness.Task{
		{ID: 1, Task: "Morning: Mindful Coffee", Time: "08:30 AM", Status: wellness.TaskCompleted},
		{ID: 2, Task: "Focus: Main Task", Time: "11:00 AM", Status: wellness.TaskPending},
		{ID: 3, Task: "Peak Performance: Bonus Challenge", Time: "03:30 PM", Status: wellness.TaskPending},
		{ID: 4, Task: "Downtime: Progress Log", Time: "09:00 PM", Status: wellness.TaskPending},
	}
	f.plans.rec = &models.DailyPlanRecord{UserID: "u1", Date: "2025-03-14", Mood: "Steady", Tasks: stored}

	got, err := f.svc.Compose(context.Background(), "u1", "Sam")
	require.NoError(t, err)

	// Returned verbatim: the toggled completion survives, nothing substituted.
	assert.Equal(t, stored, got.Plan)
	assert.Equal(t, wellness.TaskCompleted, got.Plan[0].Status)
}

func TestComposeRegeneratesWhenDateChanges(t *testing.T) {
	f := newDashFixture()
	f.sessions.session = &models.CheckInSession{MoodScore: 6}
	f.plans.rec = &models.DailyPlanRecord{
		UserID: "u1",
		Date:   "2025-03-13",
		Mood:   "Steady",
		Tasks:  []wellness.Task{{ID: 1, Task: "stale", Time: "08:30 AM", Status: wellness.TaskCompleted}},
	}

	got, err := f.svc.Compose(context.Background(), "u1", "Sam")
	require.NoError(t, err)

	assert.Len(t, got.Plan, 4)
	assert.Equal(t, "2025-03-14", f.plans.rec.Date)
	for _, task := range got.Plan {
		assert.Equal(t, wellness.TaskPending, task.Status)
	}
}

func TestComposeRegeneratesWhenMoodLevelChanges(t *testing.T) {
	f := newDashFixture()
	f.sessions.session = &models.CheckInSession{MoodScore: 9} // Active
	f.plans.rec = &models.DailyPlanRecord{
		UserID: "u1",
		Date:   "2025-03-14",
		Mood:   "Steady",
		Tasks:  []wellness.Task{{ID: 1, Task: "stale", Time: "08:30 AM", Status: wellness.TaskPending}},
	}

	got, err := f.svc.Compose(context.Background(), "u1", "Sam")
	require.NoError(t, err)

	assert.Equal(t, "Active", got.Mood)
	assert.Equal(t, "Active", f.plans.rec.Mood)
	assert.Len(t, got.Plan, 4)
}

func TestComposePlanSaveFailureAborts(t *testing.T) {
	f := newDashFixture()
	f.plans.err = errors.New("store unreachable")

	_, err := f.svc.Compose(context.Background(), "u1", "Sam")
	assert.Error(t, err)
}

func TestComposeStreakRules(t *testing.T) {
	t.Run("first visit starts at one", func(t *testing.T) {
		f := newDashFixture()
		got, err := f.svc.Compose(context.Background(), "u1", "Sam")
		require.NoError(t, err)
		assert.Equal(t, 1, got.Streak)
	})

	t.Run("consecutive day increments", func(t *testing.T) {
		f := newDashFixture()
		f.streaks.rec = wellness.StreakRecord{Count: 5, LastDate: "2025-03-13"}
		f.streaks.exists = true

		got, err := f.svc.Compose(context.Background(), "u1", "Sam")
		require.NoError(t, err)
		assert.Equal(t, 6, got.Streak)
	})

	t.Run("same day is idempotent", func(t *testing.T) {
		f := newDashFixture()
		f.streaks.rec = wellness.StreakRecord{Count: 5, LastDate: "2025-03-14"}
		f.streaks.exists = true

		got, err := f.svc.Compose(context.Background(), "u1", "Sam")
		require.NoError(t, err)
		assert.Equal(t, 5, got.Streak)
		assert.Zero(t, f.streaks.saves)
	})

	t.Run("gap resets", func(t *testing.T) {
		f := newDashFixture()
		f.streaks.rec = wellness.StreakRecord{Count: 5, LastDate: "2025-03-10"}
		f.streaks.exists = true

		got, err := f.svc.Compose(context.Background(), "u1", "Sam")
		require.NoError(t, err)
		assert.Equal(t, 1, got.Streak)
	})

	t.Run("store failure degrades to zero", func(t *testing.T) {
		f := newDashFixture()
		f.streaks.getErr = errors.New("store unreachable")

		got, err := f.svc.Compose(context.Background(), "u1", "Sam")
		require.NoError(t, err)
		assert.Equal(t, 0, got.Streak)
	})
}

func TestComposeDefaults(t *testing.T) {
	f := newDashFixture()

	got, err := f.svc.Compose(context.Background(), "u1", "")
	require.NoError(t, err)

	// No check-in, no profile, no theme.
	assert.Equal(t, defaultMoodScore, got.Score)
	assert.Equal(t, "Steady", got.Mood)
	assert.Equal(t, "Friend", got.Nickname)
	assert.Equal(t, wellness.ThemeNeutral, got.Theme)
	assert.Equal(t, wellness.ThemePalette(wellness.ThemeNeutral), got.Palette)
}

func TestComposeUsesPersistedTheme(t *testing.T) {
	f := newDashFixture()
	f.themes.theme = wellness.ThemeJoyful
	f.themes.set = true

	got, err := f.svc.Compose(context.Background(), "u1", "Sam")
	require.NoError(t, err)
	assert.Equal(t, wellness.ThemeJoyful, got.Theme)
	assert.Equal(t, wellness.ThemePalette(wellness.ThemeJoyful), got.Palette)
}

func TestComposeRecommendationFollowsLevel(t *testing.T) {
	f := newDashFixture()
	f.sessions.session = &models.CheckInSession{MoodScore: 10}

	got, err := f.svc.Compose(context.Background(), "u1", "Sam")
	require.NoError(t, err)
	assert.Equal(t, "Peak", got.Mood)
	assert.Equal(t, "/mindgame", got.Recommendation.Link)
	assert.Equal(t, "Mind Game", got.Recommendation.Title)
}

func TestRefreshPlanDiscardsCurrentPlan(t *testing.T) {
	f := newDashFixture()
	f.sessions.session = &models.CheckInSession{MoodScore: 6}
	f.plans.rec = &models.DailyPlanRecord{
		UserID: "u1",
		Date:   "2025-03-14",
		Mood:   "Steady",
		Tasks:  []wellness.Task{{ID: 1, Task: "old", Time: "08:30 AM", Status: wellness.TaskCompleted}},
	}

	plan, err := f.svc.RefreshPlan(context.Background(), "u1")
	require.NoError(t, err)

	assert.Len(t, plan, 4)
	for _, task := range plan {
		assert.NotEqual(t, "old", task.Task)
		assert.Equal(t, wellness.TaskPending, task.Status)
	}
	assert.Equal(t, plan, f.plans.rec.Tasks)
}

func TestUpdateTasksMutatesInPlace(t *testing.T) {
	f := newDashFixture()
	f.plans.rec = &models.DailyPlanRecord{
		UserID: "u1",
		Date:   "2025-03-14",
		Mood:   "Steady",
		Tasks: []wellness.Task{
			{ID: 1, Task: "Morning: Mindful Coffee", Time: "08:30 AM", Status: wellness.TaskPending},
		},
	}

	edited := []wellness.Task{
		{ID: 1, Task: "Morning: Mindful Coffee", Time: "08:30 AM", Status: wellness.TaskCompleted},
		{ID: 2, Task: "Call a friend", Time: "07:00 PM", Status: wellness.TaskPending},
	}

	rec, err := f.svc.UpdateTasks(context.Background(), "u1", edited)
	require.NoError(t, err)

	// Date and mood key are preserved so the edit survives same-day reloads.
	assert.Equal(t, "2025-03-14", rec.Date)
	assert.Equal(t, "Steady", rec.Mood)
	assert.Equal(t, edited, rec.Tasks)
}

func TestUpdateTasksAssignsZeroIDs(t *testing.T) {
	f := newDashFixture()
	f.plans.rec = &models.DailyPlanRecord{
		UserID: "u1",
		Date:   "2025-03-14",
		Mood:   "Steady",
		Tasks: []wellness.Task{
			{ID: 1, Task: "Morning: Mindful Coffee", Time: "08:30 AM", Status: wellness.TaskPending},
		},
	}

	edited := []wellness.Task{
		{ID: 1, Task: "Morning: Mindful Coffee", Time: "08:30 AM", Status: wellness.TaskPending},
		{ID: 4, Task: "Downtime: Progress Log", Time: "09:00 PM", Status: wellness.TaskPending},
		{ID: 0, Task: "Call a friend", Time: "07:00 PM", Status: wellness.TaskPending},
		{ID: 0, Task: "Water the plants", Time: "07:30 PM", Status: wellness.TaskPending},
	}

	rec, err := f.svc.UpdateTasks(context.Background(), "u1", edited)
	require.NoError(t, err)

	assert.Equal(t, 5, rec.Tasks[2].ID)
	assert.Equal(t, 6, rec.Tasks[3].ID)
}

func TestUpdateTasksCreatesRecordWhenMissing(t *testing.T) {
	f := newDashFixture()
	f.sessions.session = &models.CheckInSession{MoodScore: 9}

	tasks := []wellness.Task{{ID: 1, Task: "Stretch", Time: "08:00 AM", Status: wellness.TaskPending}}
	rec, err := f.svc.UpdateTasks(context.Background(), "u1", tasks)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-14", rec.Date)
	assert.Equal(t, "Active", rec.Mood)
	assert.Equal(t, tasks, rec.Tasks)
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Good Morning", greeting(8))
	assert.Equal(t, "Good Afternoon", greeting(13))
	assert.Equal(t, "Good Evening", greeting(21))
}
