package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sarthak-bhuptani/MindCare/models"
	"github.com/sarthak-bhuptani/MindCare/wellness"
)

// GormPlanRepository persists daily plans in MySQL.
type GormPlanRepository struct {
	db *gorm.DB
}

func NewGormPlanRepository(db *gorm.DB) *GormPlanRepository {
	return &GormPlanRepository{db: db}
}

func (r *GormPlanRepository) Get(ctx context.Context, userID string) (*models.DailyPlanRecord, error) {
	var rec models.DailyPlanRecord
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *GormPlanRepository) Save(ctx context.Context, rec *models.DailyPlanRecord) error {
	rec.LastModified = time.Now().UTC()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(rec).Error
}

// GormStreakRepository persists streak counters in MySQL.
type GormStreakRepository struct {
	db *gorm.DB
}

func NewGormStreakRepository(db *gorm.DB) *GormStreakRepository {
	return &GormStreakRepository{db: db}
}

func (r *GormStreakRepository) Get(ctx context.Context, userID string) (wellness.StreakRecord, error) {
	var row models.Streak
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return wellness.StreakRecord{}, ErrNotFound
	}
	if err != nil {
		return wellness.StreakRecord{}, err
	}
	return wellness.StreakRecord{Count: row.Count, LastDate: row.LastDate}, nil
}

func (r *GormStreakRepository) Save(ctx context.Context, userID string, rec wellness.StreakRecord) error {
	row := models.Streak{UserID: userID, Count: rec.Count, LastDate: rec.LastDate}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}

// GormProfileRepository persists onboarding profiles in MySQL.
type GormProfileRepository struct {
	db *gorm.DB
}

func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

func (r *GormProfileRepository) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *GormProfileRepository) Save(ctx context.Context, profile *models.UserProfile) error {
	profile.LastModified = time.Now().UTC()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(profile).Error
}
