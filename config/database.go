package config

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sarthak-bhuptani/MindCare/models"
)

var DB *gorm.DB

// InitDB opens the MySQL connection and migrates the schema.
func InitDB(config Config) error {
	dsn := config.GetDBConnString()

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := migrateDB(); err != nil {
		return err
	}

	return nil
}

func migrateDB() error {
	err := DB.AutoMigrate(
		&models.User{},
		&models.JournalEntry{},
		&models.DailyPlanRecord{},
		&models.Streak{},
		&models.UserProfile{},
	)
	if err != nil {
		return fmt.Errorf("database migration failed: %v", err)
	}
	return nil
}
