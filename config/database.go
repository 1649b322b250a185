package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/Govind-619/OrderLadder/models"
	"github.com/Govind-619/OrderLadder/utils"
)

// InitDB opens the PostgreSQL connection
func InitDB(cfg *Config) (*gorm.DB, error) {
	return OpenDB(cfg.DSN(), cfg.LogDebug)
}

// OpenDB opens a PostgreSQL connection for dsn
func OpenDB(dsn string, debug bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}
	return db, nil
}

// Migrate creates the ledger tables and seeds the counter row with zero
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Counter{}, &models.Payment{}); err != nil {
		return fmt.Errorf("failed to migrate database: %v", err)
	}

	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Counter{ID: models.CounterID})
	if res.Error != nil {
		return fmt.Errorf("failed to seed counter: %v", res.Error)
	}
	if res.RowsAffected > 0 {
		utils.LogInfo("Seeded order counter at 0")
	}
	return nil
}
