package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/contractflow/contractflow/internal/config"
	"github.com/contractflow/contractflow/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all entities and installs the exclusion
// constraint that backs the rate card non-overlap invariant at commit time.
func Migrate() error {
	if err := DB.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Client{},
		&models.Product{},
		&models.Contract{},
		&models.Subscription{},
		&models.RateCard{},
		&models.SubscriptionTier{},
		&models.SystemLog{},
	); err != nil {
		return err
	}
	return installRateCardExclusion()
}

// rateCardExclusionDDL rejects at commit any two non-archived rate cards
// of one subscription whose half-open periods intersect. The date columns
// migrate as timestamptz, so the range type must be tstzrange.
const rateCardExclusionDDL = `
	ALTER TABLE rate_cards
	ADD CONSTRAINT rate_cards_no_overlap
	EXCLUDE USING gist (
		subscription_id WITH =,
		tstzrange(start_date, end_date, '[)') WITH &&
	) WHERE (NOT is_archived)
`

// installRateCardExclusion is the backstop for concurrent writers whose
// overlap checks each ran against a snapshot missing the other's
// uncommitted row.
func installRateCardExclusion() error {
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return fmt.Errorf("failed to enable btree_gist: %w", err)
	}
	if err := DB.Exec(`ALTER TABLE rate_cards DROP CONSTRAINT IF EXISTS rate_cards_no_overlap`).Error; err != nil {
		return err
	}
	return DB.Exec(rateCardExclusionDDL).Error
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
