package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/contractflow/contractflow/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory SQLite database and migrates the
// domain schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Client{},
		&models.Product{},
		&models.Contract{},
		&models.Subscription{},
		&models.RateCard{},
		&models.SubscriptionTier{},
	))
	return db
}

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fixture seeds the dependency chain a rate card hangs off: an acting
// user, a client, a contract running 2025-01-01..2026-12-31, a product
// and one subscription.
type fixture struct {
	db           *gorm.DB
	actor        uuid.UUID
	contract     models.Contract
	subscription models.Subscription
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	now := time.Now().UTC()

	actorID := uuid.New()
	user := models.User{
		ID:           actorID,
		Email:        "ops@example.com",
		PasswordHash: "x",
		FullName:     "Ops User",
		Role:         models.RoleAdmin,
		Audit:        models.Audit{CreatedAt: now, UpdatedAt: now},
	}
	require.NoError(t, db.Create(&user).Error)

	client := models.Client{
		ID:          uuid.New(),
		CompanyName: "Acme Corp",
		Email:       "billing@acme.example",
		PhoneNumber: "+4915112345678",
		Address:     "1 Acme Way",
		Audit:       models.Audit{CreatedAt: now, UpdatedAt: now},
		Operator:    models.Operator{CreatedBy: &actorID, UpdatedBy: &actorID},
	}
	require.NoError(t, db.Create(&client).Error)

	contract := models.Contract{
		ID:           uuid.New(),
		ClientID:     client.ID,
		ContractName: "Acme 2025-2026",
		Duration: models.Duration{
			StartDate: utcDate(2025, 1, 1),
			EndDate:   utcDate(2026, 12, 31),
		},
		Audit:    models.Audit{CreatedAt: now, UpdatedAt: now},
		Operator: models.Operator{CreatedBy: &actorID, UpdatedBy: &actorID},
	}
	require.NoError(t, db.Create(&contract).Error)

	product := models.Product{
		ID:          uuid.New(),
		APIName:     "geo-lookup",
		Description: "Geocoding API",
		Audit:       models.Audit{CreatedAt: now, UpdatedAt: now},
		Operator:    models.Operator{CreatedBy: &actorID, UpdatedBy: &actorID},
	}
	require.NoError(t, db.Create(&product).Error)

	sub := models.Subscription{
		ID:          uuid.New(),
		ContractID:  contract.ID,
		ProductID:   product.ID,
		PricingType: models.PricingVariable,
		Strategy:    models.StrategyPick,
		Audit:       models.Audit{CreatedAt: now, UpdatedAt: now},
		Operator:    models.Operator{CreatedBy: &actorID, UpdatedBy: &actorID},
	}
	require.NoError(t, db.Create(&sub).Error)

	return &fixture{db: db, actor: actorID, contract: contract, subscription: sub}
}
