package services

import (
	"testing"
	"time"

	"github.com/contractflow/contractflow/internal/apperr"
	"github.com/contractflow/contractflow/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func timep(t time.Time) *time.Time { return &t }

func createCard(t *testing.T, f *fixture, svc *RateCardService, start, end time.Time) *models.RateCard {
	t.Helper()
	card, err := svc.Create(f.actor, CreateRateCardInput{
		SubscriptionID: f.subscription.ID,
		StartDate:      start,
		EndDate:        end,
	})
	require.NoError(t, err)
	return card
}

func TestRateCardCreate(t *testing.T) {
	f := newFixture(t)
	svc := NewRateCardService(f.db)

	card, err := svc.Create(f.actor, CreateRateCardInput{
		SubscriptionID: f.subscription.ID,
		StartDate:      utcDate(2025, 1, 1),
		EndDate:        utcDate(2025, 6, 30),
		Name:           strp("Launch pricing"),
		Version:        strp("v1"),
	})
	require.NoError(t, err)
	assert.Equal(t, f.subscription.ID, card.SubscriptionID)
	assert.True(t, card.IsActive)
	assert.False(t, card.IsArchived)
	require.NotNil(t, card.CreatedBy)
	assert.Equal(t, f.actor, *card.CreatedBy)

	var stored models.RateCard
	require.NoError(t, f.db.First(&stored, "id = ?", card.ID).Error)
	assert.Equal(t, "Launch pricing", *stored.Name)
}

func TestRateCardCreateTouchingPeriods(t *testing.T) {
	f := newFixture(t)
	svc := NewRateCardService(f.db)

	// End of one card equal to start of the next is not an overlap.
	createCard(t, f, svc, utcDate(2025, 1, 1), utcDate(2025, 7, 1))
	createCard(t, f, svc, utcDate(2025, 7, 1), utcDate(2026, 12, 31))

	_, err := svc.Create(f.actor, CreateRateCardInput{
		SubscriptionID: f.subscription.ID,
		StartDate:      utcDate(2025, 6, 15),
		EndDate:        utcDate(2025, 8, 1),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindOverlapConflict))
}

func TestRateCardCreateOverlapReportsConflictID(t *testing.T) {
	f := newFixture(t)
	svc := NewRateCardService(f.db)

	existing := createCard(t, f, svc, utcDate(2025, 3, 1), utcDate(2025, 9, 1))

	_, err := svc.Create(f.actor, CreateRateCardInput{
		SubscriptionID: f.subscription.ID,
		StartDate:      utcDate(2025, 8, 31),
		EndDate:        utcDate(2025, 12, 1),
	})
	require.Error(t, err)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindOverlapConflict, ae.Kind)
	assert.Equal(t, existing.ID, ae.ConflictID)
}

func TestRateCardCreateOutsideContract(t *testing.T) {
	f := newFixture(t)
	svc := NewRateCardService(f.db)

	_, err := svc.Create(f.actor, CreateRateCardInput{
		SubscriptionID: f.subscription.ID,
		StartDate:      utcDate(2024, 12, 31),
		EndDate:        utcDate(2025, 6, 1),
	})
	require.Error(t, err)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindOutOfBounds, ae.Kind)
	assert.Equal(t, "start_date", ae.Field)

	_, err = svc.Create(f.actor, CreateRateCardInput{
		SubscriptionID: f.subscription.ID,
		StartDate:      utcDate(2026, 6, 1),
		EndDate:        utcDate(2027, 1, 1),
	})
	require.Error(t, err)
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindOutOfBounds, ae.Kind)
	assert.Equal(t, "end_date", ae.Field)
}

func TestRateCardCreateInvertedRange(t *testing.T) {
	f := newFixture(t)
	svc := NewRateCardService(f.db)

	for _, end := range []time.Time{utcDate(2025, 6, 1), utcDate(2025, 3, 1)} {
		_, err := svc.Create(f.actor, CreateRateCardInput{
			SubscriptionID: f.subscription.ID,
			StartDate:      utcDate(2025, 6, 1),
			EndDate:        end,
		})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidRange))
	}

	// Nothing persisted after the failed attempts.
	var count int64
	require.NoError(t, f.db.Model(&models.RateCard{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRateCardCreateMissingSubscription(t *testing.T) {
	f := newFixture(t)
	svc := NewRateCardService(f.db)

	_, err := svc.Create(f.actor, CreateRateCardInput{
		SubscriptionID: uuid.New(),
		StartDate:      utcDate(2025, 1, 1),
		EndDate:        utcDate(2025, 6, 1),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestRateCardUpdateExcludesItself(t *testing.T) {
	f := newFixture(t)
	svc := NewRateCardService(f.db)

	card := createCard(t, f, svc, utcDate(2025, 1, 1), utcDate(2025, 7, 1))

	// Re-saving a card over its own period must not count as an overlap.
	updated, err := svc.Update(f.actor, card.ID, UpdateRateCardInput{
		StartDate: timep(utcDate(2025, 1, 1)),
		EndDate:   timep(utcDate(2025, 7, 1)),
		Name:      strp("renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", *updated.Name)
}

func TestRateCardUpdateConflictsWithSibling(t *testing.T) {
	f := newFixture(t)
	svc := NewRateCardService(f.db)

	a := createCard(t, f, svc, utcDate(2025, 1, 1), utcDate(2025, 7, 1))
	b := createCard(t, f, svc, utcDate(2025, 7, 1), utcDate(2026, 12, 31))

	_, err := svc.Update(f.actor, a.ID, UpdateRateCardInput{
		EndDate: timep(utcDate(2025, 7, 15)),
	})
	require.Error(t, err)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindOverlapConflict, ae.Kind)
	assert.Equal(t, b.ID, ae.ConflictID)

	// The failed update rolled back, so A keeps its original end date.
	stored, err := svc.GetByID(a.ID)
	require.NoError(t, err)
	assert.True(t, stored.EndDate.Equal(utcDate(2025, 7, 1)))
}

func TestRateCardUpdatePartialValidatesEffectiveRange(t *testing.T) {
	f := newFixture(t)
	svc := NewRateCardService(f.db)

	card := createCard(t, f, svc, utcDate(2025, 3, 1), utcDate(2025, 9, 1))

	// Only the end date is supplied; it is checked against the stored start.
	_, err := svc.Update(f.actor, card.ID, UpdateRateCardInput{
		EndDate: timep(utcDate(2025, 2, 1)),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidRange))

	updated, err := svc.Update(f.actor, card.ID, UpdateRateCardInput{
		EndDate: timep(utcDate(2025, 12, 1)),
	})
	require.NoError(t, err)
	assert.True(t, updated.StartDate.Equal(utcDate(2025, 3, 1)))
	assert.True(t, updated.EndDate.Equal(utcDate(2025, 12, 1)))
}

func TestRateCardOverlapIgnoresArchivedSiblings(t *testing.T) {
	f := newFixture(t)
	svc := NewRateCardService(f.db)

	old := createCard(t, f, svc, utcDate(2025, 1, 1), utcDate(2025, 12, 1))
	require.NoError(t, svc.Archive(f.actor, old.ID))

	// The archived card's period is free again.
	createCard(t, f, svc, utcDate(2025, 3, 1), utcDate(2025, 9, 1))
}

func TestRateCardArchiveCascadesToTiers(t *testing.T) {
	f := newFixture(t)
	svc := NewRateCardService(f.db)
	tiers := NewTierService(f.db, NewLookup(f.db))

	card := createCard(t, f, svc, utcDate(2025, 1, 1), utcDate(2025, 12, 1))
	tier, err := tiers.Create(f.actor, CreateTierInput{
		RateCardID: card.ID,
		MinCalls:   0,
		MaxCalls:   models.UnlimitedCalls,
		UnitPrice:  decimal.RequireFromString("0.0100"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Archive(f.actor, card.ID))

	_, err = svc.GetByID(card.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = tiers.GetByID(tier.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestRateCardArchiveTwice(t *testing.T) {
	f := newFixture(t)
	svc := NewRateCardService(f.db)

	card := createCard(t, f, svc, utcDate(2025, 1, 1), utcDate(2025, 12, 1))
	require.NoError(t, svc.Archive(f.actor, card.ID))

	err := svc.Archive(f.actor, card.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestRateCardUpdateArchived(t *testing.T) {
	f := newFixture(t)
	svc := NewRateCardService(f.db)

	card := createCard(t, f, svc, utcDate(2025, 1, 1), utcDate(2025, 12, 1))
	require.NoError(t, svc.Archive(f.actor, card.ID))

	_, err := svc.Update(f.actor, card.ID, UpdateRateCardInput{Name: strp("late edit")})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestRateCardGetByIDPreloadsLiveTiers(t *testing.T) {
	f := newFixture(t)
	svc := NewRateCardService(f.db)
	tiers := NewTierService(f.db, NewLookup(f.db))

	card := createCard(t, f, svc, utcDate(2025, 1, 1), utcDate(2025, 12, 1))
	_, err := tiers.Create(f.actor, CreateTierInput{
		RateCardID: card.ID,
		MinCalls:   0,
		MaxCalls:   1000,
		UnitPrice:  decimal.RequireFromString("0.0500"),
	})
	require.NoError(t, err)
	archived, err := tiers.Create(f.actor, CreateTierInput{
		RateCardID: card.ID,
		MinCalls:   1000,
		MaxCalls:   models.UnlimitedCalls,
		UnitPrice:  decimal.RequireFromString("0.0200"),
	})
	require.NoError(t, err)
	require.NoError(t, tiers.Archive(f.actor, archived.ID))

	got, err := svc.GetByID(card.ID)
	require.NoError(t, err)
	require.Len(t, got.Tiers, 1)
	assert.Equal(t, 1000, got.Tiers[0].MaxCalls)
}

func TestRateCardPeriodsOnSeparateSubscriptionsMayOverlap(t *testing.T) {
	f := newFixture(t)
	svc := NewRateCardService(f.db)

	other := models.Subscription{
		ID:          uuid.New(),
		ContractID:  f.contract.ID,
		ProductID:   f.subscription.ProductID,
		PricingType: models.PricingFixed,
		Strategy:    models.StrategyFixed,
		Audit:       models.Audit{CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()},
	}
	require.NoError(t, f.db.Create(&other).Error)

	createCard(t, f, svc, utcDate(2025, 1, 1), utcDate(2025, 12, 1))
	_, err := svc.Create(f.actor, CreateRateCardInput{
		SubscriptionID: other.ID,
		StartDate:      utcDate(2025, 3, 1),
		EndDate:        utcDate(2025, 9, 1),
	})
	require.NoError(t, err)
}
