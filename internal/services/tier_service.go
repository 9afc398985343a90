package services

import (
	"time"

	"github.com/contractflow/contractflow/internal/models"
	"github.com/contractflow/contractflow/internal/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TierService manages subscription tiers under a rate card.
type TierService struct {
	db     *gorm.DB
	lookup EntityLookup
	now    func() time.Time
}

func NewTierService(db *gorm.DB, lookup EntityLookup) *TierService {
	return &TierService{db: db, lookup: lookup, now: time.Now}
}

type CreateTierInput struct {
	RateCardID uuid.UUID
	MinCalls   int
	MaxCalls   int
	UnitPrice  decimal.Decimal
}

type UpdateTierInput struct {
	MinCalls  *int
	MaxCalls  *int
	UnitPrice *decimal.Decimal
}

func (s *TierService) Create(actorID uuid.UUID, in CreateTierInput) (*models.SubscriptionTier, error) {
	card, err := s.lookup.RateCardByID(in.RateCardID)
	if err != nil {
		return nil, err
	}
	if err := validation.CheckTier(&in.MinCalls, &in.MaxCalls, &in.UnitPrice); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	tier := &models.SubscriptionTier{
		ID:         uuid.New(),
		RateCardID: card.ID,
		MinCalls:   in.MinCalls,
		MaxCalls:   in.MaxCalls,
		UnitPrice:  in.UnitPrice,
		Audit:      models.Audit{CreatedAt: now, UpdatedAt: now},
		Operator:   models.Operator{CreatedBy: &actorID, UpdatedBy: &actorID},
	}
	if err := s.db.Create(tier).Error; err != nil {
		return nil, err
	}
	return tier, nil
}

func (s *TierService) Update(actorID, id uuid.UUID, in UpdateTierInput) (*models.SubscriptionTier, error) {
	var tier models.SubscriptionTier
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := loadLive(tx, &tier, id, "Subscription tier not found"); err != nil {
			return err
		}

		// Merge stored values so min/max ordering is checked on the
		// effective pair even when only one side is supplied.
		minCalls := tier.MinCalls
		maxCalls := tier.MaxCalls
		price := tier.UnitPrice
		if in.MinCalls != nil {
			minCalls = *in.MinCalls
		}
		if in.MaxCalls != nil {
			maxCalls = *in.MaxCalls
		}
		if in.UnitPrice != nil {
			price = *in.UnitPrice
		}
		if err := validation.CheckTier(&minCalls, &maxCalls, &price); err != nil {
			return err
		}

		tier.MinCalls = minCalls
		tier.MaxCalls = maxCalls
		tier.UnitPrice = price
		tier.UpdatedBy = &actorID
		tier.UpdatedAt = s.now().UTC()
		return tx.Save(&tier).Error
	})
	if err != nil {
		return nil, err
	}
	return &tier, nil
}

func (s *TierService) Archive(actorID, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var tier models.SubscriptionTier
		if err := loadLive(tx, &tier, id, "Subscription tier not found"); err != nil {
			return err
		}
		return tx.Model(&tier).Updates(map[string]interface{}{
			"is_archived": true,
			"updated_by":  actorID,
			"updated_at":  s.now().UTC(),
		}).Error
	})
}

func (s *TierService) GetByID(id uuid.UUID) (*models.SubscriptionTier, error) {
	var tier models.SubscriptionTier
	if err := loadLive(s.db, &tier, id, "Subscription tier not found"); err != nil {
		return nil, err
	}
	return &tier, nil
}

func (s *TierService) List() ([]models.SubscriptionTier, error) {
	var tiers []models.SubscriptionTier
	err := s.db.Scopes(models.NotArchived).Order("rate_card_id, min_calls").Find(&tiers).Error
	return tiers, err
}
