package services

import (
	"errors"
	"time"

	"github.com/contractflow/contractflow/internal/apperr"
	"github.com/contractflow/contractflow/internal/dto"
	"github.com/contractflow/contractflow/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionService struct {
	db     *gorm.DB
	lookup EntityLookup
	now    func() time.Time
}

func NewSubscriptionService(db *gorm.DB, lookup EntityLookup) *SubscriptionService {
	return &SubscriptionService{db: db, lookup: lookup, now: time.Now}
}

// checkPricing enforces the pairing invariant: Fixed pricing uses exactly
// the Fixed strategy, Variable pricing uses one of Pick, Fill, Flat.
func checkPricing(pricingType, strategy string) error {
	switch pricingType {
	case models.PricingFixed:
		if strategy != models.StrategyFixed {
			return apperr.NewField(apperr.KindInvalidValue, "strategy", "Fixed pricing requires the Fixed strategy")
		}
	case models.PricingVariable:
		switch strategy {
		case models.StrategyPick, models.StrategyFill, models.StrategyFlat:
		default:
			return apperr.NewField(apperr.KindInvalidValue, "strategy", "Variable pricing requires the Pick, Fill or Flat strategy")
		}
	default:
		return apperr.NewField(apperr.KindInvalidValue, "pricing_type", "pricing_type must be Fixed or Variable")
	}
	return nil
}

func (s *SubscriptionService) Create(actorID uuid.UUID, req *dto.CreateSubscriptionRequest) (*models.Subscription, error) {
	var sub models.Subscription
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := checkPricing(req.PricingType, req.Strategy); err != nil {
			return err
		}

		contract, err := NewLookup(tx).ContractByID(req.ContractID)
		if err != nil {
			return err
		}
		var product models.Product
		if err := tx.Scopes(models.NotArchived).First(&product, "id = ?", req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.KindNotFound, "Product does not exist")
			}
			return err
		}

		now := s.now().UTC()
		sub = models.Subscription{
			ID:          uuid.New(),
			ContractID:  contract.ID,
			ProductID:   product.ID,
			PricingType: req.PricingType,
			Strategy:    req.Strategy,
			Audit:       models.Audit{CreatedAt: now, UpdatedAt: now},
			Operator:    models.Operator{CreatedBy: &actorID, UpdatedBy: &actorID},
		}
		return tx.Create(&sub).Error
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SubscriptionService) Update(actorID, id uuid.UUID, req *dto.UpdateSubscriptionRequest) (*models.Subscription, error) {
	var sub models.Subscription
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := loadLive(tx, &sub, id, "Subscription not found"); err != nil {
			return err
		}

		pricingType := sub.PricingType
		strategy := sub.Strategy
		if req.PricingType != nil {
			pricingType = *req.PricingType
		}
		if req.Strategy != nil {
			strategy = *req.Strategy
		}
		if err := checkPricing(pricingType, strategy); err != nil {
			return err
		}

		sub.PricingType = pricingType
		sub.Strategy = strategy
		sub.UpdatedBy = &actorID
		sub.UpdatedAt = s.now().UTC()
		return tx.Save(&sub).Error
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SubscriptionService) Archive(actorID, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var sub models.Subscription
		if err := loadLive(tx, &sub, id, "Subscription not found"); err != nil {
			return err
		}
		return tx.Model(&sub).Updates(map[string]interface{}{
			"is_archived": true,
			"updated_by":  actorID,
			"updated_at":  s.now().UTC(),
		}).Error
	})
}

func (s *SubscriptionService) GetByID(id uuid.UUID) (*models.Subscription, error) {
	sub, err := s.lookup.SubscriptionByID(id)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Subscription not found")
		}
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) List() ([]models.Subscription, error) {
	var subs []models.Subscription
	err := s.db.Scopes(models.NotArchived).Find(&subs).Error
	return subs, err
}
