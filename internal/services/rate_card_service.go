package services

import (
	"time"

	"github.com/contractflow/contractflow/internal/apperr"
	"github.com/contractflow/contractflow/internal/models"
	"github.com/contractflow/contractflow/internal/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RateCardService owns the rate card lifecycle: every write resolves the
// parent chain, runs the temporal checks and persists inside a single
// transaction, so a failed check never leaves partial state behind.
type RateCardService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewRateCardService(db *gorm.DB) *RateCardService {
	return &RateCardService{db: db, now: time.Now}
}

type CreateRateCardInput struct {
	SubscriptionID uuid.UUID
	StartDate      time.Time
	EndDate        time.Time
	Name           *string
	Version        *string
	IsActive       *bool
}

type UpdateRateCardInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Name      *string
	Version   *string
	IsActive  *bool
}

func (s *RateCardService) Create(actorID uuid.UUID, in CreateRateCardInput) (*models.RateCard, error) {
	var card *models.RateCard
	err := s.db.Transaction(func(tx *gorm.DB) error {
		sub, err := s.lockSubscription(tx, in.SubscriptionID)
		if err != nil {
			return err
		}

		period := validation.NewPeriod(in.StartDate, in.EndDate)
		if err := s.checkPeriod(tx, sub, period, uuid.Nil); err != nil {
			return err
		}

		now := s.now().UTC()
		isActive := true
		if in.IsActive != nil {
			isActive = *in.IsActive
		}
		card = &models.RateCard{
			ID:             uuid.New(),
			SubscriptionID: sub.ID,
			Name:           in.Name,
			Version:        in.Version,
			IsActive:       isActive,
			Duration:       models.Duration{StartDate: period.Start, EndDate: period.End},
			Audit:          models.Audit{CreatedAt: now, UpdatedAt: now},
			Operator:       models.Operator{CreatedBy: &actorID, UpdatedBy: &actorID},
		}
		return tx.Create(card).Error
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (s *RateCardService) Update(actorID, id uuid.UUID, in UpdateRateCardInput) (*models.RateCard, error) {
	var card models.RateCard
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := loadLive(tx, &card, id, "Rate card not found"); err != nil {
			return err
		}

		sub, err := s.lockSubscription(tx, card.SubscriptionID)
		if err != nil {
			return err
		}

		// A partial update still validates the effective combined range.
		start := card.StartDate
		end := card.EndDate
		if in.StartDate != nil {
			start = *in.StartDate
		}
		if in.EndDate != nil {
			end = *in.EndDate
		}
		period := validation.NewPeriod(start, end)
		if err := s.checkPeriod(tx, sub, period, card.ID); err != nil {
			return err
		}

		card.StartDate = period.Start
		card.EndDate = period.End
		if in.Name != nil {
			card.Name = in.Name
		}
		if in.Version != nil {
			card.Version = in.Version
		}
		if in.IsActive != nil {
			card.IsActive = *in.IsActive
		}
		card.UpdatedBy = &actorID
		card.UpdatedAt = s.now().UTC()
		return tx.Save(&card).Error
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// Archive soft-deletes a rate card and, in the same transaction, bulk
// archives its remaining tiers so no tier outlives its card in active state.
func (s *RateCardService) Archive(actorID, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var card models.RateCard
		if err := loadLive(tx, &card, id, "Rate card not found"); err != nil {
			return err
		}

		now := s.now().UTC()
		if err := tx.Model(&card).Updates(map[string]interface{}{
			"is_archived": true,
			"updated_by":  actorID,
			"updated_at":  now,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&models.SubscriptionTier{}).
			Where("rate_card_id = ? AND is_archived = ?", card.ID, false).
			Updates(map[string]interface{}{
				"is_archived": true,
				"updated_by":  actorID,
				"updated_at":  now,
			}).Error
	})
}

// GetByID returns a live rate card with its live tiers. Archived cards are
// fully hidden from normal consumption, so they 404 here too.
func (s *RateCardService) GetByID(id uuid.UUID) (*models.RateCard, error) {
	var card models.RateCard
	err := s.db.Scopes(models.NotArchived).
		Preload("Tiers", "is_archived = ?", false).
		First(&card, "id = ?", id).Error
	if err != nil {
		return nil, liveErr(err, "Rate card not found")
	}
	return &card, nil
}

func (s *RateCardService) List() ([]models.RateCard, error) {
	var cards []models.RateCard
	err := s.db.Scopes(models.NotArchived).
		Preload("Tiers", "is_archived = ?", false).
		Order("start_date").
		Find(&cards).Error
	return cards, err
}

func (s *RateCardService) ListTiers(id uuid.UUID) ([]models.SubscriptionTier, error) {
	var card models.RateCard
	if err := loadLive(s.db, &card, id, "Rate card not found"); err != nil {
		return nil, err
	}
	var tiers []models.SubscriptionTier
	err := s.db.Scopes(models.NotArchived).
		Where("rate_card_id = ?", card.ID).
		Order("min_calls").
		Find(&tiers).Error
	return tiers, err
}

// checkPeriod runs the validation pipeline in fixed order, short-circuiting
// on the first failure: order, containment in the contract, overlap against
// live siblings.
func (s *RateCardService) checkPeriod(tx *gorm.DB, sub *models.Subscription, period validation.Period, exclude uuid.UUID) error {
	if err := period.CheckOrder(); err != nil {
		return err
	}

	contract, err := NewLookup(tx).ContractByID(sub.ContractID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return apperr.New(apperr.KindNotFound, "Parent contract not found for subscription")
		}
		return err
	}
	bounds := validation.NewPeriod(contract.StartDate, contract.EndDate)
	if err := period.CheckWithin(bounds); err != nil {
		return err
	}

	var rows []models.RateCard
	if err := tx.Scopes(models.NotArchived).
		Where("subscription_id = ?", sub.ID).
		Find(&rows).Error; err != nil {
		return err
	}
	siblings := make([]validation.Sibling, 0, len(rows))
	for _, r := range rows {
		siblings = append(siblings, validation.Sibling{
			ID:     r.ID,
			Period: validation.NewPeriod(r.StartDate, r.EndDate),
		})
	}
	return period.CheckOverlap(siblings, exclude)
}

// lockSubscription resolves the parent subscription and takes a row lock so
// concurrent sibling writers serialize. SQLite has no FOR UPDATE; there the
// whole-database write lock covers the same ground.
func (s *RateCardService) lockSubscription(tx *gorm.DB, id uuid.UUID) (*models.Subscription, error) {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var sub models.Subscription
	if err := q.Scopes(models.NotArchived).First(&sub, "id = ?", id).Error; err != nil {
		return nil, lookupErr(err, "Subscription does not exist")
	}
	return &sub, nil
}
