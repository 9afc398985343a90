package services

import (
	"errors"
	"time"

	"github.com/contractflow/contractflow/internal/apperr"
	"github.com/contractflow/contractflow/internal/dto"
	"github.com/contractflow/contractflow/internal/models"
	"github.com/contractflow/contractflow/internal/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContractService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewContractService(db *gorm.DB) *ContractService {
	return &ContractService{db: db, now: time.Now}
}

func (s *ContractService) Create(actorID uuid.UUID, req *dto.CreateContractRequest) (*models.Contract, error) {
	var contract models.Contract
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.Scopes(models.NotArchived).First(&client, "id = ?", req.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.KindNotFound, "Client does not exist")
			}
			return err
		}

		period := validation.NewPeriod(req.StartDate, req.EndDate)
		if err := period.CheckOrder(); err != nil {
			return err
		}

		now := s.now().UTC()
		contract = models.Contract{
			ID:           uuid.New(),
			ClientID:     client.ID,
			ContractName: req.ContractName,
			Duration:     models.Duration{StartDate: period.Start, EndDate: period.End},
			Audit:        models.Audit{CreatedAt: now, UpdatedAt: now},
			Operator:     models.Operator{CreatedBy: &actorID, UpdatedBy: &actorID},
		}
		if err := models.Validate(&contract); err != nil {
			return apperr.New(apperr.KindInvalidValue, err.Error())
		}
		return tx.Create(&contract).Error
	})
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (s *ContractService) Update(actorID, id uuid.UUID, req *dto.UpdateContractRequest) (*models.Contract, error) {
	var contract models.Contract
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := loadLive(tx, &contract, id, "Contract not found"); err != nil {
			return err
		}

		start := contract.StartDate
		end := contract.EndDate
		if req.StartDate != nil {
			start = *req.StartDate
		}
		if req.EndDate != nil {
			end = *req.EndDate
		}
		period := validation.NewPeriod(start, end)
		if err := period.CheckOrder(); err != nil {
			return err
		}

		// Shrinking the contract must not strand existing rate cards
		// outside the new bounds. The archived filter is qualified because
		// the join brings in a second is_archived column.
		var cards []models.RateCard
		if err := tx.Where("rate_cards.is_archived = ?", false).
			Joins("JOIN subscriptions ON subscriptions.id = rate_cards.subscription_id").
			Where("subscriptions.contract_id = ?", contract.ID).
			Find(&cards).Error; err != nil {
			return err
		}
		for _, card := range cards {
			cardPeriod := validation.NewPeriod(card.StartDate, card.EndDate)
			if err := cardPeriod.CheckWithin(period); err != nil {
				return err
			}
		}

		contract.StartDate = period.Start
		contract.EndDate = period.End
		if req.ContractName != nil {
			contract.ContractName = *req.ContractName
		}
		if err := models.Validate(&contract); err != nil {
			return apperr.New(apperr.KindInvalidValue, err.Error())
		}
		contract.UpdatedBy = &actorID
		contract.UpdatedAt = s.now().UTC()
		return tx.Save(&contract).Error
	})
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (s *ContractService) Archive(actorID, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var contract models.Contract
		if err := loadLive(tx, &contract, id, "Contract not found"); err != nil {
			return err
		}
		return tx.Model(&contract).Updates(map[string]interface{}{
			"is_archived": true,
			"updated_by":  actorID,
			"updated_at":  s.now().UTC(),
		}).Error
	})
}

func (s *ContractService) GetByID(id uuid.UUID) (*models.Contract, error) {
	var contract models.Contract
	err := s.db.Scopes(models.NotArchived).
		Preload("Subscriptions", "is_archived = ?", false).
		First(&contract, "id = ?", id).Error
	if err != nil {
		return nil, liveErr(err, "Contract not found")
	}
	return &contract, nil
}

func (s *ContractService) List() ([]models.Contract, error) {
	var contracts []models.Contract
	err := s.db.Scopes(models.NotArchived).Order("start_date").Find(&contracts).Error
	return contracts, err
}

func (s *ContractService) ListSubscriptions(id uuid.UUID) ([]models.Subscription, error) {
	var contract models.Contract
	if err := loadLive(s.db, &contract, id, "Contract not found"); err != nil {
		return nil, err
	}
	var subs []models.Subscription
	err := s.db.Scopes(models.NotArchived).Where("contract_id = ?", contract.ID).Find(&subs).Error
	return subs, err
}
