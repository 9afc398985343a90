package services

import (
	"errors"

	"github.com/contractflow/contractflow/internal/apperr"
	"github.com/contractflow/contractflow/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntityLookup resolves foreign key references to live (non-archived)
// entities. Validators depend on this interface instead of the concrete
// store so parent checks stay decoupled from the entity packages.
type EntityLookup interface {
	SubscriptionByID(id uuid.UUID) (*models.Subscription, error)
	ContractByID(id uuid.UUID) (*models.Contract, error)
	RateCardByID(id uuid.UUID) (*models.RateCard, error)
}

type gormLookup struct {
	db *gorm.DB
}

// NewLookup returns an EntityLookup over the given DB handle. Passing a
// transaction handle scopes resolution to that transaction's snapshot.
func NewLookup(db *gorm.DB) EntityLookup {
	return &gormLookup{db: db}
}

func (l *gormLookup) SubscriptionByID(id uuid.UUID) (*models.Subscription, error) {
	var sub models.Subscription
	if err := l.db.Scopes(models.NotArchived).First(&sub, "id = ?", id).Error; err != nil {
		return nil, lookupErr(err, "Subscription does not exist")
	}
	return &sub, nil
}

func (l *gormLookup) ContractByID(id uuid.UUID) (*models.Contract, error) {
	var contract models.Contract
	if err := l.db.Scopes(models.NotArchived).First(&contract, "id = ?", id).Error; err != nil {
		return nil, lookupErr(err, "Contract does not exist")
	}
	return &contract, nil
}

func (l *gormLookup) RateCardByID(id uuid.UUID) (*models.RateCard, error) {
	var card models.RateCard
	if err := l.db.Scopes(models.NotArchived).First(&card, "id = ?", id).Error; err != nil {
		return nil, lookupErr(err, "Rate card does not exist")
	}
	return &card, nil
}

func lookupErr(err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.KindNotFound, notFoundMsg)
	}
	return err
}
