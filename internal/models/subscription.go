package models

import (
	"github.com/google/uuid"
)

const (
	PricingFixed    = "Fixed"
	PricingVariable = "Variable"

	StrategyPick  = "Pick"
	StrategyFill  = "Fill"
	StrategyFlat  = "Flat"
	StrategyFixed = "Fixed"
)

// Subscription links a contract to a product and fixes how usage is priced.
// Fixed pricing pairs only with the Fixed strategy; variable pricing with
// Pick, Fill or Flat.
type Subscription struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ContractID  uuid.UUID `gorm:"type:uuid;not null;index" json:"contract_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	PricingType string    `gorm:"size:20;not null" json:"pricing_type" validate:"oneof=Fixed Variable"`
	Strategy    string    `gorm:"size:20;not null" json:"strategy" validate:"oneof=Pick Fill Flat Fixed"`
	Audit
	Operator
	Contract  Contract   `gorm:"foreignKey:ContractID" json:"-"`
	Product   Product    `gorm:"foreignKey:ProductID" json:"-"`
	RateCards []RateCard `gorm:"foreignKey:SubscriptionID" json:"-"`
}
