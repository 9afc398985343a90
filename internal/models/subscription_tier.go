package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnlimitedCalls is the MaxCalls sentinel for an unbounded top tier.
const UnlimitedCalls = -1

// SubscriptionTier is a usage band [MinCalls, MaxCalls) priced per call.
type SubscriptionTier struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	RateCardID uuid.UUID       `gorm:"type:uuid;not null;index" json:"rate_card_id"`
	MinCalls   int             `gorm:"not null" json:"min_calls"`
	MaxCalls   int             `gorm:"not null" json:"max_calls"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,4);not null" json:"unit_price"`
	Audit
	Operator
	RateCard RateCard `gorm:"foreignKey:RateCardID" json:"-"`
}
