package models

import (
	"github.com/google/uuid"
)

// RateCard is a time-bounded pricing configuration for a subscription.
// Among non-archived cards of one subscription periods never overlap, and
// every period lies inside the parent contract's period.
type RateCard struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubscriptionID uuid.UUID `gorm:"type:uuid;not null;index" json:"subscription_id"`
	Name           *string   `gorm:"size:255" json:"name,omitempty"`
	Version        *string   `gorm:"size:64" json:"version,omitempty"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	Duration
	Audit
	Operator
	Subscription Subscription       `gorm:"foreignKey:SubscriptionID" json:"-"`
	Tiers        []SubscriptionTier `gorm:"foreignKey:RateCardID" json:"tiers,omitempty"`
}
