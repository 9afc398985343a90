package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRateCardRequest struct {
	SubscriptionID uuid.UUID `json:"subscription_id"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Name           *string   `json:"name"`
	Version        *string   `json:"version"`
	IsActive       *bool     `json:"is_active"`
}

// UpdateRateCardRequest carries a partial update; any omitted date is read
// from the stored record before the combined range is re-validated.
type UpdateRateCardRequest struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Name      *string    `json:"name"`
	Version   *string    `json:"version"`
	IsActive  *bool      `json:"is_active"`
}

type CreateTierRequest struct {
	RateCardID uuid.UUID       `json:"rate_card_id"`
	MinCalls   int             `json:"min_calls"`
	MaxCalls   int             `json:"max_calls"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

type UpdateTierRequest struct {
	MinCalls  *int             `json:"min_calls"`
	MaxCalls  *int             `json:"max_calls"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}
