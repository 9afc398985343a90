package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateContractRequest struct {
	ClientID     uuid.UUID `json:"client_id"`
	ContractName string    `json:"contract_name"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

type UpdateContractRequest struct {
	ContractName *string    `json:"contract_name"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

type CreateSubscriptionRequest struct {
	ContractID  uuid.UUID `json:"contract_id"`
	ProductID   uuid.UUID `json:"product_id"`
	PricingType string    `json:"pricing_type"`
	Strategy    string    `json:"strategy"`
}

type UpdateSubscriptionRequest struct {
	PricingType *string `json:"pricing_type"`
	Strategy    *string `json:"strategy"`
}
