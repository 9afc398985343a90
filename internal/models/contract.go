package models

import (
	"github.com/google/uuid"
)

// Contract binds a client to the company for a fixed period. Rate card
// periods of its subscriptions must fall inside [StartDate, EndDate).
type Contract struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID     uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	ContractName string    `gorm:"size:100;not null" json:"contract_name" validate:"required,max=100"`
	Duration
	Audit
	Operator
	Client        Client         `gorm:"foreignKey:ClientID" json:"-"`
	Subscriptions []Subscription `gorm:"foreignKey:ContractID" json:"subscriptions,omitempty"`
}
