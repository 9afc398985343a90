package models

import (
	"github.com/google/uuid"
)

// Product is an API product offered by the company.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	APIName     string    `gorm:"size:100;not null;uniqueIndex" json:"api_name" validate:"required,max=100"`
	Description string    `gorm:"size:1000;not null" json:"description" validate:"required,max=1000"`
	Audit
	Operator
	Subscriptions []Subscription `gorm:"foreignKey:ProductID" json:"-"`
}
