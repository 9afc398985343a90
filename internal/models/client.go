package models

import (
	"github.com/google/uuid"
)

// Client is a company that purchases API contracts.
type Client struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyName string     `gorm:"size:100;not null;uniqueIndex" json:"company_name" validate:"required,max=100"`
	Email       string     `gorm:"size:255;not null;uniqueIndex" json:"email" validate:"required,email"`
	PhoneNumber string     `gorm:"size:20;not null" json:"phone_number" validate:"required,max=20"`
	Address     string     `gorm:"size:200;not null" json:"address" validate:"required,max=200"`
	Audit
	Operator
	Contracts []Contract `gorm:"foreignKey:ClientID" json:"-"`
}
