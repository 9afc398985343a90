package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Audit carries the soft-archive flag and timestamps shared by every entity.
// Archived rows are never deleted; default views filter them out.
type Audit struct {
	IsArchived bool      `gorm:"not null;default:false" json:"is_archived"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

// Operator records the acting user for create/update. Nil only for the
// bootstrap first user, which has nobody to attribute to.
type Operator struct {
	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	UpdatedBy *uuid.UUID `gorm:"type:uuid" json:"updated_by,omitempty"`
}

// Duration is a half-open [start_date, end_date) validity period.
type Duration struct {
	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`
}

var validate = validator.New()

// Validate runs the struct-tag validation rules of an entity.
func Validate(entity interface{}) error {
	return validate.Struct(entity)
}
