package models

import (
	"github.com/google/uuid"
)

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// User is an employee of the company with access to the system.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email" validate:"required,email"`
	PasswordHash string    `gorm:"size:256;not null" json:"-"`
	FullName     string    `gorm:"size:100;not null" json:"full_name" validate:"required,max=100"`
	Role         string    `gorm:"size:50;not null;default:'employee'" json:"role" validate:"oneof=employee admin"`
	Audit
	Operator
}
