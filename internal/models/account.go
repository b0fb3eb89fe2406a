package models

import (
	"time"

	"gorm.io/datatypes"
)

// Role is the account role. Exactly two values exist; anything else
// stored in the column is treated as RoleUser on read.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Account identifies a user by email. Email is the lookup key
// everywhere; lookups are case-sensitive.
type Account struct {
	Email     string         `gorm:"primaryKey;size:255" json:"email"`
	Role      Role           `gorm:"size:20;not null;default:'user'" json:"role"`
	Name      string         `gorm:"size:255" json:"name,omitempty"`
	Profile   datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"profile,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// EffectiveRole normalizes a missing or unknown role column value.
func (a *Account) EffectiveRole() Role {
	if a == nil || a.Role != RoleAdmin {
		return RoleUser
	}
	return RoleAdmin
}

// IsAdmin reports whether the account holds the admin role.
func (a *Account) IsAdmin() bool {
	return a.EffectiveRole() == RoleAdmin
}
