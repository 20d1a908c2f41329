package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// Principal is the authenticated identity plus role claim resolved from the
// session token before any endpoint logic runs.
type Principal struct {
	AccountID uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

type AdminAccount struct {
	ID           uuid.UUID  `gorm:"column:id;primaryKey" json:"id"`
	Email        string     `gorm:"column:email" json:"email"`
	Name         string     `gorm:"column:name" json:"name"`
	PasswordHash string     `gorm:"column:password_hash" json:"-"`
	Role         string     `gorm:"column:role" json:"role"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at" json:"lastLoginAt"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"createdAt"`
}

func (AdminAccount) TableName() string { return "admin_accounts" }

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
