package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                 uuid.UUID  `gorm:"column:id;primaryKey" json:"id"`
	Email              string     `gorm:"column:email" json:"email"`
	Name               string     `gorm:"column:name" json:"name"`
	CompanyName        *string    `gorm:"column:company_name" json:"companyName"`
	Phone              *string    `gorm:"column:phone" json:"phone"`
	RegistrationSource *string    `gorm:"column:registration_source" json:"registrationSource"`
	IsVerified         bool       `gorm:"column:is_verified" json:"isVerified"`
	CreatedAt          time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt          time.Time  `gorm:"column:updated_at" json:"updatedAt"`
	LastLoginAt        *time.Time `gorm:"column:last_login_at" json:"lastLoginAt"`
}

func (User) TableName() string { return "users" }
