package model

import (
	"time"

	"github.com/google/uuid"
)

type EmailStatus string

const (
	EmailStatusPending EmailStatus = "pending"
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusFailed  EmailStatus = "failed"
)

var emailCategories = map[string]bool{
	"general":     true,
	"technical":   true,
	"pricing":     true,
	"partnership": true,
	"welcome":     true,
	"follow-up":   true,
}

func ValidEmailCategory(category string) bool { return emailCategories[category] }

type EmailTemplate struct {
	ID        uuid.UUID `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	Subject   string    `gorm:"column:subject" json:"subject"`
	Content   string    `gorm:"column:content" json:"content"`
	Category  string    `gorm:"column:category" json:"category"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (EmailTemplate) TableName() string { return "email_templates" }

type EmailSendHistory struct {
	ID             uuid.UUID   `gorm:"column:id;primaryKey" json:"id"`
	RecipientEmail string      `gorm:"column:recipient_email" json:"recipientEmail"`
	RecipientName  string      `gorm:"column:recipient_name" json:"recipientName"`
	TemplateID     *uuid.UUID  `gorm:"column:template_id" json:"templateId"`
	TemplateName   string      `gorm:"column:template_name" json:"templateName"`
	Subject        string      `gorm:"column:subject" json:"subject"`
	Status         EmailStatus `gorm:"column:status" json:"status"`
	ErrorMessage   *string     `gorm:"column:error_message" json:"errorMessage"`
	SentAt         time.Time   `gorm:"column:sent_at" json:"sentAt"`
}

func (EmailSendHistory) TableName() string { return "email_send_history" }

type EmailSendRequest struct {
	RecipientIDs  []uuid.UUID `json:"recipientIds"`
	TemplateID    uuid.UUID   `json:"templateId"`
	CustomSubject string      `json:"customSubject"`
	CustomContent string      `json:"customContent"`
}
