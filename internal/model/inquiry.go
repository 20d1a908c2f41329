package model

import (
	"time"

	"github.com/google/uuid"
)

type InquiryType string

const (
	InquiryTypeTechnical      InquiryType = "technical"
	InquiryTypeGeneral        InquiryType = "general"
	InquiryTypePricing        InquiryType = "pricing"
	InquiryTypeFeatureRequest InquiryType = "feature_request"
	InquiryTypeBugReport      InquiryType = "bug_report"
)

type InquiryStatus string

const (
	InquiryStatusPending    InquiryStatus = "pending"
	InquiryStatusProcessing InquiryStatus = "processing"
	InquiryStatusResolved   InquiryStatus = "resolved"
	InquiryStatusClosed     InquiryStatus = "closed"
)

type InquiryPriority string

const (
	InquiryPriorityLow    InquiryPriority = "low"
	InquiryPriorityMedium InquiryPriority = "medium"
	InquiryPriorityHigh   InquiryPriority = "high"
	InquiryPriorityUrgent InquiryPriority = "urgent"
)

var inquiryTypes = map[InquiryType]bool{
	InquiryTypeTechnical:      true,
	InquiryTypeGeneral:        true,
	InquiryTypePricing:        true,
	InquiryTypeFeatureRequest: true,
	InquiryTypeBugReport:      true,
}

var inquiryStatuses = map[InquiryStatus]bool{
	InquiryStatusPending:    true,
	InquiryStatusProcessing: true,
	InquiryStatusResolved:   true,
	InquiryStatusClosed:     true,
}

func (t InquiryType) Valid() bool   { return inquiryTypes[t] }
func (s InquiryStatus) Valid() bool { return inquiryStatuses[s] }

type Inquiry struct {
	ID         uuid.UUID       `gorm:"column:id;primaryKey" json:"id"`
	UserID     uuid.UUID       `gorm:"column:user_id" json:"userId"`
	Type       InquiryType     `gorm:"column:type" json:"type"`
	Title      string          `gorm:"column:title" json:"title"`
	Content    string          `gorm:"column:content" json:"content"`
	Status     InquiryStatus   `gorm:"column:status" json:"status"`
	Priority   InquiryPriority `gorm:"column:priority" json:"priority"`
	CreatedAt  time.Time       `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt  time.Time       `gorm:"column:updated_at" json:"updatedAt"`
	ResolvedAt *time.Time      `gorm:"column:resolved_at" json:"resolvedAt"`
}

func (Inquiry) TableName() string { return "inquiries" }
