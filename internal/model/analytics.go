package model

import (
	"time"

	"github.com/google/uuid"
)

type TypeBucket struct {
	Type  InquiryType `json:"type"`
	Count int64       `json:"count"`
}

type StatusBucket struct {
	Status InquiryStatus `json:"status"`
	Count  int64         `json:"count"`
}

type TimeSeriesPoint struct {
	Date  time.Time `json:"date"`
	Count int64     `json:"count"`
}

type InquiryAnalytics struct {
	TotalCount     int64             `json:"totalCount"`
	ByType         []TypeBucket      `json:"byType"`
	ByStatus       []StatusBucket    `json:"byStatus"`
	TimeSeriesData []TimeSeriesPoint `json:"timeSeriesData"`
}

type UserStats struct {
	Total           int64 `json:"total"`
	NewThisMonth    int64 `json:"newThisMonth"`
	ActiveThisMonth int64 `json:"activeThisMonth"`
}

type InquiryStats struct {
	Total    int64          `json:"total"`
	Pending  int64          `json:"pending"`
	Resolved int64          `json:"resolved"`
	ByType   []TypeBucket   `json:"byType"`
	ByStatus []StatusBucket `json:"byStatus"`
}

type DashboardTrends struct {
	InquiriesByDay []TimeSeriesPoint `json:"inquiriesByDay"`
	UsersByDay     []TimeSeriesPoint `json:"usersByDay"`
}

type DashboardMetrics struct {
	Users     UserStats       `json:"users"`
	Inquiries InquiryStats    `json:"inquiries"`
	Trends    DashboardTrends `json:"trends"`
}

// UserInquiryRow is one row of the paginated User⋈Inquiry join. Inquiry
// columns are pointers because the join is left-outer: a user without
// inquiries still appears. The per-user counters cover the user's complete
// inquiry set, not just the rows matching the request filter.
type UserInquiryRow struct {
	UserID            uuid.UUID        `json:"user_id"`
	UserName          string           `json:"user_name"`
	UserEmail         string           `json:"user_email"`
	CompanyName       *string          `json:"company_name"`
	UserRegisteredAt  time.Time        `json:"user_registered_at"`
	LastLoginAt       *time.Time       `json:"last_login_at"`
	InquiryID         *uuid.UUID       `json:"inquiry_id"`
	InquiryType       *InquiryType     `json:"inquiry_type"`
	InquiryTitle      *string          `json:"inquiry_title"`
	InquiryStatus     *InquiryStatus   `json:"inquiry_status"`
	Priority          *InquiryPriority `json:"priority"`
	InquiryCreatedAt  *time.Time       `json:"inquiry_created_at"`
	InquiryUpdatedAt  *time.Time       `json:"inquiry_updated_at"`
	TotalInquiries    int64            `json:"total_inquiries"`
	ResolvedInquiries int64            `json:"resolved_inquiries"`
}

type UserInquiryStats struct {
	TotalInquiries    int64 `json:"totalInquiries"`
	ResolvedInquiries int64 `json:"resolvedInquiries"`
	PendingInquiries  int64 `json:"pendingInquiries"`
}

type UserDetail struct {
	User      User             `json:"user"`
	Inquiries []Inquiry        `json:"inquiries"`
	Stats     UserInquiryStats `json:"stats"`
}

type InquiryDetail struct {
	Inquiry Inquiry `json:"inquiry"`
	User    *User   `json:"user"`
}
