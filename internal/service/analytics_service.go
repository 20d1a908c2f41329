package service

import (
	"context"
	"time"

	"inquiry-console/internal/model"
)

type AnalyticsStore interface {
	InquiryAnalytics(ctx context.Context, filter model.InquiryFilter) (model.InquiryAnalytics, error)
	DashboardMetrics(ctx context.Context, now time.Time) (model.DashboardMetrics, error)
}

type AnalyticsService struct {
	store AnalyticsStore
	now   func() time.Time
}

func NewAnalyticsService(store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{store: store, now: time.Now}
}

func (s *AnalyticsService) GetDashboard(ctx context.Context) (model.DashboardMetrics, error) {
	return s.store.DashboardMetrics(ctx, s.now())
}

func (s *AnalyticsService) GetInquiryAnalytics(ctx context.Context, filter model.InquiryFilter) (model.InquiryAnalytics, error) {
	return s.store.InquiryAnalytics(ctx, filter)
}
