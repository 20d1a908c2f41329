package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"

	"inquiry-console/internal/model"
)

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// InquiryAnalytics runs the total count, the categorical breakdowns and the
// time series for one response inside a single read-only transaction, all
// against the same composed predicate.
func (r *AnalyticsRepository) InquiryAnalytics(ctx context.Context, filter model.InquiryFilter) (model.InquiryAnalytics, error) {
	var result model.InquiryAnalytics

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		matched, err := searchUserIDs(ctx, tx, filter.Search)
		if err != nil {
			return err
		}

		base := func() *gorm.DB {
			query := tx.Table("inquiries i").
				Joins("LEFT JOIN users u ON u.id = i.user_id")
			return applyInquiryFilter(query, filter, matched)
		}

		if err := base().Count(&result.TotalCount).Error; err != nil {
			return err
		}

		if err := base().
			Select("i.type AS type, COUNT(*) AS count").
			Group("i.type").
			Order("count DESC").
			Scan(&result.ByType).Error; err != nil {
			return err
		}

		if err := base().
			Select("i.status AS status, COUNT(*) AS count").
			Group("i.status").
			Order("count DESC").
			Scan(&result.ByStatus).Error; err != nil {
			return err
		}

		// One truncation expression drives both GROUP BY and ORDER BY so the
		// sort order can never diverge from bucket identity. The granularity
		// comes from a closed enum, never from raw client input.
		trunc := fmt.Sprintf("DATE_TRUNC('%s', i.created_at)", buildDateTrunc(filter.GroupBy))
		if err := base().
			Select(trunc + " AS date, COUNT(*) AS count").
			Group("date").
			Order("date ASC").
			Scan(&result.TimeSeriesData).Error; err != nil {
			return err
		}

		return nil
	}, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return model.InquiryAnalytics{}, err
	}

	return result, nil
}

// DashboardMetrics aggregates user and inquiry statistics plus the trailing
// seven-day trends for the admin landing page.
func (r *AnalyticsRepository) DashboardMetrics(ctx context.Context, now time.Time) (model.DashboardMetrics, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)

	var metrics model.DashboardMetrics

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("users u").
			Select(`COUNT(*) AS total,
				COUNT(CASE WHEN u.created_at >= ? THEN 1 END) AS new_this_month,
				COUNT(CASE WHEN u.last_login_at >= ? THEN 1 END) AS active_this_month`,
				monthStart, monthStart).
			Scan(&metrics.Users).Error; err != nil {
			return err
		}

		if err := tx.Table("inquiries i").
			Select(`COUNT(*) AS total,
				COUNT(CASE WHEN i.status = 'pending' THEN 1 END) AS pending,
				COUNT(CASE WHEN i.status = 'resolved' THEN 1 END) AS resolved`).
			Scan(&metrics.Inquiries).Error; err != nil {
			return err
		}

		if err := tx.Table("inquiries i").
			Select("i.type AS type, COUNT(*) AS count").
			Group("i.type").
			Order("count DESC").
			Scan(&metrics.Inquiries.ByType).Error; err != nil {
			return err
		}

		if err := tx.Table("inquiries i").
			Select("i.status AS status, COUNT(*) AS count").
			Group("i.status").
			Order("count DESC").
			Scan(&metrics.Inquiries.ByStatus).Error; err != nil {
			return err
		}

		if err := tx.Table("inquiries i").
			Select("DATE_TRUNC('day', i.created_at) AS date, COUNT(*) AS count").
			Where("i.created_at >= ?", weekAgo).
			Group("date").
			Order("date ASC").
			Scan(&metrics.Trends.InquiriesByDay).Error; err != nil {
			return err
		}

		if err := tx.Table("users u").
			Select("DATE_TRUNC('day', u.created_at) AS date, COUNT(*) AS count").
			Where("u.created_at >= ?", weekAgo).
			Group("date").
			Order("date ASC").
			Scan(&metrics.Trends.UsersByDay).Error; err != nil {
			return err
		}

		return nil
	}, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return model.DashboardMetrics{}, err
	}

	return metrics, nil
}
