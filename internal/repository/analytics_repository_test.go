package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inquiry-console/internal/model"
)

func TestInquiryAnalytics_EmptyFilter(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAnalyticsRepository(db)

	day1 := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM inquiries i LEFT JOIN users u`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`SELECT i\.type AS type, COUNT\(\*\) AS count FROM inquiries i LEFT JOIN users u .* GROUP BY "i"\."type" ORDER BY count DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"type", "count"}).
			AddRow("technical", 3).
			AddRow("pricing", 2))
	mock.ExpectQuery(`SELECT i\.status AS status, COUNT\(\*\) AS count FROM inquiries i LEFT JOIN users u .* GROUP BY "i"\."status" ORDER BY count DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("pending", 4).
			AddRow("resolved", 1))
	mock.ExpectQuery(`SELECT DATE_TRUNC\('day', i\.created_at\) AS date, COUNT\(\*\) AS count FROM inquiries i LEFT JOIN users u .* GROUP BY "date" ORDER BY date ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"date", "count"}).
			AddRow(day1, 2).
			AddRow(day2, 3))
	mock.ExpectCommit()

	filter := model.InquiryFilter{GroupBy: model.GroupByDay}
	result, err := repo.InquiryAnalytics(context.Background(), filter)
	require.NoError(t, err)

	assert.Equal(t, int64(5), result.TotalCount)
	require.Len(t, result.ByType, 2)
	assert.Equal(t, model.InquiryTypeTechnical, result.ByType[0].Type)
	assert.Equal(t, int64(3), result.ByType[0].Count)
	require.Len(t, result.ByStatus, 2)
	assert.Equal(t, model.InquiryStatusPending, result.ByStatus[0].Status)

	// Buckets arrive ascending and a breakdown never disagrees with the total.
	require.Len(t, result.TimeSeriesData, 2)
	assert.True(t, result.TimeSeriesData[0].Date.Before(result.TimeSeriesData[1].Date))
	var sum int64
	for _, b := range result.ByType {
		sum += b.Count
	}
	assert.Equal(t, result.TotalCount, sum)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInquiryAnalytics_WeekGrouping(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM inquiries i`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`GROUP BY "i"\."type"`).
		WillReturnRows(sqlmock.NewRows([]string{"type", "count"}))
	mock.ExpectQuery(`GROUP BY "i"\."status"`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}))
	mock.ExpectQuery(`DATE_TRUNC\('week', i\.created_at\)`).
		WillReturnRows(sqlmock.NewRows([]string{"date", "count"}))
	mock.ExpectCommit()

	filter := model.InquiryFilter{GroupBy: model.GroupByWeek}
	result, err := repo.InquiryAnalytics(context.Background(), filter)
	require.NoError(t, err)

	assert.Zero(t, result.TotalCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInquiryAnalytics_SearchResolvesUsersFirst(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAnalyticsRepository(db)

	userID := "3f6f2a0e-8f2f-4e62-b0cd-111111111111"

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "users" WHERE name ILIKE .* OR email ILIKE .* OR company_name ILIKE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(userID))
	mock.ExpectQuery(`i\.user_id IN \(\$\d+\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`GROUP BY "i"\."type"`).
		WillReturnRows(sqlmock.NewRows([]string{"type", "count"}).AddRow("general", 2))
	mock.ExpectQuery(`GROUP BY "i"\."status"`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("pending", 2))
	mock.ExpectQuery(`GROUP BY "date" ORDER BY date ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"date", "count"}))
	mock.ExpectCommit()

	filter := model.InquiryFilter{GroupBy: model.GroupByDay, Search: "acme"}
	result, err := repo.InquiryAnalytics(context.Background(), filter)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.TotalCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardMetrics(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAnalyticsRepository(db)

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM users u`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "new_this_month", "active_this_month"}).
			AddRow(100, 12, 30))
	mock.ExpectQuery(`FROM inquiries i`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "pending", "resolved"}).
			AddRow(250, 40, 180))
	mock.ExpectQuery(`GROUP BY "i"\."type"`).
		WillReturnRows(sqlmock.NewRows([]string{"type", "count"}).AddRow("technical", 120))
	mock.ExpectQuery(`GROUP BY "i"\."status"`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("resolved", 180))
	mock.ExpectQuery(`DATE_TRUNC\('day', i\.created_at\)`).
		WillReturnRows(sqlmock.NewRows([]string{"date", "count"}).AddRow(now.AddDate(0, 0, -1), 6))
	mock.ExpectQuery(`DATE_TRUNC\('day', u\.created_at\)`).
		WillReturnRows(sqlmock.NewRows([]string{"date", "count"}).AddRow(now.AddDate(0, 0, -2), 3))
	mock.ExpectCommit()

	metrics, err := repo.DashboardMetrics(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, int64(100), metrics.Users.Total)
	assert.Equal(t, int64(12), metrics.Users.NewThisMonth)
	assert.Equal(t, int64(30), metrics.Users.ActiveThisMonth)
	assert.Equal(t, int64(250), metrics.Inquiries.Total)
	assert.Equal(t, int64(40), metrics.Inquiries.Pending)
	assert.Equal(t, int64(180), metrics.Inquiries.Resolved)
	require.Len(t, metrics.Trends.InquiriesByDay, 1)
	require.Len(t, metrics.Trends.UsersByDay, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}
