package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inquiry-console/internal/model"
)

// applyInquiryFilter appends the composed predicate as zero-or-more AND
// clauses. An empty filter degenerates to match-all. Queries are expected to
// expose the inquiry table as "i" and the user table as "u". The same
// composed predicate must back every aggregate of one response so that the
// breakdown sums and the total agree.
func applyInquiryFilter(query *gorm.DB, filter model.InquiryFilter, matchedUserIDs []uuid.UUID) *gorm.DB {
	if filter.DateFrom != nil {
		query = query.Where("i.created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("i.created_at <= ?", *filter.DateTo)
	}
	if len(filter.Types) > 0 {
		query = query.Where("i.type IN ?", filter.Types)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("i.status IN ?", filter.Statuses)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		if len(matchedUserIDs) > 0 {
			query = query.Where(
				"(u.name ILIKE ? OR u.email ILIKE ? OR u.company_name ILIKE ? OR i.title ILIKE ? OR i.content ILIKE ? OR i.user_id IN ?)",
				pattern, pattern, pattern, pattern, pattern, matchedUserIDs)
		} else {
			// Zero users matched the term: fall back to text-only matching
			// instead of emitting an always-false membership clause.
			query = query.Where(
				"(u.name ILIKE ? OR u.email ILIKE ? OR u.company_name ILIKE ? OR i.title ILIKE ? OR i.content ILIKE ?)",
				pattern, pattern, pattern, pattern, pattern)
		}
	}
	return query
}

// searchUserIDs is the first phase of the free-text search: inquiries owned
// by a user whose name, email or company matches the term must surface even
// when the inquiry's own text does not.
func searchUserIDs(ctx context.Context, db *gorm.DB, term string) ([]uuid.UUID, error) {
	if term == "" {
		return nil, nil
	}
	pattern := "%" + term + "%"
	var ids []uuid.UUID
	err := db.WithContext(ctx).
		Table("users").
		Where("name ILIKE ? OR email ILIKE ? OR company_name ILIKE ?", pattern, pattern, pattern).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func buildDateTrunc(groupBy model.GroupBy) string {
	switch groupBy {
	case model.GroupByWeek:
		return "week"
	case model.GroupByMonth:
		return "month"
	default:
		return "day"
	}
}
