package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inquiry-console/internal/model"
)

var sortColumns = map[model.SortColumn]string{
	model.SortByUserName:         "u.name",
	model.SortByCompanyName:      "u.company_name",
	model.SortByInquiryCreatedAt: "i.created_at",
}

type DirectoryRepository struct {
	db *gorm.DB
}

func NewDirectoryRepository(db *gorm.DB) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

// UsersInquiries reads one page of the User⋈Inquiry left join. The per-user
// counters come from a grouped subquery over each user's complete inquiry
// set, joined in before the row-level predicate runs, so they are not
// narrowed by the request filter. That is deliberate: the row filter selects
// which joined rows appear, the counters describe the whole user.
func (r *DirectoryRepository) UsersInquiries(ctx context.Context, filter model.InquiryFilter) ([]model.UserInquiryRow, int64, error) {
	matched, err := searchUserIDs(ctx, r.db, filter.Search)
	if err != nil {
		return nil, 0, err
	}

	stats := r.db.WithContext(ctx).
		Table("inquiries").
		Select(`user_id,
			COUNT(*) AS total_inquiries,
			COUNT(CASE WHEN status = 'resolved' THEN 1 END) AS resolved_inquiries`).
		Group("user_id")

	query := r.db.WithContext(ctx).
		Table("users u").
		Select(`u.id AS user_id,
			u.name AS user_name,
			u.email AS user_email,
			u.company_name,
			u.created_at AS user_registered_at,
			u.last_login_at,
			i.id AS inquiry_id,
			i.type AS inquiry_type,
			i.title AS inquiry_title,
			i.status AS inquiry_status,
			i.priority,
			i.created_at AS inquiry_created_at,
			i.updated_at AS inquiry_updated_at,
			COALESCE(st.total_inquiries, 0) AS total_inquiries,
			COALESCE(st.resolved_inquiries, 0) AS resolved_inquiries`).
		Joins("LEFT JOIN inquiries i ON i.user_id = u.id").
		Joins("LEFT JOIN (?) AS st ON st.user_id = u.id", stats)

	query = applyInquiryFilter(query, filter, matched)

	direction := "DESC"
	if filter.SortOrder == model.SortAsc {
		direction = "ASC"
	}
	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "i.created_at"
	}
	// Secondary sort on the inquiry id keeps pagination stable across pages
	// when the primary column ties.
	query = query.
		Order(fmt.Sprintf("%s %s", column, direction)).
		Order("i.id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset())

	var rows []model.UserInquiryRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	countQuery := r.db.WithContext(ctx).
		Table("users u").
		Joins("LEFT JOIN inquiries i ON i.user_id = u.id")
	countQuery = applyInquiryFilter(countQuery, filter, matched)

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *DirectoryRepository) UserDetail(ctx context.Context, userID uuid.UUID) (model.UserDetail, error) {
	var detail model.UserDetail

	if err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		Take(&detail.User).Error; err != nil {
		return model.UserDetail{}, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&detail.Inquiries).Error; err != nil {
		return model.UserDetail{}, err
	}

	if err := r.db.WithContext(ctx).
		Table("inquiries").
		Select(`COUNT(*) AS total_inquiries,
			COUNT(CASE WHEN status = 'resolved' THEN 1 END) AS resolved_inquiries,
			COUNT(CASE WHEN status = 'pending' THEN 1 END) AS pending_inquiries`).
		Where("user_id = ?", userID).
		Scan(&detail.Stats).Error; err != nil {
		return model.UserDetail{}, err
	}

	return detail, nil
}

func (r *DirectoryRepository) InquiryDetail(ctx context.Context, inquiryID uuid.UUID) (model.InquiryDetail, error) {
	var detail model.InquiryDetail

	if err := r.db.WithContext(ctx).
		Where("id = ?", inquiryID).
		Take(&detail.Inquiry).Error; err != nil {
		return model.InquiryDetail{}, err
	}

	var owner model.User
	err := r.db.WithContext(ctx).
		Where("id = ?", detail.Inquiry.UserID).
		Take(&owner).Error
	switch {
	case err == nil:
		detail.User = &owner
	case errors.Is(err, gorm.ErrRecordNotFound):
		// A dangling user reference should not fail the lookup; the inquiry
		// is returned with an anonymous owner.
	default:
		return model.InquiryDetail{}, err
	}

	return detail, nil
}

func (r *DirectoryRepository) UsersByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []model.User
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
