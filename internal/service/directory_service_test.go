package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"inquiry-console/internal/model"
)

type stubDirectoryStore struct {
	rows  []model.UserInquiryRow
	total int64
	err   error
}

func (s *stubDirectoryStore) UsersInquiries(ctx context.Context, filter model.InquiryFilter) ([]model.UserInquiryRow, int64, error) {
	return s.rows, s.total, s.err
}

func (s *stubDirectoryStore) UserDetail(ctx context.Context, userID uuid.UUID) (model.UserDetail, error) {
	if s.err != nil {
		return model.UserDetail{}, s.err
	}
	return model.UserDetail{}, nil
}

func (s *stubDirectoryStore) InquiryDetail(ctx context.Context, inquiryID uuid.UUID) (model.InquiryDetail, error) {
	if s.err != nil {
		return model.InquiryDetail{}, s.err
	}
	return model.InquiryDetail{}, nil
}

func TestGetUsersInquiries_Pagination(t *testing.T) {
	store := &stubDirectoryStore{
		rows:  []model.UserInquiryRow{{UserName: "Dana"}},
		total: 45,
	}
	svc := NewDirectoryService(store)

	page, err := svc.GetUsersInquiries(context.Background(), model.InquiryFilter{Page: 2, Limit: 20})
	require.NoError(t, err)

	assert.Equal(t, 2, page.Pagination.CurrentPage)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Equal(t, int64(45), page.Pagination.TotalCount)
	assert.True(t, page.Pagination.HasNext)
	assert.True(t, page.Pagination.HasPrev)
}

func TestGetUsersInquiries_EmptyPageIsNotNil(t *testing.T) {
	svc := NewDirectoryService(&stubDirectoryStore{})

	page, err := svc.GetUsersInquiries(context.Background(), model.InquiryFilter{Page: 1, Limit: 20})
	require.NoError(t, err)

	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Zero(t, page.Pagination.TotalPages)
}

func TestGetUser_NotFound(t *testing.T) {
	svc := NewDirectoryService(&stubDirectoryStore{err: gorm.ErrRecordNotFound})

	_, err := svc.GetUser(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetInquiry_NotFound(t *testing.T) {
	svc := NewDirectoryService(&stubDirectoryStore{err: gorm.ErrRecordNotFound})

	_, err := svc.GetInquiry(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetUser_OtherErrorsPassThrough(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewDirectoryService(&stubDirectoryStore{err: boom})

	_, err := svc.GetUser(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, boom))
}
