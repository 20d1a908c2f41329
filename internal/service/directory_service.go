package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inquiry-console/internal/model"
)

type DirectoryStore interface {
	UsersInquiries(ctx context.Context, filter model.InquiryFilter) ([]model.UserInquiryRow, int64, error)
	UserDetail(ctx context.Context, userID uuid.UUID) (model.UserDetail, error)
	InquiryDetail(ctx context.Context, inquiryID uuid.UUID) (model.InquiryDetail, error)
}

type DirectoryService struct {
	store DirectoryStore
}

func NewDirectoryService(store DirectoryStore) *DirectoryService {
	return &DirectoryService{store: store}
}

func (s *DirectoryService) GetUsersInquiries(ctx context.Context, filter model.InquiryFilter) (model.Page[model.UserInquiryRow], error) {
	rows, total, err := s.store.UsersInquiries(ctx, filter)
	if err != nil {
		return model.Page[model.UserInquiryRow]{}, err
	}
	if rows == nil {
		rows = []model.UserInquiryRow{}
	}
	return model.Page[model.UserInquiryRow]{
		Data:       rows,
		Pagination: model.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

func (s *DirectoryService) GetUser(ctx context.Context, userID uuid.UUID) (model.UserDetail, error) {
	detail, err := s.store.UserDetail(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.UserDetail{}, ErrNotFound
		}
		return model.UserDetail{}, err
	}
	return detail, nil
}

func (s *DirectoryService) GetInquiry(ctx context.Context, inquiryID uuid.UUID) (model.InquiryDetail, error) {
	detail, err := s.store.InquiryDetail(ctx, inquiryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.InquiryDetail{}, ErrNotFound
		}
		return model.InquiryDetail{}, err
	}
	return detail, nil
}
