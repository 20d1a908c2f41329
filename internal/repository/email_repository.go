package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inquiry-console/internal/model"
)

type EmailRepository struct {
	db *gorm.DB
}

func NewEmailRepository(db *gorm.DB) *EmailRepository {
	return &EmailRepository{db: db}
}

func (r *EmailRepository) ListTemplates(ctx context.Context) ([]model.EmailTemplate, error) {
	var templates []model.EmailTemplate
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *EmailRepository) GetTemplate(ctx context.Context, id uuid.UUID) (model.EmailTemplate, error) {
	var template model.EmailTemplate
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&template).Error; err != nil {
		return model.EmailTemplate{}, err
	}
	return template, nil
}

func (r *EmailRepository) CreateTemplate(ctx context.Context, template *model.EmailTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *EmailRepository) SaveTemplate(ctx context.Context, template *model.EmailTemplate) error {
	return r.db.WithContext(ctx).Save(template).Error
}

func (r *EmailRepository) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EmailTemplate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *EmailRepository) RecordHistory(ctx context.Context, entries []model.EmailSendHistory) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

func (r *EmailRepository) History(ctx context.Context, page, limit int) ([]model.EmailSendHistory, int64, error) {
	var entries []model.EmailSendHistory
	if err := r.db.WithContext(ctx).
		Order("sent_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&model.EmailSendHistory{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
