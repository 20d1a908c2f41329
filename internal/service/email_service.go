package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"inquiry-console/internal/model"
)

type TemplateStore interface {
	ListTemplates(ctx context.Context) ([]model.EmailTemplate, error)
	GetTemplate(ctx context.Context, id uuid.UUID) (model.EmailTemplate, error)
	CreateTemplate(ctx context.Context, template *model.EmailTemplate) error
	SaveTemplate(ctx context.Context, template *model.EmailTemplate) error
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
	RecordHistory(ctx context.Context, entries []model.EmailSendHistory) error
	History(ctx context.Context, page, limit int) ([]model.EmailSendHistory, int64, error)
}

type RecipientStore interface {
	UsersByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error)
}

type EmailService struct {
	templates  TemplateStore
	recipients RecipientStore
	log        zerolog.Logger
	now        func() time.Time
}

func NewEmailService(templates TemplateStore, recipients RecipientStore, log zerolog.Logger) *EmailService {
	return &EmailService{templates: templates, recipients: recipients, log: log, now: time.Now}
}

type TemplateInput struct {
	Name     string `json:"name"`
	Subject  string `json:"subject"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

func (in TemplateInput) validate() error {
	verr := &model.ValidationError{}
	if in.Name == "" {
		verr.Fields = append(verr.Fields, model.FieldError{Field: "name", Message: "is required"})
	}
	if in.Subject == "" {
		verr.Fields = append(verr.Fields, model.FieldError{Field: "subject", Message: "is required"})
	}
	if in.Content == "" {
		verr.Fields = append(verr.Fields, model.FieldError{Field: "content", Message: "is required"})
	}
	if in.Category == "" {
		verr.Fields = append(verr.Fields, model.FieldError{Field: "category", Message: "is required"})
	} else if !model.ValidEmailCategory(in.Category) {
		verr.Fields = append(verr.Fields, model.FieldError{Field: "category", Message: "unknown category"})
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func (s *EmailService) ListTemplates(ctx context.Context) ([]model.EmailTemplate, error) {
	templates, err := s.templates.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}
	if templates == nil {
		templates = []model.EmailTemplate{}
	}
	return templates, nil
}

func (s *EmailService) GetTemplate(ctx context.Context, id uuid.UUID) (model.EmailTemplate, error) {
	template, err := s.templates.GetTemplate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.EmailTemplate{}, ErrNotFound
		}
		return model.EmailTemplate{}, err
	}
	return template, nil
}

func (s *EmailService) CreateTemplate(ctx context.Context, input TemplateInput) (model.EmailTemplate, error) {
	if err := input.validate(); err != nil {
		return model.EmailTemplate{}, err
	}

	now := s.now()
	template := model.EmailTemplate{
		ID:        uuid.New(),
		Name:      input.Name,
		Subject:   input.Subject,
		Content:   input.Content,
		Category:  input.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.templates.CreateTemplate(ctx, &template); err != nil {
		return model.EmailTemplate{}, err
	}
	return template, nil
}

func (s *EmailService) UpdateTemplate(ctx context.Context, id uuid.UUID, input TemplateInput) (model.EmailTemplate, error) {
	if err := input.validate(); err != nil {
		return model.EmailTemplate{}, err
	}

	template, err := s.templates.GetTemplate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.EmailTemplate{}, ErrNotFound
		}
		return model.EmailTemplate{}, err
	}

	template.Name = input.Name
	template.Subject = input.Subject
	template.Content = input.Content
	template.Category = input.Category
	template.UpdatedAt = s.now()

	if err := s.templates.SaveTemplate(ctx, &template); err != nil {
		return model.EmailTemplate{}, err
	}
	return template, nil
}

func (s *EmailService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	if err := s.templates.DeleteTemplate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// SendEmail is a delivery stub: it resolves the recipients and the template,
// logs each send as an intent and records the outcome, but no mail leaves
// the process.
func (s *EmailService) SendEmail(ctx context.Context, req model.EmailSendRequest) ([]model.EmailSendHistory, error) {
	verr := &model.ValidationError{}
	if len(req.RecipientIDs) == 0 {
		verr.Fields = append(verr.Fields, model.FieldError{Field: "recipientIds", Message: "must not be empty"})
	}
	if req.TemplateID == uuid.Nil {
		verr.Fields = append(verr.Fields, model.FieldError{Field: "templateId", Message: "is required"})
	}
	if len(verr.Fields) > 0 {
		return nil, verr
	}

	template, err := s.templates.GetTemplate(ctx, req.TemplateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	subject := template.Subject
	if req.CustomSubject != "" {
		subject = req.CustomSubject
	}

	users, err := s.recipients.UsersByIDs(ctx, req.RecipientIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	templateID := template.ID
	sentAt := s.now()
	entries := make([]model.EmailSendHistory, 0, len(req.RecipientIDs))
	for _, recipientID := range req.RecipientIDs {
		entry := model.EmailSendHistory{
			ID:           uuid.New(),
			TemplateID:   &templateID,
			TemplateName: template.Name,
			Subject:      subject,
			SentAt:       sentAt,
		}
		user, ok := byID[recipientID]
		if !ok {
			message := "recipient not found"
			entry.Status = model.EmailStatusFailed
			entry.ErrorMessage = &message
			entries = append(entries, entry)
			continue
		}

		entry.RecipientEmail = user.Email
		entry.RecipientName = user.Name
		entry.Status = model.EmailStatusSent
		entries = append(entries, entry)

		s.log.Info().
			Str("recipient", user.Email).
			Str("template", template.Name).
			Str("subject", subject).
			Msg("email send requested")
	}

	if err := s.templates.RecordHistory(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *EmailService) GetHistory(ctx context.Context, page, limit int) (model.Page[model.EmailSendHistory], error) {
	entries, total, err := s.templates.History(ctx, page, limit)
	if err != nil {
		return model.Page[model.EmailSendHistory]{}, err
	}
	if entries == nil {
		entries = []model.EmailSendHistory{}
	}
	return model.Page[model.EmailSendHistory]{
		Data:       entries,
		Pagination: model.NewPagination(page, limit, total),
	}, nil
}
