package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"inquiry-console/internal/model"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Provider is the identity collaborator behind signin/signout. It is
// injected into the auth service so tests can substitute a fake.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (model.Principal, model.Session, error)
	SignOut(ctx context.Context, principal model.Principal) error
}

// AccountProvider verifies credentials against the admin_accounts table and
// issues session tokens. Tokens are stateless, so SignOut has nothing to
// revoke server-side.
type AccountProvider struct {
	db     *gorm.DB
	tokens *Tokens
}

func NewAccountProvider(db *gorm.DB, tokens *Tokens) *AccountProvider {
	return &AccountProvider{db: db, tokens: tokens}
}

func (p *AccountProvider) SignIn(ctx context.Context, email, password string) (model.Principal, model.Session, error) {
	var account model.AdminAccount
	err := p.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Take(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Principal{}, model.Session{}, ErrInvalidCredentials
		}
		return model.Principal{}, model.Session{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return model.Principal{}, model.Session{}, ErrInvalidCredentials
	}

	session, err := p.tokens.Issue(account)
	if err != nil {
		return model.Principal{}, model.Session{}, err
	}

	now := time.Now()
	if err := p.db.WithContext(ctx).
		Model(&model.AdminAccount{}).
		Where("id = ?", account.ID).
		Update("last_login_at", now).Error; err != nil {
		return model.Principal{}, model.Session{}, err
	}

	principal := model.Principal{
		AccountID: account.ID,
		Email:     account.Email,
		Name:      account.Name,
		Role:      account.Role,
	}
	return principal, session, nil
}

func (p *AccountProvider) SignOut(ctx context.Context, principal model.Principal) error {
	return nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
