package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"inquiry-console/internal/auth"
	"inquiry-console/internal/model"
)

type AuthService struct {
	provider auth.Provider
	log      zerolog.Logger
}

func NewAuthService(provider auth.Provider, log zerolog.Logger) *AuthService {
	return &AuthService{provider: provider, log: log}
}

// SignIn resolves credentials through the identity provider and rejects
// principals without the administrative role before a session reaches the
// client.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (model.Principal, model.Session, error) {
	principal, session, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return model.Principal{}, model.Session{}, ErrUnauthorized
		}
		return model.Principal{}, model.Session{}, err
	}

	if !principal.IsAdmin() {
		s.log.Warn().Str("email", principal.Email).Str("role", principal.Role).Msg("signin rejected for non-admin role")
		return model.Principal{}, model.Session{}, ErrForbidden
	}

	s.log.Info().Str("email", principal.Email).Msg("admin signed in")
	return principal, session, nil
}

func (s *AuthService) SignOut(ctx context.Context, principal model.Principal) error {
	if err := s.provider.SignOut(ctx, principal); err != nil {
		return err
	}
	s.log.Info().Str("email", principal.Email).Msg("admin signed out")
	return nil
}
