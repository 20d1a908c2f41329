package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inquiry-console/internal/model"
)

func testAccount() model.AdminAccount {
	return model.AdminAccount{
		ID:    uuid.New(),
		Email: "admin@example.com",
		Name:  "Admin",
		Role:  model.RoleAdmin,
	}
}

func TestTokens_RoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret", "inquiry-console", time.Hour)
	account := testAccount()

	session, err := tokens.Issue(account)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)

	claims, err := tokens.Parse(session.Token)
	require.NoError(t, err)
	assert.Equal(t, account.Email, claims.Email)
	assert.Equal(t, account.Name, claims.Name)
	assert.Equal(t, model.RoleAdmin, claims.Role)

	principal, err := claims.Principal()
	require.NoError(t, err)
	assert.Equal(t, account.ID, principal.AccountID)
	assert.True(t, principal.IsAdmin())
}

func TestTokens_WrongSecret(t *testing.T) {
	issuer := NewTokens("secret-a", "inquiry-console", time.Hour)
	verifier := NewTokens("secret-b", "inquiry-console", time.Hour)

	session, err := issuer.Issue(testAccount())
	require.NoError(t, err)

	_, err = verifier.Parse(session.Token)
	assert.Error(t, err)
}

func TestTokens_WrongIssuer(t *testing.T) {
	issuer := NewTokens("test-secret", "other-service", time.Hour)
	verifier := NewTokens("test-secret", "inquiry-console", time.Hour)

	session, err := issuer.Issue(testAccount())
	require.NoError(t, err)

	_, err = verifier.Parse(session.Token)
	assert.Error(t, err)
}

func TestTokens_Expired(t *testing.T) {
	// Expired beyond the 30s verification leeway.
	tokens := NewTokens("test-secret", "inquiry-console", -2*time.Minute)

	session, err := tokens.Issue(testAccount())
	require.NoError(t, err)

	_, err = tokens.Parse(session.Token)
	assert.Error(t, err)
}

func TestTokens_Garbage(t *testing.T) {
	tokens := NewTokens("test-secret", "inquiry-console", time.Hour)

	_, err := tokens.Parse("not.a.token")
	assert.Error(t, err)
}

func TestClaims_PrincipalInvalidSubject(t *testing.T) {
	claims := &Claims{}
	claims.Subject = "not-a-uuid"

	_, err := claims.Principal()
	assert.Error(t, err)
}
