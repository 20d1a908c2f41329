package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inquiry-console/internal/auth"
	"inquiry-console/internal/model"
)

func newAuthRouter(tokens *auth.Tokens) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", Auth(tokens), func(c *gin.Context) {
		principal, ok := MustPrincipal(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing principal"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": principal.Email})
	})
	r.GET("/admin-only", Auth(tokens), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func issueToken(t *testing.T, tokens *auth.Tokens, role string) string {
	t.Helper()
	session, err := tokens.Issue(model.AdminAccount{
		ID:    uuid.New(),
		Email: "person@example.com",
		Name:  "Person",
		Role:  role,
	})
	require.NoError(t, err)
	return session.Token
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens := auth.NewTokens("test-secret", "inquiry-console", time.Hour)
	r := newAuthRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_BadScheme(t *testing.T) {
	tokens := auth.NewTokens("test-secret", "inquiry-console", time.Hour)
	r := newAuthRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_BadToken(t *testing.T) {
	tokens := auth.NewTokens("test-secret", "inquiry-console", time.Hour)
	r := newAuthRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := auth.NewTokens("test-secret", "inquiry-console", time.Hour)
	r := newAuthRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, model.RoleAdmin))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "person@example.com")
}

func TestRequireAdmin(t *testing.T) {
	tokens := auth.NewTokens("test-secret", "inquiry-console", time.Hour)
	r := newAuthRouter(tokens)

	tests := []struct {
		role string
		code int
	}{
		{role: model.RoleAdmin, code: http.StatusOK},
		{role: model.RoleManager, code: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
			req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, tt.role))
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}
