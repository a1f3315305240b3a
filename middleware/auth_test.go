package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef"

func signTestToken(t *testing.T, subject string, expiresIn time.Duration, claims map[string]any) string {
	t.Helper()

	builder := jwt.NewBuilder().
		Subject(subject).
		IssuedAt(time.Now()).
		Expiration(time.Now().Add(expiresIn))
	for k, v := range claims {
		builder = builder.Claim(k, v)
	}
	token, err := builder.Build()
	require.NoError(t, err)

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, []byte(testJWTSecret)))
	require.NoError(t, err)
	return string(signed)
}

func authTestRouter() *gin.Engine {
	router := gin.New()
	router.Use(ErrorHandler())
	router.Use(AuthMiddleware(testJWTSecret))
	router.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetString(ContextKeyUserID),
			"email":  c.GetString(ContextKeyUserEmail),
		})
	})
	return router
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	router := authTestRouter()
	token := signTestToken(t, "user-123", time.Hour, map[string]any{"email": "ana@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
	assert.Contains(t, w.Body.String(), "ana@example.com")
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	router := authTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	router := authTestRouter()
	token := signTestToken(t, "user-123", -time.Hour, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_TamperedToken(t *testing.T) {
	router := authTestRouter()
	token := signTestToken(t, "user-123", time.Hour, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WebSocketQueryToken(t *testing.T) {
	router := authTestRouter()
	token := signTestToken(t, "user-123", time.Hour, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me?token="+token, nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
}

func TestValidateTokenWithoutAbort(t *testing.T) {
	token := signTestToken(t, "user-456", time.Hour, nil)

	userID, err := ValidateTokenWithoutAbort(token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-456", userID)

	_, err = ValidateTokenWithoutAbort("", testJWTSecret)
	assert.Error(t, err)
}
