package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobconnect-backend/internal/auth"
)

const testSecret = "middleware-test-secret"

func mintToken(t *testing.T, subject, userType string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		Email:    subject + "@example.com",
		UserType: userType,
		StandardClaims: jwt.StandardClaims{
			Subject:   subject,
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func runWithAuth(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/applications", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, c
}

func TestRequireAuth(t *testing.T) {
	token := mintToken(t, "user-1", "employer")
	rec, c := runWithAuth(t, RequireAuth(testSecret), "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	identity, ok := CurrentIdentity(c)
	require.True(t, ok)
	assert.Equal(t, "user-1", identity.ID)
	assert.Equal(t, "employer", identity.UserType)
}

func TestRequireAuthMissingHeader(t *testing.T) {
	rec, c := runWithAuth(t, RequireAuth(testSecret), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	_, ok := CurrentIdentity(c)
	assert.False(t, ok)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	rec, _ := runWithAuth(t, RequireAuth(testSecret), "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	rec, _ := runWithAuth(t, RequireAuth(testSecret), "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuthAnonymous(t *testing.T) {
	rec, c := runWithAuth(t, OptionalAuth(testSecret), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	_, ok := CurrentIdentity(c)
	assert.False(t, ok)
}

func TestOptionalAuthWithToken(t *testing.T) {
	token := mintToken(t, "user-2", "jobseeker")
	rec, c := runWithAuth(t, OptionalAuth(testSecret), "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	identity, ok := CurrentIdentity(c)
	require.True(t, ok)
	assert.Equal(t, "user-2", identity.ID)
}

func TestOptionalAuthBadTokenStaysAnonymous(t *testing.T) {
	rec, c := runWithAuth(t, OptionalAuth(testSecret), "Bearer garbage")

	assert.Equal(t, http.StatusOK, rec.Code)
	_, ok := CurrentIdentity(c)
	assert.False(t, ok)
}
