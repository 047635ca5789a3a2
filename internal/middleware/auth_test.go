package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/api/session", nil)

	return ctx, recorder
}

func TestExtractTokenFromCookie(t *testing.T) {
	ctx, _ := testContext(t)
	ctx.Request.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"})

	token, err := ExtractToken(ctx)

	require.NoError(t, err)
	assert.Equal(t, "cookie-token", token)
}

func TestExtractTokenFromBearerHeader(t *testing.T) {
	ctx, _ := testContext(t)
	ctx.Request.Header.Set("Authorization", "Bearer header-token")

	token, err := ExtractToken(ctx)

	require.NoError(t, err)
	assert.Equal(t, "header-token", token)
}

func TestExtractTokenPrefersCookie(t *testing.T) {
	ctx, _ := testContext(t)
	ctx.Request.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"})
	ctx.Request.Header.Set("Authorization", "Bearer header-token")

	token, err := ExtractToken(ctx)

	require.NoError(t, err)
	assert.Equal(t, "cookie-token", token)
}

func TestExtractTokenMissing(t *testing.T) {
	ctx, _ := testContext(t)

	_, err := ExtractToken(ctx)

	assert.Error(t, err)
}

func TestExtractTokenMalformedHeader(t *testing.T) {
	ctx, _ := testContext(t)
	ctx.Request.Header.Set("Authorization", "Token abc")

	_, err := ExtractToken(ctx)

	assert.Error(t, err)
}
