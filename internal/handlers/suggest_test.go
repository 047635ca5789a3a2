package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linkloom/linkloom/internal/services"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suggestRequest(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/api/suggest-link-title", bytes.NewBufferString(body))
	ctx.Request.Header.Set("Content-Type", "application/json")

	handler(ctx)

	return recorder
}

// With no API key configured the suggester degrades to its deterministic
// fallback, so the handler must still answer with a usable title.
func TestSuggestLinkTitleFallback(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	handler := NewSuggestHandler(services.NewGeminiClient("", logger))

	recorder := suggestRequest(t, handler.SuggestLinkTitle, `{"url":"https://www.example.com/page"}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Example.com", body["title"])
}

func TestSuggestLinkTitleRequiresURL(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	handler := NewSuggestHandler(services.NewGeminiClient("", logger))

	recorder := suggestRequest(t, handler.SuggestLinkTitle, `{}`)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGenerateCollectionDescriptionFallback(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	handler := NewSuggestHandler(services.NewGeminiClient("", logger))

	recorder := suggestRequest(t, handler.GenerateCollectionDescription,
		`{"name":"Reading List","links":[{"url":"https://example.com","description":"An example"}]}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, services.FallbackDescription, body["description"])
}
