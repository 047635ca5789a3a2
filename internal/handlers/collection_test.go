package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectionRequest(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/api/collections", bytes.NewBufferString(body))
	ctx.Request.Header.Set("Content-Type", "application/json")

	handler(ctx)

	return recorder
}

func TestCreateCollectionRejectsUnknownTheme(t *testing.T) {
	recorder := collectionRequest(t, CreateCollection,
		`{"name":"Reading List","is_public":false,"theme":"neon"}`)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Invalid theme", body["error"])
}

func TestUpdateCollectionRejectsUnknownTheme(t *testing.T) {
	recorder := collectionRequest(t, UpdateCollection, `{"id":1,"theme":"sparkle"}`)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Invalid theme", body["error"])
}
