package services

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCloudinaryClient(baseURL string) *CloudinaryClient {
	client := NewCloudinaryClient("demo", "key", "secret", testLogger())
	client.baseURL = baseURL
	return client
}

func TestSignParams(t *testing.T) {
	tests := []struct {
		name     string
		params   map[string]string
		secret   string
		expected string
	}{
		{
			name:     "upload params",
			params:   map[string]string{"folder": "linkloom", "timestamp": "1700000000"},
			secret:   "secret",
			expected: "990d0cce1cd5296c090cb16588336452ec2d30e5",
		},
		{
			name:     "destroy params",
			params:   map[string]string{"timestamp": "1700000000", "public_id": "linkloom/abc"},
			secret:   "topsecret",
			expected: "5eff181e617109d5aeec94f77325a7cee74a9b10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SignParams(tt.params, tt.secret))
		})
	}
}

func TestDecodedDataURISize(t *testing.T) {
	payload := []byte("hello world, this is exactly 33b!")
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	assert.Equal(t, len(payload), DecodedDataURISize(encoded))
}

func TestDecodedDataURISizeBareBase64(t *testing.T) {
	payload := []byte("abcd")
	encoded := base64.StdEncoding.EncodeToString(payload)

	assert.Equal(t, len(payload), DecodedDataURISize(encoded))
}

func TestDecodedDataURISizeOverLimit(t *testing.T) {
	big := strings.Repeat("A", (MaxUploadBytes/3+10)*4)

	assert.Greater(t, DecodedDataURISize("data:image/png;base64,"+big), MaxUploadBytes)
}

func TestUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "/demo/image/upload", r.URL.Path)
		assert.Equal(t, "key", r.FormValue("api_key"))
		assert.Equal(t, UploadFolder, r.FormValue("folder"))
		assert.NotEmpty(t, r.FormValue("timestamp"))
		assert.NotEmpty(t, r.FormValue("signature"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"public_id":"linkloom/abc","secure_url":"https://cdn.test/abc.png"}`))
	}))
	defer server.Close()

	client := newTestCloudinaryClient(server.URL)

	result, err := client.Upload("data:image/png;base64,aGVsbG8=")

	require.NoError(t, err)
	assert.Equal(t, "linkloom/abc", result.PublicID)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/f_auto,q_auto/linkloom/abc", result.URL)
	assert.NotEmpty(t, result.Raw)
}

func TestDeliveryURL(t *testing.T) {
	client := newTestCloudinaryClient(DefaultCloudinaryBaseURL)

	url := client.DeliveryURL("linkloom/abc")

	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/f_auto,q_auto/linkloom/abc", url)
}

func TestUploadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"Invalid signature"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestCloudinaryClient(server.URL)

	_, err := client.Upload("data:image/png;base64,aGVsbG8=")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestDelete(t *testing.T) {
	var gotPublicID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "/demo/image/destroy", r.URL.Path)
		gotPublicID = r.FormValue("public_id")

		w.Write([]byte(`{"result":"ok"}`))
	}))
	defer server.Close()

	client := newTestCloudinaryClient(server.URL)

	require.NoError(t, client.Delete("linkloom/abc"))
	assert.Equal(t, "linkloom/abc", gotPublicID)
}
