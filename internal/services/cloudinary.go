package services

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultCloudinaryBaseURL = "https://api.cloudinary.com/v1_1"

	// CloudinaryDeliveryBaseURL is the CDN host assets are served from.
	CloudinaryDeliveryBaseURL = "https://res.cloudinary.com"

	// UploadFolder groups every LinkLoom asset on the media host.
	UploadFolder = "linkloom"

	// MaxUploadBytes is the pre-check limit applied before any upload attempt.
	MaxUploadBytes = 1 << 20
)

// UploadResult is the subset of the media host's response the handlers need,
// plus the raw response for record keeping. URL is the optimized delivery
// URL, not the raw secure_url.
type UploadResult struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`

	URL string          `json:"-"`
	Raw json.RawMessage `json:"-"`
}

// CloudinaryClient signs and sends image upload/destroy requests to the
// media host's REST API.
type CloudinaryClient struct {
	cloudName string
	apiKey    string
	apiSecret string
	baseURL   string
	client    *http.Client
	logger    *logrus.Logger
}

func NewCloudinaryClient(cloudName, apiKey, apiSecret string, logger *logrus.Logger) *CloudinaryClient {
	return &CloudinaryClient{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		baseURL:   DefaultCloudinaryBaseURL,
		client:    &http.Client{Timeout: 30 * time.Second},
		logger:    logger,
	}
}

// Upload pushes a base64 data-URI image into the upload folder and returns
// the durable URL together with the deletable public id.
func (c *CloudinaryClient) Upload(file string) (UploadResult, error) {
	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	params := map[string]string{
		"folder":    UploadFolder,
		"timestamp": timestamp,
	}

	form := url.Values{}
	form.Set("file", file)
	form.Set("api_key", c.apiKey)
	form.Set("folder", UploadFolder)
	form.Set("timestamp", timestamp)
	form.Set("signature", SignParams(params, c.apiSecret))

	body, err := c.post(fmt.Sprintf("%s/%s/image/upload", c.baseURL, c.cloudName), form)

	if err != nil {
		return UploadResult{}, err
	}

	var result UploadResult

	if err := json.Unmarshal(body, &result); err != nil {
		return UploadResult{}, fmt.Errorf("failed to decode upload response: %w", err)
	}

	result.Raw = body
	// Hand callers the optimized delivery URL rather than the raw secure_url.
	result.URL = c.DeliveryURL(result.PublicID)

	c.logger.WithField("public_id", result.PublicID).Debug("Image uploaded to media host")

	return result, nil
}

// DeliveryURL builds the delivery URL for an uploaded asset with automatic
// format and quality transformations applied.
func (c *CloudinaryClient) DeliveryURL(publicID string) string {
	return fmt.Sprintf("%s/%s/image/upload/f_auto,q_auto/%s", CloudinaryDeliveryBaseURL, c.cloudName, publicID)
}

// Delete destroys the asset with the given public id.
func (c *CloudinaryClient) Delete(publicID string) error {
	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	params := map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}

	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("api_key", c.apiKey)
	form.Set("timestamp", timestamp)
	form.Set("signature", SignParams(params, c.apiSecret))

	_, err := c.post(fmt.Sprintf("%s/%s/image/destroy", c.baseURL, c.cloudName), form)

	return err
}

func (c *CloudinaryClient) post(endpoint string, form url.Values) ([]byte, error) {
	resp, err := c.client.PostForm(endpoint, form)

	if err != nil {
		return nil, fmt.Errorf("failed to call media host: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, fmt.Errorf("failed to read media host response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("media host returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}

// SignParams builds the request signature: a SHA-1 over the parameters sorted
// by name and joined as a query string, with the API secret appended.
func SignParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))

	for key := range params {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))

	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", key, params[key]))
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))

	return hex.EncodeToString(sum[:])
}

// DecodedDataURISize estimates the decoded byte size of a base64 data URI
// without decoding it, for the pre-upload size check.
func DecodedDataURISize(file string) int {
	payload := file

	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}

	padding := 0

	for i := len(payload) - 1; i >= 0 && payload[i] == '='; i-- {
		padding++
	}

	size := len(payload)/4*3 - padding

	if size < 0 {
		return 0
	}

	return size
}
