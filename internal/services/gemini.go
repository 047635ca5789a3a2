package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/linkloom/linkloom/internal/models"
	"github.com/linkloom/linkloom/internal/utils"
	"github.com/sirupsen/logrus"
)

const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	GeminiModel          = "gemini-2.5-flash"

	// FallbackDescription is returned whenever the provider cannot produce one.
	FallbackDescription = "A curated collection of interesting links."
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

// GeminiClient calls the text-suggestion provider. Both capabilities degrade
// to deterministic fallbacks and never return an error to the caller.
type GeminiClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *logrus.Logger
}

func NewGeminiClient(apiKey string, logger *logrus.Logger) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: DefaultGeminiBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// SuggestLinkTitle asks the provider for a clean title for the URL. On any
// provider failure it falls back to the capitalized domain, or "New Link"
// when the URL itself cannot be parsed.
func (g *GeminiClient) SuggestLinkTitle(url string) string {
	prompt := fmt.Sprintf(
		"I have a URL: %q.\n"+
			"Please generate a clean, human-readable title for this link.\n"+
			"If it looks like a specific article or product, guess the title.\n"+
			"If not, just format the domain name nicely.\n"+
			"Return ONLY the title string.",
		url,
	)

	title, err := g.generateContent(prompt)

	if err != nil || title == "" {
		if err != nil {
			g.logger.WithError(err).Warn("Title suggestion failed, using domain fallback")
		}
		return utils.TitleFromURL(url)
	}

	return title
}

// GenerateCollectionDescription writes a short description for the collection
// from its name and items, falling back to a generic sentence on failure.
func (g *GeminiClient) GenerateCollectionDescription(name string, links []models.Link) string {
	var summaries strings.Builder

	for _, link := range links {
		summaries.WriteString(fmt.Sprintf("- %s (%s)\n", link.Description, link.URL))
	}

	prompt := fmt.Sprintf(
		"I have a collection of links titled %q.\n"+
			"Here are the items:\n%s\n"+
			"Please write a short, engaging, and aesthetic description (max 2 sentences) "+
			"for this collection that would make people want to click.\n"+
			"Tone: Curated, professional yet inviting.",
		name, summaries.String(),
	)

	description, err := g.generateContent(prompt)

	if err != nil || description == "" {
		if err != nil {
			g.logger.WithError(err).Warn("Description generation failed, using fallback")
		}
		return FallbackDescription
	}

	return description
}

func (g *GeminiClient) generateContent(prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("gemini API key is not configured")
	}

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}

	body, err := json.Marshal(payload)

	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, GeminiModel, g.apiKey)

	resp, err := g.client.Post(endpoint, "application/json", bytes.NewBuffer(body))

	if err != nil {
		return "", fmt.Errorf("failed to call provider: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse

	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("provider returned no candidates")
	}

	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}
