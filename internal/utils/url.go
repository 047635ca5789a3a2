package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/linkloom/linkloom/internal/types"
)

func ExtractRawDomain(input string) (string, error) {
	if input == "" {
		return "", errors.New("input cannot be empty")
	}

	// Clean up the input
	domain := strings.TrimSpace(input)

	// If it looks like a URL, parse it
	if strings.Contains(domain, "://") {
		parsedURL, err := url.Parse(domain)
		if err != nil {
			return "", errors.New("invalid URL format")
		}

		if parsedURL.Hostname() == "" {
			return "", errors.New("no hostname found in URL")
		}

		domain = parsedURL.Hostname()
	}

	// Remove trailing slashes
	domain = strings.TrimSuffix(domain, "/")

	// Remove www. prefix if present
	if strings.HasPrefix(strings.ToLower(domain), "www.") {
		domain = domain[4:] // Remove "www."
	}

	// Final validation - ensure we have a valid domain
	if domain == "" {
		return "", errors.New("invalid domain after processing")
	}

	return domain, nil
}

// TitleFromURL derives a human-readable link title from a URL by capitalizing
// its domain. Returns "New Link" when the URL cannot be parsed.
func TitleFromURL(rawURL string) string {
	domain, err := ExtractRawDomain(rawURL)

	if err != nil || !strings.Contains(rawURL, "://") {
		return "New Link"
	}

	return strings.ToUpper(domain[:1]) + domain[1:]
}

// PlaceholderImageURL returns a seeded placeholder cover image URL for links
// created without one.
func PlaceholderImageURL() string {
	return fmt.Sprintf("%s/%s/400/300", types.PlaceholderImageBase, uuid.NewString())
}
