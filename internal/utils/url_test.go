package utils

import (
	"strings"
	"testing"

	"github.com/linkloom/linkloom/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestExtractRawDomain(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "plain domain", input: "example.com", expected: "example.com"},
		{name: "with scheme", input: "https://example.com", expected: "example.com"},
		{name: "with www", input: "https://www.example.com/page", expected: "example.com"},
		{name: "trailing slash", input: "example.com/", expected: "example.com"},
		{name: "empty input", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domain, err := ExtractRawDomain(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, domain)
		})
	}
}

func TestTitleFromURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "capitalized hostname", input: "https://www.example.com/page", expected: "Example.com"},
		{name: "no www", input: "https://news.ycombinator.com", expected: "News.ycombinator.com"},
		{name: "no scheme", input: "example.com", expected: "New Link"},
		{name: "garbage", input: "not a url", expected: "New Link"},
		{name: "empty", input: "", expected: "New Link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TitleFromURL(tt.input))
		})
	}
}

func TestPlaceholderImageURL(t *testing.T) {
	first := PlaceholderImageURL()
	second := PlaceholderImageURL()

	assert.True(t, strings.HasPrefix(first, types.PlaceholderImageBase+"/"))
	assert.True(t, strings.HasSuffix(first, "/400/300"))
	assert.NotEqual(t, first, second)
}
