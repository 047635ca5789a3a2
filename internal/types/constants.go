package types

import "strings"

const ContextUserKey = "user"

// PlaceholderImageBase is the seeded placeholder service used when a link is
// created without a cover image.
const PlaceholderImageBase = "https://picsum.photos/seed"

// Default allowed origins for development
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// BuildAllowedOrigins assembles the CORS origin list from the development
// defaults, the configured client URL, and a comma-separated extras list.
func BuildAllowedOrigins(clientURL, extraOrigins string) []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL != "" {
		origins = append(origins, clientURL)
	}

	if extraOrigins != "" {
		for _, origin := range strings.Split(extraOrigins, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
