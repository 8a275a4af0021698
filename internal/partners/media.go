package partners

import (
	"regexp"
	"strings"
)

// PlaceholderImage is served when a partner has no image or it fails to load
const PlaceholderImage = "/placeholder.svg"

var uriScheme = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*:`)

// MediaResolver turns backend media paths into absolute URLs
type MediaResolver struct {
	baseURL string
}

// NewMediaResolver derives the media base from the backend API URL by
// stripping a trailing "/api" path segment.
func NewMediaResolver(apiBaseURL string) *MediaResolver {
	return &MediaResolver{baseURL: MediaBaseURL(apiBaseURL)}
}

// MediaBaseURL strips trailing slashes and a trailing "/api" segment
func MediaBaseURL(apiBaseURL string) string {
	base := strings.TrimRight(apiBaseURL, "/")
	base = strings.TrimSuffix(base, "/api")
	return strings.TrimRight(base, "/")
}

// BaseURL returns the media base URL
func (m *MediaResolver) BaseURL() string {
	return m.baseURL
}

// ResolveImageURL returns the placeholder for an empty path, absolute and
// protocol-relative URLs unchanged, and joins anything else onto the media
// base URL.
func (m *MediaResolver) ResolveImageURL(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return PlaceholderImage
	}
	if uriScheme.MatchString(path) || strings.HasPrefix(path, "//") {
		return path
	}
	return m.baseURL + "/" + strings.TrimLeft(path, "/")
}
