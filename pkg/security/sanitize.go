// Package security sanitizes backend-supplied values before they reach
// rendered links.
package security

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	emailDisallowed = regexp.MustCompile(`[^a-z0-9._%+\-@]`)
	phoneDisallowed = regexp.MustCompile(`[^0-9+]`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// SanitizeURL returns the trimmed URL when it is an absolute http(s) URL
// with a host, otherwise an empty string.
func SanitizeURL(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if strings.Contains(strings.ToLower(input), "javascript:") {
		return ""
	}

	u, err := url.Parse(input)
	if err != nil || u.Host == "" {
		return ""
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return input
	}
	return ""
}

// SanitizeEmail lowercases the address and drops characters outside the
// usual local-part and domain alphabet.
func SanitizeEmail(input string) string {
	return emailDisallowed.ReplaceAllString(strings.ToLower(strings.TrimSpace(input)), "")
}

// SanitizePhone keeps digits and plus signs, suitable for a tel: URI
func SanitizePhone(input string) string {
	return phoneDisallowed.ReplaceAllString(input, "")
}

// NormalizeWhitespace collapses whitespace runs into single spaces
func NormalizeWhitespace(input string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(input, " "))
}
