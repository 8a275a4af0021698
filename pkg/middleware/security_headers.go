package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SecurityHeaders adds security-related HTTP headers to responses.
// imgSources extends the CSP img-src list, e.g. with the backend media origin.
func SecurityHeaders(imgSources ...string) gin.HandlerFunc {
	img := append([]string{"'self'", "data:", "https:"}, imgSources...)
	csp := "default-src 'self'; script-src 'self'; style-src 'self'; " +
		"img-src " + strings.Join(img, " ") + "; font-src 'self'; connect-src 'self'; frame-ancestors 'none'"

	return func(c *gin.Context) {
		h := c.Writer.Header()

		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		h.Set("Content-Security-Policy", csp)
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=(), payment=()")

		c.Next()
	}
}
