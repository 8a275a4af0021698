package common

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthCheck returns a liveness handler
func HealthCheck(serviceName, version string) gin.HandlerFunc {
	return HealthCheckWithDeps(serviceName, version, nil)
}

// HealthCheckWithDeps returns a health check handler that checks each dependency.
// Any failing check turns the response into a 503.
func HealthCheckWithDeps(serviceName, version string, checks map[string]func() error) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		var checkResults map[string]string

		for name, checkFunc := range checks {
			if checkResults == nil {
				checkResults = make(map[string]string, len(checks))
			}
			if err := checkFunc(); err != nil {
				checkResults[name] = "unhealthy: " + err.Error()
				status = "unhealthy"
			} else {
				checkResults[name] = "healthy"
			}
		}

		statusCode := http.StatusOK
		if status == "unhealthy" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, HealthResponse{
			Status:    status,
			Service:   serviceName,
			Version:   version,
			Timestamp: time.Now().UTC(),
			Checks:    checkResults,
		})
	}
}
