package health

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
)

// Checker is a dependency health check; nil means healthy.
type Checker func() error

// CheckerConfig holds health check settings
type CheckerConfig struct {
	Timeout time.Duration
}

// DefaultCheckerConfig returns the default health check settings
func DefaultCheckerConfig() CheckerConfig {
	return CheckerConfig{Timeout: 2 * time.Second}
}

// HTTPEndpointChecker returns a health check function for HTTP endpoints
// Useful for checking the partner backend
func HTTPEndpointChecker(url string) Checker {
	return HTTPEndpointCheckerWithConfig(url, DefaultCheckerConfig())
}

// HTTPEndpointCheckerWithConfig is HTTPEndpointChecker with custom settings.
// Any status below 400 counts as healthy; redirects are not followed.
func HTTPEndpointCheckerWithConfig(url string, config CheckerConfig) Checker {
	client := &http.Client{
		Timeout: config.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("build health request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("GET %s: %w", url, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
		}
		return nil
	}
}

// CompositeChecker runs every checker and joins failures as "name.check: err".
func CompositeChecker(name string, checkers map[string]Checker) Checker {
	return func() error {
		keys := make([]string, 0, len(checkers))
		for k := range checkers {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var failures []string
		for _, k := range keys {
			if err := checkers[k](); err != nil {
				failures = append(failures, fmt.Sprintf("%s.%s: %v", name, k, err))
			}
		}

		if len(failures) > 0 {
			return fmt.Errorf("%s", strings.Join(failures, "; "))
		}
		return nil
	}
}
