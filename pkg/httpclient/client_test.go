package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/richxcame/partner-showcase/pkg/logger"
)

// TestNewClient tests the NewClient constructor
func TestNewClient(t *testing.T) {
	tests := []struct {
		name            string
		baseURL         string
		timeout         []time.Duration
		expectedTimeout time.Duration
	}{
		{
			name:            "with base URL only",
			baseURL:         "https://api.example.com",
			timeout:         nil,
			expectedTimeout: 30 * time.Second,
		},
		{
			name:            "with custom timeout",
			baseURL:         "https://api.example.com",
			timeout:         []time.Duration{5 * time.Second},
			expectedTimeout: 5 * time.Second,
		},
		{
			name:            "with zero timeout uses default",
			baseURL:         "https://api.example.com",
			timeout:         []time.Duration{0},
			expectedTimeout: 30 * time.Second,
		},
		{
			name:            "with multiple timeouts uses first",
			baseURL:         "https://api.example.com",
			timeout:         []time.Duration{10 * time.Second, 20 * time.Second},
			expectedTimeout: 10 * time.Second,
		},
		{
			name:            "with path in base URL",
			baseURL:         "https://api.example.com/api",
			timeout:         nil,
			expectedTimeout: 30 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.baseURL, tt.timeout...)

			if client == nil {
				t.Fatal("NewClient returned nil")
			}
			if client.BaseURL() != tt.baseURL {
				t.Errorf("baseURL = %q, want %q", client.BaseURL(), tt.baseURL)
			}
			if client.httpClient.Timeout != tt.expectedTimeout {
				t.Errorf("Timeout = %v, want %v", client.httpClient.Timeout, tt.expectedTimeout)
			}
		})
	}
}

// TestClient_Get tests the Get method
func TestClient_Get(t *testing.T) {
	tests := []struct {
		name           string
		serverHandler  http.HandlerFunc
		path           string
		headers        map[string]string
		expectedBody   string
		expectError    bool
		expectedStatus int
	}{
		{
			name: "successful GET",
			serverHandler: func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("Method = %s, want GET", r.Method)
				}
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"data":[]}`))
			},
			path:         "/home/partenaire/",
			expectedBody: `{"data":[]}`,
		},
		{
			name: "GET with custom headers",
			serverHandler: func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("Accept-Language") != "fr" {
					t.Error("Custom header not set")
				}
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"ok":true}`))
			},
			path:         "/lang",
			headers:      map[string]string{"Accept-Language": "fr"},
			expectedBody: `{"ok":true}`,
		},
		{
			name: "GET returns 404",
			serverHandler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"detail":"Not found."}`))
			},
			path:           "/home/partenaire/missing/",
			expectError:    true,
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "GET returns 500",
			serverHandler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			path:           "/error",
			expectError:    true,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "GET returns empty body",
			serverHandler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			path:         "/empty",
			expectedBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.serverHandler)
			defer server.Close()

			client := NewClient(server.URL)
			body, err := client.Get(context.Background(), tt.path, tt.headers)

			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error but got nil")
				}
				var httpErr *HTTPError
				if !errors.As(err, &httpErr) {
					t.Fatalf("Expected *HTTPError, got %T", err)
				}
				if httpErr.StatusCode != tt.expectedStatus {
					t.Errorf("StatusCode = %d, want %d", httpErr.StatusCode, tt.expectedStatus)
				}
				if !IsStatus(err, tt.expectedStatus) {
					t.Errorf("IsStatus(%d) = false", tt.expectedStatus)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if string(body) != tt.expectedBody {
					t.Errorf("Body = %s, want %s", string(body), tt.expectedBody)
				}
			}
		})
	}
}

// TestClient_JoinsBaseURLWithPath tests base URLs that carry a path and trailing slash
func TestClient_JoinsBaseURLWithPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL + "/api/")
	if _, err := client.Get(context.Background(), "/home/partenaire/", nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if gotPath != "/api/home/partenaire/" {
		t.Errorf("Path = %s, want /api/home/partenaire/", gotPath)
	}
}

// TestClient_GetJSON tests JSON decoding
func TestClient_GetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Error("Accept header not set")
		}
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte(`{"data":{"name":"Acme"}}`))
		default:
			w.Write([]byte(`<html>oops</html>`))
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var out struct {
		Data struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := client.GetJSON(context.Background(), "/ok", &out); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out.Data.Name != "Acme" {
		t.Errorf("Name = %s, want Acme", out.Data.Name)
	}

	err := client.GetJSON(context.Background(), "/html", &out)
	if err == nil || !strings.Contains(err.Error(), "decode") {
		t.Errorf("Expected decode error, got %v", err)
	}
}

// TestClient_ForwardsRequestID tests correlation id propagation
func TestClient_ForwardsRequestID(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx := logger.ContextWithRequestID(context.Background(), "req-42")
	if _, err := NewClient(server.URL).Get(ctx, "/", nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got != "req-42" {
		t.Errorf("%s = %q, want req-42", RequestIDHeader, got)
	}
}

// TestHTTPError tests the HTTPError struct
func TestHTTPError(t *testing.T) {
	tests := []struct {
		name           string
		statusCode     int
		body           string
		expectedString string
	}{
		{
			name:           "404 error",
			statusCode:     404,
			body:           "not found",
			expectedString: "HTTP 404: not found",
		},
		{
			name:           "400 with JSON body",
			statusCode:     400,
			body:           `{"error":"bad request"}`,
			expectedString: `HTTP 400: {"error":"bad request"}`,
		},
		{
			name:           "empty body",
			statusCode:     503,
			body:           "",
			expectedString: "HTTP 503: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &HTTPError{
				StatusCode: tt.statusCode,
				Body:       tt.body,
			}

			if err.Error() != tt.expectedString {
				t.Errorf("Error() = %s, want %s", err.Error(), tt.expectedString)
			}
		})
	}
}

// TestIsStatus tests status classification through wrapping
func TestIsStatus(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), &HTTPError{StatusCode: 404})

	if !IsStatus(wrapped, http.StatusNotFound) {
		t.Error("Expected wrapped 404 to match")
	}
	if IsStatus(wrapped, http.StatusInternalServerError) {
		t.Error("Did not expect 500 to match")
	}
	if IsStatus(errors.New("plain"), http.StatusNotFound) {
		t.Error("Plain error should not match")
	}
}

// TestClient_ContextCancellation tests that requests respect context cancellation
func TestClient_ContextCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(server.URL, 10*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, "/slow", nil)

	if err == nil {
		t.Fatal("Expected error due to context cancellation")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Logf("Error message: %v", err)
	}
}

// TestClient_InvalidURL tests behavior with unreachable hosts
func TestClient_InvalidURL(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second)

	_, err := client.Get(context.Background(), "/test", nil)
	if err == nil {
		t.Error("Expected error for unreachable host")
	}
}

// TestClient_LargeResponse tests handling of large responses
func TestClient_LargeResponse(t *testing.T) {
	largeBody := strings.Repeat("a", 1024*1024) // 1MB
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(largeBody))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	body, err := client.Get(context.Background(), "/large", nil)

	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if len(body) != len(largeBody) {
		t.Errorf("Body length = %d, want %d", len(body), len(largeBody))
	}
}

// Benchmark tests
func BenchmarkClient_Get(b *testing.B) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		client.Get(ctx, "/test", nil)
	}
}
