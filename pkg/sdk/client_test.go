package way

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearch_Answer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/search" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"query":"capital of France?"}` {
			t.Errorf("unexpected body: %s", body)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"source":"gemini","answer":"Paris."}`))
	}))
	defer server.Close()

	res, err := New(server.URL).Search(context.Background(), "capital of France?")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if res.Source != "gemini" || res.Answer != "Paris." {
		t.Errorf("unexpected result: %+v", res)
	}
	if res.Videos != nil {
		t.Error("videos must be nil for a direct answer")
	}
}

func TestSearch_Videos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"source": "google_videos",
			"results": [
				{"title": "First", "link": "https://example.com/1", "channel": "Chan", "views": "1M views"},
				{"title": "Second", "link": "https://example.com/2"}
			]
		}`))
	}))
	defer server.Close()

	res, err := New(server.URL).Search(context.Background(), "cooking")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if res.Answer != "" {
		t.Error("answer must be empty for a video list")
	}
	if len(res.Videos) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(res.Videos))
	}
	if res.Videos[0].Channel != "Chan" || res.Videos[0].Views != "1M views" {
		t.Errorf("unexpected first video: %+v", res.Videos[0])
	}
}

func TestSearch_EmptyVideoList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"source":"google_videos","results":[]}`))
	}))
	defer server.Close()

	res, err := New(server.URL).Search(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if res.Videos == nil || len(res.Videos) != 0 {
		t.Errorf("expected empty non-nil videos, got %v", res.Videos)
	}
}

func TestSearch_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
	}{
		{"empty query", 400, `{"code":"empty_query","message":"query is empty"}`, ErrEmptyQuery},
		{"not configured", 500, `{"code":"provider_not_configured","message":"provider not configured"}`, ErrProviderNotConfigured},
		{"upstream", 502, `{"code":"upstream_error","message":"upstream provider error","dependency":"classifier"}`, ErrUpstream},
		{"exhausted", 422, `{"code":"routing_exhausted","message":"no routing decision"}`, ErrRoutingExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := New(server.URL).Search(context.Background(), "q")
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("err = %v, want %v", err, tt.sentinel)
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("err = %v, want *APIError", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
		})
	}
}

func TestSearch_UpstreamDependency(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"code":"upstream_error","message":"upstream provider error","dependency":"general_search"}`))
	}))
	defer server.Close()

	_, err := New(server.URL).Search(context.Background(), "q")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Dependency != "general_search" {
		t.Errorf("Dependency = %q, want general_search", apiErr.Dependency)
	}
}

func TestSearch_NonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	}))
	defer server.Close()

	_, err := New(server.URL).Search(context.Background(), "q")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Code != "unexpected_response" {
		t.Errorf("Code = %q, want unexpected_response", apiErr.Code)
	}
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"degraded","checks":{"classifier":"error"}}`))
	}))
	defer server.Close()

	h, err := New(server.URL).Health(context.Background())
	if err != nil {
		t.Fatalf("Health failed: %v", err)
	}
	if h.Status != "degraded" || h.Checks["classifier"] != "error" {
		t.Errorf("unexpected report: %+v", h)
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c := New("http://localhost:8080/")
	if c.baseURL != "http://localhost:8080" {
		t.Errorf("baseURL = %q", c.baseURL)
	}
}
