package serpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"go.uber.org/zap"

	"github.com/Pranav-Patel-123/WaY-scrapping/internal/metrics"
)

func TestMain(m *testing.M) {
	metrics.RegisterRoutingMetrics()
	os.Exit(m.Run())
}

func newTestClient(serverURL string) *Client {
	return NewClient(&Config{
		APIKey:  "test-key",
		BaseURL: serverURL,
		Logger:  zap.NewNop(),
	})
}

func TestSearchVideos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search.json" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("engine") != "google_videos" {
			t.Errorf("engine = %q, want google_videos", q.Get("engine"))
		}
		if q.Get("q") != "cooking tutorials" {
			t.Errorf("q = %q, want the original query", q.Get("q"))
		}
		if q.Get("api_key") != "test-key" {
			t.Errorf("api_key = %q, want test-key", q.Get("api_key"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"video_results": [
				{
					"title": "Basics with Babish",
					"link": "https://example.com/v/1",
					"description": "Knife skills",
					"channel": {"name": "Babish Culinary Universe"},
					"views": "2.1M views"
				},
				{
					"title": "No channel info",
					"link": "https://example.com/v/2"
				}
			]
		}`))
	}))
	defer server.Close()

	records, err := newTestClient(server.URL).SearchVideos(context.Background(), "cooking tutorials")
	if err != nil {
		t.Fatalf("SearchVideos failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.Title != "Basics with Babish" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Channel != "Babish Culinary Universe" {
		t.Errorf("Channel = %q, want nested channel.name", first.Channel)
	}
	if first.Views != "2.1M views" {
		t.Errorf("Views = %q, provider formatting must be preserved", first.Views)
	}

	second := records[1]
	if second.Channel != "" || second.Description != "" || second.Views != "" {
		t.Errorf("missing optional fields must stay empty, got %+v", second)
	}
}

func TestSearchPlatform_UsesSearchQueryParam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("engine") != "youtube" {
			t.Errorf("engine = %q, want youtube", q.Get("engine"))
		}
		if q.Get("search_query") != "lofi beats" {
			t.Errorf("search_query = %q, want the original query", q.Get("search_query"))
		}
		if q.Get("q") != "" {
			t.Errorf("youtube engine must not send q, got %q", q.Get("q"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"video_results": [
				{
					"title": "lofi hip hop radio",
					"link": "https://www.youtube.com/watch?v=jfKfPfyJRdk",
					"channel_name": "Lofi Girl",
					"views": 14500000
				}
			]
		}`))
	}))
	defer server.Close()

	records, err := newTestClient(server.URL).SearchPlatform(context.Background(), "lofi beats")
	if err != nil {
		t.Fatalf("SearchPlatform failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Channel != "Lofi Girl" {
		t.Errorf("Channel = %q, want flat channel_name fallback", records[0].Channel)
	}
	if records[0].Views != "14500000" {
		t.Errorf("Views = %q, numeric views must keep their textual form", records[0].Views)
	}
}

func TestSearch_EmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"search_metadata": {"status": "Success"}}`))
	}))
	defer server.Close()

	records, err := newTestClient(server.URL).SearchVideos(context.Background(), "nothing here")
	if err != nil {
		t.Fatalf("empty result set must not be an error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected 0 records, got %d", len(records))
	}
}

func TestSearch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "Invalid API key"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).SearchVideos(context.Background(), "query")
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestSearch_InBandError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": "Google Videos hasn't returned any results for this query."}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).SearchVideos(context.Background(), "query")
	if err == nil {
		t.Fatal("expected error for in-band error field")
	}
}

func TestRecordFromItem_ChannelPrecedence(t *testing.T) {
	rec := recordFromItem(videoItem{
		Title:       "T",
		Channel:     channelInfo{Name: "Nested"},
		ChannelName: "Flat",
	})
	if rec.Channel != "Nested" {
		t.Errorf("Channel = %q, nested object form must win", rec.Channel)
	}
}

func TestChannelInfo_StringForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"video_results": [{"title": "T", "channel": "Bare String Channel"}]}`))
	}))
	defer server.Close()

	records, err := newTestClient(server.URL).SearchVideos(context.Background(), "query")
	if err != nil {
		t.Fatalf("SearchVideos failed: %v", err)
	}
	if records[0].Channel != "Bare String Channel" {
		t.Errorf("Channel = %q, want bare string form accepted", records[0].Channel)
	}
}
