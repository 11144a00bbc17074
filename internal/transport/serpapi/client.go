package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/Pranav-Patel-123/WaY-scrapping/internal/domain"
	"github.com/Pranav-Patel-123/WaY-scrapping/internal/metrics"
)

// SerpAPI engine names. The youtube engine takes search_query instead of q.
const (
	engineGoogleVideos = "google_videos"
	engineYouTube      = "youtube"
)

// Client is a typed client for the SerpAPI video-search engines.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// Config holds SerpAPI client settings.
type Config struct {
	APIKey  string
	BaseURL string
	Logger  *zap.Logger
}

// NewClient creates a SerpAPI client.
func NewClient(cfg *Config) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  cfg.Logger,
	}
}

// SearchVideos implements route.GeneralSearcher via the google_videos engine.
func (c *Client) SearchVideos(ctx context.Context, query string) ([]domain.VideoRecord, error) {
	params := url.Values{}
	params.Set("engine", engineGoogleVideos)
	params.Set("q", query)
	return c.search(ctx, engineGoogleVideos, params)
}

// SearchPlatform implements route.GeneralSearcher via the youtube engine,
// used as the platform branch fallback.
func (c *Client) SearchPlatform(ctx context.Context, query string) ([]domain.VideoRecord, error) {
	params := url.Values{}
	params.Set("engine", engineYouTube)
	params.Set("search_query", query)
	return c.search(ctx, engineYouTube, params)
}

func (c *Client) search(ctx context.Context, engine string, params url.Values) ([]domain.VideoRecord, error) {
	params.Set("api_key", c.apiKey)
	reqURL := c.baseURL + "/search.json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(engine, "error").Inc()
		return nil, fmt.Errorf("serpapi request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(engine, "error").Inc()
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequestsTotal.WithLabelValues(engine, "error").Inc()
		return nil, fmt.Errorf("serpapi status %d: %s", resp.StatusCode, apiErrorDetail(body))
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(engine, "error").Inc()
		return nil, fmt.Errorf("decode response: %w", err)
	}
	// SerpAPI reports some failures in-band with a 200 status.
	if parsed.Error != "" {
		metrics.ProviderRequestsTotal.WithLabelValues(engine, "error").Inc()
		return nil, fmt.Errorf("serpapi error: %s", parsed.Error)
	}

	metrics.ProviderRequestsTotal.WithLabelValues(engine, "success").Inc()
	metrics.ProviderRequestDuration.WithLabelValues(engine).Observe(time.Since(start).Seconds())

	c.logger.Debug("serpapi search finished",
		zap.String("engine", engine),
		zap.Int("results", len(parsed.VideoResults)),
	)

	records := make([]domain.VideoRecord, 0, len(parsed.VideoResults))
	for _, item := range parsed.VideoResults {
		records = append(records, recordFromItem(item))
	}
	return records, nil
}

// recordFromItem normalizes one SerpAPI item. The nested channel object wins
// over the flat channel_name field.
func recordFromItem(item videoItem) domain.VideoRecord {
	channel := item.Channel.Name
	if channel == "" {
		channel = item.ChannelName
	}
	return domain.VideoRecord{
		Title:       item.Title,
		Link:        item.Link,
		Description: item.Description,
		Channel:     channel,
		Views:       string(item.Views),
	}
}

// apiErrorDetail extracts the "error" field from a JSON error body.
func apiErrorDetail(body []byte) string {
	var parsed struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Error != "" {
		return parsed.Error
	}
	return string(body)
}
