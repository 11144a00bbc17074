package youtube

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/Pranav-Patel-123/WaY-scrapping/internal/domain"
	"github.com/Pranav-Patel-123/WaY-scrapping/internal/metrics"
)

const providerLabel = "youtube_data_api"

// watchURLPrefix synthesizes a short watch link from a video identifier.
const watchURLPrefix = "https://youtu.be/"

// Client wraps the YouTube Data API search endpoint.
type Client struct {
	svc    *yt.Service
	logger *zap.Logger
}

// Config holds YouTube Data API settings.
type Config struct {
	APIKey   string
	Endpoint string // overrides the API endpoint, used in tests
	Logger   *zap.Logger
}

// NewClient creates a YouTube Data API client.
func NewClient(ctx context.Context, cfg *Config) (*Client, error) {
	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Client{svc: svc, logger: cfg.Logger}, nil
}

// SearchVideos implements route.PlatformSearcher via search.list.
func (c *Client) SearchVideos(ctx context.Context, query string) ([]domain.VideoRecord, error) {
	start := time.Now()

	resp, err := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(domain.MaxResults).
		Context(ctx).
		Do()
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(providerLabel, "error").Inc()
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	metrics.ProviderRequestsTotal.WithLabelValues(providerLabel, "success").Inc()
	metrics.ProviderRequestDuration.WithLabelValues(providerLabel).Observe(time.Since(start).Seconds())

	c.logger.Debug("youtube search finished", zap.Int("results", len(resp.Items)))

	records := make([]domain.VideoRecord, 0, len(resp.Items))
	for _, item := range resp.Items {
		// type=video should guarantee a videoId; skip anything else.
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		records = append(records, recordFromSearchResult(item))
	}
	return records, nil
}

// recordFromSearchResult normalizes a native search item. The link is
// synthesized from the video identifier; the native schema carries no
// description or view count at the search.list level used here.
func recordFromSearchResult(item *yt.SearchResult) domain.VideoRecord {
	return domain.VideoRecord{
		Title:   item.Snippet.Title,
		Link:    watchURLPrefix + item.Id.VideoId,
		Channel: item.Snippet.ChannelTitle,
	}
}
