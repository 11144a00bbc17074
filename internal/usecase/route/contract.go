package route

import (
	"context"

	"github.com/Pranav-Patel-123/WaY-scrapping/internal/domain"
)

// Classifier is the generative-language call deciding answer-vs-route.
type Classifier interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GeneralSearcher is the general video-search provider. SearchVideos runs
// the general video engine; SearchPlatform runs the provider's
// platform-specific engine, used as the PLATFORM branch fallback.
type GeneralSearcher interface {
	SearchVideos(ctx context.Context, query string) ([]domain.VideoRecord, error)
	SearchPlatform(ctx context.Context, query string) ([]domain.VideoRecord, error)
}

// PlatformSearcher is the native video-platform API.
type PlatformSearcher interface {
	SearchVideos(ctx context.Context, query string) ([]domain.VideoRecord, error)
}
