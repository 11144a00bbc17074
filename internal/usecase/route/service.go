package route

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Pranav-Patel-123/WaY-scrapping/internal/domain"
	"github.com/Pranav-Patel-123/WaY-scrapping/internal/metrics"
)

// Service routes a query to a direct answer or one of the video providers.
// It holds no mutable state: the result is a pure function of the classifier
// and provider outputs.
type Service struct {
	classifier Classifier
	general    GeneralSearcher
	platform   PlatformSearcher
	logger     *zap.Logger
}

// New creates a routing service. Providers are attached with WithGeneral and
// WithPlatform; an unattached provider means its credential is not configured
// and the corresponding branch fails with ErrProviderNotConfigured.
func New(classifier Classifier, logger *zap.Logger) *Service {
	return &Service{classifier: classifier, logger: logger}
}

// WithGeneral attaches the general video-search provider.
func (s *Service) WithGeneral(g GeneralSearcher) *Service {
	s.general = g
	return s
}

// WithPlatform attaches the native video-platform provider.
func (s *Service) WithPlatform(p PlatformSearcher) *Service {
	s.platform = p
	return s
}

// Route classifies the query and dispatches it to the chosen branch.
func (s *Service) Route(ctx context.Context, query string) (domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.SearchResult{}, domain.ErrEmptyQuery
	}

	raw, err := s.classifier.Complete(ctx, Prompt(query))
	if err != nil {
		return domain.SearchResult{}, domain.NewUpstreamError(domain.DependencyClassifier, err)
	}

	outcome := domain.Interpret(raw)
	switch outcome.Decision {
	case domain.DecisionAnswer:
		metrics.RoutingDecisionsTotal.WithLabelValues("answer").Inc()
		return domain.NewAnswer(outcome.Answer), nil
	case domain.DecisionGeneral:
		metrics.RoutingDecisionsTotal.WithLabelValues("general").Inc()
		return s.routeGeneral(ctx, query)
	case domain.DecisionPlatform:
		metrics.RoutingDecisionsTotal.WithLabelValues("platform").Inc()
		return s.routePlatform(ctx, query)
	}

	metrics.RoutingDecisionsTotal.WithLabelValues("none").Inc()
	return domain.SearchResult{}, domain.ErrRoutingExhausted
}

func (s *Service) routeGeneral(ctx context.Context, query string) (domain.SearchResult, error) {
	if s.general == nil {
		return domain.SearchResult{}, fmt.Errorf("general video search: %w", domain.ErrProviderNotConfigured)
	}

	records, err := s.general.SearchVideos(ctx, query)
	if err != nil {
		return domain.SearchResult{}, domain.NewUpstreamError(domain.DependencyGeneralSearch, err)
	}

	// Zero matches is a valid result, not an error.
	return domain.NewVideoList(domain.SourceGoogleVideos, records), nil
}

// routePlatform tries the platform API first and falls back to the general
// provider's platform-specific engine. Failures of the primary attempt are
// soft: they select the fallback branch instead of surfacing.
func (s *Service) routePlatform(ctx context.Context, query string) (domain.SearchResult, error) {
	if records, ok := s.attemptPlatform(ctx, query); ok {
		return domain.NewVideoList(domain.SourceYouTube, records), nil
	}

	if s.general == nil {
		return domain.SearchResult{}, fmt.Errorf("platform video search: %w", domain.ErrProviderNotConfigured)
	}

	records, err := s.general.SearchPlatform(ctx, query)
	if err != nil {
		return domain.SearchResult{}, domain.NewUpstreamError(domain.DependencyPlatformFallback, err)
	}

	// Fallback records still report the platform source to the caller.
	return domain.NewVideoList(domain.SourceYouTube, records), nil
}

// attemptPlatform is the primary platform call. ok is false on a soft
// failure: provider unconfigured, call error, or an empty result list.
func (s *Service) attemptPlatform(ctx context.Context, query string) ([]domain.VideoRecord, bool) {
	if s.platform == nil {
		return nil, false
	}

	records, err := s.platform.SearchVideos(ctx, query)
	if err != nil {
		s.logger.Debug("platform search failed, falling back", zap.Error(err))
		return nil, false
	}
	if len(records) == 0 {
		s.logger.Debug("platform search returned no results, falling back")
		return nil, false
	}
	return records, true
}
