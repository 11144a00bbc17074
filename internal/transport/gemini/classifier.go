package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/Pranav-Patel-123/WaY-scrapping/internal/metrics"
)

// Classifier calls the Gemini API through its OpenAI-compatible chat surface.
type Classifier struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// Config holds the classifier settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Logger  *zap.Logger
}

// NewClassifier creates a Gemini classifier client.
func NewClassifier(cfg *Config) *Classifier {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	return &Classifier{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

// Complete implements route.Classifier. Returns the trimmed model output
// with transport-level metrics.
func (c *Classifier) Complete(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, req)

	duration := time.Since(start)

	if err != nil {
		metrics.ClassifierRequestsTotal.WithLabelValues(c.model, "error").Inc()
		return "", parseAPIError(err)
	}

	if len(resp.Choices) == 0 {
		metrics.ClassifierRequestsTotal.WithLabelValues(c.model, "error").Inc()
		return "", errors.New("empty completion response")
	}

	metrics.ClassifierRequestsTotal.WithLabelValues(c.model, "success").Inc()
	metrics.ClassifierRequestDuration.WithLabelValues(c.model).Observe(duration.Seconds())

	output := strings.TrimSpace(resp.Choices[0].Message.Content)
	c.logger.Debug("classifier response",
		zap.String("model", c.model),
		zap.String("output", output),
		zap.Duration("latency", duration),
	)

	return output, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (c *Classifier) HealthCheck(ctx context.Context) error {
	if _, err := c.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// parseAPIError extracts a human-readable error from the API response.
func parseAPIError(err error) error {
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("classifier API error %d: %s", reqErr.HTTPStatusCode, string(reqErr.Body))
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("classifier API error %d: %s", apiErr.HTTPStatusCode, apiErr.Message)
	}

	return fmt.Errorf("classifier request failed: %w", err)
}
