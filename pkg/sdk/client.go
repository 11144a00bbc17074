package way

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 60 * time.Second

// Client is the query router SDK entry point.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o.apply(c)
	}
	return c
}

// Search routes a free-text query and returns the outcome.
func (c *Client) Search(ctx context.Context, query string) (Result, error) {
	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return Result{}, fmt.Errorf("way: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body),
	)
	if err != nil {
		return Result{}, fmt.Errorf("way: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("way: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("way: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Result{}, apiErrorFromBody(resp.StatusCode, raw)
	}

	var wire struct {
		Source  string `json:"source"`
		Answer  *string `json:"answer"`
		Results *[]struct {
			Title       string `json:"title"`
			Link        string `json:"link"`
			Description string `json:"description"`
			Channel     string `json:"channel"`
			Views       string `json:"views"`
		} `json:"results"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return Result{}, fmt.Errorf("way: decode response: %w", err)
	}

	out := Result{Source: wire.Source}
	if wire.Answer != nil {
		out.Answer = *wire.Answer
	}
	if wire.Results != nil {
		out.Videos = make([]Video, len(*wire.Results))
		for i, v := range *wire.Results {
			out.Videos[i] = Video{
				Title:       v.Title,
				Link:        v.Link,
				Description: v.Description,
				Channel:     v.Channel,
				Views:       v.Views,
			}
		}
	}
	return out, nil
}

// Health fetches the server health report. A degraded server returns the
// report without an error; only transport failures are errors.
func (c *Client) Health(ctx context.Context) (Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return Health{}, fmt.Errorf("way: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Health{}, fmt.Errorf("way: request failed: %w", err)
	}
	defer resp.Body.Close()

	var wire struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return Health{}, fmt.Errorf("way: decode response: %w", err)
	}

	return Health{Status: wire.Status, Checks: wire.Checks}, nil
}

func apiErrorFromBody(status int, raw []byte) error {
	apiErr := &APIError{StatusCode: status}
	var wire struct {
		Code       string `json:"code"`
		Message    string `json:"message"`
		Dependency string `json:"dependency"`
	}
	if json.Unmarshal(raw, &wire) == nil && wire.Code != "" {
		apiErr.Code = wire.Code
		apiErr.Message = wire.Message
		apiErr.Dependency = wire.Dependency
	} else {
		apiErr.Code = "unexpected_response"
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}
