// Package improve sends finished prompts to an OpenAI-compatible chat completions
// API (Groq by default) for rewriting and suggestions.
package improve

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/HartBrook/promptarchitect/internal/errors"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama3-8b-8192"
	DefaultTimeout = 10 * time.Second

	DefaultMaxTokens   = 1000
	DefaultTemperature = 0.7

	suggestMaxTokens   = 500
	suggestTemperature = 0.8
)

// API key environment variables, checked in order.
const (
	APIKeyEnv         = "GROQ_API_KEY"
	FallbackAPIKeyEnv = "PROMPTARCHITECT_API_KEY"
)

// Client talks to the chat completions endpoint.
type Client struct {
	api         *openai.Client
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float32
	httpClient  *http.Client
	limiter     *rate.Limiter
	logger      *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIKey sets the API key instead of reading it from the environment.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithModel sets the model to use.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		if url != "" {
			c.baseURL = strings.TrimRight(url, "/")
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithMaxTokens sets the completion budget for Improve.
func WithMaxTokens(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.maxTokens = n
		}
	}
}

// WithTemperature sets the sampling temperature for Improve.
func WithTemperature(t float64) ClientOption {
	return func(c *Client) {
		c.temperature = float32(t)
	}
}

// WithRateLimit caps requests per minute. Zero or less disables the limiter.
func WithRateLimit(requestsPerMinute int) ClientOption {
	return func(c *Client) {
		if requestsPerMinute <= 0 {
			c.limiter = nil
			return
		}
		rps := float64(requestsPerMinute) / 60.0
		c.limiter = rate.NewLimiter(rate.Limit(rps), max(1, requestsPerMinute/5))
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// APIKeyFromEnv returns the first non-empty API key variable.
func APIKeyFromEnv() string {
	for _, name := range []string{APIKeyEnv, FallbackAPIKeyEnv} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// NewClient creates a client. Without WithAPIKey the key is read from
// GROQ_API_KEY, then PROMPTARCHITECT_API_KEY.
func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		apiKey:      APIKeyFromEnv(),
		baseURL:     DefaultBaseURL,
		model:       DefaultModel,
		maxTokens:   DefaultMaxTokens,
		temperature: DefaultTemperature,
		httpClient:  &http.Client{},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.apiKey == "" {
		return nil, errors.AINotConfigured()
	}

	cfg := openai.DefaultConfig(c.apiKey)
	cfg.BaseURL = c.baseURL
	cfg.HTTPClient = c.httpClient
	c.api = openai.NewClientWithConfig(cfg)

	return c, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Improve asks the model for a better version of text.
func (c *Client) Improve(ctx context.Context, text string) (string, error) {
	content, err := c.complete(ctx, buildImproveSystemPrompt(), buildImproveUserPrompt(text), c.maxTokens, c.temperature)
	if err != nil {
		return "", err
	}
	if content == "" {
		return "", errors.AIInvalidResponse()
	}
	return content, nil
}

// Suggest asks for short suggestions for a theme and objective, one per line.
func (c *Client) Suggest(ctx context.Context, theme, objective string) ([]string, error) {
	content, err := c.complete(ctx, buildSuggestSystemPrompt(), buildSuggestUserPrompt(theme, objective), suggestMaxTokens, suggestTemperature)
	if err != nil {
		return nil, err
	}

	var suggestions []string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			suggestions = append(suggestions, line)
		}
	}
	return suggestions, nil
}

// complete sends one system+user exchange and returns the trimmed first choice.
func (c *Client) complete(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return "", errors.AITimeout(err)
			}
			return "", errors.AIRequestFailed("rate limiter", err)
		}
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
		TopP:        1,
	}

	started := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		c.logger.Debug("chat completion failed", "model", c.model, "error", err)
		return "", mapError(err)
	}
	c.logger.Debug("chat completion", "model", c.model, "choices", len(resp.Choices), "elapsed", time.Since(started))

	if len(resp.Choices) == 0 {
		return "", errors.AIInvalidResponse()
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// mapError converts transport and API failures into typed errors.
func mapError(err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.AITimeout(err)
	}
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return errors.AITimeout(err)
	}

	var apiErr *openai.APIError
	if stderrors.As(err, &apiErr) {
		return errors.AIRequestFailed(fmt.Sprintf("API error (%d): %s", apiErr.HTTPStatusCode, apiErr.Message), err)
	}
	var reqErr *openai.RequestError
	if stderrors.As(err, &reqErr) {
		return errors.AIRequestFailed(fmt.Sprintf("API returned status %d", reqErr.HTTPStatusCode), err)
	}
	return errors.AIRequestFailed("request failed", err)
}
