// Package llm is the optional bridge to a locally hosted language model. It
// sends the feedback to an OpenAI-compatible endpoint (Ollama by default)
// and parses the model's THEMES / SENTIMENT / ACTIONS answer.
package llm

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Defaults match a stock local Ollama install.
const (
	DefaultBaseURL        = "http://localhost:11434/v1"
	DefaultModel          = "mistral"
	DefaultTimeout        = 180 * time.Second
	DefaultMaxPromptChars = 8000
)

// Config holds configuration for creating a Client.
type Config struct {
	BaseURL        string
	Model          string
	APIKey         string // Optional for local endpoints
	Timeout        time.Duration
	MaxPromptChars int

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Client calls an OpenAI-compatible chat completion endpoint.
type Client struct {
	client         *openai.Client
	model          string
	timeout        time.Duration
	maxPromptChars int
	logger         *zap.Logger
}

// NewClient creates a client. Empty fields take the defaults; a nil logger
// disables logging.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxPromptChars <= 0 {
		cfg.MaxPromptChars = DefaultMaxPromptChars
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.HTTPClient != nil {
		clientConfig.HTTPClient = cfg.HTTPClient
	}

	return &Client{
		client:         openai.NewClientWithConfig(clientConfig),
		model:          cfg.Model,
		timeout:        cfg.Timeout,
		maxPromptChars: cfg.MaxPromptChars,
		logger:         logger.Named("llm"),
	}
}

// Complete sends prompt as a single user message and returns the model's
// text. The call is bounded by the client's timeout.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.logger.Debug("LLM request",
		zap.String("model", c.model),
		zap.Int("prompt_len", len(prompt)))
	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		c.logger.Warn("LLM request failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", Classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", &Error{Type: ErrorEmpty, Message: "no choices in response"}
	}

	c.logger.Info("LLM request completed",
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("elapsed", time.Since(start)))
	return resp.Choices[0].Message.Content, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}
