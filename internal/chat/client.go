package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Client calls an OpenAI-compatible chat-completion endpoint.
type Client struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// ClientConfig configures the generation client. The API key is read from
// the named environment variable at construction time and never persisted.
type ClientConfig struct {
	BaseURL   string
	APIKeyEnv string
	Model     string
	Timeout   time.Duration
}

// NewClient creates a generation client. A missing API key is a fatal
// configuration error: the caller must halt instead of degrading.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.APIKeyEnv == "" {
		return nil, errors.New("chat: APIKeyEnv is required")
	}
	key := os.Getenv(cfg.APIKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("missing API key in env %s", cfg.APIKeyEnv)
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	ocfg := openai.DefaultConfig(key)
	if cfg.BaseURL != "" {
		ocfg.BaseURL = cfg.BaseURL
	}
	ocfg.HTTPClient = &http.Client{Timeout: timeout}
	return &Client{
		client: openai.NewClientWithConfig(ocfg),
		model:  cfg.Model,
		logger: slog.Default().With("component", "chat-client"),
	}, nil
}

// Complete sends the messages and returns the single completion string.
func (c *Client) Complete(ctx context.Context, msgs []Turn) (string, error) {
	messages := make([]openai.ChatCompletionMessage, len(msgs))
	for i, m := range msgs {
		messages[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}
	c.logger.Debug("requesting completion", "model", c.model, "messages", len(messages))
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		c.logger.Error("completion failed", "err", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion returned")
	}
	return resp.Choices[0].Message.Content, nil
}
