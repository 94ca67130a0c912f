package openai

import (
	"context"
	"net/http"
	"strings"

	"github.com/hoanghonghuy/clog-ai/internal/ai"
	"github.com/hoanghonghuy/clog-ai/internal/config"
)

const DefaultBaseURL = "https://api.openai.com/v1"

type Config struct {
	BaseURL string // empty means DefaultBaseURL
	APIKey  string
	Model   string // empty means ai.DefaultModel
}

// Client implements ai.Provider for the OpenAI chat completions API.
type Client struct {
	cfg  Config
	http *http.Client
}

func New(cfg Config) *Client {
	cfg.BaseURL = config.ResolveString(cfg.BaseURL, DefaultBaseURL)
	cfg.Model = config.ResolveString(cfg.Model, ai.DefaultModel)
	return &Client{
		cfg:  cfg,
		http: ai.NewHTTPClient(),
	}
}

func (c *Client) URL() string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
}

func (c *Client) Model() string { return c.cfg.Model }

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	return ai.PostChat(ctx, c.http, c.URL(), header, ai.NewChatRequest(c.cfg.Model, prompt))
}
