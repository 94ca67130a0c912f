package azure

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hoanghonghuy/clog-ai/internal/ai"
	"github.com/hoanghonghuy/clog-ai/internal/config"
)

// Config holds Azure OpenAI settings.
type Config struct {
	BaseURL      string // e.g. "https://my-resource.openai.azure.com"
	DeploymentID string
	APIVersion   string // e.g. "2024-02-01"
	APIKey       string
	Model        string
}

// Client implements ai.Provider for an Azure OpenAI deployment.
type Client struct {
	cfg  Config
	http *http.Client
}

func New(cfg Config) *Client {
	cfg.Model = config.ResolveString(cfg.Model, ai.DefaultModel)
	return &Client{
		cfg:  cfg,
		http: ai.NewHTTPClient(),
	}
}

// URL is {base}/openai/deployments/{deployment}/chat/completions?api-version={version}.
func (c *Client) URL() string {
	base := strings.TrimRight(c.cfg.BaseURL, "/")
	return fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		base, url.PathEscape(c.cfg.DeploymentID), url.QueryEscape(c.cfg.APIVersion))
}

func (c *Client) Model() string { return c.cfg.Model }

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	header := http.Header{}
	header.Set("api-key", c.cfg.APIKey)
	return ai.PostChat(ctx, c.http, c.URL(), header, ai.NewChatRequest(c.cfg.Model, prompt))
}
