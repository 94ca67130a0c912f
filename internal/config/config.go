package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	DatasourceOpenAI = "openai"
	DatasourceAzure  = "azure"

	LanguageZH = "zh"
	LanguageEN = "en"

	EnvPrefix = "CLOG_AI"
)

var (
	ErrNotInitialized    = errors.New("config file not found")
	ErrInvalidDatasource = errors.New("invalid datasource")
	ErrMissingOpenAI     = errors.New("openai configuration is missing")
	ErrMissingAzure      = errors.New("azure configuration is missing")
)

// FileConfig is the content of ~/.config/clog-ai/config.json.
type FileConfig struct {
	Language   string `json:"language" mapstructure:"language"`
	Datasource string `json:"datasource" mapstructure:"datasource"` // openai, azure

	OpenAIAPIKey string `json:"openai_api_key" mapstructure:"openai_api_key"`
	OpenAIModel  string `json:"openai_model" mapstructure:"openai_model"`

	AzureAPIKey       string `json:"azure_api_key" mapstructure:"azure_api_key"`
	AzureDeploymentID string `json:"azure_deployment_id" mapstructure:"azure_deployment_id"`
	AzureBaseURL      string `json:"azure_base_url" mapstructure:"azure_base_url"`
	AzureModel        string `json:"azure_model" mapstructure:"azure_model"`
	AzureAPIVersion   string `json:"azure_api_version" mapstructure:"azure_api_version"`
}

// keys lists every JSON key so viper can resolve env overrides during Unmarshal.
var keys = []string{
	"language",
	"datasource",
	"openai_api_key",
	"openai_model",
	"azure_api_key",
	"azure_deployment_id",
	"azure_base_url",
	"azure_model",
	"azure_api_version",
}

// Template is what init writes: Chinese output, no datasource and empty credentials.
func Template() FileConfig {
	return FileConfig{Language: LanguageZH}
}

// DefaultPath returns $XDG_CONFIG_HOME/clog-ai/config.json, or ~/.config/clog-ai/config.json.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "clog-ai", "config.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "clog-ai", "config.json"), nil
}

// Init writes the template to path unless a file already exists there.
// created reports whether a new file was written.
func Init(path string) (created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating config directory: %w", err)
	}

	b, err := json.MarshalIndent(Template(), "", "  ")
	if err != nil {
		return false, fmt.Errorf("marshaling config: %w", err)
	}

	// O_EXCL keeps a concurrently created file intact.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(b); err != nil {
		return false, fmt.Errorf("writing config file: %w", err)
	}
	return true, nil
}

// Load reads the config file at path. Values can be overridden by
// CLOG_AI_<KEY> environment variables, e.g. CLOG_AI_OPENAI_API_KEY.
func Load(path string) (FileConfig, error) {
	var cfg FileConfig

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, fmt.Errorf("%w: %s", ErrNotInitialized, path)
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for _, k := range keys {
		v.SetDefault(k, "")
	}

	// An empty file is treated as an empty object.
	if len(bytes.TrimSpace(b)) > 0 {
		if err := v.ReadConfig(bytes.NewReader(b)); err != nil {
			return cfg, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config file: %w", err)
	}
	return cfg, nil
}

// Validate checks the datasource and the fields it requires.
func (c FileConfig) Validate() error {
	switch c.Datasource {
	case DatasourceOpenAI:
		if missing := c.missing(map[string]string{
			"openai_api_key": c.OpenAIAPIKey,
		}); len(missing) > 0 {
			return fmt.Errorf("%w: %s", ErrMissingOpenAI, strings.Join(missing, ", "))
		}
	case DatasourceAzure:
		if missing := c.missing(map[string]string{
			"azure_api_key":       c.AzureAPIKey,
			"azure_deployment_id": c.AzureDeploymentID,
			"azure_base_url":      c.AzureBaseURL,
			"azure_model":         c.AzureModel,
			"azure_api_version":   c.AzureAPIVersion,
		}); len(missing) > 0 {
			return fmt.Errorf("%w: %s", ErrMissingAzure, strings.Join(missing, ", "))
		}
	default:
		return fmt.Errorf("%w: %q (supported: openai, azure)", ErrInvalidDatasource, c.Datasource)
	}
	return nil
}

// missing returns the required keys whose values are blank, in key order.
func (c FileConfig) missing(required map[string]string) []string {
	var out []string
	for _, k := range keys {
		v, ok := required[k]
		if ok && strings.TrimSpace(v) == "" {
			out = append(out, k)
		}
	}
	return out
}

// IsConfigError reports whether err comes from loading or validating the config.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrNotInitialized) ||
		errors.Is(err, ErrInvalidDatasource) ||
		errors.Is(err, ErrMissingOpenAI) ||
		errors.Is(err, ErrMissingAzure)
}

// ResolveString returns the first non-blank value.
func ResolveString(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
