package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error: %v", err)
	}
	want := filepath.Join(dir, "clog-ai", "config.json")
	if got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestDefaultPath_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error: %v", err)
	}
	want := filepath.Join(home, ".config", "clog-ai", "config.json")
	if got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestInit_WritesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	created, err := Init(path)
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if !created {
		t.Fatal("Init() created = false, want true")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	want := `{
  "language": "zh",
  "datasource": "",
  "openai_api_key": "",
  "openai_model": "",
  "azure_api_key": "",
  "azure_deployment_id": "",
  "azure_base_url": "",
  "azure_model": "",
  "azure_api_version": ""
}`
	if string(b) != want {
		t.Errorf("template =\n%s\nwant\n%s", b, want)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("mode = %o, want 600", perm)
	}
}

func TestInit_DoesNotOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	if _, err := Init(path); err != nil {
		t.Fatalf("first Init() error: %v", err)
	}
	edited := []byte(`{"language":"en","datasource":"openai","openai_api_key":"sk-test"}`)
	if err := os.WriteFile(path, edited, 0o600); err != nil {
		t.Fatal(err)
	}

	created, err := Init(path)
	if err != nil {
		t.Fatalf("second Init() error: %v", err)
	}
	if created {
		t.Error("second Init() created = true, want false")
	}

	b, _ := os.ReadFile(path)
	if string(b) != string(edited) {
		t.Errorf("config was modified: %s", b)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Load() error = %v, want ErrNotInitialized", err)
	}
	if !IsConfigError(err) {
		t.Error("IsConfigError() = false for ErrNotInitialized")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
  "language": "en",
  "datasource": "azure",
  "azure_api_key": "key",
  "azure_deployment_id": "dep",
  "azure_base_url": "https://example.openai.azure.com",
  "azure_model": "gpt-4o",
  "azure_api_version": "2024-02-01"
}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := FileConfig{
		Language:          "en",
		Datasource:        "azure",
		AzureAPIKey:       "key",
		AzureDeploymentID: "dep",
		AzureBaseURL:      "https://example.openai.azure.com",
		AzureModel:        "gpt-4o",
		AzureAPIVersion:   "2024-02-01",
	}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != (FileConfig{}) {
		t.Errorf("Load() = %+v, want zero config", cfg)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidDatasource) {
		t.Errorf("Validate() = %v, want ErrInvalidDatasource", err)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"language":`), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected error for malformed JSON")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if _, err := Init(path); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CLOG_AI_DATASOURCE", "openai")
	t.Setenv("CLOG_AI_OPENAI_API_KEY", "sk-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Datasource != "openai" {
		t.Errorf("Datasource = %q, want %q", cfg.Datasource, "openai")
	}
	if cfg.OpenAIAPIKey != "sk-env" {
		t.Errorf("OpenAIAPIKey = %q, want %q", cfg.OpenAIAPIKey, "sk-env")
	}
	if cfg.Language != "zh" {
		t.Errorf("Language = %q, want file value %q", cfg.Language, "zh")
	}
}

func TestValidate(t *testing.T) {
	azure := FileConfig{
		Datasource:        "azure",
		AzureAPIKey:       "key",
		AzureDeploymentID: "dep",
		AzureBaseURL:      "https://example.openai.azure.com",
		AzureModel:        "gpt-4o",
		AzureAPIVersion:   "2024-02-01",
	}
	azureNoURL := azure
	azureNoURL.AzureBaseURL = ""
	azureNoKeys := azure
	azureNoKeys.AzureAPIKey = " "
	azureNoKeys.AzureAPIVersion = ""

	tests := []struct {
		name        string
		cfg         FileConfig
		wantErr     error
		wantMissing []string
	}{
		{"openai ok", FileConfig{Datasource: "openai", OpenAIAPIKey: "sk"}, nil, nil},
		{"openai model optional", FileConfig{Datasource: "openai", OpenAIAPIKey: "sk", OpenAIModel: ""}, nil, nil},
		{"openai missing key", FileConfig{Datasource: "openai"}, ErrMissingOpenAI, []string{"openai_api_key"}},
		{"azure ok", azure, nil, nil},
		{"azure missing url", azureNoURL, ErrMissingAzure, []string{"azure_base_url"}},
		{"azure missing several", azureNoKeys, ErrMissingAzure, []string{"azure_api_key", "azure_api_version"}},
		{"azure with only openai fields", FileConfig{Datasource: "azure", OpenAIAPIKey: "sk"}, ErrMissingAzure, nil},
		{"empty datasource", FileConfig{OpenAIAPIKey: "sk"}, ErrInvalidDatasource, nil},
		{"unknown datasource", FileConfig{Datasource: "anthropic"}, ErrInvalidDatasource, nil},
		{"datasource is case sensitive", FileConfig{Datasource: "OpenAI", OpenAIAPIKey: "sk"}, ErrInvalidDatasource, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if !IsConfigError(err) {
				t.Error("IsConfigError() = false")
			}
			for _, k := range tt.wantMissing {
				if !strings.Contains(err.Error(), k) {
					t.Errorf("error %q does not name %q", err, k)
				}
			}
		})
	}
}

func TestResolveString(t *testing.T) {
	tests := []struct {
		vals []string
		want string
	}{
		{[]string{"gpt-4o", "gpt-3.5-turbo-16k"}, "gpt-4o"},
		{[]string{"", "gpt-3.5-turbo-16k"}, "gpt-3.5-turbo-16k"},
		{[]string{"  ", "", "x"}, "x"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := ResolveString(tt.vals...); got != tt.want {
			t.Errorf("ResolveString(%q) = %q, want %q", tt.vals, got, tt.want)
		}
	}
}
