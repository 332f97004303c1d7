package openaix

import (
	"strings"
	"time"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type Config struct {
	BaseURL     string        `envconfig:"BASE_URL" split_words:"true"`
	APIKey      string        `envconfig:"API_KEY" split_words:"true"`
	Model       string        `envconfig:"MODEL" split_words:"true" default:"gpt-4o-mini"`
	Temperature float64       `envconfig:"TEMPERATURE" split_words:"true" default:"0.6"`
	Timeout     time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
}

// NewClient creates an OpenAI SDK client. Returns nil when no API key is
// configured so callers can fall back to a stub generator.
func NewClient(cfg Config) *openaisdk.Client {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if trimmed := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); trimmed != "" {
		opts = append(opts, option.WithBaseURL(trimmed))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	client := openaisdk.NewClient(opts...)
	return &client
}
