package llmprovider

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"concierge-router/pkg/deepseek"
	"concierge-router/pkg/gemini"
)

// Provider names understood by the factory.
const (
	NameGemini   = "gemini"
	NameDeepSeek = "deepseek"
	NameQwen     = "qwen"
)

// DefaultQwenBaseURL is DashScope's OpenAI-compatible endpoint.
const DefaultQwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string
	Enabled  bool
	Priority int
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

// InitializeProviders builds the enabled providers sorted by priority
// (ascending). Providers that fail to initialize are skipped and reported
// in the returned warnings.
func InitializeProviders(cfgs []ProviderConfig) ([]Provider, []string, error) {
	var enabled []ProviderConfig
	for _, p := range cfgs {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var (
		providers []Provider
		warnings  []string
	)
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, warnings, fmt.Errorf("no providers successfully initialized: %s", strings.Join(warnings, "; "))
	}
	return providers, warnings, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg ProviderConfig) (Provider, error) {
	switch cfg.Name {
	case NameGemini:
		client, err := gemini.New(gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			APIURL:  cfg.BaseURL,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return Named(cfg.Name, client), nil

	case NameDeepSeek, NameQwen:
		baseURL := cfg.BaseURL
		if baseURL == "" && cfg.Name == NameQwen {
			baseURL = DefaultQwenBaseURL
		}
		client, err := deepseek.New(deepseek.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: baseURL,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
		}
		return Named(cfg.Name, client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}
}
