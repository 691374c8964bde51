package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"concierge-router/internal/classifier"
	"concierge-router/internal/mode"
	"concierge-router/internal/router"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Routing
	Routing RoutingConfig
	Session SessionConfig

	// Collaborators
	Gemini   GeminiConfig
	LLM      LLMConfig
	Workflow WorkflowConfig

	// Channels
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	// AllowedOrigins lists CORS origins; empty allows all.
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin     int
	Burst      int
	MaxClients int
	ClientTTL  time.Duration
}

// RoutingConfig tunes the classifiers and the routing engine. Zero values
// keep the tuned defaults.
type RoutingConfig struct {
	LexiconPath string // empty selects the built-in aviation lexicon
	DefaultMode string
	Modes       []mode.Mode
	Weights     classifier.Weights
	Thresholds  classifier.Thresholds
	Recommend   router.RecommendThresholds
}

type SessionConfig struct {
	MaxMessageLength int
	Size             int
	TTL              time.Duration
	MaxTurns         int
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	APIURL      string
	Timeout     time.Duration
	Temperature float64
}

// LLMConfig configures the general agent's provider fallback chain. With
// no providers the gemini section alone backs the agent.
type LLMConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration
}

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

type WorkflowConfig struct {
	URL           string
	Secret        string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
	Secret     string
	Mode       string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile loads configuration from path, or from the default search paths
// when path is empty.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/app/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.AllowedOrigins = v.GetStringSlice("http_server.allowed_origins")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = v.GetInt("rate_limit.max_clients")
	cfg.RateLimit.ClientTTL = v.GetDuration("rate_limit.client_ttl")

	// Routing
	cfg.Routing.LexiconPath = v.GetString("routing.lexicon_path")
	cfg.Routing.DefaultMode = v.GetString("routing.default_mode")
	cfg.Routing.Modes = loadModes(v)
	cfg.Routing.Weights = classifier.Weights{
		Phrase:  v.GetFloat64("routing.weights.phrase"),
		Entity:  v.GetFloat64("routing.weights.entity"),
		Keyword: v.GetFloat64("routing.weights.keyword"),
		Code:    v.GetFloat64("routing.weights.code"),
	}
	cfg.Routing.Thresholds = classifier.Thresholds{
		WordScale:           v.GetFloat64("routing.thresholds.word_scale"),
		MinDenominator:      v.GetFloat64("routing.thresholds.min_denominator"),
		RelevanceConfidence: v.GetFloat64("routing.thresholds.relevance_confidence"),
		MinDistinctTerms:    v.GetInt("routing.thresholds.min_distinct_terms"),
	}
	cfg.Routing.Recommend = router.RecommendThresholds{
		WorkflowConfidence: v.GetFloat64("routing.recommend.workflow_confidence"),
		ShortMessageWords:  v.GetInt("routing.recommend.short_message_words"),
		GeneralConfidence:  v.GetFloat64("routing.recommend.general_confidence"),
		LongMessageWords:   v.GetInt("routing.recommend.long_message_words"),
		HybridConfidence:   v.GetFloat64("routing.recommend.hybrid_confidence"),
		HybridCategories:   v.GetInt("routing.recommend.hybrid_categories"),
		SequentialMin:      v.GetFloat64("routing.recommend.sequential_min"),
		SequentialMax:      v.GetFloat64("routing.recommend.sequential_max"),
		FallbackConfidence: v.GetFloat64("routing.recommend.fallback_confidence"),
	}

	cfg.Session.MaxMessageLength = v.GetInt("session.max_message_length")
	cfg.Session.Size = v.GetInt("session.size")
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.MaxTurns = v.GetInt("session.max_turns")

	// Gemini
	cfg.Gemini.APIKey = expandEnvVar(v, v.GetString("gemini.api_key"))
	if geminiKey := v.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}
	cfg.Gemini.Model = v.GetString("gemini.model")
	cfg.Gemini.APIURL = v.GetString("gemini.api_url")
	cfg.Gemini.Timeout = v.GetDuration("gemini.timeout")
	cfg.Gemini.Temperature = v.GetFloat64("gemini.temperature")

	// LLM provider chain
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetDuration("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetDuration("llm.max_total_timeout")
	providers, err := loadProviders(v)
	if err != nil {
		return nil, err
	}
	cfg.LLM.Providers = providers

	// Workflow
	cfg.Workflow.URL = v.GetString("workflow.url")
	if workflowURL := v.GetString("workflow_url"); workflowURL != "" {
		cfg.Workflow.URL = workflowURL
	}
	cfg.Workflow.Secret = expandEnvVar(v, v.GetString("workflow.secret"))
	cfg.Workflow.Timeout = v.GetDuration("workflow.timeout")
	cfg.Workflow.RetryAttempts = v.GetInt("workflow.retry_attempts")
	cfg.Workflow.RetryDelay = v.GetDuration("workflow.retry_delay")

	// Telegram
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.Secret = expandEnvVar(v, v.GetString("telegram.secret"))
	cfg.Telegram.Mode = v.GetString("telegram.mode")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("rate_limit.per_min", 60)
	v.SetDefault("rate_limit.max_clients", 1000)
	v.SetDefault("rate_limit.client_ttl", "5m")

	// Routing defaults
	v.SetDefault("routing.default_mode", mode.IDConcierge)
	w := classifier.DefaultWeights()
	v.SetDefault("routing.weights.phrase", w.Phrase)
	v.SetDefault("routing.weights.entity", w.Entity)
	v.SetDefault("routing.weights.keyword", w.Keyword)
	v.SetDefault("routing.weights.code", w.Code)
	t := classifier.DefaultThresholds()
	v.SetDefault("routing.thresholds.word_scale", t.WordScale)
	v.SetDefault("routing.thresholds.min_denominator", t.MinDenominator)
	v.SetDefault("routing.thresholds.relevance_confidence", t.RelevanceConfidence)
	v.SetDefault("routing.thresholds.min_distinct_terms", t.MinDistinctTerms)
	r := router.DefaultRecommendThresholds()
	v.SetDefault("routing.recommend.workflow_confidence", r.WorkflowConfidence)
	v.SetDefault("routing.recommend.short_message_words", r.ShortMessageWords)
	v.SetDefault("routing.recommend.general_confidence", r.GeneralConfidence)
	v.SetDefault("routing.recommend.long_message_words", r.LongMessageWords)
	v.SetDefault("routing.recommend.hybrid_confidence", r.HybridConfidence)
	v.SetDefault("routing.recommend.hybrid_categories", r.HybridCategories)
	v.SetDefault("routing.recommend.sequential_min", r.SequentialMin)
	v.SetDefault("routing.recommend.sequential_max", r.SequentialMax)
	v.SetDefault("routing.recommend.fallback_confidence", r.FallbackConfidence)

	v.SetDefault("session.max_message_length", 4000)
	v.SetDefault("session.size", 10000)
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.max_turns", 20)

	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.timeout", "30s")
	v.SetDefault("gemini.temperature", 0.4)

	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 2)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")

	v.SetDefault("workflow.timeout", "20s")
	v.SetDefault("workflow.retry_attempts", 3)
	v.SetDefault("workflow.retry_delay", "500ms")
}

// loadModes reads routing.modes. Both flags default to true when omitted.
func loadModes(v *viper.Viper) []mode.Mode {
	if !v.IsSet("routing.modes") {
		return nil
	}
	modesList, ok := v.Get("routing.modes").([]interface{})
	if !ok {
		return nil
	}

	var modes []mode.Mode
	for _, m := range modesList {
		modeMap, ok := m.(map[string]interface{})
		if !ok {
			continue
		}
		modes = append(modes, mode.Mode{
			ID:             getStringFromMap(modeMap, "id"),
			IsDomainRouted: getBoolFromMapOr(modeMap, "is_domain_routed", true),
			WebSearch:      getBoolFromMapOr(modeMap, "web_search", true),
		})
	}
	return modes
}

// loadProviders reads llm.providers in file order.
func loadProviders(v *viper.Viper) ([]ProviderConfig, error) {
	if !v.IsSet("llm.providers") {
		return nil, nil
	}
	providersList, ok := v.Get("llm.providers").([]interface{})
	if !ok {
		return nil, errors.New("llm.providers must be a list")
	}

	var providers []ProviderConfig
	for i, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		var timeout time.Duration
		if raw := getStringFromMap(providerMap, "timeout"); raw != "" {
			d, err := time.ParseDuration(raw)
			if err != nil {
				return nil, fmt.Errorf("llm.providers[%d].timeout: %w", i, err)
			}
			timeout = d
		}
		providers = append(providers, ProviderConfig{
			Name:     getStringFromMap(providerMap, "name"),
			Enabled:  getBoolFromMapOr(providerMap, "enabled", false),
			Priority: getIntFromMap(providerMap, "priority"),
			APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
			BaseURL:  getStringFromMap(providerMap, "base_url"),
			Model:    getStringFromMap(providerMap, "model"),
			Timeout:  timeout,
		})
	}
	return providers, nil
}

func validate(cfg *Config) error {
	for i, m := range cfg.Routing.Modes {
		if m.ID == "" {
			return fmt.Errorf("routing.modes[%d]: id is required", i)
		}
	}
	if len(cfg.Routing.Modes) > 0 && !mode.NewRegistry(cfg.Routing.Modes).Has(cfg.Routing.DefaultMode) {
		return fmt.Errorf("routing.default_mode %q is not a configured mode", cfg.Routing.DefaultMode)
	}

	priorities := make(map[int]string)
	for i, p := range cfg.LLM.Providers {
		if p.Name == "" {
			return fmt.Errorf("llm.providers[%d]: name is required", i)
		}
		if !p.Enabled {
			continue
		}
		if other, dup := priorities[p.Priority]; dup {
			return fmt.Errorf("llm.providers: %s and %s share priority %d", other, p.Name, p.Priority)
		}
		priorities[p.Priority] = p.Name
	}

	if cfg.Telegram.Mode != "" && len(cfg.Routing.Modes) > 0 && !mode.NewRegistry(cfg.Routing.Modes).Has(cfg.Telegram.Mode) {
		return fmt.Errorf("telegram.mode %q is not a configured mode", cfg.Telegram.Mode)
	}

	w := cfg.Routing.Weights
	if w.Phrase <= 0 || w.Entity <= 0 || w.Keyword <= 0 || w.Code <= 0 {
		return errors.New("routing.weights: every weight must be positive")
	}
	t := cfg.Routing.Thresholds
	if t.WordScale <= 0 || t.MinDenominator <= 0 {
		return errors.New("routing.thresholds: word_scale and min_denominator must be positive")
	}
	if t.RelevanceConfidence < 0 || t.RelevanceConfidence > 1 {
		return fmt.Errorf("routing.thresholds.relevance_confidence %.2f is outside [0, 1]", t.RelevanceConfidence)
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	// Try viper first (handles both env and config)
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMapOr(m map[string]interface{}, key string, def bool) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return def
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
