package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"concierge-router/config"
	_ "concierge-router/docs" // Swagger docs
	"concierge-router/internal/chat"
	chatTelegram "concierge-router/internal/chat/delivery/telegram"
	chatUC "concierge-router/internal/chat/usecase"
	"concierge-router/internal/classifier"
	"concierge-router/internal/httpserver"
	"concierge-router/internal/lexicon"
	"concierge-router/internal/middleware"
	"concierge-router/internal/mode"
	"concierge-router/internal/router"
	"concierge-router/internal/subintent"
	"concierge-router/pkg/gemini"
	"concierge-router/pkg/llmprovider"
	"concierge-router/pkg/log"
	"concierge-router/pkg/telegram"
	"concierge-router/pkg/workflow"
)

// @title       Concierge Router API
// @description Routes chat messages between a general assistant and a domain workflow backend.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Concierge Router...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Routing engine
	lex := lexicon.Default()
	if cfg.Routing.LexiconPath != "" {
		lex, err = lexicon.LoadFile(cfg.Routing.LexiconPath)
		if err != nil {
			logger.Errorf(ctx, "Failed to load lexicon: %v", err)
			os.Exit(1)
		}
	}
	logger.Infof(ctx, "Lexicon: %s (%d categories)", lex.Domain(), len(lex.Categories()))

	domain := classifier.New(lex,
		classifier.WithWeights(cfg.Routing.Weights),
		classifier.WithThresholds(cfg.Routing.Thresholds),
	)
	modes := mode.NewRegistry(cfg.Routing.Modes)
	engine := router.New(domain, subintent.Default(), modes,
		router.WithRecommendThresholds(cfg.Routing.Recommend),
	)

	// 4. Collaborators (optional)
	var agent chat.GeneralAgent
	if providers := buildProviders(ctx, logger, cfg); len(providers) > 0 {
		agent = llmprovider.NewManager(providers, llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      cfg.LLM.RetryDelay,
			MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
		}, logger)
		for _, p := range providers {
			logger.Infof(ctx, "General agent provider: %s (%s)", p.Name(), p.Model())
		}
	} else {
		logger.Warn(ctx, "No LLM provider configured, general replies are disabled")
	}

	var backend chat.WorkflowBackend
	if cfg.Workflow.URL != "" {
		workflowClient, wErr := workflow.New(workflow.Config{
			URL:           cfg.Workflow.URL,
			Secret:        cfg.Workflow.Secret,
			Timeout:       cfg.Workflow.Timeout,
			RetryAttempts: cfg.Workflow.RetryAttempts,
			RetryDelay:    cfg.Workflow.RetryDelay,
		}, logger)
		if wErr != nil {
			logger.Errorf(ctx, "Failed to initialize workflow backend: %v", wErr)
			os.Exit(1)
		}
		backend = workflowClient
		logger.Infof(ctx, "Workflow backend: %s", cfg.Workflow.URL)
	} else {
		logger.Warn(ctx, "workflow.url is empty, domain requests are disabled")
	}

	// 5. Chat domain
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	uc := chatUC.New(logger, engine, modes, agent, backend, chatUC.Config{
		DefaultMode:      cfg.Routing.DefaultMode,
		MaxMessageLength: cfg.Session.MaxMessageLength,
		SessionSize:      cfg.Session.Size,
		SessionTTL:       cfg.Session.TTL,
		SessionMaxTurns:  cfg.Session.MaxTurns,
	}, reg)

	// 6. Telegram channel (optional)
	var telegramHandler chatTelegram.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = chatTelegram.New(logger, uc, bot, chatTelegram.Config{
			Secret: cfg.Telegram.Secret,
			Mode:   cfg.Telegram.Mode,
		})
		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.Secret); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram channel skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		AllowedOrigins:  cfg.HTTPServer.AllowedOrigins,
		ChatUseCase:     uc,
		Middleware: middleware.Config{
			RateLimitPerMin: cfg.RateLimit.PerMin,
			RateLimitBurst:  cfg.RateLimit.Burst,
			MaxClients:      cfg.RateLimit.MaxClients,
			ClientTTL:       cfg.RateLimit.ClientTTL,
		},
		TelegramHandler: telegramHandler,
		Gatherer:        reg,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// buildProviders returns the llm.providers chain, or a Gemini-only chain
// when only the gemini section is configured.
func buildProviders(ctx context.Context, logger log.Logger, cfg *config.Config) []llmprovider.Provider {
	if len(cfg.LLM.Providers) > 0 {
		pcfgs := make([]llmprovider.ProviderConfig, len(cfg.LLM.Providers))
		for i, p := range cfg.LLM.Providers {
			pcfgs[i] = llmprovider.ProviderConfig(p)
		}
		providers, warnings, err := llmprovider.InitializeProviders(pcfgs)
		for _, w := range warnings {
			logger.Warnf(ctx, "LLM provider skipped: %s", w)
		}
		if err != nil {
			logger.Errorf(ctx, "LLM providers unavailable: %v", err)
		}
		return providers
	}

	if cfg.Gemini.APIKey == "" {
		return nil
	}
	client, err := gemini.New(gemini.Config{
		APIKey:      cfg.Gemini.APIKey,
		Model:       cfg.Gemini.Model,
		APIURL:      cfg.Gemini.APIURL,
		Timeout:     cfg.Gemini.Timeout,
		Temperature: cfg.Gemini.Temperature,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Gemini: %v", err)
		return nil
	}
	return []llmprovider.Provider{llmprovider.Named(llmprovider.NameGemini, client)}
}
