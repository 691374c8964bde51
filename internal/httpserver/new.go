package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"concierge-router/internal/chat"
	chatTelegram "concierge-router/internal/chat/delivery/telegram"
	"concierge-router/internal/middleware"
	"concierge-router/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	allowedOrigins  []string

	// Chat domain
	chatUC          chat.UseCase
	middleware      middleware.Middleware
	telegramHandler chatTelegram.Handler

	// Metrics
	gatherer prometheus.Gatherer
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	// AllowedOrigins restricts CORS; empty allows every origin.
	AllowedOrigins []string

	// Chat domain
	ChatUseCase chat.UseCase
	Middleware  middleware.Config

	// TelegramHandler is optional; nil skips the webhook route.
	TelegramHandler chatTelegram.Handler

	// Gatherer backs /metrics; nil disables the route.
	Gatherer prometheus.Gatherer
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		allowedOrigins:  cfg.AllowedOrigins,
		chatUC:          cfg.ChatUseCase,
		telegramHandler: cfg.TelegramHandler,
		gatherer:        cfg.Gatherer,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.middleware = middleware.New(logger, cfg.Middleware)
	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	return nil
}
