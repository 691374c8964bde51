package usecase

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"concierge-router/internal/chat"
	"concierge-router/internal/mode"
	"concierge-router/internal/router"
	pkgLog "concierge-router/pkg/log"
)

// Config tunes the chat use case.
type Config struct {
	DefaultMode      string
	MaxMessageLength int
	SessionSize      int
	SessionTTL       time.Duration
	SessionMaxTurns  int
}

type implUseCase struct {
	l        pkgLog.Logger
	router   router.Router
	modes    *mode.Registry
	agent    chat.GeneralAgent
	workflow chat.WorkflowBackend
	sessions *sessionStore
	metrics  *metrics
	cfg      Config
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase instance. agent and backend may be nil when
// the collaborator is not configured; Handle then fails for strategies that
// need it. Metrics are registered on reg.
func New(
	l pkgLog.Logger,
	r router.Router,
	modes *mode.Registry,
	agent chat.GeneralAgent,
	backend chat.WorkflowBackend,
	cfg Config,
	reg prometheus.Registerer,
) *implUseCase {
	if cfg.MaxMessageLength <= 0 {
		cfg.MaxMessageLength = DefaultMaxMessageLength
	}
	if cfg.SessionSize <= 0 {
		cfg.SessionSize = DefaultSessionSize
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.SessionMaxTurns <= 0 {
		cfg.SessionMaxTurns = DefaultSessionMaxTurns
	}
	if cfg.DefaultMode == "" {
		cfg.DefaultMode = mode.IDConcierge
	}

	return &implUseCase{
		l:        l,
		router:   r,
		modes:    modes,
		agent:    agent,
		workflow: backend,
		sessions: newSessionStore(cfg.SessionSize, cfg.SessionTTL, cfg.SessionMaxTurns),
		metrics:  newMetrics(reg),
		cfg:      cfg,
	}
}
