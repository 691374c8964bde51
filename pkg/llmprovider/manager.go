package llmprovider

import (
	"context"
	"fmt"
	"time"

	"concierge-router/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic.
// It answers for the general agent.
type Manager struct {
	providers []Provider
	config    Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // global timeout for the entire fallback chain
}

// NewManager creates a new Provider Manager with the given providers, in
// priority order.
func NewManager(providers []Provider, config Config, logger log.Logger) *Manager {
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Providers returns the chain in priority order.
func (m *Manager) Providers() []Provider {
	return m.providers
}

// GenerateText iterates through providers in priority order with fallback logic
func (m *Manager) GenerateText(ctx context.Context, prompt string, webSearch bool) (string, error) {
	if len(m.providers) == 0 {
		return "", ErrNoProvidersConfigured
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("global timeout exceeded after trying %d provider(s): %w", i, err)
		}

		text, err := m.generateWithRetry(ctx, provider, prompt, webSearch)
		if err == nil {
			m.logger.Infof(ctx, "pkg.llmprovider.GenerateText: provider=%s model=%s reply_len=%d",
				provider.Name(), provider.Model(), len(text))
			return text, nil
		}

		m.logger.Warnf(ctx, "pkg.llmprovider.GenerateText: provider=%s model=%s failed: %v",
			provider.Name(), provider.Model(), err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return "", fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry retries one provider with linear backoff.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, prompt string, webSearch bool) (string, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, err := provider.GenerateText(ctx, prompt, webSearch)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}

	return "", lastErr
}
