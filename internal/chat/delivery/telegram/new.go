package telegram

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"concierge-router/internal/chat"
	pkgLog "concierge-router/pkg/log"
)

const defaultProcessTimeout = 90 * time.Second

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
	// Wait blocks until background replies finish or ctx is done.
	Wait(ctx context.Context) error
}

// Messenger sends replies back to a chat.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendChatAction(ctx context.Context, chatID int64, action string) error
}

// Config configures the Telegram channel.
type Config struct {
	// Secret must match the secret token header when set.
	Secret string
	// Mode is the operating mode for Telegram chats; empty uses the default.
	Mode           string
	ProcessTimeout time.Duration
}

type handler struct {
	l   pkgLog.Logger
	uc  chat.UseCase
	bot Messenger
	cfg Config

	// spawn runs background work; tests replace it to run inline.
	spawn func(func())
	wg    sync.WaitGroup
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase, bot Messenger, cfg Config) *handler {
	if cfg.ProcessTimeout <= 0 {
		cfg.ProcessTimeout = defaultProcessTimeout
	}
	h := &handler{
		l:   l,
		uc:  uc,
		bot: bot,
		cfg: cfg,
	}
	h.spawn = h.goTracked
	return h
}

// goTracked runs f in a goroutine counted by Wait.
func (h *handler) goTracked(f func()) {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		f()
	}()
}

// Wait blocks until every background reply has been sent or ctx is done.
func (h *handler) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
