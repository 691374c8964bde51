package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"concierge-router/internal/chat"
	pkgLog "concierge-router/pkg/log"
	pkgResponse "concierge-router/pkg/response"
	pkgTelegram "concierge-router/pkg/telegram"
)

const (
	cmdStart = "/start"
	cmdHelp  = "/help"
	cmdReset = "/reset"

	replyWelcome = "Welcome aboard! Ask me about private charters, aircraft, airports, " +
		"or anything else. Send /reset to start a new conversation."
	replyReset = "Conversation cleared."
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and answers in the background, since routing
// plus the downstream processors can outlast Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cfg.Secret != "" {
		got := c.GetHeader(pkgTelegram.HeaderSecretToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.cfg.Secret)) != 1 {
			h.l.Warnf(ctx, "internal.chat.delivery.telegram.HandleWebhook: bad secret token from %s", c.ClientIP())
			pkgResponse.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "internal.chat.delivery.telegram.HandleWebhook: failed to parse update: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	// Ignore non-text updates
	if update.Message == nil || update.Message.Chat == nil || strings.TrimSpace(update.Message.Text) == "" {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	requestID, ok := pkgLog.RequestID(ctx)
	if !ok {
		requestID = uuid.NewString()
	}

	h.spawn(func() {
		// Detach from the request context, which ends with the response.
		bgCtx, cancel := context.WithTimeout(pkgLog.WithRequestID(context.Background(), requestID), h.cfg.ProcessTimeout)
		defer cancel()

		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "internal.chat.delivery.telegram.processMessage: %v", err)
			if sendErr := h.bot.SendMessage(bgCtx, msg.Chat.ID, errorMessage(err)); sendErr != nil {
				h.l.Warnf(bgCtx, "internal.chat.delivery.telegram.processMessage: failed to send error reply: %v", sendErr)
			}
		}
	})

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID
	sid := sessionID(chatID)
	text := strings.TrimSpace(msg.Text)

	switch command(text) {
	case cmdStart, cmdHelp:
		return h.bot.SendMessage(ctx, chatID, replyWelcome)
	case cmdReset:
		if err := h.uc.ResetSession(ctx, sid); err != nil {
			return err
		}
		return h.bot.SendMessage(ctx, chatID, replyReset)
	}

	if err := h.bot.SendChatAction(ctx, chatID, "typing"); err != nil {
		h.l.Warnf(ctx, "internal.chat.delivery.telegram.processMessage: failed to send typing action: %v", err)
	}

	out, err := h.uc.Handle(ctx, chat.MessageInput{
		SessionID: sid,
		Message:   text,
		Mode:      h.cfg.Mode,
	})
	if err != nil {
		return err
	}

	h.l.Infof(ctx, "internal.chat.delivery.telegram.processMessage: chat=%d strategy=%s degraded=%t",
		chatID, out.Decision.Strategy, out.Degraded)
	return h.bot.SendMessage(ctx, chatID, out.Reply)
}

func sessionID(chatID int64) string {
	return fmt.Sprintf("telegram:%d", chatID)
}

// command returns the bot command in text, without any @botname suffix.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(strings.Fields(text)[0], "@")
	return strings.ToLower(cmd)
}
