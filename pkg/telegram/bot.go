package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultAPIBase = "https://api.telegram.org"
	defaultTimeout = 15 * time.Second

	// HeaderSecretToken carries the secret registered with SetWebhook.
	HeaderSecretToken = "X-Telegram-Bot-Api-Secret-Token"

	// MaxMessageLength is the Bot API limit for one text message.
	MaxMessageLength = 4096
)

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("%s/bot%s", defaultAPIBase, token),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram. A non-empty secret is
// echoed by Telegram in HeaderSecretToken on every update.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secret string) error {
	payload := SetWebhookRequest{
		URL:            webhookURL,
		SecretToken:    secret,
		AllowedUpdates: []string{"message"},
	}
	if err := b.call(ctx, "setWebhook", payload); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat. Text beyond
// the Bot API limit is truncated.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	if r := []rune(text); len(r) > MaxMessageLength {
		text = string(r[:MaxMessageLength-1]) + "…"
	}
	payload := SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	}
	if err := b.call(ctx, "sendMessage", payload); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// SendChatAction shows a status such as "typing" while a reply is prepared.
func (b *Bot) SendChatAction(ctx context.Context, chatID int64, action string) error {
	return b.call(ctx, "sendChatAction", ChatActionRequest{ChatID: chatID, Action: action})
}

func (b *Bot) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return fmt.Errorf("telegram %s API error %d: %s", method, resp.StatusCode, string(raw))
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram %s failed: %s", method, apiResp.Description)
	}
	return nil
}
