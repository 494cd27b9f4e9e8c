// Package telegram delivers formatted notification documents to the
// trainer's chat through the Bot API sendMessage endpoint. The retry
// policy is deliberately narrow: only a markup-parse rejection earns a
// second attempt, with the markup stripped and rich rendering disabled.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fitpro-warsaw/fitpro-api/config"
	"github.com/fitpro-warsaw/fitpro-api/internal/markup"
	"github.com/fitpro-warsaw/fitpro-api/pkg/httpclient"
	"github.com/fitpro-warsaw/fitpro-api/pkg/logger"
	"github.com/fitpro-warsaw/fitpro-api/pkg/metrics"
	"go.uber.org/zap"
)

// MessageLimit is the Bot API text length limit per message.
const MessageLimit = 4096

// parseErrorMarker appears in the API error description when the HTML
// entities of the message cannot be parsed.
const parseErrorMarker = "can't parse"

// ErrNotConfigured is returned when the bot token or chat id is absent.
// Retrying cannot fix missing configuration, so callers report it as a
// server configuration error without retry.
var ErrNotConfigured = errors.New("telegram credentials not configured")

// DeliveryError is a rejection from the Bot API that was not recovered
// by the plain-text retry.
type DeliveryError struct {
	StatusCode  int
	Description string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("telegram delivery failed with status %d: %s", e.StatusCode, e.Description)
}

// Notifier sends notification documents to a fixed chat.
type Notifier struct {
	botToken   string
	chatID     string
	apiBase    string
	httpClient httpclient.Client
}

// NewNotifier creates a notifier for the configured chat. Credentials
// may be empty; Send then fails with ErrNotConfigured per call.
func NewNotifier(cfg config.TelegramConfig, client httpclient.Client) *Notifier {
	return &Notifier{
		botToken:   cfg.BotToken,
		chatID:     cfg.ChatID,
		apiBase:    cfg.APIBase,
		httpClient: client,
	}
}

// Configured reports whether both credentials are present.
func (n *Notifier) Configured() bool {
	return n.botToken != "" && n.chatID != ""
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// Send delivers text with HTML rendering. When the API rejects the
// markup, it retries exactly once with bold tags stripped and
// parse_mode omitted. Any other failure surfaces without retry.
func (n *Notifier) Send(ctx context.Context, text string) error {
	if !n.Configured() {
		return ErrNotConfigured
	}

	status, body, err := n.post(ctx, sendMessageRequest{
		ChatID:    n.chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		metrics.TelegramDeliveries.WithLabelValues("error", "html").Inc()
		return err
	}
	if status >= 200 && status < 300 {
		metrics.TelegramDeliveries.WithLabelValues("success", "html").Inc()
		return nil
	}

	if !strings.Contains(body, parseErrorMarker) {
		metrics.TelegramDeliveries.WithLabelValues("rejected", "html").Inc()
		return &DeliveryError{StatusCode: status, Description: body}
	}

	logger.Warn("Telegram rejected HTML markup, retrying as plain text",
		zap.Int("status", status))

	status, body, err = n.post(ctx, sendMessageRequest{
		ChatID: n.chatID,
		Text:   markup.StripBold(text),
	})
	if err != nil {
		metrics.TelegramDeliveries.WithLabelValues("error", "plain").Inc()
		return err
	}
	if status >= 200 && status < 300 {
		metrics.TelegramDeliveries.WithLabelValues("success", "plain").Inc()
		return nil
	}

	metrics.TelegramDeliveries.WithLabelValues("rejected", "plain").Inc()
	return &DeliveryError{StatusCode: status, Description: body}
}

// post performs one sendMessage call and returns the response status
// and body. The bot token never reaches the logs.
func (n *Notifier) post(ctx context.Context, payload sendMessageRequest) (int, string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, "", fmt.Errorf("failed to encode sendMessage payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return 0, "", fmt.Errorf("failed to create sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("failed to call Telegram API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("failed to read Telegram response: %w", err)
	}

	return resp.StatusCode, string(body), nil
}
