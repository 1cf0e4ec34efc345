package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Notifier delivers a rendered briefing to its destination. The caller
// only learns whether delivery succeeded.
type Notifier interface {
	Send(text string) error
}

// TelegramNotifier sends messages to a chat via the Telegram Bot API.
type TelegramNotifier struct {
	botToken string
	chatID   string
	http     *resty.Client
}

// NewTelegramNotifier builds a notifier for the given bot token and
// target chat id.
func NewTelegramNotifier(botToken, chatID string) *TelegramNotifier {
	return &TelegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		http: resty.New().
			SetBaseURL("https://api.telegram.org").
			SetTimeout(30 * time.Second),
	}
}

// Send posts the message to the configured chat. Non-200 replies are
// returned as errors with the Telegram response body attached.
func (t *TelegramNotifier) Send(text string) error {
	payload := map[string]string{
		"chat_id": t.chatID,
		"text":    text,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	resp, err := t.http.R().
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(fmt.Sprintf("/bot%s/sendMessage", t.botToken))
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("telegram API error: status %d, body: %s", resp.StatusCode(), resp.Body())
	}
	return nil
}
