// Package notify posts structured messages to a Discord webhook. Send reports
// delivery failures as errors but callers treat them as non-fatal, so
// notification trouble cannot block a state change. An unconfigured webhook
// is a silent no-op, not a failure.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"council-rental-backend/internal/logger"
)

// Embed colors used by the dashboard.
const (
	ColorInfo    = 0x3498db
	ColorWarning = 0xf39c12
	ColorDanger  = 0xe74c3c
	ColorSuccess = 0x2ecc71
)

type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type Message struct {
	Title       string
	Description string
	Color       int
	Fields      []Field
}

type embed struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Color       int     `json:"color,omitempty"`
	Fields      []Field `json:"fields,omitempty"`
	Timestamp   string  `json:"timestamp"`
}

type webhookPayload struct {
	Username string  `json:"username,omitempty"`
	Embeds   []embed `json:"embeds"`
}

type DiscordNotifier struct {
	webhookURL string
	username   string
	client     *http.Client
}

// NewDiscordNotifier accepts an empty webhook URL; the notifier then acts as
// a disabled sink and Send reports (false, nil) with a warning.
func NewDiscordNotifier(webhookURL, username string) *DiscordNotifier {
	return &DiscordNotifier{
		webhookURL: webhookURL,
		username:   username,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *DiscordNotifier) Enabled() bool {
	return n.webhookURL != ""
}

func (n *DiscordNotifier) Send(ctx context.Context, msg Message) (bool, error) {
	if !n.Enabled() {
		logger.Warn("Discord webhook not configured, skipping notification", "title", msg.Title)
		return false, nil
	}

	payload := webhookPayload{
		Username: n.username,
		Embeds: []embed{{
			Title:       msg.Title,
			Description: msg.Description,
			Color:       msg.Color,
			Fields:      msg.Fields,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to encode Discord payload", "error", err)
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		logger.Error("Failed to build Discord request", "error", err)
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	logger.ExternalServiceCall("discord", "webhook_post", "title", msg.Title)
	resp, err := n.client.Do(req)
	if err != nil {
		logger.ExternalServiceResult("discord", "webhook_post", err)
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		err := fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
		logger.ExternalServiceResult("discord", "webhook_post", err)
		return false, err
	}

	logger.ExternalServiceResult("discord", "webhook_post", nil)
	return true, nil
}
