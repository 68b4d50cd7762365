package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const slackTimeout = 10 * time.Second

// SlackNotifier отправляет уведомления в Slack через incoming webhook.
type SlackNotifier struct {
	url     string
	channel string
	client  *http.Client
}

// NewSlackNotifier создаёт уведомитель с webhook URL.
// channel может быть пустым — тогда используется канал webhook'а.
func NewSlackNotifier(webhookURL, channel string) *SlackNotifier {
	return &SlackNotifier{
		url:     webhookURL,
		channel: channel,
		client: &http.Client{
			Timeout: slackTimeout,
		},
	}
}

// Notify отправляет сообщение о непрошедшем скане.
func (n *SlackNotifier) Notify(ctx context.Context, event Event) error {
	var sb strings.Builder
	if event.Table != "" {
		fmt.Fprintf(&sb, "*Scan of %s found %d test failures*\n", event.Table, event.FailureCount)
	} else {
		fmt.Fprintf(&sb, "*Scan %s found %d test failures*\n", event.ScanID, event.FailureCount)
	}
	for _, f := range event.Failures {
		fmt.Fprintf(&sb, "• %s\n", f)
	}
	if event.ScanTime != "" {
		fmt.Fprintf(&sb, "Scan time: %s", event.ScanTime)
	}

	payload := map[string]any{"text": sb.String()}
	if n.channel != "" {
		payload["channel"] = n.channel
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send slack notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("slack webhook: %s", resp.Status)
	}
	return nil
}
