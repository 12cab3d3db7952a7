package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-management/internal/config"
)

// Alert is delivered to administrators when a ticket reaches high priority.
type Alert struct {
	EventID  string    `json:"event_id"`
	Title    string    `json:"title"`
	Assignee string    `json:"assignee"`
	RaisedAt time.Time `json:"raised_at"`
}

// Channel delivers alerts over one transport.
type Channel interface {
	Name() string
	Send(ctx context.Context, alert Alert) error
}

func (a Alert) subject() string {
	return fmt.Sprintf("High priority ticket: %s", a.Title)
}

func (a Alert) text() string {
	return fmt.Sprintf("Ticket %q was raised to high priority and is assigned to %s.", a.Title, a.Assignee)
}

// ChannelsFromConfig builds the log channel plus every transport with enough configuration to run.
func ChannelsFromConfig(cfg config.NotificationConfig, logger *zap.Logger) ([]Channel, error) {
	channels := []Channel{NewLogChannel(logger)}

	if strings.TrimSpace(cfg.SendGridAPIKey) != "" && strings.TrimSpace(cfg.AdminEmail) != "" {
		channels = append(channels, NewSendGridChannel(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.AdminEmail))
	}
	if strings.TrimSpace(cfg.WebhookURL) != "" {
		channels = append(channels, NewWebhookChannel(cfg.WebhookURL, cfg.WebhookTimeout()))
	}
	if strings.TrimSpace(cfg.TelegramBotToken) != "" && cfg.TelegramAdminChatID != 0 {
		tg, err := NewTelegramChannel(cfg.TelegramBotToken, cfg.TelegramAdminChatID)
		if err != nil {
			return nil, fmt.Errorf("telegram channel: %w", err)
		}
		channels = append(channels, tg)
	}
	return channels, nil
}
