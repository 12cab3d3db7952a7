package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-management/internal/events"
	"github.com/spec-kit/ticket-management/internal/notification"
)

// NotificationService publishes administrator alerts as events and delivers
// them over every configured channel.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	channels   []notification.Channel
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, channels ...notification.Channel) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		channels:   channels,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventAdministratorAlert, n.handleAdministratorAlert)
}

// AlertAdministrator implements Notifier.
func (n *NotificationService) AlertAdministrator(ctx context.Context, title, assignee string) error {
	if n.dispatcher == nil {
		return errors.New("notification dispatcher not configured")
	}
	return n.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAdministratorAlert,
		Timestamp: time.Now().UTC(),
		Payload:   events.AdministratorAlertPayload{Title: title, Assignee: assignee},
	})
}

func (n *NotificationService) handleAdministratorAlert(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.AdministratorAlertPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	alert := notification.Alert{
		EventID:  event.ID,
		Title:    payload.Title,
		Assignee: payload.Assignee,
		RaisedAt: event.Timestamp,
	}

	var errs []error
	for _, ch := range n.channels {
		if err := ch.Send(ctx, alert); err != nil {
			n.logger.Error("alert delivery failed",
				zap.String("channel", ch.Name()),
				zap.String("event_id", event.ID),
				zap.Error(err))
			errs = append(errs, err)
			continue
		}
		n.logger.Debug("alert delivered", zap.String("channel", ch.Name()), zap.String("event_id", event.ID))
	}
	return errors.Join(errs...)
}
