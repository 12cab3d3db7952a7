package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-management/internal/domain"
	"github.com/spec-kit/ticket-management/internal/events"
	"github.com/spec-kit/ticket-management/internal/notification"
)

type recordingChannel struct {
	name string
	err  error
	got  []notification.Alert
}

func (r *recordingChannel) Name() string { return r.name }

func (r *recordingChannel) Send(_ context.Context, alert notification.Alert) error {
	r.got = append(r.got, alert)
	return r.err
}

func TestNotificationServiceFansOutAlert(t *testing.T) {
	first := &recordingChannel{name: "first", err: errors.New("unreachable")}
	second := &recordingChannel{name: "second"}
	svc := NewNotificationService(events.NewInMemoryDispatcher(), nil, first, second)
	svc.RegisterHandlers()

	err := svc.AlertAdministrator(context.Background(), "Crash on load", "bob")

	assert.ErrorContains(t, err, "unreachable")
	require.Len(t, first.got, 1)
	require.Len(t, second.got, 1)
	assert.Equal(t, "Crash on load", second.got[0].Title)
	assert.Equal(t, "bob", second.got[0].Assignee)
	assert.NotEmpty(t, second.got[0].EventID)
	assert.False(t, second.got[0].RaisedAt.IsZero())
}

func TestNotificationServiceWithoutSubscription(t *testing.T) {
	ch := &recordingChannel{name: "log"}
	svc := NewNotificationService(events.NewInMemoryDispatcher(), nil, ch)

	require.NoError(t, svc.AlertAdministrator(context.Background(), "t", "a"))
	assert.Empty(t, ch.got)
}

func TestNotificationServiceWithoutDispatcher(t *testing.T) {
	svc := NewNotificationService(nil, nil)
	svc.RegisterHandlers()
	assert.Error(t, svc.AlertAdministrator(context.Background(), "t", "a"))
}

func TestTicketServiceAlertsThroughNotificationService(t *testing.T) {
	ch := &recordingChannel{name: "log"}
	notifier := NewNotificationService(events.NewInMemoryDispatcher(), nil, ch)
	notifier.RegisterHandlers()

	var log []string
	svc, err := NewTicketService(TicketDependencies{
		Users:    newFakeDirectory("bob"),
		Tickets:  newFakeStore(&log),
		Notifier: notifier,
	})
	require.NoError(t, err)

	_, err = svc.CreateTicket(context.Background(), CreateTicketInput{
		Title:       "Important outage",
		Priority:    domain.TicketPriorityMedium,
		AssignedTo:  "bob",
		Description: "everything is down",
		CreatedAt:   time.Now(),
	})
	require.NoError(t, err)
	require.Len(t, ch.got, 1)
	assert.Equal(t, "Important outage", ch.got[0].Title)
	assert.Equal(t, "bob", ch.got[0].Assignee)
}
