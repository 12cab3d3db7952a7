package notification

import (
	"context"

	"go.uber.org/zap"
)

// LogChannel writes alerts to the service log.
type LogChannel struct {
	logger *zap.Logger
}

func NewLogChannel(logger *zap.Logger) *LogChannel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogChannel{logger: logger}
}

func (l *LogChannel) Name() string { return "log" }

func (l *LogChannel) Send(_ context.Context, alert Alert) error {
	l.logger.Warn("administrator alert",
		zap.String("event_id", alert.EventID),
		zap.String("title", alert.Title),
		zap.String("assignee", alert.Assignee),
		zap.Time("raised_at", alert.RaisedAt))
	return nil
}
