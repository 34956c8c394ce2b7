package notifier

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/kernel"
)

// LogNotifier writes notifications to the log. It never fails.
type LogNotifier struct {
	logger *slog.Logger
	clock  kernel.Clock
}

func NewLogNotifier(logger *slog.Logger, clock kernel.Clock) *LogNotifier {
	return &LogNotifier{
		logger: logger.With("component", "log_notifier"),
		clock:  clock,
	}
}

func (n *LogNotifier) Notify(ctx context.Context, destination kernel.PhoneNumber, text string) error {
	msg := newMessage(destination, text, n.clock.Now())
	n.logger.InfoContext(ctx, "notification",
		"message_id", msg.MessageID,
		"to", msg.To,
		"link", msg.Link,
		"text", msg.Text,
	)
	return nil
}
