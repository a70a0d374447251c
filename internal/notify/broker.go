package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/abgdnv/storefront/pkg/messaging"
	"github.com/abgdnv/storefront/pkg/messaging/events"
)

// BrokerNotifier publishes toasts as ToastEvents on the message broker so the
// relay process can deliver them. Publish failures are logged and dropped;
// a lost toast must never abort the operation that produced it.
type BrokerNotifier struct {
	publisher messaging.Publisher
	logger    *slog.Logger
}

// NewBrokerNotifier creates a Notifier backed by the provided publisher.
func NewBrokerNotifier(publisher messaging.Publisher, logger *slog.Logger) *BrokerNotifier {
	return &BrokerNotifier{
		publisher: publisher,
		logger:    logger.With("component", "toast"),
	}
}

var _ Notifier = (*BrokerNotifier)(nil)

func (n *BrokerNotifier) Success(ctx context.Context, sessionID, message string) {
	n.publish(ctx, events.ToastSuccess, sessionID, message)
}

func (n *BrokerNotifier) Info(ctx context.Context, sessionID, message string) {
	n.publish(ctx, events.ToastInfo, sessionID, message)
}

func (n *BrokerNotifier) Warning(ctx context.Context, sessionID, message string) {
	n.publish(ctx, events.ToastWarning, sessionID, message)
}

func (n *BrokerNotifier) Error(ctx context.Context, sessionID, message string) {
	n.publish(ctx, events.ToastError, sessionID, message)
}

func (n *BrokerNotifier) publish(ctx context.Context, level events.ToastLevel, sessionID, message string) {
	event := events.ToastEvent{
		SessionID: sessionID,
		Level:     level,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := n.publisher.Publish(ctx, event); err != nil {
		n.logger.ErrorContext(ctx, "Failed to publish toast event", "error", err, "toast_level", string(level))
	}
}
