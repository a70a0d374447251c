// Package notify is the storefront's toast collaborator: fire-and-forget
// success/warning/error notifications shown to the user. Callers never block
// on delivery and never fail because of it.
package notify

import (
	"context"
	"log/slog"

	"github.com/abgdnv/storefront/pkg/messaging/events"
)

// Notifier delivers user-facing toasts. Implementations must be non-blocking
// from the caller's perspective and must swallow delivery failures.
type Notifier interface {
	Success(ctx context.Context, sessionID, message string)
	Info(ctx context.Context, sessionID, message string)
	Warning(ctx context.Context, sessionID, message string)
	Error(ctx context.Context, sessionID, message string)
}

// LogNotifier writes toasts to the structured log. It is the default
// implementation when no message broker is configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a Notifier backed by the provided logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "toast")}
}

var _ Notifier = (*LogNotifier)(nil)

func (n *LogNotifier) Success(ctx context.Context, sessionID, message string) {
	n.log(ctx, slog.LevelInfo, events.ToastSuccess, sessionID, message)
}

func (n *LogNotifier) Info(ctx context.Context, sessionID, message string) {
	n.log(ctx, slog.LevelInfo, events.ToastInfo, sessionID, message)
}

func (n *LogNotifier) Warning(ctx context.Context, sessionID, message string) {
	n.log(ctx, slog.LevelWarn, events.ToastWarning, sessionID, message)
}

func (n *LogNotifier) Error(ctx context.Context, sessionID, message string) {
	n.log(ctx, slog.LevelError, events.ToastError, sessionID, message)
}

func (n *LogNotifier) log(ctx context.Context, level slog.Level, toastLevel events.ToastLevel, sessionID, message string) {
	n.logger.Log(ctx, level, message, "toast_level", string(toastLevel), "session_id", sessionID)
}
