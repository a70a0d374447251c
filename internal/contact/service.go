// Package contact delivers the storefront's contact form messages to the shop
// owner's mailbox.
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abgdnv/storefront/internal/notify"
	"github.com/sony/gobreaker/v2"
)

// MessageDto is an incoming contact form submission.
type MessageDto struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

// Mailer delivers a contact message.
type Mailer interface {
	Send(ctx context.Context, msg MessageDto) error
}

// Service sends contact messages through a circuit breaker so a misbehaving
// SMTP server cannot tie up request handlers.
type Service struct {
	mailer   Mailer
	breaker  *gobreaker.CircuitBreaker[struct{}]
	notifier notify.Notifier
	logger   *slog.Logger
}

// NewService creates a contact service delivering through the given mailer.
func NewService(mailer Mailer, notifier notify.Notifier, logger *slog.Logger) *Service {
	st := gobreaker.Settings{
		Name:        "contact-mailer-cb",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
	}
	return &Service{
		mailer:   mailer,
		breaker:  gobreaker.NewCircuitBreaker[struct{}](st),
		notifier: notifier,
		logger:   logger.With("component", "contact"),
	}
}

// Send delivers the message and notifies the session of the outcome.
func (s *Service) Send(ctx context.Context, sessionID string, msg MessageDto) error {
	_, err := s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, s.mailer.Send(ctx, msg)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to deliver contact message", "error", err)
		s.notifier.Error(ctx, sessionID, "Could not send your message, please try again later")
		return fmt.Errorf("failed to deliver contact message: %w", err)
	}
	s.notifier.Success(ctx, sessionID, "Thanks for reaching out, we will get back to you soon")
	return nil
}
