package messaging

import (
	"context"
)

// ToastsSubject is the JetStream subject carrying user-facing toast notifications.
const ToastsSubject = "storefront.toasts"

// ToastsStream is the JetStream stream that holds toast events.
const ToastsStream = "STOREFRONT"

type Event interface {
	Subject() string
	Payload() ([]byte, error)
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
