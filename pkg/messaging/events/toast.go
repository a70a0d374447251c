package events

import (
	"encoding/json"
	"time"

	"github.com/abgdnv/storefront/pkg/messaging"
)

// ToastLevel mirrors the severity levels of the storefront's toast widget.
type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastInfo    ToastLevel = "info"
	ToastWarning ToastLevel = "warning"
	ToastError   ToastLevel = "error"
)

// ToastEvent is a fire-and-forget notification shown to the user.
type ToastEvent struct {
	SessionID string     `json:"session_id,omitempty"`
	Level     ToastLevel `json:"level"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
}

func (t ToastEvent) Subject() string {
	return messaging.ToastsSubject
}

func (t ToastEvent) Payload() ([]byte, error) {
	return json.Marshal(t)
}
