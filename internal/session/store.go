// Package session provides the durable key-value storage behind the
// storefront's per-session state. It is the server-side replacement for the
// browser's local storage: small serialized snapshots written after every
// mutation and read once at session start.
package session

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when no value is stored under the given key.
var ErrKeyNotFound = errors.New("session key not found")

// Store is the durable local storage contract. Writes carry the full current
// snapshot, so last-write-wins is sufficient and a lost write only costs the
// most recent mutation, never consistency.
type Store interface {
	// ReadString returns the value stored under key.
	// Returns ErrKeyNotFound if the key is absent.
	ReadString(ctx context.Context, key string) (string, error)

	// WriteString stores value under key, replacing any previous value.
	WriteString(ctx context.Context, key, value string) error
}
