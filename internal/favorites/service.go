package favorites

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/abgdnv/storefront/internal/notify"
	"github.com/abgdnv/storefront/internal/session"
	"github.com/google/uuid"
)

// storageKey is the logical local storage key for favorites snapshots; the
// session ID is appended to scope it per visitor.
const storageKey = "favoriteProducts"

// Service manages one favorites set per session with the same write-through
// persistence discipline as the cart: memory is authoritative, every mutation
// persists the full snapshot, failures degrade to a warning.
type Service struct {
	mu       sync.Mutex
	sessions session.Store
	notifier notify.Notifier
	logger   *slog.Logger
	sets     map[string]*Set
}

// NewService creates a favorites service persisting to the given session store.
func NewService(sessions session.Store, notifier notify.Notifier, logger *slog.Logger) *Service {
	return &Service{
		sessions: sessions,
		notifier: notifier,
		logger:   logger.With("component", "favorites"),
		sets:     make(map[string]*Set),
	}
}

// Toggle flips the product's membership and persists the result.
// Returns true if the product is a favorite after the call.
func (s *Service) Toggle(ctx context.Context, sessionID string, productID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.set(ctx, sessionID)
	favored := set.Toggle(productID)
	s.persist(ctx, sessionID, set)
	return favored
}

// Remove deletes the product from the session's favorites. No-op if absent.
func (s *Service) Remove(ctx context.Context, sessionID string, productID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.set(ctx, sessionID)
	set.Remove(productID)
	s.persist(ctx, sessionID, set)
	s.notifier.Info(ctx, sessionID, "Removed from favorites")
}

// Contains reports whether the product is a favorite in this session.
func (s *Service) Contains(ctx context.Context, sessionID string, productID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(ctx, sessionID).Contains(productID)
}

// Count returns the number of favorites in this session.
func (s *Service) Count(ctx context.Context, sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(ctx, sessionID).Count()
}

// IDs returns the session's favorite product IDs in unspecified order.
func (s *Service) IDs(ctx context.Context, sessionID string) []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(ctx, sessionID).IDs()
}

// set returns the session's in-memory set, rehydrating it from the persisted
// snapshot on first access. Callers must hold s.mu.
func (s *Service) set(ctx context.Context, sessionID string) *Set {
	if set, ok := s.sets[sessionID]; ok {
		return set
	}

	set := NewSet()
	value, err := s.sessions.ReadString(ctx, key(sessionID))
	switch {
	case err == nil:
		if decoded, decodeErr := DecodeSet([]byte(value)); decodeErr == nil {
			set = decoded
		} else {
			s.logger.WarnContext(ctx, "Discarding unreadable favorites snapshot", "error", decodeErr, "session_id", sessionID)
		}
	case !errors.Is(err, session.ErrKeyNotFound):
		s.logger.WarnContext(ctx, "Failed to read favorites snapshot", "error", err, "session_id", sessionID)
	}

	s.sets[sessionID] = set
	return set
}

// persist writes the full snapshot after a mutation; failures are non-fatal.
func (s *Service) persist(ctx context.Context, sessionID string, set *Set) {
	data, err := set.Encode()
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to encode favorites snapshot", "error", err, "session_id", sessionID)
		return
	}
	if err := s.sessions.WriteString(ctx, key(sessionID), string(data)); err != nil {
		s.logger.WarnContext(ctx, "Failed to persist favorites snapshot", "error", err, "session_id", sessionID)
		s.notifier.Warning(ctx, sessionID, "Could not save your favorites")
	}
}

func key(sessionID string) string {
	return storageKey + ":" + sessionID
}
