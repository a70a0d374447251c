package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/abgdnv/storefront/internal/notify"
	"github.com/abgdnv/storefront/internal/session"
	"github.com/google/uuid"
)

// storageKey is the logical local storage key for cart snapshots; the session
// ID is appended to scope it per visitor.
const storageKey = "cartItems"

// Service manages one cart ledger per session. The in-memory ledger is
// authoritative; every mutation is followed by a best-effort write of the full
// snapshot to the session store, and a session's first access rehydrates from
// the last persisted snapshot.
type Service struct {
	mu       sync.Mutex
	sessions session.Store
	notifier notify.Notifier
	logger   *slog.Logger
	ledgers  map[string]*Ledger
}

// NewService creates a cart service persisting to the given session store.
func NewService(sessions session.Store, notifier notify.Notifier, logger *slog.Logger) *Service {
	return &Service{
		sessions: sessions,
		notifier: notifier,
		logger:   logger.With("component", "cart"),
		ledgers:  make(map[string]*Ledger),
	}
}

// AddOrIncrement adds quantity of the product/variant to the session's cart
// and persists the result. Returns the resulting line.
func (s *Service) AddOrIncrement(ctx context.Context, sessionID string, snapshot ProductSnapshot, variant Variant, quantity int32) (*Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := s.ledger(ctx, sessionID)
	line, err := ledger.AddOrIncrement(snapshot, variant, quantity)
	if err != nil {
		return nil, err
	}
	s.persist(ctx, sessionID, ledger)
	s.notifier.Success(ctx, sessionID, fmt.Sprintf("%s (%s) added to cart", snapshot.Name, variant))
	result := *line
	return &result, nil
}

// SetQuantity overwrites a line's quantity; below one removes the line.
// Returns the updated line, or nil if the line was removed or absent.
func (s *Service) SetQuantity(ctx context.Context, sessionID string, productID uuid.UUID, variant Variant, quantity int32) *Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := s.ledger(ctx, sessionID)
	line := ledger.SetQuantity(productID, variant, quantity)
	s.persist(ctx, sessionID, ledger)
	if line == nil {
		return nil
	}
	result := *line
	return &result
}

// Remove deletes the line for the (product, variant) pair. No-op if absent.
func (s *Service) Remove(ctx context.Context, sessionID string, productID uuid.UUID, variant Variant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := s.ledger(ctx, sessionID)
	ledger.Remove(productID, variant)
	s.persist(ctx, sessionID, ledger)
	s.notifier.Info(ctx, sessionID, "Removed from cart")
}

// Lines returns the session's cart lines in insertion order.
func (s *Service) Lines(ctx context.Context, sessionID string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger(ctx, sessionID).Lines()
}

// Total returns the session cart's display total.
func (s *Service) Total(ctx context.Context, sessionID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger(ctx, sessionID).Total()
}

// LineCount returns the number of lines in the session's cart.
func (s *Service) LineCount(ctx context.Context, sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger(ctx, sessionID).LineCount()
}

// IsEmpty reports whether the session's cart has no lines.
func (s *Service) IsEmpty(ctx context.Context, sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger(ctx, sessionID).IsEmpty()
}

// ledger returns the session's in-memory ledger, rehydrating it from the
// persisted snapshot on first access. Callers must hold s.mu.
func (s *Service) ledger(ctx context.Context, sessionID string) *Ledger {
	if ledger, ok := s.ledgers[sessionID]; ok {
		return ledger
	}

	ledger := NewLedger()
	value, err := s.sessions.ReadString(ctx, key(sessionID))
	switch {
	case err == nil:
		if decoded, decodeErr := DecodeLedger([]byte(value)); decodeErr == nil {
			ledger = decoded
		} else {
			s.logger.WarnContext(ctx, "Discarding unreadable cart snapshot", "error", decodeErr, "session_id", sessionID)
		}
	case !errors.Is(err, session.ErrKeyNotFound):
		s.logger.WarnContext(ctx, "Failed to read cart snapshot", "error", err, "session_id", sessionID)
	}

	s.ledgers[sessionID] = ledger
	return ledger
}

// persist writes the full snapshot after a mutation. A failed write is a
// warning, not an error: the in-memory ledger stays authoritative for the
// rest of the session.
func (s *Service) persist(ctx context.Context, sessionID string, ledger *Ledger) {
	data, err := ledger.Encode()
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to encode cart snapshot", "error", err, "session_id", sessionID)
		return
	}
	if err := s.sessions.WriteString(ctx, key(sessionID), string(data)); err != nil {
		s.logger.WarnContext(ctx, "Failed to persist cart snapshot", "error", err, "session_id", sessionID)
		s.notifier.Warning(ctx, sessionID, "Could not save your cart")
	}
}

func key(sessionID string) string {
	return storageKey + ":" + sessionID
}
