package cart

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/abgdnv/storefront/internal/notify"
	"github.com/abgdnv/storefront/internal/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore reads fine but rejects every write.
type failingStore struct {
	session.Store
	writeErr error
}

func (s *failingStore) WriteString(ctx context.Context, key, value string) error {
	return s.writeErr
}

// recordingNotifier captures emitted toasts per level.
type recordingNotifier struct {
	successes []string
	infos     []string
	warnings  []string
	errors    []string
}

func (n *recordingNotifier) Success(_ context.Context, _ string, message string) {
	n.successes = append(n.successes, message)
}
func (n *recordingNotifier) Info(_ context.Context, _ string, message string) {
	n.infos = append(n.infos, message)
}
func (n *recordingNotifier) Warning(_ context.Context, _ string, message string) {
	n.warnings = append(n.warnings, message)
}
func (n *recordingNotifier) Error(_ context.Context, _ string, message string) {
	n.errors = append(n.errors, message)
}

var _ notify.Notifier = (*recordingNotifier)(nil)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_CartService_AddOrIncrement(t *testing.T) {
	// given
	ctx := context.Background()
	notifier := &recordingNotifier{}
	svc := NewService(session.NewInMemoryStore(), notifier, testLogger())
	cake := snapshotFor("cake", 24.99)

	// when
	line, err := svc.AddOrIncrement(ctx, "sess-1", cake, Vanilla, 2)

	// then
	require.NoError(t, err)
	assert.Equal(t, int32(2), line.Quantity)
	assert.Equal(t, 1, svc.LineCount(ctx, "sess-1"))
	require.Len(t, notifier.successes, 1)
	assert.Contains(t, notifier.successes[0], "added to cart")

	// and: sessions are isolated
	assert.True(t, svc.IsEmpty(ctx, "sess-2"))
}

func Test_CartService_Remove_EmitsToast(t *testing.T) {
	// given
	ctx := context.Background()
	notifier := &recordingNotifier{}
	svc := NewService(session.NewInMemoryStore(), notifier, testLogger())
	cake := snapshotFor("cake", 10)
	_, err := svc.AddOrIncrement(ctx, "sess-1", cake, Chocolate, 1)
	require.NoError(t, err)

	// when
	svc.Remove(ctx, "sess-1", cake.ProductID, Chocolate)

	// then
	assert.True(t, svc.IsEmpty(ctx, "sess-1"))
	require.Len(t, notifier.infos, 1)
	assert.Equal(t, "Removed from cart", notifier.infos[0])
}

func Test_CartService_RehydratesFromSnapshot(t *testing.T) {
	// given: a cart persisted by one service instance
	ctx := context.Background()
	store := session.NewInMemoryStore()
	svc := NewService(store, &recordingNotifier{}, testLogger())
	cake := snapshotFor("cake", 24.99)
	_, err := svc.AddOrIncrement(ctx, "sess-1", cake, Strawberry, 3)
	require.NoError(t, err)

	// when: a fresh instance over the same store (simulating a restart)
	restarted := NewService(store, &recordingNotifier{}, testLogger())

	// then: the session's cart is rebuilt from the snapshot
	lines := restarted.Lines(ctx, "sess-1")
	require.Len(t, lines, 1)
	assert.Equal(t, cake.ProductID, lines[0].ProductID)
	assert.Equal(t, Strawberry, lines[0].Variant)
	assert.Equal(t, int32(3), lines[0].Quantity)
	assert.InDelta(t, 74.97, restarted.Total(ctx, "sess-1"), 0.0001)
}

func Test_CartService_PersistFailure_KeepsMemoryAuthoritative(t *testing.T) {
	// given: a store that rejects writes
	ctx := context.Background()
	notifier := &recordingNotifier{}
	store := &failingStore{Store: session.NewInMemoryStore(), writeErr: errors.New("redis down")}
	svc := NewService(store, notifier, testLogger())
	cake := snapshotFor("cake", 10)

	// when
	line, err := svc.AddOrIncrement(ctx, "sess-1", cake, Vanilla, 1)

	// then: the mutation succeeds in memory and degrades to a warning toast
	require.NoError(t, err)
	require.NotNil(t, line)
	assert.Equal(t, 1, svc.LineCount(ctx, "sess-1"))
	require.Len(t, notifier.warnings, 1)
	assert.Equal(t, "Could not save your cart", notifier.warnings[0])
}

func Test_CartService_DiscardsUnreadableSnapshot(t *testing.T) {
	// given: garbage persisted under the session's cart key
	ctx := context.Background()
	store := session.NewInMemoryStore()
	require.NoError(t, store.WriteString(ctx, "cartItems:sess-1", "not json"))
	svc := NewService(store, &recordingNotifier{}, testLogger())

	// when / then: the session starts from an empty cart
	assert.True(t, svc.IsEmpty(ctx, "sess-1"))
	cake := snapshotFor("cake", 10)
	_, err := svc.AddOrIncrement(ctx, "sess-1", cake, Vanilla, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, svc.LineCount(ctx, "sess-1"))
}

func Test_CartService_SetQuantity(t *testing.T) {
	// given
	ctx := context.Background()
	svc := NewService(session.NewInMemoryStore(), &recordingNotifier{}, testLogger())
	cake := snapshotFor("cake", 10)
	_, err := svc.AddOrIncrement(ctx, "sess-1", cake, Vanilla, 2)
	require.NoError(t, err)

	// when: overwrite
	line := svc.SetQuantity(ctx, "sess-1", cake.ProductID, Vanilla, 5)
	// then
	require.NotNil(t, line)
	assert.Equal(t, int32(5), line.Quantity)

	// when: zero removes
	line = svc.SetQuantity(ctx, "sess-1", cake.ProductID, Vanilla, 0)
	// then
	assert.Nil(t, line)
	assert.True(t, svc.IsEmpty(ctx, "sess-1"))

	// and: absent pair stays absent
	assert.Nil(t, svc.SetQuantity(ctx, "sess-1", uuid.New(), Vanilla, 2))
}
