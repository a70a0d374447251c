package selection

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/abgdnv/storefront/internal/cart"
	"github.com/abgdnv/storefront/internal/catalog"
	cerrors "github.com/abgdnv/storefront/internal/catalog/errors"
	"github.com/abgdnv/storefront/internal/notify"
	"github.com/abgdnv/storefront/internal/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFinder is a mock implementation of the ProductFinder interface
type mockFinder struct {
	product catalog.Product
	error   error
}

func (m *mockFinder) FindByID(_ context.Context, _ uuid.UUID) (*catalog.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

// recordingNotifier captures emitted toasts per level.
type recordingNotifier struct {
	successes []string
	warnings  []string
}

func (n *recordingNotifier) Success(_ context.Context, _ string, message string) {
	n.successes = append(n.successes, message)
}
func (n *recordingNotifier) Info(_ context.Context, _, _ string) {}
func (n *recordingNotifier) Warning(_ context.Context, _ string, message string) {
	n.warnings = append(n.warnings, message)
}
func (n *recordingNotifier) Error(_ context.Context, _, _ string) {}

var _ notify.Notifier = (*recordingNotifier)(nil)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, finder ProductFinder, notifier notify.Notifier) (*Service, *cart.Service) {
	t.Helper()
	cartSvc := cart.NewService(session.NewInMemoryStore(), notifier, testLogger())
	return NewService(finder, cartSvc, notifier, testLogger()), cartSvc
}

func Test_SelectionService_Open(t *testing.T) {
	product := sampleProduct()

	testCases := []struct {
		name        string
		finder      *mockFinder
		expectError error
	}{
		{
			name:   "Success - modal opens with defaults",
			finder: &mockFinder{product: product},
		},
		{
			name:        "Error - product not found",
			finder:      &mockFinder{error: cerrors.ErrProductNotFound},
			expectError: cerrors.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			svc, _ := newTestService(t, tc.finder, &recordingNotifier{})
			// when
			view, err := svc.Open(context.Background(), "sess-1", product.ID)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
			assert.True(t, view.Open)
			assert.Equal(t, product.ID, view.Product.ID)
			assert.Equal(t, int32(1), view.Quantity)
			assert.Equal(t, cart.Variant(""), view.Variant)
			assert.Equal(t, cart.Variants(), view.Variants)
		})
	}
}

func Test_SelectionService_Confirm_WithoutVariant(t *testing.T) {
	// given: an open modal without a flavor
	product := sampleProduct()
	notifier := &recordingNotifier{}
	svc, cartSvc := newTestService(t, &mockFinder{product: product}, notifier)
	_, err := svc.Open(context.Background(), "sess-1", product.ID)
	require.NoError(t, err)

	// when
	line, err := svc.Confirm(context.Background(), "sess-1")

	// then: warning toast, modal stays open, cart untouched
	assert.ErrorIs(t, err, cart.ErrVariantRequired)
	assert.Nil(t, line)
	require.Len(t, notifier.warnings, 1)
	assert.Equal(t, "Please select a flavor", notifier.warnings[0])
	assert.True(t, svc.State(context.Background(), "sess-1").Open)
	assert.True(t, cartSvc.IsEmpty(context.Background(), "sess-1"))
}

func Test_SelectionService_Confirm_AddsToCart(t *testing.T) {
	// given: vanilla, quantity 3
	product := sampleProduct()
	notifier := &recordingNotifier{}
	svc, cartSvc := newTestService(t, &mockFinder{product: product}, notifier)
	ctx := context.Background()
	_, err := svc.Open(ctx, "sess-1", product.ID)
	require.NoError(t, err)
	_, err = svc.SetVariant(ctx, "sess-1", cart.Vanilla)
	require.NoError(t, err)
	_, err = svc.IncrementQuantity(ctx, "sess-1")
	require.NoError(t, err)
	_, err = svc.IncrementQuantity(ctx, "sess-1")
	require.NoError(t, err)

	// when
	line, err := svc.Confirm(ctx, "sess-1")

	// then: the cart holds the line and the modal is closed
	require.NoError(t, err)
	assert.Equal(t, int32(3), line.Quantity)
	assert.Equal(t, cart.Vanilla, line.Variant)
	assert.False(t, svc.State(ctx, "sess-1").Open)
	lines := cartSvc.Lines(ctx, "sess-1")
	require.Len(t, lines, 1)
	assert.Equal(t, product.ID, lines[0].ProductID)
	require.Len(t, notifier.successes, 1)
	assert.Contains(t, notifier.successes[0], "added to cart")
}

func Test_SelectionService_QuantitySteps_RequireOpenModal(t *testing.T) {
	// given: no open modal
	svc, _ := newTestService(t, &mockFinder{product: sampleProduct()}, &recordingNotifier{})

	// when / then
	_, err := svc.IncrementQuantity(context.Background(), "sess-1")
	assert.ErrorIs(t, err, ErrNoSelection)
	_, err = svc.DecrementQuantity(context.Background(), "sess-1")
	assert.ErrorIs(t, err, ErrNoSelection)
}

func Test_SelectionService_SessionsAreIsolated(t *testing.T) {
	// given
	product := sampleProduct()
	svc, _ := newTestService(t, &mockFinder{product: product}, &recordingNotifier{})
	ctx := context.Background()
	_, err := svc.Open(ctx, "sess-1", product.ID)
	require.NoError(t, err)

	// then: another session's modal is closed
	assert.True(t, svc.State(ctx, "sess-1").Open)
	assert.False(t, svc.State(ctx, "sess-2").Open)
}
