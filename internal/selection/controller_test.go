package selection

import (
	"errors"
	"testing"

	"github.com/abgdnv/storefront/internal/cart"
	"github.com/abgdnv/storefront/internal/catalog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct() catalog.Product {
	return catalog.Product{
		ID:       uuid.New(),
		Name:     "Chocolate Fudge Cake",
		Price:    24.99,
		Category: "Cakes",
		ImageURL: "https://cdn.example.com/cake.png",
	}
}

func Test_Controller_Open_ResetsState(t *testing.T) {
	// given: a controller with leftover state from a previous selection
	controller := NewController()
	controller.Open(sampleProduct())
	controller.IncrementQuantity()
	require.NoError(t, controller.SetVariant(cart.Chocolate))

	// when: a new product is opened
	next := sampleProduct()
	controller.Open(next)

	// then: quantity is back to 1 and no flavor is chosen
	assert.True(t, controller.IsOpen())
	assert.Equal(t, next.ID, controller.Product().ID)
	assert.Equal(t, int32(1), controller.Quantity())
	assert.Equal(t, cart.Variant(""), controller.Variant())
}

func Test_Controller_QuantitySteps(t *testing.T) {
	// given
	controller := NewController()
	controller.Open(sampleProduct())

	// when / then: increment has no upper bound
	assert.Equal(t, int32(2), controller.IncrementQuantity())
	assert.Equal(t, int32(3), controller.IncrementQuantity())

	// and: decrement clamps at 1
	assert.Equal(t, int32(2), controller.DecrementQuantity())
	assert.Equal(t, int32(1), controller.DecrementQuantity())
	assert.Equal(t, int32(1), controller.DecrementQuantity())
}

func Test_Controller_SetVariant(t *testing.T) {
	testCases := []struct {
		name        string
		open        bool
		variant     cart.Variant
		expectError error
	}{
		{
			name:    "Success - valid flavor",
			open:    true,
			variant: cart.Vanilla,
		},
		{
			name:        "Error - unknown flavor",
			open:        true,
			variant:     cart.Variant("pistachio"),
			expectError: cart.ErrVariantUnknown,
		},
		{
			name:        "Error - modal closed",
			open:        false,
			variant:     cart.Vanilla,
			expectError: ErrNoSelection,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			controller := NewController()
			if tc.open {
				controller.Open(sampleProduct())
			}
			// when
			err := controller.SetVariant(tc.variant)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.variant, controller.Variant())
		})
	}
}

func Test_Controller_Confirm_WithoutVariant_StaysOpen(t *testing.T) {
	// given: an open modal with no flavor chosen
	controller := NewController()
	controller.Open(sampleProduct())
	commitCalled := false

	// when
	line, err := controller.Confirm(func(_ cart.ProductSnapshot, _ cart.Variant, _ int32) (*cart.Line, error) {
		commitCalled = true
		return nil, nil
	})

	// then: nothing was committed and the modal is still open
	assert.ErrorIs(t, err, cart.ErrVariantRequired)
	assert.Nil(t, line)
	assert.False(t, commitCalled)
	assert.True(t, controller.IsOpen())
}

func Test_Controller_Confirm_CommitsAndCloses(t *testing.T) {
	// given: vanilla, quantity 3
	product := sampleProduct()
	controller := NewController()
	controller.Open(product)
	require.NoError(t, controller.SetVariant(cart.Vanilla))
	controller.IncrementQuantity()
	controller.IncrementQuantity()

	// when
	line, err := controller.Confirm(func(snapshot cart.ProductSnapshot, variant cart.Variant, quantity int32) (*cart.Line, error) {
		assert.Equal(t, product.ID, snapshot.ProductID)
		assert.Equal(t, product.Price, snapshot.Price)
		assert.Equal(t, cart.Vanilla, variant)
		assert.Equal(t, int32(3), quantity)
		return &cart.Line{ProductID: snapshot.ProductID, Variant: variant, Quantity: quantity, Price: snapshot.Price}, nil
	})

	// then: the line is committed and the modal closes
	require.NoError(t, err)
	require.NotNil(t, line)
	assert.Equal(t, int32(3), line.Quantity)
	assert.False(t, controller.IsOpen())
}

func Test_Controller_Confirm_CommitFailure_StaysOpen(t *testing.T) {
	// given
	controller := NewController()
	controller.Open(sampleProduct())
	require.NoError(t, controller.SetVariant(cart.Chocolate))
	commitErr := errors.New("cart rejected the line")

	// when
	line, err := controller.Confirm(func(_ cart.ProductSnapshot, _ cart.Variant, _ int32) (*cart.Line, error) {
		return nil, commitErr
	})

	// then: the selection is preserved for a retry
	assert.ErrorIs(t, err, commitErr)
	assert.Nil(t, line)
	assert.True(t, controller.IsOpen())
	assert.Equal(t, cart.Chocolate, controller.Variant())
}

func Test_Controller_Confirm_Closed(t *testing.T) {
	// given
	controller := NewController()
	// when
	line, err := controller.Confirm(func(_ cart.ProductSnapshot, _ cart.Variant, _ int32) (*cart.Line, error) {
		return nil, nil
	})
	// then
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Nil(t, line)
}
