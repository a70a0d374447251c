package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotFor(name string, price float64) ProductSnapshot {
	return ProductSnapshot{
		ProductID: uuid.New(),
		Name:      name,
		Price:     price,
		ImageURL:  "https://cdn.example.com/" + name + ".png",
	}
}

func Test_Ledger_AddOrIncrement(t *testing.T) {
	cake := snapshotFor("cake", 24.99)

	testCases := []struct {
		name        string
		variant     Variant
		quantity    int32
		expectError error
	}{
		{
			name:     "Success - new line",
			variant:  Vanilla,
			quantity: 2,
		},
		{
			name:        "Error - empty variant",
			variant:     "",
			quantity:    1,
			expectError: ErrVariantRequired,
		},
		{
			name:        "Error - unknown variant",
			variant:     Variant("pistachio"),
			quantity:    1,
			expectError: ErrVariantUnknown,
		},
		{
			name:        "Error - quantity below one",
			variant:     Vanilla,
			quantity:    0,
			expectError: ErrQuantityInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			ledger := NewLedger()
			// when
			line, err := ledger.AddOrIncrement(cake, tc.variant, tc.quantity)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, line)
				assert.True(t, ledger.IsEmpty())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.quantity, line.Quantity)
			assert.Equal(t, cake.Price, line.Price)
			assert.Equal(t, 1, ledger.LineCount())
		})
	}
}

func Test_Ledger_AddOrIncrement_Accumulates(t *testing.T) {
	// given
	ledger := NewLedger()
	cake := snapshotFor("cake", 10)

	// when: same (product, variant) pair added twice
	_, err := ledger.AddOrIncrement(cake, Chocolate, 2)
	require.NoError(t, err)
	line, err := ledger.AddOrIncrement(cake, Chocolate, 3)
	require.NoError(t, err)

	// then: one line with the summed quantity
	assert.Equal(t, 1, ledger.LineCount())
	assert.Equal(t, int32(5), line.Quantity)

	// when: same product, different variant
	_, err = ledger.AddOrIncrement(cake, Strawberry, 1)
	require.NoError(t, err)

	// then: a distinct line
	assert.Equal(t, 2, ledger.LineCount())
}

func Test_Ledger_SetQuantity(t *testing.T) {
	// given
	ledger := NewLedger()
	cake := snapshotFor("cake", 10)
	_, err := ledger.AddOrIncrement(cake, Vanilla, 2)
	require.NoError(t, err)

	// when: overwrite
	line := ledger.SetQuantity(cake.ProductID, Vanilla, 7)
	// then
	require.NotNil(t, line)
	assert.Equal(t, int32(7), line.Quantity)

	// when: quantity below one removes the line
	line = ledger.SetQuantity(cake.ProductID, Vanilla, 0)
	// then
	assert.Nil(t, line)
	assert.True(t, ledger.IsEmpty())

	// when: absent line
	line = ledger.SetQuantity(cake.ProductID, Vanilla, 3)
	// then: no resurrection
	assert.Nil(t, line)
	assert.True(t, ledger.IsEmpty())
}

func Test_Ledger_SetQuantityZero_EqualsRemove(t *testing.T) {
	// given: two ledgers with the same line
	cake := snapshotFor("cake", 10)
	viaSet := NewLedger()
	viaRemove := NewLedger()
	_, err := viaSet.AddOrIncrement(cake, Butterscotch, 2)
	require.NoError(t, err)
	_, err = viaRemove.AddOrIncrement(cake, Butterscotch, 2)
	require.NoError(t, err)

	// when
	viaSet.SetQuantity(cake.ProductID, Butterscotch, 0)
	viaRemove.Remove(cake.ProductID, Butterscotch)

	// then: both paths yield the same state
	assert.Equal(t, viaRemove.Lines(), viaSet.Lines())
	assert.Equal(t, viaRemove.Total(), viaSet.Total())
}

func Test_Ledger_Remove_AbsentIsNoop(t *testing.T) {
	// given
	ledger := NewLedger()
	cake := snapshotFor("cake", 10)
	_, err := ledger.AddOrIncrement(cake, Vanilla, 1)
	require.NoError(t, err)

	// when: removing a pair that was never added
	ledger.Remove(cake.ProductID, Chocolate)
	ledger.Remove(uuid.New(), Vanilla)

	// then
	assert.Equal(t, 1, ledger.LineCount())
}

func Test_Ledger_Total(t *testing.T) {
	// given
	ledger := NewLedger()
	cake := snapshotFor("cake", 24.99)
	shake := snapshotFor("shake", 5.25)

	// when
	_, err := ledger.AddOrIncrement(cake, Chocolate, 2)
	require.NoError(t, err)
	_, err = ledger.AddOrIncrement(shake, Strawberry, 3)
	require.NoError(t, err)

	// then: 2*24.99 + 3*5.25, rounded for display
	assert.InDelta(t, 65.73, ledger.Total(), 0.0001)

	// and: adding a line never decreases the total
	before := ledger.Total()
	_, err = ledger.AddOrIncrement(cake, Vanilla, 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ledger.Total(), before)
}

func Test_Ledger_EncodeDecode_RoundTrip(t *testing.T) {
	// given
	ledger := NewLedger()
	cake := snapshotFor("cake", 24.99)
	shake := snapshotFor("shake", 5.25)
	_, err := ledger.AddOrIncrement(cake, Chocolate, 2)
	require.NoError(t, err)
	_, err = ledger.AddOrIncrement(shake, Butterscotch, 1)
	require.NoError(t, err)

	// when
	data, err := ledger.Encode()
	require.NoError(t, err)
	decoded, err := DecodeLedger(data)
	require.NoError(t, err)

	// then: the decoded ledger carries the same lines and total
	assert.Equal(t, ledger.Lines(), decoded.Lines())
	assert.Equal(t, ledger.Total(), decoded.Total())
}

func Test_DecodeLedger_InvalidPayload(t *testing.T) {
	// when
	decoded, err := DecodeLedger([]byte("not json"))
	// then
	assert.Error(t, err)
	assert.Nil(t, decoded)
}

func Test_Line_Subtotal(t *testing.T) {
	// given
	line := Line{Price: 3.33, Quantity: 3}
	// then
	assert.InDelta(t, 9.99, line.Subtotal(), 0.0001)
}
