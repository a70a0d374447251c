package favorites

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Set_Toggle_Parity(t *testing.T) {
	// given
	set := NewSet()
	id := uuid.New()

	// when / then: odd number of toggles leaves the product favored
	assert.True(t, set.Toggle(id))
	assert.True(t, set.Contains(id))
	assert.False(t, set.Toggle(id))
	assert.False(t, set.Contains(id))
	assert.True(t, set.Toggle(id))
	assert.True(t, set.Contains(id))
	assert.Equal(t, 1, set.Count())
}

func Test_Set_Remove(t *testing.T) {
	// given
	set := NewSet()
	id := uuid.New()
	set.Toggle(id)

	// when
	set.Remove(id)
	// then
	assert.False(t, set.Contains(id))
	assert.Equal(t, 0, set.Count())

	// and: removing again is a no-op
	set.Remove(id)
	assert.Equal(t, 0, set.Count())
}

func Test_Set_EncodeDecode_RoundTrip(t *testing.T) {
	// given
	set := NewSet()
	first := uuid.New()
	second := uuid.New()
	set.Toggle(first)
	set.Toggle(second)

	// when
	data, err := set.Encode()
	require.NoError(t, err)
	decoded, err := DecodeSet(data)
	require.NoError(t, err)

	// then: membership survives the round trip
	assert.Equal(t, 2, decoded.Count())
	assert.True(t, decoded.Contains(first))
	assert.True(t, decoded.Contains(second))
}

func Test_DecodeSet_InvalidPayload(t *testing.T) {
	// when
	decoded, err := DecodeSet([]byte("{broken"))
	// then
	assert.Error(t, err)
	assert.Nil(t, decoded)
}
