package kernel_test

import (
	"testing"

	"fleetdispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonicalID = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	a := kernel.NewUUID()
	b := kernel.NewUUID()

	require.NoError(t, a.Validate())
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, a.String())
	assert.False(t, a.IsEqual(b))
}

func TestUUIDFromString(t *testing.T) {
	accepted := []string{
		canonicalID,
		"{" + canonicalID + "}",
		"urn:uuid:" + canonicalID,
		"550e8400e29b41d4a716446655440000",
	}
	for _, in := range accepted {
		t.Run("accepts "+in, func(t *testing.T) {
			id, err := kernel.UUIDFromString(in)

			require.NoError(t, err)
			assert.Equal(t, canonicalID, id.String())
		})
	}

	rejected := []string{
		"",
		"o1",
		"550e8400-e29b-41d4-a716",
		canonicalID + "-extra",
		"zzze8400-e29b-41d4-a716-446655440000",
	}
	for _, in := range rejected {
		t.Run("rejects "+in, func(t *testing.T) {
			_, err := kernel.UUIDFromString(in)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid UUID format")
		})
	}

	t.Run("nil UUID parses but does not validate", func(t *testing.T) {
		id, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		require.NoError(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}

func TestUUIDFromBytes(t *testing.T) {
	raw := uuid.MustParse(canonicalID)

	id, err := kernel.UUIDFromBytes(raw[:])
	require.NoError(t, err)
	assert.Equal(t, canonicalID, id.String())
	assert.Equal(t, raw, id.Bytes())

	_, err = kernel.UUIDFromBytes([]byte{0x55, 0x0e, 0x84})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid UUID format")

	_, err = kernel.UUIDFromBytes(make([]byte, 16))
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
}

func TestUUIDFromGoogle(t *testing.T) {
	raw := uuid.New()

	id, err := kernel.UUIDFromGoogle(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, id.Bytes())

	_, err = kernel.UUIDFromGoogle(uuid.Nil)
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
}

func TestUUID_IsEqual(t *testing.T) {
	a, _ := kernel.UUIDFromString(canonicalID)
	b, _ := kernel.UUIDFromString(canonicalID)
	var zero1, zero2 kernel.UUID

	assert.True(t, a.IsEqual(b))
	assert.True(t, zero1.IsEqual(zero2))
	assert.False(t, a.IsEqual(zero1))
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, zero1.Validate())
}

func TestOptionalEqual(t *testing.T) {
	a := kernel.NewUUID()
	b := a
	c := kernel.NewUUID()

	assert.True(t, kernel.OptionalEqual(nil, nil))
	assert.True(t, kernel.OptionalEqual(&a, &b))
	assert.False(t, kernel.OptionalEqual(&a, &c))
	assert.False(t, kernel.OptionalEqual(&a, nil))
	assert.False(t, kernel.OptionalEqual(nil, &c))
}
