package blindsearch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithKey(t *testing.T) {
	ix, err := New(WithKey("v1", testKey("v1")))
	require.NoError(t, err)
	require.Equal(t, "v1", ix.DefaultKeyID())
}

func TestWithKey_Multiple(t *testing.T) {
	ix, err := New(
		WithKey("v1", testKey("v1")),
		WithKey("v2", testKey("v2")),
		WithKey("v3", testKey("v3")),
	)
	require.NoError(t, err)
	require.Len(t, ix.ActiveKeyIDs(), 3)
}

func TestWithKey_FirstKeyBecomesDefault(t *testing.T) {
	ix, err := New(
		WithKey("first", testKey("first")),
		WithKey("second", testKey("second")),
	)
	require.NoError(t, err)
	require.Equal(t, "first", ix.DefaultKeyID())
}

func TestWithKey_CopiesKey(t *testing.T) {
	key := testKey("v1")
	ix1, err := New(WithKey("v1", key))
	require.NoError(t, err)

	// New zeroes its own copy, never the caller's.
	require.Equal(t, testKey("v1"), key)

	ix2, err := New(WithKey("v1", key))
	require.NoError(t, err)
	require.Equal(t, ix1.keys["v1"].salt, ix2.keys["v1"].salt)
}

func TestWithDefaultKeyID(t *testing.T) {
	ix, err := New(
		WithKey("v1", testKey("v1")),
		WithKey("v2", testKey("v2")),
		WithDefaultKeyID("v2"),
	)
	require.NoError(t, err)
	require.Equal(t, "v2", ix.DefaultKeyID())
}

func TestWithDefaultKeyID_NotFound(t *testing.T) {
	_, err := New(
		WithKey("v1", testKey("v1")),
		WithDefaultKeyID("nonexistent"),
	)
	require.ErrorIs(t, err, ErrDefaultKeyNotFound)
}

func TestWithPartition(t *testing.T) {
	ix, err := New(
		WithKey("v1", testKey("v1")),
		WithPartition("users.name"),
	)
	require.NoError(t, err)
	require.Equal(t, "users.name", ix.config.partitionID)
}

func TestWithRandomSource(t *testing.T) {
	rnd := NewSharedRandom(NewCryptoRandom())
	ix, err := New(
		WithKey("v1", testKey("v1")),
		WithRandomSource(rnd),
	)
	require.NoError(t, err)
	require.Same(t, rnd, ix.randomSource())
}

func TestWithRandomSource_WrapsUnshared(t *testing.T) {
	rnd := NewSeededRandom([32]byte{1})
	ix, err := New(
		WithKey("v1", testKey("v1")),
		WithRandomSource(rnd),
	)
	require.NoError(t, err)

	shared, ok := ix.randomSource().(*SharedRandom)
	require.True(t, ok, "configured source should be wrapped")
	require.Same(t, rnd, shared.src)
}

func TestWithPaddingDisabled(t *testing.T) {
	ix, err := New(
		WithKey("v1", testKey("v1")),
		WithPaddingDisabled(),
	)
	require.NoError(t, err)
	require.True(t, ix.config.paddingDisabled)
}

func TestDefaultConfig(t *testing.T) {
	ix, err := New(WithKey("v1", testKey("v1")))
	require.NoError(t, err)

	require.Empty(t, ix.config.partitionID)
	require.Nil(t, ix.config.random)
	require.False(t, ix.config.paddingDisabled)
	require.NotNil(t, ix.randomSource())
}

func TestOptions_ChainedCorrectly(t *testing.T) {
	ix, err := New(
		WithKey("v1", testKey("v1")),
		WithKey("v2", testKey("v2")),
		WithDefaultKeyID("v2"),
		WithPartition("notes.body"),
		WithPaddingDisabled(),
	)
	require.NoError(t, err)

	require.Equal(t, "v2", ix.DefaultKeyID())
	require.Len(t, ix.ActiveKeyIDs(), 2)
	require.Equal(t, "notes.body", ix.config.partitionID)
	require.True(t, ix.config.paddingDisabled)
}
