package blindsearch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexPtr(t *testing.T) {
	ix, _ := New(WithKey("v1", testKey("v1")))

	s := "hello"
	v, err := ix.IndexPtr(&s)
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Equal(t, "v1", v.KeyID)
}

func TestIndexPtr_Null(t *testing.T) {
	ix, _ := New(WithKey("v1", testKey("v1")))

	v, err := ix.IndexPtr(nil)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestQueryPtr(t *testing.T) {
	ix, _ := New(WithKey("v1", testKey("v1")))

	s := "hello"
	set, err := ix.QueryPtr(&s)
	require.NoError(t, err)
	require.Equal(t, 3, set.Len()) // hel, ell, llo

	set, err = ix.QueryPtr(nil)
	require.NoError(t, err)
	require.Nil(t, set)
}

func TestIndexedValue_Int32s(t *testing.T) {
	var v *IndexedValue
	require.Nil(t, v.Int32s())

	v = &IndexedValue{Fingerprints: NewSet(2, 1), KeyID: "v1"}
	require.Equal(t, []int32{1, 2}, v.Int32s())
}
