package blindsearch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// panicRandom fails mid-draw, as a broken generator would.
type panicRandom struct{}

func (panicRandom) PadCount() int          { panic("generator failure") }
func (panicRandom) Uint32s(n int) []uint32 { panic("generator failure") }

func TestRandom_PadCountRange(t *testing.T) {
	rnd := NewSeededRandom([32]byte{42})
	for i := 0; i < 10000; i++ {
		n := rnd.PadCount()
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 199)
	}
}

func TestRandom_PadCountMostlySmall(t *testing.T) {
	rnd := NewSeededRandom([32]byte{9})
	small := 0
	const draws = 10000
	for i := 0; i < draws; i++ {
		if rnd.PadCount() <= 4 {
			small++
		}
	}
	// At least the 75% tier lands in [1, 4].
	require.Greater(t, small, draws*7/10)
}

func TestRandom_Uint32s(t *testing.T) {
	rnd := NewCryptoRandom()

	require.Len(t, rnd.Uint32s(10), 10)
	require.Empty(t, rnd.Uint32s(0))
}

func TestNewSeededRandom_Reproducible(t *testing.T) {
	a := NewSeededRandom([32]byte{1})
	b := NewSeededRandom([32]byte{1})
	c := NewSeededRandom([32]byte{2})

	va := a.Uint32s(16)
	require.Equal(t, va, b.Uint32s(16))
	require.NotEqual(t, va, c.Uint32s(16))
}

func TestSharedRandom_Concurrent(t *testing.T) {
	shared := NewSharedRandom(NewCryptoRandom())

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	sizes := make(chan int, 800)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				set, err := PaddedFingerprints("concurrent", "p", nil, shared)
				if err != nil {
					errs <- err
					return
				}
				sizes <- set.Len()
			}
		}()
	}
	wg.Wait()
	close(errs)
	close(sizes)

	for err := range errs {
		require.NoError(t, err)
	}
	for n := range sizes {
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, CapacityCeiling)
	}
}

func TestSharedRandom_MatchesWrappedSource(t *testing.T) {
	seed := [32]byte{5}
	direct := NewSeededRandom(seed)
	shared := NewSharedRandom(NewSeededRandom(seed))

	require.Equal(t, direct.PadCount(), shared.PadCount())
	require.Equal(t, direct.Uint32s(8), shared.Uint32s(8))
}

func TestSharedRandom_Poisoned(t *testing.T) {
	shared := NewSharedRandom(panicRandom{})

	require.PanicsWithValue(t, "generator failure", func() {
		shared.PadCount()
	})

	require.PanicsWithError(t, ErrRandomSourcePoisoned.Error(), func() {
		shared.PadCount()
	}, "a poisoned source must not be reused")

	require.PanicsWithError(t, ErrRandomSourcePoisoned.Error(), func() {
		shared.Uint32s(1)
	})
}

func TestSharedRandom_PoisonedAbortsPadding(t *testing.T) {
	shared := NewSharedRandom(panicRandom{})
	require.Panics(t, func() { shared.Uint32s(1) })

	require.PanicsWithError(t, ErrRandomSourcePoisoned.Error(), func() {
		_, _ = PaddedFingerprints("abc", "", nil, shared)
	})
}
