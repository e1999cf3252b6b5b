package blindsearch

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"

	"golang.org/x/crypto/chacha20"
)

// RandomSource supplies the entropy used to pad fingerprint sets.
//
// PadCount draws the tier roll and the pad count together; implementations
// shared between goroutines must make the pair atomic to callers.
type RandomSource interface {
	// PadCount returns the number of padding fingerprints to add, in [1, 199].
	PadCount() int

	// Uint32s returns n independent values drawn uniformly from the full
	// 32-bit range.
	Uint32s(n int) []uint32
}

// Random is a RandomSource backed by a single generator.
// It is not safe for concurrent use; give each goroutine its own, or wrap
// one in a SharedRandom.
type Random struct {
	r *rand.Rand
}

// NewRandom returns a Random drawing from src. src must be a cryptographically
// secure generator or padding becomes distinguishable from real fingerprints.
func NewRandom(src rand.Source) *Random {
	return &Random{r: rand.New(src)}
}

// NewCryptoRandom returns a Random backed by crypto/rand.
func NewCryptoRandom() *Random {
	return NewRandom(cryptoSource{})
}

// NewSeededRandom returns a Random backed by a ChaCha20 keystream keyed with
// seed. The same seed always yields the same draws.
func NewSeededRandom(seed [32]byte) *Random {
	return NewRandom(newChaChaSource(seed))
}

// PadCount implements RandomSource.
func (r *Random) PadCount() int {
	tier := r.r.IntN(tierRange) + 1
	return r.r.IntN(padRange(tier)) + 1
}

// Uint32s implements RandomSource.
func (r *Random) Uint32s(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = r.r.Uint32()
	}
	return out
}

// cryptoSource adapts crypto/rand to rand.Source.
// Panics if the system's random source fails (unrecoverable).
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// chachaSource is a rand.Source reading the ChaCha20 keystream.
type chachaSource struct {
	c *chacha20.Cipher
}

func newChaChaSource(seed [32]byte) *chachaSource {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// Key and nonce sizes are fixed by the types above.
		panic("blindsearch: internal error: chacha20: " + err.Error())
	}
	return &chachaSource{c: c}
}

func (s *chachaSource) Uint64() uint64 {
	var b [8]byte
	s.c.XORKeyStream(b[:], b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// SharedRandom guards a RandomSource with a mutex so one generator can serve
// many goroutines.
//
// If a draw panics while the lock is held, the source is poisoned: the panic
// propagates, and every later call panics with ErrRandomSourcePoisoned rather
// than padding from a generator left in an unknown state.
type SharedRandom struct {
	mu       sync.Mutex
	src      RandomSource
	poisoned bool
}

// NewSharedRandom wraps src for concurrent use.
func NewSharedRandom(src RandomSource) *SharedRandom {
	return &SharedRandom{src: src}
}

// PadCount implements RandomSource. The tier roll and the count are drawn
// under a single lock acquisition.
func (s *SharedRandom) PadCount() int {
	var n int
	s.with(func() { n = s.src.PadCount() })
	return n
}

// Uint32s implements RandomSource.
func (s *SharedRandom) Uint32s(n int) []uint32 {
	var out []uint32
	s.with(func() { out = s.src.Uint32s(n) })
	return out
}

func (s *SharedRandom) with(draw func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poisoned {
		panic(ErrRandomSourcePoisoned)
	}

	done := false
	defer func() {
		if !done {
			s.poisoned = true
		}
	}()
	draw()
	done = true
}
