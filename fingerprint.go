package blindsearch

import (
	"crypto/sha256"
	"encoding"
	"encoding/binary"
	"fmt"
	"hash"
	"io"
	"unicode/utf8"
)

// Capacity limits. Inputs are measured in characters (runes), not bytes.
const (
	// MaxInputLength is the longest input accepted, checked before any work is done.
	MaxInputLength = 1024

	// MaxNGrams is the most distinct trigrams a single input may produce.
	MaxNGrams = 200

	// CapacityCeiling is the largest size a padded set may reach. The gap
	// above MaxNGrams guarantees room for padding at maximum input.
	CapacityCeiling = 225
)

// Fingerprints computes the blind search index for text.
//
// Each distinct trigram of the normalized text is hashed as
// SHA-256(partitionID || salt || trigram) and truncated to the first four
// digest bytes, read big-endian. An empty partitionID contributes nothing.
//
// The result is deterministic: the same text, partitionID and salt always
// produce the same set.
func Fingerprints(text, partitionID string, salt []byte) (Set, error) {
	if n := utf8.RuneCountInString(text); n > MaxInputLength {
		return nil, fmt.Errorf("%w: %d characters, maximum is %d", ErrInputTooLong, n, MaxInputLength)
	}

	grams := trigramSet(Normalize(text))
	if len(grams) > MaxNGrams {
		return nil, fmt.Errorf("%w: %d trigrams, maximum is %d", ErrTooManyNGrams, len(grams), MaxNGrams)
	}

	h := newPrefixHasher(partitionID, salt)
	set := make(Set, len(grams))
	for g := range grams {
		set.Add(h.sum32(g))
	}
	return set, nil
}

// prefixHasher snapshots SHA-256 after absorbing partitionID and salt so the
// prefix is hashed once per call rather than once per trigram.
// Not safe for concurrent use.
type prefixHasher struct {
	h     hash.Hash
	state []byte
	sum   [sha256.Size]byte
}

func newPrefixHasher(partitionID string, salt []byte) *prefixHasher {
	h := sha256.New()
	io.WriteString(h, partitionID)
	h.Write(salt)

	state, err := h.(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		panic("blindsearch: internal error: sha256 snapshot: " + err.Error())
	}
	return &prefixHasher{h: h, state: state}
}

func (p *prefixHasher) sum32(gram string) uint32 {
	if err := p.h.(encoding.BinaryUnmarshaler).UnmarshalBinary(p.state); err != nil {
		panic("blindsearch: internal error: sha256 restore: " + err.Error())
	}
	io.WriteString(p.h, gram)
	return truncate32(p.h.Sum(p.sum[:0]))
}

// truncate32 interprets the first four bytes of digest as a big-endian uint32.
func truncate32(digest []byte) uint32 {
	return binary.BigEndian.Uint32(digest[:4])
}
