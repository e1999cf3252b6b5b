package blindsearch

import "encoding/binary"

// Encoded set format:
// [fingerprint:4][fingerprint:4]...
//
// Fingerprints are big-endian and sorted ascending, so equal sets always
// encode to equal bytes. An empty set encodes to zero bytes.

const fingerprintSize = 4

// MarshalBinary encodes the set as sorted big-endian 32-bit words.
func (s Set) MarshalBinary() ([]byte, error) {
	sorted := s.Sorted()
	out := make([]byte, 0, len(sorted)*fingerprintSize)
	for _, v := range sorted {
		out = binary.BigEndian.AppendUint32(out, v)
	}
	return out, nil
}

// UnmarshalBinary decodes a set written by MarshalBinary.
// Returns ErrInvalidFormat if data is not a whole number of words.
func (s *Set) UnmarshalBinary(data []byte) error {
	if len(data)%fingerprintSize != 0 {
		return ErrInvalidFormat
	}
	set := make(Set, len(data)/fingerprintSize)
	for i := 0; i < len(data); i += fingerprintSize {
		set.Add(binary.BigEndian.Uint32(data[i : i+fingerprintSize]))
	}
	*s = set
	return nil
}
