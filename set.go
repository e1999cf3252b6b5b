package blindsearch

import "slices"

// Set is an unordered collection of unique 32-bit fingerprints.
type Set map[uint32]struct{}

// NewSet returns a Set holding values.
func NewSet(values ...uint32) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v. Adding a value already present is a no-op.
func (s Set) Add(v uint32) {
	s[v] = struct{}{}
}

// Contains reports whether v is in the set.
func (s Set) Contains(v uint32) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of fingerprints.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the fingerprints in ascending order.
func (s Set) Sorted() []uint32 {
	out := make([]uint32, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Int32s returns the fingerprints in ascending unsigned order, reinterpreted
// as signed values for storage in a PostgreSQL integer[] column.
func (s Set) Int32s() []int32 {
	sorted := s.Sorted()
	out := make([]int32, len(sorted))
	for i, v := range sorted {
		out[i] = int32(v)
	}
	return out
}

// Match returns the fraction of query fingerprints present in stored.
// 1.0 means every trigram of the query occurs in the stored value; padding
// in stored cannot lower the score. An empty query scores 0.
func Match(stored, query Set) float64 {
	if len(query) == 0 {
		return 0
	}
	hits := 0
	for v := range query {
		if stored.Contains(v) {
			hits++
		}
	}
	return float64(hits) / float64(len(query))
}
