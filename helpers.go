package blindsearch

// IndexPtr indexes a nullable string.
// Returns nil, nil if s is nil (NULL preservation).
func (ix *Indexer) IndexPtr(s *string) (*IndexedValue, error) {
	if s == nil {
		return nil, nil
	}
	return ix.Index(*s)
}

// QueryPtr computes query fingerprints for a nullable string.
// Returns nil, nil if s is nil; a NULL never matches.
func (ix *Indexer) QueryPtr(s *string) (Set, error) {
	if s == nil {
		return nil, nil
	}
	return ix.Query(*s)
}

// Int32s returns the stored fingerprints as an integer[] column value.
// Returns nil for a nil value (NULL preservation).
func (v *IndexedValue) Int32s() []int32 {
	if v == nil {
		return nil
	}
	return v.Fingerprints.Int32s()
}
