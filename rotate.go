package blindsearch

// RotateIndex recomputes the index of text under the current default key.
// Use this during key rotation; the plaintext is required because
// fingerprints cannot be re-keyed.
func (ix *Indexer) RotateIndex(text string) (*IndexedValue, error) {
	return ix.Index(text)
}

// NeedsRotation reports whether v was indexed under a key other than the
// default. Returns false for nil (NULL values don't need rotation).
func (ix *Indexer) NeedsRotation(v *IndexedValue) bool {
	if v == nil {
		return false
	}
	return v.KeyID != ix.defaultID
}
