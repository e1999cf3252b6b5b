package blindsearch

// Option is a functional option for configuring an Indexer.
type Option func(*config)

// WithKey registers a master key with the given key ID.
// The master key must be exactly 32 bytes.
// Multiple keys can be registered for key rotation support.
// The key is copied internally; the caller may zero the original after calling New().
func WithKey(keyID string, masterKey []byte) Option {
	return func(c *config) {
		if c.keys == nil {
			c.keys = make(map[string][]byte)
		}
		keyCopy := make([]byte, len(masterKey))
		copy(keyCopy, masterKey)
		c.keys[keyID] = keyCopy
		// Set as default if first key
		if c.defaultKeyID == "" {
			c.defaultKeyID = keyID
		}
	}
}

// WithDefaultKeyID sets the key ID used by Index and Query.
// The key must be registered via WithKey.
func WithDefaultKeyID(keyID string) Option {
	return func(c *config) {
		c.defaultKeyID = keyID
	}
}

// WithPartition mixes partitionID into every fingerprint, typically a
// tenant or table.column name. Identical text indexed under different
// partitions produces unrelated fingerprints.
func WithPartition(partitionID string) Option {
	return func(c *config) {
		c.partitionID = partitionID
	}
}

// WithRandomSource sets the source used for padding.
// By default every call draws from its own crypto/rand-backed source.
// A source given here is shared by all calls. Unless it already is a
// SharedRandom, New wraps it in one so concurrent calls never draw from it
// at the same time.
func WithRandomSource(r RandomSource) Option {
	return func(c *config) {
		c.random = r
	}
}

// WithPaddingDisabled makes Index return only genuine fingerprints.
// Use this only when set sizes are not observable by the store.
func WithPaddingDisabled() Option {
	return func(c *config) {
		c.paddingDisabled = true
	}
}
