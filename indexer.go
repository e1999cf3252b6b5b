package blindsearch

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Indexer computes blind search indexes under one or more versioned keys.
// It is safe for concurrent use. Close waits for in-flight calls to finish.
type Indexer struct {
	mu        sync.RWMutex            // guards keys and closed
	keys      map[string]*derivedKeys // keyID -> derived salt (cached)
	defaultID string                  // key ID for Index and Query
	config    *config
	random    RandomSource // nil means a fresh crypto source per call
	closed    bool
}

// config holds indexer configuration options.
type config struct {
	keys            map[string][]byte // keyID -> master key (32 bytes)
	defaultKeyID    string
	partitionID     string
	random          RandomSource
	paddingDisabled bool
}

func defaultConfig() *config {
	return &config{
		keys: make(map[string][]byte),
	}
}

// IndexedValue is a fingerprint set ready to store, with the key version
// that produced it.
type IndexedValue struct {
	Fingerprints Set    // genuine and padding fingerprints
	KeyID        string // key version used
}

// sortedMapKeys returns map keys sorted alphabetically.
func sortedMapKeys[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// New creates a new Indexer with the given options.
// At least one key must be provided via WithKey option.
//
// Example:
//
//	ix, err := blindsearch.New(
//	    blindsearch.WithKey("v1", masterKey1),
//	    blindsearch.WithKey("v2", masterKey2),
//	    blindsearch.WithDefaultKeyID("v2"),
//	    blindsearch.WithPartition("users.name"),
//	)
func New(opts ...Option) (*Indexer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if len(cfg.keys) == 0 {
		return nil, ErrNoKeys
	}
	if _, ok := cfg.keys[cfg.defaultKeyID]; !ok {
		return nil, ErrDefaultKeyNotFound
	}
	for keyID := range cfg.keys {
		if len(keyID) == 0 || len(keyID) > 255 {
			return nil, ErrInvalidKeyID
		}
	}

	// Master keys are not needed past derivation.
	defer func() {
		for _, key := range cfg.keys {
			clear(key)
		}
		cfg.keys = nil
	}()

	derivedKeysMap := make(map[string]*derivedKeys, len(cfg.keys))
	for keyID, masterKey := range cfg.keys {
		dk, err := deriveKeys(masterKey)
		if err != nil {
			return nil, err
		}
		derivedKeysMap[keyID] = dk
	}

	random := cfg.random
	if _, shared := random.(*SharedRandom); random != nil && !shared {
		random = NewSharedRandom(random)
	}

	return &Indexer{
		keys:      derivedKeysMap,
		defaultID: cfg.defaultKeyID,
		config:    cfg,
		random:    random,
	}, nil
}

// Index computes the padded fingerprint set of text under the default key.
// This is the value to store alongside the encrypted column.
func (ix *Indexer) Index(text string) (*IndexedValue, error) {
	return ix.IndexWithKey(ix.defaultID, text)
}

// IndexWithKey computes the padded fingerprint set of text under a specific key.
func (ix *Indexer) IndexWithKey(keyID, text string) (*IndexedValue, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if ix.closed {
		return nil, ErrIndexerClosed
	}
	keys, ok := ix.keys[keyID]
	if !ok {
		return nil, ErrKeyNotFound
	}

	var (
		set Set
		err error
	)
	if ix.config.paddingDisabled {
		set, err = Fingerprints(text, ix.config.partitionID, keys.salt[:])
	} else {
		set, err = PaddedFingerprints(text, ix.config.partitionID, keys.salt[:], ix.randomSource())
	}
	if err != nil {
		return nil, err
	}
	return &IndexedValue{Fingerprints: set, KeyID: keyID}, nil
}

// Query computes the unpadded fingerprint set of text under the default key.
// Use it for lookups: every fingerprint of a query must appear in a stored
// value for the stored text to contain the query's trigrams.
func (ix *Indexer) Query(text string) (Set, error) {
	return ix.QueryWithKey(ix.defaultID, text)
}

// QueryWithKey computes the unpadded fingerprint set of text under a specific key.
func (ix *Indexer) QueryWithKey(keyID, text string) (Set, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if ix.closed {
		return nil, ErrIndexerClosed
	}
	return ix.query(keyID, text)
}

// query must be called with ix.mu held.
func (ix *Indexer) query(keyID, text string) (Set, error) {
	keys, ok := ix.keys[keyID]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return Fingerprints(text, ix.config.partitionID, keys.salt[:])
}

// Queries computes unpadded fingerprint sets for all active key versions,
// for searches that must match across a key rotation.
// Returns a map of keyID -> fingerprints.
func (ix *Indexer) Queries(text string) (map[string]Set, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if ix.closed {
		return nil, ErrIndexerClosed
	}
	out := make(map[string]Set, len(ix.keys))
	for keyID := range ix.keys {
		set, err := ix.query(keyID, text)
		if err != nil {
			return nil, err
		}
		out[keyID] = set
	}
	return out, nil
}

// IndexAll indexes texts in parallel under the default key, bounded by
// GOMAXPROCS. Results are in input order. The first error cancels the
// remaining work and is returned with the index of the offending text.
//
// Unless WithRandomSource was given, each text pads from its own source,
// so workers never contend on a shared generator. A configured source is
// always drawn through a SharedRandom.
func (ix *Indexer) IndexAll(ctx context.Context, texts []string) ([]*IndexedValue, error) {
	ix.mu.RLock()
	closed := ix.closed
	ix.mu.RUnlock()
	if closed {
		return nil, ErrIndexerClosed
	}

	out := make([]*IndexedValue, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, text := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := ix.Index(text)
			if err != nil {
				return fmt.Errorf("text %d: %w", i, err)
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// DefaultKeyID returns the current default key identifier.
func (ix *Indexer) DefaultKeyID() string {
	return ix.defaultID
}

// ActiveKeyIDs returns all registered key identifiers, sorted alphabetically.
func (ix *Indexer) ActiveKeyIDs() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return sortedMapKeys(ix.keys)
}

// Close zeros out all derived salts.
// It blocks until calls already hashing under a salt have returned.
// After calling Close, the Indexer is no longer usable.
func (ix *Indexer) Close() {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.closed = true
	for _, dk := range ix.keys {
		clear(dk.salt[:])
	}
	ix.keys = nil
}

func (ix *Indexer) randomSource() RandomSource {
	if ix.random != nil {
		return ix.random
	}
	return NewCryptoRandom()
}
