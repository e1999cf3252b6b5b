package blindsearch

import (
	"bytes"
	"fmt"
)

// KeyProvider supplies master keys from an external key store such as
// Vault or a cloud KMS.
type KeyProvider interface {
	// GetKey returns the 32-byte master key for keyID. The returned slice
	// belongs to the caller, which wipes it once the salt is derived.
	GetKey(keyID string) ([]byte, error)

	// DefaultKeyID names the key new indexes are built under.
	DefaultKeyID() string

	// ActiveKeyIDs lists every key that still has stored indexes. While a
	// rotation is in progress it includes the outgoing key, so searches
	// keep matching rows that have not been re-indexed yet.
	ActiveKeyIDs() []string
}

// NewWithProvider creates an Indexer from the keys a KeyProvider reports as
// active. Keys are fetched once, turned into salts, and wiped; the provider
// is not consulted again. extra options (partition, random source) are
// applied after the keys.
func NewWithProvider(provider KeyProvider, extra ...Option) (*Indexer, error) {
	keys, err := fetchKeys(provider)
	if err != nil {
		return nil, err
	}
	defer wipeKeys(keys)

	defaultID := provider.DefaultKeyID()
	if _, ok := keys[defaultID]; !ok {
		return nil, ErrDefaultKeyNotFound
	}

	opts := make([]Option, 0, len(keys)+1+len(extra))
	for _, keyID := range sortedMapKeys(keys) {
		opts = append(opts, WithKey(keyID, keys[keyID]))
	}
	opts = append(opts, WithDefaultKeyID(defaultID))
	return New(append(opts, extra...)...)
}

// fetchKeys reads every active key. On failure the keys read so far are
// wiped and the error names the key that could not be fetched.
func fetchKeys(provider KeyProvider) (map[string][]byte, error) {
	ids := provider.ActiveKeyIDs()
	if len(ids) == 0 {
		return nil, ErrNoKeys
	}

	keys := make(map[string][]byte, len(ids))
	for _, keyID := range ids {
		key, err := provider.GetKey(keyID)
		if err != nil {
			wipeKeys(keys)
			return nil, fmt.Errorf("blindsearch: fetch key %q: %w", keyID, err)
		}
		keys[keyID] = key
	}
	return keys, nil
}

func wipeKeys(keys map[string][]byte) {
	for _, key := range keys {
		clear(key)
	}
}

// StaticKeyProvider serves a fixed set of master keys from memory.
// Useful for tests and for deployments that load keys from configuration.
type StaticKeyProvider struct {
	keys      map[string][]byte
	defaultID string
}

// NewStaticKeyProvider returns a provider holding copies of keys, with
// defaultKeyID as the key for new indexes.
func NewStaticKeyProvider(defaultKeyID string, keys map[string][]byte) *StaticKeyProvider {
	held := make(map[string][]byte, len(keys))
	for keyID, key := range keys {
		held[keyID] = bytes.Clone(key)
	}
	return &StaticKeyProvider{keys: held, defaultID: defaultKeyID}
}

// GetKey implements KeyProvider. Each call returns a fresh copy, since
// NewWithProvider wipes what it is given.
func (p *StaticKeyProvider) GetKey(keyID string) ([]byte, error) {
	key, ok := p.keys[keyID]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return bytes.Clone(key), nil
}

// DefaultKeyID implements KeyProvider.
func (p *StaticKeyProvider) DefaultKeyID() string {
	return p.defaultID
}

// ActiveKeyIDs implements KeyProvider. IDs are sorted.
func (p *StaticKeyProvider) ActiveKeyIDs() []string {
	return sortedMapKeys(p.keys)
}

// Close wipes the held keys. The provider must not be used afterwards.
func (p *StaticKeyProvider) Close() {
	wipeKeys(p.keys)
	p.keys = nil
}
