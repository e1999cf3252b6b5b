package blindsearch

import "errors"

var (
	// ErrInputTooLong indicates the input has more characters than MaxInputLength.
	ErrInputTooLong = errors.New("blindsearch: input too long")

	// ErrTooManyNGrams indicates the input produced more distinct trigrams than MaxNGrams.
	ErrTooManyNGrams = errors.New("blindsearch: too many n-grams")

	// ErrInvalidFormat indicates an encoded fingerprint set is malformed.
	ErrInvalidFormat = errors.New("blindsearch: invalid fingerprint set encoding")

	// ErrKeyNotFound indicates the requested key_id is not in the registry or provider.
	ErrKeyNotFound = errors.New("blindsearch: key not found")

	// ErrInvalidKeySize indicates the master key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.New("blindsearch: key must be 32 bytes")

	// ErrNoKeys indicates no keys were provided to the indexer.
	ErrNoKeys = errors.New("blindsearch: no keys provided")

	// ErrDefaultKeyNotFound indicates the specified default key ID was not found.
	ErrDefaultKeyNotFound = errors.New("blindsearch: default key not found")

	// ErrInvalidKeyID indicates the key ID is invalid (empty or too long).
	ErrInvalidKeyID = errors.New("blindsearch: key ID must be 1-255 bytes")

	// ErrIndexerClosed indicates the indexer was used after Close() was called.
	ErrIndexerClosed = errors.New("blindsearch: indexer is closed")

	// ErrRandomSourcePoisoned is the panic value raised by a SharedRandom whose
	// previous holder panicked mid-draw. Its generator state is no longer trusted.
	ErrRandomSourcePoisoned = errors.New("blindsearch: shared random source is poisoned")
)
