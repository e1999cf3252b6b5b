package blindsearch

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// infoNGramSalt is the HKDF info string for the trigram hashing salt.
const infoNGramSalt = "blindsearch-ngram-salt"

// derivedKeys holds material derived from a master key.
// Cached at initialization to avoid repeated HKDF derivation.
type derivedKeys struct {
	salt [32]byte // mixed into every trigram hash
}

// deriveKeys derives the hashing salt from a master key using HKDF-SHA256.
// The master key must be exactly 32 bytes.
func deriveKeys(masterKey []byte) (*derivedKeys, error) {
	if len(masterKey) != 32 {
		return nil, ErrInvalidKeySize
	}

	keys := &derivedKeys{}
	if err := hkdfDerive(masterKey, infoNGramSalt, keys.salt[:]); err != nil {
		return nil, err
	}
	return keys, nil
}

// hkdfDerive performs HKDF-SHA256 key derivation with the given info string.
// No salt is used (nil salt means HKDF uses a zero-filled salt of HashLen bytes).
func hkdfDerive(masterKey []byte, info string, out []byte) error {
	reader := hkdf.New(sha256.New, masterKey, nil, []byte(info))
	_, err := io.ReadFull(reader, out)
	return err
}
