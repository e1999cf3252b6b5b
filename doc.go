// Package blindsearch generates privacy-preserving blind search indexes for
// encrypted text columns.
//
// A plaintext string is reduced to a set of 32-bit fingerprints that an
// untrusted store can keep next to the ciphertext. Later, a query's
// fingerprints can be tested for containment, which gives substring and fuzzy
// matching without the store ever seeing the plaintext.
//
// # Pipeline
//
//  1. Normalize: NFC composition, removal of punctuation such as "-" and
//     "@", and transliteration of every character to lowercase Latin
//     ("Núñez" -> "nunez", "志" -> "zhi"). Characters without a Latin form are
//     kept as they are.
//  2. Tokenize: split into words on Unicode word boundaries, right-pad
//     short words with '-' ("ti" -> "ti-"), and collect every distinct
//     3-character window ("five" -> "fiv", "ive").
//  3. Hash: SHA-256(partitionID || salt || trigram), truncated to the first
//     four bytes read big-endian.
//  4. Pad (optional): add a random number of random fingerprints so the set
//     size does not reveal how many trigrams the text contained.
//
// # Basic Usage
//
//	// Deterministic index, e.g. for queries
//	set, err := blindsearch.Fingerprints("José Núñez", "users.name", salt)
//
//	// Padded index, for storage
//	set, err := blindsearch.PaddedFingerprints("José Núñez", "users.name", salt, blindsearch.NewCryptoRandom())
//
// # Keyed Indexer
//
// Indexer derives the salt from a 32-byte master key with HKDF-SHA256 and
// supports several key versions for rotation:
//
//	ix, err := blindsearch.New(
//	    blindsearch.WithKey("v1", masterKey),
//	    blindsearch.WithPartition("users.name"),
//	)
//
//	// Store (INSERT)
//	v, _ := ix.Index("José Núñez")
//	// v.Int32s() goes in the name_ngrams integer[] column, v.KeyID in key_id
//
//	// Search (SELECT)
//	cond, _ := ix.SearchCondition("name", "nunez", 1)
//	query := fmt.Sprintf("SELECT * FROM users WHERE %s", cond.SQL)
//	rows, _ := db.Query(query, cond.Args...)
//
// # Capacity
//
// Inputs longer than MaxInputLength characters, or producing more than
// MaxNGrams distinct trigrams, are rejected with ErrInputTooLong or
// ErrTooManyNGrams. They are never truncated. Padded sets never exceed
// CapacityCeiling entries.
//
// # Randomness
//
// Padding draws from a RandomSource. NewCryptoRandom is the default and is
// meant to be used by one goroutine. NewSharedRandom guards a single source
// for concurrent callers and refuses further use once a draw has failed
// mid-way. NewSeededRandom gives reproducible padding for tests.
//
// # Database Schema
//
// Recommended column structure for searchable encrypted text:
//
//	name_encrypted BYTEA
//	name_ngrams INTEGER[]
//	CREATE INDEX idx_users_name_ngrams ON users USING GIN (name_ngrams);
//
//	-- Key version tracking
//	key_id TEXT NOT NULL
package blindsearch
