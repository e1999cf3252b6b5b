package blindsearch

import (
	"fmt"
	"strings"
)

// maxParamNumber is the PostgreSQL maximum parameter number.
const maxParamNumber = 65535

// isValidColumnName checks if a column name is safe for SQL interpolation.
// Must start with letter or underscore, followed by alphanumeric/underscore.
func isValidColumnName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_') {
				return false
			}
		} else {
			if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || r == '_') {
				return false
			}
		}
	}
	return true
}

// SearchCondition holds a SQL WHERE clause fragment and its arguments
// for a trigram containment search across multiple key versions.
type SearchCondition struct {
	SQL  string        // SQL fragment like "(key_id = $1 AND name_ngrams @> $2) OR ..."
	Args []interface{} // Interleaved key_ids and []int32 fingerprint arrays
}

// SearchCondition generates a SQL WHERE clause matching rows whose stored
// fingerprints contain every trigram of text, across all active key versions.
//
// Fingerprints are expected in an integer[] column named {column}_ngrams,
// written from IndexedValue.Fingerprints.Int32s(). The generated SQL is:
//
//	(key_id = $1 AND {column}_ngrams @> $2) OR (key_id = $3 AND {column}_ngrams @> $4)
//
// paramOffset specifies the starting parameter number ($1, $2, etc.).
// Text without any trigram can match nothing and yields "FALSE".
//
// Panics on an invalid column name or parameter offset (programmer error).
func (ix *Indexer) SearchCondition(column, text string, paramOffset int) (*SearchCondition, error) {
	if !isValidColumnName(column) {
		panic("blindsearch: invalid column name (must start with letter/underscore, contain only alphanumeric/underscore)")
	}
	if paramOffset < 1 || paramOffset > maxParamNumber {
		panic(fmt.Sprintf("blindsearch: invalid paramOffset (must be 1-%d)", maxParamNumber))
	}

	ids := ix.ActiveKeyIDs()
	maxParam := paramOffset + (len(ids) * 2) - 1
	if maxParam > maxParamNumber {
		panic(fmt.Sprintf("blindsearch: too many keys (%d) would exceed PostgreSQL parameter limit", len(ids)))
	}

	queries, err := ix.Queries(text)
	if err != nil {
		return nil, err
	}

	parts := make([]string, 0, len(ids))
	args := make([]interface{}, 0, len(ids)*2)
	for _, keyID := range ids {
		set := queries[keyID]
		if set.Len() == 0 {
			continue
		}
		part := fmt.Sprintf("(key_id = $%d AND %s_ngrams @> $%d)", paramOffset, column, paramOffset+1)
		parts = append(parts, part)
		args = append(args, keyID, set.Int32s())
		paramOffset += 2
	}

	if len(parts) == 0 {
		return &SearchCondition{SQL: "FALSE"}, nil
	}
	return &SearchCondition{
		SQL:  strings.Join(parts, " OR "),
		Args: args,
	}, nil
}
