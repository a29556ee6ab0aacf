package codec

import (
	"fmt"

	"github.com/google/uuid"
)

// Identifiers are random 128-bit UUIDs stored in their canonical hyphenated
// text form. uuid.UUID already speaks database/sql, so the codec here is only
// generation and strict parsing.

// NewID generates a fresh random identifier.
func NewID() uuid.UUID {
	return uuid.New()
}

// ParseID decodes a canonical UUID string.
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrMalformedIdentifier, s)
	}
	return id, nil
}
