package uuid

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/aetheric-oss/svc-assets/internal/common/apperrors"
)

// UUID represents a UUID
type UUID = uuid.UUID

// ErrInvalidID is returned when an identifier is not a canonical UUID.
var ErrInvalidID = apperrors.New("invalid id: expected a UUID").SetStatusCode(http.StatusBadRequest)

// New returns a new random (version 4) UUID
func New() UUID {
	return uuid.New()
}

// Parse parses a UUID string
func Parse(s string) (UUID, error) {
	return uuid.Parse(s)
}

// MustParse parses a UUID string and panics if the string is not a valid UUID
func MustParse(s string) UUID {
	return uuid.MustParse(s)
}

// ParseID validates that s is a UUID in canonical textual form
// (8-4-4-4-12, hyphenated). URN, braced and compact encodings are rejected
// so identifiers round-trip through the backend unchanged.
func ParseID(s string) (UUID, error) {
	if len(s) != 36 {
		return uuid.Nil, ErrInvalidID
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return u, nil
}

// IsValidID reports whether s is a canonical UUID.
func IsValidID(s string) bool {
	_, err := ParseID(s)
	return err == nil
}

// Nil is the zero UUID
var Nil = uuid.Nil
