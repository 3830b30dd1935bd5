package reports

import (
	"strings"

	"github.com/google/uuid"
)

// ReferenceLength is the number of characters in a report reference.
const ReferenceLength = 8

// GenerateReference returns a short uppercase reference drawn from a random
// (version 4) UUID. 32 random bits keep collisions negligible at tens of
// thousands of reports; the store still rejects the rare duplicate.
func GenerateReference() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(id[:ReferenceLength])
}

// NormalizeReference cleans user-typed input before lookup.
func NormalizeReference(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidReference reports whether s has the shape of a reference.
func ValidReference(s string) bool {
	if len(s) != ReferenceLength {
		return false
	}
	for _, r := range s {
		if !(r >= '0' && r <= '9' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
