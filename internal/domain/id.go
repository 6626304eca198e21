package domain

import "github.com/google/uuid"

// NewID returns an opaque row identifier with a type prefix, e.g. "p_<uuid>".
// Prefixes keep IDs self-describing in logs and audit entries.
func NewID(prefix string) string {
	return prefix + uuid.NewString()
}
