package cardfolio

import (
	"errors"
	"fmt"
)

// Error kinds reported by the repository and the snapshot exchange. They are
// sentinels so callers can branch with errors.Is; the wrapped message carries
// the operational detail.
var (
	// ErrStorageUnavailable reports that the underlying store could not be
	// opened or read.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrStorageWriteFailed reports that the store was open but a write was
	// rejected. The in-memory record set is left unchanged.
	ErrStorageWriteFailed = errors.New("storage write failed")

	// ErrInvalidFormat reports that a snapshot did not parse as a JSON array
	// of record-shaped entries.
	ErrInvalidFormat = errors.New("invalid snapshot format")
)

// ValidationError reports a record that violates a field constraint, such as
// a broken sold-field coupling or a negative price.
type ValidationError struct {
	ID     string // offending record id, may be empty
	Reason string
}

func (e *ValidationError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("invalid card: %s", e.Reason)
	}
	return fmt.Sprintf("invalid card %q: %s", e.ID, e.Reason)
}
