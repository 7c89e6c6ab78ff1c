package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no product matches an id, or when the
	// snapshot source does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAllocation is returned when the ledger cannot store one more product.
	ErrAllocation = errors.New("storage allocation failed")
	// ErrMalformed is matched by every *MalformedError.
	ErrMalformed = errors.New("malformed snapshot record")
)

// MalformedError describes the first snapshot record that could not be parsed.
type MalformedError struct {
	Record int    // 1-based record number in the snapshot
	Text   string // offending input, possibly partial
	Err    error  // underlying parse error, if any
}

func (e *MalformedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("record %d %q: %v", e.Record, e.Text, e.Err)
	}
	return fmt.Sprintf("record %d %q: incomplete record", e.Record, e.Text)
}

// Is makes errors.Is(err, ErrMalformed) true.
func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }

func (e *MalformedError) Unwrap() error { return e.Err }
