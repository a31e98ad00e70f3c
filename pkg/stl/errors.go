package stl

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedHeader is returned when the stream ends before the facet
	// count. Callers treat it as "no mesh present".
	ErrTruncatedHeader = errors.New("truncated stl header")

	// ErrMalformedRecord matches every *MalformedRecordError.
	ErrMalformedRecord = errors.New("malformed stl record")

	// ErrResourceUnavailable wraps failures to open or write a file.
	ErrResourceUnavailable = errors.New("resource unavailable")
)

// MalformedRecordError reports a facet record that could not be read in full
type MalformedRecordError struct {
	Index    uint32 // zero-based facet index
	Expected uint32 // facet count announced by the header
	Err      error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed stl record %d of %d: %v", e.Index, e.Expected, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMalformedRecord) hold for any record error
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
