package nvram

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested variable does not exist. For
	// enumeration it is the normal end-of-sequence condition, not a failure.
	ErrNotFound = errors.New("nvram: variable not found")

	// ErrOutOfResources indicates buffer growth exceeded MaxFetchSize.
	ErrOutOfResources = errors.New("nvram: buffer growth limit exceeded")
)

// BufferTooSmallError reports the exact buffer size a store operation needs.
// It is an internal retry signal consumed by Fetch and never crosses the
// package boundary.
type BufferTooSmallError struct {
	Size int
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("nvram: buffer too small, need %d bytes", e.Size)
}

// StatusError carries a raw firmware status code for an unexpected store
// failure. It is propagated verbatim so callers can display the code.
type StatusError struct {
	Status uint64
	Err    error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("nvram: store status 0x%x: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("nvram: store status 0x%x", e.Status)
}

func (e *StatusError) Unwrap() error { return e.Err }
