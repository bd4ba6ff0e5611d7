package nvram

import (
	"errors"
	"fmt"
)

// MaxFetchSize caps buffer growth during a fetch. A store reporting a size
// above this is treated as out of resources rather than honored.
const MaxFetchSize = 64 << 20

// FetchOp is one sized-output store call: it fills buf and returns the
// number of meaningful bytes, or a *BufferTooSmallError naming the size it
// actually needs.
type FetchOp func(buf []byte) (int, error)

// Fetch runs op with a growing buffer until it stops reporting
// BufferTooSmallError, then returns the filled bytes. The final buffer is
// allocated at exactly the size op required; each reported size increase
// costs exactly one allocation. ErrNotFound passes through untouched: for
// a single-value fetch it means absence, for enumeration end-of-sequence.
func Fetch(op FetchOp) ([]byte, error) {
	buf, n, err := FetchSeeded(nil, op)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// FetchSeeded is Fetch for callers that own the buffer across calls, such
// as the enumeration driver whose cursor is the previous name stored in the
// buffer. Growth preserves the existing contents. It returns the (possibly
// reallocated) buffer, the byte count from the final op call, and the
// terminal error, if any.
func FetchSeeded(buf []byte, op FetchOp) ([]byte, int, error) {
	for {
		n, err := op(buf)
		var tooSmall *BufferTooSmallError
		if !errors.As(err, &tooSmall) {
			if err != nil {
				return buf, 0, err
			}
			return buf, n, nil
		}

		if tooSmall.Size > MaxFetchSize {
			return buf, 0, ErrOutOfResources
		}
		if tooSmall.Size <= len(buf) {
			// A store that asks for a buffer it already has would loop
			// forever; surface it as a store fault instead.
			return buf, 0, fmt.Errorf("nvram: store requested %d bytes but %d were supplied", tooSmall.Size, len(buf))
		}

		grown := make([]byte, tooSmall.Size)
		copy(grown, buf)
		buf = grown
	}
}
