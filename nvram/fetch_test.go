package nvram

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Fetch_GrowsExactlyOnce(t *testing.T) {
	payload := make([]byte, 17)
	for i := range payload {
		payload[i] = byte(i)
	}

	var sizes []int
	op := func(buf []byte) (int, error) {
		sizes = append(sizes, len(buf))
		if len(buf) < len(payload) {
			return 0, &BufferTooSmallError{Size: len(payload)}
		}
		copy(buf, payload)
		return len(payload), nil
	}

	got, err := Fetch(op)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// One undersized probe, then exactly one allocation at the reported size.
	require.Equal(t, []int{0, 17}, sizes)
	assert.Equal(t, 17, cap(got))
}

func Test_Fetch_NotFound(t *testing.T) {
	got, err := Fetch(func(buf []byte) (int, error) {
		return 0, ErrNotFound
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, got)
}

func Test_Fetch_StatusErrorPassesThrough(t *testing.T) {
	want := &StatusError{Status: 0x8000000000000007}
	_, err := Fetch(func(buf []byte) (int, error) {
		if len(buf) < 4 {
			return 0, &BufferTooSmallError{Size: 4}
		}
		return 0, want
	})
	var st *StatusError
	require.ErrorAs(t, err, &st)
	assert.Equal(t, want.Status, st.Status)
}

func Test_Fetch_RejectsNonGrowingSize(t *testing.T) {
	calls := 0
	_, err := Fetch(func(buf []byte) (int, error) {
		calls++
		// Keep asking for a size already supplied.
		if calls == 1 {
			return 0, &BufferTooSmallError{Size: 8}
		}
		return 0, &BufferTooSmallError{Size: 8}
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls, "loop must stop on the first non-growing report")
}

func Test_Fetch_GrowthCap(t *testing.T) {
	_, err := Fetch(func(buf []byte) (int, error) {
		return 0, &BufferTooSmallError{Size: MaxFetchSize + 1}
	})
	assert.ErrorIs(t, err, ErrOutOfResources)
}

func Test_FetchSeeded_PreservesContents(t *testing.T) {
	seed := []byte{'a', 0, 'b', 0, 0, 0}
	buf, n, err := FetchSeeded(seed, func(b []byte) (int, error) {
		if len(b) < 12 {
			return 0, &BufferTooSmallError{Size: 12}
		}
		// The cursor from the seed must still be readable after growth.
		if b[0] != 'a' || b[2] != 'b' {
			t.Fatal("seed contents lost during growth")
		}
		copy(b, []byte{'x', 0, 0, 0})
		return 4, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 12, len(buf))
}

func Test_Fetch_ZeroLengthValue(t *testing.T) {
	got, err := Fetch(func(buf []byte) (int, error) {
		return 0, nil
	})
	require.NoError(t, err)
	assert.Len(t, got, 0)
}

func Test_FetchSeeded_TerminalErrorKeepsBuffer(t *testing.T) {
	seed := make([]byte, 2)
	buf, _, err := FetchSeeded(seed, func(b []byte) (int, error) {
		return 0, ErrNotFound
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, buf, 2)
}

func Test_BufferTooSmallError_Message(t *testing.T) {
	err := error(&BufferTooSmallError{Size: 42})
	assert.Contains(t, err.Error(), "42")
	var tooSmall *BufferTooSmallError
	assert.True(t, errors.As(err, &tooSmall))
}
