package wide

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Encode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"empty", "", []byte{}},
		{"ascii", "Boot", []byte{'B', 0, 'o', 0, 'o', 0, 't', 0}},
		{"latin-1", "café", []byte{'c', 0, 'a', 0, 'f', 0, 0xe9, 0}},
		{"bmp", "中", []byte{0x2d, 0x4e}},
		{"astral pair", "\U0001F600", []byte{0x3d, 0xd8, 0x00, 0xde}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.in))
		})
	}
}

func Test_EncodeTerminated(t *testing.T) {
	got := EncodeTerminated("ab")
	want := []byte{'a', 0, 'b', 0, 0, 0}
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeTerminated(ab) = %v, want %v", got, want)
	}
}

func Test_Decode(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", nil, ""},
		{"ascii", []byte{'h', 0, 'i', 0}, "hi"},
		{"stops at NUL", []byte{'h', 0, 0, 0, 'x', 0}, "h"},
		{"non-ascii", []byte{0x2d, 0x4e}, "中"},
		{"surrogate pair", []byte{0x3d, 0xd8, 0x00, 0xde}, "\U0001F600"},
		{"odd trailing byte ignored", []byte{'h', 0, 'i', 0, 0x41}, "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.in))
		})
	}
}

func Test_RoundTrip(t *testing.T) {
	for _, s := range []string{"", "Boot0000", "OsIndications", "café 中文", "emoji \U0001F600"} {
		assert.Equal(t, s, Decode(Encode(s)), "round trip of %q", s)
	}
}
