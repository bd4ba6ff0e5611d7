package buf

import "testing"

func Test_U16LE(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want uint16
	}{
		{"empty", nil, 0},
		{"short", []byte{0x01}, 0},
		{"exact", []byte{0x34, 0x12}, 0x1234},
		{"extra bytes ignored", []byte{0x34, 0x12, 0xff}, 0x1234},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := U16LE(tt.in); got != tt.want {
				t.Errorf("U16LE(%v) = 0x%x, want 0x%x", tt.in, got, tt.want)
			}
		})
	}
}

func Test_U32LE(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want uint32
	}{
		{"empty", nil, 0},
		{"short", []byte{0x01, 0x02, 0x03}, 0},
		{"exact", []byte{0x78, 0x56, 0x34, 0x12}, 0x12345678},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := U32LE(tt.in); got != tt.want {
				t.Errorf("U32LE(%v) = 0x%x, want 0x%x", tt.in, got, tt.want)
			}
		})
	}
}

func Test_U64LE(t *testing.T) {
	in := []byte{0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01}
	if got := U64LE(in); got != 0x0123456789abcdef {
		t.Errorf("U64LE() = 0x%x, want 0x0123456789abcdef", got)
	}
	if got := U64LE(in[:7]); got != 0 {
		t.Errorf("U64LE(short) = 0x%x, want 0", got)
	}
}

func Test_AppendRoundTrip(t *testing.T) {
	b := AppendU16LE(nil, 0x1234)
	if got := U16LE(b); got != 0x1234 {
		t.Errorf("AppendU16LE round trip = 0x%x", got)
	}
	b = AppendU32LE(b[:0], 0xdeadbeef)
	if got := U32LE(b); got != 0xdeadbeef {
		t.Errorf("AppendU32LE round trip = 0x%x", got)
	}
}
