package nvram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Render_Narrow(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name   string
		data   []byte
		asText bool
		want   string
	}{
		{"empty", nil, true, `""`},
		{"percent doubled", []byte("hi%"), true, `"hi%%"`},
		{"single byte echo", []byte{0x41}, true, `"A" 0x41`},
		{"two byte echo little-endian", []byte{0x34, 0x12}, true, `"4%12" 0x1234`},
		{"four byte echo", []byte{0xde, 0xad, 0xbe, 0xef}, true, `"%de%ad%be%ef" 0xefbeadde`},
		{"eight byte echo", []byte{1, 0, 0, 0, 0, 0, 0, 0}, true, `"%01%00%00%00%00%00%00%00" 0x0000000000000001`},
		{"control bytes escaped", []byte{0x1f, 0x20, 0x7e, 0x7f}, true, `"%1f ~%7f" 0x7f7e201f`},
		{"raw mode escapes everything", []byte("A%"), false, `"%41%25" 0x2541`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Render(tt.data, 1, tt.asText))
		})
	}
}

func Test_Render_Wide(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name   string
		data   []byte
		asText bool
		want   string
	}{
		{"empty", nil, true, `L""`},
		{"non-printable element", []byte{0x01, 0x00}, true, `L"%0001"`},
		{"printable above ascii", []byte{0x00, 0x01}, true, `L"Ā"`},
		{"ascii literals", []byte{'h', 0, 'i', 0}, true, `L"hi"`},
		{"percent doubled", []byte{0x25, 0x00}, true, `L"%%"`},
		{"high code unit stays literal", []byte{0x2d, 0x4e}, true, `L"中"`},
		{"lone surrogate escaped", []byte{0x00, 0xd8}, true, `L"%d800"`},
		{"raw mode", []byte{'h', 0}, false, `L"%0068"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Render(tt.data, 2, tt.asText))
		})
	}
}

func Test_Render_NoEchoForWide(t *testing.T) {
	r := NewRenderer()
	// A 2-byte wide payload matches an echo length, but the echo is a
	// narrow-mode annotation only.
	assert.Equal(t, `L"%0001"`, r.Render([]byte{0x01, 0x00}, 2, true))
}

func Test_WidthFor(t *testing.T) {
	r := NewRenderer()
	other := MustParseNamespace("11111111-2222-3333-4444-555555555555")

	tests := []struct {
		name string
		ns   Namespace
		size int
		want int
	}{
		{"wide namespace even size", NamespaceQemuText1, 4, 2},
		{"second wide namespace", NamespaceQemuText2, 2, 2},
		{"wide namespace odd size", NamespaceQemuText1, 3, 1},
		{"wide namespace empty payload", NamespaceQemuText1, 0, 2},
		{"other namespace even size", other, 4, 1},
		{"global namespace", NamespaceGlobal, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.WidthFor(tt.ns, tt.size))
		})
	}
}

func Test_WidthFor_ExtendedAllowlist(t *testing.T) {
	r := NewRenderer()
	extra := MustParseNamespace("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	assert.Equal(t, 1, r.WidthFor(extra, 2))
	r.AddWideNamespace(extra)
	assert.Equal(t, 2, r.WidthFor(extra, 2))
}

// Test_Render_EscapingComplete scans rendered output for the invariant
// that every percent sign is either doubled or followed by exactly
// 2*width lowercase hex digits.
func Test_Render_EscapingComplete(t *testing.T) {
	r := NewRenderer()

	payloads := [][]byte{
		[]byte("hello%world"),
		{0x00, 0x25, 0x25, 0x00, 0xff, 0xfe},
		{0x25, 0x25, 0x25},
		[]byte("100% \"quoted\" text"),
		{0x00, 0xd8, 0x3d, 0xd8, 0x00, 0xde},
	}

	for _, width := range []int{1, 2} {
		for _, p := range payloads {
			if len(p)%width != 0 {
				continue
			}
			out := r.Render(p, width, true)
			body := strings.TrimSuffix(out, `"`)
			body = body[strings.Index(body, `"`)+1:]
			assertEscapesWellFormed(t, body, width)
		}
	}
}

func assertEscapesWellFormed(t *testing.T, body string, width int) {
	t.Helper()
	digits := 2 * width
	for i := 0; i < len(body); {
		if body[i] != '%' {
			i++
			continue
		}
		if i+1 < len(body) && body[i+1] == '%' {
			i += 2
			continue
		}
		if i+1+digits > len(body) {
			t.Fatalf("lone %% with short escape in %q at %d", body, i)
		}
		for j := i + 1; j < i+1+digits; j++ {
			if !isHexDigit(body[j]) {
				t.Fatalf("non-hex escape digit %q in %q", body[j], body)
			}
		}
		i += 1 + digits
	}
}
