// Package wide converts between Go strings and the UTF-16LE form the
// variable store uses for names.
package wide

import (
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"

	"github.com/MikeBeaton/macos-boot-helper/internal/buf"
)

var (
	utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
)

// Encode converts s to UTF-16LE without a terminator.
func Encode(s string) []byte {
	// Fast path: plain ASCII names are the overwhelming majority.
	if isASCII(s) {
		out := make([]byte, len(s)*2)
		for i := 0; i < len(s); i++ {
			out[i*2] = s[i]
		}
		return out
	}

	out, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err == nil {
		return out
	}

	// The encoder only fails on input it cannot represent; fall back to a
	// unit-by-unit encode, which replaces such runes instead.
	units := utf16.Encode([]rune(s))
	out = make([]byte, 0, len(units)*2)
	for _, u := range units {
		out = buf.AppendU16LE(out, u)
	}
	return out
}

// EncodeTerminated is Encode plus the trailing NUL code unit the store's
// name cursor requires.
func EncodeTerminated(s string) []byte {
	return append(Encode(s), 0, 0)
}

// Decode converts UTF-16LE bytes to a string, stopping at the first NUL
// code unit. A trailing odd byte is ignored.
func Decode(b []byte) string {
	b = trimAtNUL(b)
	if len(b) == 0 {
		return ""
	}

	// Fast path: ASCII units are [byte, 0x00].
	if ascii, ok := decodeASCII(b); ok {
		return ascii
	}

	out, err := utf16le.NewDecoder().Bytes(b)
	if err == nil {
		return string(out)
	}

	var sb strings.Builder
	for i := 0; i+1 < len(b); i += 2 {
		sb.WriteRune(rune(buf.U16LE(b[i:])))
	}
	return sb.String()
}

func trimAtNUL(b []byte) []byte {
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return b[:i]
		}
	}
	if len(b)%2 != 0 {
		return b[:len(b)-1]
	}
	return b
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func decodeASCII(b []byte) (string, bool) {
	if len(b)%2 != 0 {
		return "", false
	}
	var sb strings.Builder
	sb.Grow(len(b) / 2)
	for i := 0; i+1 < len(b); i += 2 {
		if b[i+1] != 0 || b[i] >= 0x80 {
			return "", false
		}
		sb.WriteByte(b[i])
	}
	return sb.String(), true
}
