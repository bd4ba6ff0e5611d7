package nvram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MikeBeaton/macos-boot-helper/internal/buf"
)

// Decode reverses Render: it parses a quoted rendering at the given
// element width back into the original payload bytes. A trailing hex echo,
// when present, is ignored. The scan is strict: a percent sign must be
// followed by either another percent sign or exactly 2*width lowercase hex
// digits, and literal elements must fit the declared width.
func Decode(s string, width int) ([]byte, error) {
	if width != 1 && width != 2 {
		return nil, fmt.Errorf("nvram: unsupported element width %d", width)
	}

	body, err := stripQuotes(s, width)
	if err != nil {
		return nil, err
	}

	digits := 2 * width
	var out []byte
	for i := 0; i < len(body); {
		if body[i] == '%' {
			if i+1 < len(body) && body[i+1] == '%' {
				out = appendElement(out, '%', width)
				i += 2
				continue
			}
			if i+1+digits > len(body) {
				return nil, fmt.Errorf("nvram: truncated escape at offset %d", i)
			}
			v, err := parseHexStrict(body[i+1 : i+1+digits])
			if err != nil {
				return nil, fmt.Errorf("nvram: bad escape at offset %d: %w", i, err)
			}
			out = appendElement(out, v, width)
			i += 1 + digits
			continue
		}

		r, size := utf8.DecodeRuneInString(body[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("nvram: invalid UTF-8 at offset %d", i)
		}
		limit := rune(0xff)
		if width == 2 {
			limit = 0xffff
		}
		if r > limit {
			return nil, fmt.Errorf("nvram: literal %q does not fit element width %d", r, width)
		}
		out = appendElement(out, uint16(r), width)
		i += size
	}

	if out == nil {
		out = []byte{}
	}
	return out, nil
}

func appendElement(out []byte, v uint16, width int) []byte {
	if width == 2 {
		return buf.AppendU16LE(out, v)
	}
	return append(out, byte(v))
}

// stripQuotes removes the width prefix, surrounding quotes and any
// trailing hex echo, returning the escaped body.
func stripQuotes(s string, width int) (string, error) {
	if width == 2 {
		if !strings.HasPrefix(s, "L") {
			return "", fmt.Errorf("nvram: wide rendering must start with L, got %q", s)
		}
		s = s[1:]
	}
	if len(s) < 2 || s[0] != '"' {
		return "", fmt.Errorf("nvram: rendering is not quoted: %q", s)
	}
	if s[len(s)-1] == '"' {
		return s[1 : len(s)-1], nil
	}

	// Allow (and drop) the " 0x…" echo annotation after the closing quote.
	if idx := strings.LastIndex(s, `" 0x`); idx > 0 && isHex(s[idx+4:]) {
		return s[1:idx], nil
	}
	return "", fmt.Errorf("nvram: rendering has no closing quote: %q", s)
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}

// parseHexStrict parses up to four lowercase hex digits. Uppercase digits
// are rejected: the renderer never emits them, so accepting them would
// make the encoding ambiguous as an inverse.
func parseHexStrict(s string) (uint16, error) {
	var v uint16
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isHexDigit(c) {
			return 0, fmt.Errorf("invalid hex digit %q", c)
		}
		var d uint16
		if c >= 'a' {
			d = uint16(c-'a') + 10
		} else {
			d = uint16(c - '0')
		}
		v = v<<4 | d
	}
	return v, nil
}
