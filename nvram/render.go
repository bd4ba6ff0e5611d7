package nvram

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/MikeBeaton/macos-boot-helper/internal/buf"
)

// Renderer turns raw variable payloads into an unambiguous, reversible
// text form: printable elements appear literally, everything else as a
// percent escape of fixed width. Decode is the exact inverse.
type Renderer struct {
	// WideNamespaces holds the namespaces known a priori to contain
	// wide-character (UTF-16) text. WidthFor consults it.
	WideNamespaces map[Namespace]struct{}
}

// NewRenderer returns a Renderer seeded with DefaultWideNamespaces.
func NewRenderer() *Renderer {
	return &Renderer{WideNamespaces: DefaultWideNamespaces()}
}

// DefaultWideNamespaces returns the namespaces known to hold wide text:
// the two QEMU firmware namespaces.
func DefaultWideNamespaces() map[Namespace]struct{} {
	return map[Namespace]struct{}{
		NamespaceQemuText1: {},
		NamespaceQemuText2: {},
	}
}

// AddWideNamespace extends the wide-text allowlist.
func (r *Renderer) AddWideNamespace(ns Namespace) {
	if r.WideNamespaces == nil {
		r.WideNamespaces = make(map[Namespace]struct{})
	}
	r.WideNamespaces[ns] = struct{}{}
}

// WidthFor picks the element width for rendering a payload of size bytes
// from ns: 2 when the namespace is on the wide allowlist and the size is
// even (an odd payload can never be wide-aligned), otherwise 1.
func (r *Renderer) WidthFor(ns Namespace, size int) int {
	if size%2 == 0 {
		if _, ok := r.WideNamespaces[ns]; ok {
			return 2
		}
	}
	return 1
}

// Render encodes data as quoted text. Width 1 yields "...", width 2 yields
// L"..." with elements read little-endian. When asText is set, printable
// elements (32..126 for width 1, >=32 for width 2) appear literally and a
// literal percent sign is doubled; every other element becomes a percent
// sign followed by 2*width lowercase hex digits.
//
// Payloads of exactly 1, 2, 4 or 8 bytes rendered at width 1 get a
// trailing little-endian hex echo of the whole value. The echo is an
// annotation for the reader, not part of the reversible encoding.
func (r *Renderer) Render(data []byte, width int, asText bool) string {
	var sb strings.Builder

	switch width {
	case 2:
		sb.WriteString(`L"`)
		for i := 0; i+1 < len(data); i += 2 {
			renderWide(&sb, buf.U16LE(data[i:]), asText)
		}
		sb.WriteByte('"')
	default:
		sb.WriteByte('"')
		for _, c := range data {
			renderNarrow(&sb, c, asText)
		}
		sb.WriteByte('"')
		writeEcho(&sb, data)
	}

	return sb.String()
}

func renderNarrow(sb *strings.Builder, c byte, asText bool) {
	if asText && c >= 32 && c < 127 {
		if c == '%' {
			sb.WriteString("%%")
			return
		}
		sb.WriteByte(c)
		return
	}
	fmt.Fprintf(sb, "%%%02x", c)
}

func renderWide(sb *strings.Builder, v uint16, asText bool) {
	// No upper printable bound for wide elements; only surrogate code
	// units are escaped as well, since a lone surrogate has no UTF-8 form.
	if asText && v >= 32 && !utf16.IsSurrogate(rune(v)) {
		if v == '%' {
			sb.WriteString("%%")
			return
		}
		sb.WriteRune(rune(v))
		return
	}
	fmt.Fprintf(sb, "%%%04x", v)
}

// writeEcho appends the fixed-width integer echo for 1/2/4/8 byte payloads.
func writeEcho(sb *strings.Builder, data []byte) {
	switch len(data) {
	case 1:
		fmt.Fprintf(sb, " 0x%02x", data[0])
	case 2:
		fmt.Fprintf(sb, " 0x%04x", buf.U16LE(data))
	case 4:
		fmt.Fprintf(sb, " 0x%08x", buf.U32LE(data))
	case 8:
		fmt.Fprintf(sb, " 0x%016x", buf.U64LE(data))
	}
}
