package nvram

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/MikeBeaton/macos-boot-helper/internal/wide"
)

// KeyReader supplies one keystroke per call for the interactive pause.
// Implementations block until a key arrives.
type KeyReader interface {
	ReadKey() (rune, error)
}

// ListOptions controls an enumeration walk.
type ListOptions struct {
	// Interactive pauses after each entry for a keystroke: q or x stop the
	// walk, a latches show-all, anything else continues.
	Interactive bool

	// ShowAll presets the show-all latch, suppressing pauses.
	ShowAll bool

	// ShowNamespace prefixes each line with "<namespace>:".
	ShowNamespace bool

	// AsText renders printable elements literally instead of hex-escaping
	// every element.
	AsText bool

	// Out receives one line per entry. Default: os.Stdout.
	Out io.Writer

	// Keys is consulted only in interactive mode.
	Keys KeyReader
}

// DefaultListOptions returns the settings the CLI uses: namespace prefixes
// on, text rendering on, batch (non-interactive) mode.
func DefaultListOptions() ListOptions {
	return ListOptions{
		ShowNamespace: true,
		AsText:        true,
		Out:           os.Stdout,
	}
}

// Lister walks every variable in the store, rendering each as one output
// line in the store's intrinsic enumeration order.
type Lister struct {
	store  Store
	render *Renderer
	opts   ListOptions
}

// NewLister creates a Lister. A nil renderer gets NewRenderer's defaults.
func NewLister(st Store, r *Renderer, opts ListOptions) *Lister {
	if r == nil {
		r = NewRenderer()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Lister{store: st, render: r, opts: opts}
}

// Run enumerates the full variable set. The name buffer doubles as the
// cursor: each NextVariableName call reads the previous name from it, so
// one growable buffer is reused for the whole walk. A NotFound from the
// cursor is the normal end of the sequence. A variable that vanishes
// between the name fetch and the value fetch gets a NotFound line and the
// walk continues; any other per-entry failure halts the walk.
func (l *Lister) Run() error {
	nameBuf := make([]byte, 2) // room for the empty-name seed
	var ns Namespace
	showAll := l.opts.ShowAll

	for {
		var (
			n   int
			err error
		)
		nameBuf, n, err = FetchSeeded(nameBuf, func(b []byte) (int, error) {
			return l.store.NextVariableName(b, &ns)
		})
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		name := wide.Decode(nameBuf[:n])
		if err := l.Display(name, ns); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}

		if l.opts.Interactive && !showAll {
			key, err := l.opts.Keys.ReadKey()
			if err != nil {
				return err
			}
			switch unicode.ToLower(key) {
			case 'q', 'x':
				return nil
			case 'a':
				showAll = true
			}
		}
	}
}

// Display fetches, renders and emits a single variable as one line:
//
//	[<namespace>:]<name> = <rendered>[ (non-persistent)]
//
// Failures emit "<prefix>: NotFound" or "<prefix>: UnknownStatus=<code>"
// and return the underlying error.
func (l *Lister) Display(name string, ns Namespace) error {
	prefix := name
	if l.opts.ShowNamespace {
		prefix = ns.String() + ":" + name
	}

	var attrs Attributes
	data, err := Fetch(func(b []byte) (int, error) {
		a, n, err := l.store.GetVariable(name, ns, b)
		attrs = a
		return n, err
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			fmt.Fprintf(l.opts.Out, "%s: NotFound\n", prefix)
			return err
		}
		var st *StatusError
		if errors.As(err, &st) {
			fmt.Fprintf(l.opts.Out, "%s: UnknownStatus=%x\n", prefix, st.Status)
		}
		return err
	}

	width := l.render.WidthFor(ns, len(data))
	fmt.Fprintf(l.opts.Out, "%s = %s", prefix, l.render.Render(data, width, l.opts.AsText))
	if attrs&AttrNonVolatile == 0 {
		fmt.Fprint(l.opts.Out, " (non-persistent)")
	}
	fmt.Fprintln(l.opts.Out)
	return nil
}
