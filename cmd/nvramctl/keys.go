package main

import (
	"os"

	"golang.org/x/term"
)

// termKeys reads single raw keystrokes from the terminal for the
// interactive list pause.
type termKeys struct {
	in *os.File
}

func newTermKeys() *termKeys { return &termKeys{in: os.Stdin} }

// ReadKey blocks for one keystroke. Ctrl-C maps to q so an interrupt ends
// the walk cleanly instead of leaving the terminal raw.
func (t *termKeys) ReadKey() (rune, error) {
	fd := int(t.in.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return 0, err
	}
	defer term.Restore(fd, old)

	var b [1]byte
	if _, err := t.in.Read(b[:]); err != nil {
		return 0, err
	}
	if b[0] == 0x03 {
		return 'q', nil
	}
	return rune(b[0]), nil
}

// stdinIsTerminal reports whether interactive pausing is possible at all.
func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
