// Package efivarfs backs the nvram.Store capability with the Linux
// efivarfs filesystem. Each variable is one file named "<Name>-<GUID>"
// whose first four bytes are the little-endian attribute word and whose
// remainder is the payload.
package efivarfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"

	"github.com/MikeBeaton/macos-boot-helper/internal/buf"
	"github.com/MikeBeaton/macos-boot-helper/internal/wide"
	"github.com/MikeBeaton/macos-boot-helper/nvram"
)

// DefaultDir is the standard efivarfs mount point.
const DefaultDir = "/sys/firmware/efi/efivars"

const (
	attrSize = 4
	guidLen  = 36

	statusInvalidParameter = 0x8000000000000002
	statusDeviceError      = 0x8000000000000007
)

type dirEntry struct {
	name string
	ns   nvram.Namespace
}

// Store implements nvram.Store over a directory of variable files.
// Enumeration order is the directory order (lexical, as os.ReadDir
// reports it), snapshotted when a walk starts.
type Store struct {
	dir      string
	snapshot []dirEntry
}

// New returns a Store over the standard efivarfs mount point.
func New() *Store { return NewAt(DefaultDir) }

// NewAt returns a Store over dir; tests point it at a scratch directory.
func NewAt(dir string) *Store { return &Store{dir: dir} }

func (s *Store) path(name string, ns nvram.Namespace) string {
	return filepath.Join(s.dir, name+"-"+ns.String())
}

func (s *Store) GetVariable(name string, ns nvram.Namespace, out []byte) (nvram.Attributes, int, error) {
	b, err := os.ReadFile(s.path(name, ns))
	if errors.Is(err, fs.ErrNotExist) {
		return 0, 0, nvram.ErrNotFound
	}
	if err != nil {
		return 0, 0, statusErr(err)
	}
	if len(b) < attrSize {
		return 0, 0, statusErr(fmt.Errorf("efivarfs: %s holds %d bytes, want at least %d", name, len(b), attrSize))
	}

	attrs := nvram.Attributes(buf.U32LE(b))
	data := b[attrSize:]
	if len(out) < len(data) {
		return attrs, 0, &nvram.BufferTooSmallError{Size: len(data)}
	}
	copy(out, data)
	return attrs, len(data), nil
}

func (s *Store) SetVariable(name string, ns nvram.Namespace, attrs nvram.Attributes, data []byte) error {
	p := s.path(name, ns)

	// efivarfs marks variable files immutable; writes and removes need the
	// flag dropped first.
	if err := clearImmutable(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return statusErr(err)
	}

	if len(data) == 0 {
		err := os.Remove(p)
		if errors.Is(err, fs.ErrNotExist) {
			return nvram.ErrNotFound
		}
		if err != nil {
			return statusErr(err)
		}
		return nil
	}

	payload := buf.AppendU32LE(make([]byte, 0, attrSize+len(data)), uint32(attrs))
	payload = append(payload, data...)
	if err := os.WriteFile(p, payload, 0o644); err != nil {
		return statusErr(err)
	}
	return nil
}

func (s *Store) NextVariableName(out []byte, ns *nvram.Namespace) (int, error) {
	prev := wide.Decode(out)
	if prev == "" {
		entries, err := s.readNames()
		if err != nil {
			return 0, err
		}
		s.snapshot = entries
		if len(entries) == 0 {
			return 0, nvram.ErrNotFound
		}
		return s.emit(0, out, ns)
	}

	for i, e := range s.snapshot {
		if e.name == prev && e.ns == *ns {
			if i+1 >= len(s.snapshot) {
				return 0, nvram.ErrNotFound
			}
			return s.emit(i+1, out, ns)
		}
	}
	// Cursor does not match the snapshot.
	return 0, &nvram.StatusError{Status: statusInvalidParameter}
}

func (s *Store) emit(i int, out []byte, ns *nvram.Namespace) (int, error) {
	enc := wide.EncodeTerminated(s.snapshot[i].name)
	if len(out) < len(enc) {
		return 0, &nvram.BufferTooSmallError{Size: len(enc)}
	}
	copy(out, enc)
	*ns = s.snapshot[i].ns
	return len(enc), nil
}

func (s *Store) readNames() ([]dirEntry, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, statusErr(err)
	}
	var entries []dirEntry
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name, ns, ok := splitEntry(f.Name())
		if !ok {
			continue
		}
		entries = append(entries, dirEntry{name: name, ns: ns})
	}
	return entries, nil
}

// splitEntry splits "<Name>-<GUID>". The name may contain dashes; the
// GUID is always the fixed-length tail.
func splitEntry(fn string) (string, nvram.Namespace, bool) {
	if len(fn) < guidLen+2 || fn[len(fn)-guidLen-1] != '-' {
		return "", nvram.Namespace{}, false
	}
	u, err := uuid.Parse(fn[len(fn)-guidLen:])
	if err != nil {
		return "", nvram.Namespace{}, false
	}
	return fn[:len(fn)-guidLen-1], nvram.Namespace(u), true
}

// statusErr wraps a filesystem failure as a StatusError, using the errno
// as the status code when one is available.
func statusErr(err error) error {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return &nvram.StatusError{Status: uint64(errno), Err: err}
	}
	return &nvram.StatusError{Status: statusDeviceError, Err: err}
}
