// Package nvramtest provides a deterministic in-memory Store for driving
// the fetch, enumeration and compare-and-set drivers in tests.
package nvramtest

import (
	"github.com/MikeBeaton/macos-boot-helper/internal/wide"
	"github.com/MikeBeaton/macos-boot-helper/nvram"
)

type key struct {
	name string
	ns   nvram.Namespace
}

type entry struct {
	attrs nvram.Attributes
	data  []byte
}

// Mutation records one SetVariable call, including deletes (nil Data).
type Mutation struct {
	Name  string
	Ns    nvram.Namespace
	Attrs nvram.Attributes
	Data  []byte
}

// Store is an in-memory variable store. Enumeration order is insertion
// order. Every SetVariable call is appended to Mutations so tests can
// assert on mutation counts.
type Store struct {
	order []key
	vars  map[key]entry

	// Mutations records all SetVariable calls in order.
	Mutations []Mutation

	// NextErr, when set, is returned by every NextVariableName call.
	NextErr error

	// GetErr maps a variable name to an error injected into GetVariable.
	GetErr map[string]error
}

// New returns an empty store.
func New() *Store {
	return &Store{vars: make(map[key]entry)}
}

// Seed inserts a variable without recording a mutation.
func (s *Store) Seed(name string, ns nvram.Namespace, attrs nvram.Attributes, data []byte) {
	k := key{name, ns}
	if _, ok := s.vars[k]; !ok {
		s.order = append(s.order, k)
	}
	s.vars[k] = entry{attrs: attrs, data: append([]byte(nil), data...)}
}

// Len returns the number of stored variables.
func (s *Store) Len() int { return len(s.order) }

func (s *Store) GetVariable(name string, ns nvram.Namespace, buf []byte) (nvram.Attributes, int, error) {
	if err := s.GetErr[name]; err != nil {
		return 0, 0, err
	}
	e, ok := s.vars[key{name, ns}]
	if !ok {
		return 0, 0, nvram.ErrNotFound
	}
	if len(buf) < len(e.data) {
		return 0, 0, &nvram.BufferTooSmallError{Size: len(e.data)}
	}
	copy(buf, e.data)
	return e.attrs, len(e.data), nil
}

func (s *Store) SetVariable(name string, ns nvram.Namespace, attrs nvram.Attributes, data []byte) error {
	s.Mutations = append(s.Mutations, Mutation{
		Name:  name,
		Ns:    ns,
		Attrs: attrs,
		Data:  append([]byte(nil), data...),
	})

	k := key{name, ns}
	if len(data) == 0 {
		if _, ok := s.vars[k]; !ok {
			return nvram.ErrNotFound
		}
		delete(s.vars, k)
		for i, o := range s.order {
			if o == k {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return nil
	}

	if _, ok := s.vars[k]; !ok {
		s.order = append(s.order, k)
	}
	s.vars[k] = entry{attrs: attrs, data: append([]byte(nil), data...)}
	return nil
}

func (s *Store) NextVariableName(buf []byte, ns *nvram.Namespace) (int, error) {
	if s.NextErr != nil {
		return 0, s.NextErr
	}

	idx := 0
	if prev := wide.Decode(buf); prev != "" {
		k := key{prev, *ns}
		found := false
		for i, o := range s.order {
			if o == k {
				idx = i + 1
				found = true
				break
			}
		}
		if !found {
			// Mirrors EFI_INVALID_PARAMETER for a stale cursor.
			return 0, &nvram.StatusError{Status: 0x2}
		}
	}
	if idx >= len(s.order) {
		return 0, nvram.ErrNotFound
	}

	k := s.order[idx]
	enc := wide.EncodeTerminated(k.name)
	if len(buf) < len(enc) {
		return 0, &nvram.BufferTooSmallError{Size: len(enc)}
	}
	copy(buf, enc)
	*ns = k.ns
	return len(enc), nil
}
