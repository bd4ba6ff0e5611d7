package nvram

import (
	"bytes"
	"errors"
	"fmt"
)

// Outcome reports what ToggleOrSet did to the store.
type Outcome int

const (
	// OutcomeUnchanged means the variable already held the preferred value.
	OutcomeUnchanged Outcome = iota

	// OutcomeSet means the preferred value was written.
	OutcomeSet

	// OutcomeDeleted means toggle mode found the preferred value and
	// deleted the variable.
	OutcomeDeleted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSet:
		return "set"
	case OutcomeDeleted:
		return "deleted"
	default:
		return "unchanged"
	}
}

// ToggleOrSet drives the variable (name, ns) toward preferred. If the
// current value already equals preferred, toggle mode deletes the variable
// and plain mode leaves it alone; in every other case preferred is written
// with SetAttrs. At most one store mutation happens per call, and a
// repeated call with toggle false never rewrites an equal value.
func ToggleOrSet(st Store, name string, ns Namespace, preferred []byte, toggle bool) (Outcome, error) {
	cur, err := Fetch(func(b []byte) (int, error) {
		_, n, err := st.GetVariable(name, ns, b)
		return n, err
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		return OutcomeUnchanged, fmt.Errorf("nvram: read %s: %w", name, err)
	}
	exists := err == nil

	if exists && bytes.Equal(cur, preferred) {
		if !toggle {
			return OutcomeUnchanged, nil
		}
		if err := Delete(st, name, ns); err != nil {
			return OutcomeUnchanged, err
		}
		return OutcomeDeleted, nil
	}

	if err := st.SetVariable(name, ns, SetAttrs, preferred); err != nil {
		return OutcomeUnchanged, fmt.Errorf("nvram: set %s: %w", name, err)
	}
	return OutcomeSet, nil
}

// Delete removes (name, ns) by writing a zero-length payload.
func Delete(st Store, name string, ns Namespace) error {
	if err := st.SetVariable(name, ns, SetAttrs, nil); err != nil {
		return fmt.Errorf("nvram: delete %s: %w", name, err)
	}
	return nil
}
