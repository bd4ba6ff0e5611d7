package nvram

// Attributes is the UEFI variable attribute bitfield.
type Attributes uint32

const (
	// AttrNonVolatile marks a variable as surviving a power cycle.
	// Its absence is reported as "(non-persistent)" by the lister.
	AttrNonVolatile Attributes = 1 << iota

	// AttrBootService makes the variable accessible during boot services.
	AttrBootService

	// AttrRuntimeService makes the variable accessible at OS runtime.
	AttrRuntimeService

	// AttrHardwareErrorRecord marks a hardware error record variable.
	AttrHardwareErrorRecord

	// AttrAuthWrite requires an authenticated write (deprecated in UEFI).
	AttrAuthWrite

	// AttrTimeBasedAuthWrite requires a time-based authenticated write.
	AttrTimeBasedAuthWrite

	// AttrAppendWrite appends to the existing value instead of replacing it.
	AttrAppendWrite

	// AttrEnhancedAuthAccess requires enhanced authentication.
	AttrEnhancedAuthAccess
)

// SetAttrs is the fixed attribute set used for writes by ToggleOrSet:
// persistent, visible to both boot services and the OS.
const SetAttrs = AttrNonVolatile | AttrBootService | AttrRuntimeService

// Store is the variable-services capability consumed by every driver in
// this package. Implementations back it with real firmware interfaces
// (efivarfs on Linux) or an in-memory table for tests.
//
// GetVariable and NextVariableName share the sized-output contract: when
// the supplied buffer is too short the call fills nothing and returns a
// *BufferTooSmallError carrying the exact size needed. Fetch hides the
// retry loop; drivers never call these with undersized buffers knowingly.
type Store interface {
	// GetVariable reads the payload of (name, ns) into buf and returns the
	// variable's attributes and payload length. Returns ErrNotFound when the
	// variable does not exist.
	GetVariable(name string, ns Namespace, buf []byte) (Attributes, int, error)

	// SetVariable writes data as the new payload of (name, ns). A
	// zero-length data deletes the variable.
	SetVariable(name string, ns Namespace, attrs Attributes, data []byte) error

	// NextVariableName advances the enumeration cursor. The cursor is the
	// previous name as NUL-terminated UTF-16LE in buf together with *ns; a
	// leading NUL (empty name) starts the walk. On success the next name is
	// written to buf (NUL-terminated UTF-16LE), *ns is updated, and the
	// number of bytes written is returned. Returns ErrNotFound after the
	// last name.
	NextVariableName(buf []byte, ns *Namespace) (int, error)
}
