package nvram

import "github.com/google/uuid"

// Namespace is the 128-bit identifier that, combined with a name, uniquely
// scopes one variable in the store.
type Namespace uuid.UUID

// ParseNamespace parses the canonical textual GUID form.
func ParseNamespace(s string) (Namespace, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Namespace{}, err
	}
	return Namespace(u), nil
}

// MustParseNamespace is ParseNamespace for static identifiers; it panics on
// malformed input.
func MustParseNamespace(s string) Namespace {
	return Namespace(uuid.MustParse(s))
}

func (n Namespace) String() string { return uuid.UUID(n).String() }

// IsZero reports whether n is the all-zero namespace.
func (n Namespace) IsZero() bool { return n == Namespace{} }

var (
	// NamespaceGlobal is the EFI global variable namespace.
	NamespaceGlobal = MustParseNamespace("8be4df61-93ca-11d2-aa0d-00e098032b8c")

	// NamespaceApple scopes the Apple boot variables (boot-args,
	// csr-active-config and friends).
	NamespaceApple = MustParseNamespace("7c436110-ab2a-4bbb-a880-fe41995c9f82")

	// NamespaceQemuText1 and NamespaceQemuText2 are the two QEMU namespaces
	// known to hold wide-character text payloads. They seed the renderer's
	// wide-namespace set.
	NamespaceQemuText1 = MustParseNamespace("158def5a-f656-419c-b027-7a3192c079d2")
	NamespaceQemuText2 = MustParseNamespace("0053d9d6-2659-4599-a26b-ef4536e631a9")
)
