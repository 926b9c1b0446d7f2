package regtree

// -----------------------------------------------------------------------------
// Hives & Paths
// -----------------------------------------------------------------------------

// Hive identifies a predefined registry root. Stores map these to their
// platform handles; the enum keeps callers free of x/sys types.
type Hive int

const (
	ClassesRoot Hive = iota // HKEY_CLASSES_ROOT
	CurrentUser             // HKEY_CURRENT_USER
	LocalMachine            // HKEY_LOCAL_MACHINE
	Users                   // HKEY_USERS
	CurrentConfig           // HKEY_CURRENT_CONFIG
)

// String implements the Stringer interface for Hive using the conventional
// short names (the forms regedit shows in its address bar).
func (h Hive) String() string {
	switch h {
	case ClassesRoot:
		return "HKCR"
	case CurrentUser:
		return "HKCU"
	case LocalMachine:
		return "HKLM"
	case Users:
		return "HKU"
	case CurrentConfig:
		return "HKCC"
	default:
		return "HKEY_UNKNOWN"
	}
}

// -----------------------------------------------------------------------------
// Store API (abstract registry access)
// -----------------------------------------------------------------------------

// Store opens keys beneath a hive root. Paths are backslash-separated and
// relative to the hive (no leading slash); the empty path addresses the hive
// root itself. Implementations report failures through the typed errors in
// this package or through platform errors that KindOf can classify.
type Store interface {
	// OpenEnum opens the key at path with rights sufficient to list its
	// direct subkey names.
	OpenEnum(h Hive, path string) (Key, error)

	// OpenModify opens the key at path with rights sufficient to delete
	// direct subkeys. An empty path opens the hive root, which is the
	// required parent handle for deleting a top-level key.
	OpenModify(h Hive, path string) (Key, error)
}

// Key is an open handle to a single registry key. Callers must Close every
// handle they obtain; implementations are expected to make double-Close safe.
type Key interface {
	// SubkeyNames returns the names of all direct subkeys. The returned
	// slice is a snapshot: later mutations of the key do not affect it.
	SubkeyNames() ([]string, error)

	// DeleteSubkey removes the direct subkey with the given name. The
	// subkey must be childless; stores reject non-leaf deletes with
	// ErrKeyHasSubkeys or the platform's equivalent denial.
	DeleteSubkey(name string) error

	// Close releases the handle.
	Close() error
}

// -----------------------------------------------------------------------------
// Outcomes
// -----------------------------------------------------------------------------

// Status is the terminal outcome for one key in a deleted tree.
type Status int

const (
	StatusDeleted Status = iota // key existed and was removed
	StatusAbsent                // key did not exist; nothing to do
	StatusDenied                // access denied while enumerating or deleting
	StatusFailed                // any other failure
)

// String implements the Stringer interface for Status.
func (s Status) String() string {
	switch s {
	case StatusDeleted:
		return "deleted"
	case StatusAbsent:
		return "absent"
	case StatusDenied:
		return "denied"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Report describes the terminal outcome for a single key. The Deleter emits
// exactly one Report per key it visits, children before their parent.
type Report struct {
	Hive   Hive
	Path   string // backslash-separated, relative to Hive
	Status Status
	Err    error // nil unless Status is StatusDenied or StatusFailed
}

// FullPath returns the display form of the key, e.g.
// `HKCR\Directory\shell\fast_transfer`.
func (r Report) FullPath() string {
	if r.Path == "" {
		return r.Hive.String()
	}
	return r.Hive.String() + `\` + r.Path
}
