package regtree

import (
	"errors"
	"io/fs"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies store errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindUnknown      ErrKind = iota // unclassified failure
	ErrKindNotFound                    // missing key/path
	ErrKindAccessDenied                // caller lacks rights for the requested access
	ErrKindNotLeaf                     // key still has subkeys
	ErrKindInvalidPath                 // empty path or malformed segments
	ErrKindUnsupported                 // store cannot operate on this platform
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by Store implementations.
var (
	// ErrKeyNotFound indicates the key (or one of its ancestors) does not exist.
	ErrKeyNotFound = &Error{Kind: ErrKindNotFound, Msg: "key not found"}
	// ErrAccessDenied indicates the caller lacks rights for the requested access.
	ErrAccessDenied = &Error{Kind: ErrKindAccessDenied, Msg: "access denied"}
	// ErrKeyHasSubkeys indicates a leaf delete was attempted on a non-empty key.
	ErrKeyHasSubkeys = &Error{Kind: ErrKindNotLeaf, Msg: "key has subkeys"}
	// ErrCannotDeleteRoot indicates a delete was attempted on a hive root.
	ErrCannotDeleteRoot = &Error{Kind: ErrKindInvalidPath, Msg: "cannot delete hive root"}
	// ErrHandleClosed indicates use of a key handle after Close.
	ErrHandleClosed = &Error{Kind: ErrKindUnknown, Msg: "key handle is closed"}
	// ErrUnsupported indicates the store has no backing registry on this platform.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "registry access not supported on this platform"}
)

// KindOf extracts the ErrKind from err's chain. Raw platform errors that
// carry fs.ErrNotExist or fs.ErrPermission semantics (as syscall errnos on
// Windows do) are classified even when no *Error wraps them.
func KindOf(err error) ErrKind {
	if err == nil {
		return ErrKindUnknown
	}
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	if errors.Is(err, fs.ErrNotExist) {
		return ErrKindNotFound
	}
	if errors.Is(err, fs.ErrPermission) {
		return ErrKindAccessDenied
	}
	return ErrKindUnknown
}

// IsNotFound reports whether err means a key or path does not exist.
func IsNotFound(err error) bool { return KindOf(err) == ErrKindNotFound }

// IsAccessDenied reports whether err means the caller lacks rights.
func IsAccessDenied(err error) bool { return KindOf(err) == ErrKindAccessDenied }
