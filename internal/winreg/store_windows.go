//go:build windows

package winreg

import (
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/fasttransfer/shellsweep/pkg/regtree"
)

// Store reads and mutates the live registry. The zero value is usable.
type Store struct{}

// NewStore returns a live-registry Store.
func NewStore() *Store { return &Store{} }

// OpenEnum implements regtree.Store.
func (s *Store) OpenEnum(h regtree.Hive, path string) (regtree.Key, error) {
	return open(h, path, registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE)
}

// OpenModify implements regtree.Store. The key is opened with full access,
// matching what RegDeleteKey needs to remove a direct subkey. An empty path
// yields a fresh handle to the hive root itself.
func (s *Store) OpenModify(h regtree.Hive, path string) (regtree.Key, error) {
	return open(h, path, registry.ALL_ACCESS)
}

func open(h regtree.Hive, path string, access uint32) (regtree.Key, error) {
	root, err := hiveKey(h)
	if err != nil {
		return nil, err
	}
	display := regtree.Report{Hive: h, Path: path}.FullPath()
	k, err := registry.OpenKey(root, path, access)
	if err != nil {
		return nil, wrapErr("open", display, err)
	}
	return &key{k: k, path: display}, nil
}

func hiveKey(h regtree.Hive) (registry.Key, error) {
	switch h {
	case regtree.ClassesRoot:
		return registry.CLASSES_ROOT, nil
	case regtree.CurrentUser:
		return registry.CURRENT_USER, nil
	case regtree.LocalMachine:
		return registry.LOCAL_MACHINE, nil
	case regtree.Users:
		return registry.USERS, nil
	case regtree.CurrentConfig:
		return registry.CURRENT_CONFIG, nil
	default:
		return 0, &regtree.Error{Kind: regtree.ErrKindInvalidPath, Msg: fmt.Sprintf("unknown hive %d", int(h))}
	}
}

// wrapErr classifies a registry error and wraps it with operation context.
// Windows errnos already satisfy fs.ErrNotExist/fs.ErrPermission, which is
// what KindOf keys off.
func wrapErr(op, path string, err error) error {
	return &regtree.Error{Kind: regtree.KindOf(err), Msg: op + " " + path, Err: err}
}

// key is an open handle to a live registry key.
type key struct {
	k      registry.Key
	path   string
	closed bool
}

// SubkeyNames implements regtree.Key.
func (k *key) SubkeyNames() ([]string, error) {
	if k.closed {
		return nil, regtree.ErrHandleClosed
	}
	names, err := k.k.ReadSubKeyNames(-1)
	if err != nil {
		return nil, wrapErr("enumerate", k.path, err)
	}
	return names, nil
}

// DeleteSubkey implements regtree.Key. RegDeleteKey only removes childless
// keys, so a still-populated subkey comes back as a denial from the OS.
func (k *key) DeleteSubkey(name string) error {
	if k.closed {
		return regtree.ErrHandleClosed
	}
	if err := registry.DeleteKey(k.k, name); err != nil {
		return wrapErr("delete", k.path+`\`+name, err)
	}
	return nil
}

// Close implements regtree.Key. Double-Close is safe.
func (k *key) Close() error {
	if k.closed {
		return nil
	}
	k.closed = true
	return k.k.Close()
}
