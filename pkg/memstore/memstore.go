// Package memstore provides an in-memory regtree.Store for tests, examples,
// and dry runs on machines without a registry.
//
// Keys match case-insensitively and enumerate in case-insensitive sorted
// order, like the live registry. Per-key deny flags simulate ACLs: DenyOpen
// refuses any open of a key, DenyDelete refuses deleting it through its
// parent. OpenHandles exposes the number of outstanding handles so tests can
// prove that every handle taken was released.
package memstore

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fasttransfer/shellsweep/pkg/regtree"
)

// node is one key in the fake registry tree.
type node struct {
	name       string           // original-case name, as added
	subkeys    map[string]*node // keyed by normalized name
	denyOpen   bool
	denyDelete bool
}

func newNode(name string) *node {
	return &node{name: name, subkeys: make(map[string]*node)}
}

// Store is an in-memory registry tree implementing regtree.Store. It is not
// safe for concurrent use; neither is the single-threaded walk that drives it.
type Store struct {
	roots map[regtree.Hive]*node
	open  int
}

// New returns an empty Store. Hive roots exist implicitly, as they do in the
// live registry.
func New() *Store {
	return &Store{roots: make(map[regtree.Hive]*node)}
}

// normalizeName lowercases a key name for case-insensitive matching.
func normalizeName(name string) string { return strings.ToLower(name) }

func displayPath(h regtree.Hive, path string) string {
	return regtree.Report{Hive: h, Path: path}.FullPath()
}

// Add creates the key at path beneath h, creating missing ancestors. Adding
// an existing key is a no-op; its original-case name is kept.
func (s *Store) Add(h regtree.Hive, path string) error {
	segs, err := splitPath(path)
	if err != nil {
		return fmt.Errorf("add %s: %w", displayPath(h, path), err)
	}
	n := s.root(h)
	for _, seg := range segs {
		child, ok := n.subkeys[normalizeName(seg)]
		if !ok {
			child = newNode(seg)
			n.subkeys[normalizeName(seg)] = child
		}
		n = child
	}
	return nil
}

// DenyOpen marks the key at path so every open of it fails with
// regtree.ErrAccessDenied. An empty path marks the hive root.
func (s *Store) DenyOpen(h regtree.Hive, path string) error {
	n, err := s.lookup(h, path)
	if err != nil {
		return fmt.Errorf("deny open %s: %w", displayPath(h, path), err)
	}
	n.denyOpen = true
	return nil
}

// DenyDelete marks the key at path so deleting it through its parent fails
// with regtree.ErrAccessDenied.
func (s *Store) DenyDelete(h regtree.Hive, path string) error {
	n, err := s.lookup(h, path)
	if err != nil {
		return fmt.Errorf("deny delete %s: %w", displayPath(h, path), err)
	}
	n.denyDelete = true
	return nil
}

// Exists reports whether the key at path exists. Deny flags do not hide a
// key from Exists; it is a test assertion helper, not a registry operation.
func (s *Store) Exists(h regtree.Hive, path string) bool {
	_, err := s.lookup(h, path)
	return err == nil
}

// OpenHandles returns the number of keys opened and not yet closed.
func (s *Store) OpenHandles() int { return s.open }

// OpenEnum implements regtree.Store.
func (s *Store) OpenEnum(h regtree.Hive, path string) (regtree.Key, error) {
	return s.openKey(h, path)
}

// OpenModify implements regtree.Store.
func (s *Store) OpenModify(h regtree.Hive, path string) (regtree.Key, error) {
	return s.openKey(h, path)
}

func (s *Store) openKey(h regtree.Hive, path string) (regtree.Key, error) {
	n, err := s.lookup(h, path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", displayPath(h, path), err)
	}
	if n.denyOpen {
		return nil, fmt.Errorf("open %s: %w", displayPath(h, path), regtree.ErrAccessDenied)
	}
	s.open++
	return &key{s: s, n: n, path: displayPath(h, path)}, nil
}

func (s *Store) root(h regtree.Hive) *node {
	n, ok := s.roots[h]
	if !ok {
		n = newNode(h.String())
		s.roots[h] = n
	}
	return n
}

func (s *Store) lookup(h regtree.Hive, path string) (*node, error) {
	segs, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	n := s.root(h)
	for _, seg := range segs {
		child, ok := n.subkeys[normalizeName(seg)]
		if !ok {
			return nil, regtree.ErrKeyNotFound
		}
		n = child
	}
	return n, nil
}

// splitPath splits a backslash-separated path into segments. The empty path
// is valid and addresses the hive root; empty segments are not.
func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	segs := strings.Split(path, `\`)
	for _, seg := range segs {
		if seg == "" {
			return nil, &regtree.Error{Kind: regtree.ErrKindInvalidPath, Msg: "empty path segment"}
		}
	}
	return segs, nil
}

// key is an open handle onto one node.
type key struct {
	s      *Store
	n      *node
	path   string // display path for error context
	closed bool
}

// SubkeyNames implements regtree.Key. Names come back in case-insensitive
// sorted order with their original casing.
func (k *key) SubkeyNames() ([]string, error) {
	if k.closed {
		return nil, regtree.ErrHandleClosed
	}
	names := make([]string, 0, len(k.n.subkeys))
	for _, child := range k.n.subkeys {
		names = append(names, child.name)
	}
	sort.Slice(names, func(i, j int) bool {
		return normalizeName(names[i]) < normalizeName(names[j])
	})
	return names, nil
}

// DeleteSubkey implements regtree.Key. Like the registry API it refuses to
// delete a key that still has subkeys.
func (k *key) DeleteSubkey(name string) error {
	if k.closed {
		return regtree.ErrHandleClosed
	}
	child, ok := k.n.subkeys[normalizeName(name)]
	if !ok {
		return fmt.Errorf("delete %s: %w", k.path+`\`+name, regtree.ErrKeyNotFound)
	}
	if child.denyDelete {
		return fmt.Errorf("delete %s: %w", k.path+`\`+name, regtree.ErrAccessDenied)
	}
	if len(child.subkeys) > 0 {
		return fmt.Errorf("delete %s: %w", k.path+`\`+name, regtree.ErrKeyHasSubkeys)
	}
	delete(k.n.subkeys, normalizeName(name))
	return nil
}

// Close implements regtree.Key. Double-Close is safe.
func (k *key) Close() error {
	if k.closed {
		return nil
	}
	k.closed = true
	k.s.open--
	return nil
}
