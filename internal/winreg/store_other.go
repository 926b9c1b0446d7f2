//go:build !windows

package winreg

import "github.com/fasttransfer/shellsweep/pkg/regtree"

// Store is the non-Windows placeholder for the live registry.
type Store struct{}

// NewStore returns a Store whose operations all fail with
// regtree.ErrUnsupported.
func NewStore() *Store { return &Store{} }

// OpenEnum implements regtree.Store.
func (s *Store) OpenEnum(regtree.Hive, string) (regtree.Key, error) {
	return nil, regtree.ErrUnsupported
}

// OpenModify implements regtree.Store.
func (s *Store) OpenModify(regtree.Hive, string) (regtree.Key, error) {
	return nil, regtree.ErrUnsupported
}
