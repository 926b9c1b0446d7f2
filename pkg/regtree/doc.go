// Package regtree deletes whole Windows Registry key trees through an
// abstract store, tolerating partial failure.
//
// # Overview
//
// The Windows registry API only deletes childless keys, so removing a tree
// means removing its leaves first. Deleter implements that recursion over
// the small Store interface:
//
//   - Snapshot the direct subkey names of a key
//   - Recurse into each subkey, deepest keys first
//   - Delete the key itself through its parent's handle
//
// Subkey names are collected before recursion so the walk never enumerates
// a key while deleting its children out from under the enumeration.
//
// # Failure Model
//
// DeleteTree never returns an error. Every key it visits yields exactly one
// Report (children before their parent) carrying one of four outcomes:
// deleted, absent, denied, or failed. A denied or failed subtree does not
// stop work on its siblings; the ancestors of a surviving key then fail
// their own deletes and are reported with the store's refusal, so nothing
// is silently half-removed.
//
// # Quick Start
//
// Delete a tree from the live registry (Windows only):
//
//	d := regtree.NewDeleter(winreg.NewStore(), &regtree.Options{
//	    OnReport: func(r regtree.Report) {
//	        fmt.Printf("%s: %s\n", r.FullPath(), r.Status)
//	    },
//	})
//	d.DeleteTree(regtree.ClassesRoot, `Directory\shell\fast_transfer`)
//
// # Stores
//
// Two Store implementations ship with this module:
//
//   - internal/winreg: the live registry via golang.org/x/sys/windows/registry
//   - pkg/memstore: an in-memory tree with per-key ACL simulation, for tests
//
// Store errors are classified with KindOf, which understands both the typed
// errors in this package and raw platform errors carrying fs.ErrNotExist or
// fs.ErrPermission semantics.
package regtree
