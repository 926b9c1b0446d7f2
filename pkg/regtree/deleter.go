package regtree

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Options configures a Deleter. The zero value is usable: no dry-run, no
// report callback, and a logger that discards everything.
type Options struct {
	// DryRun walks and reports without modifying the store.
	DryRun bool

	// Log receives structured progress output. Nil discards.
	Log *slog.Logger

	// OnReport, when non-nil, observes the terminal outcome of every key
	// visited, children before parents.
	OnReport func(Report)
}

// Deleter removes whole key trees from a Store. DeleteTree never returns an
// error: every outcome, success or failure, surfaces as a Report, and a
// failure on one branch does not stop work on siblings.
type Deleter struct {
	store    Store
	dryRun   bool
	log      *slog.Logger
	onReport func(Report)
}

// NewDeleter returns a Deleter over store. opts may be nil.
func NewDeleter(store Store, opts *Options) *Deleter {
	if opts == nil {
		opts = &Options{}
	}
	log := opts.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Deleter{
		store:    store,
		dryRun:   opts.DryRun,
		log:      log,
		onReport: opts.OnReport,
	}
}

// DeleteTree removes the key at path beneath h together with every
// descendant, deepest keys first. The returned Status is the terminal
// outcome of the named key itself; per-key outcomes, descendants included,
// are delivered through Options.OnReport.
//
// Trees are deleted bottom-up: subkey names are snapshotted first, each
// subtree is deleted recursively, and only then is the key itself removed
// through its parent's handle. A key whose descendants could not all be
// removed stays in place and is reported with the store's refusal.
func (d *Deleter) DeleteTree(h Hive, path string) Status {
	path = strings.Trim(path, `\`)
	if path == "" {
		return d.report(Report{Hive: h, Path: path, Status: StatusFailed, Err: ErrCannotDeleteRoot})
	}
	return d.deleteTree(h, path)
}

func (d *Deleter) deleteTree(h Hive, path string) Status {
	names, err := d.subkeyNames(h, path)
	if err != nil {
		switch {
		case IsNotFound(err):
			return d.report(Report{Hive: h, Path: path, Status: StatusAbsent})
		case IsAccessDenied(err):
			return d.report(Report{Hive: h, Path: path, Status: StatusDenied, Err: err})
		default:
			return d.report(Report{Hive: h, Path: path, Status: StatusFailed, Err: err})
		}
	}

	clean := true
	for _, name := range names {
		switch d.deleteTree(h, path+`\`+name) {
		case StatusDeleted, StatusAbsent:
		default:
			clean = false
		}
	}

	if d.dryRun {
		if !clean {
			return d.report(Report{Hive: h, Path: path, Status: StatusFailed, Err: ErrKeyHasSubkeys})
		}
		return d.report(Report{Hive: h, Path: path, Status: StatusDeleted})
	}

	if err := d.deleteLeaf(h, path); err != nil {
		switch {
		case IsAccessDenied(err):
			return d.report(Report{Hive: h, Path: path, Status: StatusDenied, Err: err})
		case IsNotFound(err):
			// Raced away between enumeration and delete; absent is absent.
			return d.report(Report{Hive: h, Path: path, Status: StatusAbsent})
		default:
			return d.report(Report{Hive: h, Path: path, Status: StatusFailed, Err: err})
		}
	}
	return d.report(Report{Hive: h, Path: path, Status: StatusDeleted})
}

// subkeyNames snapshots the direct subkey names of the key at path. The
// enumeration handle is closed before the caller deletes anything, so the
// later delete never contends with our own open handle.
func (d *Deleter) subkeyNames(h Hive, path string) ([]string, error) {
	k, err := d.store.OpenEnum(h, path)
	if err != nil {
		return nil, err
	}
	defer k.Close()

	names, err := k.SubkeyNames()
	if err != nil {
		return nil, fmt.Errorf("enumerate %s: %w", displayPath(h, path), err)
	}
	return names, nil
}

// deleteLeaf removes the now-childless key at path via its parent's handle.
func (d *Deleter) deleteLeaf(h Hive, path string) error {
	parent, leaf := splitLeaf(path)
	pk, err := d.store.OpenModify(h, parent)
	if err != nil {
		return fmt.Errorf("open parent of %s: %w", displayPath(h, path), err)
	}
	defer pk.Close()

	if err := pk.DeleteSubkey(leaf); err != nil {
		return fmt.Errorf("delete %s: %w", displayPath(h, path), err)
	}
	return nil
}

func (d *Deleter) report(r Report) Status {
	switch r.Status {
	case StatusDeleted:
		if d.dryRun {
			d.log.Info("would delete key", "key", r.FullPath())
		} else {
			d.log.Info("deleted key", "key", r.FullPath())
		}
	case StatusAbsent:
		d.log.Debug("key absent", "key", r.FullPath())
	default:
		d.log.Warn("delete failed", "key", r.FullPath(), "status", r.Status.String(), "error", r.Err)
	}
	if d.onReport != nil {
		d.onReport(r)
	}
	return r.Status
}

// splitLeaf splits path into its parent path and final segment. A
// single-segment path has the hive root (empty string) as its parent.
func splitLeaf(path string) (parent, leaf string) {
	if i := strings.LastIndexByte(path, '\\'); i >= 0 {
		return path[:i], path[i+1:]
	}
	return "", path
}

func displayPath(h Hive, path string) string {
	return Report{Hive: h, Path: path}.FullPath()
}
