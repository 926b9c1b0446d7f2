// Package cleanup removes the Fast Transfer context-menu registration from
// the registry: three menu-entry trees under HKCR and three command
// definition trees under HKLM.
package cleanup

import (
	"log/slog"

	"github.com/fasttransfer/shellsweep/pkg/regtree"
)

// Options configures a Run. The zero value removes targets for real and
// reports nothing.
type Options struct {
	// DryRun walks and reports without modifying the store.
	DryRun bool

	// Log receives structured progress output. Nil discards.
	Log *slog.Logger

	// OnReport observes every per-key outcome, children before parents.
	OnReport func(regtree.Report)
}

// Result pairs a target with the terminal status of its root key.
type Result struct {
	Target Target
	Status regtree.Status
}

// Summary aggregates one Run over a target list.
type Summary struct {
	Results []Result
	Deleted int // targets removed
	Absent  int // targets already gone
	Denied  int // targets refused for lack of rights
	Failed  int // targets that failed some other way
}

// Clean reports whether every target is now gone: nothing was denied and
// nothing failed.
func (s Summary) Clean() bool { return s.Denied == 0 && s.Failed == 0 }

// Run deletes every target's key tree from store and returns the summary.
// A failing target never aborts the run; each one is attempted regardless
// of what happened to those before it.
func Run(store regtree.Store, targets []Target, opts *Options) Summary {
	if opts == nil {
		opts = &Options{}
	}
	d := regtree.NewDeleter(store, &regtree.Options{
		DryRun:   opts.DryRun,
		Log:      opts.Log,
		OnReport: opts.OnReport,
	})

	sum := Summary{Results: make([]Result, 0, len(targets))}
	for _, t := range targets {
		st := d.DeleteTree(t.Hive, t.Path)
		sum.Results = append(sum.Results, Result{Target: t, Status: st})
		switch st {
		case regtree.StatusDeleted:
			sum.Deleted++
		case regtree.StatusAbsent:
			sum.Absent++
		case regtree.StatusDenied:
			sum.Denied++
		default:
			sum.Failed++
		}
	}
	return sum
}
