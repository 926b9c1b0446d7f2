package cleanup

import "github.com/fasttransfer/shellsweep/pkg/regtree"

// Target names one registry key tree the cleanup removes.
type Target struct {
	Hive regtree.Hive
	Path string
	Desc string // short human label for listings
}

// String returns the display form, e.g. `HKCR\Directory\shell\fast_transfer`.
func (t Target) String() string {
	return regtree.Report{Hive: t.Hive, Path: t.Path}.FullPath()
}

// DefaultTargets is every registry key the Fast Transfer installer writes.
// The first three register the menu entry on directories, directory
// backgrounds, and drives; the last three hold the command definitions
// those entries point at.
var DefaultTargets = []Target{
	{Hive: regtree.ClassesRoot, Path: `Directory\shell\fast_transfer`, Desc: "context menu on directories"},
	{Hive: regtree.ClassesRoot, Path: `Directory\Background\shell\fast_transfer`, Desc: "context menu on directory backgrounds"},
	{Hive: regtree.ClassesRoot, Path: `Drive\shell\fast_transfer`, Desc: "context menu on drives"},
	{Hive: regtree.LocalMachine, Path: `Software\Classes\fast_transfer_move`, Desc: "move command definition"},
	{Hive: regtree.LocalMachine, Path: `Software\Classes\fast_transfer_symlink`, Desc: "symlink command definition"},
	{Hive: regtree.LocalMachine, Path: `Software\Classes\fast_transfer_copy`, Desc: "copy command definition"},
}
