package main

import (
	"github.com/fasttransfer/shellsweep/internal/cleanup"
	"github.com/fasttransfer/shellsweep/pkg/regtree"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the targeted registry keys and whether they exist",
		Long: `The list command prints every registry key shellsweep would remove and,
when a live registry is available, whether each key currently exists.
It never modifies anything and needs no elevation.

Example:
  shellsweep list
  shellsweep list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
	return cmd
}

func runList() error {
	store, storeErr := openStore()

	type entry struct {
		target  cleanup.Target
		state   string
		subkeys int
	}
	entries := make([]entry, 0, len(cleanup.DefaultTargets))
	for _, target := range cleanup.DefaultTargets {
		e := entry{target: target, state: "unavailable"}
		if storeErr == nil {
			e.state, e.subkeys = probeTarget(store, target)
		}
		entries = append(entries, e)
	}

	if jsonOut {
		results := make([]map[string]interface{}, 0, len(entries))
		for _, e := range entries {
			results = append(results, map[string]interface{}{
				"hive":    e.target.Hive.String(),
				"path":    e.target.Path,
				"desc":    e.target.Desc,
				"state":   e.state,
				"subkeys": e.subkeys,
			})
		}
		return printJSON(map[string]interface{}{"targets": results})
	}

	printInfo("Fast Transfer registry keys:\n\n")
	for _, e := range entries {
		printInfo("  %-12s %s\n", e.state, e.target)
		printVerbose("               %s\n", e.target.Desc)
	}
	if storeErr != nil {
		printInfo("\nNo live registry on this platform; states are unavailable.\n")
	}
	return nil
}

// probeTarget checks whether a target currently exists without changing it.
func probeTarget(store regtree.Store, target cleanup.Target) (state string, subkeys int) {
	k, err := store.OpenEnum(target.Hive, target.Path)
	switch {
	case err == nil:
	case regtree.IsNotFound(err):
		return "absent", 0
	case regtree.IsAccessDenied(err):
		return "denied", 0
	default:
		return "unknown", 0
	}
	defer k.Close()

	names, err := k.SubkeyNames()
	if err != nil {
		return "present", 0
	}
	return "present", len(names)
}
