package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/fasttransfer/shellsweep/internal/cleanup"
	"github.com/fasttransfer/shellsweep/internal/winreg"
	"github.com/fasttransfer/shellsweep/internal/winshell"
	"github.com/fasttransfer/shellsweep/pkg/regtree"
)

var (
	cleanDryRun  bool
	cleanNoPause bool
)

func init() {
	rootCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "Show what would be removed without touching the registry")
	rootCmd.Flags().BoolVar(&cleanNoPause, "no-pause", false, "Exit without waiting for a keypress")
}

// Test seams: the real store needs a Windows registry, and the real
// elevation path raises a UAC prompt.
var (
	openStore      = liveStore
	ensureElevated = relaunchIfNotElevated
)

func liveStore() (regtree.Store, error) {
	if runtime.GOOS != "windows" {
		return nil, fmt.Errorf("the live registry is only available on Windows (running on %s)", runtime.GOOS)
	}
	return winreg.NewStore(), nil
}

// relaunchIfNotElevated reports stop=true when the current process should
// exit because an elevated copy has been started in its place.
func relaunchIfNotElevated() (stop bool, err error) {
	if winshell.IsElevated() {
		return false, nil
	}
	printInfo("Administrator rights are required to edit these keys; requesting elevation...\n")
	if err := winshell.RelaunchElevated(); err != nil {
		return true, err
	}
	return true, nil
}

func runClean() error {
	store, err := openStore()
	if err != nil {
		return err
	}

	// A dry run only reads, so it works without Administrator rights.
	if !cleanDryRun {
		stop, err := ensureElevated()
		if err != nil {
			printError("could not relaunch elevated: %v\n", err)
			pause()
			os.Exit(1)
		}
		if stop {
			// The elevated copy takes over from here.
			pause()
			return nil
		}
	}

	if !jsonOut {
		if cleanDryRun {
			printInfo("Previewing the Fast Transfer context-menu cleanup...\n\n")
		} else {
			printInfo("Cleaning up the Fast Transfer context-menu entries...\n\n")
		}
	}

	targets := cleanup.DefaultTargets
	roots := make(map[string]bool, len(targets))
	for _, t := range targets {
		roots[t.String()] = true
	}

	sum := cleanup.Run(store, targets, &cleanup.Options{
		DryRun: cleanDryRun,
		Log:    cleanupLogger(),
		OnReport: func(r regtree.Report) {
			if jsonOut {
				return
			}
			line := fmt.Sprintf("%s %s", statusLabel(r.Status), r.FullPath())
			if roots[r.FullPath()] {
				printInfo("  %s\n", line)
			} else {
				printVerbose("    %s\n", line)
			}
			if r.Err != nil {
				printVerbose("      %v\n", r.Err)
			}
		},
	})

	if !cleanDryRun && sum.Deleted > 0 {
		winshell.NotifyAssocChanged()
		printVerbose("\nAsked Explorer to rebuild its context menus\n")
	}

	if jsonOut {
		if err := printJSON(summaryPayload(sum)); err != nil {
			return err
		}
	} else {
		verb := "removed"
		if cleanDryRun {
			verb = "would be removed"
		}
		printInfo("\nSummary: %d %s, %d already absent, %d denied, %d failed\n",
			sum.Deleted, verb, sum.Absent, sum.Denied, sum.Failed)
		switch {
		case sum.Clean() && cleanDryRun:
			printInfo("Nothing would be left behind by a real run.\n")
		case sum.Clean():
			printInfo("All Fast Transfer context-menu entries are gone.\n")
		default:
			printInfo("Some keys could not be removed; check their permissions and run again.\n")
		}
	}

	pause()
	return nil
}

func statusLabel(s regtree.Status) string {
	switch s {
	case regtree.StatusDeleted:
		if cleanDryRun {
			return "✓ would remove"
		}
		return "✓ removed"
	case regtree.StatusAbsent:
		return "- already absent"
	case regtree.StatusDenied:
		return "⚠ access denied"
	default:
		return "⚠ failed"
	}
}

func summaryPayload(sum cleanup.Summary) map[string]interface{} {
	results := make([]map[string]interface{}, 0, len(sum.Results))
	for _, res := range sum.Results {
		results = append(results, map[string]interface{}{
			"hive":   res.Target.Hive.String(),
			"path":   res.Target.Path,
			"status": res.Status.String(),
		})
	}
	return map[string]interface{}{
		"dry_run": cleanDryRun,
		"removed": sum.Deleted,
		"absent":  sum.Absent,
		"denied":  sum.Denied,
		"failed":  sum.Failed,
		"clean":   sum.Clean(),
		"targets": results,
	}
}

// cleanupLogger returns a debug logger on stderr in verbose mode, nil
// otherwise; the report callback carries the default output.
func cleanupLogger() *slog.Logger {
	if !verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// pause keeps the console window open for double-click launches, where the
// window would otherwise vanish with the process.
func pause() {
	if cleanNoPause || quiet || jsonOut {
		return
	}
	fmt.Print("\nPress Enter to exit...")
	reader := bufio.NewReader(os.Stdin)
	_, _ = reader.ReadString('\n')
}
