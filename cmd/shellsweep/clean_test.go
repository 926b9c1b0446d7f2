package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/fasttransfer/shellsweep/internal/cleanup"
	"github.com/fasttransfer/shellsweep/pkg/memstore"
	"github.com/fasttransfer/shellsweep/pkg/regtree"
)

// seedStore populates a fake registry the way the Fast Transfer installer
// leaves the real one: every target present, the menu entries with a
// command subkey.
func seedStore(t *testing.T) *memstore.Store {
	t.Helper()
	st := memstore.New()
	for _, target := range cleanup.DefaultTargets {
		if err := st.Add(target.Hive, target.Path); err != nil {
			t.Fatalf("seed %s: %v", target, err)
		}
	}
	for _, path := range []string{
		`Directory\shell\fast_transfer\command`,
		`Directory\Background\shell\fast_transfer\command`,
		`Drive\shell\fast_transfer\command`,
	} {
		if err := st.Add(regtree.ClassesRoot, path); err != nil {
			t.Fatalf("seed %s: %v", path, err)
		}
	}
	return st
}

// useStore routes commands at st and disables elevation and the exit pause
// for the duration of a test.
func useStore(t *testing.T, st regtree.Store) {
	t.Helper()
	origOpen := openStore
	origElevated := ensureElevated
	openStore = func() (regtree.Store, error) { return st, nil }
	ensureElevated = func() (bool, error) { return false, nil }
	cleanNoPause = true
	t.Cleanup(func() {
		openStore = origOpen
		ensureElevated = origElevated
		cleanNoPause = false
	})
}

func TestCleanCommand(t *testing.T) {
	tests := []struct {
		name           string
		seed           bool
		denyDelete     string // HKLM path that refuses deletion
		dryRun         bool
		verbose        bool
		wantJSON       bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name: "removes installed entries",
			seed: true,
			wantContain: []string{
				`✓ removed HKCR\Directory\shell\fast_transfer`,
				`✓ removed HKCR\Drive\shell\fast_transfer`,
				`✓ removed HKLM\Software\Classes\fast_transfer_copy`,
				"Summary: 6 removed, 0 already absent, 0 denied, 0 failed",
				"All Fast Transfer context-menu entries are gone.",
			},
			wantNotContain: []string{"would remove", "access denied"},
		},
		{
			name: "clean machine reports absent",
			wantContain: []string{
				`- already absent HKCR\Directory\shell\fast_transfer`,
				"Summary: 0 removed, 6 already absent, 0 denied, 0 failed",
				"All Fast Transfer context-menu entries are gone.",
			},
			wantNotContain: []string{"✓ removed"},
		},
		{
			name:   "dry run announces itself",
			seed:   true,
			dryRun: true,
			wantContain: []string{
				"Previewing the Fast Transfer context-menu cleanup",
				`✓ would remove HKCR\Directory\shell\fast_transfer`,
				"Summary: 6 would be removed, 0 already absent, 0 denied, 0 failed",
				"Nothing would be left behind by a real run.",
			},
			wantNotContain: []string{"✓ removed HK"},
		},
		{
			name:       "denied target is reported and does not stop the rest",
			seed:       true,
			denyDelete: `Software\Classes\fast_transfer_move`,
			wantContain: []string{
				`⚠ access denied HKLM\Software\Classes\fast_transfer_move`,
				`✓ removed HKLM\Software\Classes\fast_transfer_copy`,
				"Summary: 5 removed, 0 already absent, 1 denied, 0 failed",
				"Some keys could not be removed",
			},
		},
		{
			name:    "verbose shows per-key detail",
			seed:    true,
			verbose: true,
			wantContain: []string{
				`✓ removed HKCR\Directory\shell\fast_transfer\command`,
				`✓ removed HKCR\Directory\shell\fast_transfer`,
			},
		},
		{
			name:           "json summary",
			seed:           true,
			wantJSON:       true,
			wantContain:    []string{`"removed": 6`, `"clean": true`, `"dry_run": false`},
			wantNotContain: []string{"Cleaning up", "Summary:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flags
			quiet = false
			verbose = tt.verbose
			jsonOut = tt.wantJSON
			cleanDryRun = tt.dryRun

			st := memstore.New()
			if tt.seed {
				st = seedStore(t)
			}
			if tt.denyDelete != "" {
				if err := st.DenyDelete(regtree.LocalMachine, tt.denyDelete); err != nil {
					t.Fatalf("deny delete: %v", err)
				}
			}
			useStore(t, st)

			output, err := captureOutput(t, runClean)
			if err != nil {
				t.Fatalf("runClean failed: %v", err)
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestCleanCommand_RemovesKeysFromStore(t *testing.T) {
	quiet = true
	verbose = false
	jsonOut = false
	cleanDryRun = false

	st := seedStore(t)
	useStore(t, st)

	if _, err := captureOutput(t, runClean); err != nil {
		t.Fatalf("runClean failed: %v", err)
	}

	for _, target := range cleanup.DefaultTargets {
		if st.Exists(target.Hive, target.Path) {
			t.Errorf("%s still present after cleanup", target)
		}
	}
	if st.Exists(regtree.ClassesRoot, `Directory\shell\fast_transfer\command`) {
		t.Error("menu command subkey survived the cleanup")
	}
	if !st.Exists(regtree.ClassesRoot, `Directory\shell`) {
		t.Error("shared ancestor was removed")
	}
	if n := st.OpenHandles(); n != 0 {
		t.Errorf("%d registry handles leaked", n)
	}
}

func TestCleanCommand_DryRunLeavesStore(t *testing.T) {
	quiet = true
	verbose = false
	jsonOut = false
	cleanDryRun = true

	st := seedStore(t)
	useStore(t, st)

	if _, err := captureOutput(t, runClean); err != nil {
		t.Fatalf("runClean failed: %v", err)
	}

	for _, target := range cleanup.DefaultTargets {
		if !st.Exists(target.Hive, target.Path) {
			t.Errorf("%s was removed by a dry run", target)
		}
	}
	if n := st.OpenHandles(); n != 0 {
		t.Errorf("%d registry handles leaked", n)
	}
}

func TestCleanCommand_StoreUnavailable(t *testing.T) {
	quiet = false
	verbose = false
	jsonOut = false
	cleanDryRun = false

	orig := openStore
	openStore = func() (regtree.Store, error) { return nil, errors.New("no registry here") }
	t.Cleanup(func() { openStore = orig })

	_, err := captureOutput(t, runClean)
	if err == nil || !strings.Contains(err.Error(), "no registry here") {
		t.Errorf("expected the store error to surface, got %v", err)
	}
}
