package regtree

import "testing"

// Test_Hive_String tests the short display names.
func Test_Hive_String(t *testing.T) {
	tests := []struct {
		hive     Hive
		expected string
	}{
		{ClassesRoot, "HKCR"},
		{CurrentUser, "HKCU"},
		{LocalMachine, "HKLM"},
		{Users, "HKU"},
		{CurrentConfig, "HKCC"},
		{Hive(99), "HKEY_UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.hive.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// Test_Status_String tests the outcome labels.
func Test_Status_String(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusDeleted, "deleted"},
		{StatusAbsent, "absent"},
		{StatusDenied, "denied"},
		{StatusFailed, "failed"},
		{Status(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.status.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// Test_Report_FullPath tests display-path assembly.
func Test_Report_FullPath(t *testing.T) {
	tests := []struct {
		name     string
		report   Report
		expected string
	}{
		{"key path", Report{Hive: ClassesRoot, Path: `Directory\shell\fast_transfer`}, `HKCR\Directory\shell\fast_transfer`},
		{"hive root", Report{Hive: LocalMachine, Path: ""}, "HKLM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.report.FullPath(); got != tt.expected {
				t.Errorf("FullPath() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// Test_splitLeaf tests parent/leaf splitting.
func Test_splitLeaf(t *testing.T) {
	tests := []struct {
		path           string
		expectedParent string
		expectedLeaf   string
	}{
		{`Directory\shell\fast_transfer`, `Directory\shell`, "fast_transfer"},
		{`Software\Classes\fast_transfer_move`, `Software\Classes`, "fast_transfer_move"},
		{"fast_transfer_move", "", "fast_transfer_move"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			parent, leaf := splitLeaf(tt.path)
			if parent != tt.expectedParent || leaf != tt.expectedLeaf {
				t.Errorf("splitLeaf(%q) = (%q, %q), want (%q, %q)",
					tt.path, parent, leaf, tt.expectedParent, tt.expectedLeaf)
			}
		})
	}
}
