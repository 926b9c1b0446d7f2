//go:build !windows

package winshell

import "errors"

// IsElevated reports false on platforms without Windows token elevation.
func IsElevated() bool { return false }

// RelaunchElevated fails on platforms without ShellExecute.
func RelaunchElevated() error {
	return errors.New("winshell: relaunch requires Windows")
}
