//go:build !windows

package winshell

// NotifyAssocChanged is a no-op away from the Windows shell.
func NotifyAssocChanged() {}
