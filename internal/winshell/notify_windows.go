//go:build windows

package winshell

import "golang.org/x/sys/windows"

var (
	modShell32         = windows.NewLazySystemDLL("shell32.dll")
	procSHChangeNotify = modShell32.NewProc("SHChangeNotify")
)

// SHChangeNotify arguments (shellapi.h).
const (
	shcneAssocChanged = 0x08000000
	shcnfIDList       = 0x0000
)

// NotifyAssocChanged tells the shell that file associations changed, so
// Explorer drops its cached context menus without a logoff. SHChangeNotify
// has no return value; there is nothing to report on failure.
func NotifyAssocChanged() {
	procSHChangeNotify.Call(uintptr(shcneAssocChanged), uintptr(shcnfIDList), 0, 0)
}
