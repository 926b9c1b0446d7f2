// Package winreg adapts the live Windows registry to the regtree.Store
// interface.
//
// On Windows, opens go through golang.org/x/sys/windows/registry and every
// failure comes back as a regtree typed error with the platform cause
// preserved in its chain. On other platforms the package compiles to a stub
// whose operations fail with regtree.ErrUnsupported, so the rest of the
// module builds and tests everywhere and gates on runtime.GOOS at the
// entry point.
package winreg
