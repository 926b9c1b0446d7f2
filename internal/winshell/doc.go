// Package winshell wraps the few Windows shell interactions the cleanup
// tool needs: detecting privilege elevation, relaunching itself through
// UAC, and telling Explorer that file associations changed.
//
// Non-Windows builds get inert stubs so the rest of the module compiles
// and tests everywhere; callers gate on runtime.GOOS before relying on
// the real behavior.
package winshell
