//go:build !unix

package platform

// MemoryReadable has no portable probe on this platform and reports
// every address unreadable.
func MemoryReadable(addr uintptr) bool {
	return false
}
