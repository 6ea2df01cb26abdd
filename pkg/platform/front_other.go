//go:build !darwin

package platform

// BringToFront is a no-op; RequestFocus is enough outside macOS.
func BringToFront() {}
