//go:build !linux

package camera

// Initialize finds and registers camera devices. V4L2 is only available on
// Linux, so nothing is registered here.
func Initialize() {}
