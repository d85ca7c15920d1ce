/*
Package camera provides a V4L2 video camera driver.

Importing the package registers every camera found on the host in the driver
manager. Cameras are always reported with the full capability tier since V4L2
has no notion of legacy constrained hardware.

Device Label Generation Rules

On Linux, the device label will be in the format of:
	pci-0000:00:00.0-usb-0:0:0.0-video-index0;video0
If /dev/v4l/by-path/* is not available (for example in a docker container without
bindings in /dev/v4l/by-path/), it will be:
	video0;video0
*/
package camera

// LabelSeparator is used to separate labels for a driver that
// is found from multiple locations on a host.
const LabelSeparator = ";"
