package driver

// DeviceType represents human readable device type. DeviceType
// can be useful to filter the drivers too.
type DeviceType string

const (
	// Camera represents camera devices
	Camera DeviceType = "camera"
	// Virtual represents devices whose capabilities come from a static
	// description instead of live hardware
	Virtual DeviceType = "virtual"
)
