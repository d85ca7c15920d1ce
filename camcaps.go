// Package camcaps reports the resolutions a camera supports together with the
// maximum frame rate reachable at each of them.
//
// Drivers register themselves in the driver manager when their package is
// imported:
//
//	import _ "github.com/camconnect/camcaps/pkg/driver/camera"
//
//	for _, info := range camcaps.EnumerateDevices() {
//		records, err := camcaps.SupportedResolutions(info.DeviceID)
//		...
//	}
package camcaps

import (
	"fmt"

	"github.com/camconnect/camcaps/internal/logging"
	"github.com/camconnect/camcaps/pkg/driver"
	"github.com/camconnect/camcaps/pkg/driver/availability"
	"github.com/camconnect/camcaps/pkg/resolution"
)

var logger = logging.NewLogger("camcaps")

// Options stores parameters used by EnumerateDevices and SupportedResolutions.
type Options struct {
	manager *driver.Manager
}

// Option is a type of Options functional option.
type Option func(*Options)

// WithManager looks the devices up in m instead of the global driver manager.
func WithManager(m *driver.Manager) Option {
	return func(o *Options) {
		o.manager = m
	}
}

func newOptions(opts []Option) Options {
	o := Options{
		manager: driver.GetManager(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// EnumerateDevices lists every registered device, in registration order.
func EnumerateDevices(opts ...Option) []MediaDeviceInfo {
	o := newOptions(opts)

	drivers := o.manager.Query(func(driver.Driver) bool { return true })
	info := make([]MediaDeviceInfo, 0, len(drivers))
	for _, d := range drivers {
		driverInfo := d.Info()
		info = append(info, MediaDeviceInfo{
			DeviceID:   d.ID(),
			Kind:       VideoInput,
			Label:      driverInfo.Label,
			Name:       driverInfo.Name,
			DeviceType: driverInfo.DeviceType,
		})
	}
	return info
}

// SupportedResolutions probes the device identified by deviceID and returns
// its resolution catalog. A closed device is opened for the probe and closed
// again before returning; an opened device is left opened.
//
// availability.ErrNoDevice is returned when no device has the given ID.
// Snapshots that can't be turned into a catalog give an error wrapping
// resolution.ErrInvalidInput.
func SupportedResolutions(deviceID string, opts ...Option) ([]resolution.Record, error) {
	o := newOptions(opts)

	drivers := o.manager.Query(driver.FilterID(deviceID))
	if len(drivers) == 0 {
		return nil, fmt.Errorf("%s: %w", deviceID, availability.ErrNoDevice)
	}
	d := drivers[0]

	if d.Status() == driver.StateClosed {
		if err := d.Open(); err != nil {
			return nil, fmt.Errorf("%s: failed to open: %w", d.Info().Label, err)
		}
		defer func() {
			if closeErr := d.Close(); closeErr != nil {
				logger.Warnf("%s: failed to close: %v", d.Info().Label, closeErr)
			}
		}()
	}

	snapshot, err := d.Probe()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to probe: %w", d.Info().Label, err)
	}

	records, err := snapshot.SupportedResolutions()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Info().Label, err)
	}

	logger.Debugf("%s: %d of %d native sizes supported (%s tier)",
		d.Info().Label, len(records), len(snapshot.NativeSizes), snapshot.Tier)
	return records, nil
}
