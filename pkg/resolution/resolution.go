// Package resolution computes the catalog of output resolutions a camera
// supports, together with the maximum frame rate reachable at each of them.
//
// The catalog is computed from a Snapshot of the device capabilities. Drivers
// are responsible for producing the snapshot; this package never talks to
// hardware.
package resolution

import (
	"fmt"
	"time"
)

// CapabilityTier classifies the hardware support level of a camera.
type CapabilityTier int

// CapabilityTier definitions.
const (
	// TierLegacyConstrained means that the reported output sizes are only
	// valid capture targets when their aspect ratio matches the sensor
	// active array.
	TierLegacyConstrained CapabilityTier = iota + 1
	// TierFull means that every reported output size is a valid capture target.
	TierFull
)

func (t CapabilityTier) String() string {
	switch t {
	case TierLegacyConstrained:
		return "legacy-constrained"
	case TierFull:
		return "full"
	default:
		return fmt.Sprintf("CapabilityTier(%d)", int(t))
	}
}

// Size is a pixel dimension reported by the hardware.
type Size struct {
	Width, Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// SensorArray is the usable pixel rectangle of the sensor. It's only used as
// the aspect ratio reference for legacy constrained devices.
type SensorArray struct {
	Width, Height int
}

// NativeSizeEntry is one output format reported by the hardware.
type NativeSizeEntry struct {
	Size
	// MinFrameInterval is the shortest time between two consecutive frames
	// at this size.
	MinFrameInterval time.Duration
}

// Record is a single entry of the resolution catalog.
type Record struct {
	Width        int `json:"width"`
	Height       int `json:"height"`
	MaxFrameRate int `json:"maxFps"`
}

func (r Record) String() string {
	return fmt.Sprintf("%dx%d@%d", r.Width, r.Height, r.MaxFrameRate)
}

// Snapshot is a fully materialized capability descriptor of a device.
type Snapshot struct {
	Tier        CapabilityTier
	// SensorArray is required when Tier is TierLegacyConstrained and ignored
	// otherwise.
	SensorArray *SensorArray
	NativeSizes []NativeSizeEntry
}

// SupportedResolutions computes the resolution catalog of s.
func (s Snapshot) SupportedResolutions() ([]Record, error) {
	return Compute(s.Tier, s.SensorArray, s.NativeSizes)
}
