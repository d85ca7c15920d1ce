// Package characteristics models the static camera metadata reported by
// platforms that follow the camera2 hardware level scheme, and turns it into
// a resolution.Snapshot.
//
// The hardware level and platform API level are only inspected here. The
// resolution package receives the resulting CapabilityTier and never looks
// at platform versions.
package characteristics

import (
	"fmt"
	"strings"
	"time"

	"github.com/camconnect/camcaps/pkg/resolution"
)

// HardwareLevel is the supported hardware level reported by the device.
// The values match INFO_SUPPORTED_HARDWARE_LEVEL.
type HardwareLevel int

// HardwareLevel definitions.
const (
	HardwareLevelLimited  HardwareLevel = 0
	HardwareLevelFull     HardwareLevel = 1
	HardwareLevelLegacy   HardwareLevel = 2
	HardwareLevel3        HardwareLevel = 3
	HardwareLevelExternal HardwareLevel = 4
)

// LegacyFixedAPILevel is the first platform API level on which legacy devices
// report only output sizes that are valid capture targets.
const LegacyFixedAPILevel = 22

var hardwareLevelNames = map[HardwareLevel]string{
	HardwareLevelLimited:  "limited",
	HardwareLevelFull:     "full",
	HardwareLevelLegacy:   "legacy",
	HardwareLevel3:        "level3",
	HardwareLevelExternal: "external",
}

func (l HardwareLevel) String() string {
	if name, ok := hardwareLevelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("HardwareLevel(%d)", int(l))
}

// Valid reports whether l is one of the defined hardware levels.
func (l HardwareLevel) Valid() bool {
	_, ok := hardwareLevelNames[l]
	return ok
}

// ParseHardwareLevel parses the lower case name of a hardware level, as
// returned by HardwareLevel.String.
func ParseHardwareLevel(s string) (HardwareLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for level, name := range hardwareLevelNames {
		if name == s {
			return level, nil
		}
	}
	return 0, fmt.Errorf("unknown hardware level %q", s)
}

// Rect is a pixel rectangle, right and bottom exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// StreamConfiguration is one output size of the stream configuration map and
// its minimum frame duration.
type StreamConfiguration struct {
	Width, Height    int
	MinFrameDuration time.Duration
}

// Characteristics is the subset of camera metadata needed to build the
// resolution catalog.
type Characteristics struct {
	// APILevel is the platform API level the metadata was read on.
	APILevel      int
	HardwareLevel HardwareLevel
	// ActiveArray may be nil when the platform didn't report it.
	ActiveArray   *Rect
	Outputs       []StreamConfiguration
}

// Tier decides whether the output sizes have to be filtered against the
// active array.
func (c Characteristics) Tier() resolution.CapabilityTier {
	if c.APILevel < LegacyFixedAPILevel && c.HardwareLevel == HardwareLevelLegacy {
		return resolution.TierLegacyConstrained
	}
	return resolution.TierFull
}

// Snapshot converts c. A missing active array is passed through as a nil
// sensor array, resolution.Compute reports it when the tier requires one.
func (c Characteristics) Snapshot() resolution.Snapshot {
	s := resolution.Snapshot{
		Tier:        c.Tier(),
		NativeSizes: make([]resolution.NativeSizeEntry, 0, len(c.Outputs)),
	}

	if c.ActiveArray != nil {
		s.SensorArray = &resolution.SensorArray{
			Width:  c.ActiveArray.Width(),
			Height: c.ActiveArray.Height(),
		}
	}

	for _, o := range c.Outputs {
		s.NativeSizes = append(s.NativeSizes, resolution.NativeSizeEntry{
			Size:             resolution.Size{Width: o.Width, Height: o.Height},
			MinFrameInterval: o.MinFrameDuration,
		})
	}

	return s
}
