package resolution

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidInput is returned when a snapshot can't be turned into a catalog.
// Use errors.Is to test for it, the returned errors carry more context.
var ErrInvalidInput = errors.New("invalid input")

// Compute returns one Record per entry of nativeSizes that is a valid capture
// target for the given tier, in the order of nativeSizes.
//
// Under TierLegacyConstrained an entry is kept only when its aspect ratio is
// exactly the aspect ratio of sensor. Under TierFull every entry is kept and
// sensor may be nil.
//
// Either every entry is validated and processed or an error wrapping
// ErrInvalidInput is returned with no records.
func Compute(tier CapabilityTier, sensor *SensorArray, nativeSizes []NativeSizeEntry) ([]Record, error) {
	if err := validate(tier, sensor, nativeSizes); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(nativeSizes))
	for _, entry := range nativeSizes {
		if tier == TierLegacyConstrained && !sameAspectRatio(*sensor, entry.Size) {
			continue
		}

		records = append(records, Record{
			Width:        entry.Width,
			Height:       entry.Height,
			MaxFrameRate: MaxFrameRate(entry.MinFrameInterval),
		})
	}

	return records, nil
}

// MaxFrameRate converts a minimum frame interval to the nearest integer frame
// rate. Halves are rounded away from zero, so 400ms gives 3 (2.5 fps) and
// 80ms gives 13 (12.5 fps).
func MaxFrameRate(minFrameInterval time.Duration) int {
	return int(math.Round(float64(time.Second) / float64(minFrameInterval)))
}

func validate(tier CapabilityTier, sensor *SensorArray, nativeSizes []NativeSizeEntry) error {
	switch tier {
	case TierFull:
	case TierLegacyConstrained:
		if sensor == nil {
			return fmt.Errorf("%w: sensor array is required for %s tier", ErrInvalidInput, tier)
		}
	default:
		return fmt.Errorf("%w: unknown capability tier %d", ErrInvalidInput, int(tier))
	}

	for i, entry := range nativeSizes {
		if entry.MinFrameInterval <= 0 {
			return fmt.Errorf("%w: entry %d (%s) has a non-positive minimum frame interval %d",
				ErrInvalidInput, i, entry.Size, int64(entry.MinFrameInterval))
		}
	}

	return nil
}

// sameAspectRatio compares the ratios through cross multiplication, in int64
// so that large sensors can't overflow on 32-bit platforms.
func sameAspectRatio(sensor SensorArray, size Size) bool {
	return int64(sensor.Width)*int64(size.Height) == int64(sensor.Height)*int64(size.Width)
}
