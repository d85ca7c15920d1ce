package camera

import (
	"time"
)

// frameInterval is a V4L2 frame interval, in numerator/denominator seconds.
type frameInterval struct {
	numerator, denominator uint32
}

// duration rounds the interval to the nearest nanosecond. Zero is returned
// for intervals the device didn't fill in.
func (f frameInterval) duration() time.Duration {
	if f.numerator == 0 || f.denominator == 0 {
		return 0
	}
	ns := uint64(f.numerator) * uint64(time.Second)
	return time.Duration((ns + uint64(f.denominator)/2) / uint64(f.denominator))
}

// minFrameInterval returns the shortest usable interval. ok is false when
// none of the intervals is usable.
func minFrameInterval(intervals []frameInterval) (shortest time.Duration, ok bool) {
	for _, interval := range intervals {
		d := interval.duration()
		if d <= 0 {
			continue
		}
		if !ok || d < shortest {
			shortest, ok = d, true
		}
	}
	return shortest, ok
}
