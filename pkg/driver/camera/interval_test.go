package camera

import (
	"testing"
	"time"
)

func TestFrameIntervalDuration(t *testing.T) {
	testDataSet := map[string]struct {
		interval frameInterval
		expected time.Duration
	}{
		"30fps":        {frameInterval{1, 30}, 33333333},
		"60fps":        {frameInterval{1, 60}, 16666667},
		"NTSC":         {frameInterval{1001, 30000}, 33366667},
		"TwoSeconds":   {frameInterval{2, 1}, 2 * time.Second},
		"ZeroNum":      {frameInterval{0, 30}, 0},
		"ZeroDen":      {frameInterval{1, 0}, 0},
		"MaxNumerator": {frameInterval{^uint32(0), 1}, time.Duration(^uint32(0)) * time.Second},
	}

	for name, data := range testDataSet {
		t.Run(name, func(t *testing.T) {
			if d := data.interval.duration(); d != data.expected {
				t.Errorf("expected %d, got %d", data.expected, d)
			}
		})
	}
}

func TestMinFrameInterval(t *testing.T) {
	shortest, ok := minFrameInterval([]frameInterval{{1, 15}, {1, 0}, {1, 60}, {1, 30}})
	if !ok {
		t.Fatal("expected a usable interval")
	}
	if shortest != 16666667 {
		t.Errorf("expected 16666667, got %d", shortest)
	}

	if _, ok := minFrameInterval([]frameInterval{{0, 0}}); ok {
		t.Error("expected no usable interval")
	}

	if _, ok := minFrameInterval(nil); ok {
		t.Error("expected no usable interval for an empty list")
	}
}
