package availability

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsError(t *testing.T) {
	testDataSet := map[string]struct {
		err      error
		expected bool
	}{
		"NoDevice":   {ErrNoDevice, true},
		"Wrapped":    {fmt.Errorf("camera video0: %w", ErrBusy), true},
		"Custom":     {NewError("unplugged"), true},
		"OtherError": {errors.New("no such device"), false},
		"Nil":        {nil, false},
	}

	for name, data := range testDataSet {
		t.Run(name, func(t *testing.T) {
			if got := IsError(data.err); got != data.expected {
				t.Errorf("expected %v, got %v", data.expected, got)
			}
		})
	}
}
