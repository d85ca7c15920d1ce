package videotest

import (
	"testing"

	"github.com/camconnect/camcaps/pkg/driver"
	"github.com/camconnect/camcaps/pkg/resolution"
)

func TestRegistered(t *testing.T) {
	drvs := driver.GetManager().Query(driver.FilterLabel(Label))
	if len(drvs) != 1 {
		t.Fatalf("expected 1 driver, got %d", len(drvs))
	}

	d := drvs[0]
	if err := d.Open(); err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	s, err := d.Probe()
	if err != nil {
		t.Fatal(err)
	}

	records, err := s.SupportedResolutions()
	if err != nil {
		t.Fatal(err)
	}

	expected := []resolution.Record{
		{Width: 1920, Height: 1080, MaxFrameRate: 30},
		{Width: 1280, Height: 720, MaxFrameRate: 60},
		{Width: 640, Height: 480, MaxFrameRate: 30},
		{Width: 320, Height: 240, MaxFrameRate: 15},
	}
	if len(records) != len(expected) {
		t.Fatalf("expected %d records, got %d", len(expected), len(records))
	}
	for i := range expected {
		if records[i] != expected[i] {
			t.Errorf("record %d: expected %v, got %v", i, expected[i], records[i])
		}
	}
}
