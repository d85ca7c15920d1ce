package driver

import (
	"testing"
)

func filterTrue(d Driver) bool {
	return true
}
func filterFalse(d Driver) bool {
	return false
}

func TestFilterNot(t *testing.T) {
	if FilterNot(filterTrue)(nil) != false {
		t.Error("FilterNot(filterTrue)() must be false")
	}
	if FilterNot(filterFalse)(nil) != true {
		t.Error("FilterNot(filterFalse)() must be true")
	}
}

func TestFilterAnd(t *testing.T) {
	if FilterAnd(filterTrue, filterTrue)(nil) != true {
		t.Error("FilterAnd(filterTrue, filterTrue)() must be true")
	}
	if FilterAnd(filterTrue, filterFalse)(nil) != false {
		t.Error("FilterAnd(filterTrue, filterFalse)() must be false")
	}
	if FilterAnd(filterFalse, filterTrue)(nil) != false {
		t.Error("FilterAnd(filterFalse, filterTrue)() must be false")
	}
	if FilterAnd(filterFalse, filterFalse)(nil) != false {
		t.Error("FilterAnd(filterFalse, filterFalse)() must be false")
	}
	if FilterAnd(filterFalse, filterTrue, filterTrue)(nil) != false {
		t.Error("FilterAnd(filterFalse, filterTrue, filterTrue)() must be false")
	}
	if FilterAnd(filterTrue, filterTrue, filterTrue)(nil) != true {
		t.Error("FilterAnd(filterTrue, filterTrue, filterTrue)() must be true")
	}
}

func TestManager(t *testing.T) {
	m := NewManager()

	if err := m.Register(nil, Info{}); err == nil {
		t.Error("expected nil adapter to be rejected")
	}

	for _, info := range []Info{
		{Label: "front", DeviceType: Camera},
		{Label: "back", DeviceType: Camera},
		{Label: "fixture", DeviceType: Virtual},
	} {
		if err := m.Register(&adapterMock{}, info); err != nil {
			t.Fatalf("failed to register %s: %v", info.Label, err)
		}
	}

	all := m.Query(filterTrue)
	if len(all) != 3 {
		t.Fatalf("expected 3 drivers, got %d", len(all))
	}
	for i, label := range []string{"front", "back", "fixture"} {
		if all[i].Info().Label != label {
			t.Errorf("expected driver %d to be %s, got %s", i, label, all[i].Info().Label)
		}
	}

	cameras := m.Query(FilterDeviceType(Camera))
	if len(cameras) != 2 {
		t.Errorf("expected 2 cameras, got %d", len(cameras))
	}

	back := m.Query(FilterAnd(FilterDeviceType(Camera), FilterLabel("back")))
	if len(back) != 1 {
		t.Fatalf("expected 1 driver, got %d", len(back))
	}

	if byID := m.Query(FilterID(back[0].ID())); len(byID) != 1 || byID[0] != back[0] {
		t.Errorf("expected FilterID to select the back camera, got %v", byID)
	}

	m.Delete(back[0].ID())
	m.Delete("unknown")
	if left := m.Query(filterTrue); len(left) != 2 {
		t.Errorf("expected 2 drivers after delete, got %d", len(left))
	}
	if len(m.Query(FilterLabel("back"))) != 0 {
		t.Error("expected back camera to be deleted")
	}
}
