package driver

import (
	"fmt"
	"sync"
)

// FilterFn is being used to decide if a driver should be included in the
// query result.
type FilterFn func(Driver) bool

// FilterID returns a filter that selects the driver with the given id.
func FilterID(id string) FilterFn {
	return func(d Driver) bool {
		return d.ID() == id
	}
}

// FilterLabel returns a filter that selects the drivers with the given label.
func FilterLabel(label string) FilterFn {
	return func(d Driver) bool {
		return d.Info().Label == label
	}
}

// FilterDeviceType returns a filter that selects the drivers of type t.
func FilterDeviceType(t DeviceType) FilterFn {
	return func(d Driver) bool {
		return d.Info().DeviceType == t
	}
}

// FilterNot returns a filter which inverts the input filter.
func FilterNot(filter FilterFn) FilterFn {
	return func(d Driver) bool {
		return !filter(d)
	}
}

// FilterAnd returns a filter which selects the drivers accepted by every
// filter.
func FilterAnd(filters ...FilterFn) FilterFn {
	return func(d Driver) bool {
		for _, filter := range filters {
			if !filter(d) {
				return false
			}
		}
		return true
	}
}

// Manager keeps track of the registered drivers and their states.
type Manager struct {
	mu      sync.RWMutex
	drivers []Driver
}

var manager = NewManager()

// NewManager creates an empty Manager. Most callers should use GetManager.
func NewManager() *Manager {
	return &Manager{}
}

// GetManager gets manager singleton instance
func GetManager() *Manager {
	return manager
}

// Register wraps a and adds it to the manager.
func (m *Manager) Register(a Adapter, info Info) error {
	if a == nil {
		return fmt.Errorf("adapter can't be nil")
	}

	d := wrapAdapter(a, info)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers = append(m.drivers, d)
	return nil
}

// Query returns the drivers accepted by f, in registration order.
func (m *Manager) Query(f FilterFn) []Driver {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]Driver, 0)
	for _, d := range m.drivers {
		if f(d) {
			results = append(results, d)
		}
	}

	return results
}

// Delete removes the driver with the given id. Nothing happens when there is
// no such driver.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, d := range m.drivers {
		if d.ID() == id {
			m.drivers = append(m.drivers[:i], m.drivers[i+1:]...)
			return
		}
	}
}
