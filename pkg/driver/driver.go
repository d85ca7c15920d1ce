package driver

import "github.com/camconnect/camcaps/pkg/resolution"

type OpenCloser interface {
	Open() error
	Close() error
}

// Prober reads the capability snapshot of an opened device.
type Prober interface {
	Probe() (resolution.Snapshot, error)
}

type Adapter interface {
	OpenCloser
	Prober
}

// Info describes a registered device.
type Info struct {
	Label      string
	DeviceType DeviceType
	Name       string
}

type Driver interface {
	Adapter
	ID() string
	Info() Info
	Status() State
}
