// Package fixture registers cameras whose characteristics are described in a
// YAML document instead of being read from live hardware.
//
//	cameras:
//	  - label: back
//	    name: Back camera
//	    apiLevel: 21
//	    hardwareLevel: legacy
//	    activeArray: {width: 4000, height: 3000}
//	    outputs:
//	      - {width: 1920, height: 1080, minFrameDurationNs: 33333333}
//	      - {width: 1600, height: 1200, minFrameDurationNs: 33333333}
package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/camconnect/camcaps/internal/logging"
	"github.com/camconnect/camcaps/pkg/characteristics"
	"github.com/camconnect/camcaps/pkg/driver"
	"github.com/camconnect/camcaps/pkg/resolution"
	"gopkg.in/yaml.v2"
)

var logger = logging.NewLogger("fixture")

// Camera is one camera of a fixture document.
type Camera struct {
	Label           string
	Name            string
	Characteristics characteristics.Characteristics
}

type document struct {
	Cameras []cameraSpec `yaml:"cameras"`
}

type cameraSpec struct {
	Label         string        `yaml:"label"`
	Name          string        `yaml:"name"`
	APILevel      int           `yaml:"apiLevel"`
	HardwareLevel hardwareLevel `yaml:"hardwareLevel"`
	ActiveArray   *size         `yaml:"activeArray"`
	Outputs       []outputSpec  `yaml:"outputs"`
}

type size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type outputSpec struct {
	Width              int   `yaml:"width"`
	Height             int   `yaml:"height"`
	MinFrameDurationNs int64 `yaml:"minFrameDurationNs"`
}

// hardwareLevel accepts either the level name or its numeric value.
type hardwareLevel characteristics.HardwareLevel

func (l *hardwareLevel) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var n int
	if err := unmarshal(&n); err == nil {
		if !characteristics.HardwareLevel(n).Valid() {
			return fmt.Errorf("unknown hardware level %d", n)
		}
		*l = hardwareLevel(n)
		return nil
	}

	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	level, err := characteristics.ParseHardwareLevel(s)
	if err != nil {
		return err
	}
	*l = hardwareLevel(level)
	return nil
}

// Parse reads a fixture document. Unknown keys, missing or duplicated labels
// are rejected. Frame durations aren't checked here, invalid ones are reported
// when the catalog is computed.
func Parse(r io.Reader) ([]Camera, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}

	cameras := make([]Camera, 0, len(doc.Cameras))
	labels := make(map[string]struct{})
	for i, spec := range doc.Cameras {
		if spec.Label == "" {
			return nil, fmt.Errorf("fixture: camera %d has no label", i)
		}
		if _, ok := labels[spec.Label]; ok {
			return nil, fmt.Errorf("fixture: duplicated label %q", spec.Label)
		}
		labels[spec.Label] = struct{}{}

		cameras = append(cameras, Camera{
			Label:           spec.Label,
			Name:            spec.Name,
			Characteristics: spec.characteristics(),
		})
	}

	return cameras, nil
}

func (spec cameraSpec) characteristics() characteristics.Characteristics {
	c := characteristics.Characteristics{
		APILevel:      spec.APILevel,
		HardwareLevel: characteristics.HardwareLevel(spec.HardwareLevel),
		Outputs:       make([]characteristics.StreamConfiguration, 0, len(spec.Outputs)),
	}

	if spec.ActiveArray != nil {
		c.ActiveArray = &characteristics.Rect{
			Right:  spec.ActiveArray.Width,
			Bottom: spec.ActiveArray.Height,
		}
	}

	for _, o := range spec.Outputs {
		c.Outputs = append(c.Outputs, characteristics.StreamConfiguration{
			Width:            o.Width,
			Height:           o.Height,
			MinFrameDuration: time.Duration(o.MinFrameDurationNs),
		})
	}

	return c
}

// Register adds one virtual driver per camera to m.
func Register(m *driver.Manager, cameras []Camera) error {
	for _, c := range cameras {
		err := m.Register(&adapter{characteristics: c.Characteristics}, driver.Info{
			Label:      c.Label,
			DeviceType: driver.Virtual,
			Name:       c.Name,
		})
		if err != nil {
			return err
		}
		logger.Debugf("registered %s (%s tier)", c.Label, c.Characteristics.Tier())
	}
	return nil
}

// Load parses the fixture document at path and registers its cameras to m.
func Load(m *driver.Manager, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	cameras, err := Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return Register(m, cameras)
}

var errClosed = errors.New("fixture: camera hasn't been opened")

type adapter struct {
	characteristics characteristics.Characteristics
	opened          bool
}

func (a *adapter) Open() error {
	a.opened = true
	return nil
}

func (a *adapter) Close() error {
	a.opened = false
	return nil
}

func (a *adapter) Probe() (resolution.Snapshot, error) {
	if !a.opened {
		return resolution.Snapshot{}, errClosed
	}
	return a.characteristics.Snapshot(), nil
}
