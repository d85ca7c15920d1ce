// Package videotest provides dummy video driver for testing.
package videotest

import (
	"errors"
	"time"

	"github.com/camconnect/camcaps/pkg/driver"
	"github.com/camconnect/camcaps/pkg/resolution"
)

// Label is the label the dummy camera is registered with.
const Label = "VideoTest"

func init() {
	driver.GetManager().Register(
		newVideoTest(),
		driver.Info{Label: Label, DeviceType: driver.Camera},
	)
}

type dummy struct {
	opened bool
}

func newVideoTest() *dummy {
	return &dummy{}
}

func (d *dummy) Open() error {
	d.opened = true
	return nil
}

func (d *dummy) Close() error {
	d.opened = false
	return nil
}

func (d *dummy) Probe() (resolution.Snapshot, error) {
	if !d.opened {
		return resolution.Snapshot{}, errors.New("videotest: not opened")
	}

	fps := func(n int) time.Duration { return time.Second / time.Duration(n) }
	return resolution.Snapshot{
		Tier: resolution.TierFull,
		NativeSizes: []resolution.NativeSizeEntry{
			{Size: resolution.Size{Width: 1920, Height: 1080}, MinFrameInterval: fps(30)},
			{Size: resolution.Size{Width: 1280, Height: 720}, MinFrameInterval: fps(60)},
			{Size: resolution.Size{Width: 640, Height: 480}, MinFrameInterval: fps(30)},
			{Size: resolution.Size{Width: 320, Height: 240}, MinFrameInterval: fps(15)},
		},
	}, nil
}
