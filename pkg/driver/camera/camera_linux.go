package camera

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/blackjack/webcam"
	"github.com/camconnect/camcaps/internal/logging"
	"github.com/camconnect/camcaps/pkg/driver"
	"github.com/camconnect/camcaps/pkg/driver/availability"
	"github.com/camconnect/camcaps/pkg/resolution"
)

var logger = logging.NewLogger("camera")

// Camera implementation using v4l2
// Reference: https://linuxtv.org/downloads/v4l-dvb-apis/uapi/v4l/videodev.html#videodev
type camera struct {
	path string
	cam  *webcam.Webcam
}

func init() {
	Initialize()
}

// Initialize finds and registers camera devices. This is part of an experimental API.
func Initialize() {
	discovered := make(map[string]struct{})
	discover(driver.GetManager(), discovered, "/dev/v4l/by-path/*")
	discover(driver.GetManager(), discovered, "/dev/video*")
}

func discover(m *driver.Manager, discovered map[string]struct{}, pattern string) {
	devices, err := filepath.Glob(pattern)
	if err != nil {
		// No v4l device.
		return
	}
	for _, device := range devices {
		label := filepath.Base(device)
		reallink, err := filepath.EvalSymlinks(device)
		if err != nil {
			logger.Warnf("failed to resolve %s: %v", device, err)
			continue
		}

		if _, ok := discovered[reallink]; ok {
			continue
		}

		discovered[reallink] = struct{}{}
		cam := newCamera(device)
		if err := m.Register(cam, driver.Info{
			Label:      label + LabelSeparator + filepath.Base(reallink),
			DeviceType: driver.Camera,
		}); err != nil {
			logger.Errorf("failed to register %s: %v", device, err)
		}
	}
}

func newCamera(path string) *camera {
	return &camera{
		path: path,
	}
}

func (c *camera) Open() error {
	cam, err := webcam.Open(c.path)
	if err != nil {
		if errors.Is(err, syscall.EBUSY) {
			return fmt.Errorf("%s: %w", c.path, availability.ErrBusy)
		}
		return err
	}

	c.cam = cam
	return nil
}

func (c *camera) Close() error {
	if c.cam == nil {
		return nil
	}

	err := c.cam.Close()
	c.cam = nil
	return err
}

// Probe lists every (pixel format, frame size) pair reported by the device,
// formats in ascending fourcc order. Stepwise sizes are reported by their
// maximum dimensions.
func (c *camera) Probe() (resolution.Snapshot, error) {
	if c.cam == nil {
		return resolution.Snapshot{}, fmt.Errorf("%s: camera hasn't been opened", c.path)
	}

	formats := make([]webcam.PixelFormat, 0)
	for format := range c.cam.GetSupportedFormats() {
		formats = append(formats, format)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })

	entries := make([]resolution.NativeSizeEntry, 0)
	for _, format := range formats {
		for _, frameSize := range c.cam.GetSupportedFrameSizes(format) {
			rates := c.cam.GetSupportedFramerates(format, frameSize.MaxWidth, frameSize.MaxHeight)
			intervals := make([]frameInterval, 0, len(rates))
			for _, rate := range rates {
				intervals = append(intervals, frameInterval{
					numerator:   rate.MinNumerator,
					denominator: rate.MinDenominator,
				})
			}

			interval, ok := minFrameInterval(intervals)
			if !ok {
				logger.Debugf("%s: skipping %dx%d (format %#x), no usable frame interval",
					c.path, frameSize.MaxWidth, frameSize.MaxHeight, uint32(format))
				continue
			}

			entries = append(entries, resolution.NativeSizeEntry{
				Size: resolution.Size{
					Width:  int(frameSize.MaxWidth),
					Height: int(frameSize.MaxHeight),
				},
				MinFrameInterval: interval,
			})
		}
	}

	return resolution.Snapshot{
		Tier:        resolution.TierFull,
		NativeSizes: entries,
	}, nil
}
