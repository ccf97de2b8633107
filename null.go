package video

import (
	"fmt"
	"image"
	"image/color"

	"github.com/BeatGlow/video/pixel"
)

// The null driver satisfies the full device contract without producing any
// output. It is selected explicitly, through Open("null", ...) or the
// VIDEO_DRIVER environment variable, and is meant for headless test runs,
// for isolating video overhead when profiling, and as a set of stubs when
// porting to a new platform.

const nullDriverName = "null"

func init() {
	Register(&Bootstrap{
		Name:        nullDriverName,
		Description: "null video driver",
		Available:   nullAvailable,
		New: func(config *Config) (Device, error) {
			return Null(config)
		},
	})
}

// nullAvailable reports whether the driver selection value names the null
// driver. The match is exact and case-sensitive; an unset variable never
// selects it.
func nullAvailable(env string) bool {
	return env == nullDriverName
}

type nullDevice struct {
	screen *Surface
	buffer []byte
	w, h   int
	alloc  func(n int) ([]byte, error)
}

// Null returns a null video device. The configuration is accepted for
// uniformity with the other drivers and ignored.
func Null(_ *Config) (Device, error) {
	return &nullDevice{
		screen: new(Surface),
		alloc:  allocPixels,
	}, nil
}

func allocPixels(n int) ([]byte, error) {
	return make([]byte, n), nil
}

func (d *nullDevice) String() string {
	return "null video driver"
}

// Init reports the default 8-bit format. The effective depth is established
// by SetMode.
func (d *nullDevice) Init() (*pixel.Format, error) {
	return &pixel.Format{
		BitsPerPixel:  8,
		BytesPerPixel: 1,
	}, nil
}

// Modes reports that any mode is supported.
func (d *nullDevice) Modes(_ *pixel.Format, _ Flag) []Mode {
	return []Mode{AnyMode}
}

// SetMode backs the requested mode with zeroed process memory. At most one
// buffer is live per device; the previous one is dropped before the new one
// is allocated.
func (d *nullDevice) SetMode(width, height, depth int, flags Flag) (*Surface, error) {
	if d.buffer != nil {
		d.buffer = nil
	}

	buffer, err := d.alloc(width * height * (depth / 8))
	if err != nil {
		d.screen.release()
		return nil, fmt.Errorf("video: couldn't allocate buffer for requested mode: %w", err)
	}

	format, err := pixel.NewFormat(depth)
	if err != nil {
		d.screen.release()
		return nil, fmt.Errorf("video: couldn't allocate pixel format for requested mode: %w", err)
	}
	d.buffer = buffer

	debugf("video: null mode %dx%d %d bpp", width, height, depth)

	d.w, d.h = width, height
	d.screen.Flags = flags & Fullscreen
	d.screen.Format = format
	d.screen.W = width
	d.screen.H = height
	d.screen.Pitch = width * format.BytesPerPixel
	d.screen.Pix = d.buffer
	d.screen.bind()

	return d.screen, nil
}

// SetColors does nothing of note.
func (d *nullDevice) SetColors(_ int, _ []color.RGBA) bool {
	return true
}

// Update does nothing; there is no output to push pixels to.
func (d *nullDevice) Update(_ []image.Rectangle) {
}

// Lock always succeeds; the surface pixels are plain memory.
func (d *nullDevice) Lock(_ *Surface) error {
	return nil
}

func (d *nullDevice) Unlock(_ *Surface) {
}

// AllocSurface always fails; hardware surfaces other than the display
// surface are never supported.
func (d *nullDevice) AllocSurface(_ *Surface) error {
	return ErrNoHardware
}

func (d *nullDevice) FreeSurface(_ *Surface) {
}

func (d *nullDevice) PumpEvents() {
}

func (d *nullDevice) InitKeymap() {
}

// Quit drops the display surface storage. Safe to call when no mode was
// ever set.
func (d *nullDevice) Quit() {
	if d.screen.Pix != nil {
		d.screen.release()
	}
	d.buffer = nil
}

func (d *nullDevice) Close() error {
	return nil
}
