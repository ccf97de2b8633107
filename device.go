package video

import (
	"image"
	"image/color"

	"github.com/BeatGlow/video/pixel"
)

// Flag bits for mode requests and surfaces.
type Flag uint32

const (
	// Fullscreen requests a fullscreen mode.
	Fullscreen Flag = 1 << iota

	// DoubleBuffer requests double buffered output.
	DoubleBuffer

	// HWSurface requests surfaces in hardware memory.
	HWSurface
)

// Mode is a display mode geometry.
type Mode struct {
	Width  int
	Height int
}

// AnyMode is the sentinel mode reported by drivers that impose no mode
// restriction. Such drivers return it as the only element of their mode
// list.
var AnyMode = Mode{Width: -1, Height: -1}

// Unrestricted reports whether a mode list means "all modes supported".
func Unrestricted(modes []Mode) bool {
	return len(modes) == 1 && modes[0] == AnyMode
}

// Device is the per-session handle of a video driver. The host owns the
// call ordering: Init once, then mode queries and mode sets, then surface
// operations, then Quit. Devices are not safe for concurrent use.
type Device interface {
	// Init initializes the device and reports its native pixel format.
	// The format is a default; the effective format is established by
	// SetMode.
	Init() (*pixel.Format, error)

	// Modes lists the modes supported for the given format and flags.
	// A driver without restrictions returns []Mode{AnyMode}.
	Modes(format *pixel.Format, flags Flag) []Mode

	// SetMode sets the video mode and returns the display surface. The
	// previous mode's storage, if any, is released first.
	SetMode(width, height, depth int, flags Flag) (*Surface, error)

	// SetColors updates palette entries starting at first. It reports
	// whether all entries were set.
	SetColors(first int, colors []color.RGBA) bool

	// Update pushes the given surface areas to the output.
	Update(rects []image.Rectangle)

	// Lock prepares the surface pixels for direct access.
	Lock(s *Surface) error

	// Unlock ends direct pixel access.
	Unlock(s *Surface)

	// AllocSurface allocates a hardware surface.
	AllocSurface(s *Surface) error

	// FreeSurface releases a hardware surface.
	FreeSurface(s *Surface)

	// PumpEvents polls the backend for pending input events.
	PumpEvents()

	// InitKeymap initializes the backend's key translation tables.
	InitKeymap()

	// Quit shuts the video output down and releases the display surface
	// storage. Quit is terminal; the device cannot be re-initialized.
	Quit()

	// Close releases the device.
	Close() error
}

// Blitter is implemented by devices with accelerated surface operations.
type Blitter interface {
	// CheckBlit reports whether a blit from src to dst can be accelerated.
	CheckBlit(src, dst *Surface) bool

	// FillRect fills an area of a hardware surface.
	FillRect(dst *Surface, rect image.Rectangle, c color.Color) error

	// SetColorKey sets the transparent color of a hardware surface.
	SetColorKey(s *Surface, c color.Color) error

	// SetAlpha sets the per-surface alpha of a hardware surface.
	SetAlpha(s *Surface, alpha uint8) error
}

// WindowManager is implemented by devices running under a window system.
type WindowManager interface {
	// SetCaption sets the window title and icon title.
	SetCaption(title, icon string)

	// SetIcon sets the window icon.
	SetIcon(img image.Image)

	// Iconify minimizes the window. It reports whether the request was
	// honored.
	Iconify() bool
}

// InputGrabber is implemented by devices that can confine input.
type InputGrabber interface {
	// GrabInput acquires or releases exclusive input. It reports the
	// resulting grab state.
	GrabInput(on bool) bool
}
