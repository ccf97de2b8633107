package video

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"runtime"
	"syscall"
	"unsafe"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/video/internal/ioctl"
	"github.com/BeatGlow/video/pixel"
)

const (
	fbdevDriverName    = "fbdev"
	fbdevDefaultDevice = "/dev/fb0"

	// From <linux/fb.h>
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
	fbioPutCmap        = 0x4605
)

func init() {
	Register(&Bootstrap{
		Name:        fbdevDriverName,
		Description: "Linux framebuffer video driver",
		Available:   fbdevAvailable,
		New: func(config *Config) (Device, error) {
			return Fbdev(config)
		},
	})
}

// fbdevAvailable passes when the driver is selected by name, or when no
// driver is selected and the default framebuffer device node exists.
func fbdevAvailable(env string) bool {
	if env != "" {
		return env == fbdevDriverName
	}
	_, err := os.Stat(fbdevDefaultDevice)
	return err == nil
}

type fbdevDevice struct {
	config Config
	screen *Surface
	f      *os.File
	fd     uintptr
	info   fbdevFixScreenInfo
	mode   fbdevVarScreenInfo
	format *pixel.Format
	mem    []byte
}

// Fbdev returns a video device backed by a Linux framebuffer device node
// (fbdev), typically /dev/fb[0..x]. The device node is not opened until
// Init.
func Fbdev(config *Config) (Device, error) {
	if config == nil {
		config = new(Config)
	}
	return &fbdevDevice{
		config: *config,
		screen: new(Surface),
	}, nil
}

func (d *fbdevDevice) String() string {
	return fmt.Sprintf("fbdev %dx%d %d bpp", d.mode.Xres, d.mode.Yres, d.mode.BitsPerPixel)
}

// Init opens the framebuffer device, maps its pixel memory and reports the
// native pixel format.
func (d *fbdevDevice) Init() (*pixel.Format, error) {
	name := d.config.Device
	if name == "" {
		name = fbdevDefaultDevice
	}

	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}
	d.f = f
	d.fd = f.Fd()

	if err = ioctl.Do(d.fd, fbioGetFScreenInfo, &d.info); err != nil {
		_ = f.Close()
		d.f = nil
		return nil, err
	}
	if err = ioctl.Do(d.fd, fbioGetVScreenInfo, &d.mode); err != nil {
		_ = f.Close()
		d.f = nil
		return nil, err
	}

	if d.format, err = fbdevFormat(&d.mode); err != nil {
		_ = f.Close()
		d.f = nil
		return nil, err
	}

	if d.mem, err = syscall.Mmap(int(d.fd), 0, int(d.info.SmemLen), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED); err != nil {
		_ = f.Close()
		d.f = nil
		return nil, err
	}

	if d.config.Backlight != nil {
		if err = d.config.Backlight.Out(gpio.High); err != nil {
			_ = syscall.Munmap(d.mem)
			d.mem = nil
			_ = f.Close()
			d.f = nil
			return nil, err
		}
	}

	debugf("video: fbdev %s %dx%d %d bpp, %d bytes mapped", name, d.mode.Xres, d.mode.Yres, d.mode.BitsPerPixel, len(d.mem))
	return d.format, nil
}

// Modes reports the single native mode.
func (d *fbdevDevice) Modes(_ *pixel.Format, _ Flag) []Mode {
	return []Mode{{Width: int(d.mode.Xres), Height: int(d.mode.Yres)}}
}

// SetMode binds the display surface to the mapped framebuffer memory. Only
// the native geometry and depth are accepted.
func (d *fbdevDevice) SetMode(width, height, depth int, flags Flag) (*Surface, error) {
	if width != int(d.mode.Xres) || height != int(d.mode.Yres) || depth != int(d.mode.BitsPerPixel) {
		return nil, fmt.Errorf("video: fbdev does not support mode %dx%d %d bpp (native %dx%d %d bpp)",
			width, height, depth, d.mode.Xres, d.mode.Yres, d.mode.BitsPerPixel)
	}

	d.screen.Flags = flags&Fullscreen | HWSurface
	d.screen.Format = d.format
	d.screen.W = width
	d.screen.H = height
	d.screen.Pitch = int(d.info.LineLength)
	d.screen.Pix = d.mem
	d.screen.bind()

	return d.screen, nil
}

// SetColors updates the palette of a palettized framebuffer through the
// color map ioctl. It reports false on direct color framebuffers.
func (d *fbdevDevice) SetColors(first int, colors []color.RGBA) bool {
	if d.format == nil || d.format.Palette == nil {
		return false
	}
	if !d.format.Palette.SetColors(first, colors) {
		return false
	}
	return d.putCmap(first, colors) == nil
}

func (d *fbdevDevice) putCmap(first int, colors []color.RGBA) error {
	n := len(colors)
	if n == 0 {
		return nil
	}

	var (
		red = make([]uint16, n)
		grn = make([]uint16, n)
		blu = make([]uint16, n)
	)
	for i, c := range colors {
		red[i] = uint16(c.R) << 8
		grn[i] = uint16(c.G) << 8
		blu[i] = uint16(c.B) << 8
	}

	cmap := fbdevCmap{
		Start: uint32(first),
		Len:   uint32(n),
		Red:   uintptr(unsafe.Pointer(&red[0])),
		Green: uintptr(unsafe.Pointer(&grn[0])),
		Blue:  uintptr(unsafe.Pointer(&blu[0])),
	}
	err := ioctl.Do(d.fd, fbioPutCmap, &cmap)
	runtime.KeepAlive(red)
	runtime.KeepAlive(grn)
	runtime.KeepAlive(blu)
	return err
}

// Update is a no-op; the mapped memory is the live display.
func (d *fbdevDevice) Update(_ []image.Rectangle) {
}

func (d *fbdevDevice) Lock(_ *Surface) error {
	return nil
}

func (d *fbdevDevice) Unlock(_ *Surface) {
}

func (d *fbdevDevice) AllocSurface(_ *Surface) error {
	return ErrNoHardware
}

func (d *fbdevDevice) FreeSurface(_ *Surface) {
}

func (d *fbdevDevice) PumpEvents() {
}

func (d *fbdevDevice) InitKeymap() {
}

// Quit unmaps the framebuffer and drops the display surface storage.
func (d *fbdevDevice) Quit() {
	if d.screen.Pix != nil {
		d.screen.release()
	}
	if d.mem != nil {
		_ = syscall.Munmap(d.mem)
		d.mem = nil
	}
	if d.config.Backlight != nil {
		_ = d.config.Backlight.Out(gpio.Low)
	}
}

func (d *fbdevDevice) Close() error {
	if d.f == nil {
		return nil
	}
	return d.f.Close()
}

// fbdevFormat derives a pixel format from the variable screen info. The
// channel masks are taken from the reported bitfields.
func fbdevFormat(mode *fbdevVarScreenInfo) (*pixel.Format, error) {
	format, err := pixel.NewFormat(int(mode.BitsPerPixel))
	if err != nil {
		return nil, fmt.Errorf("video: fbdev: %w", err)
	}
	if format.Palette == nil {
		format.RMask = fbdevMask(mode.Red)
		format.GMask = fbdevMask(mode.Green)
		format.BMask = fbdevMask(mode.Blue)
		format.AMask = fbdevMask(mode.Alpha)
	}
	return format, nil
}

func fbdevMask(b fbdevBitField) uint32 {
	return (1<<b.Length - 1) << b.Offset
}

type fbdevFixScreenInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// fbdevBitField describes one color channel.
type fbdevBitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// fbdevVarScreenInfo contains device independent changeable information
// about a frame buffer device and a specific video mode.
type fbdevVarScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha fbdevBitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

// fbdevCmap mirrors struct fb_cmap from <linux/fb.h>.
type fbdevCmap struct {
	Start  uint32
	Len    uint32
	Red    uintptr
	Green  uintptr
	Blue   uintptr
	Transp uintptr
}
