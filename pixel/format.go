package pixel

import (
	"fmt"
	"image/color"
)

// PaletteSize is the number of entries in an 8-bit palette.
const PaletteSize = 256

// Format describes the bit depth and channel layout of a surface's pixels.
//
// Depths of 8, 16, 24 and 32 bits per pixel are supported. The 8-bit format
// is palettized and carries its own [Palette]; the others use the channel
// masks.
type Format struct {
	// BitsPerPixel is the pixel depth.
	BitsPerPixel int

	// BytesPerPixel is the packed pixel size, BitsPerPixel / 8.
	BytesPerPixel int

	// Channel masks, as laid out in a packed pixel. All zero for
	// palettized formats.
	RMask, GMask, BMask, AMask uint32

	// Palette for 8-bit formats, nil otherwise.
	Palette *Palette
}

// NewFormat returns the default format descriptor for the requested depth.
//
// 8-bit formats start out with an all-black palette, 16-bit formats use
// 5-6-5 RGB, 24- and 32-bit formats use 8-8-8 RGB with an alpha channel on
// 32-bit only.
func NewFormat(depth int) (*Format, error) {
	switch depth {
	case 8:
		return &Format{
			BitsPerPixel:  8,
			BytesPerPixel: 1,
			Palette:       NewPalette(PaletteSize),
		}, nil
	case 16:
		return &Format{
			BitsPerPixel:  16,
			BytesPerPixel: 2,
			RMask:         0xf800,
			GMask:         0x07e0,
			BMask:         0x001f,
		}, nil
	case 24:
		return &Format{
			BitsPerPixel:  24,
			BytesPerPixel: 3,
			RMask:         0xff0000,
			GMask:         0x00ff00,
			BMask:         0x0000ff,
		}, nil
	case 32:
		return &Format{
			BitsPerPixel:  32,
			BytesPerPixel: 4,
			RMask:         0x00ff0000,
			GMask:         0x0000ff00,
			BMask:         0x000000ff,
			AMask:         0xff000000,
		}, nil
	default:
		return nil, fmt.Errorf("pixel: unsupported depth %d bits per pixel", depth)
	}
}

// Model returns the color model matching the format depth.
func (f *Format) Model() color.Model {
	switch f.BitsPerPixel {
	case 8:
		if f.Palette != nil {
			return f.Palette
		}
		return color.GrayModel
	case 16:
		return CRGB16Model
	case 24:
		return RGBModel
	default:
		return color.RGBAModel
	}
}

// String implements the fmt.Stringer interface.
func (f *Format) String() string {
	if f.Palette != nil {
		return fmt.Sprintf("%d bpp palettized", f.BitsPerPixel)
	}
	return fmt.Sprintf("%d bpp R%08x G%08x B%08x A%08x", f.BitsPerPixel, f.RMask, f.GMask, f.BMask, f.AMask)
}

// Palette is a color lookup table for palettized formats.
type Palette struct {
	// Colors are the palette entries, index 0 first.
	Colors []color.RGBA
}

// NewPalette returns a palette with size all-black opaque entries.
func NewPalette(size int) *Palette {
	p := &Palette{
		Colors: make([]color.RGBA, size),
	}
	for i := range p.Colors {
		p.Colors[i].A = 0xff
	}
	return p
}

// SetColors stores colors starting at entry first. Entries outside the
// palette are clipped. It reports whether all requested entries were stored.
func (p *Palette) SetColors(first int, colors []color.RGBA) bool {
	if first < 0 || first >= len(p.Colors) {
		return false
	}
	n := copy(p.Colors[first:], colors)
	return n == len(colors)
}

// Index returns the palette index of the entry closest to c, using squared
// Euclidean distance in RGB space.
func (p *Palette) Index(c color.Color) int {
	cr, cg, cb, _ := c.RGBA()
	var (
		best     int
		bestDist uint32 = 1<<32 - 1
	)
	for i, e := range p.Colors {
		er, eg, eb, _ := e.RGBA()
		dist := sqDiff(cr, er) + sqDiff(cg, eg) + sqDiff(cb, eb)
		if dist < bestDist {
			best, bestDist = i, dist
			if dist == 0 {
				break
			}
		}
	}
	return best
}

// Convert implements the color.Model interface, resolving c to the closest
// palette entry.
func (p *Palette) Convert(c color.Color) color.Color {
	if len(p.Colors) == 0 {
		return color.RGBA{A: 0xff}
	}
	return p.Colors[p.Index(c)]
}

// sqDiff is the squared difference of two 16-bit color components, shifted
// down to keep the sum of three components within 32 bits.
func sqDiff(a, b uint32) uint32 {
	d := a - b
	return (d * d) >> 2
}
