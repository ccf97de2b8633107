package video

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"

	"github.com/BeatGlow/video/pixel"
)

// Surface describes the pixel storage of a video mode.
//
// A Surface implements [draw.Image] over its pixel storage, so the standard
// library image operations apply directly. After a successful SetMode the
// surface storage is zero-filled and Pitch is W times the packed pixel size.
type Surface struct {
	// Flags the surface was created with.
	Flags Flag

	// Format describes the pixel layout.
	Format *pixel.Format

	// W and H are the surface dimensions in pixels.
	W, H int

	// Pitch is the byte offset between vertically adjacent pixels.
	Pitch int

	// Pix is the pixel storage. It is nil before the first mode set and
	// after Quit.
	Pix []byte

	img pixel.Image
}

// bind attaches a packed image view matching Format over the current pixel
// storage. Surfaces with no storage or an unknown depth have no view.
func (s *Surface) bind() {
	if s.Pix == nil || s.Format == nil {
		s.img = nil
		return
	}

	buffer := pixel.Buffer{
		Rect:   image.Rect(0, 0, s.W, s.H),
		Pix:    s.Pix,
		Stride: s.Pitch,
	}
	switch s.Format.BitsPerPixel {
	case 8:
		s.img = &pixel.Indexed8Image{Buffer: buffer, Palette: s.Format.Palette}
	case 16:
		s.img = &pixel.CRGB16Image{Buffer: buffer, Order: binary.LittleEndian}
	case 24:
		s.img = &pixel.RGB24Image{Buffer: buffer}
	case 32:
		s.img = &pixel.RGBA32Image{Buffer: buffer}
	default:
		s.img = nil
	}
}

// release drops the pixel storage.
func (s *Surface) release() {
	s.Pix = nil
	s.img = nil
}

// Bounds is the surface bounding box.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.W, s.H)
}

// ColorModel used by the surface.
func (s *Surface) ColorModel() color.Model {
	if s.Format == nil {
		return color.RGBAModel
	}
	return s.Format.Model()
}

// At returns the color of the pixel at (x, y).
func (s *Surface) At(x, y int) color.Color {
	if s.img == nil {
		return color.Transparent
	}
	return s.img.At(x, y)
}

// Set the pixel color at (x, y).
func (s *Surface) Set(x, y int, c color.Color) {
	if s.img == nil {
		return
	}
	s.img.Set(x, y, c)
}

// Fill the surface with a single color.
func (s *Surface) Fill(c color.Color) {
	if s.img == nil {
		return
	}
	s.img.Fill(c)
}

func (s *Surface) String() string {
	if s.Format == nil {
		return fmt.Sprintf("surface %dx%d", s.W, s.H)
	}
	return fmt.Sprintf("surface %dx%d %d bpp", s.W, s.H, s.Format.BitsPerPixel)
}
