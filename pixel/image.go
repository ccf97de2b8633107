package pixel

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/BeatGlow/video/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is a container that is used by all image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func makeBuffer(w, h, stride int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, stride*h),
		Stride: stride,
	}
}

// Indexed8Image is an 8-bits per pixel palettized image.
type Indexed8Image struct {
	Buffer
	Palette *Palette
}

func NewIndexed8Image(w, h int, p *Palette) *Indexed8Image {
	if p == nil {
		p = NewPalette(PaletteSize)
	}
	return &Indexed8Image{
		Buffer:  makeBuffer(w, h, w),
		Palette: p,
	}
}

func (p *Indexed8Image) ColorModel() color.Model {
	return p.Palette
}

func (p *Indexed8Image) PixOffset(x, y int) int {
	return y*p.Stride + x
}

func (p *Indexed8Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	index := p.Pix[y*p.Stride+x]
	if int(index) >= len(p.Palette.Colors) {
		return color.Transparent
	}
	return p.Palette.Colors[index]
}

func (p *Indexed8Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Pix[y*p.Stride+x] = byte(p.Palette.Index(c))
}

func (p *Indexed8Image) Fill(c color.Color) {
	value := byte(p.Palette.Index(c))
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// CRGB16Image is a 16-bits per pixel 5-6-5-bit RGB image.
type CRGB16Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewCRGB16Image(w, h int) *CRGB16Image {
	return &CRGB16Image{
		Buffer: makeBuffer(w, h, w*2),
		Order:  binary.BigEndian,
	}
}

func (p *CRGB16Image) ColorModel() color.Model {
	return CRGB16Model
}

func (p *CRGB16Image) PixOffset(x, y int) int {
	return y*p.Stride + x*2
}

func (p *CRGB16Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	v := p.Order.Uint16(p.Pix[x*2+y*p.Stride:])
	return CRGB16{v}
}

func (p *CRGB16Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := crgb16Model(c).(CRGB16).V
	p.Order.PutUint16(p.Pix[x*2+y*p.Stride:], v)
}

func (p *CRGB16Image) Fill(c color.Color) {
	value := crgb16Model(c).(CRGB16).V
	bytes := make([]byte, 2)
	p.Order.PutUint16(bytes, value)
	for i, l := 0, len(p.Pix); i < l; i += 2 {
		copy(p.Pix[i:], bytes)
	}
}

// RGB24Image is a 24-bits per pixel 8-8-8-bit RGB image.
type RGB24Image struct {
	Buffer
}

func NewRGB24Image(w, h int) *RGB24Image {
	return &RGB24Image{
		Buffer: makeBuffer(w, h, w*3),
	}
}

func (p *RGB24Image) ColorModel() color.Model {
	return RGBModel
}

func (p *RGB24Image) PixOffset(x, y int) int {
	return y*p.Stride + x*3
}

func (p *RGB24Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	i := y*p.Stride + x*3
	return RGB{
		R: p.Pix[i+0],
		G: p.Pix[i+1],
		B: p.Pix[i+2],
	}
}

func (p *RGB24Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := rgbModel(c).(RGB)
	i := y*p.Stride + x*3
	p.Pix[i+0] = v.R
	p.Pix[i+1] = v.G
	p.Pix[i+2] = v.B
}

func (p *RGB24Image) Fill(c color.Color) {
	v := rgbModel(c).(RGB)
	bytes := []byte{v.R, v.G, v.B}
	for i, l := 0, len(p.Pix); i < l; i += 3 {
		copy(p.Pix[i:], bytes)
	}
}

// RGBA32Image is a 32-bits per pixel 8-8-8-8-bit RGBA image.
type RGBA32Image struct {
	Buffer
}

func NewRGBA32Image(w, h int) *RGBA32Image {
	return &RGBA32Image{
		Buffer: makeBuffer(w, h, w*4),
	}
}

func (p *RGBA32Image) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *RGBA32Image) PixOffset(x, y int) int {
	return y*p.Stride + x*4
}

func (p *RGBA32Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	i := y*p.Stride + x*4
	return color.RGBA{
		R: p.Pix[i+0],
		G: p.Pix[i+1],
		B: p.Pix[i+2],
		A: p.Pix[i+3],
	}
}

func (p *RGBA32Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := color.RGBAModel.Convert(c).(color.RGBA)
	i := y*p.Stride + x*4
	p.Pix[i+0] = v.R
	p.Pix[i+1] = v.G
	p.Pix[i+2] = v.B
	p.Pix[i+3] = v.A
}

func (p *RGBA32Image) Fill(c color.Color) {
	v := color.RGBAModel.Convert(c).(color.RGBA)
	bytes := []byte{v.R, v.G, v.B, v.A}
	for i, l := 0, len(p.Pix); i < l; i += 4 {
		copy(p.Pix[i:], bytes)
	}
}

// Interface checks.
var (
	_ Image = (*Indexed8Image)(nil)
	_ Image = (*CRGB16Image)(nil)
	_ Image = (*RGB24Image)(nil)
	_ Image = (*RGBA32Image)(nil)
)
