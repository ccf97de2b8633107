package draw

import (
	"image"
	"image/color"
)

// Bar colors of the standard test card, 75% intensity.
var barColors = []color.RGBA{
	{R: 0xbf, G: 0xbf, B: 0xbf, A: 0xff}, // white
	{R: 0xbf, G: 0xbf, B: 0x00, A: 0xff}, // yellow
	{R: 0x00, G: 0xbf, B: 0xbf, A: 0xff}, // cyan
	{R: 0x00, G: 0xbf, B: 0x00, A: 0xff}, // green
	{R: 0xbf, G: 0x00, B: 0xbf, A: 0xff}, // magenta
	{R: 0xbf, G: 0x00, B: 0x00, A: 0xff}, // red
	{R: 0x00, G: 0x00, B: 0xbf, A: 0xff}, // blue
}

// ColorBars fills rect with vertical color bars.
func ColorBars(dst Image, rect image.Rectangle) {
	w := rect.Dx()
	for i, c := range barColors {
		bar := image.Rect(
			rect.Min.X+i*w/len(barColors), rect.Min.Y,
			rect.Min.X+(i+1)*w/len(barColors), rect.Max.Y,
		)
		Box(dst, bar, c)
	}
}

// Gradient fills rect with a horizontal black-to-white ramp.
func Gradient(dst Image, rect image.Rectangle) {
	w := rect.Dx()
	if w <= 1 {
		return
	}
	for x := rect.Min.X; x < rect.Max.X; x++ {
		y := uint8((x - rect.Min.X) * 0xff / (w - 1))
		VerticalLine(dst, x, rect.Min.Y, rect.Dy(), color.RGBA{R: y, G: y, B: y, A: 0xff})
	}
}

// TestCard draws a test pattern into rect: color bars on the top two
// thirds, a gray ramp below, and a single pixel border.
func TestCard(dst Image, rect image.Rectangle) {
	if rect.Empty() {
		return
	}

	split := rect.Min.Y + rect.Dy()*2/3
	ColorBars(dst, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, split))
	Gradient(dst, image.Rect(rect.Min.X, split, rect.Max.X, rect.Max.Y))
	Rectangle(dst, rect, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
}
