package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestCRGB16Image(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewCRGB16Image(size.X, size.Y)
	}, CRGB16Model)
}

func TestRGB24Image(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewRGB24Image(size.X, size.Y)
	}, RGBModel)
}

func TestRGBA32Image(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewRGBA32Image(size.X, size.Y)
	}, color.RGBAModel)
}

func TestIndexed8Image(t *testing.T) {
	// Gray ramp palette, so every gray has an exact entry.
	p := NewPalette(PaletteSize)
	for i := range p.Colors {
		p.Colors[i] = color.RGBA{R: uint8(i), G: uint8(i), B: uint8(i), A: 0xff}
	}

	i := NewIndexed8Image(16, 16, p)
	if v := i.Bounds().Size(); !v.Eq(image.Pt(16, 16)) {
		t.Fatalf("expected image size 16x16, got %s", v)
	}
	if i.ColorModel() != p {
		t.Fatal("expected the palette to be the color model")
	}

	t.Run("in-bounds", func(it *testing.T) {
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				y8 := uint8(rand.Intn(256))
				c := color.RGBA{R: y8, G: y8, B: y8, A: 0xff}
				i.Set(x, y, c)
				if v := i.At(x, y); v != c {
					it.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, v, c)
				}
			}
		}
	})

	t.Run("out-bounds", func(it *testing.T) {
		i.Set(-1, 0, color.White)
		i.Set(0, 16, color.White)
		if v := i.At(-1, 0); v != color.Transparent {
			it.Fatalf("pixel (-1,0) is %#+v, expected transparent", v)
		}
	})

	t.Run("fill", func(it *testing.T) {
		c := color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
		i.Fill(c)
		if v := i.At(7, 7); v != c {
			it.Fatalf("pixel (7,7) is %#+v, expected %#+v", v, c)
		}
	})

	t.Run("clear", func(it *testing.T) {
		i.Clear()
		if v := i.At(7, 7); v != p.Colors[0] {
			it.Fatalf("pixel (7,7) is %#+v, expected the first palette entry", v)
		}
	})
}

func testImage(t *testing.T, f func(image.Point) Image, model color.Model) {
	t.Helper()
	testCases := []image.Point{
		image.Point{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(256, 32),
		image.Pt(256, 64),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := f(test)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != model {
				it.Errorf("expected color model %T, got %T", model, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("in-bounds-matching-model", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := model.Convert(testRandomColor())
						i.Set(x, y, c)
						if i.At(x, y) != c {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, i.At(x, y), c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 {
							if v := i.At(x, y); v != color.Transparent {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
								return
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.ColorModel().Convert(c); i.At(x, y) != v {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						return
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if r, g, b, _ := i.At(x, y).RGBA(); r|g|b != 0 {
						itt.Fatalf("pixel (%d,%d) is not black", x, y)
					}
				}
			})
		})
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
