package video

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/BeatGlow/video/draw"
)

func TestSurfaceDraw(t *testing.T) {
	testCases := []struct {
		depth int
		color color.Color
	}{
		{8, color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}},
		{16, color.RGBA{R: 0xf8, G: 0xfc, B: 0xf8, A: 0xff}},
		{24, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}},
		{32, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}},
	}
	for _, test := range testCases {
		t.Run(fmt.Sprintf("%dbpp", test.depth), func(it *testing.T) {
			dev := testNullDevice(it)
			surface, err := dev.SetMode(16, 8, test.depth, 0)
			if err != nil {
				it.Fatal(err)
			}

			if p := surface.Format.Palette; p != nil {
				// Gray ramp, so every gray has an exact entry.
				ramp := make([]color.RGBA, 256)
				for i := range ramp {
					ramp[i] = color.RGBA{R: uint8(i), G: uint8(i), B: uint8(i), A: 0xff}
				}
				if !p.SetColors(0, ramp) {
					it.Fatal("expected the palette update to succeed")
				}
			}

			want := surface.ColorModel().Convert(test.color)
			surface.Set(3, 2, test.color)
			if v := surface.At(3, 2); v != want {
				it.Fatalf("pixel (3,2) is %#+v, expected %#+v", v, want)
			}
			if v := surface.At(-1, 0); v != color.Transparent {
				it.Fatalf("pixel (-1,0) is %#+v, expected transparent", v)
			}

			surface.Fill(test.color)
			if v := surface.At(15, 7); v != want {
				it.Fatalf("pixel (15,7) is %#+v, expected %#+v", v, want)
			}
		})
	}
}

func TestSurfaceTestCard(t *testing.T) {
	dev := testNullDevice(t)
	surface, err := dev.SetMode(64, 48, 32, 0)
	if err != nil {
		t.Fatal(err)
	}

	draw.TestCard(surface, surface.Bounds())

	white := surface.ColorModel().Convert(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	if v := surface.At(0, 0); v != white {
		t.Errorf("expected a white border pixel, got %#+v", v)
	}

	var nonzero bool
	for _, v := range surface.Pix {
		if v != 0 {
			nonzero = true
			break
		}
	}
	if !nonzero {
		t.Error("expected the test card to touch the pixel storage")
	}
}

func TestSurfaceWithoutStorage(t *testing.T) {
	var surface Surface

	if v := surface.At(0, 0); v != color.Transparent {
		t.Errorf("expected transparent pixels, got %#+v", v)
	}
	surface.Set(0, 0, color.White)
	surface.Fill(color.White)
	if !surface.Bounds().Empty() {
		t.Errorf("expected empty bounds, got %s", surface.Bounds())
	}
	if surface.ColorModel() != color.RGBAModel {
		t.Error("expected the RGBA fallback color model")
	}
	if surface.String() != "surface 0x0" {
		t.Errorf("unexpected string: %q", surface.String())
	}
}

func TestSurfaceUpdateAfterQuit(t *testing.T) {
	dev := testNullDevice(t)
	surface, err := dev.SetMode(32, 32, 16, 0)
	if err != nil {
		t.Fatal(err)
	}

	dev.Quit()

	// A late update notification must not touch released storage.
	dev.Update([]image.Rectangle{surface.Bounds()})
	surface.Set(1, 1, color.White)
	if v := surface.At(1, 1); v != color.Transparent {
		t.Fatalf("expected transparent pixels after quit, got %#+v", v)
	}
}
