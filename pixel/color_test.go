package pixel

import (
	"image/color"
	"testing"
)

func TestRGB(t *testing.T) {
	for _, test := range []struct {
		color RGB
		want  [3]uint32
	}{
		{RGB{}, [3]uint32{0, 0, 0}},
		{RGB{R: 0xff}, [3]uint32{0xffff, 0, 0}},
		{RGB{G: 0x80}, [3]uint32{0, 0x8080, 0}},
		{RGB{R: 0x12, G: 0x34, B: 0x56}, [3]uint32{0x1212, 0x3434, 0x5656}},
	} {
		r, g, b, a := test.color.RGBA()
		if r != test.want[0] || g != test.want[1] || b != test.want[2] {
			t.Errorf("expected %#+v to expand to %04x/%04x/%04x, got %04x/%04x/%04x",
				test.color, test.want[0], test.want[1], test.want[2], r, g, b)
		}
		if a != 0xffff {
			t.Errorf("expected %#+v to be opaque, got alpha %04x", test.color, a)
		}
	}
}

func TestRGBModel(t *testing.T) {
	c := color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}
	if v := RGBModel.Convert(c); v != (RGB{R: 0x12, G: 0x34, B: 0x56}) {
		t.Errorf("unexpected conversion: %#+v", v)
	}

	// Converting an RGB color is the identity.
	v := RGB{R: 0xaa, G: 0xbb, B: 0xcc}
	if RGBModel.Convert(v) != v {
		t.Error("expected conversion to be the identity on RGB colors")
	}
}

func TestCRGB15(t *testing.T) {
	for y := 0; y < 2; y++ {
		c := CRGB15{}
		if y > 0 {
			c = CRGB15{0x7fff}
		}
		r, g, b, _ := c.RGBA()
		want := uint32(0xffff * y)
		if r != want || g != want || b != want {
			t.Errorf("expected %04x/%04x/%04x, got %04x/%04x/%04x", want, want, want, r, g, b)
		}
	}

	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if v := CRGB15Model.Convert(white); v != (CRGB15{0x7fff}) {
		t.Errorf("expected white to convert to 0x7fff, got %#+v", v)
	}
}

func TestCRGB16(t *testing.T) {
	for y := 0; y < 2; y++ {
		c := CRGB16{}
		if y > 0 {
			c = CRGB16{0xffff}
		}
		r, g, b, _ := c.RGBA()
		want := uint32(0xffff * y)
		if r != want || g != want || b != want {
			t.Errorf("expected %04x/%04x/%04x, got %04x/%04x/%04x", want, want, want, r, g, b)
		}
	}

	for _, test := range []struct {
		color color.RGBA
		want  CRGB16
	}{
		{color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, CRGB16{0xffff}},
		{color.RGBA{R: 0xff, A: 0xff}, CRGB16{0xf800}},
		{color.RGBA{G: 0xff, A: 0xff}, CRGB16{0x07e0}},
		{color.RGBA{B: 0xff, A: 0xff}, CRGB16{0x001f}},
	} {
		if v := CRGB16Model.Convert(test.color); v != test.want {
			t.Errorf("expected %#+v to convert to %#+v, got %#+v", test.color, test.want, v)
		}
	}
}
