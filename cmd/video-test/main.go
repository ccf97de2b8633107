// Command video-test exercises a video driver the way a host library would:
// open, init, mode query, mode set, draw, update, quit.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"gopkg.in/yaml.v2"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/video"
	"github.com/BeatGlow/video/draw"
)

// config mirrors the command line flags; a YAML file can provide defaults.
type config struct {
	Driver     string        `yaml:"driver"`
	Device     string        `yaml:"device"`
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Depth      int           `yaml:"depth"`
	Fullscreen bool          `yaml:"fullscreen"`
	Backlight  string        `yaml:"backlight"`
	Font       string        `yaml:"font"`
	Hold       time.Duration `yaml:"hold"`
}

func main() {
	configFlag := flag.String("config", "", "YAML configuration file")
	driverFlag := flag.String("driver", "", "Driver name (default: probe)")
	deviceFlag := flag.String("device", "", "Device path")
	widthFlag := flag.Int("width", 640, "Mode width")
	heightFlag := flag.Int("height", 480, "Mode height")
	depthFlag := flag.Int("depth", 32, "Mode depth in bits per pixel")
	fullscreenFlag := flag.Bool("fullscreen", false, "Request a fullscreen mode")
	blPinFlag := flag.String("bl", "", "Backlight GPIO pin")
	fontFlag := flag.String("font", "", "TTF font for the test card label")
	holdFlag := flag.Duration("hold", 0, "How long to hold the test card")
	flag.Parse()

	cfg := config{
		Driver:     *driverFlag,
		Device:     *deviceFlag,
		Width:      *widthFlag,
		Height:     *heightFlag,
		Depth:      *depthFlag,
		Fullscreen: *fullscreenFlag,
		Backlight:  *blPinFlag,
		Font:       *fontFlag,
		Hold:       *holdFlag,
	}
	if *configFlag != "" {
		data, err := os.ReadFile(*configFlag)
		if err != nil {
			fatal(err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			fatal(err)
		}
	}

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	deviceConfig := &video.Config{
		Device: cfg.Device,
	}
	if cfg.Backlight != "" {
		deviceConfig.Backlight = gpioreg.ByName(cfg.Backlight)
	}

	fmt.Printf("registered drivers: %v\n", video.Drivers())

	dev, err := video.Open(cfg.Driver, deviceConfig)
	if err != nil {
		fatal(err)
	}
	defer dev.Close()

	format, err := dev.Init()
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using driver: %s (%s)\n", dev, format)
	dev.InitKeymap()

	var flags video.Flag
	if cfg.Fullscreen {
		flags |= video.Fullscreen
	}

	if modes := dev.Modes(format, flags); video.Unrestricted(modes) {
		fmt.Println("all modes supported")
	} else {
		fmt.Printf("supported modes: %v\n", modes)
	}

	surface, err := dev.SetMode(cfg.Width, cfg.Height, cfg.Depth, flags)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using %s, pitch %d\n", surface, surface.Pitch)

	if p := surface.Format.Palette; p != nil {
		ramp := grayRamp()
		p.SetColors(0, ramp)
		dev.SetColors(0, ramp)
	}

	if err = dev.Lock(surface); err != nil {
		fatal(err)
	}
	if cfg.Font != "" {
		card, err := renderCard(surface.W, surface.H, cfg.Font)
		if err != nil {
			fatal(err)
		}
		xdraw.ApproxBiLinear.Scale(surface, surface.Bounds(), card, card.Bounds(), xdraw.Src, nil)
	} else {
		draw.TestCard(surface, surface.Bounds())
	}
	dev.Unlock(surface)
	dev.Update([]image.Rectangle{surface.Bounds()})

	if cfg.Hold > 0 {
		fmt.Printf("holding for %s...\n", cfg.Hold)
		deadline := time.Now().Add(cfg.Hold)
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for time.Now().Before(deadline) {
			dev.PumpEvents()
			<-ticker.C
		}
	}

	dev.Quit()
	fmt.Println("done")
}

// renderCard draws a labelled test card and returns it as an image.
func renderCard(w, h int, fontPath string) (image.Image, error) {
	fontData, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, err
	}
	font, err := truetype.Parse(fontData)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(font, &truetype.Options{
		Size: float64(h) / 10,
	})

	dc := gg.NewContext(w, h)
	draw.TestCard(dc.Image().(draw.Image), dc.Image().Bounds())
	dc.SetFontFace(face)
	dc.SetColor(color.White)
	dc.DrawStringAnchored("BeatGlow video", float64(w)/2, float64(h)*0.85, 0.5, 0.5)
	return dc.Image(), nil
}

// grayRamp is a 256 entry grayscale palette.
func grayRamp() []color.RGBA {
	ramp := make([]color.RGBA, 256)
	for i := range ramp {
		ramp[i] = color.RGBA{R: uint8(i), G: uint8(i), B: uint8(i), A: 0xff}
	}
	return ramp
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
