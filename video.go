// Package video contains drivers for video output backends.
//
// Drivers register themselves with a [Bootstrap] descriptor. A host selects
// one through [Open], either by explicit name or through the VIDEO_DRIVER
// environment variable, and then talks to the resulting [Device]: mode query,
// mode set, surface updates, palette changes and finally quit.
package video

import (
	"errors"
	"fmt"
	"log"
	"os"

	"periph.io/x/conn/v3/gpio"
)

var debug bool

func init() {
	debug = os.Getenv("VIDEO_DEBUG") != ""
}

func debugf(format string, v ...interface{}) {
	if debug {
		log.Printf(format, v...)
	}
}

// EnvDriver is the environment variable consulted by [Open] to select a
// driver when no explicit name is given.
const EnvDriver = "VIDEO_DRIVER"

// Errors
var (
	ErrNoDriver   = errors.New("video: no available video driver")
	ErrNoHardware = errors.New("video: hardware surfaces are not supported")
)

// Config is the video device configuration.
type Config struct {
	// Device is the platform device path, for drivers that are backed by a
	// device node. Empty selects the driver's default.
	Device string

	// Backlight pin, toggled with the display power state by drivers that
	// support it.
	Backlight gpio.PinOut
}

// Bootstrap is the registration record for a video driver. Hosts discover
// and select a backend through its Name and Available probe.
type Bootstrap struct {
	// Name is the symbolic driver name.
	Name string

	// Description is a human-readable driver description.
	Description string

	// Available reports whether the driver can run. It receives the value
	// of the driver selection environment variable, empty when unset, so
	// the probe itself never touches the process environment.
	Available func(env string) bool

	// New allocates a device. The device is not initialized until its
	// Init method is called.
	New func(config *Config) (Device, error)
}

var bootstraps []*Bootstrap

// Register adds a driver bootstrap to the lookup table. It is called from
// driver init functions.
func Register(b *Bootstrap) {
	bootstraps = append(bootstraps, b)
}

// Drivers returns the names of all registered drivers, in registration order.
func Drivers() []string {
	names := make([]string, len(bootstraps))
	for i, b := range bootstraps {
		names[i] = b.Name
	}
	return names
}

// Open selects a driver and allocates its device.
//
// With a non-empty name the matching driver is used directly, bypassing its
// availability probe. With an empty name the first registered driver whose
// probe passes for the current VIDEO_DRIVER value wins.
func Open(name string, config *Config) (Device, error) {
	if config == nil {
		config = new(Config)
	}

	if name != "" {
		for _, b := range bootstraps {
			if b.Name == name {
				debugf("video: opening driver %q", b.Name)
				return b.New(config)
			}
		}
		return nil, fmt.Errorf("video: no driver named %q", name)
	}

	env := os.Getenv(EnvDriver)
	for _, b := range bootstraps {
		if b.Available(env) {
			debugf("video: opening driver %q", b.Name)
			return b.New(config)
		}
	}
	if env != "" {
		return nil, fmt.Errorf("video: no available driver for %q", env)
	}
	return nil, ErrNoDriver
}
