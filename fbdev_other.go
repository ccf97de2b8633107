//go:build !linux

package video

import "errors"

// ErrNotSupported is returned by drivers that cannot run on this platform.
var ErrNotSupported = errors.New("video: fbdev is not supported on this platform")

// Fbdev is only supported on Linux.
func Fbdev(_ *Config) (Device, error) {
	return nil, ErrNotSupported
}
