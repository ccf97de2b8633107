// Package pixel implements the color models, pixel format descriptors and
// packed image formats used by video surfaces.
//
// This module provides additional color models, compatible with Go's native
// [color.Color] and [image.Image] / [draw.Image] interfaces, so surfaces can
// be drawn on with the standard library and anything built on top of it.
package pixel
