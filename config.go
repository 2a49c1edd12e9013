// seehuhn.de/go/sketch - stroke capture and rasterisation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sketch

import (
	"errors"
	"fmt"

	"golang.org/x/image/draw"
)

// IntensityScale selects how bitmap values are normalised.
type IntensityScale int

const (
	// Continuous maps ink coverage linearly to [0, 1].
	Continuous IntensityScale = iota

	// Binary maps pixels with at least half coverage to 1, others to 0.
	Binary
)

func (s IntensityScale) String() string {
	switch s {
	case Continuous:
		return "continuous"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("IntensityScale(%d)", int(s))
	}
}

// Config holds the fixed parameters of a drawing session.
// All lengths are in canvas pixels.
type Config struct {
	// Width and Height give the canvas size.
	Width, Height int

	// Radius is the brush radius. Every sample is inked as a disk of this
	// radius, centred on the middle of the sample's pixel.
	Radius int

	// Intensity selects the value scale of rendered bitmaps. This must match
	// the data the classifier was trained on.
	Intensity IntensityScale

	// Interpolator resizes the cropped stroke to the bitmap grid.
	// If nil, draw.BiLinear is used.
	Interpolator draw.Interpolator
}

// Default values for Config.
const (
	DefaultWidth  = 500
	DefaultHeight = 500
	DefaultRadius = 10
)

// DefaultConfig returns the configuration used by the sketch pad.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Radius:       DefaultRadius,
		Intensity:    Continuous,
		Interpolator: draw.BiLinear,
	}
}

// ErrConfig is returned (wrapped) by Config.Validate.
var ErrConfig = errors.New("invalid sketch configuration")

// Validate checks that at least one sample position on the canvas is
// accepted by the brush.
func (c Config) Validate() error {
	switch {
	case c.Radius < 1:
		return fmt.Errorf("%w: brush radius %d is not positive", ErrConfig, c.Radius)
	case c.Width < 2*c.Radius+1:
		return fmt.Errorf("%w: canvas width %d too small for brush radius %d", ErrConfig, c.Width, c.Radius)
	case c.Height < 2*c.Radius+2:
		return fmt.Errorf("%w: canvas height %d too small for brush radius %d", ErrConfig, c.Height, c.Radius)
	case c.Intensity != Continuous && c.Intensity != Binary:
		return fmt.Errorf("%w: unknown intensity scale %d", ErrConfig, int(c.Intensity))
	}
	return nil
}

// Accepts reports whether a brush disk at sample (x, y) lies on the canvas.
//
// The bottom edge uses a strict comparison while the right edge does not,
// so the last row which can carry a disk centre is Height-Radius-2 but the
// last column is Width-Radius-1. Stored sketches depend on this boundary.
func (c Config) Accepts(x, y int) bool {
	r := c.Radius
	return x-r >= 0 && x+r <= c.Width-1 && y-r >= 0 && y+r < c.Height-1
}

func (c Config) interpolator() draw.Interpolator {
	if c.Interpolator == nil {
		return draw.BiLinear
	}
	return c.Interpolator
}
