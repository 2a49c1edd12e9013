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
	"image"

	"seehuhn.de/go/geom/vec"
)

// Sample is one accepted pointer position of a stroke, in canvas pixels.
// Seq counts the samples of the stroke, starting at 0.
type Sample struct {
	X, Y int
	Seq  int
}

// Center returns the device-space centre of the sample's pixel.
func (s Sample) Center() vec.Vec2 {
	return vec.Vec2{X: float64(s.X) + 0.5, Y: float64(s.Y) + 0.5}
}

// Box is the extent of the raw sample positions of a stroke, in canvas
// pixels. All bounds are inclusive. The brush radius is not included.
type Box struct {
	Top, Bottom int
	Left, Right int
}

// EmptyBox returns the box of a stroke without samples on a width×height
// canvas. Every bound lies outside the canvas, so that the first Update
// replaces all four of them.
func EmptyBox(width, height int) Box {
	return Box{Top: height, Bottom: -1, Left: width, Right: -1}
}

// IsEmpty reports whether no sample has been added to b.
func (b Box) IsEmpty() bool {
	return b.Bottom < 0 || b.Right < 0
}

// Update returns the smallest box containing b and the sample (x, y).
func (b Box) Update(x, y int) Box {
	return Box{
		Top:    min(b.Top, y),
		Bottom: max(b.Bottom, y),
		Left:   min(b.Left, x),
		Right:  max(b.Right, x),
	}
}

// Crop returns the pixel rectangle covered by the box after growing it by r
// on every side, clamped to a width×height canvas.
func (b Box) Crop(r, width, height int) image.Rectangle {
	if b.IsEmpty() {
		return image.Rectangle{}
	}
	crop := image.Rect(b.Left-r, b.Top-r, b.Right+r+1, b.Bottom+r+1)
	return crop.Intersect(image.Rect(0, 0, width, height))
}
