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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/raster"
)

// Hint describes the ink added by one accepted sample, for immediate
// display. Coordinates are in canvas device space.
type Hint struct {
	// Center and Radius give the brush disk of the sample.
	Center vec.Vec2
	Radius float64

	// Capsule bridges the gap to the previous sample, or is nil if the
	// two disks touch or this is the first sample of the stroke.
	Capsule []vec.Vec2
}

// Surface receives drawing hints while a stroke is captured.
// Hints are for display only; committed bitmaps are always rendered from
// the stored samples.
type Surface interface {
	StampDisk(center vec.Vec2, radius float64)
	FillPolygon(pts []vec.Vec2)
	Clear()
}

// Draw forwards the hint to s.
func (h Hint) Draw(s Surface) {
	if h.Capsule != nil {
		s.FillPolygon(h.Capsule)
	}
	s.StampDisk(h.Center, h.Radius)
}

// Canvas is a Surface which keeps the drawn ink in a grayscale image.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img *image.Gray
	r   *raster.Rasteriser
	p   path.Data
}

// NewCanvas returns a blank width×height canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img: image.NewGray(image.Rect(0, 0, width, height)),
		r:   raster.NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)}),
	}
}

// Image returns the canvas contents. Ink is bright, the background is 0.
// The image is updated in place by later drawing operations.
func (c *Canvas) Image() *image.Gray {
	return c.img
}

// StampDisk implements the Surface interface.
func (c *Canvas) StampDisk(center vec.Vec2, radius float64) {
	c.p = path.Data{}
	c.fill(raster.Circle(&c.p, center, radius))
}

// FillPolygon implements the Surface interface.
func (c *Canvas) FillPolygon(pts []vec.Vec2) {
	c.p = path.Data{}
	c.fill(raster.Polygon(&c.p, pts))
}

// Clear implements the Surface interface.
func (c *Canvas) Clear() {
	clear(c.img.Pix)
}

// fill paints p over the existing ink, keeping the larger coverage value
// in every pixel.
func (c *Canvas) fill(p *path.Data) {
	c.r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		row := c.img.Pix[y*c.img.Stride+xMin:]
		for i, cov := range coverage {
			row[i] = max(row[i], byte(max(0, min(255, int(cov*256)))))
		}
	})
}
