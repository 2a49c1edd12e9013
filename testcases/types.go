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

// Package testcases holds recorded-style pointer strokes for testing the
// sketch pipeline.
package testcases

import (
	"image"
	"math"
)

// TestCase is one stroke as delivered by the pointer device.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Points []image.Point // pointer positions in canvas pixels, in order
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Radius int           // brush radius in pixels
}

// Accepted returns the points which are far enough from the canvas edges
// for the brush to fit. The rule is the one of sketch.Config.Accepts,
// including the stricter bottom edge.
func (tc TestCase) Accepted() []image.Point {
	var res []image.Point
	r := tc.Radius
	for _, p := range tc.Points {
		if p.X-r >= 0 && p.X+r <= tc.Width-1 && p.Y-r >= 0 && p.Y+r < tc.Height-1 {
			res = append(res, p)
		}
	}
	return res
}

// pt is a helper to create an image.Point.
func pt(x, y int) image.Point {
	return image.Point{X: x, Y: y}
}

// line returns points from (x0, y0) towards (x1, y1), step pixels apart,
// including both end points.
func line(x0, y0, x1, y1 int, step float64) []image.Point {
	dx, dy := float64(x1-x0), float64(y1-y0)
	n := max(int(math.Ceil(math.Hypot(dx, dy)/step)), 1)
	res := make([]image.Point, 0, n+1)
	for i := range n + 1 {
		t := float64(i) / float64(n)
		res = append(res, pt(x0+int(math.Round(t*dx)), y0+int(math.Round(t*dy))))
	}
	return res
}

// polyline joins lines through the given corners.
func polyline(step float64, corners ...image.Point) []image.Point {
	var res []image.Point
	for i := 1; i < len(corners); i++ {
		seg := line(corners[i-1].X, corners[i-1].Y, corners[i].X, corners[i].Y, step)
		if i > 1 {
			seg = seg[1:]
		}
		res = append(res, seg...)
	}
	return res
}

// arc returns n+1 points on a circular arc around (cx, cy), from angle
// phi0 to phi1 (radians, clockwise on screen).
func arc(cx, cy, radius, phi0, phi1 float64, n int) []image.Point {
	res := make([]image.Point, 0, n+1)
	for i := range n + 1 {
		phi := phi0 + (phi1-phi0)*float64(i)/float64(n)
		res = append(res, pt(
			int(math.Round(cx+radius*math.Cos(phi))),
			int(math.Round(cy+radius*math.Sin(phi)))))
	}
	return res
}

// mirror reflects points at the vertical line x = width/2.
func mirror(points []image.Point, width int) []image.Point {
	res := make([]image.Point, len(points))
	for i, p := range points {
		res[i] = pt(width-1-p.X, p.Y)
	}
	return res
}
