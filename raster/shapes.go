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

package raster

import (
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// circleK is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const circleK = 0.5522847498

// Circle appends a closed circle to p and returns p.
// The circle is traversed with positive orientation (see [SignedArea]),
// starting from the point with the smallest y coordinate.
func Circle(p *path.Data, center vec.Vec2, radius float64) *path.Data {
	cx, cy := center.X, center.Y
	r := radius
	kr := circleK * r

	return p.
		MoveTo(vec.Vec2{X: cx, Y: cy - r}).
		CubeTo(vec.Vec2{X: cx + kr, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - kr}, vec.Vec2{X: cx + r, Y: cy}).
		CubeTo(vec.Vec2{X: cx + r, Y: cy + kr}, vec.Vec2{X: cx + kr, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}).
		CubeTo(vec.Vec2{X: cx - kr, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + kr}, vec.Vec2{X: cx - r, Y: cy}).
		CubeTo(vec.Vec2{X: cx - r, Y: cy - kr}, vec.Vec2{X: cx - kr, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}).
		Close()
}

// Polygon appends a closed polygon to p and returns p. The vertices are
// reordered if needed, so that the polygon has the same orientation as the
// circles generated by [Circle]. Polygons with fewer than three vertices are
// ignored.
func Polygon(p *path.Data, pts []vec.Vec2) *path.Data {
	if len(pts) < 3 {
		return p
	}

	if SignedArea(pts) >= 0 {
		p.MoveTo(pts[0])
		for _, pt := range pts[1:] {
			p.LineTo(pt)
		}
	} else {
		last := len(pts) - 1
		p.MoveTo(pts[last])
		for _, pt := range slices.Backward(pts[:last]) {
			p.LineTo(pt)
		}
	}
	return p.Close()
}

// SignedArea returns the shoelace area of the polygon. In device space with
// the y axis pointing down, the area is positive for polygons which appear
// clockwise on screen.
func SignedArea(pts []vec.Vec2) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
