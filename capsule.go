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

import "seehuhn.de/go/geom/vec"

// Capsule returns the quadrilateral which bridges the gap between two brush
// disks of radius r centred at prev and cur.
//
// The corners are the points where the common outer tangents of the two
// circles touch them, in the order prev+n·r, cur+n·r, cur−n·r, prev−n·r
// where n is the unit normal of cur−prev. Together with the two disks the
// quadrilateral forms a capsule without holes.
//
// Capsule returns nil if the disks already touch or overlap, that is if the
// centres are at most 2r apart. This includes coincident centres.
func Capsule(prev, cur vec.Vec2, r float64) []vec.Vec2 {
	if r <= 0 {
		return nil
	}
	d := cur.Sub(prev)
	length := d.Length()
	if length <= 2*r {
		return nil
	}

	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(r)
	return []vec.Vec2{
		prev.Add(n),
		cur.Add(n),
		cur.Sub(n),
		prev.Sub(n),
	}
}
