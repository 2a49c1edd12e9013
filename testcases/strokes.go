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

package testcases

import (
	"image"
	"math"
)

// dotCases are strokes where the pointer did not move.
var dotCases = []TestCase{
	{
		Name:   "center",
		Points: []image.Point{pt(32, 32)},
		Width:  64,
		Height: 64,
		Radius: 5,
	},
	{
		Name:   "top_left",
		Points: []image.Point{pt(5, 5)},
		Width:  64,
		Height: 64,
		Radius: 5,
	},
	{
		Name:   "repeated",
		Points: []image.Point{pt(20, 40), pt(20, 40), pt(20, 40), pt(20, 40)},
		Width:  64,
		Height: 64,
		Radius: 5,
	},
}

// gapCases contain pointer samples further apart than the brush diameter,
// as produced by fast mouse movements.
var gapCases = []TestCase{
	{
		Name:   "vertical",
		Points: []image.Point{pt(10, 10), pt(10, 30)},
		Width:  64,
		Height: 64,
		Radius: 5,
	},
	{
		Name:   "touching",
		Points: []image.Point{pt(10, 10), pt(20, 10)},
		Width:  64,
		Height: 64,
		Radius: 5,
	},
	{
		Name:   "horizontal_slow",
		Points: line(10, 32, 54, 32, 3),
		Width:  64,
		Height: 64,
		Radius: 5,
	},
	{
		Name:   "diagonal_fast",
		Points: []image.Point{pt(8, 8), pt(30, 30), pt(55, 50)},
		Width:  64,
		Height: 64,
		Radius: 4,
	},
	{
		Name:   "zigzag_fast",
		Points: polyline(20, pt(10, 10), pt(110, 30), pt(10, 60), pt(110, 110)),
		Width:  128,
		Height: 128,
		Radius: 3,
	},
}

// edgeCases contain samples close to or beyond the canvas border.
var edgeCases = []TestCase{
	{
		Name:   "right_boundary",
		Points: []image.Point{pt(50, 30), pt(58, 30), pt(59, 30)},
		Width:  64,
		Height: 64,
		Radius: 5,
	},
	{
		Name:   "bottom_boundary",
		Points: []image.Point{pt(30, 50), pt(30, 57), pt(30, 58)},
		Width:  64,
		Height: 64,
		Radius: 5,
	},
	{
		Name:   "outside",
		Points: []image.Point{pt(2, 2), pt(32, 32), pt(70, 10), pt(32, 40), pt(-3, 40)},
		Width:  64,
		Height: 64,
		Radius: 5,
	},
}

// symbolCases are drawings of the symbols the classifier knows.
var symbolCases = []TestCase{
	{
		Name:   "circle",
		Points: arc(64, 64, 40, -math.Pi/2, 3*math.Pi/2, 40),
		Width:  128,
		Height: 128,
		Radius: 4,
	},
	{
		Name:   "triangle",
		Points: polyline(6, pt(64, 20), pt(104, 100), pt(24, 100), pt(64, 20)),
		Width:  128,
		Height: 128,
		Radius: 4,
	},
	{
		Name:   "lightning",
		Points: polyline(8, pt(80, 15), pt(45, 65), pt(80, 65), pt(45, 112)),
		Width:  128,
		Height: 128,
		Radius: 4,
	},
	{
		Name:   "s",
		Points: letterS(),
		Width:  128,
		Height: 128,
		Radius: 4,
	},
	{
		Name:   "reversed_s",
		Points: mirror(letterS(), 128),
		Width:  128,
		Height: 128,
		Radius: 4,
	},
	{
		Name:   "w",
		Points: polyline(10, pt(20, 25), pt(40, 105), pt(64, 50), pt(88, 105), pt(108, 25)),
		Width:  128,
		Height: 128,
		Radius: 4,
	},
}

// letterS draws an S from the upper right to the lower left, as two arcs
// meeting at the canvas centre.
func letterS() []image.Point {
	upper := arc(64, 44, 20, -math.Pi/4, -3*math.Pi/2, 24)
	lower := arc(64, 84, 20, -math.Pi/2, 3*math.Pi/4, 24)
	return append(upper, lower[1:]...)
}

// largeCases span most of a full-size canvas, so that the stroke is reduced
// by a large factor on its way to the bitmap.
var largeCases = []TestCase{
	{
		Name:   "default_diagonal",
		Points: line(20, 20, 480, 480, 8),
		Width:  500,
		Height: 500,
		Radius: 10,
	},
	{
		Name:   "default_lightning",
		Points: polyline(12, pt(320, 40), pt(170, 250), pt(330, 250), pt(180, 460)),
		Width:  500,
		Height: 500,
		Radius: 10,
	},
	{
		Name:   "thin_diagonal",
		Points: line(20, 20, 480, 480, 3),
		Width:  500,
		Height: 500,
		Radius: 1,
	},
	{
		Name:   "thin_circle",
		Points: arc(250, 250, 220, 0, 2*math.Pi, 200),
		Width:  500,
		Height: 500,
		Radius: 1,
	},
	{
		Name:   "thin_w",
		Points: polyline(5, pt(30, 40), pt(140, 460), pt(250, 150), pt(360, 460), pt(470, 40)),
		Width:  500,
		Height: 500,
		Radius: 2,
	},
}
