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

// Package sketch turns free-hand pointer strokes into small bitmaps for a
// symbol classifier.
//
// A [Session] collects the pointer samples of one stroke, tracks their
// bounding [Box], and reports the ink each sample adds through a [Hint].
// When two consecutive samples are more than one brush diameter apart,
// [Capsule] supplies the polygon which closes the gap between their disks.
// When the stroke is committed, [Render] draws all disks and capsules on
// the canvas, crops the result to the ink, and resizes it to a
// [BitmapSize]×[BitmapSize] [Bitmap] which is passed to a [Classifier].
//
// # Units
//
// Pointer positions and the brush radius are integers in canvas pixels,
// with the origin in the top-left corner and y increasing downwards.
// A sample (x, y) stands for the pixel whose centre is at device
// coordinates (x+0.5, y+0.5); the brush disk is centred there.
// Hints and capsule vertices use these device coordinates.
// Bitmap coordinates are pixels of the 32×32 output grid, and bitmap
// intensities range from 0 (no ink) to 1.
package sketch

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
