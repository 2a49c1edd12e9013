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
	"math"
	"strings"
)

// BitmapSize is the width and height of a normalised bitmap, in pixels.
const BitmapSize = 32

// Bitmap is a normalised stroke image, ready for the classifier.
// Pix holds one intensity in [0, 1] per pixel in row-major order;
// 0 means no ink.
type Bitmap struct {
	Pix [BitmapSize * BitmapSize]float32
}

// At returns the intensity of pixel (x, y).
func (b *Bitmap) At(x, y int) float32 {
	return b.Pix[y*BitmapSize+x]
}

// Ink returns the sum of all intensities.
func (b *Bitmap) Ink() float64 {
	var sum float64
	for _, v := range b.Pix {
		sum += float64(v)
	}
	return sum
}

// Gray converts the bitmap to an 8-bit image, with ink shown as 255.
func (b *Bitmap) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, BitmapSize, BitmapSize))
	for i, v := range b.Pix {
		img.Pix[i] = uint8(math.Round(float64(v) * 255))
	}
	return img
}

// String draws the bitmap as text, one line per row.
func (b *Bitmap) String() string {
	const shades = " .:+#"

	var sb strings.Builder
	sb.Grow(BitmapSize * (BitmapSize + 1))
	for y := range BitmapSize {
		for x := range BitmapSize {
			k := int(b.At(x, y) * float32(len(shades)-1))
			sb.WriteByte(shades[min(max(k, 0), len(shades)-1)])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
