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
	"image"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/sketch/raster"
)

// ErrBlankImage indicates an attempt to render or commit a stroke without
// any samples.
var ErrBlankImage = errors.New("blank image")

// EmptyStrokeError is returned by Render when there is no ink to render.
// It matches ErrBlankImage under errors.Is.
type EmptyStrokeError struct {
	// EmptyBox is set if samples were given but the bounding box was empty.
	EmptyBox bool
}

func (e *EmptyStrokeError) Error() string {
	if e.EmptyBox {
		return "blank image: empty bounding box"
	}
	return "blank image: stroke has no samples"
}

// Is makes errors.Is(err, ErrBlankImage) report true.
func (e *EmptyStrokeError) Is(target error) bool {
	return target == ErrBlankImage
}

// StrokePath returns the ink outline of a stroke: one disk of the given
// radius per sample and a capsule between consecutive samples which are too
// far apart for their disks to touch. All parts have the same orientation,
// so that a nonzero fill paints their union.
func StrokePath(samples []Sample, radius int) *path.Data {
	r := float64(radius)
	p := &path.Data{}
	for i, s := range samples {
		raster.Circle(p, s.Center(), r)
		if i > 0 {
			raster.Polygon(p, Capsule(samples[i-1].Center(), s.Center(), r))
		}
	}
	return p
}

// Rasterise renders the ink of a stroke onto a blank width×height canvas.
// Pixel values give the inked fraction of the pixel area, from 0 to 255.
func Rasterise(samples []Sample, radius, width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))

	r := raster.NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)})
	r.FillNonZero(StrokePath(samples, radius), func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+xMin:]
		for i, c := range coverage {
			row[i] = byte(max(0, min(255, int(c*256))))
		}
	})
	return img
}

// Render converts a finished stroke into a normalised bitmap.
//
// The stroke is rasterised on the full canvas, cropped to the bounding box
// grown by the brush radius, padded to a centred square and resized to
// BitmapSize×BitmapSize with cfg.Interpolator. When the square is larger
// than the bitmap, every bitmap pixel is raised to the strongest ink it
// covers, so that thin strokes are not faded out by the reduction.
// Finally the values are scaled according to cfg.Intensity.
//
// The box must be the box of the samples, as maintained by Box.Update.
// If there are no samples or the box is empty, Render returns an
// *EmptyStrokeError. The result only depends on the arguments.
func Render(samples []Sample, box Box, cfg Config) (*Bitmap, error) {
	if len(samples) == 0 {
		return nil, &EmptyStrokeError{}
	}
	if box.IsEmpty() {
		return nil, &EmptyStrokeError{EmptyBox: true}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	crop := box.Crop(cfg.Radius, cfg.Width, cfg.Height)
	if crop.Empty() {
		return nil, &EmptyStrokeError{EmptyBox: true}
	}
	canvas := Rasterise(samples, cfg.Radius, cfg.Width, cfg.Height)

	side := max(crop.Dx(), crop.Dy())
	square := image.NewGray(image.Rect(0, 0, side, side))
	offset := image.Pt((side-crop.Dx())/2, (side-crop.Dy())/2)
	draw.Draw(square, crop.Sub(crop.Min).Add(offset), canvas, crop.Min, draw.Src)

	small := image.NewGray(image.Rect(0, 0, BitmapSize, BitmapSize))
	cfg.interpolator().Scale(small, small.Bounds(), square, square.Bounds(), draw.Src, nil)
	if side > BitmapSize {
		poolMax(small, square)
	}

	bm := &Bitmap{}
	for y := range BitmapSize {
		row := small.Pix[y*small.Stride : y*small.Stride+BitmapSize]
		for x, v := range row {
			bm.Pix[y*BitmapSize+x] = normalise(v, cfg.Intensity)
		}
	}
	return bm, nil
}

func normalise(v uint8, scale IntensityScale) float32 {
	if scale == Binary {
		if v >= 128 {
			return 1
		}
		return 0
	}
	return float32(v) / 255
}

// poolMax raises every pixel of the BitmapSize×BitmapSize image dst to the
// largest value among the pixels of the square image src which it covers.
// Neighbouring src pixels land in the same or in neighbouring dst pixels,
// so 8-connected ink stays 8-connected and keeps its full intensity.
func poolMax(dst, src *image.Gray) {
	side := src.Bounds().Dx()
	for cy := range BitmapSize {
		y0, y1 := cy*side/BitmapSize, ((cy+1)*side+BitmapSize-1)/BitmapSize
		for cx := range BitmapSize {
			x0, x1 := cx*side/BitmapSize, ((cx+1)*side+BitmapSize-1)/BitmapSize

			m := dst.Pix[cy*dst.Stride+cx]
			for y := y0; y < y1; y++ {
				row := src.Pix[y*src.Stride+x0 : y*src.Stride+x1]
				for _, v := range row {
					m = max(m, v)
				}
			}
			dst.Pix[cy*dst.Stride+cx] = m
		}
	}
}
