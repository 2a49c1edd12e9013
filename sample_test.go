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
	"maps"
	"math/rand/v2"
	"slices"
	"testing"

	"seehuhn.de/go/sketch/testcases"
)

// strokeOf converts the accepted points of a test case into samples and
// their bounding box.
func strokeOf(tc testcases.TestCase) ([]Sample, Box) {
	box := EmptyBox(tc.Width, tc.Height)
	var samples []Sample
	for i, p := range tc.Accepted() {
		samples = append(samples, Sample{X: p.X, Y: p.Y, Seq: i})
		box = box.Update(p.X, p.Y)
	}
	return samples, box
}

// configOf returns the default configuration, adjusted to the canvas and
// brush of a test case.
func configOf(tc testcases.TestCase) Config {
	cfg := DefaultConfig()
	cfg.Width = tc.Width
	cfg.Height = tc.Height
	cfg.Radius = tc.Radius
	return cfg
}

// forAllCases runs fn as a subtest for every test case.
func forAllCases(t *testing.T, fn func(t *testing.T, tc testcases.TestCase)) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				fn(t, tc)
			})
		}
	}
}

func TestEmptyBox(t *testing.T) {
	b := EmptyBox(640, 480)
	want := Box{Top: 480, Bottom: -1, Left: 640, Right: -1}
	if b != want {
		t.Errorf("got %+v, want %+v", b, want)
	}
	if !b.IsEmpty() {
		t.Error("EmptyBox is not empty")
	}
	if crop := b.Crop(5, 640, 480); !crop.Empty() {
		t.Errorf("empty box has crop %v", crop)
	}
}

func TestBoxSinglePoint(t *testing.T) {
	b := EmptyBox(100, 100).Update(50, 40)
	want := Box{Top: 40, Bottom: 40, Left: 50, Right: 50}
	if b != want {
		t.Errorf("got %+v, want %+v", b, want)
	}
	if b.IsEmpty() {
		t.Error("box with one sample reported as empty")
	}
}

// TestBoxIsExactExtent checks that the box is ordered and equals the
// minimum and maximum of the samples.
func TestBoxIsExactExtent(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		const w, h = 300, 200
		b := EmptyBox(w, h)
		minX, maxX, minY, maxY := w, -1, h, -1
		for range 1 + rng.IntN(20) {
			x, y := rng.IntN(w), rng.IntN(h)
			b = b.Update(x, y)
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)

			if b.Top > b.Bottom || b.Left > b.Right {
				t.Fatalf("box %+v is not ordered", b)
			}
		}
		want := Box{Top: minY, Bottom: maxY, Left: minX, Right: maxX}
		if b != want {
			t.Errorf("got %+v, want %+v", b, want)
		}
	}
}

func TestBoxCrop(t *testing.T) {
	cases := []struct {
		box  Box
		r    int
		want image.Rectangle
	}{
		{Box{Top: 20, Bottom: 30, Left: 10, Right: 40}, 5, image.Rect(5, 15, 46, 36)},
		{Box{Top: 2, Bottom: 2, Left: 1, Right: 1}, 5, image.Rect(0, 0, 7, 8)},
		{Box{Top: 60, Bottom: 62, Left: 61, Right: 63}, 5, image.Rect(56, 55, 64, 64)},
	}
	for _, c := range cases {
		got := c.box.Crop(c.r, 64, 64)
		if got != c.want {
			t.Errorf("%+v.Crop(%d): got %v, want %v", c.box, c.r, got, c.want)
		}
	}
}

func TestSampleCenter(t *testing.T) {
	c := Sample{X: 3, Y: 7}.Center()
	if c.X != 3.5 || c.Y != 7.5 {
		t.Errorf("got %v, want (3.5, 7.5)", c)
	}
}

func TestStrokeBoxes(t *testing.T) {
	forAllCases(t, func(t *testing.T, tc testcases.TestCase) {
		samples, box := strokeOf(tc)
		if len(samples) == 0 {
			if !box.IsEmpty() {
				t.Errorf("box %+v without samples", box)
			}
			return
		}
		for _, s := range samples {
			if s.X < box.Left || s.X > box.Right || s.Y < box.Top || s.Y > box.Bottom {
				t.Errorf("sample %+v outside box %+v", s, box)
			}
		}
	})
}
