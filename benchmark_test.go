package sketch

import (
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/sketch/testcases"
)

// BenchmarkRender measures the conversion of a finished stroke to a
// bitmap, for canvases of different sizes.
func BenchmarkRender(b *testing.B) {
	for _, size := range []int{128, 500, 1000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			cfg := DefaultConfig()
			cfg.Width, cfg.Height = size, size

			box := EmptyBox(size, size)
			var samples []Sample
			for _, p := range ring(size, cfg.Radius) {
				samples = append(samples, Sample{X: p[0], Y: p[1], Seq: len(samples)})
				box = box.Update(p[0], p[1])
			}

			b.ReportAllocs()
			for b.Loop() {
				if _, err := Render(samples, box, cfg); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSessionMove measures the per-sample cost of capturing a stroke
// with a live canvas attached.
func BenchmarkSessionMove(b *testing.B) {
	tc := testcases.All["symbol"][0]
	cfg := configOf(tc)
	canvas := NewCanvas(cfg.Width, cfg.Height)
	s, err := NewSession(cfg, WithSurface(canvas))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		for _, p := range tc.Points {
			s.Accept(p.X, p.Y)
		}
		s.Cancel()
	}
}

// ring returns sample positions on a circle filling most of a size x size
// canvas, about one radius apart.
func ring(size, radius int) [][2]int {
	c := size / 2
	rr := size/2 - 2*radius
	var res [][2]int
	for x := -rr; x <= rr; x += radius {
		for _, sign := range []int{-1, 1} {
			y := sign * int(math.Sqrt(float64(rr*rr-x*x)))
			res = append(res, [2]int{c + x, c + y})
		}
	}
	return res
}
