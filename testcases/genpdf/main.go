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

// Command genpdf draws the ink of every stroke test case as a vector PDF
// and renders it to PNG using Ghostscript. The images are an independent
// reference for the output of sketch.Rasterise.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/testcases"
)

func main() {
	refDir := flag.String("out", "testdata/reference", "output directory")
	noPNG := flag.Bool("pdf-only", false, "do not run Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*refDir, name+".pdf")
			pngPath := filepath.Join(*refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if *noPNG {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// 1 point = 1 canvas pixel at 72 DPI
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, so that gray levels equal ink coverage
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// canvas coordinates have y pointing down
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	page.SetFillColor(color.DeviceGray(1))

	accepted := tc.Accepted()
	samples := make([]sketch.Sample, len(accepted))
	for i, p := range accepted {
		samples[i] = sketch.Sample{X: p.X, Y: p.Y, Seq: i}
	}
	ink := sketch.StrokePath(samples, tc.Radius)

	k := 0
	for _, cmd := range ink.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(ink.Coords[k].X, ink.Coords[k].Y)
			k++
		case path.CmdLineTo:
			page.LineTo(ink.Coords[k].X, ink.Coords[k].Y)
			k++
		case path.CmdQuadTo:
			k += 2 // not produced by StrokePath
		case path.CmdCubeTo:
			c := ink.Coords[k : k+3]
			page.CurveTo(c[0].X, c[0].Y, c[1].X, c[1].Y, c[2].X, c[2].Y)
			k += 3
		case path.CmdClose:
			page.ClosePath()
		}
	}
	if len(ink.Cmds) > 0 {
		page.Fill()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 1 point = 1 pixel
	// -dGraphicsAlphaBits=4: anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
