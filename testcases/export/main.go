// Command export writes the stroke test cases to JSON, together with the
// brush geometry derived from them, for use by external reference tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"image"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string         `json:"name"`
	Width    int            `json:"width"`
	Height   int            `json:"height"`
	Radius   int            `json:"radius"`
	Points   [][2]int       `json:"points"`
	Accepted [][2]int       `json:"accepted"`
	Box      *jsonBox       `json:"box,omitempty"`
	Capsules [][][2]float64 `json:"capsules,omitempty"`
}

type jsonBox struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	accepted := tc.Accepted()
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		Radius:   tc.Radius,
		Points:   pointsToJSON(tc.Points),
		Accepted: pointsToJSON(accepted),
	}

	box := sketch.EmptyBox(tc.Width, tc.Height)
	var prev sketch.Sample
	for i, p := range accepted {
		s := sketch.Sample{X: p.X, Y: p.Y, Seq: i}
		box = box.Update(p.X, p.Y)
		if i > 0 {
			if c := sketch.Capsule(prev.Center(), s.Center(), float64(tc.Radius)); c != nil {
				poly := make([][2]float64, len(c))
				for j, v := range c {
					poly[j] = [2]float64{v.X, v.Y}
				}
				jtc.Capsules = append(jtc.Capsules, poly)
			}
		}
		prev = s
	}
	if !box.IsEmpty() {
		jtc.Box = &jsonBox{Top: box.Top, Bottom: box.Bottom, Left: box.Left, Right: box.Right}
	}
	return jtc
}

func pointsToJSON(points []image.Point) [][2]int {
	res := make([][2]int, len(points))
	for i, p := range points {
		res[i] = [2]int{p.X, p.Y}
	}
	return res
}
