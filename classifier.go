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
	"fmt"
	"math"
)

// Label is a symbol class known to the classifier.
// The numeric values are the output indices of the trained models.
type Label int

// The symbol classes.
const (
	Circle Label = iota
	Triangle
	Lightning
	ReversedS
	S
	W

	// NumLabels is the number of symbol classes.
	NumLabels = int(W) + 1
)

func (l Label) String() string {
	switch l {
	case Circle:
		return "circle"
	case Triangle:
		return "triangle"
	case Lightning:
		return "lightning"
	case ReversedS:
		return "reversedS"
	case S:
		return "S"
	case W:
		return "W"
	default:
		return fmt.Sprintf("Label(%d)", int(l))
	}
}

// Prediction is the answer of a classifier for one bitmap.
type Prediction struct {
	Label      Label
	Confidence float64 // in [0, 1]
}

func (p Prediction) String() string {
	return fmt.Sprintf("%s (%.3f)", p.Label, p.Confidence)
}

// Classifier assigns a symbol class to a normalised bitmap.
// Implementations wrap a trained model; the sketch package does not know
// how the model works or where it comes from.
type Classifier interface {
	Predict(bm *Bitmap) (Prediction, error)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(bm *Bitmap) (Prediction, error)

// Predict calls f(bm).
func (f ClassifierFunc) Predict(bm *Bitmap) (Prediction, error) {
	return f(bm)
}

// PredictionFromScores picks the most likely class from per-class model
// outputs, as produced by a softmax layer. Ties go to the lower label.
// The confidence is the winning score, clamped to [0, 1].
func PredictionFromScores(scores []float32) (Prediction, error) {
	if len(scores) != NumLabels {
		return Prediction{}, fmt.Errorf("got %d class scores, want %d", len(scores), NumLabels)
	}

	best := 0
	for i, s := range scores {
		if math.IsNaN(float64(s)) {
			return Prediction{}, fmt.Errorf("class score %d is NaN", i)
		}
		if s > scores[best] {
			best = i
		}
	}
	return Prediction{
		Label:      Label(best),
		Confidence: min(max(float64(scores[best]), 0), 1),
	}, nil
}
