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
	"slices"
	"testing"

	"github.com/google/uuid"

	"seehuhn.de/go/geom/vec"
)

// recorder is a Surface which remembers the calls made to it.
type recorder struct {
	disks    []vec.Vec2
	polygons [][]vec.Vec2
	clears   int
}

func (r *recorder) StampDisk(center vec.Vec2, radius float64) {
	r.disks = append(r.disks, center)
}

func (r *recorder) FillPolygon(pts []vec.Vec2) {
	r.polygons = append(r.polygons, pts)
}

func (r *recorder) Clear() {
	r.disks = nil
	r.polygons = nil
	r.clears++
}

func newTestSession(t *testing.T, opts ...Option) (*Session, *[]Notice) {
	t.Helper()
	var notices []Notice
	opts = append(opts, WithNotifier(func(n Notice) {
		notices = append(notices, n)
	}))
	s, err := NewSession(Config{Width: 64, Height: 64, Radius: 5}, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return s, &notices
}

func TestNewSession(t *testing.T) {
	s, _ := newTestSession(t)
	if s.State() != Capturing {
		t.Errorf("initial state %s", s.State())
	}
	if s.HasInk() {
		t.Error("new session has ink")
	}
	if !s.Box().IsEmpty() {
		t.Errorf("new session has box %+v", s.Box())
	}
	if s.ID() == uuid.Nil {
		t.Error("session has no ID")
	}

	other, _ := newTestSession(t)
	if other.ID() == s.ID() {
		t.Error("two sessions share an ID")
	}

	if _, err := NewSession(Config{Width: 64, Height: 64}); !errors.Is(err, ErrConfig) {
		t.Errorf("zero radius: got %v", err)
	}
}

func TestMove(t *testing.T) {
	surf := &recorder{}
	s, notices := newTestSession(t, WithSurface(surf))

	hint, err := s.Move(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if hint.Capsule != nil {
		t.Error("first sample has a capsule")
	}
	if hint.Center != (vec.Vec2{X: 10.5, Y: 10.5}) || hint.Radius != 5 {
		t.Errorf("unexpected hint %+v", hint)
	}

	hint, err = s.Move(10, 30)
	if err != nil {
		t.Fatal(err)
	}
	if len(hint.Capsule) != 4 {
		t.Errorf("gap of 20 pixels: got capsule %v", hint.Capsule)
	}

	hint, err = s.Move(12, 32)
	if err != nil {
		t.Fatal(err)
	}
	if hint.Capsule != nil {
		t.Error("overlapping disks got a capsule")
	}

	samples := s.Samples()
	want := []Sample{{10, 10, 0}, {10, 30, 1}, {12, 32, 2}}
	if !slices.Equal(samples, want) {
		t.Errorf("got samples %v, want %v", samples, want)
	}
	if box := s.Box(); box != (Box{Top: 10, Bottom: 32, Left: 10, Right: 12}) {
		t.Errorf("got box %+v", box)
	}

	if len(surf.disks) != 3 || len(surf.polygons) != 1 {
		t.Errorf("surface got %d disks and %d polygons", len(surf.disks), len(surf.polygons))
	}
	if len(*notices) != 0 {
		t.Errorf("unexpected notices %v", *notices)
	}
}

func TestMoveOutOfBounds(t *testing.T) {
	surf := &recorder{}
	s, notices := newTestSession(t, WithSurface(surf))

	for _, p := range [][2]int{{4, 30}, {59, 30}, {30, 58}, {30, 2}} {
		if _, err := s.Move(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Move(%d, %d): got %v", p[0], p[1], err)
		}
	}
	if s.HasInk() || !s.Box().IsEmpty() || len(surf.disks) != 0 {
		t.Error("rejected samples changed the session")
	}
	if len(*notices) != 0 {
		t.Errorf("out of bounds samples gave notices %v", *notices)
	}

	// accepted samples on both sides of a rejected one are bridged
	if !s.Accept(10, 30) || s.Accept(2, 30) || !s.Accept(40, 30) {
		t.Fatal("unexpected acceptance")
	}
	if n := len(surf.polygons); n != 1 {
		t.Errorf("got %d capsules, want 1", n)
	}
}

func TestFrozen(t *testing.T) {
	surf := &recorder{}
	s, notices := newTestSession(t, WithSurface(surf))

	s.Accept(20, 20)
	s.SetState(Frozen)
	if s.State() != Frozen {
		t.Fatalf("state %s", s.State())
	}

	if _, err := s.Move(30, 30); !errors.Is(err, ErrFrozen) {
		t.Errorf("Move while frozen: got %v", err)
	}
	if _, err := s.Commit(); !errors.Is(err, ErrFrozen) {
		t.Errorf("Commit while frozen: got %v", err)
	}
	if got := s.Samples(); len(got) != 1 {
		t.Errorf("frozen session has samples %v", got)
	}
	want := []Notice{NoticeFrozen, NoticeSetClass}
	if !slices.Equal(*notices, want) {
		t.Errorf("got notices %v, want %v", *notices, want)
	}

	s.SetState(Capturing)
	if !s.Accept(30, 30) {
		t.Error("sample rejected after thawing")
	}
}

func TestCommitEmpty(t *testing.T) {
	surf := &recorder{}
	s, notices := newTestSession(t, WithSurface(surf))

	_, err := s.Commit()
	if !errors.Is(err, ErrBlankImage) {
		t.Errorf("got %v, want ErrBlankImage", err)
	}
	if !slices.Equal(*notices, []Notice{NoticeBlankImage}) {
		t.Errorf("got notices %v", *notices)
	}
	if surf.clears != 0 {
		t.Error("blank commit cleared the surface")
	}
}

func TestCommit(t *testing.T) {
	surf := &recorder{}
	var seen *Bitmap
	clf := ClassifierFunc(func(bm *Bitmap) (Prediction, error) {
		seen = bm
		return Prediction{Label: Triangle, Confidence: 0.75}, nil
	})
	s, notices := newTestSession(t, WithSurface(surf), WithClassifier(clf))

	for y := 10; y <= 50; y += 4 {
		s.Accept(20, y)
	}
	samples, box := s.Samples(), s.Box()

	res, err := s.Commit()
	if err != nil {
		t.Fatal(err)
	}
	if !res.Classified || res.Prediction.Label != Triangle || res.Prediction.Confidence != 0.75 {
		t.Errorf("unexpected result %+v", res)
	}
	if seen != res.Bitmap {
		t.Error("classifier saw a different bitmap")
	}

	want, err := Render(samples, box, s.Config())
	if err != nil {
		t.Fatal(err)
	}
	if want.Pix != res.Bitmap.Pix {
		t.Error("committed bitmap differs from Render")
	}

	// the session is ready for the next stroke
	if s.HasInk() || !s.Box().IsEmpty() || surf.clears != 1 {
		t.Error("session not reset after commit")
	}
	if len(*notices) != 0 {
		t.Errorf("unexpected notices %v", *notices)
	}
}

func TestCommitWithoutClassifier(t *testing.T) {
	s, _ := newTestSession(t)
	s.Accept(30, 30)
	res, err := s.Commit()
	if err != nil {
		t.Fatal(err)
	}
	if res.Classified || res.Bitmap == nil {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestCommitClassifierError(t *testing.T) {
	errModel := errors.New("model not loaded")
	clf := ClassifierFunc(func(*Bitmap) (Prediction, error) {
		return Prediction{}, errModel
	})
	surf := &recorder{}
	s, _ := newTestSession(t, WithSurface(surf), WithClassifier(clf))
	s.Accept(30, 30)
	s.Accept(32, 31)

	if _, err := s.Commit(); !errors.Is(err, errModel) {
		t.Fatalf("got %v, want %v", err, errModel)
	}
	if len(s.Samples()) != 2 || surf.clears != 0 {
		t.Error("stroke discarded after classifier error")
	}

	// swapping the model allows to retry
	s.SetClassifier(ClassifierFunc(func(*Bitmap) (Prediction, error) {
		return Prediction{Label: W, Confidence: 1}, nil
	}))
	res, err := s.Commit()
	if err != nil {
		t.Fatal(err)
	}
	if res.Prediction.Label != W {
		t.Errorf("got %s", res.Prediction)
	}
}

func TestCancel(t *testing.T) {
	surf := &recorder{}
	s, _ := newTestSession(t, WithSurface(surf))
	s.Accept(30, 30)
	s.Accept(40, 40)

	s.Cancel()
	if s.HasInk() || !s.Box().IsEmpty() || len(surf.disks) != 0 {
		t.Error("Cancel left ink behind")
	}
	if s.State() != Capturing {
		t.Errorf("state %s after Cancel", s.State())
	}

	// sequence numbers restart
	s.Accept(20, 20)
	if got := s.Samples(); got[0].Seq != 0 {
		t.Errorf("got seq %d, want 0", got[0].Seq)
	}
}

func TestSamplesIsCopy(t *testing.T) {
	s, _ := newTestSession(t)
	s.Accept(30, 30)
	got := s.Samples()
	got[0].X = 0
	if s.Samples()[0].X != 30 {
		t.Error("Samples exposes internal state")
	}
}

func TestCaptureStateString(t *testing.T) {
	if s := Frozen.String(); s != "frozen" {
		t.Errorf("got %q", s)
	}
	if s := CaptureState(5).String(); s != "CaptureState(5)" {
		t.Errorf("got %q", s)
	}
}
