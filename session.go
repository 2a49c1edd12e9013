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
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
)

// CaptureState controls whether a Session accepts pointer input.
type CaptureState int

const (
	// Capturing is the initial state: pointer motion adds ink.
	Capturing CaptureState = iota

	// Frozen ignores all pointer input, for example while the caller
	// asks for the class of the previous symbol.
	Frozen
)

func (s CaptureState) String() string {
	switch s {
	case Capturing:
		return "capturing"
	case Frozen:
		return "frozen"
	default:
		return fmt.Sprintf("CaptureState(%d)", int(s))
	}
}

var (
	// ErrFrozen is returned for input which arrives while the session is
	// Frozen.
	ErrFrozen = errors.New("input rejected while frozen")

	// ErrOutOfBounds is returned for samples where the brush would leave
	// the canvas.
	ErrOutOfBounds = errors.New("brush outside canvas")
)

// Result is the outcome of a successful commit.
type Result struct {
	Bitmap *Bitmap

	// Prediction is only valid if Classified is true.
	Prediction Prediction
	Classified bool
}

// Session captures one stroke at a time and hands finished strokes to the
// classifier.
//
// A Session is not safe for concurrent use. All methods are expected to
// be called from the goroutine which handles input events.
type Session struct {
	cfg        Config
	id         uuid.UUID
	log        *slog.Logger
	state      CaptureState
	classifier Classifier
	surface    Surface
	notify     Notifier

	samples []Sample
	box     Box
}

// Option configures a Session.
type Option func(*Session)

// WithClassifier sets the classifier used by Commit.
func WithClassifier(c Classifier) Option {
	return func(s *Session) { s.classifier = c }
}

// WithSurface sets the surface which receives drawing hints.
func WithSurface(surf Surface) Option {
	return func(s *Session) { s.surface = surf }
}

// WithNotifier sets the function which receives user notices.
func WithNotifier(n Notifier) Option {
	return func(s *Session) { s.notify = n }
}

// NewSession returns a session in the Capturing state with an empty stroke.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg: cfg,
		id:  uuid.New(),
		box: EmptyBox(cfg.Width, cfg.Height),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = Logger().With(slog.String("session", s.id.String()))
	s.log.Debug("new session",
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.Int("radius", cfg.Radius))
	return s, nil
}

// ID returns the identifier used for the session in log messages.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// State returns the current capture state.
func (s *Session) State() CaptureState {
	return s.state
}

// SetState switches between capturing and frozen input.
// The current stroke is kept.
func (s *Session) SetState(state CaptureState) {
	if state != s.state {
		s.log.Debug("capture state", slog.String("from", s.state.String()), slog.String("to", state.String()))
	}
	s.state = state
}

// SetClassifier replaces the classifier, for example after the user picked
// a different model. Passing nil disables classification.
func (s *Session) SetClassifier(c Classifier) {
	s.classifier = c
}

// HasInk reports whether the current stroke has at least one sample.
func (s *Session) HasInk() bool {
	return len(s.samples) > 0
}

// Samples returns a copy of the samples of the current stroke.
func (s *Session) Samples() []Sample {
	return slices.Clone(s.samples)
}

// Box returns the bounding box of the current stroke.
func (s *Session) Box() Box {
	return s.box
}

// Move handles pointer motion with the button held down, at canvas pixel
// (x, y).
//
// In the Frozen state, Move sends NoticeFrozen and returns ErrFrozen.
// Samples where the brush would leave the canvas are dropped with
// ErrOutOfBounds; no notice is sent for these. Otherwise the sample is
// appended to the stroke and the ink it adds is returned and forwarded to
// the surface.
func (s *Session) Move(x, y int) (Hint, error) {
	if s.state != Capturing {
		s.send(NoticeFrozen)
		return Hint{}, ErrFrozen
	}
	if !s.cfg.Accepts(x, y) {
		return Hint{}, ErrOutOfBounds
	}

	sample := Sample{X: x, Y: y, Seq: len(s.samples)}
	s.box = s.box.Update(x, y)

	hint := Hint{
		Center: sample.Center(),
		Radius: float64(s.cfg.Radius),
	}
	if n := len(s.samples); n > 0 {
		hint.Capsule = Capsule(s.samples[n-1].Center(), hint.Center, hint.Radius)
	}
	s.samples = append(s.samples, sample)

	if s.surface != nil {
		hint.Draw(s.surface)
	}
	s.log.Debug("sample", slog.Int("x", x), slog.Int("y", y), slog.Int("seq", sample.Seq))
	return hint, nil
}

// Accept is like Move, but only reports whether the sample was added.
func (s *Session) Accept(x, y int) bool {
	_, err := s.Move(x, y)
	return err == nil
}

// Commit finishes the current stroke, normally when the pointer button is
// released.
//
// In the Frozen state, Commit sends NoticeSetClass and returns ErrFrozen.
// If the stroke has no samples, Commit sends NoticeBlankImage and returns
// ErrBlankImage. Otherwise the stroke is rendered and, if a classifier is
// set, classified. On success the stroke is discarded and the surface is
// cleared. If the classifier fails, the stroke is kept so that the commit
// can be retried.
func (s *Session) Commit() (Result, error) {
	if s.state != Capturing {
		s.send(NoticeSetClass)
		return Result{}, ErrFrozen
	}
	if !s.HasInk() {
		s.send(NoticeBlankImage)
		return Result{}, ErrBlankImage
	}

	bm, err := Render(s.samples, s.box, s.cfg)
	if err != nil {
		return Result{}, err
	}
	res := Result{Bitmap: bm}

	if s.classifier != nil {
		pred, err := s.classifier.Predict(bm)
		if err != nil {
			s.log.Warn("classifier failed", slog.Any("error", err))
			return Result{}, fmt.Errorf("classify stroke: %w", err)
		}
		res.Prediction = pred
		res.Classified = true
	}

	attrs := []any{slog.Int("samples", len(s.samples))}
	if res.Classified {
		attrs = append(attrs,
			slog.String("label", res.Prediction.Label.String()),
			slog.Float64("confidence", res.Prediction.Confidence))
	}
	s.log.Info("stroke committed", attrs...)

	s.reset()
	return res, nil
}

// Cancel discards the current stroke and clears the surface.
func (s *Session) Cancel() {
	s.reset()
}

// reset empties the sample buffer and the bounding box together.
func (s *Session) reset() {
	s.samples = nil
	s.box = EmptyBox(s.cfg.Width, s.cfg.Height)
	if s.surface != nil {
		s.surface.Clear()
	}
}

func (s *Session) send(n Notice) {
	s.log.Info(string(n), slog.String("state", s.state.String()))
	if s.notify != nil {
		s.notify(n)
	}
}
