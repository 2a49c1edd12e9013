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

// Command sketchterm captures strokes drawn with the mouse in a terminal.
// Every terminal cell is one canvas pixel.  Releasing the mouse button
// commits the stroke and shows the resulting 32x32 bitmap.
//
// Keys: f toggles the frozen state, c cancels the current stroke,
// q or Esc quits.
//
// No classifier is installed, so committed strokes are shown as bitmaps
// only. Programs which embed a model pass it to sketch.NewSession with
// sketch.WithClassifier and read the label from sketch.Result.Prediction.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"seehuhn.de/go/sketch"
)

const statusLines = 1

func main() {
	radius := flag.Int("radius", 1, "brush radius in cells")
	binary := flag.Bool("binary", false, "threshold the bitmap to 0 and 1")
	logFile := flag.String("log", "", "write a debug log to this file")
	flag.Parse()

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		sketch.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	app, err := newApp(*radius, *binary)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	app.run()
	app.screen.Fini()

	if app.last != nil {
		fmt.Print(app.last)
	}
}

type app struct {
	screen  tcell.Screen
	session *sketch.Session
	canvas  *sketch.Canvas

	drawing bool
	status  string
	last    *sketch.Bitmap
}

func newApp(radius int, binary bool) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	w, h := screen.Size()
	cfg := sketch.DefaultConfig()
	cfg.Width = w
	cfg.Height = h - statusLines
	cfg.Radius = radius
	if binary {
		cfg.Intensity = sketch.Binary
	}

	a := &app{
		screen: screen,
		canvas: sketch.NewCanvas(cfg.Width, cfg.Height),
	}
	a.session, err = sketch.NewSession(cfg,
		sketch.WithSurface(a.canvas),
		sketch.WithNotifier(func(n sketch.Notice) { a.status = string(n) }))
	if err != nil {
		screen.Fini()
		return nil, err
	}
	a.status = "draw with the mouse; f: freeze, c: cancel, q: quit"
	return a, nil
}

func (a *app) run() {
	a.draw()
	for {
		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if !a.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			a.handleMouse(ev)
		case *tcell.EventResize:
			a.screen.Sync()
		case nil:
			return
		}
		a.draw()
	}
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}
	switch ev.Rune() {
	case 'q':
		return false
	case 'f':
		if a.session.State() == sketch.Frozen {
			a.session.SetState(sketch.Capturing)
		} else {
			a.session.SetState(sketch.Frozen)
		}
		a.status = "state: " + a.session.State().String()
	case 'c':
		a.drawing = false
		a.session.Cancel()
		a.status = "stroke cancelled"
	}
	return true
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed:
		a.drawing = true
		_, err := a.session.Move(x, y)
		if errors.Is(err, sketch.ErrOutOfBounds) {
			a.status = fmt.Sprintf("(%d, %d) is too close to the edge", x, y)
		}
	case a.drawing:
		a.drawing = false
		res, err := a.session.Commit()
		if err != nil {
			a.status = err.Error()
			return
		}
		a.last = res.Bitmap
		a.status = fmt.Sprintf("committed, ink %.1f", res.Bitmap.Ink())
	}
}

func (a *app) draw() {
	a.screen.Clear()

	img := a.canvas.Image()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r := shade(img.GrayAt(x, y).Y); r != ' ' {
				a.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			}
		}
	}

	// the last bitmap goes into the top right corner, if it fits
	if a.last != nil && b.Dx() >= 2*sketch.BitmapSize && b.Dy() > sketch.BitmapSize {
		style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
		x0 := b.Max.X - sketch.BitmapSize
		for y, line := range strings.Split(a.last.String(), "\n") {
			for x, r := range line {
				a.screen.SetContent(x0+x, y, r, nil, style)
			}
		}
	}

	status := fmt.Sprintf("[%s] %s", a.session.State(), a.status)
	style := tcell.StyleDefault.Reverse(true)
	w, _ := a.screen.Size()
	for x := range w {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		a.screen.SetContent(x, b.Max.Y, r, nil, style)
	}

	a.screen.Show()
}

func shade(v uint8) rune {
	switch {
	case v >= 192:
		return '█'
	case v >= 96:
		return '▓'
	case v >= 32:
		return '░'
	default:
		return ' '
	}
}
