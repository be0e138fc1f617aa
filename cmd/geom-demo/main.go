// Interactive sandbox for the geometry primitives: draws a midpoint
// circle around the screen center and the Bresenham line from the center
// to a movable cursor. Arrow keys or hjkl (plus diagonals yubn) move the
// cursor, +/- grow and shrink the circle, q or Escape quits.
package main

import (
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gridgeom/cp437"
	"github.com/lixenwraith/gridgeom/geom"
)

const (
	minRadius = 1
	maxRadius = 40
)

var (
	glyphCenter = cp437.Rune(15)  // ☼
	glyphCircle = cp437.Rune(176) // ░
	glyphLine   = cp437.Rune(250) // ·
	glyphCursor = cp437.Rune(219) // █
)

type demo struct {
	screen tcell.Screen
	center geom.Point
	cursor geom.Point
	radius int

	audioInit bool
}

func newDemo() (*demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	d := &demo{
		screen: screen,
		radius: 7,
	}
	d.recenter()
	d.cursor = d.center.Step(geom.NorthEast).Step(geom.East)

	if err := d.initAudio(); err != nil {
		// Non-fatal, the demo runs silent
		log.Printf("audio init failed: %v", err)
	}

	return d, nil
}

func (d *demo) recenter() {
	w, h := d.screen.Size()
	d.center = geom.Pt(w/2, h/2)
}

func (d *demo) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		d.audioInit = true
	}
	return err
}

func (d *demo) playTick() {
	if !d.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(40 * time.Millisecond)
	sine, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(duration, sine))
}

func (d *demo) setRadius(r int) {
	if r < minRadius || r > maxRadius {
		return
	}
	d.radius = r
	d.playTick()
}

func (d *demo) draw() {
	d.screen.Clear()

	circleStyle := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	centerStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	cursorStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)

	ring, err := geom.Circle(d.center, d.radius)
	if err == nil {
		for _, p := range ring {
			d.screen.SetContent(p.X, p.Y, glyphCircle, nil, circleStyle)
		}
	}

	for _, p := range d.center.LineTo(d.cursor) {
		d.screen.SetContent(p.X, p.Y, glyphLine, nil, lineStyle)
	}

	d.screen.SetContent(d.center.X, d.center.Y, glyphCenter, nil, centerStyle)
	d.screen.SetContent(d.cursor.X, d.cursor.Y, glyphCursor, nil, cursorStyle)

	d.screen.Show()
}

func (d *demo) moveCursor(dir geom.Direction) {
	w, h := d.screen.Size()
	next := d.cursor.Step(dir)
	if next.X < 0 || next.Y < 0 || next.X >= w || next.Y >= h {
		return
	}
	d.cursor = next
}

func (d *demo) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		d.moveCursor(geom.North)
	case tcell.KeyDown:
		d.moveCursor(geom.South)
	case tcell.KeyLeft:
		d.moveCursor(geom.West)
	case tcell.KeyRight:
		d.moveCursor(geom.East)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'h':
			d.moveCursor(geom.West)
		case 'j':
			d.moveCursor(geom.South)
		case 'k':
			d.moveCursor(geom.North)
		case 'l':
			d.moveCursor(geom.East)
		case 'y':
			d.moveCursor(geom.NorthWest)
		case 'u':
			d.moveCursor(geom.NorthEast)
		case 'b':
			d.moveCursor(geom.SouthWest)
		case 'n':
			d.moveCursor(geom.SouthEast)
		case '+', '=':
			d.setRadius(d.radius + 1)
		case '-', '_':
			d.setRadius(d.radius - 1)
		}
	}
	return true
}

func (d *demo) run() {
	for {
		d.draw()

		switch ev := d.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if !d.handleKey(ev) {
				return
			}
		case *tcell.EventResize:
			d.recenter()
			d.screen.Sync()
		}
	}
}

func main() {
	d, err := newDemo()
	if err != nil {
		log.Printf("screen init failed: %v", err)
		os.Exit(1)
	}
	defer d.screen.Fini()

	d.run()
}
