package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"circed/circuit"
	"circed/render"
)

var (
	styleDefault  = tcell.StyleDefault
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleWire     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDraft    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStatus   = tcell.StyleDefault.Reverse(true)
)

func (a *App) draw() {
	a.screen.Clear()
	scene := render.View(a.ed.Circuit())

	for _, w := range scene.Wires {
		style := styleWire
		if a.selected == w.ID {
			style = styleSelected
		}
		a.drawPolyline(w.Points, style)
	}
	if draft := a.ed.DraftPath(); draft != nil {
		pts := make([]circuit.Point, len(draft))
		for i, p := range draft {
			pts[i] = p.Pos()
		}
		a.drawPolyline(pts, styleDraft)
	}
	for _, comp := range scene.Components {
		a.drawComponent(comp)
	}
	for _, comp := range scene.Components {
		for _, t := range comp.Terminals {
			a.drawTerminal(t)
		}
	}
	a.drawStatus()
}

// drawPolyline walks the segments cell by cell, picking the box-drawing
// rune from the travel direction and turning corners where it changes.
func (a *App) drawPolyline(points []circuit.Point, style tcell.Style) {
	if len(points) < 2 {
		return
	}
	for i := 0; i < len(points)-1; i++ {
		x0, y0 := cellAt(points[i])
		x1, y1 := cellAt(points[i+1])
		a.drawSegment(x0, y0, x1, y1, style)
	}
	// Corner runes on top of the straight runs.
	for i := 1; i < len(points)-1; i++ {
		x, y := cellAt(points[i])
		in := cellDirection(points[i-1], points[i])
		out := cellDirection(points[i], points[i+1])
		if r := cornerRune(in, out); r != 0 {
			a.screen.SetContent(x, y, r, nil, style)
		}
	}
	sx, sy := cellAt(points[0])
	ex, ey := cellAt(points[len(points)-1])
	a.screen.SetContent(sx, sy, '●', nil, style)
	a.screen.SetContent(ex, ey, '●', nil, style)
}

func (a *App) drawSegment(x0, y0, x1, y1 int, style tcell.Style) {
	if y0 == y1 {
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			a.screen.SetContent(x, y0, '─', nil, style)
		}
		return
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		a.screen.SetContent(x0, y, '│', nil, style)
	}
}

// cellDirection is the travel direction from a to b along the segment's
// axis.
func cellDirection(a, b circuit.Point) circuit.Direction {
	if b.X != a.X {
		if b.X > a.X {
			return circuit.Right
		}
		return circuit.Left
	}
	if b.Y >= a.Y {
		return circuit.Down
	}
	return circuit.Up
}

func cornerRune(in, out circuit.Direction) rune {
	switch {
	case in == out:
		return 0
	case (in == circuit.Right && out == circuit.Down) || (in == circuit.Up && out == circuit.Left):
		return '┐'
	case (in == circuit.Right && out == circuit.Up) || (in == circuit.Down && out == circuit.Left):
		return '┘'
	case (in == circuit.Left && out == circuit.Down) || (in == circuit.Up && out == circuit.Right):
		return '┌'
	case (in == circuit.Left && out == circuit.Up) || (in == circuit.Down && out == circuit.Right):
		return '└'
	}
	return '+'
}

func (a *App) drawComponent(c render.ComponentView) {
	style := componentStyle(c)
	if a.selected == c.ID {
		style = styleSelected
	}

	x0, y0 := cellAt(c.Bounds.Min)
	x1, y1 := cellAt(c.Bounds.Max)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	drawBox(a.screen, x0, y0, x1, y1, style)

	label := componentLabel(c)
	cx := (x0+x1)/2 - len(label)/2
	cy := (y0 + y1) / 2
	drawText(a.screen, cx, cy, label, style)
}

func componentStyle(c render.ComponentView) tcell.Style {
	switch c.Kind {
	case circuit.KindBattery:
		return styleDefault.Foreground(tcell.ColorOlive)
	case circuit.KindLiIonCell:
		return styleDefault.Foreground(tcell.ColorSilver)
	case circuit.KindLED:
		color := tcell.ColorRed
		switch c.Color {
		case "green":
			color = tcell.ColorGreen
		case "blue":
			color = tcell.ColorBlue
		case "yellow":
			color = tcell.ColorYellow
		}
		s := styleDefault.Foreground(color)
		if c.On {
			s = s.Bold(true)
		}
		return s
	}
	return styleDefault
}

func componentLabel(c render.ComponentView) string {
	switch c.Kind {
	case circuit.KindBattery:
		return fmt.Sprintf("BAT %gV", c.Voltage)
	case circuit.KindLiIonCell:
		return fmt.Sprintf("CELL %gV", c.Voltage)
	case circuit.KindLED:
		if c.On {
			return "LED *"
		}
		return "LED"
	}
	return string(c.Kind)
}

func (a *App) drawTerminal(t render.TerminalView) {
	style := styleDefault.Foreground(tcell.ColorBlue)
	switch {
	case t.Connected:
		style = styleDefault.Foreground(tcell.ColorGreen)
	case t.Name == circuit.TerminalPositive:
		style = styleDefault.Foreground(tcell.ColorRed)
	case t.Name == circuit.TerminalNegative:
		style = styleDefault.Foreground(tcell.ColorNavy)
	}
	x, y := cellAt(t.Position)
	a.screen.SetContent(x, y, 'o', nil, style)
}

func (a *App) drawStatus() {
	w, h := a.screen.Size()
	for x := 0; x < w; x++ {
		a.screen.SetContent(x, h-1, ' ', nil, styleStatus)
		a.screen.SetContent(x, h-2, ' ', nil, styleStatus)
	}

	name := a.filename
	if name == "" {
		name = "[untitled]"
	}
	mode := "select"
	switch {
	case a.ed.Drawing() || a.wiring:
		mode = "wire"
	case a.tool != "":
		mode = "place " + a.tool.DisplayName()
	}
	left := fmt.Sprintf(" %s  |  %s", name, mode)
	if a.message != "" {
		left += "  |  " + a.message
	}
	drawText(a.screen, 0, h-2, left, styleStatus)
	drawText(a.screen, 0, h-1, " b/c/l place  w wire  r rotate  d delete  u undo  U redo  s save  q quit", styleStatus)
}

func drawBox(s tcell.Screen, x0, y0, x1, y1 int, style tcell.Style) {
	for x := x0 + 1; x < x1; x++ {
		s.SetContent(x, y0, '─', nil, style)
		s.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		s.SetContent(x0, y, '│', nil, style)
		s.SetContent(x1, y, '│', nil, style)
	}
	s.SetContent(x0, y0, '┌', nil, style)
	s.SetContent(x1, y0, '┐', nil, style)
	s.SetContent(x0, y1, '└', nil, style)
	s.SetContent(x1, y1, '┘', nil, style)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
