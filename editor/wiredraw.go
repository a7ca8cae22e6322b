package editor

import (
	"fmt"

	"circed/circuit"
	"circed/geometry"
	"circed/routing"
)

// Interactive wire drawing. A draft accumulates clicked corner points and
// lives entirely outside the circuit; nothing is committed (or undoable)
// until the draft ends on a free terminal.

type draftWire struct {
	start   circuit.TerminalRef
	points  []circuit.WirePoint
	preview circuit.Point
}

// Drawing reports whether a wire draft is in progress.
func (e *Editor) Drawing() bool {
	return e.draft != nil
}

// DraftPath returns the committed draft points followed by the live preview
// point, for rendering. Nil when no draft is active.
func (e *Editor) DraftPath() []circuit.WirePoint {
	if e.draft == nil {
		return nil
	}
	out := make([]circuit.WirePoint, len(e.draft.points), len(e.draft.points)+1)
	copy(out, e.draft.points)
	return append(out, circuit.WirePoint{X: e.draft.preview.X, Y: e.draft.preview.Y, Kind: circuit.PointCorner})
}

// StartWire handles a click while wiring. The first click must land on a
// free terminal and opens the draft; later clicks add corners, or finish
// the wire when they land on another free terminal.
func (e *Editor) StartWire(pos circuit.Point) error {
	ref, cp, onTerminal := e.circ.FindNearestTerminal(pos, e.snapDistance)

	if e.draft == nil {
		if !onTerminal {
			return fmt.Errorf("wire must start on a terminal: %w", circuit.ErrNotFound)
		}
		if _, t, err := e.circ.ResolveTerminal(ref); err != nil {
			return err
		} else if t.Connected() {
			return fmt.Errorf("%s/%s: %w", ref.Component, ref.Terminal, circuit.ErrAlreadyConnected)
		}
		e.draft = &draftWire{
			start:   ref,
			points:  []circuit.WirePoint{{X: cp.Position.X, Y: cp.Position.Y, Kind: circuit.PointEndpoint}},
			preview: cp.Position,
		}
		e.notify()
		return nil
	}

	if onTerminal {
		return e.finishWire(ref, cp)
	}
	e.addDraftCorner(pos)
	return nil
}

// FinishWireAt ends the draft on the terminal nearest pos. It fails when no
// draft is active or no free terminal is in snapping range.
func (e *Editor) FinishWireAt(pos circuit.Point) error {
	if e.draft == nil {
		return fmt.Errorf("no wire in progress: %w", circuit.ErrNotFound)
	}
	ref, cp, ok := e.circ.FindNearestTerminal(pos, e.snapDistance)
	if !ok {
		return fmt.Errorf("wire must end on a terminal: %w", circuit.ErrNotFound)
	}
	return e.finishWire(ref, cp)
}

// UpdateWirePreview moves the rubber-band end of the draft: snapped to a
// nearby terminal if one is in range, otherwise held orthogonal to the last
// committed point.
func (e *Editor) UpdateWirePreview(pos circuit.Point) {
	if e.draft == nil {
		return
	}
	if _, cp, ok := e.circ.FindNearestTerminal(pos, e.snapDistance); ok {
		e.draft.preview = cp.Position
	} else {
		last := e.draft.points[len(e.draft.points)-1]
		e.draft.preview = snapOrthogonal(pos, last.Pos())
	}
	e.notify()
}

// CancelWire abandons the draft, for example on Escape.
func (e *Editor) CancelWire() {
	if e.draft == nil {
		return
	}
	e.draft = nil
	e.notify()
}

// addDraftCorner commits the clicked position as a corner, snapped
// orthogonal to the previous point.
func (e *Editor) addDraftCorner(pos circuit.Point) {
	last := e.draft.points[len(e.draft.points)-1]
	p := snapOrthogonal(pos, last.Pos())
	e.draft.points = append(e.draft.points, circuit.WirePoint{X: p.X, Y: p.Y, Kind: circuit.PointCorner})
	e.draft.preview = p
	e.notify()
}

// finishWire commits the draft as a wire ending on the given terminal. With
// no hand-drawn corners the router picks the whole path; otherwise the
// drawn path is kept and its final leg squared up to reach the terminal.
func (e *Editor) finishWire(ref circuit.TerminalRef, cp circuit.ConnPoint) error {
	draft := e.draft

	var path []circuit.WirePoint
	if len(draft.points) == 1 {
		startCP, err := e.circ.ConnPointAt(draft.start)
		if err != nil {
			return err
		}
		path, err = routing.Route(startCP, cp)
		if err != nil {
			return err
		}
	} else {
		path = closeDraftPath(draft.points, cp.Position)
	}

	before := e.circ.Clone()
	if _, err := e.circ.AddWire(draft.start, ref, path); err != nil {
		return err
	}
	e.draft = nil
	e.checkpoint(before)
	e.notify()
	return nil
}

// closeDraftPath appends the terminal position to a hand-drawn path,
// adjusting the last corner when the segment into the terminal would be
// diagonal. The adjusted axis follows the alternating orientation pattern:
// whatever the previous segment was, the closing segment must be the other.
func closeDraftPath(points []circuit.WirePoint, end circuit.Point) []circuit.WirePoint {
	path := make([]circuit.WirePoint, len(points))
	copy(path, points)
	last := &path[len(path)-1]

	if last.X != end.X && last.Y != end.Y {
		if len(path) >= 2 {
			prev := path[len(path)-2]
			if prev.Y == last.Y {
				// Previous segment horizontal, so the closer is vertical.
				last.X = end.X
			} else {
				last.Y = end.Y
			}
		} else if geometry.Abs(end.X-last.X) < geometry.Abs(end.Y-last.Y) {
			last.Y = end.Y
		} else {
			last.X = end.X
		}
	}
	return append(path, circuit.WirePoint{X: end.X, Y: end.Y, Kind: circuit.PointEndpoint})
}

// snapOrthogonal projects pos onto a horizontal or vertical line through
// reference, whichever is closer.
func snapOrthogonal(pos, reference circuit.Point) circuit.Point {
	if geometry.Abs(pos.X-reference.X) > geometry.Abs(pos.Y-reference.Y) {
		return circuit.Point{X: pos.X, Y: reference.Y}
	}
	return circuit.Point{X: reference.X, Y: pos.Y}
}

// DraftStart exposes the draft's starting terminal for the front end's
// status line.
func (e *Editor) DraftStart() (circuit.TerminalRef, bool) {
	if e.draft == nil {
		return circuit.TerminalRef{}, false
	}
	return e.draft.start, true
}
