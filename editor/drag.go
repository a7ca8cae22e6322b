package editor

import (
	"github.com/google/uuid"

	"circed/circuit"
	"circed/routing"
)

// A drag gesture spans many input events but is one edit: the pre-drag
// state is saved once when the gesture starts, and the in-between positions
// are applied without touching the history.

// DragKind says what a drag gesture is moving.
type DragKind string

const (
	DragComponent DragKind = "component"
	DragCorner    DragKind = "corner"
)

type dragState struct {
	kind      DragKind
	component uuid.UUID
	offset    circuit.Point // cursor offset from the component origin
	wire      uuid.UUID
	corner    int
}

// BeginDrag starts a drag gesture at pos. Wire corners win over component
// bodies, matching their visual stacking. Returns the dragged object's id,
// or false when nothing draggable is under the cursor.
func (e *Editor) BeginDrag(pos circuit.Point) (DragKind, uuid.UUID, bool) {
	if id, corner, ok := e.cornerHit(pos); ok {
		e.checkpoint(e.circ.Clone())
		e.drag = &dragState{kind: DragCorner, wire: id, corner: corner}
		return DragCorner, id, true
	}
	for id, comp := range e.circ.Components {
		if comp.Contains(pos) {
			e.checkpoint(e.circ.Clone())
			e.drag = &dragState{
				kind:      DragComponent,
				component: id,
				offset:    circuit.Point{X: pos.X - comp.Position.X, Y: pos.Y - comp.Position.Y},
			}
			return DragComponent, id, true
		}
	}
	return "", uuid.Nil, false
}

// Dragging reports whether a drag gesture is in progress.
func (e *Editor) Dragging() bool {
	return e.drag != nil
}

// UpdateDrag applies the current cursor position to the in-progress
// gesture.
func (e *Editor) UpdateDrag(pos circuit.Point) {
	if e.drag == nil {
		return
	}
	switch e.drag.kind {
	case DragComponent:
		// A position the wires cannot follow, such as one terminal landing
		// exactly on another, clamps the gesture to the last valid position.
		target := circuit.Point{X: pos.X - e.drag.offset.X, Y: pos.Y - e.drag.offset.Y}
		prev := e.circ.Clone()
		if err := e.moveComponent(e.drag.component, target); err != nil {
			e.circ = prev
			return
		}
	case DragCorner:
		w, err := e.circ.Wire(e.drag.wire)
		if err != nil {
			return
		}
		if err := routing.DragCorner(w, e.drag.corner, pos); err != nil {
			return
		}
	}
	e.notify()
}

// EndDrag finishes the gesture.
func (e *Editor) EndDrag() {
	e.drag = nil
}

// cornerHit finds a draggable wire corner under pos.
func (e *Editor) cornerHit(pos circuit.Point) (uuid.UUID, int, bool) {
	for id, w := range e.circ.Wires {
		if i := routing.CornerAt(w, pos, e.cornerHitRadius); i >= 0 {
			return id, i, true
		}
	}
	return uuid.Nil, 0, false
}

// segmentHit finds a wire whose path runs near pos.
func (e *Editor) segmentHit(pos circuit.Point) (uuid.UUID, bool) {
	for id, w := range e.circ.Wires {
		if routing.NearSegment(w, pos, DefaultSegmentHitRadius) {
			return id, true
		}
	}
	return uuid.Nil, false
}
