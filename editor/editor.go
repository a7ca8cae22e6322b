// Package editor is the state manager of the circuit editor. It owns the
// circuit, applies every mutation, keeps the undo/redo history, and tells
// registered observers when something changed. The routing engine and the
// data model never mutate shared state on their own; everything funnels
// through here, synchronously, one input event at a time.
package editor

import (
	"io"

	"github.com/google/uuid"

	"circed/circuit"
)

// Default interaction distances, in canvas units.
const (
	DefaultSnapDistance     = 20.0
	DefaultCornerHitRadius  = 12.0
	DefaultSegmentHitRadius = 10.0
)

// Options configures an Editor. Zero values fall back to defaults.
type Options struct {
	HistoryDepth    int
	SnapDistance    float64
	CornerHitRadius float64
	// LEDColor is applied to newly placed LEDs. Empty keeps the kind's
	// built-in colour.
	LEDColor string
}

// ListenerHandle identifies a registered change listener.
type ListenerHandle int

// Editor owns the circuit and its edit history.
type Editor struct {
	circ    *circuit.Circuit
	history *History

	listeners    map[ListenerHandle]func()
	nextListener ListenerHandle

	snapDistance    float64
	cornerHitRadius float64
	ledColor        string

	// In-progress interactive state. A draft wire lives here, outside the
	// circuit, until it is committed.
	draft *draftWire
	drag  *dragState
}

// New creates an editor with an empty circuit.
func New(opts Options) *Editor {
	if opts.SnapDistance <= 0 {
		opts.SnapDistance = DefaultSnapDistance
	}
	if opts.CornerHitRadius <= 0 {
		opts.CornerHitRadius = DefaultCornerHitRadius
	}
	return &Editor{
		circ:            circuit.New(),
		history:         NewHistory(opts.HistoryDepth),
		listeners:       make(map[ListenerHandle]func()),
		snapDistance:    opts.SnapDistance,
		cornerHitRadius: opts.CornerHitRadius,
		ledColor:        opts.LEDColor,
	}
}

// Circuit returns the live circuit. Renderers must treat it as read-only;
// all mutation goes through editor operations.
func (e *Editor) Circuit() *circuit.Circuit {
	return e.circ
}

// AddListener registers a callback invoked synchronously after every
// committed mutation, undo, redo and load.
func (e *Editor) AddListener(fn func()) ListenerHandle {
	h := e.nextListener
	e.nextListener++
	e.listeners[h] = fn
	return h
}

// RemoveListener unregisters a callback. Removing an unknown handle is a
// no-op, so removal is idempotent.
func (e *Editor) RemoveListener(h ListenerHandle) {
	delete(e.listeners, h)
}

func (e *Editor) notify() {
	for _, fn := range e.listeners {
		fn()
	}
}

// CanUndo reports whether an undo entry is available.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether a redo entry is available.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// Undo restores the previous state. An empty undo stack is a reported
// no-op, not an error.
func (e *Editor) Undo() bool {
	restored, err := e.history.Undo(e.circ)
	if err != nil || restored == nil {
		return false
	}
	e.circ = restored
	e.clearInteraction()
	e.notify()
	return true
}

// Redo restores the next state. An empty redo stack is a reported no-op.
func (e *Editor) Redo() bool {
	restored, err := e.history.Redo(e.circ)
	if err != nil || restored == nil {
		return false
	}
	e.circ = restored
	e.clearInteraction()
	e.notify()
	return true
}

// Save writes the current state as a JSON snapshot.
func (e *Editor) Save(w io.Writer) error {
	return circuit.TakeSnapshot(e.circ).EncodeJSON(w)
}

// Load replaces the current state with a JSON snapshot and clears the edit
// history: loaded state has no prior edits to walk back through.
func (e *Editor) Load(r io.Reader) error {
	snap, err := circuit.DecodeJSON(r)
	if err != nil {
		return err
	}
	restored, err := snap.Restore()
	if err != nil {
		return err
	}
	e.circ = restored
	e.history.Clear()
	e.clearInteraction()
	e.notify()
	return nil
}

// clearInteraction drops any in-flight gesture; the objects it referenced
// may no longer exist after an undo or load.
func (e *Editor) clearInteraction() {
	e.draft = nil
	e.drag = nil
}

// checkpoint saves the pre-mutation state. Called by every committed
// operation after validation succeeds.
func (e *Editor) checkpoint(before *circuit.Circuit) {
	// Encoding a just-validated circuit cannot fail; a failure here would
	// mean the model itself is broken, so it is intentionally dropped.
	_ = e.history.Push(before)
}

// ObjectKind classifies a hit-test result.
type ObjectKind string

const (
	ObjectComponent ObjectKind = "component"
	ObjectWire      ObjectKind = "wire"
)

// HitTest returns the object under a canvas position: wire corners first
// (they render on top), then component bodies, then wire segments.
func (e *Editor) HitTest(pos circuit.Point) (ObjectKind, uuid.UUID, bool) {
	if id, _, ok := e.cornerHit(pos); ok {
		return ObjectWire, id, true
	}
	for id, comp := range e.circ.Components {
		if comp.Contains(pos) {
			return ObjectComponent, id, true
		}
	}
	if id, ok := e.segmentHit(pos); ok {
		return ObjectWire, id, true
	}
	return "", uuid.Nil, false
}
