package editor

import (
	"fmt"

	"github.com/google/uuid"

	"circed/circuit"
	"circed/routing"
)

// Every operation in this file follows the same shape: validate, save the
// pre-mutation state, apply, notify. Any failure leaves the circuit and the
// history untouched: operations that re-route wires after mutating restore
// the saved clone when the re-route fails.

// PlaceComponent adds a component of the given kind at the given position.
func (e *Editor) PlaceComponent(kind circuit.Kind, pos circuit.Point) (uuid.UUID, error) {
	if !kind.Valid() {
		return uuid.Nil, fmt.Errorf("unknown component kind %q: %w", kind, circuit.ErrNotFound)
	}
	before := e.circ.Clone()
	comp, err := e.circ.AddComponent(kind, pos)
	if err != nil {
		return uuid.Nil, err
	}
	if kind == circuit.KindLED && e.ledColor != "" {
		comp.Color = e.ledColor
	}
	e.checkpoint(before)
	e.notify()
	return comp.ID, nil
}

// DeleteComponent removes a component, cascading to every wire attached to
// it.
func (e *Editor) DeleteComponent(id uuid.UUID) error {
	if _, err := e.circ.Component(id); err != nil {
		return err
	}
	before := e.circ.Clone()
	if err := e.circ.RemoveComponent(id); err != nil {
		return err
	}
	e.checkpoint(before)
	e.notify()
	return nil
}

// DeleteWire removes a wire and frees its terminals.
func (e *Editor) DeleteWire(id uuid.UUID) error {
	if _, err := e.circ.Wire(id); err != nil {
		return err
	}
	before := e.circ.Clone()
	if err := e.circ.RemoveWire(id); err != nil {
		return err
	}
	e.checkpoint(before)
	e.notify()
	return nil
}

// Delete removes whatever object the id names.
func (e *Editor) Delete(kind ObjectKind, id uuid.UUID) error {
	switch kind {
	case ObjectComponent:
		return e.DeleteComponent(id)
	case ObjectWire:
		return e.DeleteWire(id)
	default:
		return fmt.Errorf("object kind %q: %w", kind, circuit.ErrNotFound)
	}
}

// Connect routes a new wire between two terminals. It fails when either
// terminal is missing or already connected, or when both refs name the same
// terminal.
func (e *Editor) Connect(start, end circuit.TerminalRef) (uuid.UUID, error) {
	startCP, err := e.circ.ConnPointAt(start)
	if err != nil {
		return uuid.Nil, err
	}
	endCP, err := e.circ.ConnPointAt(end)
	if err != nil {
		return uuid.Nil, err
	}
	path, err := routing.Route(startCP, endCP)
	if err != nil {
		return uuid.Nil, err
	}
	before := e.circ.Clone()
	w, err := e.circ.AddWire(start, end, path)
	if err != nil {
		return uuid.Nil, err
	}
	e.checkpoint(before)
	e.notify()
	return w.ID, nil
}

// MoveComponent moves a component and drags the endpoints of its wires
// along, sliding each wire's nearest leg. A wire that cannot be kept
// orthogonal by sliding is re-routed from scratch.
func (e *Editor) MoveComponent(id uuid.UUID, pos circuit.Point) error {
	if _, err := e.circ.Component(id); err != nil {
		return err
	}
	before := e.circ.Clone()
	if err := e.moveComponent(id, pos); err != nil {
		e.circ = before
		return err
	}
	e.checkpoint(before)
	e.notify()
	return nil
}

// moveComponent is the snapshot-free core of MoveComponent, shared with
// interactive drags.
func (e *Editor) moveComponent(id uuid.UUID, pos circuit.Point) error {
	if _, err := e.circ.MoveComponent(id, pos); err != nil {
		return err
	}
	return e.refreshWires(id, false)
}

// RotateComponent turns a component by ±90 degrees. The rotation changes
// every terminal's facing, so attached wires are fully re-routed.
func (e *Editor) RotateComponent(id uuid.UUID, delta int) error {
	if _, err := e.circ.Component(id); err != nil {
		return err
	}
	before := e.circ.Clone()
	if _, err := e.circ.RotateComponent(id, delta); err != nil {
		return err
	}
	if err := e.refreshWires(id, true); err != nil {
		e.circ = before
		return err
	}
	e.checkpoint(before)
	e.notify()
	return nil
}

// refreshWires updates every wire touching the component. With reroute set,
// paths are recomputed in full; otherwise endpoints are propagated by
// sliding the adjacent leg, falling back to a re-route only when sliding
// breaks orthogonality.
func (e *Editor) refreshWires(componentID uuid.UUID, reroute bool) error {
	for _, w := range e.circ.WiresAt(componentID) {
		startCP, err := e.circ.ConnPointAt(w.Start)
		if err != nil {
			return err
		}
		endCP, err := e.circ.ConnPointAt(w.End)
		if err != nil {
			return err
		}
		ok := !reroute
		if ok && w.Start.Component == componentID {
			ok = routing.PropagateStart(w, startCP.Position)
		}
		if ok && w.End.Component == componentID {
			ok = routing.PropagateEnd(w, endCP.Position)
		}
		if !ok {
			if err := routing.Reroute(w, startCP, endCP); err != nil {
				return err
			}
		}
	}
	return nil
}

// DragWireCorner moves one corner of a wire, preserving orthogonality
// across the whole path.
func (e *Editor) DragWireCorner(id uuid.UUID, corner int, pos circuit.Point) error {
	w, err := e.circ.Wire(id)
	if err != nil {
		return err
	}
	before := e.circ.Clone()
	if err := routing.DragCorner(w, corner, pos); err != nil {
		return err
	}
	e.checkpoint(before)
	e.notify()
	return nil
}

// ClearCircuit replaces the circuit with an empty one. Undoable like any
// other mutation.
func (e *Editor) ClearCircuit() {
	before := e.circ.Clone()
	e.circ = circuit.New()
	e.clearInteraction()
	e.checkpoint(before)
	e.notify()
}
