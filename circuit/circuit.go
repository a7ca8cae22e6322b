package circuit

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Circuit is the container for all placed components and wires. Identity is
// assigned here; insertion order is irrelevant.
type Circuit struct {
	ID         uuid.UUID
	Name       string
	Components map[uuid.UUID]*Component
	Wires      map[uuid.UUID]*Wire
}

// New creates an empty circuit.
func New() *Circuit {
	return &Circuit{
		ID:         uuid.New(),
		Name:       "Untitled Circuit",
		Components: make(map[uuid.UUID]*Component),
		Wires:      make(map[uuid.UUID]*Wire),
	}
}

// AddComponent creates a component of the given kind at the given position
// and adds it to the circuit.
func (c *Circuit) AddComponent(kind Kind, pos Point) (*Component, error) {
	comp, err := NewComponent(kind, pos)
	if err != nil {
		return nil, err
	}
	c.Components[comp.ID] = comp
	return comp, nil
}

// Component returns the component with the given id.
func (c *Circuit) Component(id uuid.UUID) (*Component, error) {
	comp, ok := c.Components[id]
	if !ok {
		return nil, fmt.Errorf("component %s: %w", id, ErrNotFound)
	}
	return comp, nil
}

// Wire returns the wire with the given id.
func (c *Circuit) Wire(id uuid.UUID) (*Wire, error) {
	w, ok := c.Wires[id]
	if !ok {
		return nil, fmt.Errorf("wire %s: %w", id, ErrNotFound)
	}
	return w, nil
}

// ResolveTerminal looks up the component and terminal a ref points at.
func (c *Circuit) ResolveTerminal(ref TerminalRef) (*Component, *Terminal, error) {
	comp, err := c.Component(ref.Component)
	if err != nil {
		return nil, nil, err
	}
	t := comp.Terminal(ref.Terminal)
	if t == nil {
		return nil, nil, fmt.Errorf("terminal %q on %s: %w", ref.Terminal, comp.Kind, ErrNotFound)
	}
	return comp, t, nil
}

// ConnPointAt resolves a terminal ref into world space.
func (c *Circuit) ConnPointAt(ref TerminalRef) (ConnPoint, error) {
	comp, t, err := c.ResolveTerminal(ref)
	if err != nil {
		return ConnPoint{}, err
	}
	return comp.resolve(t), nil
}

// RemoveComponent deletes a component and cascades to every wire with an
// endpoint on it. The far terminals of cascaded wires are freed.
func (c *Circuit) RemoveComponent(id uuid.UUID) error {
	if _, ok := c.Components[id]; !ok {
		return fmt.Errorf("component %s: %w", id, ErrNotFound)
	}
	for wid, w := range c.Wires {
		if w.Touches(id) {
			c.detachWire(w)
			delete(c.Wires, wid)
		}
	}
	delete(c.Components, id)
	return nil
}

// AddWire connects two terminals with the given pre-routed path. Both
// terminals must exist, be distinct, and be free.
func (c *Circuit) AddWire(start, end TerminalRef, path []WirePoint) (*Wire, error) {
	if start == end {
		return nil, ErrSelfConnection
	}
	_, st, err := c.ResolveTerminal(start)
	if err != nil {
		return nil, err
	}
	_, et, err := c.ResolveTerminal(end)
	if err != nil {
		return nil, err
	}
	if st.Connected() {
		return nil, fmt.Errorf("%s/%s: %w", start.Component, start.Terminal, ErrAlreadyConnected)
	}
	if et.Connected() {
		return nil, fmt.Errorf("%s/%s: %w", end.Component, end.Terminal, ErrAlreadyConnected)
	}
	w := &Wire{
		ID:    uuid.New(),
		Start: start,
		End:   end,
		Path:  path,
	}
	st.Wire = w.ID
	et.Wire = w.ID
	c.Wires[w.ID] = w
	return w, nil
}

// RemoveWire deletes a wire and frees both of its terminals.
func (c *Circuit) RemoveWire(id uuid.UUID) error {
	w, ok := c.Wires[id]
	if !ok {
		return fmt.Errorf("wire %s: %w", id, ErrNotFound)
	}
	c.detachWire(w)
	delete(c.Wires, id)
	return nil
}

// detachWire clears the terminal back-references of a wire about to be
// removed.
func (c *Circuit) detachWire(w *Wire) {
	for _, ref := range []TerminalRef{w.Start, w.End} {
		if comp, ok := c.Components[ref.Component]; ok {
			if t := comp.Terminal(ref.Terminal); t != nil && t.Wire == w.ID {
				t.Wire = uuid.Nil
			}
		}
	}
}

// MoveComponent sets a component's position. Connected wires are not
// adjusted here; that is the wire editor's job, driven by the state manager.
func (c *Circuit) MoveComponent(id uuid.UUID, pos Point) (*Component, error) {
	comp, err := c.Component(id)
	if err != nil {
		return nil, err
	}
	comp.Position = pos
	return comp, nil
}

// RotateComponent turns a component by a quarter turn. Delta must be 90 or
// -90 degrees; the result is normalized into [0, 360).
func (c *Circuit) RotateComponent(id uuid.UUID, delta int) (*Component, error) {
	if delta != 90 && delta != -90 {
		return nil, fmt.Errorf("rotation delta must be 90 or -90, got %d", delta)
	}
	comp, err := c.Component(id)
	if err != nil {
		return nil, err
	}
	comp.Rotation = ((comp.Rotation+delta)%360 + 360) % 360
	return comp, nil
}

// WiresAt returns every wire with an endpoint on the given component.
func (c *Circuit) WiresAt(componentID uuid.UUID) []*Wire {
	var out []*Wire
	for _, w := range c.Wires {
		if w.Touches(componentID) {
			out = append(out, w)
		}
	}
	return out
}

// FindNearestTerminal returns the closest terminal within maxDist of pos,
// used by the front end to snap wire endpoints.
func (c *Circuit) FindNearestTerminal(pos Point, maxDist float64) (TerminalRef, ConnPoint, bool) {
	var (
		bestRef TerminalRef
		bestCP  ConnPoint
		found   bool
	)
	best := maxDist
	for id, comp := range c.Components {
		for i := range comp.Terminals {
			cp := comp.resolve(&comp.Terminals[i])
			dx := cp.Position.X - pos.X
			dy := cp.Position.Y - pos.Y
			dist := math.Hypot(dx, dy)
			if dist < best {
				best = dist
				bestRef = TerminalRef{Component: id, Terminal: comp.Terminals[i].Name}
				bestCP = cp
				found = true
			}
		}
	}
	return bestRef, bestCP, found
}

// Bounds returns the bounding box of every object in the circuit.
func (c *Circuit) Bounds() Bounds {
	var (
		b     Bounds
		first = true
	)
	for _, comp := range c.Components {
		if first {
			b = comp.Bounds()
			first = false
		} else {
			b = b.Union(comp.Bounds())
		}
	}
	for _, w := range c.Wires {
		if len(w.Path) == 0 {
			continue
		}
		if first {
			b = w.Bounds()
			first = false
		} else {
			b = b.Union(w.Bounds())
		}
	}
	return b
}

// Clone creates a deep copy of the circuit.
func (c *Circuit) Clone() *Circuit {
	if c == nil {
		return nil
	}
	out := &Circuit{
		ID:         c.ID,
		Name:       c.Name,
		Components: make(map[uuid.UUID]*Component, len(c.Components)),
		Wires:      make(map[uuid.UUID]*Wire, len(c.Wires)),
	}
	for id, comp := range c.Components {
		out.Components[id] = comp.Clone()
	}
	for id, w := range c.Wires {
		out.Wires[id] = w.Clone()
	}
	return out
}
