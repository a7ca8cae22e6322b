package circuit

import (
	"fmt"

	"github.com/google/uuid"
)

// Terminal is an attachment point for wires on a component. Offset and
// Facing are fixed by the component's kind and live in the local frame;
// only the wire back-reference changes at runtime. The world-space position
// is computed on demand from the owning component.
type Terminal struct {
	Name   string    `json:"name"`
	Offset Point     `json:"-" msgpack:"-"`
	Facing Direction `json:"-" msgpack:"-"`
	// Wire is the id of the attached wire, or uuid.Nil when free. It is a
	// back-reference only, never an ownership link.
	Wire uuid.UUID `json:"wire"`
}

// Connected reports whether a wire is attached to the terminal.
func (t *Terminal) Connected() bool {
	return t.Wire != uuid.Nil
}

// Component is a placed circuit element. The terminal count and layout are
// fixed by Kind; position, rotation and connection state are the only
// mutable parts.
type Component struct {
	ID       uuid.UUID `json:"id"`
	Kind     Kind      `json:"kind"`
	Position Point     `json:"position"`
	// Rotation is in degrees, always one of 0, 90, 180, 270.
	Rotation  int        `json:"rotation"`
	Terminals []Terminal `json:"terminals"`

	// Kind-specific attributes.
	Voltage float64 `json:"voltage,omitempty"` // battery, cell
	Color   string  `json:"color,omitempty"`   // led
	On      bool    `json:"on,omitempty"`      // led
}

// NewComponent creates a component of the given kind at the given position.
func NewComponent(kind Kind, pos Point) (*Component, error) {
	specs, ok := terminalTable[kind]
	if !ok {
		return nil, fmt.Errorf("unknown component kind %q: %w", kind, ErrNotFound)
	}
	c := &Component{
		ID:       uuid.New(),
		Kind:     kind,
		Position: pos,
		Voltage:  defaultVoltage[kind],
	}
	if kind == KindLED {
		c.Color = "red"
	}
	c.Terminals = make([]Terminal, len(specs))
	for i, spec := range specs {
		c.Terminals[i] = Terminal{Name: spec.Name, Offset: spec.Offset, Facing: spec.Facing}
	}
	return c, nil
}

// quarterTurns converts the rotation in degrees to clockwise quarter turns.
func (c *Component) quarterTurns() int {
	return ((c.Rotation / 90 % 4) + 4) % 4
}

// Terminal returns the named terminal, or nil if the kind has no such
// terminal.
func (c *Component) Terminal(name string) *Terminal {
	for i := range c.Terminals {
		if c.Terminals[i].Name == name {
			return &c.Terminals[i]
		}
	}
	return nil
}

// WorldTerminal resolves the named terminal into world space, applying the
// component's position and rotation.
func (c *Component) WorldTerminal(name string) (ConnPoint, bool) {
	t := c.Terminal(name)
	if t == nil {
		return ConnPoint{}, false
	}
	return c.resolve(t), true
}

// resolve transforms a terminal from the local frame into world space.
func (c *Component) resolve(t *Terminal) ConnPoint {
	q := c.quarterTurns()
	off := rotateQuarter(t.Offset, q)
	return ConnPoint{
		Position: Point{X: c.Position.X + off.X, Y: c.Position.Y + off.Y},
		Facing:   t.Facing.Rotate(q),
	}
}

// Bounds returns the component's world-space bounding box. Half-extents swap
// axes at 90 and 270 degrees.
func (c *Component) Bounds() Bounds {
	half := halfSizeTable[c.Kind]
	if c.quarterTurns()%2 == 1 {
		half.X, half.Y = half.Y, half.X
	}
	return Bounds{
		Min: Point{X: c.Position.X - half.X, Y: c.Position.Y - half.Y},
		Max: Point{X: c.Position.X + half.X, Y: c.Position.Y + half.Y},
	}
}

// Contains checks if a world-space point is within the component's bounds.
func (c *Component) Contains(p Point) bool {
	return c.Bounds().Contains(p)
}

// Clone returns a deep copy of the component.
func (c *Component) Clone() *Component {
	out := *c
	out.Terminals = make([]Terminal, len(c.Terminals))
	copy(out.Terminals, c.Terminals)
	return &out
}

// rebuildTerminals restores the fixed offset and facing of every terminal
// from the kind table, keeping only name and wire link from the stored data.
// Deserialized state can therefore never violate the fixed-by-type layout.
func (c *Component) rebuildTerminals() error {
	specs, ok := terminalTable[c.Kind]
	if !ok {
		return fmt.Errorf("unknown component kind %q: %w", c.Kind, ErrNotFound)
	}
	stored := c.Terminals
	c.Terminals = make([]Terminal, len(specs))
	for i, spec := range specs {
		c.Terminals[i] = Terminal{Name: spec.Name, Offset: spec.Offset, Facing: spec.Facing}
		for j := range stored {
			if stored[j].Name == spec.Name {
				c.Terminals[i].Wire = stored[j].Wire
				break
			}
		}
	}
	c.Rotation = ((c.Rotation % 360) + 360) % 360
	return nil
}
