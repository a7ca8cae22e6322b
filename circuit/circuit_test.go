package circuit_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"circed/circuit"
)

// twoCells places two cells far enough apart to wire together.
func twoCells(t *testing.T) (*circuit.Circuit, *circuit.Component, *circuit.Component) {
	t.Helper()
	c := circuit.New()
	a, err := c.AddComponent(circuit.KindLiIonCell, circuit.Point{X: 100, Y: 100})
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.AddComponent(circuit.KindLiIonCell, circuit.Point{X: 400, Y: 200})
	if err != nil {
		t.Fatal(err)
	}
	return c, a, b
}

func straightPath(from, to circuit.Point) []circuit.WirePoint {
	return []circuit.WirePoint{
		{X: from.X, Y: from.Y, Kind: circuit.PointEndpoint},
		{X: to.X, Y: from.Y, Kind: circuit.PointCorner},
		{X: to.X, Y: to.Y, Kind: circuit.PointEndpoint},
	}
}

func TestLookupNotFound(t *testing.T) {
	c := circuit.New()
	if _, err := c.Component(uuid.New()); !errors.Is(err, circuit.ErrNotFound) {
		t.Errorf("Component: got %v, want ErrNotFound", err)
	}
	if _, err := c.Wire(uuid.New()); !errors.Is(err, circuit.ErrNotFound) {
		t.Errorf("Wire: got %v, want ErrNotFound", err)
	}
	ref := circuit.TerminalRef{Component: uuid.New(), Terminal: circuit.TerminalPositive}
	if _, err := c.ConnPointAt(ref); !errors.Is(err, circuit.ErrNotFound) {
		t.Errorf("ConnPointAt: got %v, want ErrNotFound", err)
	}
}

func TestAddWireLinksTerminals(t *testing.T) {
	c, a, b := twoCells(t)
	start := circuit.TerminalRef{Component: a.ID, Terminal: circuit.TerminalPositive}
	end := circuit.TerminalRef{Component: b.ID, Terminal: circuit.TerminalNegative}

	sp, _ := c.ConnPointAt(start)
	ep, _ := c.ConnPointAt(end)
	w, err := c.AddWire(start, end, straightPath(sp.Position, ep.Position))
	if err != nil {
		t.Fatalf("AddWire: %v", err)
	}

	if a.Terminal(circuit.TerminalPositive).Wire != w.ID {
		t.Error("start terminal not linked to wire")
	}
	if b.Terminal(circuit.TerminalNegative).Wire != w.ID {
		t.Error("end terminal not linked to wire")
	}
}

func TestAddWireRejectsSelfConnection(t *testing.T) {
	c, a, _ := twoCells(t)
	ref := circuit.TerminalRef{Component: a.ID, Terminal: circuit.TerminalPositive}
	if _, err := c.AddWire(ref, ref, nil); !errors.Is(err, circuit.ErrSelfConnection) {
		t.Errorf("got %v, want ErrSelfConnection", err)
	}
}

func TestAddWireRejectsOccupiedTerminal(t *testing.T) {
	c, a, b := twoCells(t)
	start := circuit.TerminalRef{Component: a.ID, Terminal: circuit.TerminalPositive}
	end := circuit.TerminalRef{Component: b.ID, Terminal: circuit.TerminalNegative}
	if _, err := c.AddWire(start, end, nil); err != nil {
		t.Fatal(err)
	}

	other := circuit.TerminalRef{Component: b.ID, Terminal: circuit.TerminalPositive}
	if _, err := c.AddWire(start, other, nil); !errors.Is(err, circuit.ErrAlreadyConnected) {
		t.Errorf("got %v, want ErrAlreadyConnected", err)
	}
}

func TestRemoveWireFreesTerminals(t *testing.T) {
	c, a, b := twoCells(t)
	start := circuit.TerminalRef{Component: a.ID, Terminal: circuit.TerminalPositive}
	end := circuit.TerminalRef{Component: b.ID, Terminal: circuit.TerminalNegative}
	w, err := c.AddWire(start, end, nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := c.RemoveWire(w.ID); err != nil {
		t.Fatal(err)
	}
	if a.Terminal(circuit.TerminalPositive).Connected() {
		t.Error("start terminal still connected after wire removal")
	}
	if b.Terminal(circuit.TerminalNegative).Connected() {
		t.Error("end terminal still connected after wire removal")
	}
}

// Deleting a component removes every wire touching it and frees the far
// terminals, so they can be wired again.
func TestRemoveComponentCascades(t *testing.T) {
	c, a, b := twoCells(t)
	led, err := c.AddComponent(circuit.KindLED, circuit.Point{X: 250, Y: 400})
	if err != nil {
		t.Fatal(err)
	}

	refA := circuit.TerminalRef{Component: a.ID, Terminal: circuit.TerminalPositive}
	refB := circuit.TerminalRef{Component: b.ID, Terminal: circuit.TerminalNegative}
	refAnode := circuit.TerminalRef{Component: led.ID, Terminal: circuit.TerminalAnode}
	refCathode := circuit.TerminalRef{Component: led.ID, Terminal: circuit.TerminalCathode}

	if _, err := c.AddWire(refA, refAnode, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := c.AddWire(refB, refCathode, nil); err != nil {
		t.Fatal(err)
	}

	if err := c.RemoveComponent(led.ID); err != nil {
		t.Fatal(err)
	}

	if len(c.Wires) != 0 {
		t.Fatalf("%d wires left after cascade, want 0", len(c.Wires))
	}
	if _, err := c.Component(led.ID); !errors.Is(err, circuit.ErrNotFound) {
		t.Error("deleted component still present")
	}
	if a.Terminal(circuit.TerminalPositive).Connected() {
		t.Error("far terminal on a still connected")
	}
	if b.Terminal(circuit.TerminalNegative).Connected() {
		t.Error("far terminal on b still connected")
	}
}

func TestRotateComponentValidation(t *testing.T) {
	c, a, _ := twoCells(t)
	if _, err := c.RotateComponent(a.ID, 45); err == nil {
		t.Error("45 degree rotation should be rejected")
	}
	for i, want := range []int{90, 180, 270, 0} {
		if _, err := c.RotateComponent(a.ID, 90); err != nil {
			t.Fatal(err)
		}
		if a.Rotation != want {
			t.Fatalf("after %d turns rotation = %d, want %d", i+1, a.Rotation, want)
		}
	}
	if _, err := c.RotateComponent(a.ID, -90); err != nil {
		t.Fatal(err)
	}
	if a.Rotation != 270 {
		t.Errorf("rotation = %d, want 270", a.Rotation)
	}
}

func TestFindNearestTerminal(t *testing.T) {
	c, a, _ := twoCells(t)
	// Cell at (100,100): positive terminal at (135,100).
	ref, cp, ok := c.FindNearestTerminal(circuit.Point{X: 140, Y: 105}, 20)
	if !ok {
		t.Fatal("no terminal found within range")
	}
	if ref.Component != a.ID || ref.Terminal != circuit.TerminalPositive {
		t.Errorf("found %v/%s, want a/positive", ref.Component, ref.Terminal)
	}
	if (cp.Position != circuit.Point{X: 135, Y: 100}) {
		t.Errorf("position = %+v, want (135,100)", cp.Position)
	}

	if _, _, ok := c.FindNearestTerminal(circuit.Point{X: 600, Y: 600}, 20); ok {
		t.Error("found a terminal far out of range")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c, a, b := twoCells(t)
	start := circuit.TerminalRef{Component: a.ID, Terminal: circuit.TerminalPositive}
	end := circuit.TerminalRef{Component: b.ID, Terminal: circuit.TerminalNegative}
	if _, err := c.AddWire(start, end, straightPath(circuit.Point{X: 135, Y: 100}, circuit.Point{X: 367, Y: 200})); err != nil {
		t.Fatal(err)
	}

	clone := c.Clone()
	for _, w := range clone.Wires {
		w.Path[0].X = -1
	}
	for _, w := range c.Wires {
		if w.Path[0].X == -1 {
			t.Error("clone shares wire paths with the original")
		}
	}

	if err := clone.RemoveComponent(a.ID); err != nil {
		t.Fatal(err)
	}
	if len(c.Components) != 2 || len(c.Wires) != 1 {
		t.Error("mutating the clone changed the original")
	}
}
