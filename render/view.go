// Package render builds read-only scene descriptions of a circuit for
// renderers to consume. It resolves rotations and terminal placement once so
// front ends never touch circuit internals.
package render

import (
	"bytes"
	"sort"

	"github.com/google/uuid"

	"circed/circuit"
)

// TerminalView is a terminal resolved to world space.
type TerminalView struct {
	Name      string
	Position  circuit.Point
	Facing    circuit.Direction
	Connected bool
}

// ComponentView is a component with its world-space bounds and terminals.
type ComponentView struct {
	ID        uuid.UUID
	Kind      circuit.Kind
	Label     string
	Position  circuit.Point
	Rotation  int
	Bounds    circuit.Bounds
	Voltage   float64
	Color     string
	On        bool
	Terminals []TerminalView
}

// WireView is a wire's ordered polyline.
type WireView struct {
	ID     uuid.UUID
	Points []circuit.Point
}

// Scene is everything a renderer needs to draw a circuit. Components and
// wires are ordered by ID so output is stable across runs.
type Scene struct {
	Name       string
	Bounds     circuit.Bounds
	Components []ComponentView
	Wires      []WireView
}

// View builds a Scene from the circuit's current state. The scene holds
// copies; mutating the circuit afterwards does not affect it.
func View(c *circuit.Circuit) Scene {
	s := Scene{
		Name:       c.Name,
		Bounds:     c.Bounds(),
		Components: make([]ComponentView, 0, len(c.Components)),
		Wires:      make([]WireView, 0, len(c.Wires)),
	}

	for _, comp := range c.Components {
		cv := ComponentView{
			ID:        comp.ID,
			Kind:      comp.Kind,
			Label:     comp.Kind.DisplayName(),
			Position:  comp.Position,
			Rotation:  comp.Rotation,
			Bounds:    comp.Bounds(),
			Voltage:   comp.Voltage,
			Color:     comp.Color,
			On:        comp.On,
			Terminals: make([]TerminalView, 0, len(comp.Terminals)),
		}
		for _, t := range comp.Terminals {
			cp, ok := comp.WorldTerminal(t.Name)
			if !ok {
				continue
			}
			cv.Terminals = append(cv.Terminals, TerminalView{
				Name:      t.Name,
				Position:  cp.Position,
				Facing:    cp.Facing,
				Connected: t.Connected(),
			})
		}
		s.Components = append(s.Components, cv)
	}
	sort.Slice(s.Components, func(i, j int) bool {
		return bytes.Compare(s.Components[i].ID[:], s.Components[j].ID[:]) < 0
	})

	for _, w := range c.Wires {
		wv := WireView{ID: w.ID, Points: make([]circuit.Point, len(w.Path))}
		for i, p := range w.Path {
			wv.Points[i] = p.Pos()
		}
		s.Wires = append(s.Wires, wv)
	}
	sort.Slice(s.Wires, func(i, j int) bool {
		return bytes.Compare(s.Wires[i].ID[:], s.Wires[j].ID[:]) < 0
	})

	return s
}
