// Package routing computes and edits orthogonal wire paths. The router is a
// pure function from two resolved terminals to a Manhattan-style polyline;
// the editing half keeps such polylines valid while corners are dragged and
// components move.
package routing

import (
	"fmt"

	"circed/circuit"
)

// Stub is how far a route extends past a terminal when the midpoint of a
// Z-shaped path would violate a facing constraint.
const Stub = 20.0

// Route computes an orthogonal path from start to end. The path leaves the
// start terminal travelling along its facing and arrives at the end terminal
// travelling against the end facing. Start and end must be distinct points.
//
// Three shapes are produced: a straight segment when the terminals are
// aligned and both facings allow it, an L (one corner) when the facings are
// perpendicular, and a Z (two corners) otherwise. When the simple shape
// would enter a terminal from the wrong side the route detours via stub
// legs, which may add corners.
func Route(start, end circuit.ConnPoint) ([]circuit.WirePoint, error) {
	if start.Position == end.Position {
		return nil, fmt.Errorf("routing %v to itself: %w", start.Position, circuit.ErrDegenerateWire)
	}

	var pts []circuit.Point
	switch {
	case straightOK(start, end):
		pts = []circuit.Point{start.Position, end.Position}
	case start.Facing.Horizontal() != end.Facing.Horizontal():
		pts = routePerpendicular(start, end)
	default:
		pts = routeParallel(start, end)
	}

	pts = normalize(pts)
	return tagPoints(pts), nil
}

// straightOK reports whether the direct segment from start to end respects
// both facings.
func straightOK(start, end circuit.ConnPoint) bool {
	d, ok := travelDirection(start.Position, end.Position)
	if !ok {
		return false
	}
	return start.Facing == d && end.Facing == d.Opposite()
}

// routePerpendicular handles perpendicular facings: a single corner where
// the two facing axes cross, or a stub detour when that corner would leave
// a terminal the wrong way.
func routePerpendicular(start, end circuit.ConnPoint) []circuit.Point {
	var corner circuit.Point
	if start.Facing.Horizontal() {
		corner = circuit.Point{X: end.Position.X, Y: start.Position.Y}
	} else {
		corner = circuit.Point{X: start.Position.X, Y: end.Position.Y}
	}
	if leavesAlong(start.Position, corner, start.Facing) &&
		leavesAlong(end.Position, corner, end.Facing) {
		return []circuit.Point{start.Position, corner, end.Position}
	}

	// The single bend fights a facing. Step out of both terminals first,
	// then bend between the stub points; axes alternate by construction.
	a := step(start.Position, start.Facing, Stub)
	b := step(end.Position, end.Facing, Stub)
	var mid circuit.Point
	if start.Facing.Horizontal() {
		mid = circuit.Point{X: a.X, Y: b.Y}
	} else {
		mid = circuit.Point{X: b.X, Y: a.Y}
	}
	return []circuit.Point{start.Position, a, mid, b, end.Position}
}

// routeParallel handles facings on the same axis: a Z with its cross leg at
// the midpoint when that satisfies both exits, at a stub distance past the
// far terminal when both exits point the same way, or a full S detour when
// no single cross leg can work.
func routeParallel(start, end circuit.ConnPoint) []circuit.Point {
	s, e := start.Position, end.Position
	if start.Facing.Horizontal() {
		if mx, ok := crossLeg(s.X, e.X, start.Facing == circuit.Right, end.Facing == circuit.Right); ok && s.Y != e.Y {
			return []circuit.Point{s, {X: mx, Y: s.Y}, {X: mx, Y: e.Y}, e}
		}
		my := (s.Y + e.Y) / 2
		if s.Y == e.Y {
			my = s.Y + Stub
		}
		x1 := step(s, start.Facing, Stub).X
		x2 := step(e, end.Facing, Stub).X
		return []circuit.Point{s, {X: x1, Y: s.Y}, {X: x1, Y: my}, {X: x2, Y: my}, {X: x2, Y: e.Y}, e}
	}
	if my, ok := crossLeg(s.Y, e.Y, start.Facing == circuit.Down, end.Facing == circuit.Down); ok && s.X != e.X {
		return []circuit.Point{s, {X: s.X, Y: my}, {X: e.X, Y: my}, e}
	}
	mx := (s.X + e.X) / 2
	if s.X == e.X {
		mx = s.X + Stub
	}
	y1 := step(s, start.Facing, Stub).Y
	y2 := step(e, end.Facing, Stub).Y
	return []circuit.Point{s, {X: s.X, Y: y1}, {X: mx, Y: y1}, {X: mx, Y: y2}, {X: e.X, Y: y2}, e}
}

// crossLeg picks the coordinate of the Z cross leg on the facing axis.
// startPositive/endPositive say whether each facing points toward the
// positive end of the axis. ok is false when no single leg position can
// honor both exits.
func crossLeg(s, e float64, startPositive, endPositive bool) (float64, bool) {
	switch {
	case startPositive && endPositive:
		m := s
		if e > m {
			m = e
		}
		return m + Stub, true
	case !startPositive && !endPositive:
		m := s
		if e < m {
			m = e
		}
		return m - Stub, true
	case startPositive && !endPositive:
		// Leg must lie after s and before e.
		if s < e {
			return (s + e) / 2, true
		}
		return 0, false
	default:
		if e < s {
			return (s + e) / 2, true
		}
		return 0, false
	}
}

// travelDirection classifies an axis-aligned, nonzero displacement.
func travelDirection(from, to circuit.Point) (circuit.Direction, bool) {
	switch {
	case from.Y == to.Y && to.X > from.X:
		return circuit.Right, true
	case from.Y == to.Y && to.X < from.X:
		return circuit.Left, true
	case from.X == to.X && to.Y > from.Y:
		return circuit.Down, true
	case from.X == to.X && to.Y < from.Y:
		return circuit.Up, true
	default:
		return 0, false
	}
}

// leavesAlong reports whether the segment from p to q makes a nonzero move
// in direction d.
func leavesAlong(p, q circuit.Point, d circuit.Direction) bool {
	got, ok := travelDirection(p, q)
	return ok && got == d
}

// step moves a point by dist in direction d.
func step(p circuit.Point, d circuit.Direction, dist float64) circuit.Point {
	v := d.Vector()
	return circuit.Point{X: p.X + v.X*dist, Y: p.Y + v.Y*dist}
}

// normalize removes zero-length legs and merges monotone collinear runs so
// the emitted path strictly alternates between horizontal and vertical
// segments.
func normalize(pts []circuit.Point) []circuit.Point {
	out := pts[:1:1]
	for _, p := range pts[1:] {
		if p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	for i := 1; i < len(out)-1; {
		a, b, c := out[i-1], out[i], out[i+1]
		if (a.X == b.X && b.X == c.X && between(a.Y, b.Y, c.Y)) ||
			(a.Y == b.Y && b.Y == c.Y && between(a.X, b.X, c.X)) {
			out = append(out[:i], out[i+1:]...)
			continue
		}
		i++
	}
	return out
}

// between reports whether m lies on the closed interval spanned by a and c.
func between(a, m, c float64) bool {
	if a > c {
		a, c = c, a
	}
	return a <= m && m <= c
}

// tagPoints converts raw points into wire points, marking the ends.
func tagPoints(pts []circuit.Point) []circuit.WirePoint {
	out := make([]circuit.WirePoint, len(pts))
	for i, p := range pts {
		kind := circuit.PointCorner
		if i == 0 || i == len(pts)-1 {
			kind = circuit.PointEndpoint
		}
		out[i] = circuit.WirePoint{X: p.X, Y: p.Y, Kind: kind}
	}
	return out
}
