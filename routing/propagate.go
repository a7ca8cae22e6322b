package routing

import (
	"circed/circuit"
	"circed/geometry"
)

// PropagateStart moves the first point of a wire to the terminal's new
// position and slides the nearest leg to absorb the change. It returns false
// when sliding cannot keep the path orthogonal (a two-point wire knocked out
// of alignment) or when the endpoints would coincide; the caller should then
// re-route the wire in full.
func PropagateStart(w *circuit.Wire, pos circuit.Point) bool {
	if len(w.Path) == 0 {
		return false
	}
	w.Path[0].X = pos.X
	w.Path[0].Y = pos.Y

	if len(w.Path) > 2 {
		// The orientation of the second segment decides which axis the
		// first corner slides on.
		second, third := &w.Path[1], w.Path[2]
		if geometry.IsHorizontal(second.X, second.Y, third.X, third.Y) {
			second.X = pos.X
		} else {
			second.Y = pos.Y
		}
	}
	return wellFormed(w.Path)
}

// PropagateEnd is the mirror of PropagateStart for the wire's last point.
func PropagateEnd(w *circuit.Wire, pos circuit.Point) bool {
	n := len(w.Path)
	if n == 0 {
		return false
	}
	w.Path[n-1].X = pos.X
	w.Path[n-1].Y = pos.Y

	if n > 2 {
		secondLast, thirdLast := &w.Path[n-2], w.Path[n-3]
		if geometry.IsHorizontal(thirdLast.X, thirdLast.Y, secondLast.X, secondLast.Y) {
			secondLast.X = pos.X
		} else {
			secondLast.Y = pos.Y
		}
	}
	return wellFormed(w.Path)
}

// wellFormed reports whether a propagated path is still a usable wire:
// axis-aligned throughout and not collapsed onto a single point.
func wellFormed(path []circuit.WirePoint) bool {
	n := len(path)
	if n < 2 {
		return false
	}
	first, last := path[0], path[n-1]
	if first.X == last.X && first.Y == last.Y {
		return false
	}
	return circuit.Orthogonal(path)
}

// Reroute recomputes a wire's entire path between two resolved terminals,
// discarding user-made corners. Used when a rotation changes a terminal's
// facing and sliding legs cannot honor the new exit direction.
func Reroute(w *circuit.Wire, start, end circuit.ConnPoint) error {
	path, err := Route(start, end)
	if err != nil {
		return err
	}
	w.Path = path
	return nil
}
