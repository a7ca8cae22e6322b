package routing

import (
	"fmt"

	"circed/circuit"
	"circed/geometry"
)

// DragCorner moves the corner at index i of a wire's path to pos, then
// repairs the neighboring points so every segment stays axis-aligned.
//
// Which axis a corner moves freely on follows the alternating orientation of
// the path's segments: segment i is horizontal exactly when (i even) matches
// the orientation of the first segment. Corners adjacent to the end of the
// path propagate their repair backward toward the start, all others forward
// toward the end. Endpoints tied to terminals are never moved; a drag that
// cannot keep them pinned is clamped to the nearest valid shape rather than
// rejected.
func DragCorner(w *circuit.Wire, i int, pos circuit.Point) error {
	if i <= 0 || i >= len(w.Path)-1 {
		return fmt.Errorf("point %d of wire %s is not a draggable corner", i, w.ID)
	}
	path := w.Path

	nearStart := i == 1
	nearEnd := i == len(path)-2
	prev := path[i-1]
	next := path[i+1]

	switch {
	case nearStart && nearEnd:
		// Only corner of a 3-point wire: it pivots between two pinned
		// endpoints, snapping to whichever L the cursor is closer to.
		if geometry.Abs(pos.X-prev.X) < geometry.Abs(pos.Y-prev.Y) {
			path[i].X = prev.X
			path[i].Y = next.Y
		} else {
			path[i].Y = prev.Y
			path[i].X = next.X
		}
	case nearEnd:
		// The segment into the end endpoint keeps its orientation; the
		// repair walks backward so the start endpoint stays pinned.
		if !segmentHorizontal(path, i-1) {
			path[i].Y = next.Y
			path[i].X = pos.X
		} else {
			path[i].X = next.X
			path[i].Y = pos.Y
		}
		for j := i - 1; j >= 1; j-- {
			if segmentHorizontal(path, j) {
				path[j].Y = path[j+1].Y
			} else {
				path[j].X = path[j+1].X
			}
		}
	default:
		if segmentHorizontal(path, i-1) {
			path[i].Y = prev.Y
			path[i].X = pos.X
		} else {
			path[i].X = prev.X
			path[i].Y = pos.Y
		}
		for j := i + 1; j < len(path)-1; j++ {
			if segmentHorizontal(path, j-1) {
				path[j].Y = path[j-1].Y
			} else {
				path[j].X = path[j-1].X
			}
		}
	}
	return nil
}

// firstSegmentHorizontal decides the orientation of a path's first segment
// by its dominant axis. Every other segment's orientation alternates from
// this one.
func firstSegmentHorizontal(path []circuit.WirePoint) bool {
	if len(path) < 2 {
		return true
	}
	return geometry.Abs(path[1].X-path[0].X) >= geometry.Abs(path[1].Y-path[0].Y)
}

// segmentHorizontal reports the orientation segment i (between points i and
// i+1) is required to have under the alternating pattern.
func segmentHorizontal(path []circuit.WirePoint, i int) bool {
	return (i%2 == 0) == firstSegmentHorizontal(path)
}

// CornerAt returns the index of the draggable corner within radius of pos,
// or -1. Endpoints are excluded.
func CornerAt(w *circuit.Wire, pos circuit.Point, radius float64) int {
	for i := 1; i < len(w.Path)-1; i++ {
		if geometry.Distance(pos.X, pos.Y, w.Path[i].X, w.Path[i].Y) <= radius {
			return i
		}
	}
	return -1
}

// NearSegment reports whether pos lies within threshold of any segment of
// the wire's path.
func NearSegment(w *circuit.Wire, pos circuit.Point, threshold float64) bool {
	for i := 0; i < len(w.Path)-1; i++ {
		d := geometry.PointSegmentDistance(pos.X, pos.Y,
			w.Path[i].X, w.Path[i].Y, w.Path[i+1].X, w.Path[i+1].Y)
		if d <= threshold {
			return true
		}
	}
	return false
}
