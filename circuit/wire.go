package circuit

import (
	"github.com/google/uuid"
)

// PointKind tags a wire point as a fixed endpoint or a draggable corner.
type PointKind string

const (
	// PointEndpoint is tied to a terminal and never moves during a drag.
	PointEndpoint PointKind = "endpoint"
	// PointCorner is freely draggable subject to orthogonality repair.
	PointCorner PointKind = "corner"
)

// WirePoint is one vertex of a wire's polyline.
type WirePoint struct {
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
	Kind PointKind `json:"kind"`
}

// Pos returns the point's coordinates.
func (p WirePoint) Pos() Point {
	return Point{X: p.X, Y: p.Y}
}

// TerminalRef identifies a terminal by its owning component and terminal
// name. Wires hold these instead of pointers so snapshots stay plain data.
type TerminalRef struct {
	Component uuid.UUID `json:"component"`
	Terminal  string    `json:"terminal"`
}

// Wire is an orthogonally routed connection between two terminals. The
// first path point sits on the start terminal, the last on the end terminal,
// and every segment in between is purely horizontal or vertical.
type Wire struct {
	ID    uuid.UUID   `json:"id"`
	Start TerminalRef `json:"start"`
	End   TerminalRef `json:"end"`
	Path  []WirePoint `json:"path"`
}

// Touches reports whether either wire endpoint is on the given component.
func (w *Wire) Touches(componentID uuid.UUID) bool {
	return w.Start.Component == componentID || w.End.Component == componentID
}

// Bounds returns the bounding box of the wire's path.
func (w *Wire) Bounds() Bounds {
	if len(w.Path) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: w.Path[0].Pos(), Max: w.Path[0].Pos()}
	for _, p := range w.Path[1:] {
		b = b.Union(Bounds{Min: p.Pos(), Max: p.Pos()})
	}
	return b
}

// Clone returns a deep copy of the wire.
func (w *Wire) Clone() *Wire {
	out := *w
	out.Path = make([]WirePoint, len(w.Path))
	copy(out.Path, w.Path)
	return &out
}

// Orthogonal reports whether every consecutive pair of points in the path
// differs on at most one axis. This is the invariant every routed or edited
// wire must satisfy.
func Orthogonal(path []WirePoint) bool {
	for i := 0; i < len(path)-1; i++ {
		if path[i].X != path[i+1].X && path[i].Y != path[i+1].Y {
			return false
		}
	}
	return true
}
