package routing_test

import (
	"testing"

	"github.com/google/uuid"

	"circed/circuit"
	"circed/routing"
)

func wireWithPath(pts ...circuit.Point) *circuit.Wire {
	path := make([]circuit.WirePoint, len(pts))
	for i, p := range pts {
		kind := circuit.PointCorner
		if i == 0 || i == len(pts)-1 {
			kind = circuit.PointEndpoint
		}
		path[i] = circuit.WirePoint{X: p.X, Y: p.Y, Kind: kind}
	}
	return &circuit.Wire{ID: uuid.New(), Path: path}
}

func TestDragCornerKeepsEndpointsPinned(t *testing.T) {
	w := wireWithPath(
		circuit.Point{X: 0, Y: 0}, circuit.Point{X: 50, Y: 0},
		circuit.Point{X: 50, Y: 80}, circuit.Point{X: 100, Y: 80},
	)
	if err := routing.DragCorner(w, 1, circuit.Point{X: 60, Y: 10}); err != nil {
		t.Fatal(err)
	}

	if (w.Path[0].Pos() != circuit.Point{X: 0, Y: 0}) {
		t.Errorf("start endpoint moved to %+v", w.Path[0].Pos())
	}
	if (w.Path[len(w.Path)-1].Pos() != circuit.Point{X: 100, Y: 80}) {
		t.Errorf("end endpoint moved to %+v", w.Path[len(w.Path)-1].Pos())
	}
	if !circuit.Orthogonal(w.Path) {
		t.Fatalf("path %v no longer orthogonal", w.Path)
	}
	// The dragged corner keeps the horizontal first segment, so it takes
	// the cursor X but stays on the start row, and the next corner slides.
	if (w.Path[1].Pos() != circuit.Point{X: 60, Y: 0}) {
		t.Errorf("corner 1 = %+v, want (60,0)", w.Path[1].Pos())
	}
	if (w.Path[2].Pos() != circuit.Point{X: 60, Y: 80}) {
		t.Errorf("corner 2 = %+v, want (60,80)", w.Path[2].Pos())
	}
}

func TestDragCornerNearEndPropagatesBackward(t *testing.T) {
	w := wireWithPath(
		circuit.Point{X: 0, Y: 0}, circuit.Point{X: 50, Y: 0},
		circuit.Point{X: 50, Y: 80}, circuit.Point{X: 100, Y: 80},
	)
	if err := routing.DragCorner(w, 2, circuit.Point{X: 40, Y: 70}); err != nil {
		t.Fatal(err)
	}

	if (w.Path[0].Pos() != circuit.Point{X: 0, Y: 0}) ||
		(w.Path[3].Pos() != circuit.Point{X: 100, Y: 80}) {
		t.Fatal("an endpoint moved")
	}
	if !circuit.Orthogonal(w.Path) {
		t.Fatalf("path %v no longer orthogonal", w.Path)
	}
	// Corner 2 ends the vertical middle segment, so it takes the cursor X
	// and stays on the end row; corner 1 follows backward.
	if (w.Path[2].Pos() != circuit.Point{X: 40, Y: 80}) {
		t.Errorf("corner 2 = %+v, want (40,80)", w.Path[2].Pos())
	}
	if (w.Path[1].Pos() != circuit.Point{X: 40, Y: 0}) {
		t.Errorf("corner 1 = %+v, want (40,0)", w.Path[1].Pos())
	}
}

func TestDragOnlyCornerOfLPath(t *testing.T) {
	w := wireWithPath(
		circuit.Point{X: 0, Y: 0}, circuit.Point{X: 100, Y: 0}, circuit.Point{X: 100, Y: 100},
	)
	// Cursor close to the vertical through the start pivots the L the
	// other way.
	if err := routing.DragCorner(w, 1, circuit.Point{X: 10, Y: 90}); err != nil {
		t.Fatal(err)
	}
	if (w.Path[1].Pos() != circuit.Point{X: 0, Y: 100}) {
		t.Errorf("corner = %+v, want (0,100)", w.Path[1].Pos())
	}
	if !circuit.Orthogonal(w.Path) {
		t.Fatal("pivoted path not orthogonal")
	}
}

func TestDragCornerRejectsEndpoints(t *testing.T) {
	w := wireWithPath(
		circuit.Point{X: 0, Y: 0}, circuit.Point{X: 50, Y: 0}, circuit.Point{X: 50, Y: 80},
	)
	if err := routing.DragCorner(w, 0, circuit.Point{}); err == nil {
		t.Error("dragging the start endpoint should fail")
	}
	if err := routing.DragCorner(w, 2, circuit.Point{}); err == nil {
		t.Error("dragging the end endpoint should fail")
	}
	if err := routing.DragCorner(w, 5, circuit.Point{}); err == nil {
		t.Error("out-of-range index should fail")
	}
}

func TestCornerAt(t *testing.T) {
	w := wireWithPath(
		circuit.Point{X: 0, Y: 0}, circuit.Point{X: 50, Y: 0},
		circuit.Point{X: 50, Y: 80}, circuit.Point{X: 100, Y: 80},
	)
	if got := routing.CornerAt(w, circuit.Point{X: 52, Y: 3}, 12); got != 1 {
		t.Errorf("CornerAt near corner 1 = %d", got)
	}
	// Endpoints are not draggable corners.
	if got := routing.CornerAt(w, circuit.Point{X: 0, Y: 0}, 12); got != -1 {
		t.Errorf("CornerAt on endpoint = %d, want -1", got)
	}
	if got := routing.CornerAt(w, circuit.Point{X: 200, Y: 200}, 12); got != -1 {
		t.Errorf("CornerAt far away = %d, want -1", got)
	}
}

func TestNearSegment(t *testing.T) {
	w := wireWithPath(circuit.Point{X: 0, Y: 0}, circuit.Point{X: 100, Y: 0})
	if !routing.NearSegment(w, circuit.Point{X: 50, Y: 5}, 10) {
		t.Error("point 5 units off the segment not detected")
	}
	if routing.NearSegment(w, circuit.Point{X: 50, Y: 30}, 10) {
		t.Error("point 30 units off the segment detected")
	}
}

func TestPropagateStartSlidesAdjacentLeg(t *testing.T) {
	w := wireWithPath(
		circuit.Point{X: 0, Y: 0}, circuit.Point{X: 50, Y: 0},
		circuit.Point{X: 50, Y: 80}, circuit.Point{X: 100, Y: 80},
	)
	if !routing.PropagateStart(w, circuit.Point{X: 10, Y: 5}) {
		t.Fatal("propagate reported failure")
	}
	want := []circuit.Point{{X: 10, Y: 5}, {X: 50, Y: 5}, {X: 50, Y: 80}, {X: 100, Y: 80}}
	for i, p := range want {
		if w.Path[i].Pos() != p {
			t.Errorf("point %d = %+v, want %+v", i, w.Path[i].Pos(), p)
		}
	}
}

func TestPropagateEndSlidesAdjacentLeg(t *testing.T) {
	w := wireWithPath(
		circuit.Point{X: 0, Y: 0}, circuit.Point{X: 50, Y: 0},
		circuit.Point{X: 50, Y: 80}, circuit.Point{X: 100, Y: 80},
	)
	if !routing.PropagateEnd(w, circuit.Point{X: 120, Y: 90}) {
		t.Fatal("propagate reported failure")
	}
	want := []circuit.Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 90}, {X: 120, Y: 90}}
	for i, p := range want {
		if w.Path[i].Pos() != p {
			t.Errorf("point %d = %+v, want %+v", i, w.Path[i].Pos(), p)
		}
	}
}

// A two-point wire has no leg to slide; moving one end off the axis must
// report failure so the caller re-routes.
func TestPropagateStartTwoPointFailure(t *testing.T) {
	w := wireWithPath(circuit.Point{X: 0, Y: 0}, circuit.Point{X: 100, Y: 0})
	if routing.PropagateStart(w, circuit.Point{X: 10, Y: 30}) {
		t.Error("diagonal two-point wire reported as orthogonal")
	}
}

// Sliding an endpoint onto the opposite endpoint collapses the wire to a
// point; propagation must report failure rather than accept the shape.
func TestPropagateRejectsCollapsedWire(t *testing.T) {
	w := wireWithPath(circuit.Point{X: 0, Y: 0}, circuit.Point{X: 100, Y: 0})
	if routing.PropagateStart(w, circuit.Point{X: 100, Y: 0}) {
		t.Error("start moved onto the end reported as a valid wire")
	}

	w = wireWithPath(circuit.Point{X: 0, Y: 0}, circuit.Point{X: 100, Y: 0})
	if routing.PropagateEnd(w, circuit.Point{X: 0, Y: 0}) {
		t.Error("end moved onto the start reported as a valid wire")
	}
}
