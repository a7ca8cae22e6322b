package routing_test

import (
	"errors"
	"testing"

	"circed/circuit"
	"circed/routing"
)

func pathPoints(path []circuit.WirePoint) []circuit.Point {
	out := make([]circuit.Point, len(path))
	for i, p := range path {
		out[i] = p.Pos()
	}
	return out
}

func samePoints(a []circuit.Point, b ...circuit.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// travel reports the direction of the axis-aligned segment from a to b.
func travel(t *testing.T, a, b circuit.Point) circuit.Direction {
	t.Helper()
	switch {
	case a.Y == b.Y && b.X > a.X:
		return circuit.Right
	case a.Y == b.Y && b.X < a.X:
		return circuit.Left
	case a.X == b.X && b.Y > a.Y:
		return circuit.Down
	case a.X == b.X && b.Y < a.Y:
		return circuit.Up
	}
	t.Fatalf("segment %v -> %v is not axis-aligned", a, b)
	return 0
}

func TestRouteStraight(t *testing.T) {
	path, err := routing.Route(
		circuit.ConnPoint{Position: circuit.Point{X: 0, Y: 0}, Facing: circuit.Right},
		circuit.ConnPoint{Position: circuit.Point{X: 100, Y: 0}, Facing: circuit.Left},
	)
	if err != nil {
		t.Fatal(err)
	}
	if !samePoints(pathPoints(path), circuit.Point{X: 0, Y: 0}, circuit.Point{X: 100, Y: 0}) {
		t.Errorf("straight route = %v, want two points", pathPoints(path))
	}
	if path[0].Kind != circuit.PointEndpoint || path[1].Kind != circuit.PointEndpoint {
		t.Error("straight route endpoints not tagged")
	}
}

func TestRouteLShaped(t *testing.T) {
	path, err := routing.Route(
		circuit.ConnPoint{Position: circuit.Point{X: 0, Y: 0}, Facing: circuit.Right},
		circuit.ConnPoint{Position: circuit.Point{X: 100, Y: 100}, Facing: circuit.Up},
	)
	if err != nil {
		t.Fatal(err)
	}
	if !samePoints(pathPoints(path),
		circuit.Point{X: 0, Y: 0}, circuit.Point{X: 100, Y: 0}, circuit.Point{X: 100, Y: 100}) {
		t.Errorf("L route = %v", pathPoints(path))
	}
	if path[1].Kind != circuit.PointCorner {
		t.Error("middle point not tagged as corner")
	}
}

// Terminals facing toward each other on the same axis but offset get a
// Z shape: two corners with the cross leg between the terminals.
func TestRouteZShaped(t *testing.T) {
	path, err := routing.Route(
		circuit.ConnPoint{Position: circuit.Point{X: 0, Y: 0}, Facing: circuit.Right},
		circuit.ConnPoint{Position: circuit.Point{X: 100, Y: 80}, Facing: circuit.Left},
	)
	if err != nil {
		t.Fatal(err)
	}
	if !samePoints(pathPoints(path),
		circuit.Point{X: 0, Y: 0}, circuit.Point{X: 50, Y: 0},
		circuit.Point{X: 50, Y: 80}, circuit.Point{X: 100, Y: 80}) {
		t.Errorf("Z route = %v", pathPoints(path))
	}
}

// Terminals whose facings point away from each other cannot use a midpoint
// cross leg; the route must still leave and arrive the right way.
func TestRouteFacingsAway(t *testing.T) {
	path, err := routing.Route(
		circuit.ConnPoint{Position: circuit.Point{X: 0, Y: 0}, Facing: circuit.Left},
		circuit.ConnPoint{Position: circuit.Point{X: 100, Y: 80}, Facing: circuit.Right},
	)
	if err != nil {
		t.Fatal(err)
	}
	pts := pathPoints(path)
	if got := travel(t, pts[0], pts[1]); got != circuit.Left {
		t.Errorf("leaves travelling %v, want Left", got)
	}
	if got := travel(t, pts[len(pts)-2], pts[len(pts)-1]); got != circuit.Left {
		t.Errorf("arrives travelling %v, want Left", got)
	}
}

func TestRouteDegenerate(t *testing.T) {
	p := circuit.ConnPoint{Position: circuit.Point{X: 10, Y: 10}, Facing: circuit.Up}
	if _, err := routing.Route(p, p); !errors.Is(err, circuit.ErrDegenerateWire) {
		t.Errorf("got %v, want ErrDegenerateWire", err)
	}
}

// Every facing combination must produce an orthogonal path that starts and
// ends exactly on the terminals, leaves along the start facing, and arrives
// travelling against the end facing.
func TestRouteAllFacingPairs(t *testing.T) {
	dirs := []circuit.Direction{circuit.Up, circuit.Right, circuit.Down, circuit.Left}
	start := circuit.Point{X: 0, Y: 0}
	end := circuit.Point{X: 100, Y: 80}

	for _, sf := range dirs {
		for _, ef := range dirs {
			name := sf.String() + "_" + ef.String()
			t.Run(name, func(t *testing.T) {
				path, err := routing.Route(
					circuit.ConnPoint{Position: start, Facing: sf},
					circuit.ConnPoint{Position: end, Facing: ef},
				)
				if err != nil {
					t.Fatal(err)
				}
				pts := pathPoints(path)
				if len(pts) < 2 {
					t.Fatalf("path too short: %v", pts)
				}
				if pts[0] != start || pts[len(pts)-1] != end {
					t.Fatalf("path %v does not span %v -> %v", pts, start, end)
				}
				if !circuit.Orthogonal(path) {
					t.Fatalf("path %v is not orthogonal", pts)
				}
				if got := travel(t, pts[0], pts[1]); got != sf {
					t.Errorf("leaves travelling %v, want %v", got, sf)
				}
				want := ef.Opposite()
				if got := travel(t, pts[len(pts)-2], pts[len(pts)-1]); got != want {
					t.Errorf("arrives travelling %v, want %v", got, want)
				}
				for i := 1; i < len(pts); i++ {
					if pts[i] == pts[i-1] {
						t.Errorf("zero-length segment at %d in %v", i, pts)
					}
				}
			})
		}
	}
}

// Terminals aligned on one axis with facings that forbid a straight run
// still route, via stub legs.
func TestRouteAlignedButBlocked(t *testing.T) {
	path, err := routing.Route(
		circuit.ConnPoint{Position: circuit.Point{X: 0, Y: 0}, Facing: circuit.Down},
		circuit.ConnPoint{Position: circuit.Point{X: 100, Y: 0}, Facing: circuit.Down},
	)
	if err != nil {
		t.Fatal(err)
	}
	pts := pathPoints(path)
	if !circuit.Orthogonal(path) {
		t.Fatalf("path %v not orthogonal", pts)
	}
	if got := travel(t, pts[0], pts[1]); got != circuit.Down {
		t.Errorf("leaves travelling %v, want Down", got)
	}
	if got := travel(t, pts[len(pts)-2], pts[len(pts)-1]); got != circuit.Up {
		t.Errorf("arrives travelling %v, want Up", got)
	}
}
