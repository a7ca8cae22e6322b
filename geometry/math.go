package geometry

import "math"

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the minimum of two values.
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two values.
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// ManhattanDistance calculates the Manhattan distance between two points.
func ManhattanDistance(x1, y1, x2, y2 float64) float64 {
	return Abs(x2-x1) + Abs(y2-y1)
}

// IsHorizontal returns true if the line from (x1,y1) to (x2,y2) is more horizontal than vertical.
func IsHorizontal(x1, y1, x2, y2 float64) bool {
	return Abs(x2-x1) > Abs(y2-y1)
}

// IsVertical returns true if the line from (x1,y1) to (x2,y2) is more vertical than horizontal.
func IsVertical(x1, y1, x2, y2 float64) bool {
	return Abs(y2-y1) > Abs(x2-x1)
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// PointSegmentDistance returns the distance from (px,py) to the segment
// between (x1,y1) and (x2,y2).
func PointSegmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-x1, py-y1)
	}
	t := ((px-x1)*dx + (py-y1)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
}
