package geometry

import (
	"math"
	"slices"
)

// Cross returns the z component of (a-o) x (b-o). Positive values mean o, a, b
// make a counter-clockwise (left) turn, zero means they are collinear.
func Cross(o, a, b Point) int {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// ConvexHull returns the convex hull of points in counter-clockwise order using
// Andrew's monotone chain. Only strict left turns are kept, so collinear points
// on an edge are dropped. Duplicates are ignored. Fewer than three distinct
// points, or an all-collinear input, yield the distinct extreme points.
func ConvexHull(points []Point) []Point {
	pts := make([]Point, len(points))
	copy(pts, points)
	slices.SortFunc(pts, comparePoints)
	pts = slices.Compact(pts)

	if len(pts) < 3 {
		return pts
	}

	lower := make([]Point, 0, len(pts))
	for _, p := range pts {
		for len(lower) >= 2 && Cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]Point, 0, len(pts))
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && Cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := make([]Point, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)
	return hull
}

// Area returns the area enclosed by the polygon using the shoelace formula.
// Polygons with fewer than three vertices have zero area.
func Area(polygon []Point) float64 {
	if len(polygon) < 3 {
		return 0
	}
	sum := 0
	for i, p := range polygon {
		q := polygon[(i+1)%len(polygon)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(float64(sum)) / 2
}

func comparePoints(a, b Point) int {
	if a.X != b.X {
		return a.X - b.X
	}
	return a.Y - b.Y
}
