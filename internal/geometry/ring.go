package geometry

import "math"

// RingTolerance is the largest Manhattan distance from a hull vertex at which a
// fruiting coordinate still counts as part of the ring.
const RingTolerance = 2

// Ring summarises how well a set of fruiting coordinates forms an annulus.
type Ring struct {
	// Ratio is Members/Total, in [0, 1].
	Ratio float64
	// Hull is the convex hull of the measured points, counter-clockwise.
	Hull    []Point
	Members int
	Total   int
}

// Area returns the area of the ring's hull.
func (r Ring) Area() float64 { return Area(r.Hull) }

// Diameter returns the diameter of the circle whose area equals the hull area.
func (r Ring) Diameter() float64 {
	return 2 * math.Sqrt(r.Area()/math.Pi)
}

// HullDistance returns the minimum Manhattan distance from p to any vertex of
// hull. It returns -1 for an empty hull.
func HullDistance(p Point, hull []Point) int {
	best := -1
	for _, v := range hull {
		d := p.Manhattan(v)
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

// ClassifyRing reports, for each point, whether it lies within tol of a hull
// vertex, and returns the number of such members.
func ClassifyRing(points, hull []Point, tol int) ([]bool, int) {
	members := make([]bool, len(points))
	count := 0
	for i, p := range points {
		d := HullDistance(p, hull)
		if d >= 0 && d <= tol {
			members[i] = true
			count++
		}
	}
	return members, count
}

// MeasureRing computes the hull of points and the fraction of points that sit
// on it. The second result is false when there are no points to measure.
func MeasureRing(points []Point) (Ring, bool) {
	if len(points) == 0 {
		return Ring{}, false
	}
	hull := ConvexHull(points)
	_, members := ClassifyRing(points, hull, RingTolerance)
	return Ring{
		Ratio:   float64(members) / float64(len(points)),
		Hull:    hull,
		Members: members,
		Total:   len(points),
	}, true
}
