// Package geom provides the planar measurements the plot analysis is built on:
// polygon area/perimeter via the shoelace formula, circle measurements, and
// vertex centroids. All values are in raw drawing units; unit conversion is the
// caller's concern.
package geom

import (
	"fmt"
	"math"
)

// Point represents a 2D coordinate in drawing-unit space.
type Point struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// MeasurePolygon computes the area and perimeter of a simple polygon given its
// vertices in authored order. The vertex sequence is treated as cyclic, so the
// closing edge back to the first vertex is always included. Orientation does
// not matter: the shoelace sum is taken in absolute value.
//
// Fewer than 3 vertices is degenerate geometry and measures to (0, 0) rather
// than failing, so one malformed shape can never abort a whole drawing run.
// A self-intersecting input yields the raw shoelace result, which is
// deterministic but not a meaningful area.
func MeasurePolygon(vertices []Point) (area, perimeter float64) {
	if len(vertices) < 3 {
		return 0.0, 0.0
	}

	for i := range vertices {
		j := (i + 1) % len(vertices)
		area += vertices[i].X * vertices[j].Y
		area -= vertices[j].X * vertices[i].Y
		perimeter += Distance(vertices[i], vertices[j])
	}

	area = math.Abs(area) / 2.0
	return area, perimeter
}

// MeasureCircle computes the area and circumference of a circle. A negative
// radius is a caller contract violation and is rejected, never silently
// negated.
func MeasureCircle(center Point, radius float64) (area, perimeter float64, err error) {
	if radius < 0 {
		return 0, 0, fmt.Errorf("invalid circle at (%.2f, %.2f): negative radius %f", center.X, center.Y, radius)
	}
	return math.Pi * radius * radius, 2 * math.Pi * radius, nil
}

// Centroid returns the arithmetic mean of the vertex coordinates. This is the
// vertex centroid, not the area-weighted polygon centroid; the label-matching
// tolerances downstream were tuned against this simpler reference point, so it
// must stay this way. An empty vertex list yields the origin.
func Centroid(vertices []Point) Point {
	if len(vertices) == 0 {
		return Point{}
	}

	var sx, sy float64
	for _, v := range vertices {
		sx += v.X
		sy += v.Y
	}
	n := float64(len(vertices))
	return Point{X: sx / n, Y: sy / n}
}
