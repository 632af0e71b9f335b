package geom

import (
	"math"
	"testing"
)

const floatTolerance = 1e-6

func TestMeasurePolygonUnitSquare(t *testing.T) {
	square := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	area, perimeter := MeasurePolygon(square)

	if math.Abs(area-1.0) > floatTolerance {
		t.Errorf("Expected area 1.0, got %f", area)
	}
	if math.Abs(perimeter-4.0) > floatTolerance {
		t.Errorf("Expected perimeter 4.0, got %f", perimeter)
	}
}

func TestMeasurePolygonDegenerate(t *testing.T) {
	tests := []struct {
		name     string
		vertices []Point
	}{
		{"nil vertices", nil},
		{"empty vertices", []Point{}},
		{"single vertex", []Point{{5, 5}}},
		{"two vertices", []Point{{0, 0}, {10, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area, perimeter := MeasurePolygon(tt.vertices)
			if area != 0 || perimeter != 0 {
				t.Errorf("Expected (0, 0) for degenerate input, got (%f, %f)", area, perimeter)
			}
		})
	}
}

func TestMeasurePolygonOrientationInvariant(t *testing.T) {
	// A triangle with area 50 in both windings.
	ccw := []Point{{0, 0}, {10, 0}, {10, 10}}
	cw := []Point{{10, 10}, {10, 0}, {0, 0}}

	areaCCW, perimCCW := MeasurePolygon(ccw)
	areaCW, perimCW := MeasurePolygon(cw)

	if math.Abs(areaCCW-50.0) > floatTolerance {
		t.Errorf("Expected triangle area 50.0, got %f", areaCCW)
	}
	if math.Abs(areaCCW-areaCW) > floatTolerance {
		t.Errorf("Area differs by winding: %f vs %f", areaCCW, areaCW)
	}
	if math.Abs(perimCCW-perimCW) > floatTolerance {
		t.Errorf("Perimeter differs by winding: %f vs %f", perimCCW, perimCW)
	}
}

func TestMeasurePolygonCyclicRotationInvariant(t *testing.T) {
	base := []Point{{0, 0}, {4, 0}, {4, 3}, {1, 5}, {0, 3}}
	wantArea, wantPerimeter := MeasurePolygon(base)

	for shift := 1; shift < len(base); shift++ {
		rotated := append(append([]Point{}, base[shift:]...), base[:shift]...)
		area, perimeter := MeasurePolygon(rotated)
		if math.Abs(area-wantArea) > floatTolerance {
			t.Errorf("Rotation by %d changed area: %f vs %f", shift, area, wantArea)
		}
		if math.Abs(perimeter-wantPerimeter) > floatTolerance {
			t.Errorf("Rotation by %d changed perimeter: %f vs %f", shift, perimeter, wantPerimeter)
		}
	}
}

func TestMeasureCircle(t *testing.T) {
	area, perimeter, err := MeasureCircle(Point{X: 3, Y: 4}, 2.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if math.Abs(area-math.Pi*4) > floatTolerance {
		t.Errorf("Expected area %f, got %f", math.Pi*4, area)
	}
	if math.Abs(perimeter-4*math.Pi) > floatTolerance {
		t.Errorf("Expected perimeter %f, got %f", 4*math.Pi, perimeter)
	}
}

func TestMeasureCircleNegativeRadius(t *testing.T) {
	_, _, err := MeasureCircle(Point{}, -1.0)
	if err == nil {
		t.Error("Expected error for negative radius, got nil")
	}
}

func TestCentroid(t *testing.T) {
	tests := []struct {
		name     string
		vertices []Point
		want     Point
	}{
		{"unit square", []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, Point{0.5, 0.5}},
		{"triangle", []Point{{0, 0}, {6, 0}, {0, 6}}, Point{2, 2}},
		{"single vertex", []Point{{7, -3}, {7, -3}}, Point{7, -3}},
		{"empty input", nil, Point{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Centroid(tt.vertices)
			if math.Abs(got.X-tt.want.X) > floatTolerance || math.Abs(got.Y-tt.want.Y) > floatTolerance {
				t.Errorf("Centroid() = (%f, %f), want (%f, %f)", got.X, got.Y, tt.want.X, tt.want.Y)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Point{0, 0}, Point{3, 4}); math.Abs(d-5.0) > floatTolerance {
		t.Errorf("Distance() = %f, want 5.0", d)
	}
	if d := Distance(Point{2, 2}, Point{2, 2}); d != 0 {
		t.Errorf("Distance() = %f, want 0", d)
	}
}
