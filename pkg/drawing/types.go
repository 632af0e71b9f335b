// Package drawing defines the entity records shared by every drawing reader
// and by the analysis pipeline: measurable shapes, free-floating text labels,
// and the population tagging that separates the original parcel state from the
// final one.
package drawing

import (
	"github.com/pyhub-apps/plotrecon-golang/pkg/geom"
)

// ShapeKind represents the geometric kind of a shape entity.
type ShapeKind string

const (
	KindPolygon ShapeKind = "polygon"
	KindCircle  ShapeKind = "circle"
)

// PopulationTag classifies a shape as belonging to the original parcel layout,
// the final layout, or neither.
type PopulationTag string

const (
	PopulationOriginal PopulationTag = "original"
	PopulationFinal    PopulationTag = "final"
	PopulationOther    PopulationTag = "other"
)

// Shape is a measurable geometric entity from a drawing. Polygon shapes carry
// their vertices in authored order; circle shapes carry center and radius.
type Shape struct {
	Kind       ShapeKind
	Vertices   []geom.Point // polygon only, authored order
	Center     geom.Point   // circle only
	Radius     float64      // circle only
	Population PopulationTag
	Layer      string
	Color      int // source color attribute the population was derived from
}

// ReferencePoint returns the point used for spatial label association: the
// vertex centroid for polygons, the center for circles.
func (s Shape) ReferencePoint() geom.Point {
	if s.Kind == KindCircle {
		return s.Center
	}
	return geom.Centroid(s.Vertices)
}

// Measurable reports whether the shape is of a kind the analysis can measure.
func (s Shape) Measurable() bool {
	return s.Kind == KindPolygon || s.Kind == KindCircle
}

// TextLabel is a free-floating text annotation with its insertion position.
type TextLabel struct {
	Content  string
	Position geom.Point
	Layer    string
	Color    int
}

// Document is a loaded drawing: an order-preserving view over its shape and
// text entities. Implementations materialize all entities at open time; there
// is no streaming.
type Document interface {
	// Shapes returns all measurable shape entities in file order.
	Shapes() []Shape

	// Labels returns all text entities with non-empty content in file order.
	Labels() []TextLabel

	// EntityCount returns the total number of entities read from the source,
	// including kinds the analysis ignores.
	EntityCount() int

	// Close releases resources associated with the drawing.
	Close() error
}

// ColorMapping tells a reader which source color attribute marks each
// population. The zero-value mapping is not useful; use DefaultColorMapping
// unless the drawing uses its own convention.
type ColorMapping struct {
	Original int
	Final    int
}

// DefaultColorMapping is the common drafting convention for these drawings:
// green (ACI 3) for original plots, red (ACI 1) for final plots.
func DefaultColorMapping() ColorMapping {
	return ColorMapping{Original: 3, Final: 1}
}

// Tag maps a source color attribute to its population.
func (m ColorMapping) Tag(color int) PopulationTag {
	switch color {
	case m.Original:
		return PopulationOriginal
	case m.Final:
		return PopulationFinal
	default:
		return PopulationOther
	}
}
