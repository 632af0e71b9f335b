// Package plotset turns raw drawing entities into measured, identified plot
// populations. It combines the geometry, identifier, and spatial packages:
// shapes are filtered by population, measured, and associated with the nearest
// identifier text within a caller-supplied tolerance.
package plotset

import (
	"fmt"

	"github.com/pyhub-apps/plotrecon-golang/pkg/drawing"
	"github.com/pyhub-apps/plotrecon-golang/pkg/geom"
	"github.com/pyhub-apps/plotrecon-golang/pkg/ident"
	"github.com/pyhub-apps/plotrecon-golang/pkg/spatial"
)

// MeasuredShape is a shape with its measurements and assigned identifier.
// It is built once during extraction and never mutated afterwards.
type MeasuredShape struct {
	drawing.Shape

	Area      float64
	Perimeter float64
	Centroid  geom.Point

	// Identifier is the normalized label text assigned to this shape, or a
	// synthetic Plot_<n> value when Fallback is true.
	Identifier ident.Identifier
	Fallback   bool
}

// PlotSet is one measured population of plots.
type PlotSet struct {
	Population     drawing.PopulationTag
	Members        []MeasuredShape
	TotalArea      float64
	TotalPerimeter float64

	// Identifiers is the deduplicated, sorted set of identifiers assigned to
	// the members, fallbacks included.
	Identifiers []ident.Identifier
}

// UnassignedPlot is a shape that has no plot-number label nearby but does have
// a survey-number label within tolerance.
type UnassignedPlot struct {
	Shape     drawing.Shape
	Area      float64
	Perimeter float64
	Centroid  geom.Point

	SurveyText  string
	SurveyLayer string
}

// QualifiesAsPlotLabel is the label predicate used when assigning identifiers
// to shapes: plot-number shaped text or a bare number standing in for one.
func QualifiesAsPlotLabel(content string) bool {
	return ident.IsPlotNumber(content) || ident.IsSimpleNumber(content)
}

// measure computes area, perimeter and reference centroid for a shape.
// Degenerate polygons measure to zero; a negative circle radius is a contract
// violation from the reader and is returned as an error.
func measure(s drawing.Shape) (area, perimeter float64, centroid geom.Point, err error) {
	switch s.Kind {
	case drawing.KindPolygon:
		area, perimeter = geom.MeasurePolygon(s.Vertices)
		return area, perimeter, geom.Centroid(s.Vertices), nil
	case drawing.KindCircle:
		area, perimeter, err = geom.MeasureCircle(s.Center, s.Radius)
		return area, perimeter, s.Center, err
	default:
		return 0, 0, geom.Point{}, fmt.Errorf("shape kind %q is not measurable", s.Kind)
	}
}

// Extract builds the PlotSet for one population: shapes tagged with tag are
// measured and each is assigned the nearest qualifying label within
// idTolerance of its centroid. Shapes with no label in range are kept, not
// dropped, under a synthetic "Plot_<n>" identifier where n is the shape's
// 1-based position in the filtered population.
//
// An empty population yields an empty PlotSet with zero totals, not an error.
func Extract(shapes []drawing.Shape, labels []drawing.TextLabel, tag drawing.PopulationTag, idTolerance float64) (PlotSet, error) {
	set := PlotSet{Population: tag}

	var population []drawing.Shape
	for _, s := range shapes {
		if s.Population == tag && s.Measurable() {
			population = append(population, s)
		}
	}

	all := make([]ident.Identifier, 0, len(population))
	for k, s := range population {
		area, perimeter, centroid, err := measure(s)
		if err != nil {
			return PlotSet{}, fmt.Errorf("shape %d in %s population: %w", k+1, tag, err)
		}

		member := MeasuredShape{
			Shape:     s,
			Area:      area,
			Perimeter: perimeter,
			Centroid:  centroid,
		}

		if label, ok := spatial.NearestLabel(centroid, labels, QualifiesAsPlotLabel, idTolerance); ok {
			member.Identifier = ident.Normalize(label.Content)
		} else {
			name := fmt.Sprintf("Plot_%d", k+1)
			member.Identifier = ident.Identifier{Text: name, Key: ident.SortKey(name)}
			member.Fallback = true
		}

		set.Members = append(set.Members, member)
		set.TotalArea += area
		set.TotalPerimeter += perimeter
		all = append(all, member.Identifier)
	}

	set.Identifiers = ident.Dedupe(all)
	return set, nil
}

// FindUnassignedWithSurvey scans every measurable shape, regardless of
// population, for the "has a survey number but no plot number" condition: no
// plot-number label within plotTolerance of the shape's centroid, but a
// survey-number label within surveyTolerance. The plot-number check is a pure
// presence test and stops at the first hit; the survey label reported is the
// nearest one.
func FindUnassignedWithSurvey(shapes []drawing.Shape, labels []drawing.TextLabel, plotTolerance, surveyTolerance float64) ([]UnassignedPlot, error) {
	var out []UnassignedPlot

	for k, s := range shapes {
		if !s.Measurable() {
			continue
		}
		centroid := s.ReferencePoint()

		if spatial.HasLabelWithin(centroid, labels, ident.IsPlotNumber, plotTolerance) {
			continue
		}
		survey, ok := spatial.NearestLabel(centroid, labels, ident.IsSurveyNumber, surveyTolerance)
		if !ok {
			continue
		}

		area, perimeter, _, err := measure(s)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", k+1, err)
		}

		out = append(out, UnassignedPlot{
			Shape:       s,
			Area:        area,
			Perimeter:   perimeter,
			Centroid:    centroid,
			SurveyText:  survey.Content,
			SurveyLayer: survey.Layer,
		})
	}

	return out, nil
}
