// Package spatial associates shapes with nearby text labels. The search is a
// plain linear scan: every drawing seen so far carries at most a few thousand
// entities, and the stable tie-break below matters more than asymptotics.
package spatial

import (
	"github.com/pyhub-apps/plotrecon-golang/pkg/drawing"
	"github.com/pyhub-apps/plotrecon-golang/pkg/geom"
)

// Predicate filters label content during a search, e.g. "is plot-number
// shaped".
type Predicate func(content string) bool

// NearestLabel returns the qualifying label closest to point, provided that
// the minimum distance is within tolerance. The scan keeps a strictly smaller
// distance only, so of two equidistant candidates the one earlier in input
// order wins; the result never depends on map iteration order.
func NearestLabel(point geom.Point, labels []drawing.TextLabel, predicate Predicate, tolerance float64) (drawing.TextLabel, bool) {
	best := -1
	bestDist := 0.0

	for i, label := range labels {
		if predicate != nil && !predicate(label.Content) {
			continue
		}
		d := geom.Distance(point, label.Position)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}

	if best < 0 || bestDist > tolerance {
		return drawing.TextLabel{}, false
	}
	return labels[best], true
}

// HasLabelWithin reports whether any qualifying label lies within tolerance of
// point. Unlike NearestLabel this is a pure presence test and stops at the
// first hit in input order.
func HasLabelWithin(point geom.Point, labels []drawing.TextLabel, predicate Predicate, tolerance float64) bool {
	for _, label := range labels {
		if predicate != nil && !predicate(label.Content) {
			continue
		}
		if geom.Distance(point, label.Position) <= tolerance {
			return true
		}
	}
	return false
}
