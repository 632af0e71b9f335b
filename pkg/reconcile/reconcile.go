// Package reconcile compares the total area of two plot populations and
// reports the divergence between them.
package reconcile

import (
	"math"

	"github.com/pyhub-apps/plotrecon-golang/pkg/plotset"
)

// PendingAreaTolerance is the absolute area difference above which the two
// populations are considered out of balance. It is expressed in the same unit
// as the totals being compared.
const PendingAreaTolerance = 0.01

// Result is the outcome of comparing two population totals.
type Result struct {
	AreaA         float64
	AreaB         float64
	AbsoluteDelta float64

	// RelativeDeltaPercent is the delta as a percentage of AreaA. It is 0 when
	// AreaA is zero; an empty original population is not an error.
	RelativeDeltaPercent float64

	// Pending is true when the absolute delta exceeds PendingAreaTolerance,
	// meaning some area is still unaccounted for between the two states.
	Pending bool
}

// Reconcile compares the total areas of two plot sets. Set A is the reference
// population (typically the original plots); the relative delta is expressed
// against it. Reconcile never fails.
func Reconcile(a, b plotset.PlotSet) Result {
	return Totals(a.TotalArea, b.TotalArea)
}

// Totals is Reconcile over bare area totals, for callers that have already
// converted to physical units.
func Totals(areaA, areaB float64) Result {
	delta := math.Abs(areaA - areaB)

	var percent float64
	if areaA > 0 {
		percent = delta / areaA * 100
	}

	return Result{
		AreaA:                areaA,
		AreaB:                areaB,
		AbsoluteDelta:        delta,
		RelativeDeltaPercent: percent,
		Pending:              delta > PendingAreaTolerance,
	}
}
