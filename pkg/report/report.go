// Package report renders analysis results for people: per-plot area tables,
// a comprehensive summary, CSV export, and an HTML comparison chart. It only
// formats; every number it prints was computed by the extraction and
// reconciliation packages, and the drawing-unit to meter conversion happens
// here, at the presentation edge.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/pyhub-apps/plotrecon-golang/pkg/plotset"
	"github.com/pyhub-apps/plotrecon-golang/pkg/reconcile"
	"github.com/pyhub-apps/plotrecon-golang/pkg/units"
)

// Run identifies one analysis run in report output.
type Run struct {
	ID          string
	GeneratedAt time.Time
}

// NewRun allocates a fresh run header.
func NewRun() Run {
	return Run{ID: uuid.NewString(), GeneratedAt: time.Now()}
}

// WriteDetailed writes the per-plot table for one population: index, assigned
// plot number, area and perimeter in physical units, shape kind and layer.
func WriteDetailed(w io.Writer, title string, set plotset.PlotSet, scale units.Scale) error {
	if _, err := fmt.Fprintf(w, "%s (%d plots)\n", title, len(set.Members)); err != nil {
		return err
	}
	if len(set.Members) == 0 {
		_, err := fmt.Fprintln(w, "  (no plots in this population)")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Index\tPlot No.\tArea (sq m)\tPerimeter (m)\tType\tLayer")

	for i, m := range set.Members {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\t%s\t%s\n",
			i+1, m.Identifier.Text, scale.Area(m.Area), scale.Length(m.Perimeter), m.Kind, m.Layer)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "TOTAL: %.2f sq meters, %.2f meters perimeter\n\n",
		scale.Area(set.TotalArea), scale.Length(set.TotalPerimeter))
	return err
}

// WriteSummary writes the comprehensive closing summary: population counts and
// totals, identifier lists, area distribution statistics, the
// unassigned-with-survey findings, and the reconciliation verdict.
func WriteSummary(w io.Writer, run Run, original, final plotset.PlotSet, unassigned []plotset.UnassignedPlot, rec reconcile.Result, scale units.Scale) error {
	fmt.Fprintf(w, "Analysis run %s (%s)\n\n", run.ID, run.GeneratedAt.Format(time.RFC3339))

	writePopulation := func(name string, set plotset.PlotSet) {
		fmt.Fprintf(w, "%s plots:\n", name)
		fmt.Fprintf(w, "  Entities:   %d\n", len(set.Members))
		fmt.Fprintf(w, "  Total area: %.2f sq meters\n", scale.Area(set.TotalArea))
		fmt.Fprintf(w, "  Perimeter:  %.2f meters\n", scale.Length(set.TotalPerimeter))
		fmt.Fprintf(w, "  Plot numbers: %s\n", identifierList(set))
		mean, stddev := areaStats(set, scale)
		fmt.Fprintf(w, "  Plot area mean %.2f sq m, std dev %.2f sq m\n\n", mean, stddev)
	}
	writePopulation("Original", original)
	writePopulation("Final", final)

	fmt.Fprintf(w, "Unassigned plots with survey numbers: %d\n", len(unassigned))
	for _, u := range unassigned {
		fmt.Fprintf(w, "  %s on layer %q: %.2f sq m, survey %q\n",
			u.Shape.Kind, u.Shape.Layer, scale.Area(u.Area), u.SurveyText)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Area reconciliation:\n")
	fmt.Fprintf(w, "  Original area: %.2f sq meters\n", rec.AreaA)
	fmt.Fprintf(w, "  Final area:    %.2f sq meters\n", rec.AreaB)
	fmt.Fprintf(w, "  Difference:    %.2f sq meters (%.2f%%)\n", rec.AbsoluteDelta, rec.RelativeDeltaPercent)
	if rec.Pending {
		fmt.Fprintln(w, "  Pending area detected")
	} else {
		fmt.Fprintln(w, "  No pending area")
	}

	_, err := fmt.Fprintf(w, "\nScale factor: 1 drawing unit = %gm\n", float64(scale))
	return err
}

// identifierList renders the sorted identifier set of a population.
func identifierList(set plotset.PlotSet) string {
	if len(set.Identifiers) == 0 {
		return "(none)"
	}
	texts := make([]string, len(set.Identifiers))
	for i, id := range set.Identifiers {
		texts[i] = id.Text
	}
	return strings.Join(texts, ", ")
}

// areaStats returns mean and standard deviation of the member areas in square
// meters. A population below two members has no meaningful spread.
func areaStats(set plotset.PlotSet, scale units.Scale) (mean, stddev float64) {
	if len(set.Members) == 0 {
		return 0, 0
	}
	areas := make([]float64, len(set.Members))
	for i, m := range set.Members {
		areas[i] = scale.Area(m.Area)
	}
	mean = stat.Mean(areas, nil)
	if len(areas) > 1 {
		stddev = stat.StdDev(areas, nil)
	}
	return mean, stddev
}
