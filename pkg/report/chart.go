package report

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pyhub-apps/plotrecon-golang/pkg/ident"
	"github.com/pyhub-apps/plotrecon-golang/pkg/plotset"
	"github.com/pyhub-apps/plotrecon-golang/pkg/units"
)

// RenderAreaChart writes an HTML bar chart comparing per-plot areas of the two
// populations. Plots are keyed by identifier; a plot present in only one
// population shows a zero bar on the other side, which is exactly the
// discrepancy the chart exists to surface.
func RenderAreaChart(w io.Writer, original, final plotset.PlotSet, scale units.Scale) error {
	ids := unionIdentifiers(original, final)

	origAreas := areasByIdentifier(original, scale)
	finalAreas := areasByIdentifier(final, scale)

	names := make([]string, len(ids))
	origData := make([]opts.BarData, len(ids))
	finalData := make([]opts.BarData, len(ids))
	for i, id := range ids {
		names[i] = id.Text
		origData[i] = opts.BarData{Value: origAreas[id.Text]}
		finalData[i] = opts.BarData{Value: finalAreas[id.Text]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Plot area comparison",
			Subtitle: "Original vs final population, square meters",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	bar.SetXAxis(names).
		AddSeries("Original", origData).
		AddSeries("Final", finalData)

	return bar.Render(w)
}

// unionIdentifiers merges the identifier sets of both populations in the
// canonical identifier order.
func unionIdentifiers(original, final plotset.PlotSet) []ident.Identifier {
	merged := make([]ident.Identifier, 0, len(original.Identifiers)+len(final.Identifiers))
	merged = append(merged, original.Identifiers...)
	merged = append(merged, final.Identifiers...)
	return ident.Dedupe(merged)
}

// areasByIdentifier sums member areas per assigned identifier, in square
// meters. Two members sharing an identifier merge into one bar.
func areasByIdentifier(set plotset.PlotSet, scale units.Scale) map[string]float64 {
	areas := make(map[string]float64, len(set.Members))
	for _, m := range set.Members {
		areas[m.Identifier.Text] += scale.Area(m.Area)
	}
	return areas
}
