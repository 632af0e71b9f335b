// Package plotrecon reconciles the two plot populations of a survey drawing:
// it measures every polygon and circle, associates each with the identifier
// text nearest to it, and compares the total area of the original parcel
// layout against the final one to surface pending area.
package plotrecon

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pyhub-apps/plotrecon-golang/pkg/drawing"
	"github.com/pyhub-apps/plotrecon-golang/pkg/dxf"
	"github.com/pyhub-apps/plotrecon-golang/pkg/ident"
	"github.com/pyhub-apps/plotrecon-golang/pkg/pdfdrawing"
	"github.com/pyhub-apps/plotrecon-golang/pkg/plotset"
	"github.com/pyhub-apps/plotrecon-golang/pkg/reconcile"
	"github.com/pyhub-apps/plotrecon-golang/pkg/units"
)

// Re-export the types callers handle, so simple use needs only this package.
type (
	Document             = drawing.Document
	Shape                = drawing.Shape
	TextLabel            = drawing.TextLabel
	ColorMapping         = drawing.ColorMapping
	Identifier           = ident.Identifier
	PlotSet              = plotset.PlotSet
	MeasuredShape        = plotset.MeasuredShape
	UnassignedPlot       = plotset.UnassignedPlot
	ClassifiedLabel      = plotset.ClassifiedLabel
	ReconciliationResult = reconcile.Result
	Scale                = units.Scale
)

// Config carries the per-drawing settings the engine itself never hardcodes:
// which colors mark the populations, the drawing-unit scale, and the spatial
// tolerances for label association.
type Config struct {
	Colors drawing.ColorMapping
	Scale  units.Scale

	// IDTolerance is the wide radius used when looking up the identifier
	// value for a shape.
	IDTolerance float64

	// PlotTolerance is the narrower radius used as a presence test when
	// deciding whether a shape already has a plot number at all.
	PlotTolerance float64

	// SurveyTolerance bounds the search for a survey number near a shape that
	// has no plot number.
	SurveyTolerance float64
}

// DefaultConfig returns the settings these survey sheets are usually drawn
// to: green/red population colors, 1 unit = 20m, and the tolerances the
// drawings were tuned against.
func DefaultConfig() Config {
	return Config{
		Colors:          drawing.DefaultColorMapping(),
		Scale:           units.DefaultScale,
		IDTolerance:     100.0,
		PlotTolerance:   50.0,
		SurveyTolerance: 50.0,
	}
}

// Result is the full outcome of one analysis run, ready for reporting.
type Result struct {
	Original       plotset.PlotSet
	Final          plotset.PlotSet
	Unassigned     []plotset.UnassignedPlot
	Reconciliation reconcile.Result

	// LabelSurvey classifies every text label in the drawing, independent of
	// spatial association, for auditing identifier coverage.
	LabelSurvey []plotset.ClassifiedLabel
}

// Open loads a drawing with default settings, dispatching on the file
// extension: .dxf files go through the DXF reader, .pdf files through the
// pdfcpu-backed reader.
func Open(path string) (drawing.Document, error) {
	return OpenWithConfig(path, DefaultConfig())
}

// OpenWithConfig loads a drawing using the configured color mapping.
func OpenWithConfig(path string, cfg Config) (drawing.Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dxf":
		return dxf.Open(path, dxf.WithColorMapping(cfg.Colors))
	case ".pdf":
		return pdfdrawing.Open(path, pdfdrawing.WithColorMapping(cfg.Colors))
	default:
		return nil, fmt.Errorf("unsupported drawing format %q", filepath.Ext(path))
	}
}

// Analyze runs the whole pipeline over an opened drawing: label survey,
// per-population extraction, the unassigned-with-survey check, and area
// reconciliation. The reconciliation compares physical areas because its
// pending threshold is defined in square meters.
func Analyze(doc drawing.Document, cfg Config) (*Result, error) {
	shapes := doc.Shapes()
	labels := doc.Labels()

	original, err := plotset.Extract(shapes, labels, drawing.PopulationOriginal, cfg.IDTolerance)
	if err != nil {
		return nil, fmt.Errorf("original population: %w", err)
	}
	final, err := plotset.Extract(shapes, labels, drawing.PopulationFinal, cfg.IDTolerance)
	if err != nil {
		return nil, fmt.Errorf("final population: %w", err)
	}
	unassigned, err := plotset.FindUnassignedWithSurvey(shapes, labels, cfg.PlotTolerance, cfg.SurveyTolerance)
	if err != nil {
		return nil, fmt.Errorf("unassigned check: %w", err)
	}

	rec := reconcile.Totals(cfg.Scale.Area(original.TotalArea), cfg.Scale.Area(final.TotalArea))

	return &Result{
		Original:       original,
		Final:          final,
		Unassigned:     unassigned,
		Reconciliation: rec,
		LabelSurvey:    plotset.ClassifyLabels(labels),
	}, nil
}

// AnalyzeFile opens a drawing, analyzes it, and releases it.
func AnalyzeFile(path string, cfg Config) (*Result, error) {
	doc, err := OpenWithConfig(path, cfg)
	if err != nil {
		return nil, err
	}
	defer doc.Close()
	return Analyze(doc, cfg)
}
