// Command plotrecon analyzes a survey drawing: it measures the original and
// final plot populations, assigns plot numbers from nearby text, flags plots
// that only carry survey numbers, and reports the area difference between the
// two populations.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	plotrecon "github.com/pyhub-apps/plotrecon-golang"
	"github.com/pyhub-apps/plotrecon-golang/pkg/report"
	"github.com/pyhub-apps/plotrecon-golang/pkg/units"
)

func main() {
	var (
		file            = flag.String("file", "", "drawing file to analyze (.dxf or .pdf)")
		scale           = flag.Float64("scale", 20.0, "drawing unit to meter factor (1 unit = N meters)")
		originalColor   = flag.Int("original-color", 3, "color code marking original plots")
		finalColor      = flag.Int("final-color", 1, "color code marking final plots")
		idTolerance     = flag.Float64("id-tolerance", 100.0, "radius for plot number lookup")
		plotTolerance   = flag.Float64("plot-tolerance", 50.0, "radius for the plot-number presence check")
		surveyTolerance = flag.Float64("survey-tolerance", 50.0, "radius for the survey-number check")
		csvOut          = flag.String("csv", "", "write per-plot CSV to this file prefix (suffixed _original.csv / _final.csv)")
		chartOut        = flag.String("chart", "", "write an HTML area comparison chart to this file")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: plotrecon -file <drawing.dxf|drawing.pdf> [options]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := plotrecon.DefaultConfig()
	cfg.Colors.Original = *originalColor
	cfg.Colors.Final = *finalColor
	cfg.Scale = units.Scale(*scale)
	cfg.IDTolerance = *idTolerance
	cfg.PlotTolerance = *plotTolerance
	cfg.SurveyTolerance = *surveyTolerance

	if !cfg.Scale.Valid() {
		log.Fatalf("Invalid scale factor %g", *scale)
	}

	fmt.Printf("Opening drawing: %s\n", *file)
	doc, err := plotrecon.OpenWithConfig(*file, cfg)
	if err != nil {
		log.Fatalf("Failed to open drawing: %v", err)
	}
	defer doc.Close()

	fmt.Printf("Loaded %d entities: %d shapes, %d text labels\n\n",
		doc.EntityCount(), len(doc.Shapes()), len(doc.Labels()))

	result, err := plotrecon.Analyze(doc, cfg)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	run := report.NewRun()

	if err := report.WriteDetailed(os.Stdout, "ORIGINAL PLOTS", result.Original, cfg.Scale); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
	if err := report.WriteDetailed(os.Stdout, "FINAL PLOTS", result.Final, cfg.Scale); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
	if err := report.WriteSummary(os.Stdout, run, result.Original, result.Final, result.Unassigned, result.Reconciliation, cfg.Scale); err != nil {
		log.Fatalf("Failed to write summary: %v", err)
	}

	if *csvOut != "" {
		writeCSV(*csvOut+"_original.csv", result.Original, cfg.Scale)
		writeCSV(*csvOut+"_final.csv", result.Final, cfg.Scale)
	}

	if *chartOut != "" {
		f, err := os.Create(*chartOut)
		if err != nil {
			log.Fatalf("Failed to create chart file: %v", err)
		}
		defer f.Close()
		if err := report.RenderAreaChart(f, result.Original, result.Final, cfg.Scale); err != nil {
			log.Fatalf("Failed to render chart: %v", err)
		}
		fmt.Printf("Chart written to %s\n", *chartOut)
	}
}

func writeCSV(path string, set plotrecon.PlotSet, scale units.Scale) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := report.WriteCSV(f, set, scale); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	fmt.Printf("CSV written to %s\n", path)
}
