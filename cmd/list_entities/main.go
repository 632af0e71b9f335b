// Command list_entities dumps the shapes and text labels of a drawing with
// their coordinates and identifier classification. Useful when a drawing
// yields fewer plot numbers than expected and the tolerances need tuning.
package main

import (
	"fmt"
	"log"
	"os"

	plotrecon "github.com/pyhub-apps/plotrecon-golang"
	"github.com/pyhub-apps/plotrecon-golang/pkg/drawing"
	"github.com/pyhub-apps/plotrecon-golang/pkg/ident"
	"github.com/pyhub-apps/plotrecon-golang/pkg/plotset"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: list_entities <drawing.dxf|drawing.pdf>")
		os.Exit(1)
	}

	doc, err := plotrecon.Open(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to open drawing: %v", err)
	}
	defer doc.Close()

	shapes := doc.Shapes()
	fmt.Printf("=== Shapes (%d) ===\n", len(shapes))
	for i, s := range shapes {
		ref := s.ReferencePoint()
		fmt.Printf("%3d. %-8s pop=%-8s color=%d layer=%q ref=(%.2f, %.2f)",
			i+1, s.Kind, s.Population, s.Color, s.Layer, ref.X, ref.Y)
		if s.Kind == drawing.KindPolygon {
			fmt.Printf(" vertices=%d", len(s.Vertices))
		} else {
			fmt.Printf(" radius=%.2f", s.Radius)
		}
		fmt.Println()
	}

	labels := doc.Labels()
	fmt.Printf("\n=== Text labels (%d) ===\n", len(labels))
	for i, cl := range plotset.ClassifyLabels(labels) {
		fmt.Printf("%3d. %-14s at (%.2f, %.2f) %q", i+1, cl.Class, cl.Label.Position.X, cl.Label.Position.Y, cl.Label.Content)
		if cl.Class == ident.PlotNumber || cl.Class == ident.PlainNumber {
			fmt.Printf(" -> %s", cl.Normalized.Text)
		}
		fmt.Println()
	}
}
