// Package pdfdrawing reads plot drawings circulated as vector PDF. It decodes
// each page content stream with pdfcpu and walks the path and text operators
// to recover the same shape/label records the DXF reader produces: stroked or
// filled outlines become polygon shapes, text shows become labels, and the
// paint color decides the population tag.
//
// The walk is deliberately narrower than a full PDF renderer: no font metrics,
// no clipping, no shading. Survey sheets exported from CAD are flat vector
// graphics, and the analysis only needs outline coordinates and label
// insertion points.
package pdfdrawing

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/pyhub-apps/plotrecon-golang/pkg/drawing"
)

// RGB is a population color in PDF device-RGB space.
type RGB struct {
	R, G, B float64
}

// Option configures a reader.
type Option func(*config)

type config struct {
	original RGB
	final    RGB
	aci      drawing.ColorMapping
}

// WithPopulationColors overrides the stroke/fill colors that mark the original
// and final populations. The defaults follow the same drafting convention as
// the DXF reader: pure green for original plots, pure red for final plots.
// The color values recorded on entities keep the default code equivalents;
// use WithColorMapping when the drawing follows a coded palette.
func WithPopulationColors(original, final RGB) Option {
	return func(c *config) {
		c.original = original
		c.final = final
	}
}

// WithColorMapping selects population colors by drawing color code, the same
// convention the DXF reader is configured with, and records those codes on
// the produced entities. Codes outside the standard palette keep the default
// color for that population.
func WithColorMapping(m drawing.ColorMapping) Option {
	return func(c *config) {
		c.aci = m
		if col, ok := paletteRGB(m.Original); ok {
			c.original = col
		}
		if col, ok := paletteRGB(m.Final); ok {
			c.final = col
		}
	}
}

// paletteRGB maps the standard drawing color codes 1..7 to device RGB.
func paletteRGB(code int) (RGB, bool) {
	switch code {
	case 1:
		return RGB{R: 1}, true
	case 2:
		return RGB{R: 1, G: 1}, true
	case 3:
		return RGB{G: 1}, true
	case 4:
		return RGB{G: 1, B: 1}, true
	case 5:
		return RGB{B: 1}, true
	case 6:
		return RGB{R: 1, B: 1}, true
	case 7:
		return RGB{R: 1, G: 1, B: 1}, true
	}
	return RGB{}, false
}

func defaultConfig() config {
	return config{
		original: RGB{R: 0, G: 1, B: 0},
		final:    RGB{R: 1, G: 0, B: 0},
		aci:      drawing.DefaultColorMapping(),
	}
}

// classify maps a device color to its population tag and to the equivalent
// color attribute recorded on the entity, so PDF- and DXF-sourced records
// report colors the same way.
func (c config) classify(col rgb) (drawing.PopulationTag, int) {
	switch {
	case col.equals(rgb{c.original.R, c.original.G, c.original.B}):
		return drawing.PopulationOriginal, c.aci.Original
	case col.equals(rgb{c.final.R, c.final.G, c.final.B}):
		return drawing.PopulationFinal, c.aci.Final
	default:
		return drawing.PopulationOther, 7
	}
}

// Document is a fully materialized PDF drawing.
type Document struct {
	filepath    string
	shapes      []drawing.Shape
	labels      []drawing.TextLabel
	entityCount int
}

// Open reads a PDF file and materializes the drawing entities of all pages.
func Open(filepath string, opts ...Option) (*Document, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, err := api.ReadContextFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("invalid PDF: %w", err)
	}

	doc := &Document{filepath: filepath}
	for pageNumber := 1; pageNumber <= ctx.PageCount; pageNumber++ {
		content, err := pageContent(ctx, pageNumber)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageNumber, err)
		}
		if len(content) == 0 {
			continue
		}

		w := newWalker(cfg)
		w.run(content)
		doc.shapes = append(doc.shapes, w.shapes...)
		doc.labels = append(doc.labels, w.labels...)
		doc.entityCount += w.entityCount
	}

	return doc, nil
}

// Shapes returns all polygon shapes recovered from the drawing, in paint
// order.
func (d *Document) Shapes() []drawing.Shape {
	return d.shapes
}

// Labels returns all text labels in show order.
func (d *Document) Labels() []drawing.TextLabel {
	return d.labels
}

// EntityCount returns the number of painted subpaths and text shows walked,
// including ones that produced no record.
func (d *Document) EntityCount() int {
	return d.entityCount
}

// Filepath returns the path the document was opened from.
func (d *Document) Filepath() string {
	return d.filepath
}

// Close releases the materialized entities.
func (d *Document) Close() error {
	d.shapes = nil
	d.labels = nil
	return nil
}

// pageContent extracts and decodes the combined content streams of a page.
func pageContent(ctx *model.Context, pageNumber int) ([]byte, error) {
	pageDict, _, _, err := ctx.PageDict(pageNumber, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get page dict: %w", err)
	}

	contents := pageDict["Contents"]
	if contents == nil {
		return nil, nil
	}

	var streams [][]byte
	appendStream := func(ref types.IndirectRef) error {
		streamDict, _, err := ctx.DereferenceStreamDict(ref)
		if err != nil {
			return fmt.Errorf("failed to dereference content: %w", err)
		}
		if streamDict == nil {
			return nil
		}
		decoded, err := decodeStream(streamDict)
		if err != nil {
			return fmt.Errorf("failed to decode stream: %w", err)
		}
		streams = append(streams, decoded)
		return nil
	}

	switch v := contents.(type) {
	case *types.IndirectRef:
		if err := appendStream(*v); err != nil {
			return nil, err
		}
	case types.IndirectRef:
		if err := appendStream(v); err != nil {
			return nil, err
		}
	case types.Array:
		for _, item := range v {
			switch ref := item.(type) {
			case *types.IndirectRef:
				if err := appendStream(*ref); err != nil {
					return nil, err
				}
			case types.IndirectRef:
				if err := appendStream(ref); err != nil {
					return nil, err
				}
			}
		}
	}

	// Streams of one page concatenate into a single operator sequence;
	// a newline keeps operators from adjacent streams apart.
	var combined []byte
	for i, s := range streams {
		if i > 0 {
			combined = append(combined, '\n')
		}
		combined = append(combined, s...)
	}
	return combined, nil
}

// decodeStream returns the decoded content of a stream dictionary.
func decodeStream(stream *types.StreamDict) ([]byte, error) {
	if len(stream.Content) > 0 {
		return stream.Content, nil
	}
	if err := stream.Decode(); err != nil {
		return nil, err
	}
	return stream.Content, nil
}
