// Package dxf reads the subset of the DXF drawing format the plot analysis
// needs: polyline, circle and text entities from the ENTITIES section, with
// their layer and color attributes. Everything else in the file is counted and
// skipped. Entities are returned in file order, which downstream tie-breaking
// depends on.
package dxf

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pyhub-apps/plotrecon-golang/pkg/drawing"
)

// defaultColor is the DXF "white/bylayer" color assumed when an entity carries
// no explicit color group.
const defaultColor = 7

// Document is a fully materialized DXF drawing.
type Document struct {
	filepath    string
	shapes      []drawing.Shape
	labels      []drawing.TextLabel
	entityCount int
}

// Option configures a reader.
type Option func(*config)

type config struct {
	mapping drawing.ColorMapping
}

// WithColorMapping overrides the color-to-population convention. Which color
// means "original" and which "final" varies per drawing office, so it is
// configuration, not a constant.
func WithColorMapping(m drawing.ColorMapping) Option {
	return func(c *config) {
		c.mapping = m
	}
}

// Open reads a DXF file and materializes its shape and text entities.
func Open(filepath string, opts ...Option) (*Document, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open DXF file: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath, err)
	}
	doc.filepath = filepath
	return doc, nil
}

// Parse reads a DXF stream. It exists separately from Open so fixtures can be
// parsed straight from strings in tests.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	cfg := config{mapping: drawing.DefaultColorMapping()}
	for _, opt := range opts {
		opt(&cfg)
	}

	entities, err := readEntities(newTagReader(r))
	if err != nil {
		return nil, err
	}

	doc := &Document{entityCount: countTopLevel(entities)}
	if err := doc.convert(entities, cfg.mapping); err != nil {
		return nil, err
	}
	return doc, nil
}

// Shapes returns all measurable shape entities in file order.
func (d *Document) Shapes() []drawing.Shape {
	return d.shapes
}

// Labels returns all non-empty text entities in file order.
func (d *Document) Labels() []drawing.TextLabel {
	return d.labels
}

// EntityCount returns the number of top-level entities found in the ENTITIES
// section, including kinds the analysis ignores. VERTEX and SEQEND records
// belong to their POLYLINE and are not counted separately.
func (d *Document) EntityCount() int {
	return d.entityCount
}

// Filepath returns the path the document was opened from, if any.
func (d *Document) Filepath() string {
	return d.filepath
}

// Close releases the materialized entities.
func (d *Document) Close() error {
	d.shapes = nil
	d.labels = nil
	return nil
}

// countTopLevel counts entities excluding POLYLINE child records.
func countTopLevel(entities []rawEntity) int {
	n := 0
	for _, e := range entities {
		if e.kind == "VERTEX" || e.kind == "SEQEND" {
			continue
		}
		n++
	}
	return n
}

// rawEntity is one entity from the ENTITIES section before interpretation.
type rawEntity struct {
	kind string
	tags []Tag
}

// readEntities walks the tag stream and groups the ENTITIES section into raw
// entities. Each entity starts at a (0, <TYPE>) tag and runs until the next
// group code 0.
func readEntities(tr *tagReader) ([]rawEntity, error) {
	var (
		entities   []rawEntity
		inEntities bool
		sectionHdr bool
		current    *rawEntity
	)

	for {
		tag, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if sectionHdr {
			sectionHdr = false
			if tag.Code == 2 && strings.TrimSpace(tag.Value) == "ENTITIES" {
				inEntities = true
			}
			continue
		}

		if tag.Code == 0 {
			value := strings.TrimSpace(tag.Value)
			switch value {
			case "SECTION":
				sectionHdr = true
				continue
			case "ENDSEC":
				if inEntities {
					inEntities = false
					current = nil
				}
				continue
			case "EOF":
				current = nil
				continue
			}
			if inEntities {
				entities = append(entities, rawEntity{kind: value})
				current = &entities[len(entities)-1]
			} else {
				current = nil
			}
			continue
		}

		if current != nil {
			current.tags = append(current.tags, tag)
		}
	}

	return entities, nil
}

// convert interprets raw entities into shapes and labels. POLYLINE entities
// span several raw entities (the header, its VERTEX children, and SEQEND), so
// conversion walks the list with an index rather than ranging over it.
func (d *Document) convert(entities []rawEntity, mapping drawing.ColorMapping) error {
	for i := 0; i < len(entities); i++ {
		e := entities[i]
		switch e.kind {
		case "LWPOLYLINE":
			shape, err := convertLWPolyline(e, mapping)
			if err != nil {
				return fmt.Errorf("entity %d (%s): %w", i+1, e.kind, err)
			}
			d.shapes = append(d.shapes, shape)

		case "POLYLINE":
			shape, consumed, err := convertPolyline(e, entities[i+1:], mapping)
			if err != nil {
				return fmt.Errorf("entity %d (%s): %w", i+1, e.kind, err)
			}
			d.shapes = append(d.shapes, shape)
			i += consumed

		case "CIRCLE":
			shape, err := convertCircle(e, mapping)
			if err != nil {
				return fmt.Errorf("entity %d (%s): %w", i+1, e.kind, err)
			}
			d.shapes = append(d.shapes, shape)

		case "TEXT", "MTEXT":
			label, ok, err := convertText(e)
			if err != nil {
				return fmt.Errorf("entity %d (%s): %w", i+1, e.kind, err)
			}
			if ok {
				d.labels = append(d.labels, label)
			}
		}
	}
	return nil
}
