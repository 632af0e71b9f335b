package dxf

import (
	"fmt"
	"strings"

	"github.com/pyhub-apps/plotrecon-golang/pkg/drawing"
	"github.com/pyhub-apps/plotrecon-golang/pkg/geom"
)

// attrs are the entity attributes shared by every DXF entity kind.
type attrs struct {
	layer string
	color int
}

// readAttrs extracts layer (group 8) and color (group 62) from an entity,
// defaulting to color 7 when no color group is present.
func readAttrs(e rawEntity) (attrs, error) {
	a := attrs{color: defaultColor}
	for _, tag := range e.tags {
		switch tag.Code {
		case 8:
			a.layer = strings.TrimSpace(tag.Value)
		case 62:
			c, err := tag.Int()
			if err != nil {
				return a, err
			}
			a.color = c
		}
	}
	return a, nil
}

// readVertices collects the (10, 20) coordinate pairs of an entity in order.
// A 10 group opens a vertex; the following 20 group completes it.
func readVertices(e rawEntity) ([]geom.Point, error) {
	var (
		points []geom.Point
		x      float64
		hasX   bool
	)
	for _, tag := range e.tags {
		switch tag.Code {
		case 10:
			v, err := tag.Float()
			if err != nil {
				return nil, err
			}
			x, hasX = v, true
		case 20:
			if !hasX {
				return nil, fmt.Errorf("y coordinate without preceding x")
			}
			y, err := tag.Float()
			if err != nil {
				return nil, err
			}
			points = append(points, geom.Point{X: x, Y: y})
			hasX = false
		}
	}
	return points, nil
}

func convertLWPolyline(e rawEntity, mapping drawing.ColorMapping) (drawing.Shape, error) {
	a, err := readAttrs(e)
	if err != nil {
		return drawing.Shape{}, err
	}
	vertices, err := readVertices(e)
	if err != nil {
		return drawing.Shape{}, err
	}
	return drawing.Shape{
		Kind:       drawing.KindPolygon,
		Vertices:   vertices,
		Population: mapping.Tag(a.color),
		Layer:      a.layer,
		Color:      a.color,
	}, nil
}

// convertPolyline builds a polygon from a POLYLINE header and the VERTEX
// entities that follow it, up to SEQEND. It returns how many raw entities
// after the header were consumed.
func convertPolyline(header rawEntity, rest []rawEntity, mapping drawing.ColorMapping) (drawing.Shape, int, error) {
	a, err := readAttrs(header)
	if err != nil {
		return drawing.Shape{}, 0, err
	}

	var vertices []geom.Point
	consumed := 0
	for _, e := range rest {
		consumed++
		if e.kind == "SEQEND" {
			break
		}
		if e.kind != "VERTEX" {
			return drawing.Shape{}, 0, fmt.Errorf("unexpected %s inside POLYLINE", e.kind)
		}
		pts, err := readVertices(e)
		if err != nil {
			return drawing.Shape{}, 0, err
		}
		vertices = append(vertices, pts...)
	}

	return drawing.Shape{
		Kind:       drawing.KindPolygon,
		Vertices:   vertices,
		Population: mapping.Tag(a.color),
		Layer:      a.layer,
		Color:      a.color,
	}, consumed, nil
}

func convertCircle(e rawEntity, mapping drawing.ColorMapping) (drawing.Shape, error) {
	a, err := readAttrs(e)
	if err != nil {
		return drawing.Shape{}, err
	}

	shape := drawing.Shape{
		Kind:       drawing.KindCircle,
		Population: mapping.Tag(a.color),
		Layer:      a.layer,
		Color:      a.color,
	}

	var hasCenter, hasRadius bool
	var cx float64
	for _, tag := range e.tags {
		switch tag.Code {
		case 10:
			v, err := tag.Float()
			if err != nil {
				return drawing.Shape{}, err
			}
			cx = v
		case 20:
			v, err := tag.Float()
			if err != nil {
				return drawing.Shape{}, err
			}
			shape.Center = geom.Point{X: cx, Y: v}
			hasCenter = true
		case 40:
			v, err := tag.Float()
			if err != nil {
				return drawing.Shape{}, err
			}
			shape.Radius = v
			hasRadius = true
		}
	}

	if !hasCenter || !hasRadius {
		return drawing.Shape{}, fmt.Errorf("circle is missing center or radius")
	}
	return shape, nil
}

// convertText builds a text label from a TEXT or MTEXT entity. Entities with
// empty content are dropped; the second return value reports whether a label
// was produced.
func convertText(e rawEntity) (drawing.TextLabel, bool, error) {
	a, err := readAttrs(e)
	if err != nil {
		return drawing.TextLabel{}, false, err
	}

	label := drawing.TextLabel{Layer: a.layer, Color: a.color}
	for _, tag := range e.tags {
		if tag.Code == 1 {
			label.Content = strings.TrimSpace(tag.Value)
			break
		}
	}
	if label.Content == "" {
		return drawing.TextLabel{}, false, nil
	}

	points, err := readVertices(e)
	if err != nil {
		return drawing.TextLabel{}, false, err
	}
	if len(points) > 0 {
		label.Position = points[0]
	}
	return label, true, nil
}
