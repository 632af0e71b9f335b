package dxf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyhub-apps/plotrecon-golang/pkg/drawing"
	"github.com/pyhub-apps/plotrecon-golang/pkg/geom"
)

// fixture joins DXF code/value pairs into a stream. Codes in real files are
// right-aligned; the scanner must not care.
func fixture(pairs ...string) string {
	return strings.Join(pairs, "\n") + "\n"
}

const sampleDrawing = `  0
SECTION
  2
ENTITIES
  0
LWPOLYLINE
  8
PLOTS
 62
3
 90
4
 10
0.0
 20
0.0
 10
10.0
 20
0.0
 10
10.0
 20
10.0
 10
0.0
 20
10.0
  0
CIRCLE
  8
PLOTS
 62
1
 10
50.0
 20
50.0
 40
2.0
  0
TEXT
  8
ANNOT
  1
PLOT 5
 10
5.0
 20
5.0
  0
MTEXT
  8
ANNOT
  1
SURVEY NO 12
 10
50.0
 20
55.0
  0
LINE
  8
BORDER
 10
0.0
 20
0.0
 11
100.0
 21
100.0
  0
ENDSEC
  0
EOF
`

func TestParseSampleDrawing(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDrawing))
	require.NoError(t, err)
	defer doc.Close()

	// LWPOLYLINE, CIRCLE, TEXT, MTEXT, LINE
	assert.Equal(t, 5, doc.EntityCount())

	shapes := doc.Shapes()
	require.Len(t, shapes, 2)

	poly := shapes[0]
	assert.Equal(t, drawing.KindPolygon, poly.Kind)
	assert.Equal(t, "PLOTS", poly.Layer)
	assert.Equal(t, 3, poly.Color)
	assert.Equal(t, drawing.PopulationOriginal, poly.Population)
	require.Len(t, poly.Vertices, 4)
	assert.Equal(t, geom.Point{X: 10, Y: 10}, poly.Vertices[2])

	circle := shapes[1]
	assert.Equal(t, drawing.KindCircle, circle.Kind)
	assert.Equal(t, drawing.PopulationFinal, circle.Population)
	assert.Equal(t, geom.Point{X: 50, Y: 50}, circle.Center)
	assert.Equal(t, 2.0, circle.Radius)

	labels := doc.Labels()
	require.Len(t, labels, 2)
	assert.Equal(t, "PLOT 5", labels[0].Content)
	assert.Equal(t, geom.Point{X: 5, Y: 5}, labels[0].Position)
	assert.Equal(t, "SURVEY NO 12", labels[1].Content)
	assert.Equal(t, "ANNOT", labels[1].Layer)
}

func TestParsePolylineWithVertices(t *testing.T) {
	data := fixture(
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "POLYLINE",
		"8", "PLOTS",
		"62", "3",
		"0", "VERTEX",
		"10", "0.0",
		"20", "0.0",
		"0", "VERTEX",
		"10", "4.0",
		"20", "0.0",
		"0", "VERTEX",
		"10", "4.0",
		"20", "3.0",
		"0", "SEQEND",
		"0", "ENDSEC",
		"0", "EOF",
	)

	doc, err := Parse(strings.NewReader(data))
	require.NoError(t, err)

	shapes := doc.Shapes()
	require.Len(t, shapes, 1)
	assert.Equal(t, drawing.KindPolygon, shapes[0].Kind)
	require.Len(t, shapes[0].Vertices, 3)
	assert.Equal(t, geom.Point{X: 4, Y: 3}, shapes[0].Vertices[2])

	// The VERTEX and SEQEND children belong to the POLYLINE; one entity total.
	assert.Equal(t, 1, doc.EntityCount())
}

func TestParseCustomColorMapping(t *testing.T) {
	data := fixture(
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "CIRCLE",
		"62", "5",
		"10", "0.0",
		"20", "0.0",
		"40", "1.0",
		"0", "ENDSEC",
		"0", "EOF",
	)

	doc, err := Parse(strings.NewReader(data), WithColorMapping(drawing.ColorMapping{Original: 5, Final: 6}))
	require.NoError(t, err)

	require.Len(t, doc.Shapes(), 1)
	assert.Equal(t, drawing.PopulationOriginal, doc.Shapes()[0].Population)
}

func TestParseDefaultColorIsOther(t *testing.T) {
	data := fixture(
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "CIRCLE",
		"10", "0.0",
		"20", "0.0",
		"40", "1.0",
		"0", "ENDSEC",
		"0", "EOF",
	)

	doc, err := Parse(strings.NewReader(data))
	require.NoError(t, err)

	require.Len(t, doc.Shapes(), 1)
	assert.Equal(t, 7, doc.Shapes()[0].Color)
	assert.Equal(t, drawing.PopulationOther, doc.Shapes()[0].Population)
}

func TestParseIgnoresOtherSections(t *testing.T) {
	// Coordinate groups also appear in HEADER; they must not leak into the
	// entity list.
	data := fixture(
		"0", "SECTION",
		"2", "HEADER",
		"10", "123.0",
		"20", "456.0",
		"0", "ENDSEC",
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "TEXT",
		"1", "7",
		"10", "1.0",
		"20", "2.0",
		"0", "ENDSEC",
		"0", "EOF",
	)

	doc, err := Parse(strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 1, doc.EntityCount())
	require.Len(t, doc.Labels(), 1)
	assert.Equal(t, "7", doc.Labels()[0].Content)
}

func TestParseSkipsEmptyText(t *testing.T) {
	data := fixture(
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "TEXT",
		"1", "   ",
		"10", "1.0",
		"20", "2.0",
		"0", "ENDSEC",
		"0", "EOF",
	)

	doc, err := Parse(strings.NewReader(data))
	require.NoError(t, err)
	assert.Empty(t, doc.Labels())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"truncated pair", fixture("0", "SECTION", "2", "ENTITIES", "0")},
		{"non-numeric group code", fixture("0", "SECTION", "NOPE", "ENTITIES")},
		{"bad coordinate", fixture(
			"0", "SECTION",
			"2", "ENTITIES",
			"0", "CIRCLE",
			"10", "abc",
			"20", "0.0",
			"40", "1.0",
			"0", "ENDSEC",
		)},
		{"circle without radius", fixture(
			"0", "SECTION",
			"2", "ENTITIES",
			"0", "CIRCLE",
			"10", "0.0",
			"20", "0.0",
			"0", "ENDSEC",
		)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open("testdata/does-not-exist.dxf")
	assert.Error(t, err)
}
