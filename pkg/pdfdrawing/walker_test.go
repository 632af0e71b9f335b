package pdfdrawing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyhub-apps/plotrecon-golang/pkg/drawing"
	"github.com/pyhub-apps/plotrecon-golang/pkg/geom"
)

// walk runs a content stream through a walker with the default configuration.
func walk(t *testing.T, content string) *walker {
	t.Helper()
	w := newWalker(defaultConfig())
	w.run([]byte(content))
	return w
}

func TestWalkStrokedRectangle(t *testing.T) {
	w := walk(t, "0 1 0 RG 10 20 30 40 re S")

	require.Len(t, w.shapes, 1)
	s := w.shapes[0]
	assert.Equal(t, drawing.KindPolygon, s.Kind)
	assert.Equal(t, drawing.PopulationOriginal, s.Population)
	assert.Equal(t, 3, s.Color)
	require.Len(t, s.Vertices, 4)
	assert.Equal(t, geom.Point{X: 10, Y: 20}, s.Vertices[0])
	assert.Equal(t, geom.Point{X: 40, Y: 60}, s.Vertices[2])
}

func TestWalkFilledPath(t *testing.T) {
	w := walk(t, "1 0 0 rg 0 0 m 10 0 l 10 10 l 0 10 l h f")

	require.Len(t, w.shapes, 1)
	assert.Equal(t, drawing.PopulationFinal, w.shapes[0].Population)
	assert.Equal(t, 1, w.shapes[0].Color)
	assert.Len(t, w.shapes[0].Vertices, 4)
}

func TestWalkOpenSegmentDropped(t *testing.T) {
	// Two-point subpaths are border lines, not measurable plots.
	w := walk(t, "0 0 m 100 100 l S")
	assert.Empty(t, w.shapes)
}

func TestWalkUnknownColorIsOther(t *testing.T) {
	w := walk(t, "0 0 1 RG 0 0 m 10 0 l 10 10 l S")

	require.Len(t, w.shapes, 1)
	assert.Equal(t, drawing.PopulationOther, w.shapes[0].Population)
	assert.Equal(t, 7, w.shapes[0].Color)
}

func TestWalkTransformAppliesToPath(t *testing.T) {
	w := walk(t, "q 2 0 0 2 100 0 cm 0 0 m 10 0 l 10 10 l S Q 0 0 m 1 0 l 1 1 l S")

	require.Len(t, w.shapes, 2)
	// Scaled by 2 and translated by 100.
	assert.Equal(t, geom.Point{X: 100, Y: 0}, w.shapes[0].Vertices[0])
	assert.Equal(t, geom.Point{X: 120, Y: 20}, w.shapes[0].Vertices[2])
	// After Q, the transform is restored.
	assert.Equal(t, geom.Point{X: 1, Y: 1}, w.shapes[1].Vertices[2])
}

func TestWalkTextLabels(t *testing.T) {
	w := walk(t, "BT 50 60 Td (PLOT 5) Tj 0 -20 Td (12) Tj ET")

	require.Len(t, w.labels, 2)
	assert.Equal(t, "PLOT 5", w.labels[0].Content)
	assert.Equal(t, geom.Point{X: 50, Y: 60}, w.labels[0].Position)
	assert.Equal(t, "12", w.labels[1].Content)
	assert.Equal(t, geom.Point{X: 50, Y: 40}, w.labels[1].Position)
}

func TestWalkTextMatrix(t *testing.T) {
	w := walk(t, "BT 1 0 0 1 200 300 Tm (SURVEY NO 7) Tj ET")

	require.Len(t, w.labels, 1)
	assert.Equal(t, geom.Point{X: 200, Y: 300}, w.labels[0].Position)
}

func TestWalkTJArray(t *testing.T) {
	w := walk(t, "BT 10 10 Td [(PLOT) -250 ( 9)] TJ ET")

	require.Len(t, w.labels, 1)
	assert.Equal(t, "PLOT 9", w.labels[0].Content)
}

func TestWalkHexString(t *testing.T) {
	// "12" as a hex string.
	w := walk(t, "BT 5 5 Td <3132> Tj ET")

	require.Len(t, w.labels, 1)
	assert.Equal(t, "12", w.labels[0].Content)
}

func TestWalkEmptyTextSkipped(t *testing.T) {
	w := walk(t, "BT 5 5 Td (   ) Tj ET")
	assert.Empty(t, w.labels)
}

func TestWalkCustomPopulationColors(t *testing.T) {
	cfg := defaultConfig()
	WithPopulationColors(RGB{R: 0, G: 0, B: 1}, RGB{R: 1, G: 1, B: 0})(&cfg)

	w := newWalker(cfg)
	w.run([]byte("0 0 1 RG 0 0 m 4 0 l 4 4 l S"))

	require.Len(t, w.shapes, 1)
	assert.Equal(t, drawing.PopulationOriginal, w.shapes[0].Population)
}

func TestWalkGrayAndCMYKColors(t *testing.T) {
	// 0 0 1 0 k is pure yellow in CMYK; not a population color.
	w := walk(t, "0 0 1 0 k 0 0 m 4 0 l 4 4 l f")
	require.Len(t, w.shapes, 1)
	assert.Equal(t, drawing.PopulationOther, w.shapes[0].Population)

	// CMYK green-ish: 1 0 1 0 k maps to (0, 1, 0).
	w = walk(t, "1 0 1 0 k 0 0 m 4 0 l 4 4 l f")
	require.Len(t, w.shapes, 1)
	assert.Equal(t, drawing.PopulationOriginal, w.shapes[0].Population)
}

func TestWalkSCNOperandCounts(t *testing.T) {
	// 4-operand scn is CMYK; 1 0 1 0 maps to pure green.
	w := walk(t, "1 0 1 0 scn 0 0 m 4 0 l 4 4 l f")
	require.Len(t, w.shapes, 1)
	assert.Equal(t, drawing.PopulationOriginal, w.shapes[0].Population)

	// 1-operand sc is gray; mid gray is not a population color.
	w = walk(t, "0.5 sc 0 0 m 4 0 l 4 4 l f")
	require.Len(t, w.shapes, 1)
	assert.Equal(t, drawing.PopulationOther, w.shapes[0].Population)

	// 3-operand SCN stays RGB.
	w = walk(t, "1 0 0 SCN 0 0 m 4 0 l 4 4 l S")
	require.Len(t, w.shapes, 1)
	assert.Equal(t, drawing.PopulationFinal, w.shapes[0].Population)
}

func TestWalkColorMappingByCode(t *testing.T) {
	// Codes 5 (blue) and 2 (yellow) select the population colors and are
	// recorded on the entities.
	cfg := defaultConfig()
	WithColorMapping(drawing.ColorMapping{Original: 5, Final: 2})(&cfg)

	w := newWalker(cfg)
	w.run([]byte("0 0 1 RG 0 0 m 4 0 l 4 4 l S 1 1 0 rg 10 10 m 14 10 l 14 14 l f"))

	require.Len(t, w.shapes, 2)
	assert.Equal(t, drawing.PopulationOriginal, w.shapes[0].Population)
	assert.Equal(t, 5, w.shapes[0].Color)
	assert.Equal(t, drawing.PopulationFinal, w.shapes[1].Population)
	assert.Equal(t, 2, w.shapes[1].Color)
}
