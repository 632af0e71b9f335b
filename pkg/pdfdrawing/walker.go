package pdfdrawing

import (
	"strings"

	"github.com/pyhub-apps/plotrecon-golang/pkg/drawing"
	"github.com/pyhub-apps/plotrecon-golang/pkg/geom"
)

// rgb is a device color with components in [0, 1].
type rgb struct {
	r, g, b float64
}

func gray(v float64) rgb {
	return rgb{v, v, v}
}

// colorEpsilon absorbs rounding in color operands; population colors are flat
// primaries in practice.
const colorEpsilon = 0.01

func (c rgb) equals(o rgb) bool {
	return abs(c.r-o.r) < colorEpsilon && abs(c.g-o.g) < colorEpsilon && abs(c.b-o.b) < colorEpsilon
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// graphicsState is the subset of the PDF graphics state the drawing walk
// cares about: the current transform and the two paint colors.
type graphicsState struct {
	ctm    matrix
	stroke rgb
	fill   rgb
}

// walker interprets a page content stream and accumulates shape and label
// records. Path points are transformed into device space as they are added,
// so the resulting coordinates line up with text label positions regardless
// of cm nesting.
type walker struct {
	cfg config

	gs      graphicsState
	gsStack []graphicsState

	subpaths [][]geom.Point
	current  []geom.Point

	tm      matrix
	tlm     matrix
	leading float64

	operands  []float64
	strOp     string
	hasStr    bool
	inArray   bool
	arrayText strings.Builder

	shapes      []drawing.Shape
	labels      []drawing.TextLabel
	entityCount int
}

func newWalker(cfg config) *walker {
	return &walker{
		cfg: cfg,
		gs:  graphicsState{ctm: identityMatrix()},
		tm:  identityMatrix(),
		tlm: identityMatrix(),
	}
}

// run walks one decoded content stream.
func (w *walker) run(content []byte) {
	tk := newTokenizer(content)
	for {
		tok, ok := tk.next()
		if !ok {
			return
		}
		switch tok.kind {
		case tokenNumber:
			if !w.inArray {
				w.operands = append(w.operands, tok.num)
			}
		case tokenString:
			if w.inArray {
				w.arrayText.WriteString(tok.str)
			} else {
				w.strOp = tok.str
				w.hasStr = true
			}
		case tokenArrayStart:
			w.inArray = true
			w.arrayText.Reset()
		case tokenArrayEnd:
			w.inArray = false
			w.strOp = w.arrayText.String()
			w.hasStr = true
		case tokenName:
			// Names (fonts, color spaces, XObjects) carry nothing the
			// geometric walk needs.
		case tokenOperator:
			w.apply(tok.str)
			w.operands = w.operands[:0]
			w.hasStr = false
		}
	}
}

// pop returns the last n operands, or ok=false when fewer were supplied.
func (w *walker) pop(n int) ([]float64, bool) {
	if len(w.operands) < n {
		return nil, false
	}
	return w.operands[len(w.operands)-n:], true
}

func (w *walker) point(x, y float64) geom.Point {
	dx, dy := w.gs.ctm.apply(x, y)
	return geom.Point{X: dx, Y: dy}
}

// flushCurrent moves the open subpath into the finished list.
func (w *walker) flushCurrent() {
	if len(w.current) > 0 {
		w.subpaths = append(w.subpaths, w.current)
		w.current = nil
	}
}

// paint turns the accumulated subpaths into polygon shapes. Subpaths with
// fewer than 3 points are open segments (borders, dimension ticks) and are
// dropped, not errors.
func (w *walker) paint(color rgb) {
	w.flushCurrent()
	for _, sp := range w.subpaths {
		w.entityCount++
		if len(sp) < 3 {
			continue
		}
		population, aci := w.cfg.classify(color)
		w.shapes = append(w.shapes, drawing.Shape{
			Kind:       drawing.KindPolygon,
			Vertices:   sp,
			Population: population,
			Color:      aci,
		})
	}
	w.subpaths = nil
}

// showText emits a text label at the current text position.
func (w *walker) showText(text string) {
	w.entityCount++
	content := strings.TrimSpace(text)
	if content == "" {
		return
	}
	tx, ty := w.tm.apply(0, 0)
	dx, dy := w.gs.ctm.apply(tx, ty)
	_, aci := w.cfg.classify(w.gs.fill)
	w.labels = append(w.labels, drawing.TextLabel{
		Content:  content,
		Position: geom.Point{X: dx, Y: dy},
		Color:    aci,
	})
}

func (w *walker) nextLine(tx, ty float64) {
	w.tlm = mul(translationMatrix(tx, ty), w.tlm)
	w.tm = w.tlm
}

func (w *walker) apply(op string) {
	switch op {
	case "q":
		w.gsStack = append(w.gsStack, w.gs)
	case "Q":
		if n := len(w.gsStack); n > 0 {
			w.gs = w.gsStack[n-1]
			w.gsStack = w.gsStack[:n-1]
		}
	case "cm":
		if v, ok := w.pop(6); ok {
			w.gs.ctm = mul(matrix{v[0], v[1], v[2], v[3], v[4], v[5]}, w.gs.ctm)
		}

	case "m":
		if v, ok := w.pop(2); ok {
			w.flushCurrent()
			w.current = []geom.Point{w.point(v[0], v[1])}
		}
	case "l":
		if v, ok := w.pop(2); ok {
			w.current = append(w.current, w.point(v[0], v[1]))
		}
	case "c":
		// Bezier segments in these drawings are short; the endpoint keeps the
		// outline closed without flattening the curve.
		if v, ok := w.pop(6); ok {
			w.current = append(w.current, w.point(v[4], v[5]))
		}
	case "v", "y":
		if v, ok := w.pop(4); ok {
			w.current = append(w.current, w.point(v[2], v[3]))
		}
	case "h":
		// The shoelace walk treats vertex sequences as cyclic, so an explicit
		// close adds nothing.
	case "re":
		if v, ok := w.pop(4); ok {
			x, y, rw, rh := v[0], v[1], v[2], v[3]
			w.flushCurrent()
			w.subpaths = append(w.subpaths, []geom.Point{
				w.point(x, y),
				w.point(x+rw, y),
				w.point(x+rw, y+rh),
				w.point(x, y+rh),
			})
		}

	case "S", "s":
		w.paint(w.gs.stroke)
	case "f", "F", "f*":
		w.paint(w.gs.fill)
	case "B", "B*", "b", "b*":
		w.paint(w.gs.stroke)
	case "n":
		w.flushCurrent()
		w.subpaths = nil

	case "RG":
		if v, ok := w.pop(3); ok {
			w.gs.stroke = rgb{v[0], v[1], v[2]}
		}
	case "rg":
		if v, ok := w.pop(3); ok {
			w.gs.fill = rgb{v[0], v[1], v[2]}
		}
	case "SC", "SCN":
		w.gs.stroke = w.colorOperands(w.gs.stroke)
	case "sc", "scn":
		w.gs.fill = w.colorOperands(w.gs.fill)
	case "G":
		if v, ok := w.pop(1); ok {
			w.gs.stroke = gray(v[0])
		}
	case "g":
		if v, ok := w.pop(1); ok {
			w.gs.fill = gray(v[0])
		}
	case "K":
		if v, ok := w.pop(4); ok {
			w.gs.stroke = cmyk(v[0], v[1], v[2], v[3])
		}
	case "k":
		if v, ok := w.pop(4); ok {
			w.gs.fill = cmyk(v[0], v[1], v[2], v[3])
		}

	case "BT":
		w.tm = identityMatrix()
		w.tlm = identityMatrix()
	case "ET":
		// Nothing to reset; the matrices are reinitialized by the next BT.
	case "TL":
		if v, ok := w.pop(1); ok {
			w.leading = v[0]
		}
	case "Td":
		if v, ok := w.pop(2); ok {
			w.nextLine(v[0], v[1])
		}
	case "TD":
		if v, ok := w.pop(2); ok {
			w.leading = -v[1]
			w.nextLine(v[0], v[1])
		}
	case "Tm":
		if v, ok := w.pop(6); ok {
			w.tm = matrix{v[0], v[1], v[2], v[3], v[4], v[5]}
			w.tlm = w.tm
		}
	case "T*":
		w.nextLine(0, -w.leading)
	case "Tj", "TJ":
		if w.hasStr {
			w.showText(w.strOp)
		}
	case "'":
		w.nextLine(0, -w.leading)
		if w.hasStr {
			w.showText(w.strOp)
		}
	case "\"":
		w.nextLine(0, -w.leading)
		if w.hasStr {
			w.showText(w.strOp)
		}
	}
	// Every other operator (Tf, w, d, gs, Do, marked content, ...) has no
	// geometric effect on the records this reader produces.
}

// colorOperands interprets SC/SCN operands by count: gray, RGB, or CMYK.
// Pattern names carry no numeric operands, so those and any other count keep
// the previous color.
func (w *walker) colorOperands(prev rgb) rgb {
	switch len(w.operands) {
	case 1:
		return gray(w.operands[0])
	case 3:
		return rgb{w.operands[0], w.operands[1], w.operands[2]}
	case 4:
		return cmyk(w.operands[0], w.operands[1], w.operands[2], w.operands[3])
	}
	return prev
}

func cmyk(c, m, y, k float64) rgb {
	return rgb{
		r: clamp01(1 - min(1, c+k)),
		g: clamp01(1 - min(1, m+k)),
		b: clamp01(1 - min(1, y+k)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
