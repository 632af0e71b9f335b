package plotset

import (
	"github.com/pyhub-apps/plotrecon-golang/pkg/drawing"
	"github.com/pyhub-apps/plotrecon-golang/pkg/ident"
)

// ClassifiedLabel pairs a text label with its recognized class and, for
// plot-shaped text, its normalized identifier.
type ClassifiedLabel struct {
	Label      drawing.TextLabel
	Class      ident.Class
	Normalized ident.Identifier
}

// ClassifyLabels surveys the whole label population of a drawing. It is an
// audit aid: before trusting the spatial association, callers can see what
// identifier text the drawing actually carries and what it was recognized as.
func ClassifyLabels(labels []drawing.TextLabel) []ClassifiedLabel {
	out := make([]ClassifiedLabel, 0, len(labels))
	for _, l := range labels {
		cl := ClassifiedLabel{Label: l, Class: ident.Classify(l.Content)}
		if cl.Class == ident.PlotNumber || cl.Class == ident.PlainNumber {
			cl.Normalized = ident.Normalize(l.Content)
		}
		out = append(out, cl)
	}
	return out
}

// PotentialPlotLabels returns the labels ClassifyLabels recognized as plot or
// plain numbers, in input order.
func PotentialPlotLabels(labels []drawing.TextLabel) []ClassifiedLabel {
	var out []ClassifiedLabel
	for _, cl := range ClassifyLabels(labels) {
		if cl.Class == ident.PlotNumber || cl.Class == ident.PlainNumber {
			out = append(out, cl)
		}
	}
	return out
}

// SurveyLabels returns the labels whose content is survey-number shaped, in
// input order.
func SurveyLabels(labels []drawing.TextLabel) []drawing.TextLabel {
	var out []drawing.TextLabel
	for _, l := range labels {
		if ident.IsSurveyNumber(l.Content) {
			out = append(out, l)
		}
	}
	return out
}
