// Package ident recognizes and normalizes the identifier text found in survey
// drawings: plot numbers ("PLOT 2A", "P30", "NO. 5"), bare numbers that stand
// in for plot numbers ("12", "2/A", "A1"), and survey numbers ("SURVEY NO 7").
package ident

import (
	"regexp"
	"strings"
)

// Class is the recognized category of an identifier string.
type Class int

const (
	// None means the text is not identifier-shaped at all.
	None Class = iota
	// PlotNumber is a plot identifier, optionally prefixed (PLOT, P, NO).
	PlotNumber
	// PlainNumber is a bare numeric token that can stand in for a plot number.
	PlainNumber
	// SurveyNumber is a survey identifier (SURVEY NO 7, 30/A SURVEY, ...).
	SurveyNumber
)

// String returns a human-readable class name.
func (c Class) String() string {
	switch c {
	case PlotNumber:
		return "plot-number"
	case PlainNumber:
		return "plain-number"
	case SurveyNumber:
		return "survey-number"
	default:
		return "none"
	}
}

// idBody is the digit/letter/slash shape shared by all identifier classes:
// digits, an optional single letter, an optional "/" followed by digits or
// letters (2, 2A, 30/A, 1/2, 2A/1).
const idBody = `\d+[A-Z]?(?:/[\dA-Z]+)?`

var plotNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^PLOT\s*#?\s*` + idBody + `$`), // PLOT 1, PLOT 2A, PLOT 30/A
	regexp.MustCompile(`^P\s*` + idBody + `$`),         // P1, P2A, P30/A
	regexp.MustCompile(`^NO\s*\.?\s*` + idBody + `$`),  // NO 1, NO. 1, NO 30/A
	regexp.MustCompile(`^` + idBody + `$`),             // 1, 2A, 30/A, 2/A
}

var simpleNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+$`),          // 1, 2, 30, 100
	regexp.MustCompile(`^\d+[A-Z]$`),     // 1A, 2B, 30A
	regexp.MustCompile(`^\d+/\d+$`),      // 1/2, 30/2
	regexp.MustCompile(`^\d+[A-Z]/\d+$`), // 1A/2, 2B/1
	regexp.MustCompile(`^[A-Z]\d+$`),     // A1, B2, C30
}

var surveyNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^SURVEY\s*NO\s*\.?\s*` + idBody + `$`),  // SURVEY NO 1, SURVEY NO. 1
	regexp.MustCompile(`^S\s*\.?\s*NO\s*\.?\s*` + idBody + `$`), // S NO 1, S. NO. 1
	regexp.MustCompile(`^SURVEY\s*` + idBody + `$`),             // SURVEY 1, SURVEY 30/A
	regexp.MustCompile(`^` + idBody + `\s*SURVEY$`),             // 1 SURVEY, 30/A SURVEY
}

func matchesAny(text string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

func canonical(text string) string {
	return strings.ToUpper(strings.TrimSpace(text))
}

// IsPlotNumber reports whether text is shaped like a plot number, with or
// without a recognized prefix token.
func IsPlotNumber(text string) bool {
	return matchesAny(canonical(text), plotNumberPatterns)
}

// IsSimpleNumber reports whether text is a bare numeric token that could be a
// plot number.
func IsSimpleNumber(text string) bool {
	return matchesAny(canonical(text), simpleNumberPatterns)
}

// IsSurveyNumber reports whether text is shaped like a survey number.
func IsSurveyNumber(text string) bool {
	return matchesAny(canonical(text), surveyNumberPatterns)
}

// classifiers is evaluated in a fixed sequence; the first matching predicate
// decides the class.
var classifiers = []struct {
	match func(string) bool
	class Class
}{
	{IsPlotNumber, PlotNumber},
	{IsSimpleNumber, PlainNumber},
	{IsSurveyNumber, SurveyNumber},
}

// Classify decides what the given text is. Plot-number detection is tried
// before the plain-number fallback; survey detection comes last since survey
// text never collides with the other two shapes.
func Classify(text string) Class {
	t := canonical(text)
	for _, c := range classifiers {
		if c.match(t) {
			return c.class
		}
	}
	return None
}
