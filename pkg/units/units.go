// Package units converts raw drawing-unit measurements to physical meters.
// The conversion is a pure multiplicative transform applied by reporting and
// CLI code; the measurement engine itself always works in drawing units.
package units

// Scale is the drawing-unit to meter multiplier. A 1:2000 survey sheet drawn
// at 1cm = 20m uses Scale(20).
type Scale float64

// DefaultScale matches the 1:2000 sheets these drawings come from.
const DefaultScale Scale = 20.0

// Length converts a raw drawing-unit length to meters.
func (s Scale) Length(raw float64) float64 {
	return raw * float64(s)
}

// Area converts a raw drawing-unit area to square meters. Area scales with the
// square of the linear factor.
func (s Scale) Area(raw float64) float64 {
	return raw * float64(s) * float64(s)
}

// Valid reports whether the scale is usable. Zero or negative scales collapse
// or mirror every measurement.
func (s Scale) Valid() bool {
	return s > 0
}
