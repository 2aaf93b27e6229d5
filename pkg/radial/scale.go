// Angular and radial scales for radial bar charts.
// The band scale partitions the full circle into labelled sectors;
// the radial scale maps magnitudes to radii.

package radial

import "math"

// DefaultPadFraction is the fraction of each band's width reserved as
// padding, split evenly between the leading and trailing edges.
const DefaultPadFraction = 0.2

// BandScale maps category labels to contiguous angular bands of [0, 2π).
// Bands plus their padding partition the circle with no gaps or overlaps.
type BandScale struct {
	domain  []string
	index   map[string]int
	padding float64 // fraction of band width, per band
}

// NewBandScale builds a band scale over the given labels in the given
// order. Callers who need deterministic positions must sort first.
// A pad fraction outside [0, 1) falls back to DefaultPadFraction.
func NewBandScale(labels []string, padding float64) *BandScale {
	if padding < 0 || padding >= 1 {
		padding = DefaultPadFraction
	}

	idx := make(map[string]int, len(labels))
	domain := make([]string, len(labels))
	for i, l := range labels {
		domain[i] = l
		idx[l] = i
	}

	return &BandScale{
		domain:  domain,
		index:   idx,
		padding: padding,
	}
}

// Len returns the number of bands.
func (s *BandScale) Len() int {
	return len(s.domain)
}

// Domain returns the label domain in band order.
func (s *BandScale) Domain() []string {
	out := make([]string, len(s.domain))
	copy(out, s.domain)
	return out
}

// Step returns the full angular width allotted to each band, padding
// included. Zero for an empty domain.
func (s *BandScale) Step() float64 {
	if len(s.domain) == 0 {
		return 0
	}
	return 2 * math.Pi / float64(len(s.domain))
}

// Band returns the padded angular span [start, end) for a label.
// Looking up a label outside the domain returns ok=false; the scale is
// total only over the labels it was built from.
func (s *BandScale) Band(label string) (start, end float64, ok bool) {
	i, ok := s.index[label]
	if !ok {
		return 0, 0, false
	}

	step := s.Step()
	pad := step * s.padding / 2
	start = float64(i)*step + pad
	end = float64(i+1)*step - pad
	return start, end, true
}

// RadialScale maps values in [0, max] to radii in [inner, outer] using
// square-root weighting. The square root keeps perceived (area) growth
// proportional to value growth for annular sectors.
type RadialScale struct {
	max   float64
	inner float64
	outer float64
}

// NewRadialScale builds a radial scale. A non-positive max collapses the
// scale: every value maps to the inner radius.
func NewRadialScale(max, inner, outer float64) *RadialScale {
	return &RadialScale{max: max, inner: inner, outer: outer}
}

// Inner returns the inner radius (the radius mapped to value 0).
func (s *RadialScale) Inner() float64 { return s.inner }

// Outer returns the outer radius (the radius mapped to the max value).
func (s *RadialScale) Outer() float64 { return s.outer }

// Radius maps a value to its radius. Values are clamped to [0, max].
func (s *RadialScale) Radius(v float64) float64 {
	if s.max <= 0 || v <= 0 {
		return s.inner
	}
	if v > s.max {
		v = s.max
	}
	return s.inner + (s.outer-s.inner)*math.Sqrt(v/s.max)
}
