// Package radial renders categorical datasets as radial (polar) bar
// charts. A Chart binds one dataset to a style profile and exposes SVG
// and PNG rendering plus pointer hit testing; all derived geometry is
// recomputed only when the canvas size changes.
package radial

import (
	"fmt"
	"io"

	"github.com/tmaycock/radial-toolkit/pkg/chart"
)

// Chart is the composed radial bar chart: sorted records, scales,
// per-record geometry and palette.
type Chart struct {
	records []chart.Record // sorted by label
	style   Style
	bands   *BandScale
	radii   *RadialScale
	arcs    []ArcGeometry
	colors  []string // hex fills, parallel to arcs
}

// New composes a chart from a dataset and a style profile. The dataset
// is validated and copied; later mutation of the caller's dataset does
// not affect the chart.
func New(d *chart.Dataset, style Style) (*Chart, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}

	c := &Chart{
		records: d.Sorted(),
		style:   style.normalize(),
	}
	c.recompute(d.MaxValue())
	return c, nil
}

// Interactive returns a chart over the built-in dataset with the compact
// profile. Zero width/height fall back to the profile defaults.
func Interactive(width, height int) *Chart {
	style := DefaultStyle()
	if width > 0 {
		style.Width = width
	}
	if height > 0 {
		style.Height = height
	}
	c, err := New(chart.Default(), style)
	if err != nil {
		// The built-in dataset is valid by construction.
		panic(err)
	}
	return c
}

// Print returns a chart over the built-in dataset with the large static
// profile, tuned for embedded display.
func Print(width, height int) *Chart {
	style := PrintStyle()
	if width > 0 {
		style.Width = width
	}
	if height > 0 {
		style.Height = height
	}
	c, err := New(chart.Default(), style)
	if err != nil {
		panic(err)
	}
	return c
}

// recompute rebuilds scales and per-record geometry from the current
// style. The records themselves are never touched.
func (c *Chart) recompute(maxValue float64) {
	labels := make([]string, len(c.records))
	for i, r := range c.records {
		labels[i] = r.Label
	}

	outer := c.style.maxUsableRadius()
	inner := outer * c.style.InnerRatio

	c.bands = NewBandScale(labels, c.style.PadFraction)
	c.radii = NewRadialScale(maxValue, inner, outer)
	c.arcs = ComputeAll(c.records, c.bands, c.radii, c.style.LabelOffset)
	c.colors = ArcColorHex(len(c.arcs))
}

// Resize changes the canvas dimensions and recomputes derived geometry.
func (c *Chart) Resize(width, height int) {
	if width > 0 {
		c.style.Width = width
	}
	if height > 0 {
		c.style.Height = height
	}
	c.recompute(c.maxValue())
}

func (c *Chart) maxValue() float64 {
	max := 0.0
	for _, r := range c.records {
		if r.Value > max {
			max = r.Value
		}
	}
	return max
}

// Style returns the chart's normalized style profile.
func (c *Chart) Style() Style { return c.style }

// Records returns the chart's records in render (sorted) order.
func (c *Chart) Records() []chart.Record {
	out := make([]chart.Record, len(c.records))
	copy(out, c.records)
	return out
}

// Arcs returns the computed geometry in render order.
func (c *Chart) Arcs() []ArcGeometry {
	out := make([]ArcGeometry, len(c.arcs))
	copy(out, c.arcs)
	return out
}

// Center returns the chart centre in canvas coordinates.
func (c *Chart) Center() Point {
	return Point{
		X: float64(c.style.Width) / 2,
		Y: float64(c.style.Height) / 2,
	}
}

// HitTest resolves a canvas coordinate to the record whose arc contains
// it. Used by interaction layers to drive hover tracking.
func (c *Chart) HitTest(x, y float64) (chart.Record, bool) {
	centre := c.Center()
	p := Point{X: x - centre.X, Y: y - centre.Y}
	for i, g := range c.arcs {
		if g.Contains(p) {
			return c.records[i], true
		}
	}
	return chart.Record{}, false
}

// SVG renders the chart to SVG markup.
func (c *Chart) SVG() string {
	return renderSVG(c)
}

// PNG renders the chart to PNG.
func (c *Chart) PNG(w io.Writer) error {
	return renderPNG(c, w)
}
