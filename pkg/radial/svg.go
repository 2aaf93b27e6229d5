package radial

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"
)

// renderSVG renders the composed chart to SVG markup.
func renderSVG(c *Chart) string {
	s := c.style
	centre := c.Center()

	// Value labels sit on the plate when there is one, on the page
	// background otherwise.
	valueFill := "#f5f5f5"
	titleFill := "#f5f5f5"
	if !s.Background {
		valueFill = "#222222"
		titleFill = "#222222"
	}

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<defs>
  <radialGradient id="plate" cx="50%%" cy="50%%" r="50%%">
    <stop offset="0%%" stop-color="#1c2733"/>
    <stop offset="100%%" stop-color="#0e141b"/>
  </radialGradient>
</defs>
<style>
  .cat-label { font-family: sans-serif; font-size: %dpx; text-anchor: middle; dominant-baseline: middle; }
  .val-label { font-family: sans-serif; font-size: %dpx; fill: %s; text-anchor: middle; dominant-baseline: middle; }
  .title { font-family: sans-serif; font-size: %dpx; font-weight: bold; text-anchor: middle; fill: %s; }
</style>
`, s.Width, s.Height, s.Width, s.Height, s.FontSize, s.ValueFontSize, valueFill, s.FontSize+4, titleFill))

	// Background plate: page-level decoration, not per-arc encoding
	if s.Background {
		plateR := float64(minInt(s.Width, s.Height)) / 2
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="url(#plate)"/>
`, centre.X, centre.Y, plateR))
	}

	// Title
	if s.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="title">%s</text>
`, s.Width/2, s.FontSize+8, html.EscapeString(s.Title)))
	}

	// Arcs first, labels on top
	for i, g := range c.arcs {
		fill := c.colors[i]
		drawAnnularSector(&sb, centre, g, fill, s.CornerRadius)
	}

	for i, g := range c.arcs {
		fill := c.colors[i]

		// Category label, rotated to read radially outward
		lp := Point{X: centre.X + g.LabelPos.X, Y: centre.Y + g.LabelPos.Y}
		sb.WriteString(fmt.Sprintf(`<text transform="translate(%.1f,%.1f) rotate(%.1f)" class="cat-label" fill="%s">%s</text>
`, lp.X, lp.Y, g.Rotation, fill, html.EscapeString(g.Label)))

		// Numeric value inside the arc, unrotated
		vp := Point{X: centre.X + g.ValuePos.X, Y: centre.Y + g.ValuePos.Y}
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" class="val-label">%s</text>
`, vp.X, vp.Y, formatValue(g.Value)))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// drawAnnularSector draws one ring segment. Corner rounding comes from
// the matching round-join stroke, which avoids the eight-segment path a
// true rounded annulus would need.
func drawAnnularSector(sb *strings.Builder, centre Point, g ArcGeometry, fill string, corner float64) {
	// Degenerate zero-value record: zero-thickness wedge, still emitted
	// so the band stays occupied.
	outerStart := PointOnRay(g.StartAngle, g.OuterRadius)
	outerEnd := PointOnRay(g.EndAngle, g.OuterRadius)
	innerEnd := PointOnRay(g.EndAngle, g.InnerRadius)
	innerStart := PointOnRay(g.StartAngle, g.InnerRadius)

	largeArc := 0
	if g.EndAngle-g.StartAngle > math.Pi {
		largeArc = 1
	}

	path := fmt.Sprintf("M%.2f,%.2f A%.2f,%.2f 0 %d 1 %.2f,%.2f L%.2f,%.2f A%.2f,%.2f 0 %d 0 %.2f,%.2f Z",
		centre.X+outerStart.X, centre.Y+outerStart.Y,
		g.OuterRadius, g.OuterRadius, largeArc,
		centre.X+outerEnd.X, centre.Y+outerEnd.Y,
		centre.X+innerEnd.X, centre.Y+innerEnd.Y,
		g.InnerRadius, g.InnerRadius, largeArc,
		centre.X+innerStart.X, centre.Y+innerStart.Y)

	if corner > 0 {
		sb.WriteString(fmt.Sprintf(`<path d="%s" fill="%s" stroke="%s" stroke-width="%.1f" stroke-linejoin="round"/>
`, path, fill, fill, corner*2))
	} else {
		sb.WriteString(fmt.Sprintf(`<path d="%s" fill="%s"/>
`, path, fill))
	}
}

// formatValue prints a value without trailing zeros.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
