// Geometric utilities for radial bar charts.
// All functions here are pure: identical inputs yield identical output.

package radial

import (
	"math"

	"github.com/tmaycock/radial-toolkit/pkg/chart"
)

// Point represents a 2D coordinate relative to the chart centre.
type Point struct {
	X, Y float64
}

// ArcGeometry holds the computed geometry for one record: the annular
// sector, the category-label anchor and the value-label anchor.
type ArcGeometry struct {
	Label       string
	Value       float64
	StartAngle  float64 // radians, 0 at 12 o'clock, clockwise
	EndAngle    float64
	MidAngle    float64
	InnerRadius float64
	OuterRadius float64
	LabelPos    Point   // category label anchor, outside the arc
	ValuePos    Point   // numeric label anchor, inside the arc
	Rotation    float64 // category label rotation in degrees
}

// PointOnRay returns the Cartesian point at the given angle and radius.
// Angle 0 maps to 12 o'clock rather than the trigonometric 3 o'clock,
// matching clock-style radial charts.
func PointOnRay(angle, radius float64) Point {
	return Point{
		X: radius * math.Cos(angle-math.Pi/2),
		Y: radius * math.Sin(angle-math.Pi/2),
	}
}

// ComputeArc derives the full geometry for one record from the scales.
// labelOffset is the gap in pixels between the arc's outer edge and the
// category label anchor. Returns ok=false if the record's label is not
// in the band scale's domain.
func ComputeArc(rec chart.Record, bands *BandScale, radii *RadialScale, labelOffset float64) (ArcGeometry, bool) {
	start, end, ok := bands.Band(rec.Label)
	if !ok {
		return ArcGeometry{}, false
	}

	mid := start + (end-start)/2
	outer := radii.Radius(rec.Value)
	textRadius := outer + labelOffset

	return ArcGeometry{
		Label:       rec.Label,
		Value:       rec.Value,
		StartAngle:  start,
		EndAngle:    end,
		MidAngle:    mid,
		InnerRadius: radii.Inner(),
		OuterRadius: outer,
		LabelPos:    PointOnRay(mid, textRadius),
		ValuePos:    PointOnRay(mid, (radii.Inner()+textRadius)/2),
		Rotation:    mid * 180 / math.Pi,
	}, true
}

// ComputeAll derives geometry for every record in sorted label order.
func ComputeAll(records []chart.Record, bands *BandScale, radii *RadialScale, labelOffset float64) []ArcGeometry {
	out := make([]ArcGeometry, 0, len(records))
	for _, rec := range records {
		g, ok := ComputeArc(rec, bands, radii, labelOffset)
		if !ok {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Contains reports whether a point (relative to the chart centre) falls
// inside this record's annular sector.
func (g ArcGeometry) Contains(p Point) bool {
	r := math.Hypot(p.X, p.Y)
	if r < g.InnerRadius || r > g.OuterRadius {
		return false
	}

	// Recover the clock-style angle in [0, 2π).
	a := math.Atan2(p.Y, p.X) + math.Pi/2
	if a < 0 {
		a += 2 * math.Pi
	}
	return a >= g.StartAngle && a < g.EndAngle
}
