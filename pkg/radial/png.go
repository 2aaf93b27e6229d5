// Native PNG rendering for radial bar charts.
// Mirrors the SVG renderer output on a gg raster surface.

package radial

import (
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	colorPlateIn  = color.RGBA{28, 39, 51, 255}   // #1c2733
	colorPlateOut = color.RGBA{14, 20, 27, 255}   // #0e141b
	colorValueHi  = color.RGBA{245, 245, 245, 255}
	colorValueLo  = color.RGBA{34, 34, 34, 255}
	colorWhite    = color.RGBA{255, 255, 255, 255}
)

// fontFace builds a Go Regular face at the given size.
func fontFace(size float64) font.Face {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err) // should never happen with the embedded font
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(err)
	}
	return face
}

// renderPNG renders the composed chart to PNG.
func renderPNG(c *Chart, w io.Writer) error {
	s := c.style
	centre := c.Center()
	dc := gg.NewContext(s.Width, s.Height)

	if s.Background {
		plateR := float64(minInt(s.Width, s.Height)) / 2
		grad := gg.NewRadialGradient(centre.X, centre.Y, 0, centre.X, centre.Y, plateR)
		grad.AddColorStop(0, colorPlateIn)
		grad.AddColorStop(1, colorPlateOut)
		dc.SetFillStyle(grad)
		dc.DrawCircle(centre.X, centre.Y, plateR)
		dc.Fill()
	} else {
		dc.SetColor(colorWhite)
		dc.Clear()
	}

	valueColor := colorValueHi
	if !s.Background {
		valueColor = colorValueLo
	}

	fills := ArcColorRGBA(len(c.arcs))

	// Arcs
	for i, g := range c.arcs {
		dc.SetColor(fills[i])
		fillAnnularSector(dc, centre, g)
		if s.CornerRadius > 0 {
			// Same round-join stroke trick as the SVG renderer.
			dc.SetLineJoin(gg.LineJoinRound)
			dc.SetLineWidth(s.CornerRadius * 2)
			strokeAnnularSector(dc, centre, g, fills[i])
		}
	}

	// Labels
	catFace := fontFace(float64(s.FontSize))
	valFace := fontFace(float64(s.ValueFontSize))

	for i, g := range c.arcs {
		dc.SetFontFace(catFace)
		dc.SetColor(fills[i])
		lx := centre.X + g.LabelPos.X
		ly := centre.Y + g.LabelPos.Y
		dc.Push()
		dc.RotateAbout(gg.Radians(g.Rotation), lx, ly)
		dc.DrawStringAnchored(g.Label, lx, ly, 0.5, 0.5)
		dc.Pop()

		dc.SetFontFace(valFace)
		dc.SetColor(valueColor)
		vx := centre.X + g.ValuePos.X
		vy := centre.Y + g.ValuePos.Y
		dc.DrawStringAnchored(formatValue(g.Value), vx, vy, 0.5, 0.5)
	}

	if s.Title != "" {
		dc.SetFontFace(fontFace(float64(s.FontSize + 4)))
		dc.SetColor(valueColor)
		dc.DrawStringAnchored(s.Title, float64(s.Width)/2, float64(s.FontSize+8), 0.5, 0.5)
	}

	return dc.EncodePNG(w)
}

// sectorPath traces one ring segment into the current path. The clock
// angles shift by -π/2 to gg's 3-o'clock convention.
func sectorPath(dc *gg.Context, centre Point, g ArcGeometry) {
	a1 := g.StartAngle - math.Pi/2
	a2 := g.EndAngle - math.Pi/2
	dc.NewSubPath()
	dc.DrawArc(centre.X, centre.Y, g.OuterRadius, a1, a2)
	dc.DrawArc(centre.X, centre.Y, g.InnerRadius, a2, a1)
	dc.ClosePath()
}

func fillAnnularSector(dc *gg.Context, centre Point, g ArcGeometry) {
	sectorPath(dc, centre, g)
	dc.Fill()
}

func strokeAnnularSector(dc *gg.Context, centre Point, g ArcGeometry, c color.RGBA) {
	dc.SetColor(c)
	sectorPath(dc, centre, g)
	dc.Stroke()
}
