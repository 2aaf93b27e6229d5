package radial

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ArcColors returns n visually distinct arc colours, evenly spaced around
// the hue wheel at fixed saturation and lightness.
func ArcColors(n int) []colorful.Color {
	if n <= 0 {
		return nil
	}
	out := make([]colorful.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) * 360.0 / float64(n)
		out[i] = colorful.Hsl(hue, 0.55, 0.55)
	}
	return out
}

// ArcColorHex returns the palette as #rrggbb strings for SVG fills.
func ArcColorHex(n int) []string {
	cols := ArcColors(n)
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Hex()
	}
	return out
}

// ArcColorRGBA returns the palette as color.RGBA for raster rendering.
func ArcColorRGBA(n int) []color.RGBA {
	cols := ArcColors(n)
	out := make([]color.RGBA, len(cols))
	for i, c := range cols {
		r, g, b := c.RGB255()
		out[i] = color.RGBA{r, g, b, 255}
	}
	return out
}
