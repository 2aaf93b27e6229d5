package radial

// Style is a rendering profile shared by the SVG and PNG renderers.
// The compact and print variants differ only in canvas size, fonts and
// label offset; all geometry flows through the same code.
type Style struct {
	Width         int     // canvas width in pixels
	Height        int     // canvas height in pixels
	FontSize      int     // category label font size
	ValueFontSize int     // numeric value font size
	LabelOffset   float64 // gap between arc outer edge and category label
	PadFraction   float64 // band padding fraction (0 = DefaultPadFraction)
	CornerRadius  float64 // uniform arc corner rounding
	InnerRatio    float64 // inner radius as fraction of max usable radius
	Background    bool    // radial gradient plate behind the arcs
	Title         string  // optional chart title
}

// DefaultStyle returns the compact profile used by the interactive chart.
func DefaultStyle() Style {
	return Style{
		Width:         420,
		Height:        420,
		FontSize:      11,
		ValueFontSize: 9,
		LabelOffset:   12,
		PadFraction:   DefaultPadFraction,
		CornerRadius:  3,
		InnerRatio:    1.0 / 3.0,
		Background:    true,
	}
}

// PrintStyle returns the large profile for static, embedded output.
func PrintStyle() Style {
	return Style{
		Width:         640,
		Height:        640,
		FontSize:      16,
		ValueFontSize: 12,
		LabelOffset:   26,
		PadFraction:   DefaultPadFraction,
		CornerRadius:  4,
		InnerRatio:    1.0 / 3.0,
		Background:    true,
	}
}

// normalize backfills zero fields with the compact defaults, so callers
// can set only width/height and get a usable profile.
func (s Style) normalize() Style {
	def := DefaultStyle()
	if s.Width == 0 {
		s.Width = def.Width
	}
	if s.Height == 0 {
		s.Height = def.Height
	}
	if s.FontSize == 0 {
		s.FontSize = def.FontSize
	}
	if s.ValueFontSize == 0 {
		s.ValueFontSize = def.ValueFontSize
	}
	if s.LabelOffset == 0 {
		s.LabelOffset = def.LabelOffset
	}
	if s.PadFraction == 0 {
		s.PadFraction = def.PadFraction
	}
	if s.InnerRatio <= 0 || s.InnerRatio >= 1 {
		s.InnerRatio = def.InnerRatio
	}
	return s
}

// maxUsableRadius is the largest outer radius that leaves room for the
// category labels outside the arcs.
func (s Style) maxUsableRadius() float64 {
	half := float64(minInt(s.Width, s.Height)) / 2
	reserve := s.LabelOffset + float64(s.FontSize)*2
	r := half - reserve
	if r < 0 {
		r = 0
	}
	return r
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
