package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Styles
var (
	styleDefault = tcell.StyleDefault
	styleLabel   = tcell.StyleDefault.Bold(true)
	styleValue   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTipBox  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue)
	styleTipHead = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue).Bold(true)
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorDarkBlue)
)

func (v *Viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	canvasH := h - 2

	v.drawArcs(w, canvasH)
	v.drawLabels(w, canvasH)
	v.drawTooltip(w, canvasH)
	v.drawStatusBar(w, h)
}

// drawArcs paints every canvas cell whose chart-space centre falls inside
// an arc. The hovered arc is drawn brighter.
func (v *Viewer) drawArcs(w, canvasH int) {
	for cy := 0; cy < canvasH; cy++ {
		for cx := 0; cx < w; cx++ {
			px, py := cellToChart(cx, cy)
			rec, ok := v.ch.HitTest(px, py)
			if !ok {
				continue
			}
			for i, g := range v.arcs {
				if g.Label != rec.Label {
					continue
				}
				ch := '░'
				if rec.Label == v.hovered {
					ch = '█'
				}
				v.screen.SetContent(cx, cy, ch, nil,
					styleDefault.Foreground(v.colors[i]))
				break
			}
		}
	}
}

// drawLabels places each category label and value at the cell nearest
// its computed anchor. Rotation does not apply to terminal cells.
func (v *Viewer) drawLabels(w, canvasH int) {
	centre := v.ch.Center()
	for i, g := range v.arcs {
		lx, ly := chartToCell(centre.X+g.LabelPos.X, centre.Y+g.LabelPos.Y)
		v.drawString(lx-len(g.Label)/2, ly, g.Label, w, canvasH,
			styleLabel.Foreground(v.colors[i]))

		val := strconv.FormatFloat(g.Value, 'f', -1, 64)
		vx, vy := chartToCell(centre.X+g.ValuePos.X, centre.Y+g.ValuePos.Y)
		v.drawString(vx-len(val)/2, vy, val, w, canvasH, styleValue)
	}
}

// drawTooltip renders the hover overlay above the captured entry point.
func (v *Viewer) drawTooltip(w, canvasH int) {
	tip, ok := v.tracker.Tooltip(2)
	if !ok {
		return
	}

	lines := wrapText(tip.Description, 38)
	boxW := len(tip.Label)
	for _, l := range lines {
		if len(l) > boxW {
			boxW = len(l)
		}
	}
	boxW += 4
	boxH := len(lines) + 3

	x := int(tip.X) - boxW/2
	y := int(tip.Y) - boxH
	if x < 0 {
		x = 0
	}
	if x+boxW > w {
		x = w - boxW
	}
	if y < 0 {
		y = 0
	}

	v.drawBox(x, y, boxW, boxH)
	v.drawString(x+2, y+1, tip.Label, w, canvasH, styleTipHead)
	for i, l := range lines {
		v.drawString(x+2, y+2+i, l, w, canvasH, styleTipBox)
	}
}

func (v *Viewer) drawStatusBar(w, h int) {
	status := fmt.Sprintf(" %d records", len(v.arcs))
	if v.ch != nil && v.printMode {
		status += "  [print]"
	}
	if v.hovered != "" {
		status += "  hover: " + v.hovered
	}
	if v.message != "" {
		status += "  " + v.message
	}
	for i := 0; i < w; i++ {
		v.screen.SetContent(i, h-2, ' ', nil, styleStatus)
	}
	v.drawString(0, h-2, truncate(status, w), w, h, styleStatus)

	help := " q quit | p profile | s svg | g png | hover an arc for details"
	v.drawString(0, h-1, truncate(help, w), w, h, styleHelp)
}

func (v *Viewer) drawBox(x, y, w, h int) {
	v.screen.SetContent(x, y, '┌', nil, styleBorder)
	v.screen.SetContent(x+w-1, y, '┐', nil, styleBorder)
	v.screen.SetContent(x, y+h-1, '└', nil, styleBorder)
	v.screen.SetContent(x+w-1, y+h-1, '┘', nil, styleBorder)
	for i := 1; i < w-1; i++ {
		v.screen.SetContent(x+i, y, '─', nil, styleBorder)
		v.screen.SetContent(x+i, y+h-1, '─', nil, styleBorder)
	}
	for row := 1; row < h-1; row++ {
		v.screen.SetContent(x, y+row, '│', nil, styleBorder)
		v.screen.SetContent(x+w-1, y+row, '│', nil, styleBorder)
		for col := 1; col < w-1; col++ {
			v.screen.SetContent(x+col, y+row, ' ', nil, styleTipBox)
		}
	}
}

func (v *Viewer) drawString(x, y int, s string, maxW, maxH int, style tcell.Style) {
	if y < 0 || y >= maxH {
		return
	}
	for i, r := range s {
		if x+i < 0 || x+i >= maxW {
			continue
		}
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// wrapText breaks s into lines no longer than width, on word boundaries.
func wrapText(s string, width int) []string {
	if s == "" {
		return nil
	}
	words := strings.Fields(s)
	var lines []string
	line := ""
	for _, word := range words {
		if line == "" {
			line = word
		} else if len(line)+1+len(word) <= width {
			line += " " + word
		} else {
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
