// Command radialview is an interactive terminal viewer for radial bar
// charts. Moving the mouse over an arc shows a tooltip with the record's
// label and description; leaving the arc hides it.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/tmaycock/radial-toolkit/pkg/chart"
	"github.com/tmaycock/radial-toolkit/pkg/radial"
)

// Viewer holds all viewer state.
type Viewer struct {
	screen  tcell.Screen
	data    *chart.Dataset
	ch      *radial.Chart
	tracker *radial.HoverTracker

	printMode bool   // toggled with 'p'
	hovered   string // label currently under the pointer, "" if none
	message   string
	filename  string

	// Cached per-arc render data, rebuilt with the chart
	arcs   []radial.ArcGeometry
	colors []tcell.Color
}

func main() {
	v := &Viewer{
		data:    chart.Default(),
		tracker: radial.NewHoverTracker(),
	}

	if len(os.Args) > 1 {
		v.filename = os.Args[1]
		d, err := chart.LoadFile(v.filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", v.filename, err)
			os.Exit(1)
		}
		v.data = d
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.Clear()

	v.screen = screen
	w, h := screen.Size()
	if err := v.buildChart(w, h); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	v.run()
	screen.Fini()
}

func (v *Viewer) run() {
	for {
		v.draw()
		v.screen.Show()

		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			if err := v.buildChart(w, h); err != nil {
				v.message = "Resize failed: " + err.Error()
			}
			v.screen.Sync()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			v.handleMouse(ev)
		}
	}
}

// buildChart recomposes the chart for the current terminal size.
// Terminal cells are roughly twice as tall as wide, so the pixel canvas
// maps one cell to a 1x2 pixel block.
func (v *Viewer) buildChart(w, h int) error {
	canvasH := h - 2 // status bar and help line
	if canvasH < 4 {
		canvasH = 4
	}

	style := radial.DefaultStyle()
	if v.printMode {
		style = radial.PrintStyle()
	}
	style.Width = w
	style.Height = canvasH * 2
	// Terminal labels are drawn as plain cells; keep them close to the arcs.
	style.LabelOffset = 4

	c, err := radial.New(v.data, style)
	if err != nil {
		return err
	}

	v.ch = c
	v.arcs = c.Arcs()
	rgba := radial.ArcColorRGBA(len(v.arcs))
	v.colors = make([]tcell.Color, len(rgba))
	for i, col := range rgba {
		v.colors[i] = tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B))
	}
	return nil
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case 'p', 'P':
		v.printMode = !v.printMode
		w, h := v.screen.Size()
		if err := v.buildChart(w, h); err != nil {
			v.message = "Error: " + err.Error()
		} else if v.printMode {
			v.message = "Print profile"
		} else {
			v.message = "Compact profile"
		}
	case 's', 'S':
		v.exportSVG()
	case 'g', 'G':
		v.exportPNG()
	}
	return false
}

// handleMouse resolves pointer motion to hover enter/leave transitions.
// Each arc behaves as an independent hit region: crossing directly from
// one arc to an adjacent one switches the hover without passing idle.
func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	px, py := cellToChart(cx, cy)

	rec, hit := v.ch.HitTest(px, py)

	switch {
	case hit && rec.Label != v.hovered:
		// Enter (possibly switching directly from another arc); the
		// tooltip anchor is captured once, here.
		v.hovered = rec.Label
		v.tracker.Enter(rec, float64(cx), float64(cy))
	case !hit && v.hovered != "":
		v.tracker.Leave(v.hovered)
		v.hovered = ""
	}
}

// cellToChart maps a terminal cell to chart pixel coordinates.
func cellToChart(cx, cy int) (float64, float64) {
	return float64(cx) + 0.5, (float64(cy) + 0.5) * 2
}

// chartToCell maps chart pixel coordinates back to a terminal cell.
func chartToCell(x, y float64) (int, int) {
	return int(x), int(y / 2)
}

func (v *Viewer) exportSVG() {
	// Export uses the print profile at its native size, not the
	// terminal-fitted chart.
	style := radial.PrintStyle()
	style.Title = v.data.Name
	c, err := radial.New(v.data, style)
	if err != nil {
		v.message = "Error: " + err.Error()
		return
	}
	if err := os.WriteFile("radialview.svg", []byte(c.SVG()), 0644); err != nil {
		v.message = "Error: " + err.Error()
		return
	}
	v.message = "Written: radialview.svg"
}

func (v *Viewer) exportPNG() {
	style := radial.PrintStyle()
	style.Title = v.data.Name
	c, err := radial.New(v.data, style)
	if err != nil {
		v.message = "Error: " + err.Error()
		return
	}
	f, err := os.Create("radialview.png")
	if err != nil {
		v.message = "Error: " + err.Error()
		return
	}
	defer f.Close()
	if err := c.PNG(f); err != nil {
		v.message = "Error: " + err.Error()
		return
	}
	v.message = "Written: radialview.png"
}
