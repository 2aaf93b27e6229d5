// Hover tracking for the interactive chart variant.
// A two-state machine: idle, or hovering exactly one record. Host event
// loops feed it Enter/Leave callbacks; it never tracks motion during a
// hover, so the tooltip position stays fixed at the entry point.

package radial

import "github.com/tmaycock/radial-toolkit/pkg/chart"

// HoverState is the tracker's current state.
type HoverState int

const (
	StateIdle     HoverState = iota // no arc under the pointer
	StateHovering                   // exactly one arc under the pointer
)

// Tooltip describes the overlay shown while hovering an arc: the record's
// label (bold) and description, anchored near the captured entry point.
type Tooltip struct {
	Label       string
	Description string
	X, Y        float64
}

// HoverTracker resolves pointer enter/leave events to at most one active
// record. Handlers are expected to run on a single event loop; the
// tracker itself holds no locks.
type HoverTracker struct {
	state  HoverState
	record chart.Record
	x, y   float64
}

// NewHoverTracker returns a tracker in the idle state.
func NewHoverTracker() *HoverTracker {
	return &HoverTracker{state: StateIdle}
}

// Enter activates hovering for the given record, capturing the pointer
// position once. Entering while already hovering another record switches
// directly; the most recent enter always wins.
func (t *HoverTracker) Enter(rec chart.Record, x, y float64) {
	t.state = StateHovering
	t.record = rec
	t.x = x
	t.y = y
}

// Leave returns the tracker to idle, but only if the leave event belongs
// to the currently active record. A stale leave that raced with an enter
// for an adjacent arc is a no-op, so rapid pointer movement never drops
// a fresh tooltip.
func (t *HoverTracker) Leave(label string) {
	if t.state == StateHovering && t.record.Label == label {
		t.state = StateIdle
		t.record = chart.Record{}
	}
}

// Reset unconditionally returns the tracker to idle.
func (t *HoverTracker) Reset() {
	t.state = StateIdle
	t.record = chart.Record{}
}

// State returns the current state.
func (t *HoverTracker) State() HoverState {
	return t.state
}

// Active returns the hovered record, if any.
func (t *HoverTracker) Active() (chart.Record, bool) {
	if t.state != StateHovering {
		return chart.Record{}, false
	}
	return t.record, true
}

// Tooltip returns the overlay for the active record, shifted upward by
// liftY so it does not obscure the arc under the pointer.
func (t *HoverTracker) Tooltip(liftY float64) (Tooltip, bool) {
	if t.state != StateHovering {
		return Tooltip{}, false
	}
	return Tooltip{
		Label:       t.record.Label,
		Description: t.record.Description,
		X:           t.x,
		Y:           t.y - liftY,
	}, true
}
