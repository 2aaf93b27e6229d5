package radial

import (
	"testing"

	"github.com/tmaycock/radial-toolkit/pkg/chart"
)

var (
	recA = chart.Record{Label: "A", Value: 10, Description: "first feature"}
	recB = chart.Record{Label: "B", Value: 30, Description: "second feature"}
	recC = chart.Record{Label: "C", Value: 20, Description: "third feature"}
)

func TestHoverEnterLeave(t *testing.T) {
	tr := NewHoverTracker()
	if tr.State() != StateIdle {
		t.Fatal("New tracker not idle")
	}

	tr.Enter(recC, 120, 80)
	if tr.State() != StateHovering {
		t.Fatal("Enter did not transition to hovering")
	}

	tip, ok := tr.Tooltip(16)
	if !ok {
		t.Fatal("No tooltip while hovering")
	}
	if tip.Label != "C" || tip.Description != "third feature" {
		t.Errorf("Tooltip = %q / %q, want C / third feature", tip.Label, tip.Description)
	}
	if tip.X != 120 || tip.Y != 80-16 {
		t.Errorf("Tooltip at (%.1f, %.1f), want (120, 64)", tip.X, tip.Y)
	}

	tr.Leave("C")
	if tr.State() != StateIdle {
		t.Error("Leave did not return to idle")
	}
	if _, ok := tr.Tooltip(16); ok {
		t.Error("Tooltip still present after leave")
	}
}

func TestHoverDirectSwitch(t *testing.T) {
	tr := NewHoverTracker()
	tr.Enter(recA, 10, 10)
	tr.Enter(recB, 20, 20)

	rec, ok := tr.Active()
	if !ok {
		t.Fatal("Tracker idle after direct switch")
	}
	if rec.Label != "B" {
		t.Errorf("Active record %q, want B (latest enter wins)", rec.Label)
	}

	// Position was re-captured at the second entry.
	tip, _ := tr.Tooltip(0)
	if tip.X != 20 || tip.Y != 20 {
		t.Errorf("Tooltip at (%.1f, %.1f), want re-captured (20, 20)", tip.X, tip.Y)
	}
}

func TestHoverStaleLeaveIgnored(t *testing.T) {
	// Rapid movement across adjacent arcs: enter B arrives before A's
	// leave resolves. The stale leave must not drop B's tooltip.
	tr := NewHoverTracker()
	tr.Enter(recA, 10, 10)
	tr.Enter(recB, 20, 20)
	tr.Leave("A")

	rec, ok := tr.Active()
	if !ok {
		t.Fatal("Stale leave dropped the active hover")
	}
	if rec.Label != "B" {
		t.Errorf("Active record %q, want B", rec.Label)
	}

	tr.Leave("B")
	if tr.State() != StateIdle {
		t.Error("Matching leave did not return to idle")
	}
}

func TestHoverExclusivity(t *testing.T) {
	// At most one record is active at any instant.
	tr := NewHoverTracker()
	seq := []chart.Record{recA, recB, recC, recA}
	for _, r := range seq {
		tr.Enter(r, 0, 0)
		active, ok := tr.Active()
		if !ok || active.Label != r.Label {
			t.Errorf("After Enter(%s): active = %v, ok = %v", r.Label, active.Label, ok)
		}
	}
}

func TestHoverReset(t *testing.T) {
	tr := NewHoverTracker()
	tr.Enter(recA, 5, 5)
	tr.Reset()
	if tr.State() != StateIdle {
		t.Error("Reset did not return to idle")
	}
}
