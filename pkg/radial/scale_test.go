package radial

import (
	"math"
	"testing"
)

func TestBandScalePartition(t *testing.T) {
	// Band widths plus padding must partition the full circle exactly,
	// for any dataset length.
	for _, n := range []int{1, 2, 3, 5, 8, 13} {
		labels := make([]string, n)
		for i := range labels {
			labels[i] = string(rune('a' + i))
		}
		s := NewBandScale(labels, DefaultPadFraction)

		total := 0.0
		prevEnd := -1.0
		for _, l := range labels {
			start, end, ok := s.Band(l)
			if !ok {
				t.Fatalf("n=%d: label %q not in domain", n, l)
			}
			if start >= end {
				t.Errorf("n=%d: band %q degenerate [%.4f, %.4f)", n, l, start, end)
			}
			if start <= prevEnd {
				t.Errorf("n=%d: band %q overlaps previous (start %.4f <= prev end %.4f)", n, l, start, prevEnd)
			}
			prevEnd = end
			total += (end - start) + s.Step()*DefaultPadFraction
		}

		if math.Abs(total-2*math.Pi) > 1e-9 {
			t.Errorf("n=%d: bands+padding sum to %.6f, want 2π=%.6f", n, total, 2*math.Pi)
		}
	}
}

func TestBandScalePaddingSplitEvenly(t *testing.T) {
	s := NewBandScale([]string{"a", "b"}, 0.2)
	step := s.Step()

	start, end, _ := s.Band("a")
	lead := start - 0
	trail := step - end
	if math.Abs(lead-trail) > 1e-9 {
		t.Errorf("Padding not split evenly: leading %.4f, trailing %.4f", lead, trail)
	}
	if math.Abs(lead-step*0.1) > 1e-9 {
		t.Errorf("Leading pad = %.4f, want %.4f (half of 0.2 band fraction)", lead, step*0.1)
	}
}

func TestBandScaleEmptyDomain(t *testing.T) {
	s := NewBandScale(nil, 0.2)
	if s.Len() != 0 {
		t.Errorf("Empty scale Len = %d, want 0", s.Len())
	}
	if s.Step() != 0 {
		t.Errorf("Empty scale Step = %v, want 0", s.Step())
	}
	if _, _, ok := s.Band("anything"); ok {
		t.Error("Empty scale resolved a band")
	}
}

func TestBandScaleUnknownLabel(t *testing.T) {
	s := NewBandScale([]string{"a", "b"}, 0.2)
	if _, _, ok := s.Band("z"); ok {
		t.Error("Band resolved a label outside the domain")
	}
}

func TestRadialScaleEndpoints(t *testing.T) {
	s := NewRadialScale(30, 50, 150)

	if got := s.Radius(0); got != 50 {
		t.Errorf("Radius(0) = %.2f, want inner radius 50", got)
	}
	if got := s.Radius(30); math.Abs(got-150) > 1e-9 {
		t.Errorf("Radius(max) = %.2f, want outer radius 150", got)
	}
}

func TestRadialScaleMonotonic(t *testing.T) {
	s := NewRadialScale(100, 40, 200)
	prev := -1.0
	for v := 0.0; v <= 100; v += 2.5 {
		r := s.Radius(v)
		if r < prev {
			t.Errorf("Radius(%.1f) = %.4f decreased below %.4f", v, r, prev)
		}
		prev = r
	}
}

func TestRadialScaleZeroMax(t *testing.T) {
	// All-zero dataset: everything collapses to the inner radius.
	s := NewRadialScale(0, 50, 150)
	if got := s.Radius(0); got != 50 {
		t.Errorf("Radius(0) with zero max = %.2f, want 50", got)
	}
	if got := s.Radius(10); got != 50 {
		t.Errorf("Radius(10) with zero max = %.2f, want 50", got)
	}
}

func TestRadialScaleClampsAboveMax(t *testing.T) {
	s := NewRadialScale(10, 50, 150)
	if got := s.Radius(25); math.Abs(got-150) > 1e-9 {
		t.Errorf("Radius above max = %.2f, want clamp to 150", got)
	}
}
