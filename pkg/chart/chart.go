// Package chart provides the core dataset types for radial bar charts.
package chart

import (
	"fmt"
	"sort"
)

// Record is one categorical data point: a labelled magnitude with an
// optional free-text description shown in tooltips.
type Record struct {
	Label       string  `json:"label"`
	Value       float64 `json:"value"`
	Description string  `json:"description,omitempty"`
}

// Dataset is an ordered collection of records. Input order is preserved;
// renderers work on an alphabetically sorted copy so angular position is
// independent of insertion order.
type Dataset struct {
	Name    string   `json:"name,omitempty"`
	Records []Record `json:"records"`
}

// New creates an empty dataset with the given name.
func New(name string) *Dataset {
	return &Dataset{
		Name:    name,
		Records: make([]Record, 0),
	}
}

// Add appends a record to the dataset.
func (d *Dataset) Add(label string, value float64, description string) {
	d.Records = append(d.Records, Record{
		Label:       label,
		Value:       value,
		Description: description,
	})
}

// Validate checks if the dataset is well-formed: labels must be unique
// and values non-negative.
func (d *Dataset) Validate() error {
	seen := make(map[string]bool, len(d.Records))
	for i, r := range d.Records {
		if r.Label == "" {
			return fmt.Errorf("record %d: empty label", i)
		}
		if seen[r.Label] {
			return fmt.Errorf("record %d: duplicate label %q", i, r.Label)
		}
		seen[r.Label] = true
		if r.Value < 0 {
			return fmt.Errorf("record %d (%q): negative value %v", i, r.Label, r.Value)
		}
	}
	return nil
}

// Sorted returns a copy of the records sorted alphabetically by label.
// The dataset itself is never mutated.
func (d *Dataset) Sorted() []Record {
	out := make([]Record, len(d.Records))
	copy(out, d.Records)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Label < out[j].Label
	})
	return out
}

// Labels returns the sorted label set.
func (d *Dataset) Labels() []string {
	recs := d.Sorted()
	labels := make([]string, len(recs))
	for i, r := range recs {
		labels[i] = r.Label
	}
	return labels
}

// MaxValue returns the largest value in the dataset, or 0 if empty.
func (d *Dataset) MaxValue() float64 {
	max := 0.0
	for _, r := range d.Records {
		if r.Value > max {
			max = r.Value
		}
	}
	return max
}

// Get looks up a record by label.
func (d *Dataset) Get(label string) (Record, bool) {
	for _, r := range d.Records {
		if r.Label == label {
			return r, true
		}
	}
	return Record{}, false
}

// Default returns the built-in feature-importance dataset used by the
// Interactive and Print constructors when the caller supplies no data.
func Default() *Dataset {
	d := New("feature importance")
	d.Add("contrast", 28, "Luminance difference between foreground and background regions")
	d.Add("density", 17, "Fraction of occupied cells in the sampled grid")
	d.Add("edges", 35, "Edge pixels detected per unit area after Sobel filtering")
	d.Add("entropy", 22, "Shannon entropy of the grayscale histogram")
	d.Add("saturation", 9, "Mean chroma across the sampled palette")
	d.Add("symmetry", 14, "Mirror-axis agreement score over the bounding box")
	return d
}
