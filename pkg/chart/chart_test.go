package chart

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Dataset
		wantErr bool
	}{
		{
			name: "valid dataset",
			build: func() *Dataset {
				d := New("ok")
				d.Add("a", 1, "")
				d.Add("b", 2, "")
				return d
			},
		},
		{
			name:  "empty dataset is valid",
			build: func() *Dataset { return New("") },
		},
		{
			name: "duplicate labels",
			build: func() *Dataset {
				d := New("dup")
				d.Add("a", 1, "")
				d.Add("a", 2, "")
				return d
			},
			wantErr: true,
		},
		{
			name: "negative value",
			build: func() *Dataset {
				d := New("neg")
				d.Add("a", -1, "")
				return d
			},
			wantErr: true,
		},
		{
			name: "empty label",
			build: func() *Dataset {
				d := New("blank")
				d.Add("", 1, "")
				return d
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build().Validate()
			if tc.wantErr && err == nil {
				t.Errorf("Expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestSortedDoesNotMutate(t *testing.T) {
	d := New("order")
	d.Add("c", 3, "")
	d.Add("a", 1, "")
	d.Add("b", 2, "")

	sorted := d.Sorted()
	if sorted[0].Label != "a" || sorted[1].Label != "b" || sorted[2].Label != "c" {
		t.Errorf("Expected alphabetical order, got %v", sorted)
	}

	// Input order must survive
	if d.Records[0].Label != "c" {
		t.Errorf("Sorted mutated the dataset: first record is %q", d.Records[0].Label)
	}
}

func TestSortedIsDeterministic(t *testing.T) {
	a := New("x")
	a.Add("beta", 2, "")
	a.Add("alpha", 1, "")

	b := New("x")
	b.Add("alpha", 1, "")
	b.Add("beta", 2, "")

	sa := a.Sorted()
	sb := b.Sorted()
	for i := range sa {
		if sa[i] != sb[i] {
			t.Errorf("Sorted order depends on insertion order: %v vs %v", sa, sb)
		}
	}
}

func TestMaxValue(t *testing.T) {
	d := New("max")
	if d.MaxValue() != 0 {
		t.Errorf("Empty dataset MaxValue = %v, want 0", d.MaxValue())
	}
	d.Add("a", 10, "")
	d.Add("b", 30, "")
	d.Add("c", 20, "")
	if d.MaxValue() != 30 {
		t.Errorf("MaxValue = %v, want 30", d.MaxValue())
	}
}

func TestDefaultDatasetIsValid(t *testing.T) {
	d := Default()
	if err := d.Validate(); err != nil {
		t.Fatalf("Default dataset invalid: %v", err)
	}
	if len(d.Records) == 0 {
		t.Fatal("Default dataset is empty")
	}
	for _, r := range d.Records {
		if r.Description == "" {
			t.Errorf("Record %q has no description for the tooltip", r.Label)
		}
	}
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{
		"name": "sample",
		"records": [
			{"label": "a", "value": 10, "description": "first"},
			{"label": "b", "value": 0}
		]
	}`)

	d, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if d.Name != "sample" {
		t.Errorf("Name = %q, want %q", d.Name, "sample")
	}
	if len(d.Records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(d.Records))
	}
	if d.Records[0].Description != "first" {
		t.Errorf("Description = %q, want %q", d.Records[0].Description, "first")
	}

	// Round trip
	out, err := ToJSON(d, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	d2, err := ParseJSON(out)
	if err != nil {
		t.Fatalf("Re-parse failed: %v", err)
	}
	if len(d2.Records) != len(d.Records) {
		t.Errorf("Round trip lost records: %d vs %d", len(d2.Records), len(d.Records))
	}
}

func TestParseJSONRejectsInvalid(t *testing.T) {
	data := []byte(`{"records": [{"label": "a", "value": -5}]}`)
	if _, err := ParseJSON(data); err == nil {
		t.Error("Expected validation error for negative value")
	}
}
