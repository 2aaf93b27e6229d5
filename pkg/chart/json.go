package chart

import (
	"encoding/json"
	"fmt"
	"os"
)

// jsonDataset is the JSON representation of a dataset.
type jsonDataset struct {
	Name    string       `json:"name,omitempty"`
	Records []jsonRecord `json:"records"`
}

type jsonRecord struct {
	Label       string  `json:"label"`
	Value       float64 `json:"value"`
	Description string  `json:"description,omitempty"`
}

// ParseJSON parses a dataset from JSON and validates it.
func ParseJSON(data []byte) (*Dataset, error) {
	var j jsonDataset
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, err
	}

	d := New(j.Name)
	for _, r := range j.Records {
		d.Add(r.Label, r.Value, r.Description)
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// ToJSON serializes a dataset to JSON.
func ToJSON(d *Dataset, pretty bool) ([]byte, error) {
	j := jsonDataset{
		Name:    d.Name,
		Records: make([]jsonRecord, len(d.Records)),
	}
	for i, r := range d.Records {
		j.Records[i] = jsonRecord{
			Label:       r.Label,
			Value:       r.Value,
			Description: r.Description,
		}
	}

	if pretty {
		return json.MarshalIndent(j, "", "  ")
	}
	return json.Marshal(j)
}

// LoadFile reads and parses a dataset from a JSON file.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return d, nil
}

// WriteFile serializes a dataset to a JSON file.
func WriteFile(path string, d *Dataset, pretty bool) error {
	data, err := ToJSON(d, pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
