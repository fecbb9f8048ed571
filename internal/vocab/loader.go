package vocab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File represents the root of a YAML vocabulary file. This is the
// human-reviewed override for the built-in vocabulary; any omitted
// section keeps its built-in table.
type File struct {
	// Version of the vocabulary schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Ingest translates tabular headers to document fields.
	Ingest []Entry `yaml:"ingest,omitempty"`

	// Egress translates document fields back to tabular headers.
	Egress []Entry `yaml:"egress,omitempty"`

	// Defaults are the fields injected into every record on ingest.
	Defaults []Default `yaml:"defaults,omitempty"`
}

// LoadFile loads, parses, and validates a YAML vocabulary file.
// A validation failure is a configuration error; no conversion should
// run with the returned vocabulary in that case.
func LoadFile(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	v, err := Parse(data)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("vocabulary file %s: %w", path, err)
	}

	return v, nil
}

// Parse parses YAML data into a validated Vocabulary. YAML sequence order
// becomes declaration order, so an egress override also controls output
// column placement.
func Parse(data []byte) (Vocabulary, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("failed to parse vocabulary YAML: %w", err)
	}

	applyDefaults(&f)

	v := f.Vocabulary()
	if diags := v.Validate(); diags.HasErrors() {
		return Vocabulary{}, fmt.Errorf("invalid vocabulary: %w", diags.Error())
	}

	return v, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// Vocabulary builds the effective vocabulary, falling back to the
// built-in table for every omitted section.
func (f *File) Vocabulary() Vocabulary {
	v := BuiltIn()

	if f.Ingest != nil {
		v.Ingest = NewTable(f.Ingest)
	}

	if f.Egress != nil {
		v.Egress = NewTable(f.Egress)
	}

	if f.Defaults != nil {
		v.Defaults = NewDefaultSet(f.Defaults)
	}

	return v
}
