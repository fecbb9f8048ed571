package vocab

import "github.com/AustinMBouchard/dataEnrichmentTool/internal/diagnostic"

// Table names used in diagnostics.
const (
	TableIngest   = "ingest"
	TableEgress   = "egress"
	TableDefaults = "defaults"
)

// Entry is one translation pair of a table.
type Entry struct {
	// From is the name being translated (a tabular header on ingest,
	// a document field on egress).
	From string `yaml:"from"`

	// To is the translated name.
	To string `yaml:"to"`
}

// Table is an ordered translation table. Declaration order is significant:
// the egress table's order determines output column placement for known
// fields. A Table is immutable after construction.
type Table struct {
	entries []Entry
	index   map[string]string
}

// NewTable builds a Table from entries, keeping declaration order.
// Duplicate From keys keep the last value, mirroring plain map literals;
// duplicates are reported by Vocabulary.Validate.
func NewTable(entries []Entry) Table {
	t := Table{
		entries: append([]Entry(nil), entries...),
		index:   make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		t.index[e.From] = e.To
	}

	return t
}

// Translate returns the translation of name, or name itself when the table
// has no entry for it. Total by construction: unknown names pass through.
func (t Table) Translate(name string) string {
	if to, ok := t.index[name]; ok {
		return to
	}

	return name
}

// Has returns true if name is a key of the table.
func (t Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Entries returns the table entries in declaration order.
func (t Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t.entries)
}

// Default is one default-field entry.
type Default struct {
	// Field is the document field name.
	Field string `yaml:"field"`

	// Value is the injected default. Empty for placeholders.
	Value string `yaml:"value,omitempty"`
}

// DefaultSet is the ordered set of default fields injected into every
// record during tabular-to-document conversion.
type DefaultSet struct {
	entries []Default
}

// NewDefaultSet builds a DefaultSet, keeping declaration order.
func NewDefaultSet(entries []Default) DefaultSet {
	return DefaultSet{entries: append([]Default(nil), entries...)}
}

// Entries returns the defaults in declaration order.
func (s DefaultSet) Entries() []Default {
	return append([]Default(nil), s.entries...)
}

// Len returns the number of defaults.
func (s DefaultSet) Len() int {
	return len(s.entries)
}

// Vocabulary aggregates the two translation tables and the default-field
// set. It is constructed once (built-in or from a YAML file), validated,
// and passed explicitly into the converters; there is no mutable global
// vocabulary state.
type Vocabulary struct {
	Ingest   Table
	Egress   Table
	Defaults DefaultSet
}

// Validate performs the structural checks a vocabulary must pass before
// any conversion runs:
//
//   - no empty or duplicate keys within a table
//   - every ingest target must be an egress key, or a document produced
//     from a CSV could not be converted back deterministically
//   - every default field must be an egress key, for the same reason
//
// The checks are structural only; field values are never validated.
func (v Vocabulary) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	validateTable(res, TableIngest, v.Ingest)
	validateTable(res, TableEgress, v.Egress)

	seenDefaults := map[string]struct{}{}

	for _, d := range v.Defaults.Entries() {
		if d.Field == "" {
			res.AddError("empty_default_field", "default entry has an empty field name", TableDefaults, "")
			continue
		}

		if _, ok := seenDefaults[d.Field]; ok {
			res.AddError("duplicate_default_field", "duplicate default field", TableDefaults, d.Field)
			continue
		}

		seenDefaults[d.Field] = struct{}{}

		if !v.Egress.Has(d.Field) {
			res.AddError("default_not_in_egress", "default field has no egress translation", TableDefaults, d.Field)
		}
	}

	for _, e := range v.Ingest.Entries() {
		if e.To != "" && !v.Egress.Has(e.To) {
			res.AddError("ingest_target_not_in_egress", "ingest target has no egress translation", TableIngest, e.From)
		}
	}

	return res
}

func validateTable(res *diagnostic.Diagnostics, name string, t Table) {
	seen := map[string]struct{}{}

	for _, e := range t.Entries() {
		if e.From == "" || e.To == "" {
			res.AddError("empty_entry", "table entry has an empty side", name, e.From)
			continue
		}

		if _, ok := seen[e.From]; ok {
			res.AddError("duplicate_key", "duplicate table key", name, e.From)
			continue
		}

		seen[e.From] = struct{}{}
	}
}
