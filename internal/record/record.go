// Package record defines the ordered field-value record and the JSON
// document codec shared by the two conversion directions and by the
// enrichment passes in between.
package record

// Record is an insertion-ordered mapping from document field name to
// string value. Absent fields are absent keys, never nulls. Overwriting
// an existing field keeps its original position, so default injection
// never reshuffles a record.
type Record struct {
	keys []string
	vals map[string]string
}

// Set inserts or overwrites a field. New fields append to the key order;
// existing fields keep their position.
func (r *Record) Set(key, value string) {
	if r.vals == nil {
		r.vals = make(map[string]string)
	}

	if _, ok := r.vals[key]; !ok {
		r.keys = append(r.keys, key)
	}

	r.vals[key] = value
}

// Get returns the value for key and whether the field is present.
func (r *Record) Get(key string) (string, bool) {
	v, ok := r.vals[key]
	return v, ok
}

// Has returns true if the field is present.
func (r *Record) Has(key string) bool {
	_, ok := r.vals[key]
	return ok
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.keys)
}

// Document is an ordered sequence of records; order is the original row
// order and is append-only during construction.
type Document []Record
