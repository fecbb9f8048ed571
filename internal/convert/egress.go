package convert

import (
	"bytes"
	"encoding/csv"
	"os"

	"github.com/AustinMBouchard/dataEnrichmentTool/internal/common"
	"github.com/AustinMBouchard/dataEnrichmentTool/internal/record"
)

// DocumentToTabular converts a JSON document into a CSV file next to it
// (base name plus the enhanced-suffix marker) and returns the CSV path.
//
// Column order is deterministic regardless of which record first
// introduced a field: the union of observed field names is partitioned
// into names known to the egress table, placed in the table's own
// declaration order, followed by pass-through names in order of first
// appearance. Records missing a column yield empty cells.
func (c *Converter) DocumentToTabular(documentPath string) (string, error) {
	data, err := os.ReadFile(documentPath)
	if err != nil {
		return "", readErr(documentPath, err)
	}

	doc, err := record.DecodeDocument(data)
	if err != nil {
		return "", parseErr(documentPath, err)
	}

	headers := c.columnOrder(doc)

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write(headers); err != nil {
		return "", writeErr(documentPath, err)
	}

	for _, rec := range doc {
		// Translate keys first and let a later duplicate win, so a
		// pass-through field that collides with a translated header
		// lands in that header's column instead of erroring.
		rendered := make(map[string]string, rec.Len())

		for _, k := range rec.Keys() {
			v, _ := rec.Get(k)
			rendered[c.vocab.Egress.Translate(k)] = v
		}

		row := make([]string, len(headers))
		for i, h := range headers {
			row[i] = rendered[h]
		}

		if err := w.Write(row); err != nil {
			return "", writeErr(documentPath, err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return "", writeErr(documentPath, err)
	}

	tabularPath := EnhancedPath(documentPath)
	if err := os.WriteFile(tabularPath, buf.Bytes(), filePerm); err != nil {
		return "", writeErr(tabularPath, err)
	}

	return tabularPath, nil
}

// columnOrder computes the translated output headers for a document.
func (c *Converter) columnOrder(doc record.Document) []string {
	var union []string

	seen := map[string]struct{}{}

	for _, rec := range doc {
		for _, k := range rec.Keys() {
			if _, ok := seen[k]; ok {
				continue
			}

			seen[k] = struct{}{}
			union = append(union, k)
		}
	}

	ordered := make([]string, 0, len(union))

	for _, e := range c.vocab.Egress.Entries() {
		if _, ok := seen[e.From]; ok {
			ordered = append(ordered, e.From)
		}
	}

	for _, k := range union {
		if !c.vocab.Egress.Has(k) {
			ordered = append(ordered, k)
		}
	}

	if common.IsEmpty(ordered) {
		return nil
	}

	headers := make([]string, len(ordered))
	for i, k := range ordered {
		headers[i] = c.vocab.Egress.Translate(k)
	}

	return headers
}
