package convert

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/AustinMBouchard/dataEnrichmentTool/internal/record"
)

// TabularToDocument converts a CSV file into a JSON document next to it
// (extension swapped) and returns the document path.
//
// The header row determines field names; fully-blank rows are dropped
// silently; surviving rows have their column names translated through
// the ingest table (unknown columns pass through), then receive the full
// default-field set, defaults overwriting same-named keys. Short rows
// yield absent fields; cells beyond the header are ignored.
func (c *Converter) TabularToDocument(tabularPath string) (string, error) {
	rows, err := readTabular(tabularPath)
	if err != nil {
		return "", err
	}

	var doc record.Document

	var header []string
	if len(rows) > 0 {
		header = rows[0]
		rows = rows[1:]
	}

	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}

		var rec record.Record

		for i, name := range header {
			if i >= len(row) {
				break
			}

			rec.Set(c.vocab.Ingest.Translate(name), row[i])
		}

		for _, d := range c.vocab.Defaults.Entries() {
			rec.Set(d.Field, d.Value)
		}

		doc = append(doc, rec)
	}

	out, err := record.EncodeDocument(doc)
	if err != nil {
		return "", writeErr(tabularPath, err)
	}

	documentPath := DocumentPath(tabularPath)
	if err := os.WriteFile(documentPath, out, filePerm); err != nil {
		return "", writeErr(documentPath, err)
	}

	return documentPath, nil
}

// readTabular reads a whole CSV file: BOM stripped, quoting and embedded
// newlines per RFC 4180, ragged rows accepted.
func readTabular(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, readErr(path, err)
	}

	rd := csv.NewReader(bytes.NewReader(stripBOM(data)))
	rd.FieldsPerRecord = -1

	var rows [][]string

	for {
		row, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, readErr(path, err)
		}

		rows = append(rows, row)
	}

	return rows, nil
}
