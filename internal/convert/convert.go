package convert

import (
	"bytes"
	"strings"

	"github.com/AustinMBouchard/dataEnrichmentTool/internal/vocab"
)

// File permission for written outputs.
const filePerm = 0o644

// utf8BOM is the UTF-8 byte-order mark: stripped from tabular input,
// emitted on tabular output so spreadsheet tools detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Converter transcodes between the tabular and document representations
// under a fixed vocabulary. Stateless apart from the vocabulary; safe to
// reuse across conversions.
type Converter struct {
	vocab vocab.Vocabulary
}

// New returns a Converter for the given vocabulary. The vocabulary is
// expected to be validated already (vocab.BuiltIn is, and vocab.LoadFile
// refuses to return one that is not).
func New(v vocab.Vocabulary) *Converter {
	return &Converter{vocab: v}
}

// isBlankRow reports whether every raw cell trims to empty. Evaluated on
// raw cells before any translation or default injection; the counter and
// the ingest converter share it so their views of the input agree.
func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

// stripBOM removes a leading UTF-8 byte-order mark, if present.
func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}
