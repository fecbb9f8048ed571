package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AustinMBouchard/dataEnrichmentTool/internal/record"
	"github.com/AustinMBouchard/dataEnrichmentTool/internal/vocab"
)

func TestCountRecords(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"header only", "Supplier Company,Supplier Email\n", 0},
		{"empty file", "", 0},
		{"plain rows", "Supplier Company\nAcme\nBeta\n", 2},
		{"blank rows skipped", "Supplier Company,Supplier Email\nAcme,a@x.com\n,\n \t ,  \nBeta,b@x.com\n", 2},
		{"bom stripped", "\xEF\xBB\xBFSupplier Company\nAcme\n", 1},
		{"single cell row counts", "Supplier Company,Supplier Email\n,b@x.com\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeInput(t, "count.csv", tt.content)

			got, err := CountRecords(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountMatchesConversion(t *testing.T) {
	path := writeInput(t, "agree.csv",
		"Supplier Company,Supplier Email\n"+
			"Acme,a@x.com\n"+
			"  ,\n"+
			"\"\",\" \"\n"+
			"Beta,\n")

	count, err := CountRecords(path)
	require.NoError(t, err)

	docPath, err := New(vocab.BuiltIn()).TabularToDocument(path)
	require.NoError(t, err)

	doc, err := record.DecodeDocument(mustRead(t, docPath))
	require.NoError(t, err)

	assert.Equal(t, count, len(doc), "pre-flight count must agree with conversion")
}
