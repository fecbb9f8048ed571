package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("Supplier Company\nAcme\n,\nBeta\n"), 0o644))

	var stdout, stderr bytes.Buffer

	code := run([]string{"count", path}, &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "The CSV file has 2 rows.\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunIngestThenEgress(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("Supplier Company,Supplier Email\nAcme,a@x.com\n"), 0o644))

	var stdout, stderr bytes.Buffer

	code := run([]string{"ingest", path}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	docPath := filepath.Join(dir, "in.json")
	require.FileExists(t, docPath)

	stdout.Reset()

	code = run([]string{"egress", docPath}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	require.FileExists(t, filepath.Join(dir, "in - Enhanced.csv"))
	assert.Contains(t, stdout.String(), "Conversion complete.")
}

func TestRunUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, exitUsage, run(nil, &stdout, &stderr))
	assert.Equal(t, exitUsage, run([]string{"transmogrify", "x.csv"}, &stdout, &stderr))
	assert.Equal(t, exitUsage, run([]string{"-vocab", "missing.yaml", "count", "x.csv"}, &stdout, &stderr))
}

func TestRunConversionError(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"count", filepath.Join(t.TempDir(), "missing.csv")}, &stdout, &stderr)
	assert.Equal(t, exitError, code)
	assert.NotEmpty(t, stderr.String())
}
