// Package main provides the CLI entrypoint for enrichconvert.
//
// enrichconvert is the file-conversion half of the data enrichment
// pipeline:
//   - Converts a supplier CSV into the JSON document the enrichment
//     passes operate on (ingest)
//   - Converts an enriched JSON document back into a spreadsheet-ready
//     CSV (egress)
//   - Counts the non-blank data rows of a CSV as a pre-flight check
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/AustinMBouchard/dataEnrichmentTool/internal/convert"
	"github.com/AustinMBouchard/dataEnrichmentTool/internal/vocab"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const usageText = `Usage: enrichconvert [-vocab file.yaml] <command> <file>

Commands:
  count   <file.csv>   count the non-blank data rows
  ingest  <file.csv>   convert a CSV into a JSON document (runs count first)
  egress  <file.json>  convert a JSON document into an enhanced CSV

Options:
  -vocab file.yaml     override the built-in translation vocabulary
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the testable entrypoint: it canonicalizes arguments, loads the
// vocabulary, and dispatches to the requested conversion.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("enrichconvert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usageText) }

	vocabPath := fs.String("vocab", "", "path to a YAML vocabulary override")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	rest := fs.Args()
	if len(rest) != 2 {
		fs.Usage()
		return exitUsage
	}

	command, path := rest[0], rest[1]

	v := vocab.BuiltIn()

	if *vocabPath != "" {
		loaded, err := vocab.LoadFile(*vocabPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}

		v = loaded
	}

	conv := convert.New(v)

	switch command {
	case "count":
		n, err := convert.CountRecords(path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}

		fmt.Fprintf(stdout, "The CSV file has %d rows.\n", n)

	case "ingest":
		n, err := convert.CountRecords(path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}

		fmt.Fprintf(stdout, "The CSV file has %d rows.\nConverting %s to JSON\n", n, path)

		docPath, err := conv.TabularToDocument(path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}

		fmt.Fprintf(stdout, "Conversion complete. Output file: %s\n", docPath)

	case "egress":
		outPath, err := conv.DocumentToTabular(path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}

		fmt.Fprintf(stdout, "Conversion complete. Output file: %s\n", outPath)

	default:
		fmt.Fprintf(stderr, "unknown command %q\n", command)
		fs.Usage()

		return exitUsage
	}

	return exitOK
}
