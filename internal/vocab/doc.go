// Package vocab provides the translation vocabulary between tabular CSV
// headers and JSON document field names, plus the default fields injected
// into every newly created record.
//
// The two directions are deliberately independent tables, not mutual
// inverses: the egress table carries enrichment-only fields (company
// firmographics, contact-match metadata, status fields) that have no
// ingest counterpart. Deriving one table from the other would silently
// lose that asymmetry, so both are declared explicitly and checked for
// consistency at load time.
//
// # Key capabilities
//
//   - Ordered, declaration-first translation tables with pass-through
//     lookup (unknown names translate to themselves)
//   - Ordered default-field set (placeholders for the enrichment pipeline)
//   - Structural validation surfaced as a configuration error
//   - Optional YAML vocabulary files overriding the built-in tables
//
// # YAML Schema Overview
//
// A vocabulary file has the following structure; any omitted section falls
// back to the built-in table:
//
//	version: "1"
//	ingest:
//	  - from: Supplier Company
//	    to: companyName
//	egress:
//	  - from: companyName
//	    to: Supplier Company
//	  - from: enrichmentStatus
//	    to: Enrichment Status
//	defaults:
//	  - field: enrichmentStatus
//	    value: Success
//	  - field: errorMessage
//
// Sequence order is declaration order: egress order drives output column
// placement, defaults order drives where injected fields land in a record.
//
// # Default injection semantics
//
// Defaults are applied after ingest translation and unconditionally
// overwrite a same-named key already present in the record. A source
// column literally named "enrichmentStatus" therefore always ends up as
// "Success" in the document. Downstream passes rely on the placeholders
// being present and clean, so this is the contract, not an accident.
package vocab
