// Package types provides shared type definitions for the SecureByte analyzer.
//
// This package defines the domain types that flow through the analysis
// pipeline: chunks, per-chunk outcomes, and the final report.
//
// # Core Types
//
// Chunk represents one independently analyzable unit of source text,
// tagged with its source-order index:
//
//	chunk := types.Chunk{
//	    Index: 0,
//	    Text:  "import \"os\"\n\nfunc ReadConfig() error { ... }",
//	    Kind:  types.ChunkFunction,
//	}
//
// Outcome records the terminal state of one chunk's analysis. A failed
// analysis is still an outcome; one chunk's failure never affects its
// siblings:
//
//	outcome := types.Outcome{
//	    ChunkIndex: 0,
//	    Status:     types.StatusOk,
//	    Text:       "No issues found in this chunk.",
//	}
//
// Report is the ordered collection of outcomes for a run. Outcomes are
// sorted by chunk index and are dense over [0, ChunkCount):
//
//	for _, out := range report.Outcomes {
//	    fmt.Printf("chunk %d: %s\n", out.ChunkIndex, out.Text)
//	}
//
// # Validation
//
// All domain types implement validation methods to ensure data integrity:
//
//	if err := chunk.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := report.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package types
