// Package dispatch coordinates the concurrent analysis of chunks.
//
// The Dispatcher implements fan-out/gather: one task per chunk, all
// submitted against a single shared analysis client, with a join that
// waits for every task to reach a terminal state. Failures are isolated
// at chunk granularity; a chunk whose analysis fails produces a Failed
// outcome and has zero effect on its siblings. There is no early exit on
// first error and no cancellation of in-flight work.
//
//	d := dispatch.New(client, dispatch.Config{}, logger)
//	outcomes := d.Analyze(ctx, chunks)
//
//	report, err := dispatch.Build(outcomes, len(chunks))
//	if err != nil {
//	    // missing or duplicate index: a tool bug, not an analysis failure
//	    log.Fatal(err)
//	}
//
// Task completion order is undefined. Build restores chunk-index order
// and validates that the outcome set is dense over [0, chunkCount); a
// gap or duplicate is ErrReportIntegrity and aborts the run.
//
// By default the dispatcher launches every task immediately with no
// upper bound on concurrency. Config.Workers caps in-flight analyses for
// very large files while preserving the wait-for-all contract.
package dispatch
