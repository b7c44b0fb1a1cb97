// Package chunker divides source code into independently analyzable chunks.
//
// Chunks are created at natural code boundaries (top-level functions and
// types) so each one carries enough context to be submitted to the analysis
// service on its own. When the source does not parse, the chunker falls
// back to fixed-size line windows over the whole original text.
//
// # Basic Usage
//
//	c := chunker.New()
//	chunks := c.Chunk(source)
//
//	for _, chunk := range chunks {
//	    fmt.Printf("chunk %d (%s): ~%d tokens\n",
//	        chunk.Index, chunk.Kind, chunk.TokenEstimate())
//	}
//
// # Chunking Strategy
//
// The structural pass walks top-level declarations in source order:
//   - Functions and methods: one chunk per declaration, full span
//   - Types: full declaration (struct, interface, alias)
//   - Const/var declarations: grouped into a leftover chunk, flushed at
//     the next declaration boundary or at end of file
//   - Package clause and imports: hoisted onto the next emitted chunk so
//     that chunk is self-contained; never chunks of their own
//
// Chunk indices are assigned in emission order, which equals source order.
//
// # Fallback
//
// Malformed source recovers via line-window chunking (200 lines per window
// by default, final window may be shorter). The fallback runs on the whole
// original text, never on a partial structural result, and is idempotent.
package chunker
