package pipeline

import (
	"fmt"
	"io"

	"github.com/securebyte/securebyte/pkg/types"
)

// Render writes the report as labeled per-chunk sections in index order.
// Chunks are numbered from 1 for display. Failed chunks appear alongside
// successful ones with their diagnostic inline.
func Render(w io.Writer, report *types.Report) error {
	if _, err := fmt.Fprintln(w, "--- SecureByte Analysis Report ---"); err != nil {
		return err
	}

	for _, out := range report.Outcomes {
		if _, err := fmt.Fprintf(w, "\n--- Analysis for Chunk %d ---\n", out.ChunkIndex+1); err != nil {
			return err
		}
		if out.Ok() {
			if _, err := fmt.Fprintln(w, out.Text); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "[FAILED] %s\n", out.Text); err != nil {
			return err
		}
	}

	return nil
}
