package dispatch

import (
	"errors"
	"fmt"
	"sort"

	"github.com/securebyte/securebyte/pkg/types"
)

// ErrReportIntegrity reports a missing or duplicate chunk index in the
// gathered outcomes. It signals a dispatcher bug, not an analysis
// failure, and is fatal to the run.
var ErrReportIntegrity = errors.New("report integrity violation")

// Build restores chunk-index order over the unordered outcome set and
// wraps it into a Report. Completion order carries no meaning; the sort
// here is the only ordering contract in the pipeline.
//
// A missing or duplicate index returns an error wrapping
// ErrReportIntegrity rather than filling a placeholder, so callers can
// tell "the file has issues" apart from "the tool is broken".
func Build(outcomes []types.Outcome, chunkCount int) (*types.Report, error) {
	if len(outcomes) != chunkCount {
		return nil, fmt.Errorf("%w: got %d outcomes for %d chunks", ErrReportIntegrity, len(outcomes), chunkCount)
	}

	seen := make([]bool, chunkCount)
	for i := range outcomes {
		idx := outcomes[i].ChunkIndex
		if idx < 0 || idx >= chunkCount {
			return nil, fmt.Errorf("%w: chunk index %d outside [0, %d)", ErrReportIntegrity, idx, chunkCount)
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: duplicate chunk index %d", ErrReportIntegrity, idx)
		}
		seen[idx] = true
	}

	ordered := make([]types.Outcome, len(outcomes))
	copy(ordered, outcomes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ChunkIndex < ordered[j].ChunkIndex
	})

	return &types.Report{
		Outcomes:   ordered,
		ChunkCount: chunkCount,
	}, nil
}
