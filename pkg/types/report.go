package types

// Report is the final ordered result of a pipeline run. Outcomes are
// sorted ascending by chunk index; indices are unique and dense over
// [0, ChunkCount). Built once by the aggregator, never mutated.
type Report struct {
	Outcomes   []Outcome
	ChunkCount int
}

// FailedCount returns the number of chunks whose analysis failed
func (r *Report) FailedCount() int {
	n := 0
	for i := range r.Outcomes {
		if !r.Outcomes[i].Ok() {
			n++
		}
	}
	return n
}

// Validate checks density and ordering of the report's outcomes
func (r *Report) Validate() error {
	if len(r.Outcomes) != r.ChunkCount {
		return ErrReportIncomplete
	}
	for i := range r.Outcomes {
		if r.Outcomes[i].ChunkIndex != i {
			return ErrReportIncomplete
		}
	}
	return nil
}
