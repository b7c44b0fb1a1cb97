package types

// OutcomeStatus reports whether a chunk's analysis succeeded
type OutcomeStatus string

const (
	StatusOk     OutcomeStatus = "ok"
	StatusFailed OutcomeStatus = "failed"
)

// Outcome is the terminal result of analyzing one chunk. Exactly one
// outcome is produced per chunk by the dispatcher; it is never mutated
// after creation.
type Outcome struct {
	// ChunkIndex ties the outcome back to the chunk that produced it.
	ChunkIndex int

	// Status distinguishes a successful analysis from an isolated failure.
	Status OutcomeStatus

	// Text holds the analysis on success, or a failure diagnostic.
	Text string
}

// Ok reports whether the chunk was analyzed successfully
func (o *Outcome) Ok() bool {
	return o.Status == StatusOk
}

// Validate checks if the outcome is well formed
func (o *Outcome) Validate() error {
	if o.ChunkIndex < 0 {
		return ErrInvalidChunkIndex
	}

	switch o.Status {
	case StatusOk, StatusFailed:
	default:
		return ErrInvalidStatus
	}

	if o.Text == "" {
		return ErrEmptyOutcomeText
	}

	return nil
}
