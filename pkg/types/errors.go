package types

import "errors"

// Domain errors for type validation
var (
	ErrInvalidChunkIndex = errors.New("invalid chunk index")
	ErrInvalidStatus     = errors.New("invalid outcome status")
	ErrEmptyOutcomeText  = errors.New("outcome text cannot be empty")
	ErrReportIncomplete  = errors.New("report outcomes are not dense and ordered")
)
