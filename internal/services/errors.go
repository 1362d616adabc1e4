package services

import "errors"

// Analytics service errors
var (
	ErrNoReviewSummaries = errors.New("no review summaries available")
	ErrNoResults         = errors.New("no analysis results available")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDecode            = errors.New("could not decode spreadsheet")
)
