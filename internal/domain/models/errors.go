package models

import "errors"

// Error classes surfaced by the pipeline. Sources and the smoother wrap
// these so callers can map them to exit codes or HTTP statuses with
// errors.Is.
var (
	// ErrSourceNotFound marks a requested external data source that does
	// not exist (missing CSV file, missing table).
	ErrSourceNotFound = errors.New("data source not found")

	// ErrNoData marks a readable source that yielded zero usable records
	// after filtering, or a record field that failed to parse.
	ErrNoData = errors.New("no valid observations in data source")

	// ErrInvalidWindow marks a non-positive moving-average window.
	ErrInvalidWindow = errors.New("window must be a positive integer")
)
