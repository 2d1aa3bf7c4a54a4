package model

import "time"

// BatchSummary captures metrics from a single batch evaluation run.
type BatchSummary struct {
	InputPath      string
	OutputPath     string
	BatchID        string
	RowsRead       int64
	RowsWritten    int64
	RowsRejected   int64 // failed validation, no result row
	RowsWithAlerts int64
	AlertsByCode   map[AlertCode]int64
	DurationTotal  time.Duration
}
