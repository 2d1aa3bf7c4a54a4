package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/carebalance/internal/balance"
	"github.com/gyeh/carebalance/internal/classify"
	"github.com/gyeh/carebalance/internal/metrics"
	"github.com/gyeh/carebalance/internal/model"
	"github.com/gyeh/carebalance/internal/parquetio"
	"github.com/gyeh/carebalance/internal/report"
)

const readBatchSize = 256

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run evaluates every snapshot in inPath and writes one ResultRow per
// valid snapshot to outPath. Rows with an unsupported period or unknown
// mode are rejected and counted. On failure outPath is removed, so a file
// at outPath always holds a complete run. mc may be nil.
func Run(ctx context.Context, log zerolog.Logger, mc *metrics.Collector, inPath, outPath string) (*model.BatchSummary, error) {
	start := time.Now()
	batchID := uuid.New()

	reader, err := parquetio.Open[model.SnapshotRow](inPath)
	if err != nil {
		return nil, &PipelineError{Phase: "open", Err: err}
	}
	defer reader.Close()

	if err := parquetio.ValidateSchema(reader.Schema()); err != nil {
		return nil, &PipelineError{Phase: "open", Err: err}
	}

	writer, err := parquetio.Create[model.ResultRow](outPath)
	if err != nil {
		return nil, &PipelineError{Phase: "write", Err: err}
	}

	log.Info().
		Str("batch_id", batchID.String()).
		Str("in", inPath).
		Int64("rows", reader.NumRows()).
		Msg("starting batch evaluation")

	summary := &model.BatchSummary{
		InputPath:    inPath,
		OutputPath:   outPath,
		BatchID:      batchID.String(),
		AlertsByCode: make(map[model.AlertCode]int64),
	}

	ch := make(chan model.ResultRow, readBatchSize)
	errCh := make(chan error, 1)

	// Producer goroutine: read Parquet → evaluate → push to channel
	go func() {
		defer close(ch)
		buf := make([]model.SnapshotRow, readBatchSize)
		var rowNum int64

		for {
			n, readErr := reader.Read(buf)
			for i := 0; i < n; i++ {
				rowNum++
				summary.RowsRead++

				evalStart := time.Now()
				in := buf[i].ToInput()
				if err := classify.ValidateInput(in); err != nil {
					summary.RowsRejected++
					log.Warn().Err(err).
						Int64("row", rowNum).
						Str("snapshot_id", buf[i].SnapshotID).
						Msg("row rejected")
					continue
				}
				res := balance.Evaluate(in)
				note := report.Compose(in, res)
				if mc != nil {
					mc.RecordEvaluation("batch", res, time.Since(evalStart))
				}

				if len(res.Alerts) > 0 {
					summary.RowsWithAlerts++
					for _, a := range res.Alerts {
						summary.AlertsByCode[a.Code]++
					}
					log.Debug().
						Int64("row", rowNum).
						Str("snapshot_id", buf[i].SnapshotID).
						Int("alerts", len(res.Alerts)).
						Msg("snapshot has alerts")
				}

				row := model.NewResultRow(summary.BatchID, buf[i].SnapshotID, rowNum, res, note)
				select {
				case ch <- *row:
				case <-ctx.Done():
					errCh <- &PipelineError{Phase: "evaluate", Err: ctx.Err()}
					return
				}
			}
			if readErr == io.EOF {
				break
			}
			if readErr != nil {
				errCh <- &PipelineError{Phase: "read", Err: fmt.Errorf("row %d: %w", rowNum, readErr)}
				return
			}
		}
		errCh <- nil
	}()

	// Consumer: write result rows in chunks
	var writeErr error
	pending := make([]model.ResultRow, 0, readBatchSize)
	flush := func() {
		if writeErr != nil || len(pending) == 0 {
			return
		}
		n, err := writer.Write(pending)
		summary.RowsWritten += int64(n)
		if err != nil {
			writeErr = err
		}
		pending = pending[:0]
	}
	for row := range ch {
		pending = append(pending, row)
		if len(pending) == cap(pending) {
			flush()
		}
	}
	flush()

	prodErr := <-errCh
	closeErr := writer.Close()
	var runErr error
	switch {
	case prodErr != nil:
		runErr = prodErr
	case writeErr != nil:
		runErr = &PipelineError{Phase: "write", Err: writeErr}
	case closeErr != nil:
		runErr = &PipelineError{Phase: "write", Err: closeErr}
	}
	if runErr != nil {
		discardOutput(log, outPath)
		return nil, runErr
	}

	summary.DurationTotal = time.Since(start)
	log.Info().
		Str("batch_id", summary.BatchID).
		Int64("rows_read", summary.RowsRead).
		Int64("rows_written", summary.RowsWritten).
		Int64("rows_rejected", summary.RowsRejected).
		Int64("rows_with_alerts", summary.RowsWithAlerts).
		Str("duration", summary.DurationTotal.String()).
		Msg("batch evaluation complete")

	return summary, nil
}

// discardOutput removes the partial result file of a failed run.
func discardOutput(log zerolog.Logger, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("out", path).Msg("could not remove partial output")
		return
	}
	log.Info().Str("out", path).Msg("partial output removed")
}
