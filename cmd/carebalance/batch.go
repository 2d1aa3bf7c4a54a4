package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/gyeh/carebalance/internal/batch"
	"github.com/gyeh/carebalance/internal/exitcode"
	"github.com/gyeh/carebalance/internal/logging"
	"github.com/gyeh/carebalance/internal/metrics"
	"github.com/gyeh/carebalance/internal/model"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate every snapshot of a Parquet file",
	RunE:  runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringVar(&cfg.BatchIn, "in", "", "Parquet file of snapshots (required)")
	f.StringVar(&cfg.BatchOut, "out", "", "Parquet file for results (required)")
	_ = batchCmd.MarkFlagRequired("in")
	_ = batchCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	log := logging.SetupLevel(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if err := cfg.ValidateBatch(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	mc := metrics.NewCollector("carebalance", prometheus.NewRegistry())
	summary, err := batch.Run(ctx, log, mc, cfg.BatchIn, cfg.BatchOut)
	if err != nil {
		var pe *batch.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("batch failed")
			switch pe.Phase {
			case "open", "read":
				os.Exit(exitcode.ReadError)
			case "write":
				os.Exit(exitcode.WriteError)
			default:
				os.Exit(exitcode.ValidationError)
			}
		}
		log.Error().Err(err).Msg("batch failed")
		os.Exit(exitcode.ReadError)
	}

	fmt.Printf("Batch %s complete: %d snapshots read, %d results written, %d rejected, %d with alerts (%.2fs)\n",
		summary.BatchID, summary.RowsRead, summary.RowsWritten, summary.RowsRejected, summary.RowsWithAlerts,
		summary.DurationTotal.Seconds())
	for _, code := range []model.AlertCode{
		model.AlertDiuresisMissing,
		model.AlertSweatingMissing,
		model.AlertSweatingZero,
		model.AlertECTMissing,
		model.AlertECTZero,
		model.AlertHighFever,
	} {
		if n := summary.AlertsByCode[code]; n > 0 {
			fmt.Printf("  %-18s %d\n", code, n)
		}
	}
	return nil
}
